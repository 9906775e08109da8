package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/citizen-services/internal/auth"
	"github.com/spec-kit/citizen-services/internal/config"
	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/repository"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

// DemoPassword is the password every seeded demo account signs in with.
const DemoPassword = "password123"

const invalidCredentials = "Invalid email, password, or role"

type demoAccount struct {
	email      string
	name       string
	role       domain.Role
	phone      string
	address    string
	department domain.Department
}

var demoAccounts = []demoAccount{
	{email: "user@example.com", name: "John User", role: domain.RoleUser, phone: "+91 9876543210", address: "Mumbai, Maharashtra"},
	{email: "employee@example.com", name: "Jane Employee", role: domain.RoleEmployee, phone: "+91 9876543211", address: "Delhi, India", department: domain.DepartmentPayment},
	{email: "admin@example.com", name: "Admin User", role: domain.RoleAdmin, phone: "+91 9876543212", address: "Bangalore, Karnataka"},
}

// LoginResult is returned on a successful sign-in.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.UserProjection
}

// AuthService coordinates sign-in for every role.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	seedDemo   bool
	seeded     atomic.Bool
	logger     *zap.Logger
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		seedDemo:   cfg.App.SeedDemoData,
		logger:     logger,
	}
}

// SeedDemoUsers creates each demo account whose email is not taken yet.
func (s *AuthService) SeedDemoUsers(ctx context.Context) (int, error) {
	created := 0
	for _, acct := range demoAccounts {
		_, err := s.users.GetByEmail(ctx, acct.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return created, err
		}

		hash, err := auth.HashPassword(DemoPassword, s.bcryptCost)
		if err != nil {
			return created, err
		}
		user := &domain.User{
			Email:        acct.email,
			PasswordHash: hash,
			Name:         acct.name,
			Role:         acct.role,
			Phone:        optionalString(acct.phone),
			Address:      optionalString(acct.address),
			IsActive:     true,
		}
		if acct.department != "" {
			dept := acct.department
			user.Department = &dept
		}
		if err := s.users.Create(ctx, user); err != nil {
			return created, fmt.Errorf("seed user %s: %w", acct.email, err)
		}
		created++
	}
	if created > 0 {
		s.logger.Info("demo users seeded", zap.Int("created", created))
	}
	return created, nil
}

// Login checks the email, password and role triple. Every mismatch yields the
// same 401 so callers cannot tell which part was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (*LoginResult, error) {
	if s.seedDemo && !s.seeded.Load() {
		if _, err := s.SeedDemoUsers(ctx); err != nil {
			s.logger.Warn("demo user seeding failed", zap.Error(err))
		} else {
			s.seeded.Store(true)
		}
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" || role == "" {
		return nil, apperrors.NewUnauthorized(invalidCredentials)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized(invalidCredentials)
		}
		return nil, apperrors.MapError(err)
	}
	if !user.IsActive || user.Role != role {
		return nil, apperrors.NewUnauthorized(invalidCredentials)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized(invalidCredentials)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: user.Projection()}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
