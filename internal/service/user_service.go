package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/repository"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

// UserService exposes account listings. Results never carry password hashes.
type UserService struct {
	users        repository.UserRepository
	documents    repository.DocumentRepository
	applications repository.ApplicationRepository
}

// UserDependencies bundles repositories for the user service.
type UserDependencies struct {
	UserRepo        repository.UserRepository
	DocumentRepo    repository.DocumentRepository
	ApplicationRepo repository.ApplicationRepository
}

// NewUserService creates the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{
		users:        deps.UserRepo,
		documents:    deps.DocumentRepo,
		applications: deps.ApplicationRepo,
	}
}

// List returns every user as a public projection.
func (s *UserService) List(ctx context.Context) ([]domain.UserProjection, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	result := make([]domain.UserProjection, 0, len(users))
	for i := range users {
		result = append(result, users[i].Projection())
	}
	return result, nil
}

// Documents lists the document metadata of a user.
func (s *UserService) Documents(ctx context.Context, userID int64) ([]domain.Document, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	docs, err := s.documents.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return docs, nil
}

// Applications lists the scheme applications of a user.
func (s *UserService) Applications(ctx context.Context, userID int64) ([]domain.Application, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return apps, nil
}

func (s *UserService) ensureUser(ctx context.Context, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User", map[string]any{"user_id": userID})
		}
		return apperrors.MapError(err)
	}
	return nil
}
