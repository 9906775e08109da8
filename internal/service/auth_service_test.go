package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/citizen-services/internal/config"
	"github.com/spec-kit/citizen-services/internal/domain"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

func testConfig() config.Config {
	return config.Config{
		App:  config.AppConfig{SeedDemoData: true},
		Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5, BcryptCost: bcrypt.MinCost},
	}
}

func TestLoginSeedsAndAuthenticatesDemoUsers(t *testing.T) {
	users := &memUsers{}
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	res, err := svc.Login(context.Background(), "employee@example.com", DemoPassword, domain.RoleEmployee)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "employee@example.com", res.User.Email)
	assert.Equal(t, "Jane Employee", res.User.Name)
	assert.Equal(t, domain.RoleEmployee, res.User.Role)
	require.NotNil(t, res.User.Department)
	assert.Equal(t, domain.DepartmentPayment, *res.User.Department)
	assert.Len(t, users.users, 3)

	claims, err := svc.TokenManager().ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)

	raw, err := json.Marshal(res.User)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}

func TestLoginRejectsWrongTriple(t *testing.T) {
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: &memUsers{}})
	ctx := context.Background()

	cases := []struct {
		email, password string
		role            domain.Role
	}{
		{"user@example.com", "nope", domain.RoleUser},
		{"user@example.com", DemoPassword, domain.RoleAdmin},
		{"ghost@example.com", DemoPassword, domain.RoleUser},
		{"", "", ""},
	}
	for _, tc := range cases {
		res, err := svc.Login(ctx, tc.email, tc.password, tc.role)
		require.Error(t, err)
		assert.Nil(t, res)
		de := apperrors.ToDomainError(err)
		assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
		assert.Equal(t, "Invalid email, password, or role", de.Message)
	}
}

func TestSeedDemoUsersIsIdempotent(t *testing.T) {
	users := &memUsers{}
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	created, err := svc.SeedDemoUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	created, err = svc.SeedDemoUsers(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Len(t, users.users, 3)
}

func TestLoginWithoutSeeding(t *testing.T) {
	cfg := testConfig()
	cfg.App.SeedDemoData = false
	users := &memUsers{}
	svc := NewAuthService(cfg, AuthDependencies{UserRepo: users})

	_, err := svc.Login(context.Background(), "admin@example.com", DemoPassword, domain.RoleAdmin)
	require.Error(t, err)
	assert.Empty(t, users.users)
}

func TestUserServiceProjectionsAndListings(t *testing.T) {
	users := &memUsers{}
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &domain.User{Email: "a@example.com", PasswordHash: "secret-hash", Name: "A", Role: domain.RoleUser, IsActive: true}))

	svc := NewUserService(UserDependencies{
		UserRepo:        users,
		DocumentRepo:    &memDocuments{docs: []domain.Document{{ID: 1, UserID: 1, DocumentType: "aadhar"}, {ID: 2, UserID: 9}}},
		ApplicationRepo: &memApplications{apps: []domain.Application{{ID: 1, UserID: 1, SchemeID: 3, Status: domain.ApplicationStatusSubmitted}}},
	})

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")

	docs, err := svc.Documents(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	apps, err := svc.Applications(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = svc.Documents(ctx, 42)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}
