package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskcrew/backend/internal/apperrors"
	"github.com/taskcrew/backend/internal/auth/service"
	"github.com/taskcrew/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user                *models.User
	getByEmailErr       error
	getByIDErr          error
	createErr           error
	createdUser         *models.User
	existsByEmailResult bool
	existsByEmailErr    error
	users               []models.User
	listErr             error
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.createdUser = user
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailErr != nil {
		return nil, m.getByEmailErr
	}
	return m.user, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	return m.user, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailErr != nil {
		return false, m.existsByEmailErr
	}
	return m.existsByEmailResult, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.users, nil
}

func (m *mockUserRepository) ListByAccessLevel(ctx context.Context, level models.AccessLevel) ([]models.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.users, nil
}

func newTestTokenGenerator() *service.TokenGenerator {
	return service.NewTokenGenerator("test-secret-key", time.Hour)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestNewAuthService(t *testing.T) {
	userRepo := &mockUserRepository{}
	tokenGen := newTestTokenGenerator()

	svc := NewAuthService(userRepo, tokenGen, zap.NewNop())

	assert.NotNil(t, svc)
}

func TestAuthService_Login(t *testing.T) {
	tokenGen := newTestTokenGenerator()

	storedUser := &models.User{
		ID:           "user-1",
		Email:        "carol@example.com",
		PasswordHash: hashPassword(t, "correct-password"),
		AccessLevel:  models.AccessLevelSupervisor,
	}

	t.Run("success returns a valid token", func(t *testing.T) {
		userRepo := &mockUserRepository{user: storedUser}
		svc := NewAuthService(userRepo, tokenGen, zap.NewNop())

		token, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "carol@example.com",
			Password: "correct-password",
		})

		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, level, err := tokenGen.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
		assert.Equal(t, models.AccessLevelSupervisor, level)
	})

	t.Run("email is trimmed before lookup", func(t *testing.T) {
		userRepo := &mockUserRepository{user: storedUser}
		svc := NewAuthService(userRepo, tokenGen, zap.NewNop())

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "  carol@example.com  ",
			Password: "correct-password",
		})

		assert.NoError(t, err)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		unknownRepo := &mockUserRepository{getByEmailErr: apperrors.ErrUserNotFound}
		svc := NewAuthService(unknownRepo, tokenGen, zap.NewNop())
		_, unknownErr := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		wrongPassRepo := &mockUserRepository{user: storedUser}
		svc = NewAuthService(wrongPassRepo, tokenGen, zap.NewNop())
		_, wrongPassErr := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "carol@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
		assert.Equal(t, unknownErr, wrongPassErr)
	})

	t.Run("empty credentials are rejected without a lookup", func(t *testing.T) {
		tests := []struct {
			name string
			req  *models.LoginRequest
		}{
			{"empty email", &models.LoginRequest{Password: "secret"}},
			{"empty password", &models.LoginRequest{Email: "carol@example.com"}},
			{"whitespace email", &models.LoginRequest{Email: "   ", Password: "secret"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewAuthService(&mockUserRepository{user: storedUser}, tokenGen, zap.NewNop())

				_, err := svc.Login(context.Background(), tt.req)

				assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
			})
		}
	})

	t.Run("repository failure is not reported as invalid credentials", func(t *testing.T) {
		userRepo := &mockUserRepository{getByEmailErr: errors.New("database error")}
		svc := NewAuthService(userRepo, tokenGen, zap.NewNop())

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "carol@example.com",
			Password: "correct-password",
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	tokenGen := newTestTokenGenerator()

	t.Run("success", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		svc := NewAuthService(userRepo, tokenGen, zap.NewNop())

		user, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:       "  alice@example.com  ",
			Password:    "secret123",
			AccessLevel: models.AccessLevelEmployee,
		})

		require.NoError(t, err)
		require.NotNil(t, user)

		_, parseErr := uuid.Parse(user.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, models.AccessLevelEmployee, user.AccessLevel)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		assert.Equal(t, user, userRepo.createdUser)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			req  *models.RegisterRequest
		}{
			{"missing email", &models.RegisterRequest{Password: "secret123", AccessLevel: models.AccessLevelEmployee}},
			{"missing password", &models.RegisterRequest{Email: "alice@example.com", AccessLevel: models.AccessLevelEmployee}},
			{"missing access level", &models.RegisterRequest{Email: "alice@example.com", Password: "secret123"}},
			{"unknown access level", &models.RegisterRequest{Email: "alice@example.com", Password: "secret123", AccessLevel: "admin"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewAuthService(&mockUserRepository{}, tokenGen, zap.NewNop())

				user, err := svc.Register(context.Background(), tt.req)

				assert.Error(t, err)
				assert.Nil(t, user)
			})
		}
	})

	t.Run("taken email", func(t *testing.T) {
		userRepo := &mockUserRepository{existsByEmailResult: true}
		svc := NewAuthService(userRepo, tokenGen, zap.NewNop())

		user, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:       "alice@example.com",
			Password:    "secret123",
			AccessLevel: models.AccessLevelEmployee,
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		assert.Nil(t, user)
	})

	t.Run("insert race reports the conflict", func(t *testing.T) {
		userRepo := &mockUserRepository{createErr: apperrors.ErrEmailTaken}
		svc := NewAuthService(userRepo, tokenGen, zap.NewNop())

		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:       "alice@example.com",
			Password:    "secret123",
			AccessLevel: models.AccessLevelEmployee,
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})

	t.Run("existence check failure propagates", func(t *testing.T) {
		userRepo := &mockUserRepository{existsByEmailErr: errors.New("database error")}
		svc := NewAuthService(userRepo, tokenGen, zap.NewNop())

		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:       "alice@example.com",
			Password:    "secret123",
			AccessLevel: models.AccessLevelEmployee,
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}
