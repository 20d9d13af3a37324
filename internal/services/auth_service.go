package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/taskcrew/backend/internal/apperrors"
	"github.com/taskcrew/backend/internal/auth/service"
	"github.com/taskcrew/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for users table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter carries the user to insert, its ID already generated.
	//
	// If the email is already taken, apperrors.ErrEmailTaken will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by exact email match.
	//
	// If no user with such email exists, apperrors.ErrUserNotFound will be returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// If no user with such ID exists, apperrors.ErrUserNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// If some error occurs during the check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method List retrieves all users ordered by email.
	List(ctx context.Context) ([]models.User, error)
	// Method ListByAccessLevel retrieves all users with the given access level ordered by email.
	ListByAccessLevel(ctx context.Context, level models.AccessLevel) ([]models.User, error)
}

// authService implements credential verification, token issuance and user registration
type authService struct {
	userRepo       UserRepository
	tokenGenerator *service.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *service.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Login verifies the credentials and returns a signed token.
// Unknown email and wrong password both return apperrors.ErrInvalidCredentials;
// the caller must not be able to tell the two apart.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate(user.ID, user.AccessLevel)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// Register creates a new user account and returns it
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" || req.AccessLevel == "" {
		return nil, fmt.Errorf("email, password and access_level are required")
	}

	if !req.AccessLevel.Valid() {
		return nil, fmt.Errorf("invalid access level %q", req.AccessLevel)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(passwordHash),
		AccessLevel:  req.AccessLevel,
	}

	// The repository maps a duplicate key violation to ErrEmailTaken, which
	// covers the race between the existence check and the insert
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("access_level", string(user.AccessLevel)),
	)

	return user, nil
}
