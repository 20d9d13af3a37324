package services

import (
	"context"

	"github.com/taskcrew/backend/internal/models"
)

// userService implements user lookups for profile and listing endpoints
type userService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) *userService {
	return &userService{userRepo: userRepo}
}

// List returns all users
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetByID returns the user with the given ID
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ListSupervisors returns all users with the supervisor access level
func (s *userService) ListSupervisors(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListByAccessLevel(ctx, models.AccessLevelSupervisor)
}
