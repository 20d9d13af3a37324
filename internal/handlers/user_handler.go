package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskcrew/backend/internal/apperrors"
	"github.com/taskcrew/backend/internal/auth"
	authMiddleware "github.com/taskcrew/backend/internal/auth/middleware"
	"github.com/taskcrew/backend/internal/models"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for user lookup business logic.
type UserService interface {
	// Method List returns all users.
	List(ctx context.Context) ([]models.User, error)
	// Method GetByID returns the user with the given ID.
	//
	// If no user with such ID exists, apperrors.ErrUserNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// Method ListSupervisors returns all users with the supervisor access level.
	ListSupervisors(ctx context.Context) ([]models.User, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	BaseHandler
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger},
		userService: userService,
	}
}

// RegisterRoutes registers all user handler routes
func (h *UserHandler) RegisterRoutes(r chi.Router, guard authMiddleware.Guard) {
	r.Route("/users", func(r chi.Router) {
		r.With(guard(auth.OpListUsers)).Get("/", h.List)
		r.With(guard(auth.OpListSupervisors)).Get("/supervisors", h.ListSupervisors)
		r.With(guard(auth.OpGetUser)).Get("/{id}", h.GetByID)
	})
}

// List handles GET /users
// @Summary List all users
// @Description List all user accounts. Requires manager or supervisor access. Password hashes are never included.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string][]models.User "Users"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Insufficient access level"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list users", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.User{"users": users})
}

// GetByID handles GET /users/{id}
// @Summary Get a user by ID
// @Description Get a single user account by ID. Requires any authenticated access level.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]models.User "User"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			h.RespondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.Error("failed to get user", zap.Error(err), zap.String("user_id", userID))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]*models.User{"user": user})
}

// ListSupervisors handles GET /users/supervisors
// @Summary List supervisors
// @Description List all users with the supervisor access level. Requires manager access.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.User "Supervisors"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Insufficient access level"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/supervisors [get]
func (h *UserHandler) ListSupervisors(w http.ResponseWriter, r *http.Request) {
	supervisors, err := h.userService.ListSupervisors(r.Context())
	if err != nil {
		h.Logger.Error("failed to list supervisors", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, supervisors)
}
