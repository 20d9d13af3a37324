package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/taskcrew/backend/internal/apperrors"
	"github.com/taskcrew/backend/internal/auth"
	authMiddleware "github.com/taskcrew/backend/internal/auth/middleware"
	"github.com/taskcrew/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Login performs credential verification and token issuance.
	//
	// "req" parameter contains email and password.
	//
	// If the credentials are wrong in any way, apperrors.ErrInvalidCredentials will be
	// returned together with an empty token; the two failure modes (unknown email,
	// wrong password) are not distinguishable.
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	// Method Register performs user credential validation and creation.
	//
	// "req" parameter contains email, password and access level.
	//
	// If the email is already taken, apperrors.ErrEmailTaken will be returned together
	// with "nil" value. Validation failures return a descriptive error.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes.
// Registration is guarded by the user.register policy; login is public.
func (h *AuthHandler) RegisterRoutes(r chi.Router, guard authMiddleware.Guard) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.With(guard(auth.OpRegisterUser)).Post("/register", h.Register)
	})
}

// Login handles POST /auth/login
// @Summary Login user
// @Description Authenticate with email and password. Returns a signed bearer token valid for 7 days.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} map[string]string "Token issued"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			// Deliberately generic: never reveals whether the account exists
			h.RespondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.Logger.Error("failed to login user", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Create a user account with email, password and access level. Requires manager or supervisor access.
// @Tags auth
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} map[string]string "User created"
// @Failure 400 {object} map[string]string "Missing fields or invalid access level"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Insufficient access level"
// @Failure 409 {object} map[string]string "Email already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			h.RespondError(w, http.StatusConflict, err.Error())
			return
		}
		// Validation failures are safe to disclose: they describe the request
		// shape, not account existence
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "invalid") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to register user", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "user registered successfully",
		"id":      user.ID,
	})
}
