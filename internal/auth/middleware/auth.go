package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taskcrew/backend/internal/auth/service"
	"github.com/taskcrew/backend/internal/models"
)

type contextKey string

const (
	userIDKey      contextKey = "userID"
	accessLevelKey contextKey = "accessLevel"
)

// AuthMiddleware validates the JWT token and puts the caller's identity into
// the request context. It performs no access-level check.
func AuthMiddleware(tokenGenerator *service.TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, ok := authenticate(w, r, tokenGenerator)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate extracts and validates the token, returning a context carrying
// the caller's identity. On failure it writes a 401 response and returns false.
func authenticate(w http.ResponseWriter, r *http.Request, tokenGenerator *service.TokenGenerator) (context.Context, bool) {
	token := extractToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}

	// Every validation failure collapses to the same response
	userID, level, err := tokenGenerator.Validate(token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid or expired token")
		return nil, false
	}

	ctx := context.WithValue(r.Context(), userIDKey, userID)
	ctx = context.WithValue(ctx, accessLevelKey, level)
	return ctx, true
}

// extractToken pulls the token from the Authorization header or cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	cookie, err := r.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}

	return ""
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

// GetUserID retrieves the authenticated user's ID from context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetAccessLevel retrieves the authenticated user's access level from context
func GetAccessLevel(ctx context.Context) (models.AccessLevel, bool) {
	level, ok := ctx.Value(accessLevelKey).(models.AccessLevel)
	return level, ok
}
