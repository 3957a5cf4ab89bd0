package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/api"
	"github.com/comanda-app/comanda-service/internal/models"
	"github.com/comanda-app/comanda-service/internal/service"
)

// contextKey is a type for context keys
type contextKey string

// UserIDKey holds the authenticated caller's user ID
const UserIDKey contextKey = "userID"

// Auth authenticates requests by their bearer token and stashes the
// caller's user ID in the request context.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				api.Unauthorized(w, "authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				api.Unauthorized(w, "invalid authorization header format")
				return
			}

			userID, err := authService.ValidateToken(parts[1])
			if err != nil {
				api.Unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole resolves the caller against the access guard and rejects
// requests below the minimum role. It must run after Auth.
func RequireRole(guard *service.Guard, min models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				api.Unauthorized(w, "user does not have permission")
				return
			}

			if _, err := guard.Require(r.Context(), userID, min); err != nil {
				api.Error(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserID extracts the authenticated user ID from the context
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}
