package middleware

import (
	"errors"
	"net/http"
	"strings"

	"skillswap_server/auth"
	"skillswap_server/config"
	"skillswap_server/helpers"
	"skillswap_server/models"
)

// AuthMiddleware checks login tokens. When tokens are not required every
// request passes through untouched.
type AuthMiddleware struct {
	secret  []byte
	enabled bool
}

func NewAuthMiddleware(cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(cfg.JWTSecret), enabled: cfg.RequireToken}
}

// Authenticate validates the bearer token and stores its claims in the
// request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			helpers.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			helpers.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := auth.ParseToken(token, m.secret)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				helpers.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
				return
			}
			helpers.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(helpers.WithClaims(r.Context(), claims)))
	})
}

// RequireAdmin rejects authenticated callers without the admin role. It must
// run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		claims, ok := helpers.GetClaims(r.Context())
		if !ok || claims.Role != models.RoleAdmin {
			helpers.RespondWithError(w, r, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
