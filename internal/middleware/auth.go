package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/canozdemir/inventory-backend/internal/api/httpx"
	"github.com/canozdemir/inventory-backend/internal/auth"
	"github.com/canozdemir/inventory-backend/internal/metrics"
	repo "github.com/canozdemir/inventory-backend/internal/repository"
)

type AuthMiddleware struct {
	tm    *auth.TokenManager
	users repo.Users
}

func NewAuthMiddleware(tm *auth.TokenManager, users repo.Users) *AuthMiddleware {
	return &AuthMiddleware{tm: tm, users: users}
}

// Auth extracts the bearer token, verifies it and resolves it to a stored
// user. Any failure ends the request with 401; a token whose user no longer
// exists is rejected the same way.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(ah, "Bearer ") {
			metrics.AuthFailures.WithLabelValues("missing").Inc()
			httpx.Fail(w, http.StatusUnauthorized, "no token provided")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(ah, "Bearer "))

		userID, err := m.tm.Parse(token)
		if err != nil {
			metrics.AuthFailures.WithLabelValues("invalid").Inc()
			httpx.Fail(w, http.StatusUnauthorized, "invalid token")
			return
		}

		u, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				metrics.AuthFailures.WithLabelValues("unknown_user").Inc()
				httpx.Fail(w, http.StatusUnauthorized, "user not found")
				return
			}
			httpx.Fail(w, http.StatusInternalServerError, "internal server error")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}
