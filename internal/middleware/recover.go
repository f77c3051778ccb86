package middleware

import (
	"log/slog"
	"net/http"

	"github.com/canozdemir/inventory-backend/internal/api/httpx"
)

// Recover is the generic 500 fallback: fixed body, cause logged server-side.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec, "path", r.URL.Path)
				httpx.Fail(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
