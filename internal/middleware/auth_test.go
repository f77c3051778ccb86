package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canozdemir/inventory-backend/internal/auth"
	"github.com/canozdemir/inventory-backend/internal/models"
	repo "github.com/canozdemir/inventory-backend/internal/repository"
)

// stubUsers resolves exactly one known user.
type stubUsers struct {
	user models.User
}

func (s *stubUsers) Create(ctx context.Context, username, email, hash string) (models.User, error) {
	return models.User{}, nil
}

func (s *stubUsers) GetByID(ctx context.Context, id string) (models.User, error) {
	if id == s.user.ID {
		return s.user, nil
	}
	return models.User{}, repo.ErrNotFound
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return models.User{}, repo.ErrNotFound
}

func (s *stubUsers) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	return false, nil
}

func TestAuthMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	users := &stubUsers{user: models.User{ID: "u1", Username: "alice", Email: "a@b.com"}}
	mw := NewAuthMiddleware(tm, users)

	var seen models.User
	handler := mw.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	goodToken, err := tm.Generate("u1")
	require.NoError(t, err)
	vanishedToken, err := tm.Generate("gone")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{"missing header", "", http.StatusUnauthorized, "no token provided"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "no token provided"},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized, "invalid token"},
		{"user vanished", "Bearer " + vanishedToken, http.StatusUnauthorized, "user not found"},
		{"ok", "Bearer " + goodToken, http.StatusOK, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantMsg != "" {
				var body struct {
					Success bool   `json:"success"`
					Message string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.False(t, body.Success)
				assert.Equal(t, tc.wantMsg, body.Message)
			}
		})
	}

	assert.Equal(t, "u1", seen.ID)
}
