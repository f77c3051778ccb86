package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/canozdemir/inventory-backend/internal/api/httpx"
	"github.com/canozdemir/inventory-backend/internal/middleware"
	"github.com/canozdemir/inventory-backend/internal/services"
)

type AuthHandler struct {
	svc *services.UserService
}

func NewAuthHandler(svc *services.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type credentialsReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		httpx.Fail(w, http.StatusBadRequest, "please provide username, email and password")
		return
	}

	u, token, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyRegistered) {
			httpx.Fail(w, http.StatusBadRequest, "username or email already registered")
			return
		}
		slog.Error("register", "err", err)
		httpx.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.OK(w, http.StatusCreated, httpx.Envelope{"token": token, "user": u.Public()})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.Fail(w, http.StatusBadRequest, "please provide email and password")
		return
	}

	u, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httpx.Fail(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("login", "err", err)
		httpx.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.OK(w, http.StatusOK, httpx.Envelope{"token": token, "user": u.Public()})
}

// Logout is a stateless acknowledgment; tokens stay valid until they expire.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, http.StatusOK, httpx.Envelope{"message": "logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "no token provided")
		return
	}
	httpx.OK(w, http.StatusOK, httpx.Envelope{"user": u.Public()})
}
