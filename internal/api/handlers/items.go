package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canozdemir/inventory-backend/internal/api/httpx"
	"github.com/canozdemir/inventory-backend/internal/api/validate"
	"github.com/canozdemir/inventory-backend/internal/middleware"
	"github.com/canozdemir/inventory-backend/internal/models"
	repo "github.com/canozdemir/inventory-backend/internal/repository"
	"github.com/canozdemir/inventory-backend/internal/services"
)

type ItemsHandler struct {
	svc *services.ItemService
}

func NewItemsHandler(svc *services.ItemService) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())
	f := repo.ItemFilter{
		Category: r.URL.Query().Get("category"),
		Rarity:   r.URL.Query().Get("rarity"),
	}

	items, err := h.svc.List(r.Context(), u.ID, f)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, httpx.Envelope{"count": len(items), "items": items})
}

func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	it, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"), u.ID)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, httpx.Envelope{"item": it})
}

func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	var d models.ItemDraft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if d.Name == "" || d.Price == nil {
		httpx.Fail(w, http.StatusBadRequest, "please provide name and price")
		return
	}

	created, err := h.svc.Create(r.Context(), u.ID, d)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, httpx.Envelope{"item": created})
}

func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	var upd models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), u.ID, upd)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, httpx.Envelope{"item": updated})
}

func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), u.ID); err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, httpx.Envelope{"message": "item deleted"})
}

func (h *ItemsHandler) writeErr(w http.ResponseWriter, err error) {
	var verrs validate.Errs
	switch {
	case errors.Is(err, repo.ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, "item not found")
	case errors.As(err, &verrs):
		httpx.Fail(w, http.StatusBadRequest, verrs.Error())
	default:
		slog.Error("items", "err", err)
		httpx.Fail(w, http.StatusInternalServerError, "internal server error")
	}
}
