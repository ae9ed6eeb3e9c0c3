package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vegetanizando/api/internal/plan/domain"
	"github.com/vegetanizando/api/pkg/httpx"
)

type Lister interface {
	ListAll(ctx context.Context) ([]domain.Plan, error)
}

type Handler struct {
	log   *slog.Logger
	plans Lister
}

func NewHandler(log *slog.Logger, plans Lister) *Handler {
	return &Handler{log: log, plans: plans}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/plans", h.listPlans)
}

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.ListAll(r.Context())
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, plans)
}
