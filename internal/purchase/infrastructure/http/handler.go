package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/vegetanizando/api/internal/purchase/application"
	"github.com/vegetanizando/api/pkg/apperror"
	"github.com/vegetanizando/api/pkg/httpx"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("purchase-http"),
	}
}

type createPurchaseReq struct {
	Purchase *application.CreateInput `json:"purchase"`
}

// Register mounts the purchase endpoints. Order submission is public;
// the rest sits behind the admin token gate.
func (h *Handler) Register(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Post("/purchase", h.createPurchase)
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/purchases", h.listPurchases)
		r.Patch("/purchase/{id}", h.updateStatus)
		r.Delete("/purchase/{id}", h.deletePurchase)
	})
}

func (h *Handler) createPurchase(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreatePurchase")
	defer span.End()

	var req createPurchaseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, h.log, apperror.Validation("invalid body"))
		return
	}

	if _, err := h.service.Create(ctx, req.Purchase, nil, traceparentFrom(ctx, r)); err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"message": "compra inserida com sucesso"})
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListPurchases")
	defer span.End()

	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httpx.Error(w, h.log, apperror.Validation("days must be a non-negative integer"))
			return
		}
		days = n
	}

	purchases, err := h.service.ListRecent(ctx, days)
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, purchases)
}

type updateStatusReq struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdatePurchaseStatus")
	defer span.End()

	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, h.log, apperror.Validation("invalid body"))
		return
	}

	p, err := h.service.UpdateStatus(ctx, chi.URLParam(r, "id"), req.Status, nil, traceparentFrom(ctx, r))
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) deletePurchase(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "DeletePurchase")
	defer span.End()

	if err := h.service.Delete(ctx, chi.URLParam(r, "id"), nil, traceparentFrom(ctx, r)); err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "compra apagada com sucesso"})
}

// traceparentFrom prefers the incoming header and otherwise serializes
// the active span, so outbox events always carry a trace context.
func traceparentFrom(ctx context.Context, r *http.Request) string {
	if tp := r.Header.Get("traceparent"); tp != "" {
		return tp
	}
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier["traceparent"]
}
