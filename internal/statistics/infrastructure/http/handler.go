package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vegetanizando/api/internal/statistics/application"
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
		tracer:  otel.Tracer("statistics-http"),
	}
}

// Register mounts the dashboard reports. All of them require an admin
// token.
func (h *Handler) Register(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/statistic/purchases_by_month", h.purchasesByMonth)
		r.Get("/statistic/product_type", h.productsByType)
		r.Get("/statistic/top_customer", h.topCustomers)
		r.Get("/statistic/top_product", h.topProducts)
		r.Get("/statistic/card", h.card)
	})
}

func (h *Handler) purchasesByMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PurchasesByMonth")
	defer span.End()

	result, err := h.service.PurchasesByMonth(ctx)
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) productsByType(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ProductsByType")
	defer span.End()

	result, err := h.service.ProductsByType(ctx)
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) topCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TopCustomers")
	defer span.End()

	result, err := h.service.TopCustomers(ctx)
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TopProducts")
	defer span.End()

	result, err := h.service.TopProducts(ctx)
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) card(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "DashboardCard")
	defer span.End()

	result, err := h.service.DashboardCard(ctx)
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}
