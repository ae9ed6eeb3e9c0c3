package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vegetanizando/api/internal/payment/application"
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
		tracer:  otel.Tracer("payment-http"),
	}
}

type paymentReq struct {
	Token string  `json:"token"`
	Total float64 `json:"total"`
	Email string  `json:"email"`
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/payment", h.pay)
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Payment")
	defer span.End()

	var req paymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, h.log, apperror.Validation("invalid body"))
		return
	}

	result, err := h.service.Pay(ctx, application.ChargeInput{
		Token: req.Token,
		Email: req.Email,
		Total: req.Total,
	})
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "pagamento efetuado com sucesso", "charge": result})
}
