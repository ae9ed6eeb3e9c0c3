package http

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vegetanizando/api/internal/product/application"
	"github.com/vegetanizando/api/pkg/apperror"
	"github.com/vegetanizando/api/pkg/httpx"
)

// Images arrive as multipart uploads; anything past 10 MiB is rejected
// while parsing.
const maxUploadBytes = 10 << 20

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("product-http"),
	}
}

// Register mounts the catalog endpoints. Reads serve the public
// storefront; writes require an admin token.
func (h *Handler) Register(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Get("/products", h.listProducts)
	r.Get("/product/{id}", h.getProduct)
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Post("/product", h.createProduct)
		r.Put("/product/{id}", h.updateProduct)
		r.Delete("/product/{id}", h.deleteProduct)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListProducts")
	defer span.End()

	products, err := h.service.ListAll(ctx)
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetProduct")
	defer span.End()

	p, err := h.service.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateProduct")
	defer span.End()

	in, err := parseProductForm(r, true)
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}

	p, err := h.service.Create(ctx, application.CreateInput{
		Name:        in.name,
		Portion:     in.portion,
		Price:       in.price,
		Type:        in.typ,
		Image:       in.image,
		ContentType: in.contentType,
	})
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateProduct")
	defer span.End()

	in, err := parseProductForm(r, false)
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}

	p, err := h.service.Update(ctx, chi.URLParam(r, "id"), application.UpdateInput{
		Name:        in.name,
		Portion:     in.portion,
		Price:       in.price,
		Type:        in.typ,
		Image:       in.image,
		ContentType: in.contentType,
	})
	if err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "DeleteProduct")
	defer span.End()

	if err := h.service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "produto apagado com sucesso"})
}

type productForm struct {
	name        string
	portion     string
	price       float64
	typ         string
	image       []byte
	contentType string
}

func parseProductForm(r *http.Request, imageRequired bool) (productForm, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return productForm{}, apperror.Validation("invalid multipart form")
	}

	var form productForm
	form.name = r.FormValue("name")
	form.portion = r.FormValue("portion")
	form.typ = r.FormValue("type")

	priceRaw := r.FormValue("price")
	if priceRaw != "" {
		price, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil {
			return productForm{}, apperror.Validation("price must be a number")
		}
		form.price = price
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if imageRequired {
			return productForm{}, apperror.Validation("no image provided")
		}
		return form, nil
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return productForm{}, apperror.Validation("could not read image")
	}
	form.image = body
	form.contentType = header.Header.Get("Content-Type")
	return form, nil
}
