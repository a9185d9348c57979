package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/product/domain"
	"github.com/fjod/go_shop/internal/product/store"
)

const serviceName = "product-service"

type ProductHandler struct {
	store store.ProductStore
	log   *zap.SugaredLogger
}

func NewProductHandler(store store.ProductStore, log *zap.SugaredLogger) *ProductHandler {
	return &ProductHandler{store: store, log: log}
}

type CreateProductRequestDTO struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

type UpdateProductRequestDTO struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

type UpdateStockRequestDTO struct {
	Stock *int `json:"stock"`
}

type listResponseDTO struct {
	Products []*domain.Product `json:"products"`
	Count    int               `json:"count"`
	Service  string            `json:"service"`
}

type productResponseDTO struct {
	*domain.Product
	Service     string     `json:"service"`
	RequestedAt *time.Time `json:"requestedAt,omitempty"`
}

type deletedResponseDTO struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Service string `json:"service"`
}

// GET /products?category=&minPrice=&maxPrice=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := store.Filter{Category: query.Get("category")}
	if raw := query.Get("minPrice"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "minPrice must be a number")
			return
		}
		filter.MinPrice = parsed
	}
	if raw := query.Get("maxPrice"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "maxPrice must be a number")
			return
		}
		filter.MaxPrice = parsed
	}

	products := h.store.List(filter)
	httpx.RespondJSON(w, http.StatusOK, listResponseDTO{
		Products: products,
		Count:    len(products),
		Service:  serviceName,
	})
}

// GET /products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.store.GetByID(id)
	if err != nil {
		httpx.RespondNotFound(w, "Product not found", id)
		return
	}

	now := time.Now().UTC()
	httpx.RespondJSON(w, http.StatusOK, productResponseDTO{Product: product, Service: serviceName, RequestedAt: &now})
}

// POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Name == "" || req.Price <= 0 {
		httpx.RespondError(w, http.StatusBadRequest, "Name and price are required")
		return
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    category,
		Stock:       req.Stock,
		CreatedAt:   time.Now().UTC(),
	}
	h.store.Append(product)
	h.log.Infow("product created", "product_id", product.ID, "category", product.Category)

	httpx.RespondJSON(w, http.StatusCreated, productResponseDTO{Product: product, Service: serviceName})
}

// PUT /products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	product, err := h.store.Update(id, func(p *domain.Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		now := time.Now().UTC()
		p.UpdatedAt = &now
	})
	if err != nil {
		httpx.RespondNotFound(w, "Product not found", id)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, productResponseDTO{Product: product, Service: serviceName})
}

// PUT /products/{id}/stock
func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Stock == nil {
		httpx.RespondError(w, http.StatusBadRequest, "Stock is required")
		return
	}
	if *req.Stock < 0 {
		httpx.RespondError(w, http.StatusBadRequest, "Stock cannot be negative")
		return
	}

	product, err := h.store.Update(id, func(p *domain.Product) {
		p.Stock = *req.Stock
		now := time.Now().UTC()
		p.UpdatedAt = &now
	})
	if err != nil {
		httpx.RespondNotFound(w, "Product not found", id)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, productResponseDTO{Product: product, Service: serviceName})
}

// DELETE /products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			httpx.RespondNotFound(w, "Product not found", id)
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, deletedResponseDTO{
		Message: "Product deleted successfully",
		ID:      id,
		Service: serviceName,
	})
}

// Routes mounts the product endpoints on a router.
func (h *ProductHandler) Routes(r chi.Router) {
	r.Get("/products", h.List)
	r.Post("/products", h.Create)
	r.Get("/products/{id}", h.GetByID)
	r.Put("/products/{id}", h.Update)
	r.Put("/products/{id}/stock", h.UpdateStock)
	r.Delete("/products/{id}", h.Delete)
}
