package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/order/domain"
	"github.com/fjod/go_shop/internal/order/service"
	"github.com/fjod/go_shop/internal/order/store"
)

const serviceName = "order-service"

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type CreateOrderRequestDTO struct {
	UserID          string                 `json:"userId"`
	Items           []domain.OrderItem     `json:"items"`
	ShippingAddress map[string]interface{} `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

type listResponseDTO struct {
	Orders  []*domain.Order `json:"orders"`
	Count   int             `json:"count"`
	Service string          `json:"service"`
}

type invalidStatusResponseDTO struct {
	Error         string               `json:"error"`
	ValidStatuses []domain.OrderStatus `json:"validStatuses"`
}

// GET /orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.svc.List()
	httpx.RespondJSON(w, http.StatusOK, listResponseDTO{
		Orders:  orders,
		Count:   len(orders),
		Service: serviceName,
	})
}

// GET /orders/{id}
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			httpx.RespondNotFound(w, "Order not found", id)
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, order)
}

// POST /orders
//
// The response code mirrors the saga outcome: 201 confirmed, 402
// declined, 503 payment service unreachable. The order body is returned
// in all three cases.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), service.CreateOrderRequest{
		UserID:          req.UserID,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.RespondError(w, http.StatusBadRequest, "User ID and items are required")
	case errors.Is(err, service.ErrPaymentDeclined):
		httpx.RespondJSON(w, http.StatusPaymentRequired, order)
	case errors.Is(err, service.ErrPaymentUnavailable):
		httpx.RespondJSON(w, http.StatusServiceUnavailable, order)
	case err != nil:
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
	default:
		httpx.RespondJSON(w, http.StatusCreated, order)
	}
}

// PUT /orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, err := h.svc.UpdateStatus(id, domain.OrderStatus(req.Status))
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		httpx.RespondNotFound(w, "Order not found", id)
	case errors.Is(err, service.ErrInvalidStatus):
		httpx.RespondJSON(w, http.StatusBadRequest, invalidStatusResponseDTO{
			Error:         "Invalid status",
			ValidStatuses: domain.ValidStatuses,
		})
	case err != nil:
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
	default:
		httpx.RespondJSON(w, http.StatusOK, order)
	}
}

// Routes mounts the order endpoints on a router.
func (h *OrderHandler) Routes(r chi.Router) {
	r.Get("/orders", h.List)
	r.Post("/orders", h.Create)
	r.Get("/orders/{id}", h.GetByID)
	r.Put("/orders/{id}/status", h.UpdateStatus)
	r.Post("/orders/{id}/cancel", h.Cancel)
}

// POST /orders/{id}/cancel
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.svc.Cancel(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		httpx.RespondNotFound(w, "Order not found", id)
	case errors.Is(err, service.ErrCancelDelivered):
		httpx.RespondError(w, http.StatusBadRequest, "Cannot cancel delivered order")
	case err != nil:
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
	default:
		httpx.RespondJSON(w, http.StatusOK, order)
	}
}
