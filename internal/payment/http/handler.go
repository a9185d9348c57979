package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/payment/domain"
	"github.com/fjod/go_shop/internal/payment/service"
	"github.com/fjod/go_shop/internal/payment/store"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type ChargeRequestDTO struct {
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"paymentMethod"`
}

type declinedResponseDTO struct {
	*domain.Payment
	Error string `json:"error"`
}

type orderPaymentsResponseDTO struct {
	Payments []*domain.Payment `json:"payments"`
	Count    int               `json:"count"`
	OrderID  string            `json:"orderId"`
}

// POST /payments
func (h *PaymentHandler) Charge(w http.ResponseWriter, r *http.Request) {
	var req ChargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	payment, err := h.svc.Charge(service.ChargeRequest{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.RespondError(w, http.StatusBadRequest, "Order ID, amount, and payment method are required")
	case errors.Is(err, service.ErrPaymentDeclined):
		// The failed record is still part of the response body.
		httpx.RespondJSON(w, http.StatusPaymentRequired, declinedResponseDTO{
			Payment: payment,
			Error:   "Payment failed - insufficient funds",
		})
	case err != nil:
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
	default:
		httpx.RespondJSON(w, http.StatusCreated, payment)
	}
}

// GET /payments/{id}
func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payment, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrPaymentNotFound) {
			httpx.RespondNotFound(w, "Payment not found", id)
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, payment)
}

// GET /payments/order/{orderId}
func (h *PaymentHandler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	payments := h.svc.ListByOrder(orderID)

	httpx.RespondJSON(w, http.StatusOK, orderPaymentsResponseDTO{
		Payments: payments,
		Count:    len(payments),
		OrderID:  orderID,
	})
}

// Routes mounts the payment endpoints on a router.
func (h *PaymentHandler) Routes(r chi.Router) {
	r.Post("/payments", h.Charge)
	r.Get("/payments/{id}", h.GetByID)
	r.Get("/payments/order/{orderId}", h.ListByOrder)
	r.Post("/payments/{id}/refund", h.Refund)
}

// POST /payments/{id}/refund
func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	refund, err := h.svc.Refund(id)
	switch {
	case errors.Is(err, store.ErrPaymentNotFound):
		httpx.RespondNotFound(w, "Payment not found", id)
	case errors.Is(err, service.ErrNotRefundable):
		httpx.RespondError(w, http.StatusBadRequest, "Can only refund completed payments")
	case err != nil:
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
	default:
		httpx.RespondJSON(w, http.StatusOK, refund)
	}
}
