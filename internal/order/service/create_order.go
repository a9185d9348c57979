package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fjod/go_shop/internal/order/client"
	"github.com/fjod/go_shop/internal/order/domain"
)

type CreateOrderRequest struct {
	UserID          string
	Items           []domain.OrderItem
	ShippingAddress map[string]interface{}
	PaymentMethod   string
}

// CreateOrder runs the order saga: persist a pending order, charge the
// payment service synchronously, branch on the outcome, then attempt a
// best-effort confirmation notification.
//
// The pending record is stored before the charge attempt, so a payment
// outage still leaves a retrievable payment_failed order rather than
// nothing. On a decline the returned error is ErrPaymentDeclined, on a
// transport failure ErrPaymentUnavailable; in both cases the returned
// order carries the terminal state for this request.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if req.UserID == "" || len(req.Items) == 0 {
		return nil, ErrMissingFields
	}

	method := req.PaymentMethod
	if method == "" {
		method = DefaultPaymentMethod
	}
	address := req.ShippingAddress
	if address == nil {
		address = map[string]interface{}{}
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		Items:           req.Items,
		TotalAmount:     domain.TotalAmount(req.Items),
		Status:          domain.StatusPending,
		ShippingAddress: address,
		PaymentMethod:   method,
		CreatedAt:       time.Now().UTC(),
	}
	s.store.Append(order)

	chargeCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	result, err := s.payments.Charge(chargeCtx, client.ChargeRequest{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
	})
	if err != nil {
		s.log.Errorw("payment service error", "order_id", order.ID, "error", err)
		failed, updateErr := s.store.Update(order.ID, func(o *domain.Order) {
			o.Status = domain.StatusPaymentFailed
			o.PaymentError = "Payment service unavailable"
		})
		if updateErr != nil {
			return nil, updateErr
		}
		return failed, ErrPaymentUnavailable
	}

	if result.Declined {
		failed, updateErr := s.store.Update(order.ID, func(o *domain.Order) {
			o.Status = domain.StatusPaymentFailed
			o.PaymentError = result.Reason
		})
		if updateErr != nil {
			return nil, updateErr
		}
		// No notification on a decline; only a confirmed order notifies.
		return failed, ErrPaymentDeclined
	}

	confirmed, err := s.store.Update(order.ID, func(o *domain.Order) {
		now := time.Now().UTC()
		o.Status = domain.StatusConfirmed
		o.PaymentID = result.PaymentID
		o.ConfirmedAt = &now
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, client.NotificationRequest{
		UserID:  confirmed.UserID,
		Type:    "order_confirmed",
		Message: fmt.Sprintf("Your order #%s has been confirmed!", confirmed.ID),
		OrderID: confirmed.ID,
	})

	return confirmed, nil
}
