package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fjod/go_shop/internal/order/client"
	"github.com/fjod/go_shop/internal/order/domain"
)

// Cancel cancels an order. A confirmed order with a stored payment
// reference gets a compensating refund attempt first; the refund's
// outcome never blocks the cancellation. A delivered order cannot be
// cancelled. Finishes with a best-effort cancellation notification.
func (s *OrderService) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.StatusDelivered {
		return nil, ErrCancelDelivered
	}

	if order.PaymentID != "" && order.Status == domain.StatusConfirmed {
		refundCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
		if err := s.payments.Refund(refundCtx, order.PaymentID); err != nil {
			s.log.Warnw("refund failed", "order_id", order.ID, "payment_id", order.PaymentID, "error", err)
		}
		cancel()
	}

	cancelled, err := s.store.Update(id, func(o *domain.Order) {
		now := time.Now().UTC()
		o.Status = domain.StatusCancelled
		o.CancelledAt = &now
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, client.NotificationRequest{
		UserID:  cancelled.UserID,
		Type:    "order_cancelled",
		Message: fmt.Sprintf("Your order #%s has been cancelled.", cancelled.ID),
		OrderID: cancelled.ID,
	})

	return cancelled, nil
}

// UpdateStatus is an administrative override: any valid status is
// accepted regardless of the saga's normal transitions, so operators
// can move stuck orders by hand.
func (s *OrderService) UpdateStatus(id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	return s.store.Update(id, func(o *domain.Order) {
		now := time.Now().UTC()
		o.Status = status
		o.UpdatedAt = &now
	})
}
