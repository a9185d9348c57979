package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fjod/go_shop/internal/order/client"
	"github.com/fjod/go_shop/internal/order/domain"
	"github.com/fjod/go_shop/internal/order/store"
)

const DefaultPaymentMethod = "credit_card"

// PaymentGateway is the payment service seen from the orchestrator.
type PaymentGateway interface {
	Charge(ctx context.Context, req client.ChargeRequest) (*client.ChargeResult, error)
	Refund(ctx context.Context, paymentID string) error
}

// Notifier is the notification service seen from the orchestrator.
type Notifier interface {
	Send(ctx context.Context, req client.NotificationRequest) error
}

type OrderService struct {
	store       store.OrderStore
	payments    PaymentGateway
	notifier    Notifier
	callTimeout time.Duration
	log         *zap.SugaredLogger
}

func NewOrderService(
	store store.OrderStore,
	payments PaymentGateway,
	notifier Notifier,
	callTimeout time.Duration,
	log *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		store:       store,
		payments:    payments,
		notifier:    notifier,
		callTimeout: callTimeout,
		log:         log,
	}
}

func (s *OrderService) GetByID(id string) (*domain.Order, error) {
	return s.store.GetByID(id)
}

func (s *OrderService) List() []*domain.Order {
	return s.store.List()
}

// notify delivers a best-effort notification. The outcome is logged and
// discarded; it must never influence the primary operation's result.
func (s *OrderService) notify(ctx context.Context, req client.NotificationRequest) {
	nctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	if err := s.notifier.Send(nctx, req); err != nil {
		s.log.Warnw("failed to send notification",
			"type", req.Type,
			"order_id", req.OrderID,
			"error", err,
		)
	}
}
