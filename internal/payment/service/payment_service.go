package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fjod/go_shop/internal/payment/domain"
	"github.com/fjod/go_shop/internal/payment/store"
)

const DefaultCurrency = "USD"

// Decider decides whether a charge succeeds. Production uses FixedRate;
// tests inject deterministic outcomes.
type Decider func() bool

// FixedRate returns a Decider that succeeds with the given probability,
// independently per call.
func FixedRate(rate float64) Decider {
	return func() bool {
		return rand.Float64() < rate
	}
}

type ChargeRequest struct {
	OrderID       string
	Amount        float64
	Currency      string
	PaymentMethod string
}

type PaymentService struct {
	store  store.PaymentStore
	decide Decider
	log    *zap.SugaredLogger
}

func NewPaymentService(store store.PaymentStore, decide Decider, log *zap.SugaredLogger) *PaymentService {
	return &PaymentService{
		store:  store,
		decide: decide,
		log:    log,
	}
}

// Charge processes a payment for an order. The record is appended to
// storage regardless of outcome; a declined charge is returned together
// with ErrPaymentDeclined so the caller can surface the record.
func (s *PaymentService) Charge(req ChargeRequest) (*domain.Payment, error) {
	if req.OrderID == "" || req.Amount <= 0 || req.PaymentMethod == "" {
		return nil, ErrMissingFields
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Currency:      currency,
		PaymentMethod: req.PaymentMethod,
		ProcessedAt:   &now,
	}

	if s.decide() {
		payment.Status = domain.StatusCompleted
		payment.TransactionID = fmt.Sprintf("txn_%d", now.UnixMilli())
	} else {
		payment.Status = domain.StatusFailed
	}

	s.store.Append(payment)

	if payment.Status == domain.StatusFailed {
		s.log.Infow("payment declined", "payment_id", payment.ID, "order_id", req.OrderID, "amount", req.Amount)
		return payment, ErrPaymentDeclined
	}

	s.log.Infow("payment completed", "payment_id", payment.ID, "order_id", req.OrderID, "amount", req.Amount)
	return payment, nil
}

func (s *PaymentService) GetByID(id string) (*domain.Payment, error) {
	return s.store.GetByID(id)
}

func (s *PaymentService) ListByOrder(orderID string) []*domain.Payment {
	return s.store.ListByOrder(orderID)
}

// Refund produces a new refund record referencing a completed payment.
// The original record stays untouched.
func (s *PaymentService) Refund(paymentID string) (*domain.Payment, error) {
	payment, err := s.store.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.StatusCompleted {
		return nil, ErrNotRefundable
	}

	now := time.Now().UTC()
	refund := &domain.Payment{
		ID:                uuid.New().String(),
		OriginalPaymentID: payment.ID,
		Amount:            payment.Amount,
		Currency:          payment.Currency,
		Status:            domain.StatusRefunded,
		RefundedAt:        &now,
	}
	s.store.Append(refund)

	s.log.Infow("payment refunded", "refund_id", refund.ID, "payment_id", payment.ID, "amount", refund.Amount)
	return refund, nil
}
