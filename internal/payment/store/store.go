package store

import (
	"errors"

	"github.com/fjod/go_shop/internal/payment/domain"
)

var ErrPaymentNotFound = errors.New("payment not found")

// PaymentStore is an append-only collection of payment and refund
// records. Records are never updated or deleted.
type PaymentStore interface {
	Append(p *domain.Payment)

	// GetByID returns the record or ErrPaymentNotFound.
	GetByID(id string) (*domain.Payment, error)

	// ListByOrder returns every record whose order reference matches,
	// in insertion order. May be empty.
	ListByOrder(orderID string) []*domain.Payment
}
