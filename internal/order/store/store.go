package store

import (
	"errors"

	"github.com/fjod/go_shop/internal/order/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore holds every order for the process lifetime; orders are
// mutated through Update but never deleted, keeping the audit trail.
type OrderStore interface {
	Append(o *domain.Order)

	// GetByID returns a copy of the order or ErrOrderNotFound.
	GetByID(id string) (*domain.Order, error)

	// List returns copies of all orders in insertion order.
	List() []*domain.Order

	// Update applies mutate to the stored order under the store lock,
	// making the find-then-mutate sequence atomic, and returns a copy of
	// the result.
	Update(id string, mutate func(*domain.Order)) (*domain.Order, error)
}
