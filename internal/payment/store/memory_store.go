package store

import (
	"sync"

	"github.com/fjod/go_shop/internal/payment/domain"
)

// MemoryStore implements PaymentStore with in-memory storage. The slice
// preserves insertion order for the audit trail; the mutex gives the
// read-modify-write atomicity the single-collection model relies on.
type MemoryStore struct {
	mu       sync.RWMutex
	payments []*domain.Payment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(p *domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *p
	s.payments = append(s.payments, &cp)
}

func (s *MemoryStore) GetByID(id string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payments {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrPaymentNotFound
}

func (s *MemoryStore) ListByOrder(orderID string) []*domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Payment, 0)
	for _, p := range s.payments {
		if p.OrderID == orderID {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result
}
