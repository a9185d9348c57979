package store

import (
	"sync"

	"github.com/fjod/go_shop/internal/order/domain"
)

// MemoryStore implements OrderStore with in-memory storage.
type MemoryStore struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *o
	s.orders = append(s.orders, &cp)
}

func (s *MemoryStore) GetByID(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *MemoryStore) List() []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		cp := *o
		result = append(result, &cp)
	}
	return result
}

func (s *MemoryStore) Update(id string, mutate func(*domain.Order)) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			mutate(o)
			cp := *o
			return &cp, nil
		}
	}
	return nil, ErrOrderNotFound
}
