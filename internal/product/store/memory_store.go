package store

import (
	"sync"
	"time"

	"github.com/fjod/go_shop/internal/product/domain"
)

type MemoryStore struct {
	mu       sync.RWMutex
	products []*domain.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededStore returns a store preloaded with the demo catalog.
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore()
	now := time.Now().UTC()
	for _, p := range []*domain.Product{
		{ID: "1", Name: "Wireless Headphones", Price: 99.99, Description: "High-quality wireless headphones with noise cancellation", Category: "Electronics", Stock: 50},
		{ID: "2", Name: "Smart Watch", Price: 199.99, Description: "Advanced smartwatch with health monitoring features", Category: "Electronics", Stock: 25},
		{ID: "3", Name: "Coffee Maker", Price: 79.99, Description: "Programmable coffee maker with built-in grinder", Category: "Home & Kitchen", Stock: 15},
		{ID: "4", Name: "Running Shoes", Price: 129.99, Description: "Comfortable running shoes with advanced cushioning", Category: "Sports", Stock: 30},
		{ID: "5", Name: "Laptop Stand", Price: 49.99, Description: "Adjustable laptop stand for better ergonomics", Category: "Office", Stock: 40},
	} {
		p.CreatedAt = now
		s.Append(p)
	}
	return s
}

func (s *MemoryStore) Append(product *domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *product
	s.products = append(s.products, &copied)
}

func (s *MemoryStore) GetByID(id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *MemoryStore) List(filter Filter) []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if !matches(p, filter) {
			continue
		}
		copied := *p
		products = append(products, &copied)
	}
	return products
}

func matches(p *domain.Product, filter Filter) bool {
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.MinPrice > 0 && p.Price < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
		return false
	}
	return true
}

func (s *MemoryStore) Update(id string, mutate func(*domain.Product)) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			mutate(p)
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}
