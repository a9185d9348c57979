package store

import (
	"sync"
	"time"

	"github.com/fjod/go_shop/internal/user/domain"
)

type MemoryStore struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededStore returns a store preloaded with demo accounts.
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore()
	now := time.Now().UTC()
	s.Append(&domain.User{ID: "1", Name: "John Doe", Email: "john@example.com", Role: "customer", CreatedAt: now})
	s.Append(&domain.User{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Role: "admin", CreatedAt: now})
	return s
}

func (s *MemoryStore) Append(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *user
	s.users = append(s.users, &copied)
}

func (s *MemoryStore) GetByID(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) List() []*domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		copied := *u
		users = append(users, &copied)
	}
	return users
}

func (s *MemoryStore) Update(id string, mutate func(*domain.User)) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			mutate(u)
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}
