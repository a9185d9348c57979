package store

import (
	"sync"
	"time"

	"github.com/fjod/go_shop/internal/notification/domain"
)

// MemoryStore implements NotificationStore with in-memory storage.
type MemoryStore struct {
	mu            sync.RWMutex
	notifications []*domain.Notification
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(n *domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *n
	s.notifications = append(s.notifications, &cp)
}

func (s *MemoryStore) GetByID(id string) (*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, ErrNotificationNotFound
}

func (s *MemoryStore) List(f Filter) []*domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Notification, 0)
	for _, n := range s.notifications {
		if f.UserID != "" && n.UserID != f.UserID {
			continue
		}
		if f.Type != "" && n.Type != f.Type {
			continue
		}
		if f.Status != "" && n.Status != f.Status {
			continue
		}
		cp := *n
		result = append(result, &cp)
	}
	return result
}

func (s *MemoryStore) MarkRead(id string, at time.Time) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.ID == id {
			n.Status = domain.StatusRead
			readAt := at
			n.ReadAt = &readAt
			cp := *n
			return &cp, nil
		}
	}
	return nil, ErrNotificationNotFound
}
