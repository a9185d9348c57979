package store

import (
	"errors"
	"time"

	"github.com/fjod/go_shop/internal/notification/domain"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Filter narrows List results; zero-value fields match everything.
type Filter struct {
	UserID string
	Type   string
	Status domain.NotificationStatus
}

type NotificationStore interface {
	Append(n *domain.Notification)

	// GetByID returns the record or ErrNotificationNotFound.
	GetByID(id string) (*domain.Notification, error)

	// List returns matching records in insertion order.
	List(f Filter) []*domain.Notification

	// MarkRead sets the status to read and stamps the read time. Calling
	// it on an already-read record succeeds again and overwrites the
	// timestamp; that is current behavior, not a guarantee of a no-op.
	MarkRead(id string, at time.Time) (*domain.Notification, error)
}
