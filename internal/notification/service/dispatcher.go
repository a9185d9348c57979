package service

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fjod/go_shop/internal/notification/domain"
	"github.com/fjod/go_shop/internal/notification/store"
)

const DefaultListLimit = 50

var ErrMissingFields = errors.New("user id, type, and message are required")

type SendRequest struct {
	UserID  string
	Type    string
	Message string
	OrderID string
	Email   string
	Phone   string
}

// BulkResult is one entry of a bulk send: either a created notification
// or the validation error for the request at that position.
type BulkResult struct {
	Notification *domain.Notification
	Request      SendRequest
	Err          error
}

type Dispatcher struct {
	store store.NotificationStore
	log   *zap.SugaredLogger
}

func NewDispatcher(store store.NotificationStore, log *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{store: store, log: log}
}

// Send records a notification and simulates delivery over the channel
// implied by its type. The channel simulation is a side effect only; it
// does not influence the stored record.
func (d *Dispatcher) Send(req SendRequest) (*domain.Notification, error) {
	if req.UserID == "" || req.Type == "" || req.Message == "" {
		return nil, ErrMissingFields
	}

	n := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Type:      req.Type,
		Message:   req.Message,
		OrderID:   req.OrderID,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    domain.StatusSent,
		CreatedAt: time.Now().UTC(),
	}
	d.store.Append(n)

	d.log.Infow("notification delivered",
		"notification_id", n.ID,
		"user_id", n.UserID,
		"type", n.Type,
		"channel", channelFor(n.Type),
	)
	return n, nil
}

// channelFor maps a notification type to its simulated delivery channel.
func channelFor(typ string) string {
	switch typ {
	case "order_confirmed", "order_cancelled", "payment_failed":
		return "email"
	case "order_shipped":
		return "sms"
	case "order_delivered":
		return "push"
	default:
		return "generic"
	}
}

func (d *Dispatcher) GetByID(id string) (*domain.Notification, error) {
	return d.store.GetByID(id)
}

// List returns notifications filtered by optional user and type, newest
// first, truncated to limit. A non-positive limit falls back to
// DefaultListLimit.
func (d *Dispatcher) List(userID, typ string, limit int) []*domain.Notification {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	result := d.store.List(store.Filter{UserID: userID, Type: typ})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

func (d *Dispatcher) MarkRead(id string) (*domain.Notification, error) {
	return d.store.MarkRead(id, time.Now().UTC())
}

func (d *Dispatcher) UnreadForUser(userID string) []*domain.Notification {
	return d.store.List(store.Filter{UserID: userID, Status: domain.StatusSent})
}

// SendBulk processes each request independently in order. A validation
// failure yields an error entry at that position without aborting the
// rest; only valid entries are persisted.
func (d *Dispatcher) SendBulk(reqs []SendRequest) []BulkResult {
	results := make([]BulkResult, 0, len(reqs))
	for _, req := range reqs {
		n, err := d.Send(req)
		results = append(results, BulkResult{Notification: n, Request: req, Err: err})
	}
	return results
}
