package domain

import "time"

// NotificationStatus transitions only sent -> read.
type NotificationStatus string

const (
	StatusSent NotificationStatus = "sent"
	StatusRead NotificationStatus = "read"
)

type Notification struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Type      string             `json:"type"`
	Message   string             `json:"message"`
	OrderID   string             `json:"orderId,omitempty"`
	Email     string             `json:"email,omitempty"`
	Phone     string             `json:"phone,omitempty"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	ReadAt    *time.Time         `json:"readAt,omitempty"`
}
