package domain

import (
	"math"
	"time"
)

type OrderStatus string

const (
	StatusPending       OrderStatus = "pending"
	StatusConfirmed     OrderStatus = "confirmed"
	StatusPaymentFailed OrderStatus = "payment_failed"
	StatusShipped       OrderStatus = "shipped"
	StatusDelivered     OrderStatus = "delivered"
	StatusCancelled     OrderStatus = "cancelled"
)

// ValidStatuses are the values accepted by the administrative status
// update, in the order they are reported back on a validation failure.
var ValidStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func IsValidStatus(s OrderStatus) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	Items           []OrderItem            `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	Status          OrderStatus            `json:"status"`
	ShippingAddress map[string]interface{} `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`

	// PaymentID is set only when the order has reached confirmed;
	// PaymentError only when a charge was declined or unreachable.
	PaymentID    string `json:"paymentId,omitempty"`
	PaymentError string `json:"paymentError,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// TotalAmount sums price*quantity over the items, rounded to cents.
// The stored total is always derived from the items at creation and
// never independently mutated afterwards.
func TotalAmount(items []OrderItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return math.Round(sum*100) / 100
}
