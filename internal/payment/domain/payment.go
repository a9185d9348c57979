package domain

import "time"

// PaymentStatus represents the terminal outcome of a payment or refund.
type PaymentStatus string

const (
	StatusCompleted PaymentStatus = "completed"
	StatusFailed    PaymentStatus = "failed"
	StatusRefunded  PaymentStatus = "refunded"
)

// Payment is a charge or refund record. Both shapes live in the same
// collection so refunds are addressable through the same lookups as
// charges. Records are immutable once appended; a refund never touches
// the original payment.
type Payment struct {
	ID                string        `json:"id"`
	OrderID           string        `json:"orderId,omitempty"`
	OriginalPaymentID string        `json:"originalPaymentId,omitempty"`
	Amount            float64       `json:"amount"`
	Currency          string        `json:"currency"`
	PaymentMethod     string        `json:"paymentMethod,omitempty"`
	Status            PaymentStatus `json:"status"`
	TransactionID     string        `json:"transactionId,omitempty"`
	ProcessedAt       *time.Time    `json:"processedAt,omitempty"`
	RefundedAt        *time.Time    `json:"refundedAt,omitempty"`
}
