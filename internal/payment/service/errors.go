package service

import "errors"

var (
	ErrMissingFields   = errors.New("order id, amount, and payment method are required")
	ErrPaymentDeclined = errors.New("payment declined, insufficient funds")
	ErrNotRefundable   = errors.New("can only refund completed payments")
)
