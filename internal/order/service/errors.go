package service

import "errors"

var (
	ErrMissingFields      = errors.New("user id and items are required")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrCancelDelivered    = errors.New("cannot cancel delivered order")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrPaymentUnavailable = errors.New("payment service unavailable")
)
