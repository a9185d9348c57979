package service

import (
	"context"

	"github.com/fjod/go_shop/internal/order/client"
)

// MockPaymentGateway implements PaymentGateway for testing.
type MockPaymentGateway struct {
	ChargeResult *client.ChargeResult
	ChargeErr    error
	ChargeCalls  []client.ChargeRequest

	RefundErr   error
	RefundCalls []string
}

func (m *MockPaymentGateway) Charge(_ context.Context, req client.ChargeRequest) (*client.ChargeResult, error) {
	m.ChargeCalls = append(m.ChargeCalls, req)
	if m.ChargeErr != nil {
		return nil, m.ChargeErr
	}
	return m.ChargeResult, nil
}

func (m *MockPaymentGateway) Refund(_ context.Context, paymentID string) error {
	m.RefundCalls = append(m.RefundCalls, paymentID)
	return m.RefundErr
}

// MockNotifier implements Notifier for testing.
type MockNotifier struct {
	SendErr   error
	SendCalls []client.NotificationRequest
}

func (m *MockNotifier) Send(_ context.Context, req client.NotificationRequest) error {
	m.SendCalls = append(m.SendCalls, req)
	return m.SendErr
}
