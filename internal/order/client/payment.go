package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// PaymentClient talks to the payment service over HTTP. Calls are
// single-attempt; there are no retries anywhere in the mesh.
type PaymentClient struct {
	baseURL string
	http    *http.Client
}

func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type ChargeRequest struct {
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// ChargeResult distinguishes a business decline (Declined with the
// failed record's id and reason) from a transport failure, which is
// returned as an error instead.
type ChargeResult struct {
	PaymentID string
	Declined  bool
	Reason    string
}

type chargeResponseDTO struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func (c *PaymentClient) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build charge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call payment service: %w", err)
	}
	defer resp.Body.Close()

	var body chargeResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode charge response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		return &ChargeResult{PaymentID: body.ID}, nil
	case http.StatusPaymentRequired:
		return &ChargeResult{PaymentID: body.ID, Declined: true, Reason: body.Error}, nil
	default:
		return nil, fmt.Errorf("payment service returned status %d", resp.StatusCode)
	}
}

func (c *PaymentClient) Refund(ctx context.Context, paymentID string) error {
	url := fmt.Sprintf("%s/payments/%s/refund", c.baseURL, paymentID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("build refund request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("call payment service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("payment service returned status %d", resp.StatusCode)
	}
	return nil
}
