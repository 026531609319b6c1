package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging surface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the association's payment provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a payment provider client.
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCharge submits a charge to the provider.
func (c *Client) CreateCharge(ctx context.Context, chargeReq *ChargeRequest) (*Charge, error) {
	url := fmt.Sprintf("%s/v1/charges", c.baseURL)

	body, err := json.Marshal(chargeReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Continue below
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return nil, ErrChargeDeclined
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var charge Charge
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !charge.Approved() {
		return nil, ErrChargeDeclined
	}

	return &charge, nil
}

// CreateChargeWithGracefulDegradation wraps CreateCharge so that
// provider outages surface as ErrServiceDegraded instead of opaque
// transport errors. Declines are business outcomes and pass through.
func (c *Client) CreateChargeWithGracefulDegradation(ctx context.Context, chargeReq *ChargeRequest) (*Charge, error) {
	c.log.Info("Creating charge reference=%s amount_cents=%d", chargeReq.Reference, chargeReq.AmountCents)

	charge, err := c.CreateCharge(ctx, chargeReq)
	if err != nil {
		if err == ErrChargeDeclined {
			c.log.Warn("Charge declined for reference=%s", chargeReq.Reference)
			return nil, err
		}

		c.log.Error("Payment provider unavailable for reference=%s: %v", chargeReq.Reference, err)
		return nil, fmt.Errorf("%w: reference=%s, error=%v", ErrServiceDegraded, chargeReq.Reference, err)
	}

	c.log.Info("Charge approved reference=%s charge_id=%s", chargeReq.Reference, charge.ID)
	return charge, nil
}
