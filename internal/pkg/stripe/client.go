package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrCardDeclined is returned when the gateway rejects the charge. Transport
// failures and timeouts are wrapped into it as well: a charge we cannot
// confirm is treated as declined, never as success.
var ErrCardDeclined = errors.New("card declined")

// Config holds gateway API configuration
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the card payment gateway.
type Client struct {
	httpClient *http.Client
	config     Config
}

// PaymentIntent is the gateway's view of a confirmed charge.
type PaymentIntent struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates a new gateway client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		config:     cfg,
	}
}

// Charge confirms a card payment for the given amount (major currency units).
// idempotencyKey makes retried calls safe on the gateway side.
func (c *Client) Charge(ctx context.Context, amount float64, currency, paymentMethod, idempotencyKey string) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("validation error: amount must be > 0")
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, fmt.Errorf("validation error: payment method must be non-empty")
	}
	if c == nil || c.httpClient == nil {
		return nil, fmt.Errorf("stripe client is not initialized")
	}
	if strings.TrimSpace(c.config.APIKey) == "" {
		return nil, fmt.Errorf("stripe config error: api key is empty")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(amount*100), 10)) // minor units
	form.Set("currency", currency)
	form.Set("payment_method", paymentMethod)
	form.Set("confirm", "true")
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("automatic_payment_methods[allow_redirects]", "never")

	base := strings.TrimRight(c.config.BaseURL, "/")
	endpoint := base + "/v1/payment_intents"

	timeout := c.config.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("stripe api call failed: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Timeout or transport failure: fail closed.
		return nil, fmt.Errorf("%w: %v", ErrCardDeclined, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("stripe response read failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrCardDeclined, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: gateway status %d", ErrCardDeclined, resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("stripe response decode failed: %w", err)
	}

	if intent.Status != "succeeded" {
		return nil, fmt.Errorf("%w: intent status %s", ErrCardDeclined, intent.Status)
	}

	return &intent, nil
}
