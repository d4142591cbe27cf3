// Package membership wraps the external subscription service. Both calls are
// opaque pass/fail network contracts consumed for UI gating only; no payment
// or authentication logic lives here.
package membership

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnauthenticated reports a failed status check. Callers treat it as an
// implicit logout rather than a hard error.
var ErrUnauthenticated = errors.New("membership: unauthenticated")

// Status is the remote subscription state for one rider.
type Status struct {
	Active bool   `json:"active"`
	Plan   string `json:"plan"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CheckStatus performs the bearer-token status check. Any transport failure
// or non-OK response collapses into ErrUnauthenticated.
func (c *Client) CheckStatus(ctx context.Context, token string) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/membership/status", nil)
	if err != nil {
		return Status{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Status{}, fmt.Errorf("%w: status %d", ErrUnauthenticated, resp.StatusCode)
	}

	var payload struct {
		SubscriptionStatus string `json:"subscription_status"`
		SubscriptionPlan   string `json:"subscription_plan"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return Status{
		Active: payload.SubscriptionStatus == "active",
		Plan:   payload.SubscriptionPlan,
	}, nil
}

// CreateCheckout opens a checkout session for the given plan and returns the
// redirect URL.
func (c *Client) CreateCheckout(ctx context.Context, token, plan string) (string, error) {
	body, err := json.Marshal(map[string]string{"plan": plan})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("checkout session failed: status %d", resp.StatusCode)
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.URL == "" {
		return "", errors.New("checkout session returned no url")
	}
	return payload.URL, nil
}
