// Package reconcile exchanges an external identity token for a backend
// session. The backend independently verifies the token and is the single
// source of truth for the resulting user record.
package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/internal/pkg/retry"
	"github.com/sewago/sewago/sdk/autherr"
)

// Client calls the backend verification endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a reconciliation client for the given backend base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var errTransport = errors.New("transport failure")

// Exchange submits the identity token (plus optional profile hints) and
// returns the backend session. A transport failure is retried exactly once,
// silently; a second consecutive failure surfaces as ErrNetworkUnavailable.
// This is a user-initiated action, so there is no further background retry.
func (c *Client) Exchange(ctx context.Context, identityToken string, hints *models.ProfileHints) (*models.AuthResponse, error) {
	reqBody, err := json.Marshal(models.ExchangeRequest{
		IdentityToken: identityToken,
		Hints:         hints,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal exchange request: %w", err)
	}

	var result *models.AuthResponse
	err = retry.Do(ctx, retry.Config{
		MaxRetries: 1,
		RetryableFunc: func(err error) bool {
			return errors.Is(err, errTransport)
		},
	}, func(ctx context.Context) error {
		result, err = c.exchangeOnce(ctx, reqBody)
		return err
	})

	if errors.Is(err, errTransport) {
		return nil, autherr.ErrNetworkUnavailable
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) exchangeOnce(ctx context.Context, body []byte) (*models.AuthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/exchange", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build exchange request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errTransport
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		// The provider token did not verify; treat as bad credentials.
		return nil, autherr.ErrInvalidCredentials
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, autherr.ErrRateLimited
	case resp.StatusCode >= 500:
		return nil, errTransport
	default:
		return nil, fmt.Errorf("exchange rejected with status %d", resp.StatusCode)
	}

	var envelope struct {
		Success bool                 `json:"success"`
		Data    *models.AuthResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode exchange response: %w", err)
	}
	if !envelope.Success || envelope.Data == nil {
		// Never act on a partial response.
		return nil, fmt.Errorf("exchange returned an incomplete response")
	}

	return envelope.Data, nil
}
