// Package api is the SDK's single chokepoint for authenticated backend
// calls. Every request attaches the bearer session token here, and every
// 401 is handled here: the session is torn down via the rejection hook
// before the error is returned, so no screen can keep trusting a session
// another call just saw rejected.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/sdk/autherr"
)

// TokenSource yields the current session token; empty means signed out.
type TokenSource interface {
	Token() string
}

// Client wraps the backend's session-bearing endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	onRejected func()
}

// NewClient creates the authenticated API client. onRejected runs
// synchronously whenever any call observes a 401, before the error
// propagates to the caller.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, onRejected func()) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		onRejected: onRejected,
	}
}

// GetMe fetches the current user projection.
func (c *Client) GetMe(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CompleteProfile submits the profile-completion form. Field-level
// rejections come back as *autherr.ValidationError.
func (c *Client) CompleteProfile(ctx context.Context, req *models.CompleteProfileRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/profile/complete", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout revokes the current session server-side. Best-effort: the local
// session is cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return autherr.ErrNetworkUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onRejected != nil {
			c.onRejected()
		}
		return autherr.ErrSessionRejected
	case resp.StatusCode == http.StatusUnprocessableEntity:
		var envelope struct {
			Fields models.FieldErrors `json:"fields"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &autherr.ValidationError{Fields: envelope.Fields}
	case resp.StatusCode == http.StatusTooManyRequests:
		return autherr.ErrRateLimited
	case resp.StatusCode >= 400:
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("request reported failure")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
