// Package idp wraps the external identity provider's REST surface. It
// performs the actual sign-in ceremonies (password, federated, phone) and
// returns a normalized result; provider error codes are translated into
// the autherr taxonomy here and nowhere else.
package idp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/internal/utils"
	"github.com/sewago/sewago/sdk/autherr"
)

// FederatedKind identifies a federated sign-in provider.
type FederatedKind string

const (
	ProviderGoogle   FederatedKind = "google.com"
	ProviderFacebook FederatedKind = "facebook.com"
)

// ProviderUser is the provider's view of the signed-in identity. Claims are
// used only for pre-filling forms, never for authorization.
type ProviderUser struct {
	UID           string `json:"uid"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// SignInResult is the normalized outcome of any sign-in ceremony.
type SignInResult struct {
	IdentityToken string
	User          ProviderUser
}

// ConsentFlow runs a provider-driven consent ceremony (browser popup,
// system sheet) and returns the provider's OAuth credential. The
// environment hosting the SDK supplies the implementation; it reports
// dismissal as autherr.ErrUserCancelled and an unopenable surface as
// autherr.ErrPopupBlocked.
type ConsentFlow interface {
	Run(ctx context.Context, kind FederatedKind) (credential string, err error)
}

// PhoneChallenge is the opaque handle returned by BeginPhoneChallenge and
// consumed by ConfirmPhoneChallenge. SessionInfo ties the confirmation to
// the provider-side challenge.
type PhoneChallenge struct {
	Phone       string
	SessionInfo string
	IssuedAt    time.Time
}

// Client calls the identity provider's REST endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a provider client from configuration.
func NewClient(cfg models.IdPConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SignInWithPassword performs the email/password ceremony.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*SignInResult, error) {
	var resp struct {
		IDToken       string `json:"idToken"`
		LocalID       string `json:"localId"`
		Email         string `json:"email"`
		DisplayName   string `json:"displayName"`
		EmailVerified bool   `json:"emailVerified"`
	}
	err := c.post(ctx, "accounts:signInWithPassword", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &SignInResult{
		IdentityToken: resp.IDToken,
		User: ProviderUser{
			UID:           resp.LocalID,
			Email:         resp.Email,
			DisplayName:   resp.DisplayName,
			EmailVerified: resp.EmailVerified,
		},
	}, nil
}

// SignInWithFederatedProvider runs the consent flow for the given provider
// and exchanges its credential for an identity token. Nothing is written to
// the backend until reconciliation runs.
func (c *Client) SignInWithFederatedProvider(ctx context.Context, kind FederatedKind, flow ConsentFlow) (*SignInResult, error) {
	credential, err := flow.Run(ctx, kind)
	if err != nil {
		// The flow implementation already speaks the taxonomy.
		return nil, err
	}

	var resp struct {
		IDToken       string `json:"idToken"`
		LocalID       string `json:"localId"`
		Email         string `json:"email"`
		DisplayName   string `json:"displayName"`
		EmailVerified bool   `json:"emailVerified"`
	}
	err = c.post(ctx, "accounts:signInWithIdp", map[string]interface{}{
		"postBody":          fmt.Sprintf("%s&providerId=%s", credential, kind),
		"requestUri":        "http://localhost",
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &SignInResult{
		IdentityToken: resp.IDToken,
		User: ProviderUser{
			UID:           resp.LocalID,
			Email:         resp.Email,
			DisplayName:   resp.DisplayName,
			EmailVerified: resp.EmailVerified,
		},
	}, nil
}

// BeginPhoneChallenge validates the phone number locally, then asks the
// provider to send a verification code. The returned handle is consumed by
// the OTP state machine only.
func (c *Client) BeginPhoneChallenge(ctx context.Context, phone string) (*PhoneChallenge, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, autherr.ErrInvalidPhoneFormat
	}

	var resp struct {
		SessionInfo string `json:"sessionInfo"`
	}
	err = c.post(ctx, "accounts:sendVerificationCode", map[string]interface{}{
		"phoneNumber": normalized,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &PhoneChallenge{
		Phone:       normalized,
		SessionInfo: resp.SessionInfo,
		IssuedAt:    time.Now(),
	}, nil
}

// ConfirmPhoneChallenge submits the code for an outstanding challenge.
func (c *Client) ConfirmPhoneChallenge(ctx context.Context, challenge *PhoneChallenge, code string) (*SignInResult, error) {
	var resp struct {
		IDToken     string `json:"idToken"`
		LocalID     string `json:"localId"`
		PhoneNumber string `json:"phoneNumber"`
	}
	err := c.post(ctx, "accounts:signInWithPhoneNumber", map[string]interface{}{
		"sessionInfo": challenge.SessionInfo,
		"code":        code,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &SignInResult{
		IdentityToken: resp.IDToken,
		User: ProviderUser{
			UID:   resp.LocalID,
			Phone: resp.PhoneNumber,
		},
	}, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return autherr.ErrNetworkUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return translateProviderError(envelope.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
