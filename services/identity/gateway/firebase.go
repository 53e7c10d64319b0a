package gateway

import (
	"context"
	"fmt"

	"github.com/sewago/sewago/internal/pkg/models"
)

// VerifyIdentityToken checks the token's signature and expiry against the
// identity provider and projects the claims worth keeping. Any verification
// failure is terminal; callers must not fall back to decoding the token
// themselves.
func (g *IdentityGW) VerifyIdentityToken(ctx context.Context, identityToken string) (*models.VerifiedIdentity, error) {
	token, err := g.authClient.VerifyIDToken(ctx, identityToken)
	if err != nil {
		return nil, fmt.Errorf("identity token verification failed: %w", err)
	}

	verified := &models.VerifiedIdentity{
		ProviderUID: token.UID,
	}
	if v, ok := token.Claims["email"].(string); ok {
		verified.Email = v
	}
	if v, ok := token.Claims["email_verified"].(bool); ok {
		verified.EmailVerified = v
	}
	if v, ok := token.Claims["phone_number"].(string); ok {
		verified.Phone = v
		verified.PhoneVerified = true
	}
	if v, ok := token.Claims["name"].(string); ok {
		verified.DisplayName = v
	}

	return verified, nil
}
