package identity

import (
	"context"

	"github.com/sewago/sewago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sewago/sewago/services/identity IdentityGW

// IdentityGW defines the identity gateways interface
type IdentityGW interface {
	// Identity provider gateway: backend-side verification of the external
	// identity token. The provider is the only party trusted to have
	// checked the token's signature and expiry.
	VerifyIdentityToken(ctx context.Context, identityToken string) (*models.VerifiedIdentity, error)

	// NATS gateway
	PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error
	PublishProfileCompleted(ctx context.Context, event *models.ProfileCompletedEvent) error
	RequestOTPDelivery(ctx context.Context, phone, code string) error

	// MirrorProfile pushes the user projection to secondary profile
	// consumers. Fire-and-forget: implementations log failures and never
	// return them into the authorization path.
	MirrorProfile(user *models.User)
}
