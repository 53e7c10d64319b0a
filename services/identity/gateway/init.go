package gateway

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	fbAuth "firebase.google.com/go/auth"
	"github.com/sewago/sewago/internal/pkg/models"
	natspkg "github.com/sewago/sewago/internal/pkg/nats"
	"google.golang.org/api/option"
)

// IdentityGW bridges the identity service to its external dependencies:
// the identity provider's admin SDK for token verification and the NATS
// bus for domain events.
type IdentityGW struct {
	cfg        *models.Config
	authClient *fbAuth.Client
	natsClient *natspkg.Client
}

// NewIdentityGW creates a new identity gateway instance
func NewIdentityGW(ctx context.Context, cfg *models.Config, natsClient *natspkg.Client) (*IdentityGW, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID},
		option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider auth client: %w", err)
	}

	return &IdentityGW{
		cfg:        cfg,
		authClient: authClient,
		natsClient: natsClient,
	}, nil
}
