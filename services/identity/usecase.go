package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sewago/sewago/services/identity IdentityUC

// IdentityUC represents the identity usecase interface
type IdentityUC interface {
	// Exchange an external identity token for an application session,
	// creating the user record on first contact.
	Exchange(ctx context.Context, req *models.ExchangeRequest) (*models.AuthResponse, error)

	// handle OTP
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error)

	// profile completion
	CompleteProfile(ctx context.Context, userID uuid.UUID, req *models.CompleteProfileRequest) (*models.User, error)

	// session-bearing operations
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Logout(ctx context.Context, sessionID string, userID uuid.UUID) error
}
