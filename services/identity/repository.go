package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sewago/sewago/services/identity IdentityRepo

// IdentityRepo defines the identity persistence interface. User records
// live in Postgres; challenges, attempt counters and revocations live in
// Redis.
type IdentityRepo interface {
	// users
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByProviderUID(ctx context.Context, providerUID string) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	MarkPhoneVerified(ctx context.Context, id uuid.UUID) error
	CompleteProfile(ctx context.Context, user *models.User) error

	// OTP challenges
	SaveOTPChallenge(ctx context.Context, challenge *models.OTPChallenge, ttl time.Duration) error
	GetOTPChallenge(ctx context.Context, phone string) (*models.OTPChallenge, error)
	DeleteOTPChallenge(ctx context.Context, phone string) error

	// attempt counters
	IncrOTPSends(ctx context.Context, phone string, window time.Duration) (int64, error)
	IncrSignInAttempts(ctx context.Context, identifier string, window time.Duration) (int64, error)

	// session revocation
	RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error
	RevokeUser(ctx context.Context, userID uuid.UUID, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string, userID uuid.UUID) (bool, error)
}
