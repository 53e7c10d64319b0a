package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/logger"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/services/identity"
)

// GetUserByID returns the profile behind an authenticated session.
func (u *IdentityUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, identity.ErrUserInactive
	}
	return user, nil
}

// Logout revokes the calling session. The revocation entry only needs to
// outlive the token, so its TTL is the configured token lifetime.
func (u *IdentityUC) Logout(ctx context.Context, sessionID string, userID uuid.UUID) error {
	ttl := time.Duration(u.cfg.JWT.Expiration) * time.Minute
	if err := u.repo.RevokeSession(ctx, sessionID, ttl); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	logger.Info("Session revoked",
		logger.String("session_id", sessionID),
		logger.String("user_id", userID.String()))

	return nil
}
