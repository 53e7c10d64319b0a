package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/constants"
)

// RevokeSession blacklists a single session token by its jti claim
func (r *IdentityRepo) RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyRevokedSession, sessionID)
	if err := r.redisClient.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// RevokeUser blacklists every outstanding session of a user, used when an
// account is deactivated.
func (r *IdentityRepo) RevokeUser(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyRevokedUser, userID.String())
	if err := r.redisClient.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke user sessions: %w", err)
	}
	return nil
}

// IsRevoked reports whether the session or its user has been blacklisted
func (r *IdentityRepo) IsRevoked(ctx context.Context, sessionID string, userID uuid.UUID) (bool, error) {
	sessionKey := fmt.Sprintf(constants.KeyRevokedSession, sessionID)
	if _, err := r.redisClient.Get(ctx, sessionKey); err == nil {
		return true, nil
	} else if !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("failed to check session revocation: %w", err)
	}

	userKey := fmt.Sprintf(constants.KeyRevokedUser, userID.String())
	if _, err := r.redisClient.Get(ctx, userKey); err == nil {
		return true, nil
	} else if !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("failed to check user revocation: %w", err)
	}

	return false, nil
}
