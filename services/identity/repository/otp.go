package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sewago/sewago/internal/pkg/constants"
	"github.com/sewago/sewago/internal/pkg/models"
)

// SaveOTPChallenge stores the challenge in Redis keyed by phone number.
// The TTL doubles as the expiry enforcement of last resort.
func (r *IdentityRepo) SaveOTPChallenge(ctx context.Context, challenge *models.OTPChallenge, ttl time.Duration) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	key := fmt.Sprintf(constants.KeyOTPChallenge, challenge.Phone)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP challenge in Redis: %w", err)
	}
	return nil
}

// GetOTPChallenge returns the outstanding challenge for the phone, or
// (nil, nil) when none exists.
func (r *IdentityRepo) GetOTPChallenge(ctx context.Context, phone string) (*models.OTPChallenge, error) {
	key := fmt.Sprintf(constants.KeyOTPChallenge, phone)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP challenge: %w", err)
	}

	var challenge models.OTPChallenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}
	return &challenge, nil
}

// DeleteOTPChallenge discards the challenge for the phone
func (r *IdentityRepo) DeleteOTPChallenge(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyOTPChallenge, phone)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP challenge: %w", err)
	}
	return nil
}

// IncrOTPSends bumps the per-phone send counter and returns the new count.
// The window TTL is set on first increment only.
func (r *IdentityRepo) IncrOTPSends(ctx context.Context, phone string, window time.Duration) (int64, error) {
	return r.incrWithWindow(ctx, fmt.Sprintf(constants.KeyOTPSendCount, phone), window)
}

// IncrSignInAttempts bumps the per-identifier sign-in counter and returns
// the new count.
func (r *IdentityRepo) IncrSignInAttempts(ctx context.Context, identifier string, window time.Duration) (int64, error) {
	return r.incrWithWindow(ctx, fmt.Sprintf(constants.KeySignInAttempts, identifier), window)
}

func (r *IdentityRepo) incrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	if count == 1 {
		if err := r.redisClient.Expire(ctx, key, window); err != nil {
			return 0, fmt.Errorf("failed to set counter window: %w", err)
		}
	}
	return count, nil
}
