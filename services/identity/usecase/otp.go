package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	jwtpkg "github.com/sewago/sewago/internal/pkg/jwt"
	"github.com/sewago/sewago/internal/pkg/logger"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/internal/utils"
	"github.com/sewago/sewago/services/identity"
	"golang.org/x/crypto/bcrypt"
)

// SendOTP issues a verification challenge for the given phone number and
// hands the code to the SMS delivery pipeline. The code never appears in
// the response.
func (u *IdentityUC) SendOTP(ctx context.Context, phone string) error {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return identity.ErrInvalidPhone
	}

	// Resend gating: an outstanding challenge blocks a new send until its
	// cooldown elapses.
	existing, err := u.repo.GetOTPChallenge(ctx, normalized)
	if err != nil {
		return fmt.Errorf("failed to look up challenge: %w", err)
	}
	now := time.Now()
	if existing != nil && !existing.ResendAllowed(now) {
		return identity.ErrResendTooSoon
	}

	window := time.Duration(u.cfg.Limits.WindowSeconds) * time.Second
	sends, err := u.repo.IncrOTPSends(ctx, normalized, window)
	if err != nil {
		return fmt.Errorf("failed to count OTP sends: %w", err)
	}
	if sends > int64(u.cfg.Limits.OTPSends) {
		return identity.ErrRateLimited
	}

	code, err := generateCode(u.cfg.OTP.CodeLength)
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash code: %w", err)
	}

	ttl := time.Duration(u.cfg.OTP.TTLSeconds) * time.Second
	challenge := &models.OTPChallenge{
		ID:        uuid.New().String(),
		Phone:     normalized,
		CodeHash:  string(hash),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		ResendAt:  now.Add(time.Duration(u.cfg.OTP.ResendSeconds) * time.Second),
	}
	if err := u.repo.SaveOTPChallenge(ctx, challenge, ttl); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}

	if err := u.gw.RequestOTPDelivery(ctx, normalized, code); err != nil {
		return fmt.Errorf("failed to request OTP delivery: %w", err)
	}

	logger.Info("OTP challenge issued",
		logger.String("phone", utils.MaskPhone(normalized)))

	return nil
}

// VerifyOTP checks the submitted code against the outstanding challenge
// and, on success, signs the phone's user in (creating the record on first
// registration).
func (u *IdentityUC) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, identity.ErrInvalidPhone
	}

	challenge, err := u.repo.GetOTPChallenge(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up challenge: %w", err)
	}
	if challenge == nil {
		return nil, identity.ErrChallengeNotFound
	}

	now := time.Now()
	if challenge.Expired(now) {
		_ = u.repo.DeleteOTPChallenge(ctx, normalized)
		return nil, identity.ErrChallengeExpired
	}

	challenge.Attempts++
	if challenge.Attempts > u.cfg.OTP.MaxAttempts {
		_ = u.repo.DeleteOTPChallenge(ctx, normalized)
		return nil, identity.ErrTooManyAttempts
	}

	if bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)) != nil {
		// Persist the burned attempt so retries cannot reset the budget.
		ttl := time.Until(challenge.ExpiresAt)
		if err := u.repo.SaveOTPChallenge(ctx, challenge, ttl); err != nil {
			logger.Warn("Failed to persist attempt count", logger.Err(err))
		}
		return nil, identity.ErrCodeInvalid
	}

	// Challenge consumed: discard it before minting anything.
	if err := u.repo.DeleteOTPChallenge(ctx, normalized); err != nil {
		logger.Warn("Failed to discard verified challenge", logger.Err(err))
	}

	user, err := u.repo.GetUserByPhone(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	created := false
	if user == nil {
		user = &models.User{
			Phone:         normalized,
			Role:          models.RoleCustomer,
			IsActive:      true,
			PhoneVerified: true,
		}
		if err := u.repo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		created = true
	} else if !user.PhoneVerified {
		if err := u.repo.MarkPhoneVerified(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to mark phone verified: %w", err)
		}
		user.PhoneVerified = true
	}

	if !user.IsActive {
		return nil, identity.ErrUserInactive
	}

	token, _, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if created {
		event := &models.UserRegisteredEvent{
			UserID:    user.ID,
			Phone:     user.Phone,
			Timestamp: time.Now(),
		}
		if err := u.gw.PublishUserRegistered(ctx, event); err != nil {
			logger.Warn("Failed to publish user registered event",
				logger.Err(err),
				logger.String("user_id", user.ID.String()))
		}
	}

	u.gw.MirrorProfile(user)

	return &models.AuthResponse{
		Token:                     token,
		ExpiresAt:                 expiresAt,
		User:                      user,
		RequiresProfileCompletion: !user.IsProfileComplete,
	}, nil
}

// generateCode returns a uniformly random numeric code of the given length.
func generateCode(length int) (string, error) {
	max := big.NewInt(10)
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
