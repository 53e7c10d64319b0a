package usecase

import (
	"context"
	"fmt"
	"time"

	jwtpkg "github.com/sewago/sewago/internal/pkg/jwt"
	"github.com/sewago/sewago/internal/pkg/logger"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/services/identity"
)

// Exchange verifies an external identity token and turns it into an
// application session. The provider verification is the authorization
// decision; the profile mirror is a decoupled side effect whose failure
// never reaches the caller.
func (u *IdentityUC) Exchange(ctx context.Context, req *models.ExchangeRequest) (*models.AuthResponse, error) {
	verified, err := u.gw.VerifyIdentityToken(ctx, req.IdentityToken)
	if err != nil {
		logger.Warn("Identity token verification failed", logger.Err(err))
		return nil, identity.ErrIdentityTokenInvalid
	}

	window := time.Duration(u.cfg.Limits.WindowSeconds) * time.Second
	attempts, err := u.repo.IncrSignInAttempts(ctx, verified.ProviderUID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to count sign-in attempts: %w", err)
	}
	if attempts > int64(u.cfg.Limits.SignInAttempts) {
		return nil, identity.ErrRateLimited
	}

	user, err := u.repo.GetUserByProviderUID(ctx, verified.ProviderUID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	created := false
	if user == nil {
		user = newUserFromIdentity(verified, req.Hints)
		if err := u.repo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		created = true
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
			UserID:      user.ID,
			ProviderUID: user.ProviderUID,
			Phone:       user.Phone,
			Email:       user.Email,
			Timestamp:   time.Now(),
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

// newUserFromIdentity builds the provisional record created on first
// contact. Claims pre-fill the profile; the role stays provisional until
// profile completion.
func newUserFromIdentity(verified *models.VerifiedIdentity, hints *models.ProfileHints) *models.User {
	user := &models.User{
		ProviderUID:       verified.ProviderUID,
		Email:             verified.Email,
		Phone:             verified.Phone,
		FullName:          verified.DisplayName,
		Role:              models.RoleCustomer,
		IsActive:          true,
		IsProfileComplete: false,
		EmailVerified:     verified.EmailVerified,
		PhoneVerified:     verified.PhoneVerified,
	}

	if hints != nil {
		if user.FullName == "" {
			user.FullName = hints.FullName
		}
		if user.Email == "" {
			user.Email = hints.Email
		}
		if user.Phone == "" {
			user.Phone = hints.Phone
		}
	}

	return user
}
