package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/sewago/sewago/internal/pkg/constants"
	"github.com/sewago/sewago/internal/pkg/logger"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/internal/utils"
)

// PublishUserRegistered announces a freshly created user record
func (g *IdentityGW) PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error {
	return g.natsClient.Publish(constants.SubjectUserRegistered, event)
}

// PublishProfileCompleted announces a finished registration
func (g *IdentityGW) PublishProfileCompleted(ctx context.Context, event *models.ProfileCompletedEvent) error {
	return g.natsClient.Publish(constants.SubjectProfileCompleted, event)
}

// RequestOTPDelivery hands a verification code to the SMS delivery worker.
// The code travels only over the bus; it is never written to logs.
func (g *IdentityGW) RequestOTPDelivery(ctx context.Context, phone, code string) error {
	message := map[string]string{
		"phone": phone,
		"code":  code,
	}
	if err := g.natsClient.Publish(constants.SubjectOTPDelivery, message); err != nil {
		return fmt.Errorf("failed to request OTP delivery: %w", err)
	}

	logger.Info("OTP delivery requested",
		logger.String("phone", utils.MaskPhone(phone)))
	return nil
}

// MirrorProfile pushes the user projection to secondary profile consumers.
// Runs asynchronously: a slow or unavailable bus must never delay sign-in,
// and a publish failure is logged rather than returned.
func (g *IdentityGW) MirrorProfile(user *models.User) {
	event := &models.ProfileMirrorEvent{
		User:      user,
		Timestamp: time.Now(),
	}

	go func() {
		if err := g.natsClient.Publish(constants.SubjectProfileMirror, event); err != nil {
			logger.Warn("Failed to mirror profile",
				logger.Err(err),
				logger.String("user_id", user.ID.String()))
		}
	}()
}
