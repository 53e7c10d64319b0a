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

// CompleteProfile applies the role selection and role-conditional fields
// submitted at the end of registration. Validation failures come back as a
// ValidationError with per-field messages; nothing is persisted until the
// whole submission is valid.
func (u *IdentityUC) CompleteProfile(ctx context.Context, userID uuid.UUID, req *models.CompleteProfileRequest) (*models.User, error) {
	if verr := validateProfileRequest(req); verr != nil {
		return nil, verr
	}

	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, identity.ErrUserInactive
	}

	user.Role = req.Role
	user.FullName = req.FullName
	user.IsProfileComplete = true
	user.OwnerInfo = &models.OwnerInfo{
		UserID:           user.ID,
		IDDocumentNumber: req.IDDocumentNumber,
	}
	if req.Role == models.RoleOwner {
		user.OwnerInfo.BankName = req.BankName
		user.OwnerInfo.BankAccountName = req.BankAccountName
		user.OwnerInfo.BankAccountNumber = req.BankAccountNumber
	}

	if err := u.repo.CompleteProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to complete profile: %w", err)
	}

	event := &models.ProfileCompletedEvent{
		UserID:    user.ID,
		Role:      user.Role,
		Timestamp: time.Now(),
	}
	if err := u.gw.PublishProfileCompleted(ctx, event); err != nil {
		logger.Warn("Failed to publish profile completed event",
			logger.Err(err),
			logger.String("user_id", user.ID.String()))
	}

	u.gw.MirrorProfile(user)

	return user, nil
}

func validateProfileRequest(req *models.CompleteProfileRequest) *identity.ValidationError {
	fields := make(map[string]string)

	if !models.ValidRole(req.Role) {
		fields["role"] = "role must be customer or owner"
	}
	if req.FullName == "" {
		fields["full_name"] = "full name is required"
	}
	if req.IDDocumentNumber == "" {
		fields["id_document_number"] = "identity document number is required"
	}
	if req.Role == models.RoleOwner {
		if req.BankName == "" {
			fields["bank_name"] = "bank name is required for owners"
		}
		if req.BankAccountName == "" {
			fields["bank_account_name"] = "bank account name is required for owners"
		}
		if req.BankAccountNumber == "" {
			fields["bank_account_number"] = "bank account number is required for owners"
		}
	}

	if len(fields) > 0 {
		return &identity.ValidationError{Fields: fields}
	}
	return nil
}
