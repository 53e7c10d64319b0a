package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/models"
)

// getUserByField is a helper to fetch a user by a single indexed column.
// A missing row is (nil, nil), not an error: callers decide whether absence
// means "create" or "reject".
func (r *IdentityRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, provider_uid, phone, email, full_name, role,
			is_active, is_profile_complete, email_verified, phone_verified,
			created_at, updated_at
		FROM users WHERE %s = $1
	`, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == models.RoleOwner {
		info, err := r.getOwnerInfo(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		user.OwnerInfo = info
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *IdentityRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByProviderUID retrieves a user by the external identity provider subject
func (r *IdentityRepo) GetUserByProviderUID(ctx context.Context, providerUID string) (*models.User, error) {
	return r.getUserByField(ctx, "provider_uid", providerUID)
}

// GetUserByPhone retrieves a user by normalized phone number
func (r *IdentityRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getUserByField(ctx, "phone", phone)
}

// getOwnerInfo retrieves owner information for a user
func (r *IdentityRepo) getOwnerInfo(ctx context.Context, userID uuid.UUID) (*models.OwnerInfo, error) {
	query := `SELECT user_id, id_document_number, bank_name, bank_account_name, bank_account_number
		FROM owner_info WHERE user_id = $1`

	var info models.OwnerInfo
	err := r.db.GetContext(ctx, &info, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owner info: %w", err)
	}
	return &info, nil
}

// CreateUser creates a new user in the database
func (r *IdentityRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, provider_uid, phone, email, full_name, role,
			is_active, is_profile_complete, email_verified, phone_verified,
			created_at, updated_at
		) VALUES (:id, :provider_uid, :phone, :email, :full_name, :role,
			:is_active, :is_profile_complete, :email_verified, :phone_verified,
			:created_at, :updated_at)
	`
	_, err = tx.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// MarkPhoneVerified flips the phone_verified flag after an OTP succeeds
func (r *IdentityRepo) MarkPhoneVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET phone_verified = TRUE, updated_at = $2
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark phone verified: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// CompleteProfile updates the user row and upserts owner info in one
// transaction so a half-completed profile is never visible.
func (r *IdentityRepo) CompleteProfile(ctx context.Context, user *models.User) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	user.UpdatedAt = time.Now()
	query := `
		UPDATE users
		SET role = :role, full_name = :full_name,
			is_profile_complete = :is_profile_complete, updated_at = :updated_at
		WHERE id = :id
	`
	_, err = tx.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	if user.OwnerInfo != nil {
		infoData := map[string]interface{}{
			"user_id":             user.ID,
			"id_document_number":  user.OwnerInfo.IDDocumentNumber,
			"bank_name":           user.OwnerInfo.BankName,
			"bank_account_name":   user.OwnerInfo.BankAccountName,
			"bank_account_number": user.OwnerInfo.BankAccountNumber,
		}

		query = `
			INSERT INTO owner_info (
				user_id, id_document_number, bank_name, bank_account_name, bank_account_number
			) VALUES (:user_id, :id_document_number, :bank_name, :bank_account_name, :bank_account_number)
			ON CONFLICT (user_id) DO UPDATE SET
				id_document_number = EXCLUDED.id_document_number,
				bank_name = EXCLUDED.bank_name,
				bank_account_name = EXCLUDED.bank_account_name,
				bank_account_number = EXCLUDED.bank_account_number
		`
		_, err = tx.NamedExecContext(ctx, query, infoData)
		if err != nil {
			return fmt.Errorf("failed to upsert owner info: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
