package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles recognized by the marketplace.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

// User represents a marketplace account (customer, vehicle owner or admin)
type User struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	ProviderUID       string     `json:"provider_uid" db:"provider_uid"`
	Phone             string     `json:"phone" db:"phone"`
	Email             string     `json:"email" db:"email"`
	FullName          string     `json:"full_name" db:"full_name"`
	Role              string     `json:"role" db:"role"`
	IsActive          bool       `json:"is_active" db:"is_active"`
	IsProfileComplete bool       `json:"is_profile_complete" db:"is_profile_complete"`
	EmailVerified     bool       `json:"email_verified" db:"email_verified"`
	PhoneVerified     bool       `json:"phone_verified" db:"phone_verified"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
	OwnerInfo         *OwnerInfo `json:"owner_info,omitempty" db:"-"`
}

// OwnerInfo holds the extra data collected from vehicle owners during
// profile completion. Customers only submit the identity document number.
type OwnerInfo struct {
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	IDDocumentNumber  string    `json:"id_document_number" db:"id_document_number"`
	BankName          string    `json:"bank_name" db:"bank_name"`
	BankAccountName   string    `json:"bank_account_name" db:"bank_account_name"`
	BankAccountNumber string    `json:"bank_account_number" db:"bank_account_number"`
}

// ValidRole reports whether role is one a user may select during profile
// completion. Admin accounts are provisioned out of band, never self-selected.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleOwner
}
