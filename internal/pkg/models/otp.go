package models

import (
	"time"
)

// OTPChallenge is the server-side record of one phone verification attempt.
// It lives in Redis under the target phone number and is discarded on
// success or expiry. The code itself is stored only as a bcrypt hash.
type OTPChallenge struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	CodeHash  string    `json:"code_hash"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	ResendAt  time.Time `json:"resend_at"`
	Attempts  int       `json:"attempts"`
}

// Expired reports whether the challenge is past its validity window.
func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// ResendAllowed reports whether a new code may be issued for this phone.
func (c *OTPChallenge) ResendAllowed(now time.Time) bool {
	return !now.Before(c.ResendAt)
}

// SendOTPRequest asks the service to issue a verification code.
type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// VerifyOTPRequest submits a code for an outstanding challenge.
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required"`
}
