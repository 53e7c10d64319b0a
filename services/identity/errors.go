package identity

import "errors"

// Service-level errors. Handlers map these onto HTTP statuses; the SDK maps
// the statuses back into its own taxonomy.
var (
	// ErrIdentityTokenInvalid means the external provider would not verify the token.
	ErrIdentityTokenInvalid = errors.New("identity token invalid")
	// ErrUserInactive means the account exists but has been deactivated.
	ErrUserInactive = errors.New("user is deactivated")
	// ErrInvalidPhone means the phone number failed format validation.
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrRateLimited means an attempt counter exceeded its window limit.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrResendTooSoon means a challenge was re-requested inside its cooldown.
	ErrResendTooSoon = errors.New("resend requested too soon")
	// ErrChallengeNotFound means no challenge is outstanding for the phone.
	ErrChallengeNotFound = errors.New("no verification challenge outstanding")
	// ErrChallengeExpired means the challenge is past its validity window.
	ErrChallengeExpired = errors.New("verification challenge expired")
	// ErrCodeInvalid means the submitted code did not match.
	ErrCodeInvalid = errors.New("verification code invalid")
	// ErrTooManyAttempts means the challenge burned its attempt budget.
	ErrTooManyAttempts = errors.New("too many verification attempts")
)

// ValidationError carries per-field messages from profile completion.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
