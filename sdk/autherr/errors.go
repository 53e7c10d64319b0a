// Package autherr defines the closed error taxonomy for the identity
// subsystem. Provider and transport failures are translated into these
// sentinels at the component boundary; raw provider error codes never
// travel past it.
package autherr

import "errors"

var (
	// ErrInvalidCredentials indicates the provider rejected an email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRateLimited indicates too many attempts for this identifier; the
	// caller should surface a distinct, actionable message rather than a
	// generic failure.
	ErrRateLimited = errors.New("too many attempts, try again later")
	// ErrUserCancelled indicates the user dismissed a federated consent flow.
	ErrUserCancelled = errors.New("sign-in cancelled")
	// ErrPopupBlocked indicates the environment prevented the consent flow from opening.
	ErrPopupBlocked = errors.New("sign-in window blocked")
	// ErrInvalidPhoneFormat indicates the phone number failed local format validation.
	ErrInvalidPhoneFormat = errors.New("invalid phone number format")
	// ErrInvalidCode indicates a wrong verification code.
	ErrInvalidCode = errors.New("invalid verification code")
	// ErrChallengeExpired indicates the phone challenge is no longer valid.
	ErrChallengeExpired = errors.New("verification challenge expired")
	// ErrNetworkUnavailable indicates a transport failure that survived the automatic retry.
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrSessionRejected indicates the backend answered 401; both stored
	// tokens are cleared together before this error reaches the caller.
	ErrSessionRejected = errors.New("session rejected")
	// ErrBackendValidation indicates the backend rejected submitted fields.
	ErrBackendValidation = errors.New("validation failed")
)

// ValidationError wraps ErrBackendValidation with the per-field messages
// returned by the backend so the UI can render them inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrBackendValidation.Error()
}

// Unwrap makes errors.Is(err, ErrBackendValidation) hold.
func (e *ValidationError) Unwrap() error {
	return ErrBackendValidation
}
