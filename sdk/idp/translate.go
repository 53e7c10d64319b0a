package idp

import (
	"strings"

	"github.com/sewago/sewago/sdk/autherr"
)

// translateProviderError maps the provider's loosely-typed error strings
// into the closed taxonomy. Unknown codes collapse to ErrNetworkUnavailable
// rather than leaking provider internals to the UI.
func translateProviderError(code string) error {
	// Codes occasionally arrive with a trailing explanation,
	// e.g. "TOO_MANY_ATTEMPTS_TRY_LATER : ...".
	if idx := strings.IndexByte(code, ' '); idx > 0 {
		code = code[:idx]
	}

	switch code {
	case "INVALID_PASSWORD", "EMAIL_NOT_FOUND", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return autherr.ErrInvalidCredentials
	case "TOO_MANY_ATTEMPTS_TRY_LATER", "QUOTA_EXCEEDED":
		return autherr.ErrRateLimited
	case "INVALID_CODE", "INVALID_VERIFICATION_CODE":
		return autherr.ErrInvalidCode
	case "SESSION_EXPIRED", "CODE_EXPIRED", "INVALID_SESSION_INFO":
		return autherr.ErrChallengeExpired
	case "INVALID_PHONE_NUMBER", "MISSING_PHONE_NUMBER":
		return autherr.ErrInvalidPhoneFormat
	default:
		return autherr.ErrNetworkUnavailable
	}
}
