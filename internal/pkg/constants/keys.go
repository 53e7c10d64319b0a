package constants

// Redis key prefixes. Values are formatted with the subject identifier,
// e.g. otp:challenge:+628123456789.
const (
	KeyOTPChallenge   = "otp:challenge:%s"
	KeyOTPSendCount   = "otp:sends:%s"
	KeyRevokedSession = "session:revoked:%s"
	KeyRevokedUser    = "user:revoked:%s"
	KeySignInAttempts = "signin:attempts:%s"
)

// NATS subjects for identity domain events.
const (
	SubjectUserRegistered   = "user.registered"
	SubjectProfileCompleted = "user.profile_completed"
	SubjectProfileMirror    = "user.profile_mirror"
	SubjectOTPDelivery      = "notification.otp_sms"
)
