package models

// VerifiedIdentity is the backend's view of an externally verified identity
// token: the subject plus the claims worth projecting into the user record.
// Produced only by the identity provider gateway after signature and expiry
// checks.
type VerifiedIdentity struct {
	ProviderUID   string
	Email         string
	Phone         string
	DisplayName   string
	EmailVerified bool
	PhoneVerified bool
}
