package models

// ProfileHints carries optional, non-authoritative profile data read from
// identity token claims. Used only to pre-fill a freshly created record;
// never trusted for authorization.
type ProfileHints struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ExchangeRequest trades an external identity token for an application session.
type ExchangeRequest struct {
	IdentityToken string        `json:"identity_token" validate:"required"`
	Hints         *ProfileHints `json:"hints,omitempty"`
}

// AuthResponse is returned after a successful exchange: the backend session
// token plus the user projection the client may cache.
type AuthResponse struct {
	Token                     string `json:"token"`
	ExpiresAt                 int64  `json:"expires_at"`
	User                      *User  `json:"user"`
	RequiresProfileCompletion bool   `json:"requires_profile_completion"`
}

// CompleteProfileRequest carries the role selection plus role-conditional
// fields submitted at the end of registration. Bank details are required
// for owners only.
type CompleteProfileRequest struct {
	Role              string `json:"role" validate:"required"`
	FullName          string `json:"full_name" validate:"required"`
	IDDocumentNumber  string `json:"id_document_number" validate:"required"`
	BankName          string `json:"bank_name,omitempty"`
	BankAccountName   string `json:"bank_account_name,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
}

// FieldErrors maps submitted field names to validation messages so the
// client can render them inline.
type FieldErrors map[string]string
