// Package gate decides what a navigation attempt may do given the current
// resolved identity. Decide is a pure function: it is re-evaluated on every
// navigation and every identity change, so it must not mutate anything.
package gate

// Identity is the four-tuple the gate decides over. It mirrors the resolved
// identity published by the auth context.
type Identity struct {
	Loading                   bool
	IsAuthenticated           bool
	RequiresProfileCompletion bool
	Role                      string
}

// Kind enumerates the possible gate outcomes.
type Kind int

const (
	// Wait renders a waiting state; no redirect decision is made while the
	// initial reconciliation is still in flight (prevents a redirect race on
	// first paint).
	Wait Kind = iota
	// RedirectToSignIn sends the user to the sign-in entry point, preserving
	// the originally requested location for post-login return.
	RedirectToSignIn
	// RedirectToProfileCompletion forces the profile-completion flow.
	// Completion is a hard prerequisite, not a suggestion.
	RedirectToProfileCompletion
	// DenyByRole renders an access-denied view. Terminal: the user is
	// authenticated, so bouncing to sign-in would loop.
	DenyByRole
	// Allow lets the navigation proceed.
	Allow
)

// Decision is the gate's verdict. ReturnTo is populated only for
// RedirectToSignIn.
type Decision struct {
	Kind     Kind
	ReturnTo string
}

// Decide evaluates the gate rules in fixed precedence order:
// loading, unauthenticated, incomplete profile, role membership, allow.
func Decide(id Identity, allowedRoles []string, requestedPath string) Decision {
	if id.Loading {
		return Decision{Kind: Wait}
	}
	if !id.IsAuthenticated {
		return Decision{Kind: RedirectToSignIn, ReturnTo: requestedPath}
	}
	if id.RequiresProfileCompletion {
		return Decision{Kind: RedirectToProfileCompletion}
	}
	if len(allowedRoles) > 0 && !contains(allowedRoles, id.Role) {
		return Decision{Kind: DenyByRole}
	}
	return Decision{Kind: Allow}
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
