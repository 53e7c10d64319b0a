// Package authctx owns the resolved identity for one application instance.
// It is an explicit object with a lifecycle (Init, OnChange, Dispose) that
// gets injected into the routing layer; nothing else in the application
// reads the session store directly.
package authctx

import (
	"context"
	"errors"
	"sync"

	"github.com/sewago/sewago/internal/pkg/logger"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/sdk/api"
	"github.com/sewago/sewago/sdk/autherr"
	"github.com/sewago/sewago/sdk/gate"
	"github.com/sewago/sewago/sdk/session"
)

// Resolved is the derived, UI-facing snapshot of authentication state.
// Exactly one of {unauthenticated, authenticated-incomplete,
// authenticated-complete} holds at any time.
type Resolved struct {
	Loading                   bool
	IsAuthenticated           bool
	User                      *models.User
	RequiresProfileCompletion bool
}

// GateIdentity projects the snapshot into the authorization gate's input.
func (r Resolved) GateIdentity() gate.Identity {
	role := ""
	if r.User != nil {
		role = r.User.Role
	}
	return gate.Identity{
		Loading:                   r.Loading,
		IsAuthenticated:           r.IsAuthenticated,
		RequiresProfileCompletion: r.RequiresProfileCompletion,
		Role:                      role,
	}
}

// Listener receives every identity change.
type Listener func(Resolved)

// AuthContext resolves and republishes the current identity. Mutations come
// only from the sign-in flows, logout, and the API client's 401 hook.
type AuthContext struct {
	mu        sync.RWMutex
	store     *session.Store
	api       *api.Client
	current   Resolved
	listeners map[int]Listener
	nextID    int
	disposed  bool
}

// Config wires the context to its collaborators.
type Config struct {
	Store      *session.Store
	BackendURL string
}

// New creates an auth context. The embedded API client routes every 401
// through the context's teardown before any caller sees the error.
func New(cfg Config) *AuthContext {
	a := &AuthContext{
		store:     cfg.Store,
		listeners: make(map[int]Listener),
		current:   Resolved{Loading: true},
	}
	a.api = api.NewClient(cfg.BackendURL, 0, cfg.Store, a.handleSessionRejected)
	return a
}

// API exposes the authenticated API client sharing this context's 401 rule.
func (a *AuthContext) API() *api.Client {
	return a.api
}

// Current returns the latest resolved identity.
func (a *AuthContext) Current() Resolved {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// OnChange registers a listener and returns an unsubscribe function. The
// listener is immediately invoked with the current state so late
// subscribers do not miss the initial resolution.
func (a *AuthContext) OnChange(fn Listener) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	current := a.current
	a.mu.Unlock()

	fn(current)

	return func() {
		a.mu.Lock()
		delete(a.listeners, id)
		a.mu.Unlock()
	}
}

// Init resolves the starting identity. With no stored session the context
// settles immediately as unauthenticated; otherwise the stored session is
// validated against the backend. A 401 during validation tears the session
// down (via the API client hook); a transport failure falls back to the
// stored projection rather than logging the user out over a blip.
func (a *AuthContext) Init(ctx context.Context) {
	snap := a.store.Get()
	if snap.SessionToken == "" {
		a.publish(Resolved{})
		return
	}

	user, err := a.api.GetMe(ctx)
	if err != nil {
		if errors.Is(err, autherr.ErrSessionRejected) {
			// handleSessionRejected already published the teardown.
			return
		}
		logger.Warn("Silent session validation failed, using stored projection",
			logger.Err(err))
		a.publish(resolvedFor(snap.User))
		return
	}

	// Refresh the cached projection with the authoritative record.
	if err := a.store.Set(snap.SessionToken, user); err != nil {
		logger.Warn("Failed to refresh stored session projection", logger.Err(err))
	}
	a.publish(resolvedFor(user))
}

// CompleteSignIn installs the session produced by a reconciliation
// exchange: both slots are persisted atomically, then the new identity is
// published.
func (a *AuthContext) CompleteSignIn(auth *models.AuthResponse) error {
	if err := a.store.Set(auth.Token, auth.User); err != nil {
		return err
	}

	resolved := resolvedFor(auth.User)
	resolved.RequiresProfileCompletion = auth.RequiresProfileCompletion
	a.publish(resolved)
	return nil
}

// CompleteProfile submits the profile-completion form and, on success,
// republishes the now-complete identity.
func (a *AuthContext) CompleteProfile(ctx context.Context, req *models.CompleteProfileRequest) error {
	user, err := a.api.CompleteProfile(ctx, req)
	if err != nil {
		return err
	}

	if err := a.store.Set(a.store.Token(), user); err != nil {
		return err
	}
	a.publish(resolvedFor(user))
	return nil
}

// SignOut revokes the session server-side (best-effort) and clears local
// state unconditionally.
func (a *AuthContext) SignOut(ctx context.Context) {
	if err := a.api.Logout(ctx); err != nil && !errors.Is(err, autherr.ErrSessionRejected) {
		logger.Warn("Server-side logout failed, clearing local session anyway",
			logger.Err(err))
	}

	if err := a.store.Clear(); err != nil {
		logger.Error("Failed to clear session store", logger.Err(err))
	}
	a.publish(Resolved{})
}

// Dispose drops all listeners. Further changes are silently discarded.
func (a *AuthContext) Dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = make(map[int]Listener)
	a.disposed = true
}

// handleSessionRejected runs synchronously inside the API client whenever
// any backend call answers 401. Both token slots are cleared together and
// the unauthenticated state is published before the failing call returns,
// so no subsequent protected request can be issued against the dead
// session.
func (a *AuthContext) handleSessionRejected() {
	if err := a.store.Clear(); err != nil {
		logger.Error("Failed to clear rejected session", logger.Err(err))
	}
	a.publish(Resolved{})
}

func (a *AuthContext) publish(r Resolved) {
	a.mu.Lock()
	if a.disposed {
		a.mu.Unlock()
		return
	}
	a.current = r
	listeners := make([]Listener, 0, len(a.listeners))
	for _, fn := range a.listeners {
		listeners = append(listeners, fn)
	}
	a.mu.Unlock()

	for _, fn := range listeners {
		fn(r)
	}
}

func resolvedFor(user *models.User) Resolved {
	if user == nil {
		return Resolved{}
	}
	return Resolved{
		IsAuthenticated:           true,
		User:                      user,
		RequiresProfileCompletion: !user.IsProfileComplete,
	}
}
