package authctx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/sdk/autherr"
	"github.com/sewago/sewago/sdk/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(complete bool) *models.User {
	return &models.User{
		ID:                uuid.New(),
		Phone:             "+628123456789",
		FullName:          "Budi Santoso",
		Role:              models.RoleCustomer,
		IsActive:          true,
		IsProfileComplete: complete,
	}
}

func newTestStore(t *testing.T) *session.Store {
	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return store
}

func envelope(data interface{}) []byte {
	out, _ := json.Marshal(map[string]interface{}{"success": true, "data": data})
	return out
}

func TestInit_NoStoredSession(t *testing.T) {
	store := newTestStore(t)
	a := New(Config{Store: store, BackendURL: "http://localhost:0"})

	var states []Resolved
	a.OnChange(func(r Resolved) { states = append(states, r) })

	a.Init(context.Background())

	// Initial loading state, then a settled unauthenticated one. No network
	// call is attempted without a stored token.
	require.Len(t, states, 2)
	assert.True(t, states[0].Loading)
	assert.False(t, states[1].Loading)
	assert.False(t, states[1].IsAuthenticated)
}

func TestInit_ValidStoredSession(t *testing.T) {
	user := testUser(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		w.Write(envelope(user))
	}))
	defer server.Close()

	store := newTestStore(t)
	require.NoError(t, store.Set("stored-token", testUser(false)))

	a := New(Config{Store: store, BackendURL: server.URL})
	a.Init(context.Background())

	current := a.Current()
	assert.True(t, current.IsAuthenticated)
	assert.False(t, current.RequiresProfileCompletion)

	// The cached projection was refreshed with the authoritative record.
	assert.True(t, store.Get().User.IsProfileComplete)
}

func TestInit_RejectedSessionTearsDownWithinOneCycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := newTestStore(t)
	require.NoError(t, store.Set("revoked-token", testUser(true)))

	a := New(Config{Store: store, BackendURL: server.URL})
	a.Init(context.Background())

	// Both slots cleared and unauthenticated published, no manual sign-out.
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Get().User)
	current := a.Current()
	assert.False(t, current.Loading)
	assert.False(t, current.IsAuthenticated)
}

func TestInit_TransportFailureFallsBackToStoredProjection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	store := newTestStore(t)
	user := testUser(true)
	require.NoError(t, store.Set("stored-token", user))

	a := New(Config{Store: store, BackendURL: server.URL})
	a.Init(context.Background())

	// Offline is not a logout: the stored projection stands in.
	current := a.Current()
	assert.True(t, current.IsAuthenticated)
	assert.Equal(t, "stored-token", store.Token())
}

func TestAPICall_401ClearsSessionBeforeErrorReturns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := newTestStore(t)
	require.NoError(t, store.Set("stale-token", testUser(true)))

	a := New(Config{Store: store, BackendURL: server.URL})

	var sawUnauthenticated bool
	a.OnChange(func(r Resolved) {
		if !r.Loading && !r.IsAuthenticated {
			sawUnauthenticated = true
		}
	})

	_, err := a.API().GetMe(context.Background())
	assert.ErrorIs(t, err, autherr.ErrSessionRejected)

	// Teardown happened synchronously inside the failing call.
	assert.Empty(t, store.Token())
	assert.True(t, sawUnauthenticated)
}

func TestCompleteSignIn_PublishesAuthenticatedState(t *testing.T) {
	store := newTestStore(t)
	a := New(Config{Store: store, BackendURL: "http://localhost:0"})

	user := testUser(false)
	err := a.CompleteSignIn(&models.AuthResponse{
		Token:                     "fresh-token",
		User:                      user,
		RequiresProfileCompletion: true,
	})
	require.NoError(t, err)

	current := a.Current()
	assert.True(t, current.IsAuthenticated)
	assert.True(t, current.RequiresProfileCompletion)
	assert.Equal(t, "fresh-token", store.Token())
}

func TestCompleteProfile_RepublishesCompleteIdentity(t *testing.T) {
	completed := testUser(true)
	completed.Role = models.RoleOwner
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile/complete", r.URL.Path)
		w.Write(envelope(completed))
	}))
	defer server.Close()

	store := newTestStore(t)
	require.NoError(t, store.Set("token", testUser(false)))

	a := New(Config{Store: store, BackendURL: server.URL})
	err := a.CompleteProfile(context.Background(), &models.CompleteProfileRequest{
		Role:             models.RoleOwner,
		FullName:         "Budi Santoso",
		IDDocumentNumber: "3171234567890001",
	})
	require.NoError(t, err)

	current := a.Current()
	assert.True(t, current.IsAuthenticated)
	assert.False(t, current.RequiresProfileCompletion)
	assert.Equal(t, models.RoleOwner, current.User.Role)
}

func TestSignOut_ClearsLocalStateEvenIfServerFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := newTestStore(t)
	require.NoError(t, store.Set("token", testUser(true)))

	a := New(Config{Store: store, BackendURL: server.URL})
	a.SignOut(context.Background())

	assert.Empty(t, store.Token())
	assert.False(t, a.Current().IsAuthenticated)
}

func TestOnChange_ImmediateInvocationAndUnsubscribe(t *testing.T) {
	store := newTestStore(t)
	a := New(Config{Store: store, BackendURL: "http://localhost:0"})

	var calls int
	unsubscribe := a.OnChange(func(Resolved) { calls++ })
	assert.Equal(t, 1, calls, "late subscribers receive the current state immediately")

	unsubscribe()
	a.Init(context.Background())
	assert.Equal(t, 1, calls, "unsubscribed listeners receive nothing")
}

func TestDispose_DropsListeners(t *testing.T) {
	store := newTestStore(t)
	a := New(Config{Store: store, BackendURL: "http://localhost:0"})

	var calls int
	a.OnChange(func(Resolved) { calls++ })
	a.Dispose()
	a.Init(context.Background())
	assert.Equal(t, 1, calls)
}

func TestGateIdentity_Projection(t *testing.T) {
	r := Resolved{IsAuthenticated: true, User: testUser(true)}
	id := r.GateIdentity()
	assert.True(t, id.IsAuthenticated)
	assert.Equal(t, models.RoleCustomer, id.Role)

	empty := Resolved{}.GateIdentity()
	assert.Empty(t, empty.Role)
}
