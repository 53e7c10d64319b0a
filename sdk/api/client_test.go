package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/sdk/autherr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestGetMe_AttachesBearerToken(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: models.RoleCustomer}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": user})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens("token-1"), nil)
	got, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestDo_401InvokesRejectionHookBeforeReturning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var hookRan bool
	client := NewClient(server.URL, 0, staticTokens("stale"), func() { hookRan = true })

	_, err := client.GetMe(context.Background())
	assert.ErrorIs(t, err, autherr.ErrSessionRejected)
	assert.True(t, hookRan)
}

func TestCompleteProfile_ValidationErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"fields":  map[string]string{"bank_name": "bank name is required for owners"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens("token-1"), nil)
	_, err := client.CompleteProfile(context.Background(), &models.CompleteProfileRequest{Role: models.RoleOwner})

	var verr *autherr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, autherr.ErrBackendValidation)
	assert.Equal(t, "bank name is required for owners", verr.Fields["bank_name"])
}

func TestLogout_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens("token-1"), nil)
	assert.ErrorIs(t, client.Logout(context.Background()), autherr.ErrRateLimited)
}

func TestDo_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 0, staticTokens("token-1"), nil)
	_, err := client.GetMe(context.Background())
	assert.ErrorIs(t, err, autherr.ErrNetworkUnavailable)
}
