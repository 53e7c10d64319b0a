package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sewago/sewago/sdk/autherr"
	"github.com/sewago/sewago/sdk/idp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	beginCalls   int
	confirmCalls int
	beginErr     error
	confirmErr   error
	beforeBegin  func()
}

func (f *fakeProvider) BeginPhoneChallenge(ctx context.Context, phone string) (*idp.PhoneChallenge, error) {
	f.beginCalls++
	if f.beforeBegin != nil {
		f.beforeBegin()
	}
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return &idp.PhoneChallenge{Phone: phone, SessionInfo: "session-info"}, nil
}

func (f *fakeProvider) ConfirmPhoneChallenge(ctx context.Context, challenge *idp.PhoneChallenge, code string) (*idp.SignInResult, error) {
	f.confirmCalls++
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &idp.SignInResult{IdentityToken: "id-token"}, nil
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestMachine(provider Provider, clk *clock) *Machine {
	return NewMachine(provider, Config{
		CodeLength:     6,
		ResendCooldown: 30 * time.Second,
		Now:            clk.Now,
	})
}

func TestMachine_RequestTransitionsToAwaitingCode(t *testing.T) {
	provider := &fakeProvider{}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)

	require.NoError(t, m.Request(context.Background(), "+628123456789"))
	assert.Equal(t, AwaitingCode, m.State())
	assert.Equal(t, 1, provider.beginCalls)
	assert.Equal(t, 30, m.CooldownRemaining())
}

func TestMachine_RequestFailureReturnsToIdle(t *testing.T) {
	provider := &fakeProvider{beginErr: autherr.ErrRateLimited}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)

	err := m.Request(context.Background(), "+628123456789")
	assert.ErrorIs(t, err, autherr.ErrRateLimited)
	assert.Equal(t, Idle, m.State())
	assert.ErrorIs(t, m.Err(), autherr.ErrRateLimited)
}

func TestMachine_ResendBlockedDuringCooldown(t *testing.T) {
	provider := &fakeProvider{}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)

	require.NoError(t, m.Request(context.Background(), "+628123456789"))

	// Inside the cooldown the resend is rejected before any network call.
	err := m.Request(context.Background(), "+628123456789")
	assert.Error(t, err)
	assert.Equal(t, 1, provider.beginCalls)
}

func TestMachine_CooldownElapseEnablesButDoesNotTrigger(t *testing.T) {
	provider := &fakeProvider{}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)

	require.NoError(t, m.Request(context.Background(), "+628123456789"))
	clk.Advance(31 * time.Second)

	// Nothing happens on its own: the counter reaching zero only enables
	// the action.
	assert.Equal(t, 0, m.CooldownRemaining())
	assert.Equal(t, 1, provider.beginCalls)

	// An explicit resend now goes through and restarts the cooldown.
	require.NoError(t, m.Request(context.Background(), "+628123456789"))
	assert.Equal(t, 2, provider.beginCalls)
	assert.Equal(t, 30, m.CooldownRemaining())
}

func TestMachine_SubmitRejectsMalformedCodeLocally(t *testing.T) {
	provider := &fakeProvider{}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)
	require.NoError(t, m.Request(context.Background(), "+628123456789"))

	for _, code := range []string{"", "12345", "1234567", "12a456"} {
		m.EnterCode(code)
		err := m.Submit(context.Background())
		assert.ErrorIs(t, err, autherr.ErrInvalidCode)
	}
	assert.Equal(t, 0, provider.confirmCalls)
	assert.Equal(t, AwaitingCode, m.State())
}

func TestMachine_SubmitSuccess(t *testing.T) {
	provider := &fakeProvider{}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)
	require.NoError(t, m.Request(context.Background(), "+628123456789"))

	m.EnterCode("123456")
	require.NoError(t, m.Submit(context.Background()))
	assert.Equal(t, Verified, m.State())
	require.NotNil(t, m.Result())
	assert.Equal(t, "id-token", m.Result().IdentityToken)
}

func TestMachine_FailedVerificationClearsCodeBuffer(t *testing.T) {
	provider := &fakeProvider{confirmErr: autherr.ErrInvalidCode}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)
	require.NoError(t, m.Request(context.Background(), "+628123456789"))

	m.EnterCode("123456")
	err := m.Submit(context.Background())
	assert.ErrorIs(t, err, autherr.ErrInvalidCode)

	// Back to AwaitingCode with an empty buffer so a retry cannot resubmit
	// the same wrong code implicitly.
	assert.Equal(t, AwaitingCode, m.State())
	assert.Empty(t, m.Code())

	// Immediate resubmit fails locally without hitting the provider again.
	err = m.Submit(context.Background())
	assert.ErrorIs(t, err, autherr.ErrInvalidCode)
	assert.Equal(t, 1, provider.confirmCalls)
}

func TestMachine_ExpiredChallengeSurfacesAndAllowsRestart(t *testing.T) {
	provider := &fakeProvider{confirmErr: autherr.ErrChallengeExpired}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)
	require.NoError(t, m.Request(context.Background(), "+628123456789"))

	m.EnterCode("123456")
	err := m.Submit(context.Background())
	assert.ErrorIs(t, err, autherr.ErrChallengeExpired)
	assert.Equal(t, AwaitingCode, m.State())

	// The user can abandon and start a fresh attempt.
	m.Cancel()
	assert.Equal(t, Idle, m.State())
	require.NoError(t, m.Request(context.Background(), "+628123456789"))
	assert.Equal(t, AwaitingCode, m.State())
}

func TestMachine_CancelDropsInFlightResponse(t *testing.T) {
	clk := &clock{now: time.Now()}
	provider := &fakeProvider{}
	m := newTestMachine(provider, clk)

	// Cancel while the begin request is in flight; the late response must
	// not transition the machine.
	provider.beforeBegin = func() { m.Cancel() }

	err := m.Request(context.Background(), "+628123456789")
	assert.ErrorIs(t, err, autherr.ErrChallengeExpired)
	assert.Equal(t, Idle, m.State())
}

func TestMachine_CancelAfterVerifiedIsNoop(t *testing.T) {
	provider := &fakeProvider{}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)
	require.NoError(t, m.Request(context.Background(), "+628123456789"))
	m.EnterCode("123456")
	require.NoError(t, m.Submit(context.Background()))

	m.Cancel()
	assert.Equal(t, Verified, m.State())
}

func TestMachine_SubmitOnlyFromAwaitingCode(t *testing.T) {
	provider := &fakeProvider{}
	clk := &clock{now: time.Now()}
	m := newTestMachine(provider, clk)

	err := m.Submit(context.Background())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, autherr.ErrInvalidCode))
	assert.Equal(t, 0, provider.confirmCalls)
}
