// Package otp drives one phone-verification attempt: issuing the
// challenge, gating resends behind a cooldown, validating the entered code
// locally, and confirming it with the provider. The machine is abandoned
// (Cancel) when the user navigates away; a late provider response whose
// generation no longer matches is dropped.
package otp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sewago/sewago/sdk/autherr"
	"github.com/sewago/sewago/sdk/idp"
)

// State enumerates the machine's phases.
type State int

const (
	Idle State = iota
	Sending
	AwaitingCode
	Verifying
	Verified
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case AwaitingCode:
		return "awaiting_code"
	case Verifying:
		return "verifying"
	case Verified:
		return "verified"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Provider is the slice of the identity provider client the machine needs.
type Provider interface {
	BeginPhoneChallenge(ctx context.Context, phone string) (*idp.PhoneChallenge, error)
	ConfirmPhoneChallenge(ctx context.Context, challenge *idp.PhoneChallenge, code string) (*idp.SignInResult, error)
}

// Config tunes the machine.
type Config struct {
	CodeLength     int
	ResendCooldown time.Duration
	Now            func() time.Time // test hook; defaults to time.Now
}

// Machine is one phone verification attempt. Not safe for use after
// Verified; create a new machine per attempt.
type Machine struct {
	mu       sync.Mutex
	provider Provider
	cfg      Config

	state      State
	generation int
	phone      string
	challenge  *idp.PhoneChallenge
	code       string
	resendAt   time.Time
	result     *idp.SignInResult
	lastErr    error
}

// NewMachine creates a machine in the Idle state.
func NewMachine(provider Provider, cfg Config) *Machine {
	if cfg.CodeLength == 0 {
		cfg.CodeLength = 6
	}
	if cfg.ResendCooldown == 0 {
		cfg.ResendCooldown = 30 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Machine{provider: provider, cfg: cfg}
}

// State returns the current phase.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Code returns the buffered code input.
func (m *Machine) Code() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.code
}

// Result returns the sign-in result once the machine is Verified.
func (m *Machine) Result() *idp.SignInResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}

// Err returns the error from the most recent failed transition.
func (m *Machine) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// CooldownRemaining reports the whole seconds left before a resend becomes
// possible. Zero means resend is enabled; enabling never triggers one.
func (m *Machine) CooldownRemaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	remaining := m.resendAt.Sub(m.cfg.Now())
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds() + 0.999)
}

// Request asks the provider to send a code to phone. Allowed from Idle, or
// from AwaitingCode once the cooldown has elapsed (a resend). A request
// while Sending or during cooldown is rejected without any network call.
func (m *Machine) Request(ctx context.Context, phone string) error {
	m.mu.Lock()
	switch m.state {
	case Idle:
	case AwaitingCode:
		if remaining := m.resendAt.Sub(m.cfg.Now()); remaining > 0 {
			m.mu.Unlock()
			return fmt.Errorf("resend not available for %d more seconds", int(remaining.Seconds()+0.999))
		}
	default:
		state := m.state
		m.mu.Unlock()
		return fmt.Errorf("cannot request a code while %s", state)
	}

	m.state = Sending
	m.phone = phone
	generation := m.generation
	m.mu.Unlock()

	challenge, err := m.provider.BeginPhoneChallenge(ctx, phone)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != generation {
		// Attempt was abandoned while the request was in flight.
		return autherr.ErrChallengeExpired
	}

	if err != nil {
		m.state = Idle
		m.lastErr = err
		return err
	}

	m.state = AwaitingCode
	m.challenge = challenge
	m.code = ""
	m.lastErr = nil
	m.resendAt = m.cfg.Now().Add(m.cfg.ResendCooldown)
	return nil
}

// EnterCode buffers the user's code input. Only meaningful in AwaitingCode.
func (m *Machine) EnterCode(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == AwaitingCode {
		m.code = code
	}
}

// Submit confirms the buffered code with the provider. The code must be
// exactly the configured length and numeric; anything else is rejected
// locally without a network call. A failed verification returns the
// machine to AwaitingCode with the code buffer cleared, so a retry cannot
// silently reuse the stale, wrong code.
func (m *Machine) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.state != AwaitingCode {
		state := m.state
		m.mu.Unlock()
		return fmt.Errorf("cannot submit a code while %s", state)
	}

	code := m.code
	if !validCode(code, m.cfg.CodeLength) {
		m.lastErr = autherr.ErrInvalidCode
		m.mu.Unlock()
		return autherr.ErrInvalidCode
	}

	m.state = Verifying
	challenge := m.challenge
	generation := m.generation
	m.mu.Unlock()

	result, err := m.provider.ConfirmPhoneChallenge(ctx, challenge, code)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != generation {
		return autherr.ErrChallengeExpired
	}

	if err != nil {
		m.state = AwaitingCode
		m.code = ""
		m.lastErr = err
		return err
	}

	m.state = Verified
	m.result = result
	m.lastErr = nil
	return nil
}

// Cancel abandons the attempt. The challenge handle is invalidated by
// bumping the generation counter, so a response that arrives after the
// user navigated away cannot transition the machine.
func (m *Machine) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Verified {
		return
	}
	m.generation++
	m.state = Idle
	m.challenge = nil
	m.code = ""
	m.resendAt = time.Time{}
}

func validCode(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
