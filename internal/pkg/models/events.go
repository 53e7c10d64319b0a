package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRegisteredEvent is published when the exchange endpoint creates a
// brand-new user record.
type UserRegisteredEvent struct {
	UserID      uuid.UUID `json:"user_id"`
	ProviderUID string    `json:"provider_uid"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ProfileCompletedEvent is published once a user finishes profile completion.
type ProfileCompletedEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

// ProfileMirrorEvent carries the denormalized user projection to secondary
// profile consumers. Delivery is fire-and-forget: a publish failure is
// logged and never affects the authorization decision.
type ProfileMirrorEvent struct {
	User      *User     `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}
