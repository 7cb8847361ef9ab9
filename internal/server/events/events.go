// Package events publishes account domain events (sign-ups, verifications,
// card changes) for downstream consumers.
package events

import (
	"context"
	"time"
)

const (
	UserRegistered     = "user.registered"
	UserVerified       = "user.verified"
	PasswordReset      = "user.password_reset"
	CardAdded          = "card.added"
	CardDefaultChanged = "card.default_changed"
	CardDeleted        = "card.deleted"
	ProfileCreated     = "profile.created"
	ProfileUpdated     = "profile.updated"
)

// Event never carries secrets or card data; Data holds identifiers only.
type Event struct {
	Type       string            `json:"type"`
	UserID     string            `json:"user_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Data       map[string]string `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
