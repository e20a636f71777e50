package service

import (
	"context"
	"time"
)

// AccountEventType names a lifecycle transition of an account.
type AccountEventType string

const (
	// AccountEventCreated is emitted after a new account is persisted.
	AccountEventCreated AccountEventType = "account.created"
	// AccountEventBlocked is emitted after an account is soft-deleted.
	AccountEventBlocked AccountEventType = "account.blocked"
)

// AccountEvent describes a committed change to an account. It never carries the credential.
type AccountEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       AccountEventType `json:"type"`
	UserID     int64            `json:"user_id"`
	Login      string           `json:"login"`
	Group      string           `json:"group"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event for downstream consumers
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
