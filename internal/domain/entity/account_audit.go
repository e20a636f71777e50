package entity

import "time"

// AccountAuditRecord is one delivered account event kept for audit.
// MessageID is the broker's id, so redelivery of the same message is recorded once.
type AccountAuditRecord struct {
	ID         int64
	MessageID  string
	EventType  string
	UserID     int64
	Login      string
	GroupCode  string
	RequestID  string
	OccurredAt time.Time
	ReceivedAt time.Time
}
