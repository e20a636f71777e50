package repository

import (
	"context"

	"registry/internal/domain/entity"
)

// AccountAuditRepository stores delivered account events.
type AccountAuditRepository interface {
	// Record inserts the record unless its MessageID is already stored.
	// It reports whether a new row was written.
	Record(ctx context.Context, record *entity.AccountAuditRecord) (bool, error)

	// ListByUser returns the audit trail of one account, oldest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.AccountAuditRecord, error)
}
