package usecase

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/domain/service"
)

// RecordAccountEventInput is one delivered message from the account events topic.
type RecordAccountEventInput struct {
	MessageID string
	Event     *service.AccountEvent
}

// AccountAuditUsecase keeps the audit trail of account lifecycle events.
type AccountAuditUsecase interface {
	// RecordAccountEvent stores the event once per message id.
	RecordAccountEvent(ctx context.Context, input *RecordAccountEventInput) error
	// ListAccountEvents returns the stored trail of one account.
	ListAccountEvents(ctx context.Context, userID int64) ([]*entity.AccountAuditRecord, error)
}
