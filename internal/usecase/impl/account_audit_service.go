package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "registry/internal/delivery/context"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	"registry/internal/errors"
	"registry/internal/usecase"

	"go.uber.org/fx"
)

type accountAuditService struct {
	auditRepo repository.AccountAuditRepository
	logger    *slog.Logger
	now       func() time.Time
}

// AccountAuditServiceParams holds dependencies for AccountAuditService, injected by Fx.
type AccountAuditServiceParams struct {
	fx.In

	AuditRepo repository.AccountAuditRepository
	Logger    *slog.Logger
}

// NewAccountAuditService creates the audit trail service.
func NewAccountAuditService(params AccountAuditServiceParams) usecase.AccountAuditUsecase {
	return &accountAuditService{
		auditRepo: params.AuditRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *accountAuditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordAccountEvent validates the event and stores it. Redelivered messages are acknowledged without a second row.
func (srv *accountAuditService) RecordAccountEvent(ctx context.Context, input *usecase.RecordAccountEventInput) error {
	if input == nil || input.Event == nil || input.MessageID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("message id and event are required")
	}

	event := input.Event
	switch event.Type {
	case service.AccountEventCreated, service.AccountEventBlocked:
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown account event type " + string(event.Type))
	}
	if event.UserID <= 0 || event.Login == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("account event without user")
	}

	record := &entity.AccountAuditRecord{
		MessageID:  input.MessageID,
		EventType:  string(event.Type),
		UserID:     event.UserID,
		Login:      event.Login,
		GroupCode:  event.Group,
		RequestID:  event.RequestID,
		OccurredAt: event.OccurredAt,
		ReceivedAt: srv.now().UTC(),
	}

	inserted, err := srv.auditRepo.Record(ctx, record)
	if err != nil {
		return errors.Wrap(err, "failed to record account event")
	}
	if !inserted {
		srv.log(ctx).Info("Duplicate account event ignored", slog.String("message_id", input.MessageID))

		return nil
	}

	srv.log(ctx).Info("Account event recorded",
		slog.String("type", record.EventType),
		slog.Int64("user_id", record.UserID),
		slog.Int64("audit_id", record.ID),
	)

	return nil
}

// ListAccountEvents returns the audit trail of one account.
func (srv *accountAuditService) ListAccountEvents(ctx context.Context, userID int64) ([]*entity.AccountAuditRecord, error) {
	records, err := srv.auditRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list account events")
	}

	return records, nil
}
