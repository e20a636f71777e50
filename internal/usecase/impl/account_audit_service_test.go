package impl

import (
	"context"
	"testing"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/service"
	"registry/internal/errors"
	mockRepo "registry/internal/mocks/repository"
	"registry/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuditService(t *testing.T) (usecase.AccountAuditUsecase, *mockRepo.MockAccountAuditRepository) {
	auditRepo := mockRepo.NewMockAccountAuditRepository(t)

	svc := NewAccountAuditService(AccountAuditServiceParams{
		AuditRepo: auditRepo,
		Logger:    newDiscardLogger(),
	})
	svc.(*accountAuditService).now = fixedClock(testNow)

	return svc, auditRepo
}

func blockedEvent() *service.AccountEvent {
	return &service.AccountEvent{
		RequestID:  "req-9",
		Type:       service.AccountEventBlocked,
		UserID:     7,
		Login:      "alice",
		Group:      "User",
		OccurredAt: testNow.Add(-time.Minute),
	}
}

func TestAccountAuditService_RecordAccountEvent(t *testing.T) {
	svc, auditRepo := createTestAuditService(t)

	ctx := context.Background()
	auditRepo.EXPECT().
		Record(ctx, mock.MatchedBy(func(r *entity.AccountAuditRecord) bool {
			return r.MessageID == "msg-1" &&
				r.EventType == "account.blocked" &&
				r.UserID == 7 &&
				r.RequestID == "req-9" &&
				r.ReceivedAt.Equal(testNow)
		})).
		Return(true, nil)

	err := svc.RecordAccountEvent(ctx, &usecase.RecordAccountEventInput{MessageID: "msg-1", Event: blockedEvent()})

	require.NoError(t, err)
}

func TestAccountAuditService_RecordAccountEvent_Duplicate(t *testing.T) {
	svc, auditRepo := createTestAuditService(t)

	ctx := context.Background()
	auditRepo.EXPECT().Record(ctx, mock.Anything).Return(false, nil)

	err := svc.RecordAccountEvent(ctx, &usecase.RecordAccountEventInput{MessageID: "msg-1", Event: blockedEvent()})

	require.NoError(t, err)
}

func TestAccountAuditService_RecordAccountEvent_Invalid(t *testing.T) {
	unknownType := blockedEvent()
	unknownType.Type = "account.renamed"
	noUser := blockedEvent()
	noUser.UserID = 0

	tests := []struct {
		name  string
		input *usecase.RecordAccountEventInput
	}{
		{name: "nil input", input: nil},
		{name: "missing message id", input: &usecase.RecordAccountEventInput{Event: blockedEvent()}},
		{name: "missing event", input: &usecase.RecordAccountEventInput{MessageID: "msg-1"}},
		{name: "unknown type", input: &usecase.RecordAccountEventInput{MessageID: "msg-1", Event: unknownType}},
		{name: "no user", input: &usecase.RecordAccountEventInput{MessageID: "msg-1", Event: noUser}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestAuditService(t)

			err := svc.RecordAccountEvent(context.Background(), tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAccountAuditService_RecordAccountEvent_StoreFailure(t *testing.T) {
	svc, auditRepo := createTestAuditService(t)

	ctx := context.Background()
	auditRepo.EXPECT().
		Record(ctx, mock.Anything).
		Return(false, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to record account event"))

	err := svc.RecordAccountEvent(ctx, &usecase.RecordAccountEventInput{MessageID: "msg-1", Event: blockedEvent()})

	require.Error(t, err)
	assert.False(t, domainerrors.IsBusinessError(err))
}

func TestAccountAuditService_ListAccountEvents(t *testing.T) {
	svc, auditRepo := createTestAuditService(t)

	ctx := context.Background()
	records := []*entity.AccountAuditRecord{{ID: 1, UserID: 7, EventType: "account.created"}}
	auditRepo.EXPECT().ListByUser(ctx, int64(7)).Return(records, nil)

	got, err := svc.ListAccountEvents(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, records, got)
}
