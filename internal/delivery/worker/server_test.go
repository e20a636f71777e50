package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"registry/config"
	"registry/internal/delivery/worker/handler"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/service"
	"registry/internal/errors"
	"registry/internal/infra/pubsub"
	mockUC "registry/internal/mocks/usecase"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T) (*echo.Echo, *mockUC.MockAccountAuditUsecase) {
	auditUC := mockUC.NewMockAccountAuditUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:  cfg,
		Logger:  logger,
		AuditUC: auditUC,
	})

	return newEcho(cfg, logger, pushHandler), auditUC
}

func pushBody(t *testing.T, messageID string, event *service.AccountEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg handler.PubSubMessage
	msg.Message.MessageID = messageID
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Subscription = "projects/test/subscriptions/account-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func post(e *echo.Echo, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func createdEvent() *service.AccountEvent {
	return &service.AccountEvent{
		RequestID:  "req-1",
		Type:       service.AccountEventCreated,
		UserID:     7,
		Login:      "alice",
		Group:      "User",
		OccurredAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestWorker_HandlePush_Recorded(t *testing.T) {
	e, auditUC := newTestWorker(t)

	auditUC.EXPECT().
		RecordAccountEvent(mock.Anything, mock.MatchedBy(func(in *usecase.RecordAccountEventInput) bool {
			return in.MessageID == "msg-1" && in.Event.Login == "alice" && in.Event.Type == service.AccountEventCreated
		})).
		Return(nil)

	rec := post(e, "/push", pushBody(t, "msg-1", createdEvent()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorker_HandlePush_RetrySemantics(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "store failure asks for redelivery",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to record account event"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "invalid event is acknowledged",
			err:        domainerrors.ErrValidationFailed.WrapMessage("unknown account event type"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, auditUC := newTestWorker(t)
			auditUC.EXPECT().RecordAccountEvent(mock.Anything, mock.Anything).Return(tt.err)

			rec := post(e, "/push", pushBody(t, "msg-1", createdEvent()))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWorker_HandlePush_BadPayload(t *testing.T) {
	e, _ := newTestWorker(t)

	rec := post(e, "/push", `{"message":{"data":"not base64!","messageId":"msg-1"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorker_ListAccountEvents(t *testing.T) {
	e, auditUC := newTestWorker(t)
	auditUC.EXPECT().
		ListAccountEvents(mock.Anything, int64(7)).
		Return([]*entity.AccountAuditRecord{{ID: 1, UserID: 7, EventType: "account.created"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/accounts/7/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "account.created")
}

func TestWorker_ListAccountEvents_InvalidID(t *testing.T) {
	e, _ := newTestWorker(t)

	req := httptest.NewRequest(http.MethodGet, "/accounts/abc/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorker_ReceivesLocalPublisherEnvelope(t *testing.T) {
	e, auditUC := newTestWorker(t)
	srv := httptest.NewServer(e)
	defer srv.Close()

	event := createdEvent()
	auditUC.EXPECT().
		RecordAccountEvent(mock.Anything, mock.MatchedBy(func(in *usecase.RecordAccountEventInput) bool {
			return in.MessageID != "" && in.Event.UserID == event.UserID && in.Event.OccurredAt.Equal(event.OccurredAt)
		})).
		Return(nil)

	publisher := pubsub.NewLocalHTTPPublisher(srv.URL+"/push", slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, publisher.PublishAccountEvent(context.Background(), event))
}

func TestWorker_DefaultConfigTargetsPushRoute(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)
	require.NotNil(t, cfg.PubSub)

	endpoint, err := url.Parse(cfg.PubSub.LocalEndpoint)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(listenPort(cfg)), endpoint.Port())
	assert.NotEqual(t, cfg.HTTP.Port, listenPort(cfg))

	e, auditUC := newTestWorker(t)
	srv := httptest.NewServer(e)
	defer srv.Close()

	event := createdEvent()
	auditUC.EXPECT().
		RecordAccountEvent(mock.Anything, mock.MatchedBy(func(in *usecase.RecordAccountEventInput) bool {
			return in.Event.UserID == event.UserID
		})).
		Return(nil)

	publisher := pubsub.NewLocalHTTPPublisher(srv.URL+endpoint.Path, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, publisher.PublishAccountEvent(context.Background(), event))
}

func TestWorker_ListenPort(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	assert.Equal(t, 8080, listenPort(cfg))

	cfg.Worker.Port = 8081
	assert.Equal(t, 8081, listenPort(cfg))
}
