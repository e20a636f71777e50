package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"registry/config"
	"registry/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.AccountEvent{
		RequestID:  "req-1",
		Type:       service.AccountEventCreated,
		UserID:     42,
		Login:      "alice",
		Group:      "User",
		OccurredAt: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishAccountEvent(context.Background(), event))
	require.NoError(t, publisher.Close())

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_type": "account.created",
		"user_id":    "42",
		"request_id": "req-1",
	}, received.Message.Attributes)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AccountEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
	assert.NotContains(t, string(raw), "credential")
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())

	err := publisher.PublishAccountEvent(context.Background(), &service.AccountEvent{Type: service.AccountEventBlocked})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "unconfigured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, discardLogger())
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}
