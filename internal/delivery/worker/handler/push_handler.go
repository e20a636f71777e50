package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"registry/config"
	deliverycontext "registry/internal/delivery/context"
	"registry/internal/domain/constants"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/service"
	"registry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler receives account events pushed by Pub/Sub and records them
type PushHandler struct {
	verifyToken func(*http.Request) error
	logger      *slog.Logger
	auditUC     usecase.AccountAuditUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AuditUC usecase.AccountAuditUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:  params.Logger,
		auditUC: params.AuditUC,
	}

	// Only Google push carries an OIDC token, and development runs without one.
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verifyToken = verifyPubSubToken
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// A 2xx acknowledges the message; 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken != nil {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AccountEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse account event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	err = h.auditUC.RecordAccountEvent(ctx, &usecase.RecordAccountEventInput{
		MessageID: pushMsg.Message.MessageID,
		Event:     &event,
	})
	if err != nil {
		retry := !domainerrors.IsBusinessError(err)
		reqLogger.Error("[Worker] Failed to record account event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		// Redelivering an invalid event cannot succeed
		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// ListAccountEvents returns the audit trail of one account
func (h *PushHandler) ListAccountEvents(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid account id"})
	}

	records, err := h.auditUC.ListAccountEvents(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("[Worker] Failed to list account events", slog.Int64("user_id", userID), slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, records)
}

// extractRequestID prefers the message attribute, then the event payload, then the HTTP request
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AccountEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
