package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"registry/config"
	"registry/internal/delivery/api/router"
	"registry/internal/delivery/api/router/handler"
	deliverycontext "registry/internal/delivery/context"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/errors"
	mockUC "registry/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	e := newEcho(cfg, logger, router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
	})

	return e, userUC
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "login taken", err: domainerrors.ErrLoginTaken, wantStatus: http.StatusConflict, wantCode: "LOGIN_TAKEN"},
		{name: "admin exists", err: domainerrors.ErrAdminAlreadyExists, wantStatus: http.StatusConflict, wantCode: "ADMIN_ALREADY_EXISTS"},
		{
			name:       "store unavailable",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("dial tcp: refused"), "failed to create user"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{name: "unknown failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, userUC := newTestEcho(t)
			userUC.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(e, http.MethodPost, "/user", `{"login":"alice","password":"p1"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "dial tcp", "internal details must not leak")
			if tt.wantStatus >= http.StatusInternalServerError {
				assert.Empty(t, body.Error.Details)
				assert.NotContains(t, rec.Body.String(), "failed to create user")
			}
		})
	}
}

func TestServer_ValidationFailure(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodPost, "/user", `{"password":"p1","group":"Root"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "required", body.Error.Details["login"])
	assert.Equal(t, "oneof=Admin User", body.Error.Details["group"])
}

func TestServer_MalformedCredential(t *testing.T) {
	e, userUC := newTestEcho(t)
	userUC.EXPECT().
		VerifyPassword(mock.Anything, mock.Anything).
		Return(false, errors.Wrap(domainerrors.ErrMalformedCredential.WrapMessage("missing separator"), "failed to verify password"))

	rec := serve(e, http.MethodPost, "/user/alice/verify", `{"password":"p1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "MALFORMED_CREDENTIAL", decodeError(t, rec).Error.Code)
}

func TestServer_VerifyUnknownUser(t *testing.T) {
	e, userUC := newTestEcho(t)
	userUC.EXPECT().VerifyPassword(mock.Anything, mock.Anything).Return(false, domainerrors.ErrUserNotFound)

	rec := serve(e, http.MethodPost, "/user/ghost/verify", `{"password":"p1"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestServer_RequestScopedContext(t *testing.T) {
	e, userUC := newTestEcho(t)
	userUC.EXPECT().
		DeleteUser(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-1"
		}), "alice").
		Return(true, nil)

	rec := serve(e, http.MethodDelete, "/user/alice", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodPost, "/user", `{"login":"`+strings.Repeat("a", 2048)+`","password":"p1"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
