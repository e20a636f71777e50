package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"registry/internal/delivery/api/validator"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	mockUC "registry/internal/mocks/usecase"
	"registry/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{
		UserUC: userUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), userUC
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func sampleAccount() *entity.UserAccount {
	return &entity.UserAccount{
		ID:          1,
		Login:       "alice",
		Credential:  "c2FsdA==;a2V5",
		CreatedDate: civil.Date{Year: 2026, Month: time.March, Day: 14},
		Group:       &entity.UserGroup{ID: 2, Code: entity.GroupUser},
		State:       &entity.UserState{ID: 1, Code: entity.StateActive},
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestUserHandler_CreateUser_Created(t *testing.T) {
	h, userUC := newTestHandler(t)

	userUC.EXPECT().
		CreateUser(mock.Anything, &usecase.CreateUserInput{Login: "alice", Password: "p1"}).
		Return(&usecase.CreateUserOutput{User: sampleAccount()}, nil)

	c, rec := newContext(http.MethodPost, "/user", `{"login":"alice","password":"p1"}`)

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/user/alice", rec.Header().Get(echo.HeaderLocation))

	body := decode(t, rec)
	var user UserResponse
	require.NoError(t, json.Unmarshal(body.Data, &user))
	assert.Equal(t, UserResponse{ID: 1, Login: "alice", Group: "User", State: "Active", CreatedDate: "2026-03-14"}, user)
	assert.NotContains(t, rec.Body.String(), "c2FsdA==", "credential must never leave the service")
}

func TestUserHandler_CreateUser_ValidationError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing login", body: `{"password":"p1"}`},
		{name: "unknown group", body: `{"login":"alice","password":"p1","group":"Root"}`},
		{name: "login too long", body: `{"login":"` + strings.Repeat("a", 256) + `","password":"p1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			c, _ := newContext(http.MethodPost, "/user", tt.body)

			err := h.CreateUser(c)

			assert.NotNil(t, validator.FieldErrors(err))
		})
	}
}

func TestUserHandler_CreateUser_BusinessErrorPropagates(t *testing.T) {
	h, userUC := newTestHandler(t)

	userUC.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrLoginTaken)

	c, _ := newContext(http.MethodPost, "/user", `{"login":"alice","password":"p2"}`)

	err := h.CreateUser(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LOGIN_TAKEN", appErr.ErrorCode())
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, userUC := newTestHandler(t)
		userUC.EXPECT().GetActiveUser(mock.Anything, "alice").Return(sampleAccount(), true, nil)

		c, rec := newContext(http.MethodGet, "/user/alice", "")
		c.SetParamNames("login")
		c.SetParamValues("alice")

		require.NoError(t, h.GetUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "credential")
	})

	t.Run("not found", func(t *testing.T) {
		h, userUC := newTestHandler(t)
		userUC.EXPECT().GetActiveUser(mock.Anything, "ghost").Return(nil, false, nil)

		c, rec := newContext(http.MethodGet, "/user/ghost", "")
		c.SetParamNames("login")
		c.SetParamValues("ghost")

		require.NoError(t, h.GetUser(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decode(t, rec).Error.Code)
	})
}

func TestUserHandler_ListUsers_EmptyIsArray(t *testing.T) {
	h, userUC := newTestHandler(t)
	userUC.EXPECT().ListActiveUsers(mock.Anything).Return(nil, nil)

	c, rec := newContext(http.MethodGet, "/user", "")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("blocked", func(t *testing.T) {
		h, userUC := newTestHandler(t)
		userUC.EXPECT().DeleteUser(mock.Anything, "alice").Return(true, nil)

		c, rec := newContext(http.MethodDelete, "/user/alice", "")
		c.SetParamNames("login")
		c.SetParamValues("alice")

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown login", func(t *testing.T) {
		h, userUC := newTestHandler(t)
		userUC.EXPECT().DeleteUser(mock.Anything, "ghost").Return(false, nil)

		c, rec := newContext(http.MethodDelete, "/user/ghost", "")
		c.SetParamNames("login")
		c.SetParamValues("ghost")

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserHandler_VerifyPassword(t *testing.T) {
	h, userUC := newTestHandler(t)
	userUC.EXPECT().
		VerifyPassword(mock.Anything, &usecase.VerifyPasswordInput{Login: "alice", Password: "p1"}).
		Return(true, nil)

	c, rec := newContext(http.MethodPost, "/user/alice/verify", `{"password":"p1"}`)
	c.SetParamNames("login")
	c.SetParamValues("alice")

	require.NoError(t, h.VerifyPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true}`, string(decode(t, rec).Data))
}
