package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"registry/internal/delivery/api/response"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for the user directory handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the request body for creating an account
type CreateUserRequest struct {
	Login    string `json:"login" validate:"required,max=255"`
	Password string `json:"password"`
	Group    string `json:"group" validate:"omitempty,oneof=Admin User"`
}

// VerifyPasswordRequest represents the request body for checking a password
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// UserResponse is the outward view of an account. The credential is never part of it.
type UserResponse struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Group       string `json:"group"`
	State       string `json:"state"`
	CreatedDate string `json:"created_date"`
}

// VerifyPasswordResponse reports the outcome of a password check
type VerifyPasswordResponse struct {
	Valid bool `json:"valid"`
}

// DeleteUserResponse acknowledges a soft delete
type DeleteUserResponse struct {
	Login   string `json:"login"`
	Blocked bool   `json:"blocked"`
}

// ListUsers handles listing all active accounts
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListActiveUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetUser handles fetching one active account by login
func (h *UserHandler) GetUser(c echo.Context) error {
	login := c.Param("login")

	user, found, err := h.userUC.GetActiveUser(c.Request().Context(), login)
	if err != nil {
		return errors.WithStack(err)
	}
	if !found {
		return response.NotFound(c, domainerrors.ErrUserNotFound.ErrorCode(), domainerrors.ErrUserNotFound.Message())
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// CreateUser handles account creation
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Login:    req.Login,
		Password: req.Password,
		Group:    entity.GroupCode(req.Group),
	})
	req.Password = ""
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/user/"+url.PathEscape(output.User.Login))

	return response.Success(c, http.StatusCreated, toUserResponse(output.User))
}

// DeleteUser handles soft-deleting an account by login
func (h *UserHandler) DeleteUser(c echo.Context) error {
	login := c.Param("login")

	ok, err := h.userUC.DeleteUser(c.Request().Context(), login)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return response.NotFound(c, domainerrors.ErrUserNotFound.ErrorCode(), domainerrors.ErrUserNotFound.Message())
	}

	return response.Success(c, http.StatusOK, &DeleteUserResponse{Login: login, Blocked: true})
}

// VerifyPassword handles checking a password against an active account
func (h *UserHandler) VerifyPassword(c echo.Context) error {
	var req VerifyPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid verification input")
	}

	valid, err := h.userUC.VerifyPassword(c.Request().Context(), &usecase.VerifyPasswordInput{
		Login:    c.Param("login"),
		Password: req.Password,
	})
	req.Password = ""
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &VerifyPasswordResponse{Valid: valid})
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func toUserResponse(user *entity.UserAccount) *UserResponse {
	out := &UserResponse{
		ID:          user.ID,
		Login:       user.Login,
		CreatedDate: user.CreatedDate.String(),
	}
	if user.Group != nil {
		out.Group = user.Group.Code.String()
	}
	if user.State != nil {
		out.State = user.State.Code.String()
	}

	return out
}
