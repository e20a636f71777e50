// Package impl contains the implementation of the application's business logic.
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

	"cloud.google.com/go/civil"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.CredentialHasher
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.CredentialHasher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActiveUsers returns all active accounts with their group and state resolved.
func (srv *userService) ListActiveUsers(ctx context.Context) ([]*entity.UserAccount, error) {
	users, err := srv.userRepo.ListByState(ctx, entity.StateActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active users")
	}

	return users, nil
}

// GetActiveUser looks up an active account by exact login.
func (srv *userService) GetActiveUser(ctx context.Context, login string) (*entity.UserAccount, bool, error) {
	user, err := srv.userRepo.FindByLoginAndState(ctx, login, entity.StateActive)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find active user")
	}

	return user, true, nil
}

// CreateUser registers a new account. Login uniqueness is left to the store's
// constraint; the admin pre-check only fails early, the store index is authoritative.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.CreateUserOutput, error) {
	if input == nil || input.Login == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("login is required")
	}
	if input.Group != "" && !input.Group.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown group " + input.Group.String())
	}

	group := entity.GroupUser
	if input.Group == entity.GroupAdmin {
		exists, err := srv.userRepo.ExistsInGroup(ctx, entity.GroupAdmin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check admin existence")
		}
		if exists {
			srv.log(ctx).Warn("Admin creation rejected", slog.String("login", input.Login))

			return nil, domainerrors.ErrAdminAlreadyExists
		}
		group = entity.GroupAdmin
	}

	credential, err := srv.hasher.Encode(input.Password)
	input.Password = ""
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode password")
	}

	user := &entity.UserAccount{
		Login:       input.Login,
		Credential:  credential,
		CreatedDate: civil.DateOf(srv.now()),
		Group:       &entity.UserGroup{Code: group},
		State:       &entity.UserState{Code: entity.StateActive},
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if domainerrors.IsBusinessError(err) {
			srv.log(ctx).Warn("User creation rejected",
				slog.String("login", input.Login),
				slog.Any("error", err),
			)

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created",
		slog.Int64("user_id", user.ID),
		slog.String("login", user.Login),
		slog.String("group", group.String()),
	)
	srv.publish(ctx, service.AccountEventCreated, user)

	return &usecase.CreateUserOutput{User: user}, nil
}

// DeleteUser soft-deletes the account by moving it to Blocked. The lookup and the
// update share one transaction so the row is locked in between.
func (srv *userService) DeleteUser(ctx context.Context, login string) (bool, error) {
	var blocked *entity.UserAccount
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByLogin(ctx, login)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if err := userRepo.UpdateState(ctx, user, entity.StateBlocked); err != nil {
			return errors.Wrap(err, "failed to block user")
		}
		blocked = user

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to delete user")
	}

	if blocked == nil {
		srv.log(ctx).Info("Delete skipped, no such user", slog.String("login", login))

		return false, nil
	}

	srv.log(ctx).Info("User blocked", slog.Int64("user_id", blocked.ID), slog.String("login", login))
	srv.publish(ctx, service.AccountEventBlocked, blocked)

	return true, nil
}

// VerifyPassword reports whether the password matches the credential of the active account.
func (srv *userService) VerifyPassword(ctx context.Context, input *usecase.VerifyPasswordInput) (bool, error) {
	user, err := srv.userRepo.FindByLoginAndState(ctx, input.Login, entity.StateActive)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find active user")
	}

	valid, err := srv.hasher.Verify(input.Password, user.Credential)
	input.Password = ""
	if err != nil {
		srv.log(ctx).Error("Stored credential is unusable",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err),
		)

		return false, errors.Wrap(err, "failed to verify password")
	}

	return valid, nil
}

// publish emits an account event after the change has committed. A failure is
// logged and swallowed because the write cannot be undone at this point.
func (srv *userService) publish(ctx context.Context, eventType service.AccountEventType, user *entity.UserAccount) {
	if srv.publisher == nil {
		return
	}

	group := ""
	if user.Group != nil {
		group = user.Group.Code.String()
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     user.ID,
		Login:      user.Login,
		Group:      group,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish account event",
			slog.String("type", string(eventType)),
			slog.Int64("user_id", user.ID),
			slog.Any("error", err),
		)
	}
}
