// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"registry/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new account.
// Password is cleared once it has been encoded.
type CreateUserInput struct {
	Login    string
	Password string
	Group    entity.GroupCode
}

// VerifyPasswordInput defines the data required to check a password against an active account.
type VerifyPasswordInput struct {
	Login    string
	Password string
}

// --- Output DTOs ---

// CreateUserOutput returns the persisted account, including its store-assigned id.
type CreateUserOutput struct {
	User *entity.UserAccount
}

// UserUsecase defines the interface for the user directory.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// ListActiveUsers returns every account in the Active state, ordered by id.
	ListActiveUsers(ctx context.Context) ([]*entity.UserAccount, error)
	// GetActiveUser returns the active account with the given login.
	// found is false when no such account exists; that is not an error.
	GetActiveUser(ctx context.Context, login string) (user *entity.UserAccount, found bool, err error)
	// CreateUser registers a new active account.
	CreateUser(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error)
	// DeleteUser blocks the account with the given login. It reports false when no account exists.
	DeleteUser(ctx context.Context, login string) (bool, error)
	// VerifyPassword checks a password against the stored credential of an active account.
	VerifyPassword(ctx context.Context, input *VerifyPasswordInput) (bool, error)
}
