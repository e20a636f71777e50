// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"registry/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// ListByState returns every account in the given state with group and state attached, ordered by ID.
	ListByState(ctx context.Context, state entity.StateCode) ([]*entity.UserAccount, error)

	// FindByLoginAndState retrieves the account matching login exactly and currently in the given state.
	FindByLoginAndState(ctx context.Context, login string, state entity.StateCode) (*entity.UserAccount, error)

	// FindByLogin retrieves the account matching login exactly, in any state.
	// Inside a transaction the row stays locked until commit.
	FindByLogin(ctx context.Context, login string) (*entity.UserAccount, error)

	// ExistsInGroup reports whether any account, in any state, references the group.
	ExistsInGroup(ctx context.Context, group entity.GroupCode) (bool, error)

	// Create inserts a new account in a single statement and fills in its ID.
	// A duplicate login yields domainerrors.ErrLoginTaken; a second admin row
	// yields domainerrors.ErrAdminAlreadyExists.
	Create(ctx context.Context, user *entity.UserAccount) error

	// UpdateState moves the account to the given state.
	UpdateState(ctx context.Context, user *entity.UserAccount, state entity.StateCode) error
}
