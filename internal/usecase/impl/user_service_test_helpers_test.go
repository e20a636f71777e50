package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// memoryStore is an in-process stand-in for the postgres repository. It keeps
// the same constraints: unique login and at most one admin row.
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.UserAccount
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: make(map[int64]*entity.UserAccount)}
}

func (s *memoryStore) UserRepo() repository.UserRepository {
	return s
}

func (s *memoryStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.rows)
}

func (s *memoryStore) ListByState(ctx context.Context, state entity.StateCode) ([]*entity.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*entity.UserAccount, 0, len(s.rows))
	for _, u := range s.rows {
		if u.State.Code == state {
			users = append(users, cloneAccount(u))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (s *memoryStore) FindByLoginAndState(ctx context.Context, login string, state entity.StateCode) (*entity.UserAccount, error) {
	user, err := s.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if user.State.Code != state {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (s *memoryStore) FindByLogin(ctx context.Context, login string) (*entity.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.rows {
		if u.Login == login {
			return cloneAccount(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *memoryStore) ExistsInGroup(ctx context.Context, group entity.GroupCode) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.rows {
		if u.Group.Code == group {
			return true, nil
		}
	}

	return false, nil
}

func (s *memoryStore) Create(ctx context.Context, user *entity.UserAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.rows {
		if u.Login == user.Login {
			return domainerrors.ErrLoginTaken
		}
		if user.Group.Code == entity.GroupAdmin && u.Group.Code == entity.GroupAdmin {
			return domainerrors.ErrAdminAlreadyExists
		}
	}

	s.nextID++
	user.ID = s.nextID
	s.rows[user.ID] = cloneAccount(user)

	return nil
}

func (s *memoryStore) UpdateState(ctx context.Context, user *entity.UserAccount, state entity.StateCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	row.State = &entity.UserState{Code: state}
	user.State = &entity.UserState{Code: state}

	return nil
}

func cloneAccount(u *entity.UserAccount) *entity.UserAccount {
	c := *u
	if u.Group != nil {
		g := *u.Group
		c.Group = &g
	}
	if u.State != nil {
		st := *u.State
		c.State = &st
	}

	return &c
}
