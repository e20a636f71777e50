// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// withRefs starts a query that resolves the group and state rows of every user it loads.
func (repo *userRepository) withRefs(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Group").Preload("State")
}

func (repo *userRepository) stateIDByCode(code entity.StateCode) *gorm.DB {
	return repo.db.Session(&gorm.Session{NewDB: true}).
		Model(&model.UserStateModel{}).Select("id").Where("code = ?", code.String())
}

func (repo *userRepository) groupIDByCode(code entity.GroupCode) *gorm.DB {
	return repo.db.Session(&gorm.Session{NewDB: true}).
		Model(&model.UserGroupModel{}).Select("id").Where("code = ?", code.String())
}

// ListByState returns all users in the given state ordered by ID.
func (repo *userRepository) ListByState(ctx context.Context, state entity.StateCode) ([]*entity.UserAccount, error) {
	var rows []*model.UserModel
	err := repo.withRefs(ctx).
		Where("state_id = (?)", repo.stateIDByCode(state)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users by state")
	}

	users := make([]*entity.UserAccount, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users, nil
}

// FindByLoginAndState retrieves a single user by exact login and state.
func (repo *userRepository) FindByLoginAndState(ctx context.Context, login string, state entity.StateCode) (*entity.UserAccount, error) {
	var row model.UserModel
	err := repo.withRefs(ctx).
		Where("login = ? AND state_id = (?)", login, repo.stateIDByCode(state)).
		First(&row).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by login and state")
	}

	return toUserDomain(&row), nil
}

// FindByLogin retrieves a single user by exact login in any state, locking the row.
func (repo *userRepository) FindByLogin(ctx context.Context, login string) (*entity.UserAccount, error) {
	var row model.UserModel
	err := repo.withRefs(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("login = ?", login).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by login")
	}

	return toUserDomain(&row), nil
}

// ExistsInGroup reports whether any user, active or blocked, is in the group.
func (repo *userRepository) ExistsInGroup(ctx context.Context, group entity.GroupCode) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("group_id = (?)", repo.groupIDByCode(group)).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check group membership")
	}

	return count > 0, nil
}

// Create persists a new user. Uniqueness of login and of the admin row is
// left to the table constraints so concurrent inserts cannot both succeed.
func (repo *userRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	db := repo.db.WithContext(ctx)

	group, err := findGroup(db, user.Group)
	if err != nil {
		return err
	}
	state, err := findState(db, user.State)
	if err != nil {
		return err
	}

	userM := fromUserDomain(user)
	userM.GroupID = group.ID
	userM.StateID = state.ID

	if err := db.Omit(clause.Associations).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			if violatedConstraint(err) == constraintUsersSingleAdmin {
				return domainerrors.ErrAdminAlreadyExists.WrapMessage("admin row already exists")
			}

			return domainerrors.ErrLoginTaken.WrapMessage("login already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid group or state reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.Group = toGroupDomain(group)
	user.State = toStateDomain(state)

	return nil
}

// UpdateState moves the user to the given state.
func (repo *userRepository) UpdateState(ctx context.Context, user *entity.UserAccount, code entity.StateCode) error {
	db := repo.db.WithContext(ctx)

	state, err := findState(db, &entity.UserState{Code: code})
	if err != nil {
		return err
	}

	result := db.Model(&model.UserModel{}).Where("id = ?", user.ID).Update("state_id", state.ID)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid state reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.State = toStateDomain(state)

	return nil
}

func findGroup(db *gorm.DB, group *entity.UserGroup) (*model.UserGroupModel, error) {
	if group == nil {
		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("group is required")
	}

	var row model.UserGroupModel
	if err := db.Where("code = ?", group.Code.String()).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserCreationFailed.WrapMessage("unknown group " + group.Code.String())
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve user group")
	}

	return &row, nil
}

func findState(db *gorm.DB, state *entity.UserState) (*model.UserStateModel, error) {
	if state == nil {
		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("state is required")
	}

	var row model.UserStateModel
	if err := db.Where("code = ?", state.Code.String()).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserUpdateFailed.WrapMessage("unknown state " + state.Code.String())
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve user state")
	}

	return &row, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain UserAccount entity.
func toUserDomain(data *model.UserModel) *entity.UserAccount {
	if data == nil {
		return nil
	}

	return &entity.UserAccount{
		ID:          data.ID,
		Login:       data.Login,
		Credential:  data.Credential,
		CreatedDate: civil.DateOf(data.CreatedDate),
		Group:       toGroupDomain(data.Group),
		State:       toStateDomain(data.State),
	}
}

// fromUserDomain converts a domain UserAccount entity to a GORM UserModel for persistence.
// Reference IDs are resolved by the caller.
func fromUserDomain(data *entity.UserAccount) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		Login:       data.Login,
		Credential:  data.Credential,
		CreatedDate: data.CreatedDate.In(time.UTC),
	}
}

func toGroupDomain(data *model.UserGroupModel) *entity.UserGroup {
	if data == nil {
		return nil
	}

	return &entity.UserGroup{
		ID:          data.ID,
		Code:        entity.GroupCode(data.Code),
		Description: data.Description,
	}
}

func toStateDomain(data *model.UserStateModel) *entity.UserState {
	if data == nil {
		return nil
	}

	return &entity.UserState{
		ID:          data.ID,
		Code:        entity.StateCode(data.Code),
		Description: data.Description,
	}
}
