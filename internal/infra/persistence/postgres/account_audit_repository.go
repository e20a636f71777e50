package postgres

import (
	"context"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountAuditRepository struct {
	db *gorm.DB
}

// NewAccountAuditRepository is the constructor for accountAuditRepository.
func NewAccountAuditRepository(db *gorm.DB) repository.AccountAuditRepository {
	return &accountAuditRepository{db: db}
}

// Record inserts the record; a message already seen is skipped by the unique message_id constraint.
func (repo *accountAuditRepository) Record(ctx context.Context, record *entity.AccountAuditRecord) (bool, error) {
	recordM := fromAuditDomain(record)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoNothing: true,
		}).
		Create(recordM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return false, domainerrors.ErrValidationFailed.WrapMessage("incomplete account event")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record account event")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	record.ID = recordM.ID

	return true, nil
}

// ListByUser returns the stored events of one account ordered by occurrence.
func (repo *accountAuditRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.AccountAuditRecord, error) {
	var rows []*model.AccountAuditModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list account events")
	}

	records := make([]*entity.AccountAuditRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toAuditDomain(row))
	}

	return records, nil
}

func fromAuditDomain(data *entity.AccountAuditRecord) *model.AccountAuditModel {
	return &model.AccountAuditModel{
		ID:         data.ID,
		MessageID:  data.MessageID,
		EventType:  data.EventType,
		UserID:     data.UserID,
		Login:      data.Login,
		GroupCode:  data.GroupCode,
		RequestID:  data.RequestID,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
}

func toAuditDomain(data *model.AccountAuditModel) *entity.AccountAuditRecord {
	return &entity.AccountAuditRecord{
		ID:         data.ID,
		MessageID:  data.MessageID,
		EventType:  data.EventType,
		UserID:     data.UserID,
		Login:      data.Login,
		GroupCode:  data.GroupCode,
		RequestID:  data.RequestID,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
}
