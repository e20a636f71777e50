package model

import "time"

// AccountAuditModel is the GORM model for the account_audit table.
type AccountAuditModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	MessageID  string    `gorm:"type:varchar(128);not null;uniqueIndex:ux_account_audit_message_id"`
	EventType  string    `gorm:"type:varchar(64);not null"`
	UserID     int64     `gorm:"not null;index:ix_account_audit_user_id"`
	Login      string    `gorm:"type:varchar(255);not null"`
	GroupCode  string    `gorm:"type:varchar(32);not null"`
	RequestID  string    `gorm:"type:varchar(128)"`
	OccurredAt time.Time `gorm:"not null"`
	ReceivedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the AccountAuditModel.
func (AccountAuditModel) TableName() string {
	return "account_audit"
}
