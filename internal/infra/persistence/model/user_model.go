package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the migration tooling from other packages.
type UserModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Login       string    `gorm:"type:varchar(255);uniqueIndex:ux_users_login;not null"`
	Credential  string    `gorm:"type:text;not null"`
	CreatedDate time.Time `gorm:"type:date;not null"`
	GroupID     int       `gorm:"not null"`
	StateID     int       `gorm:"not null"`

	Group *UserGroupModel `gorm:"foreignKey:GroupID"`
	State *UserStateModel `gorm:"foreignKey:StateID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserGroupModel mirrors the 'user_groups' reference table.
type UserGroupModel struct {
	ID          int    `gorm:"primaryKey"`
	Code        string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (UserGroupModel) TableName() string {
	return "user_groups"
}

// UserStateModel mirrors the 'user_states' reference table.
type UserStateModel struct {
	ID          int    `gorm:"primaryKey"`
	Code        string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (UserStateModel) TableName() string {
	return "user_states"
}
