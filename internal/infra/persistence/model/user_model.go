// Package model contains the GORM persistence models, kept separate from the
// pure domain entities.
package model

import "time"

// UserModel is the GORM mapping of the users table.
type UserModel struct {
	ID                  int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Email               string     `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash        string     `gorm:"column:password_hash;not null"`
	Role                string     `gorm:"column:role;not null;default:USER"`
	FailedLoginAttempts int        `gorm:"column:failed_login_attempts;not null;default:0"`
	LastFailedLogin     *time.Time `gorm:"column:last_failed_login"`
	AccountLockedUntil  *time.Time `gorm:"column:account_locked_until"`
	RefreshToken        *string    `gorm:"column:refresh_token"`
	LicenseKey          *string    `gorm:"column:license_key"`
	LicenseExpiresAt    *time.Time `gorm:"column:license_expires_at"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for UserModel.
func (UserModel) TableName() string {
	return "users"
}
