package model

import (
	"time"
)

// BadgeModel mirrors the 'badges' table. The requirement is stored as kind and threshold columns.
type BadgeModel struct {
	ID                   uint64 `gorm:"primaryKey;autoIncrement"`
	Name                 string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description          string `gorm:"type:text;not null"`
	Icon                 string `gorm:"type:varchar(64);not null"`
	RequirementKind      string `gorm:"type:varchar(32);not null"`
	RequirementThreshold int    `gorm:"not null"`
	BonusPoints          int    `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (BadgeModel) TableName() string {
	return "badges"
}

// UserBadgeModel mirrors the 'user_badges' table. A user earns each badge at most once.
type UserBadgeModel struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	UserID   uint64 `gorm:"not null;uniqueIndex:idx_user_badges_user_badge"`
	BadgeID  uint64 `gorm:"not null;uniqueIndex:idx_user_badges_user_badge"`
	EarnedAt time.Time

	Badge BadgeModel `gorm:"foreignKey:BadgeID"`
}

// TableName explicitly sets the table name for GORM.
func (UserBadgeModel) TableName() string {
	return "user_badges"
}
