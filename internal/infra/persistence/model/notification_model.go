package model

import (
	"time"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	UserID    uint64  `gorm:"not null;index"`
	Title     string  `gorm:"type:varchar(200);not null"`
	Message   string  `gorm:"type:text;not null"`
	Type      string  `gorm:"type:varchar(16);not null"`
	Read      bool    `gorm:"not null;default:false"`
	RelatedID *uint64 `gorm:"index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
