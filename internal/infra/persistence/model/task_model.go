package model

import (
	"time"
)

// TaskModel mirrors the 'tasks' table.
type TaskModel struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	PlantID     uint64  `gorm:"not null;index"`
	UserID      uint64  `gorm:"not null;index:idx_tasks_user_completed_type,priority:1"`
	Title       string  `gorm:"type:varchar(200);not null"`
	Description *string `gorm:"type:text"`
	Type        string  `gorm:"type:varchar(32);not null;index:idx_tasks_user_completed_type,priority:3"`
	Priority    string  `gorm:"type:varchar(16);not null"`
	Completed   bool    `gorm:"not null;default:false;index:idx_tasks_user_completed_type,priority:2"`
	DueDate     *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
