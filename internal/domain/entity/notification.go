package entity

import (
	"time"
)

// NotificationType groups notifications for display.
type NotificationType string

const (
	NotificationTypeTask  NotificationType = "task"
	NotificationTypeIssue NotificationType = "issue"
	NotificationTypeBadge NotificationType = "badge"
	NotificationTypeTip   NotificationType = "tip"
)

// Notification is a message shown in a user's inbox.
type Notification struct {
	ID        uint64           `json:"id"`
	UserID    uint64           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	RelatedID *uint64          `json:"related_id,omitempty"` // Plant id for issues, badge id for badges, task id for tasks.
	CreatedAt time.Time        `json:"created_at"`
}
