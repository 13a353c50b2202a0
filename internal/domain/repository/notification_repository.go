package repository

import (
	"context"
	"errors"

	"plantcare/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines persistence operations for inbox notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByID(ctx context.Context, id uint64) (*entity.Notification, error)

	// FindByUser lists a user's notifications newest first.
	FindByUser(ctx context.Context, userID uint64) ([]*entity.Notification, error)

	// MarkAsRead sets read=true. Marking an already read notification succeeds.
	MarkAsRead(ctx context.Context, id uint64) error

	CountUnread(ctx context.Context, userID uint64) (int64, error)
}
