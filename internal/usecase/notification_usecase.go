package usecase

import (
	"context"

	"plantcare/internal/domain/entity"
)

// NotificationUsecase defines inbox operations.
type NotificationUsecase interface {
	// ListNotifications returns the user's inbox newest first.
	ListNotifications(ctx context.Context, userID uint64) ([]*entity.Notification, error)

	MarkAsRead(ctx context.Context, userID, notificationID uint64) (*entity.Notification, error)

	// EmitIssueNotifications notifies the user of issues found on one of their plants.
	// Unknown plants are skipped without error.
	EmitIssueNotifications(ctx context.Context, userID, plantID uint64, issues []entity.Issue) (entity.Effects, error)
}
