package gamification

import (
	"fmt"

	"plantcare/internal/domain/entity"
)

// BadgeNotificationTitle is the title of every badge notification.
const BadgeNotificationTitle = "New Badge Earned!"

// IssueNotification builds the notification for an issue found on a plant.
func IssueNotification(userID uint64, plant *entity.Plant, issue entity.Issue) *entity.Notification {
	plantID := plant.ID

	return &entity.Notification{
		UserID:    userID,
		Title:     fmt.Sprintf("%s detected in %s", issue.Name, plant.Name),
		Message:   issue.Description,
		Type:      entity.NotificationTypeIssue,
		Read:      false,
		RelatedID: &plantID,
	}
}

// BadgeNotification builds the notification for a newly earned badge.
func BadgeNotification(userID uint64, badge *entity.Badge) *entity.Notification {
	badgeID := badge.ID

	return &entity.Notification{
		UserID:    userID,
		Title:     BadgeNotificationTitle,
		Message:   fmt.Sprintf("Congratulations! You've earned the \"%s\" badge.", badge.Name),
		Type:      entity.NotificationTypeBadge,
		Read:      false,
		RelatedID: &badgeID,
	}
}
