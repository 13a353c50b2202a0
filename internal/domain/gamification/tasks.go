package gamification

import (
	"time"

	"plantcare/internal/domain/entity"
)

// TaskFromRecommendation converts an urgent or recommended recommendation into a task.
// Maintenance recommendations stay advisory and return ok=false.
func TaskFromRecommendation(userID, plantID uint64, rec entity.Recommendation, now time.Time, settings Settings) (task *entity.Task, ok bool) {
	var (
		priority entity.TaskPriority
		due      time.Time
	)

	switch rec.Priority {
	case entity.RecommendationUrgent:
		priority = entity.TaskPriorityUrgent
		due = now.Add(settings.UrgentDueIn)
	case entity.RecommendationRecommended:
		priority = entity.TaskPriorityHigh
		due = now.Add(settings.RecommendedDueIn)
	default:
		return nil, false
	}

	description := rec.Description

	return &entity.Task{
		PlantID:     plantID,
		UserID:      userID,
		Title:       rec.Title,
		Description: &description,
		Type:        rec.Type,
		Priority:    priority,
		Completed:   false,
		DueDate:     &due,
	}, true
}
