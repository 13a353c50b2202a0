package entity

import (
	"time"
)

// TaskType is an open enumeration; unknown values are stored as given.
type TaskType string

const (
	TaskTypeWater     TaskType = "water"
	TaskTypeFertilize TaskType = "fertilize"
	TaskTypeMove      TaskType = "move"
	TaskTypePrune     TaskType = "prune"
	TaskTypeClean     TaskType = "clean"
	TaskTypeRepot     TaskType = "repot"
	TaskTypeMist      TaskType = "mist"
	TaskTypeRotate    TaskType = "rotate"
)

// TaskPriority orders care tasks by urgency.
type TaskPriority string

const (
	TaskPriorityUrgent TaskPriority = "urgent"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// IsValid reports whether p is one of the known priorities.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityUrgent, TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	default:
		return false
	}
}

// Task is a care action for one plant. Completion is one way.
type Task struct {
	ID          uint64       `json:"id"`
	PlantID     uint64       `json:"plant_id"`
	UserID      uint64       `json:"user_id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Type        TaskType     `json:"type"`
	Priority    TaskPriority `json:"priority"`
	Completed   bool         `json:"completed"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
