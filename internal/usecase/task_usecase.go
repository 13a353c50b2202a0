package usecase

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"
)

// CreateTaskInput defines the data required to schedule a care task by hand.
type CreateTaskInput struct {
	PlantID     uint64              `json:"plant_id" validate:"required"`
	Title       string              `json:"title" validate:"required,max=200"`
	Description *string             `json:"description,omitempty"`
	Type        entity.TaskType     `json:"type" validate:"required,max=32"`
	Priority    entity.TaskPriority `json:"priority" validate:"required,oneof=urgent high medium low"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
}

// UpdateTaskInput lists the task fields that may change. Nil fields are left as they are.
// Completed may only move from false to true.
type UpdateTaskInput struct {
	Title       *string              `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string              `json:"description,omitempty"`
	Type        *entity.TaskType     `json:"type,omitempty" validate:"omitempty,min=1,max=32"`
	Priority    *entity.TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=urgent high medium low"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
	Completed   *bool                `json:"completed,omitempty"`
}

// TaskOutput is a task together with the effects the operation caused.
type TaskOutput struct {
	Task    *entity.Task   `json:"task"`
	Effects entity.Effects `json:"effects"`
}

// TaskUsecase defines care task operations for the signed-in user.
type TaskUsecase interface {
	CreateTask(ctx context.Context, userID uint64, input *CreateTaskInput) (*entity.Task, error)
	ListTasks(ctx context.Context, userID uint64) ([]*entity.Task, error)
	ListPlantTasks(ctx context.Context, userID, plantID uint64) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input *UpdateTaskInput) (*TaskOutput, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error

	// CompleteTask completes an open task and applies its rewards.
	// Completing a completed task returns it unchanged with no effects.
	CompleteTask(ctx context.Context, userID, taskID uint64) (*TaskOutput, error)

	// MaterializeTasksFromRecommendations turns urgent and recommended
	// recommendations for one plant into tasks.
	MaterializeTasksFromRecommendations(ctx context.Context, userID, plantID uint64, recs []entity.Recommendation) (entity.Effects, error)
}
