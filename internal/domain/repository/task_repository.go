package repository

import (
	"context"
	"errors"

	"plantcare/internal/domain/entity"
)

// ErrTaskNotFound is returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines persistence operations for care tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id uint64) (*entity.Task, error)

	// FindByUser lists a user's tasks, open tasks first, each group by due date.
	FindByUser(ctx context.Context, userID uint64) ([]*entity.Task, error)

	// FindByPlant lists the tasks of a plant with the same ordering as FindByUser.
	FindByPlant(ctx context.Context, plantID uint64) ([]*entity.Task, error)

	// Update saves title, description, type, priority and due date.
	// Completion is only changed through MarkCompleted.
	Update(ctx context.Context, task *entity.Task) error

	// MarkCompleted flips completed from false to true.
	// It reports false, without error, when the task was already completed.
	MarkCompleted(ctx context.Context, id uint64) (bool, error)

	// CountCompletedByType counts a user's completed tasks of one type.
	CountCompletedByType(ctx context.Context, userID uint64, taskType entity.TaskType) (int64, error)

	Delete(ctx context.Context, id uint64) error

	// DeleteByPlant removes every task of a plant and returns how many were removed.
	DeleteByPlant(ctx context.Context, plantID uint64) (int64, error)
}
