package postgres

import (
	"context"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
	"plantcare/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Open tasks first, then by due date with undated tasks last.
const taskListOrder = "completed ASC, due_date ASC NULLS LAST, id ASC"

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt

	return nil
}

func (repo *taskRepository) FindByID(ctx context.Context, id uint64) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

func (repo *taskRepository) FindByUser(ctx context.Context, userID uint64) ([]*entity.Task, error) {
	return repo.list(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *taskRepository) FindByPlant(ctx context.Context, plantID uint64) ([]*entity.Task, error) {
	return repo.list(repo.db.WithContext(ctx).Where("plant_id = ?", plantID))
}

func (repo *taskRepository) list(query *gorm.DB) ([]*entity.Task, error) {
	var taskMs []model.TaskModel
	if err := query.Order(taskListOrder).Find(&taskMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for i := range taskMs {
		tasks = append(tasks, toTaskDomain(&taskMs[i]))
	}

	return tasks, nil
}

func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"type":        string(task.Type),
			"priority":    string(task.Priority),
			"due_date":    task.DueDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// MarkCompleted uses a conditional update so two concurrent completions of the
// same task cannot both observe the transition.
func (repo *taskRepository) MarkCompleted(ctx context.Context, id uint64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND completed = ?", id, false).
		Update("completed", true)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete task")
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.TaskModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check task")
	}
	if count == 0 {
		return false, repository.ErrTaskNotFound
	}

	return false, nil
}

func (repo *taskRepository) CountCompletedByType(ctx context.Context, userID uint64, taskType entity.TaskType) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("user_id = ? AND completed = ? AND type = ?", userID, true, string(taskType)).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count completed tasks")
	}

	return count, nil
}

func (repo *taskRepository) Delete(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func (repo *taskRepository) DeleteByPlant(ctx context.Context, plantID uint64) (int64, error) {
	result := repo.db.WithContext(ctx).Where("plant_id = ?", plantID).Delete(&model.TaskModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete plant tasks")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		PlantID:     data.PlantID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Type:        entity.TaskType(data.Type),
		Priority:    entity.TaskPriority(data.Priority),
		Completed:   data.Completed,
		DueDate:     data.DueDate,
		CreatedAt:   data.CreatedAt,
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		PlantID:     data.PlantID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Type:        string(data.Type),
		Priority:    string(data.Priority),
		Completed:   data.Completed,
		DueDate:     data.DueDate,
		CreatedAt:   data.CreatedAt,
	}
}
