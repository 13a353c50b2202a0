package impl

import (
	"context"
	"log/slog"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/usecase"
	"plantcare/internal/usecase/engine"

	"go.uber.org/fx"
)

type taskService struct {
	runner *OperationRunner
	engine *engine.Engine
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	Runner *OperationRunner
	Engine *engine.Engine
	Repos  repository.RepositoryFactory
	Logger *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		runner: params.Runner,
		engine: params.Engine,
		repos:  params.Repos,
		logger: params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *taskService) CreateTask(ctx context.Context, userID uint64, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var task *entity.Task
	_, err := srv.runner.run(ctx, OperationCreateTask, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		if _, err := findOwnedPlant(ctx, repos, userID, input.PlantID); err != nil {
			return nil, err
		}

		task = &entity.Task{
			PlantID:     input.PlantID,
			UserID:      userID,
			Title:       input.Title,
			Description: input.Description,
			Type:        input.Type,
			Priority:    input.Priority,
			DueDate:     input.DueDate,
		}
		if err := repos.TaskRepo().Create(ctx, task); err != nil {
			return nil, domainerrors.FromRepository(err)
		}

		return entity.Effects{{
			Kind:      entity.EffectTaskCreated,
			UserID:    userID,
			SubjectID: task.ID,
			Detail:    string(task.Priority),
		}}, nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (srv *taskService) ListTasks(ctx context.Context, userID uint64) ([]*entity.Task, error) {
	tasks, err := srv.repos.TaskRepo().FindByUser(ctx, userID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	return tasks, nil
}

func (srv *taskService) ListPlantTasks(ctx context.Context, userID, plantID uint64) ([]*entity.Task, error) {
	if _, err := findOwnedPlant(ctx, srv.repos, userID, plantID); err != nil {
		return nil, err
	}

	tasks, err := srv.repos.TaskRepo().FindByPlant(ctx, plantID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	return tasks, nil
}

func (srv *taskService) UpdateTask(ctx context.Context, userID, taskID uint64, input *usecase.UpdateTaskInput) (*usecase.TaskOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var task *entity.Task
	effects, err := srv.runner.run(ctx, OperationUpdateTask, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		var err error
		task, err = findOwnedTask(ctx, repos, userID, taskID)
		if err != nil {
			return nil, err
		}

		if input.Completed != nil && !*input.Completed && task.Completed {
			return nil, domainerrors.ErrValidationFailed.WithDetails("a completed task cannot be reopened")
		}

		if applyTaskUpdate(task, input) {
			if err := repos.TaskRepo().Update(ctx, task); err != nil {
				return nil, domainerrors.FromRepository(err)
			}
		}

		if input.Completed != nil && *input.Completed && !task.Completed {
			return srv.engine.OnTaskCompleted(ctx, repos, task)
		}

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.TaskOutput{Task: task, Effects: effects}, nil
}

// applyTaskUpdate copies the set fields onto task and reports whether any changed.
func applyTaskUpdate(task *entity.Task, input *usecase.UpdateTaskInput) bool {
	changed := false
	if input.Title != nil {
		task.Title = *input.Title
		changed = true
	}
	if input.Description != nil {
		task.Description = input.Description
		changed = true
	}
	if input.Type != nil {
		task.Type = *input.Type
		changed = true
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
		changed = true
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
		changed = true
	}

	return changed
}

func (srv *taskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	_, err := srv.runner.run(ctx, OperationDeleteTask, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		if _, err := findOwnedTask(ctx, repos, userID, taskID); err != nil {
			return nil, err
		}

		return nil, domainerrors.FromRepository(repos.TaskRepo().Delete(ctx, taskID))
	})

	return err
}

func (srv *taskService) CompleteTask(ctx context.Context, userID, taskID uint64) (*usecase.TaskOutput, error) {
	var task *entity.Task
	effects, err := srv.runner.run(ctx, OperationCompleteTask, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		var err error
		task, err = findOwnedTask(ctx, repos, userID, taskID)
		if err != nil {
			return nil, err
		}
		if task.Completed {
			return nil, nil
		}

		return srv.engine.OnTaskCompleted(ctx, repos, task)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Task completed",
		slog.Uint64("userID", userID),
		slog.Uint64("taskID", taskID),
		slog.Int("points", effects.PointsTotal()),
	)

	return &usecase.TaskOutput{Task: task, Effects: effects}, nil
}

type recommendationsInput struct {
	Recommendations []entity.Recommendation `validate:"dive"`
}

func (srv *taskService) MaterializeTasksFromRecommendations(ctx context.Context, userID, plantID uint64, recs []entity.Recommendation) (entity.Effects, error) {
	if err := validateInput(&recommendationsInput{Recommendations: recs}); err != nil {
		return nil, err
	}

	return srv.runner.run(ctx, OperationMaterializeTasks, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		if _, err := findOwnedPlant(ctx, repos, userID, plantID); err != nil {
			return nil, err
		}

		return srv.engine.MaterializeTasksFromRecommendations(ctx, repos, userID, plantID, recs)
	})
}

// findOwnedTask hides tasks of other users behind ErrTaskNotFound.
func findOwnedTask(ctx context.Context, repos repository.RepositoryFactory, userID, taskID uint64) (*entity.Task, error) {
	task, err := repos.TaskRepo().FindByID(ctx, taskID)
	if err != nil {
		return nil, domainerrors.FromRepository(err)
	}
	if task.UserID != userID {
		return nil, domainerrors.ErrTaskNotFound
	}

	return task, nil
}
