package impl

import (
	"sync"
	"testing"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/gamification"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateTask(t *testing.T) {
	env := newTestEnv(t)
	srv := env.taskService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	task, err := srv.CreateTask(env.ctx, user.ID, &usecase.CreateTaskInput{
		PlantID:  plant.ID,
		Title:    "Mist leaves",
		Type:     entity.TaskTypeMist,
		Priority: entity.TaskPriorityLow,
	})
	require.NoError(t, err)

	assert.NotZero(t, task.ID)
	assert.False(t, task.Completed)

	tasks, err := srv.ListPlantTasks(env.ctx, user.ID, plant.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Mist leaves", tasks[0].Title)
}

func TestTaskService_CreateTask_ForeignPlant(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "fern")
	other := env.createUser(t, "ivy")
	plant := env.createPlant(t, owner.ID, "Monstera")

	_, err := env.taskService().CreateTask(env.ctx, other.ID, &usecase.CreateTaskInput{
		PlantID:  plant.ID,
		Title:    "Water",
		Type:     entity.TaskTypeWater,
		Priority: entity.TaskPriorityHigh,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))
}

func TestTaskService_CreateTask_InvalidPriority(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	_, err := env.taskService().CreateTask(env.ctx, user.ID, &usecase.CreateTaskInput{
		PlantID:  plant.ID,
		Title:    "Water",
		Type:     entity.TaskTypeWater,
		Priority: "whenever",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTaskService_CompleteTask_IsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	srv := env.taskService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")
	task := env.createTask(t, user.ID, plant.ID, entity.TaskTypeMist)

	first, err := srv.CompleteTask(env.ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, first.Task.Completed)
	assert.Equal(t, 10, first.Effects.PointsTotal())
	assert.Len(t, first.Effects.OfKind(entity.EffectTaskCompleted), 1)

	second, err := srv.CompleteTask(env.ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, second.Task.Completed)
	assert.Empty(t, second.Effects)

	assert.Equal(t, 10, env.reloadUser(t, user.ID).Points)
	assert.Len(t, env.publishedEvents(), 1)
}

func TestTaskService_CompleteTask_ForeignTask(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "fern")
	other := env.createUser(t, "ivy")
	plant := env.createPlant(t, owner.ID, "Monstera")
	task := env.createTask(t, owner.ID, plant.ID, entity.TaskTypeWater)

	_, err := env.taskService().CompleteTask(env.ctx, other.ID, task.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
	assert.Zero(t, env.reloadUser(t, other.ID).Points)
}

func TestTaskService_FifthWaterTaskAwardsHydrationPro(t *testing.T) {
	env := newTestEnv(t)
	srv := env.taskService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	var last *usecase.TaskOutput
	for range 5 {
		task := env.createTask(t, user.ID, plant.ID, entity.TaskTypeWater)

		var err error
		last, err = srv.CompleteTask(env.ctx, user.ID, task.ID)
		require.NoError(t, err)
	}

	awarded := last.Effects.OfKind(entity.EffectBadgeAwarded)
	require.Len(t, awarded, 1)
	assert.Equal(t, gamification.BadgeHydrationPro, awarded[0].Detail)

	// 5 completions and the 50 point bonus.
	user = env.reloadUser(t, user.ID)
	assert.Equal(t, 100, user.Points)
	assert.Equal(t, 2, user.Level)
	assert.NotEmpty(t, last.Effects.OfKind(entity.EffectLevelUp))

	sixth := env.createTask(t, user.ID, plant.ID, entity.TaskTypeWater)
	out, err := srv.CompleteTask(env.ctx, user.ID, sixth.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Effects.OfKind(entity.EffectBadgeAwarded))
}

func TestTaskService_UpdateTask(t *testing.T) {
	env := newTestEnv(t)
	srv := env.taskService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")
	task := env.createTask(t, user.ID, plant.ID, entity.TaskTypeWater)

	title := "Water deeply"
	priority := entity.TaskPriorityUrgent
	out, err := srv.UpdateTask(env.ctx, user.ID, task.ID, &usecase.UpdateTaskInput{Title: &title, Priority: &priority})
	require.NoError(t, err)
	assert.Equal(t, "Water deeply", out.Task.Title)
	assert.Empty(t, out.Effects)

	done := true
	out, err = srv.UpdateTask(env.ctx, user.ID, task.ID, &usecase.UpdateTaskInput{Completed: &done})
	require.NoError(t, err)
	assert.True(t, out.Task.Completed)
	assert.Equal(t, 10, out.Effects.PointsTotal())

	reopen := false
	_, err = srv.UpdateTask(env.ctx, user.ID, task.ID, &usecase.UpdateTaskInput{Completed: &reopen})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	stored, err := env.repos.TaskRepo().FindByID(env.ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.Equal(t, entity.TaskPriorityUrgent, stored.Priority)
}

func TestTaskService_DeleteTask(t *testing.T) {
	env := newTestEnv(t)
	srv := env.taskService()
	user := env.createUser(t, "fern")
	other := env.createUser(t, "ivy")
	plant := env.createPlant(t, user.ID, "Monstera")
	task := env.createTask(t, user.ID, plant.ID, entity.TaskTypeWater)

	err := srv.DeleteTask(env.ctx, other.ID, task.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))

	require.NoError(t, srv.DeleteTask(env.ctx, user.ID, task.ID))

	err = srv.DeleteTask(env.ctx, user.ID, task.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_MaterializeTasksFromRecommendations(t *testing.T) {
	env := newTestEnv(t)
	srv := env.taskService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	effects, err := srv.MaterializeTasksFromRecommendations(env.ctx, user.ID, plant.ID, []entity.Recommendation{
		{Title: "Water", Priority: entity.RecommendationUrgent, Type: entity.TaskTypeWater},
		{Title: "Dust", Priority: entity.RecommendationMaintenance, Type: entity.TaskTypeClean},
		{Title: "Feed", Priority: entity.RecommendationRecommended, Type: entity.TaskTypeFertilize},
	})
	require.NoError(t, err)
	assert.Len(t, effects.OfKind(entity.EffectTaskCreated), 2)

	tasks, err := srv.ListPlantTasks(env.ctx, user.ID, plant.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, entity.TaskPriorityUrgent, tasks[0].Priority)
	assert.Equal(t, entity.TaskPriorityHigh, tasks[1].Priority)

	_, err = srv.MaterializeTasksFromRecommendations(env.ctx, user.ID, plant.ID, []entity.Recommendation{
		{Title: "Water", Priority: "someday", Type: entity.TaskTypeWater},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTaskService_ConcurrentCompletionsKeepEveryPoint(t *testing.T) {
	env := newTestEnv(t)
	srv := env.taskService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	tasks := make([]*entity.Task, 8)
	for i := range tasks {
		tasks[i] = env.createTask(t, user.ID, plant.ID, entity.TaskTypeMist)
	}

	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := srv.CompleteTask(env.ctx, user.ID, task.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 80, env.reloadUser(t, user.ID).Points)
}
