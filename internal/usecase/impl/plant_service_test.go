package impl

import (
	"bytes"
	"testing"
	"time"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/gamification"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantService_CreatePlant_AwardsFirstPlantOnce(t *testing.T) {
	env := newTestEnv(t)
	srv := env.plantService()
	user := env.createUser(t, "fern")

	first, err := srv.CreatePlant(env.ctx, user.ID, &usecase.CreatePlantInput{Name: "Monstera"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, first.Plant.UserID)
	assert.Equal(t, entity.DefaultMetricLevel, first.Plant.HealthScore)
	assert.Equal(t, fixedNow, *first.Plant.LastWatered)

	awarded := first.Effects.OfKind(entity.EffectBadgeAwarded)
	require.Len(t, awarded, 1)
	assert.Equal(t, gamification.BadgeFirstPlant, awarded[0].Detail)
	assert.Equal(t, 25, first.Effects.PointsTotal())

	second, err := srv.CreatePlant(env.ctx, user.ID, &usecase.CreatePlantInput{Name: "Pothos"})
	require.NoError(t, err)
	assert.Empty(t, second.Effects)

	assert.Equal(t, 25, env.reloadUser(t, user.ID).Points)

	events := env.publishedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, OperationCreatePlant, events[0].Operation)
	assert.Equal(t, user.ID, events[0].UserID)
	assert.NotEmpty(t, events[0].EventID)
	assert.Equal(t, first.Effects, entity.Effects(events[0].Effects))
}

func TestPlantService_CreatePlant_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.plantService().CreatePlant(env.ctx, 999, &usecase.CreatePlantInput{Name: "Monstera"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Empty(t, env.publishedEvents())
}

func TestPlantService_CreatePlant_Validation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "fern")

	_, err := env.plantService().CreatePlant(env.ctx, user.ID, &usecase.CreatePlantInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPlantService_OwnershipIsHidden(t *testing.T) {
	env := newTestEnv(t)
	srv := env.plantService()
	owner := env.createUser(t, "fern")
	other := env.createUser(t, "ivy")
	plant := env.createPlant(t, owner.ID, "Monstera")

	_, err := srv.GetPlant(env.ctx, other.ID, plant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))

	name := "Stolen"
	_, err = srv.UpdatePlant(env.ctx, other.ID, plant.ID, &usecase.UpdatePlantInput{Name: &name})
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))

	err = srv.DeletePlant(env.ctx, other.ID, plant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))

	_, err = srv.GetPlantQRCode(env.ctx, other.ID, plant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))

	stored, err := srv.GetPlant(env.ctx, owner.ID, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monstera", stored.Name)
}

func TestPlantService_UpdatePlant(t *testing.T) {
	env := newTestEnv(t)
	srv := env.plantService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	name := "Big Monstera"
	watered := fixedNow.Add(48 * time.Hour)
	updated, err := srv.UpdatePlant(env.ctx, user.ID, plant.ID, &usecase.UpdatePlantInput{Name: &name, LastWatered: &watered})
	require.NoError(t, err)

	assert.Equal(t, "Big Monstera", updated.Name)
	assert.True(t, watered.Equal(*updated.LastWatered))

	stored, err := srv.GetPlant(env.ctx, user.ID, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Big Monstera", stored.Name)
	assert.Equal(t, entity.DefaultMetricLevel, stored.HealthScore)
}

func TestPlantService_DeletePlant_RemovesTasks(t *testing.T) {
	env := newTestEnv(t)
	srv := env.plantService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")
	keep := env.createPlant(t, user.ID, "Pothos")
	env.createTask(t, user.ID, plant.ID, entity.TaskTypeWater)
	env.createTask(t, user.ID, plant.ID, entity.TaskTypeMist)
	env.createTask(t, user.ID, keep.ID, entity.TaskTypeWater)

	require.NoError(t, srv.DeletePlant(env.ctx, user.ID, plant.ID))

	_, err := srv.GetPlant(env.ctx, user.ID, plant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))

	tasks, err := env.taskService().ListTasks(env.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].PlantID)

	plants, err := srv.ListPlants(env.ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, plants, 1)
}

func TestPlantService_GetPlantQRCode(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	png, err := env.plantService().GetPlantQRCode(env.ctx, user.ID, plant.ID)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
