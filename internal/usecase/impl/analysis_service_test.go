package impl

import (
	"strings"
	"testing"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysisInput() *usecase.RecordAnalysisInput {
	return &usecase.RecordAnalysisInput{
		HealthScore:   60,
		WaterLevel:    20,
		LightLevel:    80,
		NutrientLevel: 40,
		PestRisk:      20,
		Issues: []entity.Issue{
			{Name: "Dehydration", Description: "The soil is very dry.", Icon: "water_drop"},
		},
		Recommendations: []entity.Recommendation{
			{Title: "Water Thoroughly", Priority: entity.RecommendationUrgent, Type: entity.TaskTypeWater},
			{Title: "Clean Leaves", Priority: entity.RecommendationMaintenance, Type: entity.TaskTypeClean},
		},
	}
}

func TestAnalysisService_RecordAnalysis(t *testing.T) {
	env := newTestEnv(t)
	srv := env.analysisService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	out, err := srv.RecordAnalysis(env.ctx, user.ID, plant.ID, sampleAnalysisInput())
	require.NoError(t, err)

	assert.Equal(t, plant.ID, out.Analysis.PlantID)
	assert.Equal(t, entity.EffectAnalysisRecorded, out.Effects[0].Kind)
	assert.Len(t, out.Effects.OfKind(entity.EffectTaskCreated), 1)
	assert.Len(t, out.Effects.OfKind(entity.EffectNotificationCreated), 1)
	assert.Equal(t, 15, out.Effects.PointsTotal())

	stored, err := env.plantService().GetPlant(env.ctx, user.ID, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Analysis.Health(), stored.Health())

	latest, err := srv.GetLatestAnalysis(env.ctx, user.ID, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Analysis.ID, latest.ID)
	assert.Equal(t, out.Analysis.Issues, latest.Issues)

	events := env.publishedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, OperationRecordAnalysis, events[0].Operation)
}

func TestAnalysisService_RecordAnalysis_ForeignPlantChangesNothing(t *testing.T) {
	env := newTestEnv(t)
	srv := env.analysisService()
	owner := env.createUser(t, "fern")
	other := env.createUser(t, "ivy")
	plant := env.createPlant(t, owner.ID, "Monstera")

	_, err := srv.RecordAnalysis(env.ctx, other.ID, plant.ID, sampleAnalysisInput())
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))

	_, err = srv.GetLatestAnalysis(env.ctx, owner.ID, plant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrAnalysisNotFound))
	assert.Zero(t, env.reloadUser(t, other.ID).Points)
	assert.Empty(t, env.publishedEvents())
}

func TestAnalysisService_RecordAnalysis_Validation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	input := sampleAnalysisInput()
	input.HealthScore = 101

	_, err := env.analysisService().RecordAnalysis(env.ctx, user.ID, plant.ID, input)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	input = sampleAnalysisInput()
	input.Issues = append(input.Issues, entity.Issue{})

	_, err = env.analysisService().RecordAnalysis(env.ctx, user.ID, plant.ID, input)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAnalysisService_RecordAnalysis_RejectsOversizedText(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, strings.Repeat("p", 120))

	tests := []struct {
		name   string
		mutate func(*usecase.RecordAnalysisInput)
	}{
		{
			name:   "issue name",
			mutate: func(in *usecase.RecordAnalysisInput) { in.Issues[0].Name = strings.Repeat("i", 61) },
		},
		{
			name:   "recommendation title",
			mutate: func(in *usecase.RecordAnalysisInput) { in.Recommendations[0].Title = strings.Repeat("t", 201) },
		},
		{
			name:   "recommendation type",
			mutate: func(in *usecase.RecordAnalysisInput) { in.Recommendations[0].Type = entity.TaskType(strings.Repeat("y", 33)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sampleAnalysisInput()
			tt.mutate(input)

			_, err := env.analysisService().RecordAnalysis(env.ctx, user.ID, plant.ID, input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}

	_, err := env.analysisService().GetLatestAnalysis(env.ctx, user.ID, plant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrAnalysisNotFound))
}

func TestAnalysisService_RecordAnalysis_LongestTextFitsColumns(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, strings.Repeat("p", 120))

	input := sampleAnalysisInput()
	input.Issues[0].Name = strings.Repeat("i", 60)
	input.Recommendations[0].Title = strings.Repeat("t", 200)
	input.Recommendations[0].Type = entity.TaskType(strings.Repeat("y", 32))

	_, err := env.analysisService().RecordAnalysis(env.ctx, user.ID, plant.ID, input)
	require.NoError(t, err)

	notifications, err := env.repos.NotificationRepo().FindByUser(env.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.LessOrEqual(t, len(notifications[0].Title), 200)

	tasks, err := env.repos.TaskRepo().FindByUser(env.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Len(t, tasks[0].Title, 200)
	assert.Len(t, string(tasks[0].Type), 32)
}

func TestAnalysisService_ListAnalyses_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	srv := env.analysisService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	first, err := srv.RecordAnalysis(env.ctx, user.ID, plant.ID, sampleAnalysisInput())
	require.NoError(t, err)

	input := sampleAnalysisInput()
	input.HealthScore = 90
	second, err := srv.RecordAnalysis(env.ctx, user.ID, plant.ID, input)
	require.NoError(t, err)

	analyses, err := srv.ListAnalyses(env.ctx, user.ID, plant.ID)
	require.NoError(t, err)
	require.Len(t, analyses, 2)
	assert.Equal(t, second.Analysis.ID, analyses[0].ID)
	assert.Equal(t, first.Analysis.ID, analyses[1].ID)

	stored, err := env.plantService().GetPlant(env.ctx, user.ID, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, stored.HealthScore)
}
