package gamification

import (
	"testing"
	"time"

	"plantcare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{115, 2},
		{250, 3},
		{-5, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.points, 100), "points=%d", tt.points)
	}
}

func TestNextLevel_NeverDecreases(t *testing.T) {
	assert.Equal(t, 4, NextLevel(4, 120, 100))
	assert.Equal(t, 3, NextLevel(1, 200, 100))
	assert.Equal(t, 2, NextLevel(2, 199, 200))
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 6)

	byName := make(map[string]entity.Badge, len(catalog))
	for _, badge := range catalog {
		byName[badge.Name] = badge
	}

	firstPlant := byName[BadgeFirstPlant]
	assert.Equal(t, entity.BadgeRequirement{Kind: entity.RequirementPlantsAdded, Threshold: 1}, firstPlant.Requirement)
	assert.Equal(t, 25, firstPlant.BonusPoints)

	hydration := byName[BadgeHydrationPro]
	assert.Equal(t, entity.BadgeRequirement{Kind: entity.RequirementWateringCompleted, Threshold: 5}, hydration.Requirement)
	assert.Equal(t, 50, hydration.BonusPoints)

	for _, name := range []string{BadgePlantReviver, BadgePlantExpert, BadgePlantParent, BadgeDiagnostician} {
		assert.False(t, IsAttainable(byName[name].Requirement), name)
	}
}

func TestQualifies_PlantsAdded(t *testing.T) {
	req := entity.BadgeRequirement{Kind: entity.RequirementPlantsAdded, Threshold: 1}

	assert.True(t, Qualifies(req, Facts{Trigger: TriggerPlantCreated, PlantCount: 1}))
	assert.False(t, Qualifies(req, Facts{Trigger: TriggerPlantCreated, PlantCount: 2}))
	assert.False(t, Qualifies(req, Facts{Trigger: TriggerTaskCompleted, PlantCount: 1}))
	assert.True(t, Watches(req, TriggerPlantCreated))
	assert.False(t, Watches(req, TriggerTaskCompleted))
}

func TestQualifies_WateringCompleted(t *testing.T) {
	req := entity.BadgeRequirement{Kind: entity.RequirementWateringCompleted, Threshold: 5}

	assert.False(t, Qualifies(req, Facts{Trigger: TriggerTaskCompleted, CompletedTaskType: entity.TaskTypeWater, CompletedWaterTasks: 4}))
	assert.True(t, Qualifies(req, Facts{Trigger: TriggerTaskCompleted, CompletedTaskType: entity.TaskTypeWater, CompletedWaterTasks: 5}))
	assert.True(t, Qualifies(req, Facts{Trigger: TriggerTaskCompleted, CompletedTaskType: entity.TaskTypeWater, CompletedWaterTasks: 7}))
	assert.False(t, Qualifies(req, Facts{Trigger: TriggerTaskCompleted, CompletedTaskType: entity.TaskTypeFertilize, CompletedWaterTasks: 9}))
}

func TestQualifies_UnwiredKindsNeverFire(t *testing.T) {
	req := entity.BadgeRequirement{Kind: entity.RequirementDaysCaring, Threshold: 30}

	assert.False(t, Qualifies(req, Facts{Trigger: TriggerPlantCreated, PlantCount: 30}))
	assert.False(t, Qualifies(req, Facts{Trigger: TriggerTaskCompleted, CompletedWaterTasks: 30}))
}

func TestTaskFromRecommendation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	settings := DefaultSettings()

	urgent, ok := TaskFromRecommendation(1, 2, entity.Recommendation{
		Title: "Water now", Description: "Soil is dry", Priority: entity.RecommendationUrgent, Type: entity.TaskTypeWater,
	}, now, settings)
	require.True(t, ok)
	assert.Equal(t, entity.TaskPriorityUrgent, urgent.Priority)
	assert.Equal(t, now.Add(24*time.Hour), *urgent.DueDate)
	assert.Equal(t, "Water now", urgent.Title)
	assert.Equal(t, "Soil is dry", *urgent.Description)
	assert.Equal(t, uint64(2), urgent.PlantID)
	assert.False(t, urgent.Completed)

	recommended, ok := TaskFromRecommendation(1, 2, entity.Recommendation{
		Title: "Fertilize", Priority: entity.RecommendationRecommended, Type: entity.TaskTypeFertilize,
	}, now, settings)
	require.True(t, ok)
	assert.Equal(t, entity.TaskPriorityHigh, recommended.Priority)
	assert.Equal(t, now.Add(72*time.Hour), *recommended.DueDate)

	_, ok = TaskFromRecommendation(1, 2, entity.Recommendation{
		Title: "Clean leaves", Priority: entity.RecommendationMaintenance, Type: entity.TaskTypeClean,
	}, now, settings)
	assert.False(t, ok)
}

func TestIssueNotification(t *testing.T) {
	plant := &entity.Plant{ID: 7, Name: "Monstera"}
	n := IssueNotification(3, plant, entity.Issue{Name: "Dehydration", Description: "Soil moisture is critically low"})

	assert.Equal(t, "Dehydration detected in Monstera", n.Title)
	assert.Equal(t, "Soil moisture is critically low", n.Message)
	assert.Equal(t, entity.NotificationTypeIssue, n.Type)
	require.NotNil(t, n.RelatedID)
	assert.Equal(t, uint64(7), *n.RelatedID)
	assert.False(t, n.Read)
}

func TestBadgeNotification(t *testing.T) {
	n := BadgeNotification(3, &entity.Badge{ID: 2, Name: "Hydration Pro"})

	assert.Equal(t, "New Badge Earned!", n.Title)
	assert.Equal(t, `Congratulations! You've earned the "Hydration Pro" badge.`, n.Message)
	assert.Equal(t, entity.NotificationTypeBadge, n.Type)
	require.NotNil(t, n.RelatedID)
	assert.Equal(t, uint64(2), *n.RelatedID)
}
