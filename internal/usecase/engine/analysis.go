package engine

import (
	"context"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
)

// AnalysisInput is a health assessment to ingest for one plant.
type AnalysisInput struct {
	Health          entity.HealthSnapshot
	Issues          []entity.Issue
	Recommendations []entity.Recommendation
	ImageURL        *string
}

// RecordAnalysis stores the analysis and applies everything derived from it,
// in order: plant health overwrite, generated tasks, issue notifications and
// the analysis reward. Each step sees the writes of the previous ones.
func (e *Engine) RecordAnalysis(ctx context.Context, repos repository.RepositoryFactory, userID, plantID uint64, input AnalysisInput) (*entity.PlantAnalysis, entity.Effects, error) {
	plant, err := repos.PlantRepo().FindByID(ctx, plantID)
	if err != nil {
		return nil, nil, domainerrors.FromRepository(err)
	}
	if plant.UserID != userID {
		return nil, nil, domainerrors.ErrPlantNotFound
	}

	analysis := &entity.PlantAnalysis{
		PlantID:         plantID,
		UserID:          userID,
		HealthScore:     input.Health.HealthScore,
		WaterLevel:      input.Health.WaterLevel,
		LightLevel:      input.Health.LightLevel,
		NutrientLevel:   input.Health.NutrientLevel,
		PestRisk:        input.Health.PestRisk,
		Issues:          input.Issues,
		Recommendations: input.Recommendations,
		ImageURL:        input.ImageURL,
		CreatedAt:       e.now(),
	}
	if err := repos.AnalysisRepo().Create(ctx, analysis); err != nil {
		return nil, nil, domainerrors.FromRepository(err)
	}

	effects := entity.Effects{{
		Kind:      entity.EffectAnalysisRecorded,
		UserID:    userID,
		SubjectID: analysis.ID,
	}}

	if err := repos.PlantRepo().UpdateHealth(ctx, plantID, analysis.Health()); err != nil {
		return nil, nil, errors.Wrap(domainerrors.FromRepository(err), "failed to apply analysis health")
	}
	effects.Add(entity.Effect{
		Kind:      entity.EffectPlantUpdated,
		UserID:    userID,
		SubjectID: plantID,
		Detail:    "health",
	})

	steps := []func() (entity.Effects, error){
		func() (entity.Effects, error) {
			return e.MaterializeTasksFromRecommendations(ctx, repos, userID, plantID, input.Recommendations)
		},
		func() (entity.Effects, error) {
			return e.EmitIssueNotifications(ctx, repos, userID, plantID, input.Issues)
		},
		func() (entity.Effects, error) {
			return e.GrantPoints(ctx, repos, userID, e.settings.AnalysisPoints, "analysis_recorded")
		},
	}
	for _, step := range steps {
		stepEffects, err := step()
		if err != nil {
			return nil, nil, err
		}
		effects.Add(stepEffects...)
	}

	return analysis, effects, nil
}
