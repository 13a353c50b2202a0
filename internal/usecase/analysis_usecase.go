package usecase

import (
	"context"

	"plantcare/internal/domain/entity"
)

// RecordAnalysisInput is a health assessment of a plant. Metrics are percentages.
type RecordAnalysisInput struct {
	HealthScore     int                     `json:"health_score" validate:"min=0,max=100"`
	WaterLevel      int                     `json:"water_level" validate:"min=0,max=100"`
	LightLevel      int                     `json:"light_level" validate:"min=0,max=100"`
	NutrientLevel   int                     `json:"nutrient_level" validate:"min=0,max=100"`
	PestRisk        int                     `json:"pest_risk" validate:"min=0,max=100"`
	Issues          []entity.Issue          `json:"issues" validate:"dive"`
	Recommendations []entity.Recommendation `json:"recommendations" validate:"dive"`
	ImageURL        *string                 `json:"image_url,omitempty" validate:"omitempty,url"`
}

// AnalysisOutput is a stored analysis with everything it caused.
type AnalysisOutput struct {
	Analysis *entity.PlantAnalysis `json:"analysis"`
	Effects  entity.Effects        `json:"effects"`
}

// AnalysisUsecase defines plant analysis ingestion and history.
type AnalysisUsecase interface {
	// RecordAnalysis stores the analysis, overwrites the plant's health, creates
	// tasks and notifications and grants the analysis reward, all or nothing.
	RecordAnalysis(ctx context.Context, userID, plantID uint64, input *RecordAnalysisInput) (*AnalysisOutput, error)

	// ListAnalyses returns a plant's analyses newest first.
	ListAnalyses(ctx context.Context, userID, plantID uint64) ([]*entity.PlantAnalysis, error)

	GetLatestAnalysis(ctx context.Context, userID, plantID uint64) (*entity.PlantAnalysis, error)
}
