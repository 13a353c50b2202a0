package repository

import (
	"context"
	"errors"

	"plantcare/internal/domain/entity"
)

// ErrAnalysisNotFound is returned when a plant has no analysis.
var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRepository defines persistence operations for plant analyses. Analyses are append-only.
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *entity.PlantAnalysis) error

	// FindByPlant lists a plant's analyses newest first.
	FindByPlant(ctx context.Context, plantID uint64) ([]*entity.PlantAnalysis, error)

	// FindLatestByPlant returns the analysis with the greatest created_at, ties broken by the greatest id.
	FindLatestByPlant(ctx context.Context, plantID uint64) (*entity.PlantAnalysis, error)
}
