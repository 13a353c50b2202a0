package postgres

import (
	"context"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
	"plantcare/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const analysisNewestFirst = "created_at DESC, id DESC"

type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository is the constructor for analysisRepository.
func NewAnalysisRepository(db *gorm.DB) repository.AnalysisRepository {
	return &analysisRepository{db: db}
}

func (repo *analysisRepository) Create(ctx context.Context, analysis *entity.PlantAnalysis) error {
	analysisM := fromAnalysisDomain(analysis)

	if err := repo.db.WithContext(ctx).Create(analysisM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create plant analysis")
	}

	analysis.ID = analysisM.ID
	analysis.CreatedAt = analysisM.CreatedAt

	return nil
}

func (repo *analysisRepository) FindByPlant(ctx context.Context, plantID uint64) ([]*entity.PlantAnalysis, error) {
	var analysisMs []model.PlantAnalysisModel
	err := repo.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order(analysisNewestFirst).
		Find(&analysisMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list plant analyses")
	}

	analyses := make([]*entity.PlantAnalysis, 0, len(analysisMs))
	for i := range analysisMs {
		analyses = append(analyses, toAnalysisDomain(&analysisMs[i]))
	}

	return analyses, nil
}

func (repo *analysisRepository) FindLatestByPlant(ctx context.Context, plantID uint64) (*entity.PlantAnalysis, error) {
	var analysisM model.PlantAnalysisModel
	err := repo.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order(analysisNewestFirst).
		Take(&analysisM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnalysisNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest plant analysis")
	}

	return toAnalysisDomain(&analysisM), nil
}

// --- Mapper Functions ---

func toAnalysisDomain(data *model.PlantAnalysisModel) *entity.PlantAnalysis {
	if data == nil {
		return nil
	}

	issues := make([]entity.Issue, 0, len(data.Issues))
	for _, issue := range data.Issues {
		issues = append(issues, entity.Issue{
			Name:        issue.Name,
			Description: issue.Description,
			Icon:        issue.Icon,
		})
	}

	recommendations := make([]entity.Recommendation, 0, len(data.Recommendations))
	for _, rec := range data.Recommendations {
		recommendations = append(recommendations, entity.Recommendation{
			Title:       rec.Title,
			Description: rec.Description,
			Priority:    entity.RecommendationPriority(rec.Priority),
			Type:        entity.TaskType(rec.Type),
			Icon:        rec.Icon,
			Tip:         rec.Tip,
		})
	}

	return &entity.PlantAnalysis{
		ID:              data.ID,
		PlantID:         data.PlantID,
		UserID:          data.UserID,
		HealthScore:     data.HealthScore,
		WaterLevel:      data.WaterLevel,
		LightLevel:      data.LightLevel,
		NutrientLevel:   data.NutrientLevel,
		PestRisk:        data.PestRisk,
		Issues:          issues,
		Recommendations: recommendations,
		ImageURL:        data.ImageURL,
		CreatedAt:       data.CreatedAt,
	}
}

func fromAnalysisDomain(data *entity.PlantAnalysis) *model.PlantAnalysisModel {
	if data == nil {
		return nil
	}

	issues := make(datatypes.JSONSlice[model.AnalysisIssue], 0, len(data.Issues))
	for _, issue := range data.Issues {
		issues = append(issues, model.AnalysisIssue{
			Name:        issue.Name,
			Description: issue.Description,
			Icon:        issue.Icon,
		})
	}

	recommendations := make(datatypes.JSONSlice[model.AnalysisRecommendation], 0, len(data.Recommendations))
	for _, rec := range data.Recommendations {
		recommendations = append(recommendations, model.AnalysisRecommendation{
			Title:       rec.Title,
			Description: rec.Description,
			Priority:    string(rec.Priority),
			Type:        string(rec.Type),
			Icon:        rec.Icon,
			Tip:         rec.Tip,
		})
	}

	return &model.PlantAnalysisModel{
		ID:              data.ID,
		PlantID:         data.PlantID,
		UserID:          data.UserID,
		HealthScore:     data.HealthScore,
		WaterLevel:      data.WaterLevel,
		LightLevel:      data.LightLevel,
		NutrientLevel:   data.NutrientLevel,
		PestRisk:        data.PestRisk,
		Issues:          issues,
		Recommendations: recommendations,
		ImageURL:        data.ImageURL,
		CreatedAt:       data.CreatedAt,
	}
}
