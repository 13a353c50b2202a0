package impl

import (
	"context"
	"log/slog"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/repository"
	"plantcare/internal/usecase"
	"plantcare/internal/usecase/engine"

	"go.uber.org/fx"
)

type analysisService struct {
	runner *OperationRunner
	engine *engine.Engine
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// AnalysisServiceParams holds dependencies for AnalysisService, injected by Fx.
type AnalysisServiceParams struct {
	fx.In

	Runner *OperationRunner
	Engine *engine.Engine
	Repos  repository.RepositoryFactory
	Logger *slog.Logger
}

// NewAnalysisService is the constructor for analysisService.
func NewAnalysisService(params AnalysisServiceParams) usecase.AnalysisUsecase {
	return &analysisService{
		runner: params.Runner,
		engine: params.Engine,
		repos:  params.Repos,
		logger: params.Logger,
	}
}

func (srv *analysisService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *analysisService) RecordAnalysis(ctx context.Context, userID, plantID uint64, input *usecase.RecordAnalysisInput) (*usecase.AnalysisOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var analysis *entity.PlantAnalysis
	effects, err := srv.runner.run(ctx, OperationRecordAnalysis, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		recorded, derived, err := srv.engine.RecordAnalysis(ctx, repos, userID, plantID, engine.AnalysisInput{
			Health: entity.HealthSnapshot{
				HealthScore:   input.HealthScore,
				WaterLevel:    input.WaterLevel,
				LightLevel:    input.LightLevel,
				NutrientLevel: input.NutrientLevel,
				PestRisk:      input.PestRisk,
			},
			Issues:          input.Issues,
			Recommendations: input.Recommendations,
			ImageURL:        input.ImageURL,
		})
		if err != nil {
			return nil, err
		}
		analysis = recorded

		return derived, nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Analysis recorded",
		slog.Uint64("userID", userID),
		slog.Uint64("plantID", plantID),
		slog.Int("healthScore", analysis.HealthScore),
		slog.Int("tasksCreated", len(effects.OfKind(entity.EffectTaskCreated))),
	)

	return &usecase.AnalysisOutput{Analysis: analysis, Effects: effects}, nil
}

func (srv *analysisService) ListAnalyses(ctx context.Context, userID, plantID uint64) ([]*entity.PlantAnalysis, error) {
	if _, err := findOwnedPlant(ctx, srv.repos, userID, plantID); err != nil {
		return nil, err
	}

	analyses, err := srv.repos.AnalysisRepo().FindByPlant(ctx, plantID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	return analyses, nil
}

func (srv *analysisService) GetLatestAnalysis(ctx context.Context, userID, plantID uint64) (*entity.PlantAnalysis, error) {
	if _, err := findOwnedPlant(ctx, srv.repos, userID, plantID); err != nil {
		return nil, err
	}

	analysis, err := srv.repos.AnalysisRepo().FindLatestByPlant(ctx, plantID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	return analysis, nil
}
