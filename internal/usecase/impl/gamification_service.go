package impl

import (
	"context"
	"log/slog"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/gamification"
	"plantcare/internal/domain/repository"
	"plantcare/internal/usecase"
	"plantcare/internal/usecase/engine"

	"go.uber.org/fx"
)

type gamificationService struct {
	runner *OperationRunner
	engine *engine.Engine
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// GamificationServiceParams holds dependencies for GamificationService, injected by Fx.
type GamificationServiceParams struct {
	fx.In

	Runner *OperationRunner
	Engine *engine.Engine
	Repos  repository.RepositoryFactory
	Logger *slog.Logger
}

// NewGamificationService is the constructor for gamificationService.
func NewGamificationService(params GamificationServiceParams) usecase.GamificationUsecase {
	return &gamificationService{
		runner: params.Runner,
		engine: params.Engine,
		repos:  params.Repos,
		logger: params.Logger,
	}
}

// ListBadges returns the catalog. Badges without an award rule are listed as not attainable.
func (srv *gamificationService) ListBadges(ctx context.Context) ([]*usecase.CatalogBadge, error) {
	badges, err := srv.repos.BadgeRepo().FindAll(ctx)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	out := make([]*usecase.CatalogBadge, 0, len(badges))
	for _, badge := range badges {
		out = append(out, &usecase.CatalogBadge{
			Badge:      *badge,
			Attainable: gamification.IsAttainable(badge.Requirement),
		})
	}

	return out, nil
}

func (srv *gamificationService) ListUserBadges(ctx context.Context, userID uint64) ([]*entity.EarnedBadge, error) {
	badges, err := srv.repos.BadgeRepo().FindUserBadges(ctx, userID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	return badges, nil
}

func (srv *gamificationService) GrantPoints(ctx context.Context, userID uint64, amount int) (entity.Effects, error) {
	if amount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must not be negative")
	}

	return srv.runner.run(ctx, OperationGrantPoints, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		return srv.engine.GrantPoints(ctx, repos, userID, amount, "grant")
	})
}

func (srv *gamificationService) TryAwardBadge(ctx context.Context, userID uint64, badgeName string) (entity.Effects, error) {
	if badgeName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("badge name is required")
	}

	return srv.runner.run(ctx, OperationAwardBadge, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		return srv.engine.TryAwardBadge(ctx, repos, userID, badgeName)
	})
}
