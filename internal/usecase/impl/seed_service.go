package impl

import (
	"context"
	"log/slog"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/gamification"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"
	"plantcare/internal/usecase/engine"

	"go.uber.org/fx"
)

type seedService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	hasher    service.PasswordHasher
	engine    *engine.Engine
	seedCfg   config.SeedConfig
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Hasher    service.PasswordHasher
	Engine    *engine.Engine
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	seedCfg := config.SeedConfig{Catalog: true}
	if params.Config != nil && params.Config.Seed != nil {
		seedCfg = *params.Config.Seed
	}

	return &seedService{
		txManager: params.TxManager,
		repos:     params.Repos,
		hasher:    params.Hasher,
		engine:    params.Engine,
		seedCfg:   seedCfg,
		logger:    params.Logger,
	}
}

func (srv *seedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *seedService) Run(ctx context.Context) (*usecase.SeedOutput, error) {
	out := &usecase.SeedOutput{}

	if srv.seedCfg.Catalog || srv.seedCfg.DemoData {
		created, err := srv.SeedCatalog(ctx)
		if err != nil {
			return nil, err
		}
		out.BadgesCreated = created
	}

	if srv.seedCfg.DemoData {
		created, err := srv.SeedDemoData(ctx)
		if err != nil {
			return nil, err
		}
		out.DemoCreated = created
	}

	return out, nil
}

func (srv *seedService) SeedCatalog(ctx context.Context) (int, error) {
	created := 0
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		for _, badge := range gamification.Catalog() {
			_, err := repos.BadgeRepo().FindByName(ctx, badge.Name)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrBadgeNotFound) {
				return errors.Wrapf(err, "failed to look up badge %q", badge.Name)
			}

			if err := repos.BadgeRepo().Create(ctx, &badge); err != nil {
				return errors.Wrapf(err, "failed to create badge %q", badge.Name)
			}
			created++
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to seed badge catalog", slog.Any("error", err))

		return 0, domainerrors.ErrTransactionFailed.WithDetails("seed catalog")
	}

	srv.log(ctx).Info("Badge catalog seeded", slog.Int("created", created))

	return created, nil
}

func (srv *seedService) SeedDemoData(ctx context.Context) (bool, error) {
	_, err := srv.repos.UserRepo().FindByUsername(ctx, demoUsername)
	if err == nil {
		srv.log(ctx).Debug("Demo data already present")

		return false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return false, readError(ctx, srv.logger, err)
	}

	hash, err := srv.hasher.Hash(demoPassword)
	if err != nil {
		return false, domainerrors.ErrInternalError.WithDetails("failed to hash demo password")
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return newDemoGarden(srv.engine.Now(), srv.engine.Settings()).plant(ctx, repos, hash)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to seed demo data", slog.Any("error", err))

		return false, domainerrors.ErrTransactionFailed.WithDetails("seed demo data")
	}

	srv.log(ctx).Info("Demo data seeded", slog.String("username", demoUsername))

	return true, nil
}
