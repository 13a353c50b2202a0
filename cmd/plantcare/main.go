package main

import (
	"context"
	"log/slog"
	"os"

	"plantcare/config"
	"plantcare/internal/delivery"
	"plantcare/internal/delivery/http"
	"plantcare/internal/delivery/http/middleware"
	"plantcare/internal/delivery/http/router/handler"
	"plantcare/internal/domain/lifecycle"
	"plantcare/internal/infra/auth"
	"plantcare/internal/infra/lock"
	logs "plantcare/internal/infra/log"
	"plantcare/internal/infra/persistence"
	"plantcare/internal/infra/persistence/postgres"
	"plantcare/internal/infra/pubsub"
	"plantcare/internal/infra/qrcode"
	"plantcare/internal/usecase"
	"plantcare/internal/usecase/engine"
	"plantcare/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewRepositoryFactory,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			lock.NewUserLocker,
			engine.NewFromConfig,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOperationRunner,
			impl.NewUserService,
			impl.NewPlantService,
			impl.NewTaskService,
			impl.NewGamificationService,
			impl.NewNotificationService,
			impl.NewAnalysisService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPlantHandler,
			handler.NewTaskHandler,
			handler.NewBadgeHandler,
			handler.NewNotificationHandler,
			handler.NewAnalysisHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedOnStart runs after the database hook has pinged and migrated.
func seedOnStart(lc fx.Lifecycle, seeder usecase.SeedUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			out, err := seeder.Run(ctx)
			if err != nil {
				return err
			}
			logger.Info("Seed completed",
				slog.Int("badges_created", out.BadgesCreated),
				slog.Bool("demo_created", out.DemoCreated),
			)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
