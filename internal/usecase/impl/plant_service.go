package impl

import (
	"context"
	"log/slog"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"
	"plantcare/internal/usecase/engine"

	"go.uber.org/fx"
)

type plantService struct {
	runner *OperationRunner
	engine *engine.Engine
	repos  repository.RepositoryFactory
	qrcode service.QRCodeService
	logger *slog.Logger
}

// PlantServiceParams holds dependencies for PlantService, injected by Fx.
type PlantServiceParams struct {
	fx.In

	Runner *OperationRunner
	Engine *engine.Engine
	Repos  repository.RepositoryFactory
	QRCode service.QRCodeService
	Logger *slog.Logger
}

// NewPlantService is the constructor for plantService.
func NewPlantService(params PlantServiceParams) usecase.PlantUsecase {
	return &plantService{
		runner: params.Runner,
		engine: params.Engine,
		repos:  params.Repos,
		qrcode: params.QRCode,
		logger: params.Logger,
	}
}

func (srv *plantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *plantService) CreatePlant(ctx context.Context, userID uint64, input *usecase.CreatePlantInput) (*usecase.PlantOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var plant *entity.Plant
	effects, err := srv.runner.run(ctx, OperationCreatePlant, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		plant = entity.NewPlant(userID, input.Name, input.Species, input.ImageURL, srv.engine.Now())
		if err := repos.PlantRepo().Create(ctx, plant); err != nil {
			return nil, domainerrors.FromRepository(err)
		}

		return srv.engine.OnPlantCreated(ctx, repos, userID)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Plant created",
		slog.Uint64("userID", userID),
		slog.Uint64("plantID", plant.ID),
		slog.Int("effects", len(effects)),
	)

	return &usecase.PlantOutput{Plant: plant, Effects: effects}, nil
}

func (srv *plantService) ListPlants(ctx context.Context, userID uint64) ([]*entity.Plant, error) {
	plants, err := srv.repos.PlantRepo().FindByUser(ctx, userID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	return plants, nil
}

func (srv *plantService) GetPlant(ctx context.Context, userID, plantID uint64) (*entity.Plant, error) {
	return findOwnedPlant(ctx, srv.repos, userID, plantID)
}

func (srv *plantService) UpdatePlant(ctx context.Context, userID, plantID uint64, input *usecase.UpdatePlantInput) (*entity.Plant, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var plant *entity.Plant
	_, err := srv.runner.run(ctx, OperationUpdatePlant, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		var err error
		plant, err = findOwnedPlant(ctx, repos, userID, plantID)
		if err != nil {
			return nil, err
		}

		applyPlantUpdate(plant, input)
		if err := repos.PlantRepo().Update(ctx, plant); err != nil {
			return nil, domainerrors.FromRepository(err)
		}

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return plant, nil
}

func applyPlantUpdate(plant *entity.Plant, input *usecase.UpdatePlantInput) {
	if input.Name != nil {
		plant.Name = *input.Name
	}
	if input.Species != nil {
		plant.Species = input.Species
	}
	if input.ImageURL != nil {
		plant.ImageURL = input.ImageURL
	}
	if input.LastWatered != nil {
		plant.LastWatered = input.LastWatered
	}
	if input.LastFertilized != nil {
		plant.LastFertilized = input.LastFertilized
	}
}

func (srv *plantService) DeletePlant(ctx context.Context, userID, plantID uint64) error {
	_, err := srv.runner.run(ctx, OperationDeletePlant, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		if _, err := findOwnedPlant(ctx, repos, userID, plantID); err != nil {
			return nil, err
		}

		removed, err := repos.TaskRepo().DeleteByPlant(ctx, plantID)
		if err != nil {
			return nil, domainerrors.FromRepository(err)
		}

		if err := repos.PlantRepo().Delete(ctx, plantID); err != nil {
			return nil, domainerrors.FromRepository(err)
		}

		srv.log(ctx).Info("Plant deleted",
			slog.Uint64("userID", userID),
			slog.Uint64("plantID", plantID),
			slog.Int64("tasksRemoved", removed),
		)

		return nil, nil
	})

	return err
}

func (srv *plantService) GetPlantQRCode(ctx context.Context, userID, plantID uint64) ([]byte, error) {
	plant, err := findOwnedPlant(ctx, srv.repos, userID, plantID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePlantQR(plant.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate plant QR code", slog.Uint64("plantID", plantID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithDetails("failed to generate QR code")
	}

	return png, nil
}

// findOwnedPlant hides plants of other users behind ErrPlantNotFound.
func findOwnedPlant(ctx context.Context, repos repository.RepositoryFactory, userID, plantID uint64) (*entity.Plant, error) {
	plant, err := repos.PlantRepo().FindByID(ctx, plantID)
	if err != nil {
		return nil, domainerrors.FromRepository(err)
	}
	if plant.UserID != userID {
		return nil, domainerrors.ErrPlantNotFound
	}

	return plant, nil
}
