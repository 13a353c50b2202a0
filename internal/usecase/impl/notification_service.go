package impl

import (
	"context"
	"log/slog"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"
	"plantcare/internal/usecase/engine"

	"go.uber.org/fx"
)

type notificationService struct {
	runner *OperationRunner
	engine *engine.Engine
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Runner *OperationRunner
	Engine *engine.Engine
	Repos  repository.RepositoryFactory
	Logger *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		runner: params.Runner,
		engine: params.Engine,
		repos:  params.Repos,
		logger: params.Logger,
	}
}

func (srv *notificationService) ListNotifications(ctx context.Context, userID uint64) ([]*entity.Notification, error) {
	notifications, err := srv.repos.NotificationRepo().FindByUser(ctx, userID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	return notifications, nil
}

func (srv *notificationService) MarkAsRead(ctx context.Context, userID, notificationID uint64) (*entity.Notification, error) {
	var notification *entity.Notification
	_, err := srv.runner.run(ctx, OperationMarkRead, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		var err error
		notification, err = repos.NotificationRepo().FindByID(ctx, notificationID)
		if err != nil {
			return nil, domainerrors.FromRepository(err)
		}
		if notification.UserID != userID {
			return nil, domainerrors.ErrNotificationNotFound
		}

		if err := repos.NotificationRepo().MarkAsRead(ctx, notificationID); err != nil {
			return nil, domainerrors.FromRepository(err)
		}
		notification.Read = true

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return notification, nil
}

func (srv *notificationService) EmitIssueNotifications(ctx context.Context, userID, plantID uint64, issues []entity.Issue) (entity.Effects, error) {
	return srv.runner.run(ctx, OperationIssueNotification, userID, func(repos repository.RepositoryFactory) (entity.Effects, error) {
		plant, err := repos.PlantRepo().FindByID(ctx, plantID)
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, domainerrors.FromRepository(err)
		}
		if plant.UserID != userID {
			return nil, nil
		}

		return srv.engine.EmitIssueNotifications(ctx, repos, userID, plantID, issues)
	})
}
