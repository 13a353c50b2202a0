// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"
	"plantcare/internal/usecase/engine"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

// Operation names carried by published gamification events.
const (
	OperationCreatePlant       = "create_plant"
	OperationUpdatePlant       = "update_plant"
	OperationDeletePlant       = "delete_plant"
	OperationCreateTask        = "create_task"
	OperationUpdateTask        = "update_task"
	OperationDeleteTask        = "delete_task"
	OperationCompleteTask      = "complete_task"
	OperationRecordAnalysis    = "record_analysis"
	OperationGrantPoints       = "grant_points"
	OperationAwardBadge        = "award_badge"
	OperationMaterializeTasks  = "materialize_tasks"
	OperationIssueNotification = "issue_notifications"
	OperationMarkRead          = "mark_notification_read"
)

// OperationRunner executes a mutating operation for one user. Operations of
// the same user never interleave: the user lock is taken before the
// transaction starts and the user row is locked inside it. Effects are
// published only after a successful commit.
type OperationRunner struct {
	txManager repository.TransactionManager
	locker    service.UserLocker
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// OperationRunnerParams holds dependencies for the operation runner, injected by Fx.
type OperationRunnerParams struct {
	fx.In

	TxManager repository.TransactionManager
	Locker    service.UserLocker
	Publisher service.EventPublisher
	Engine    *engine.Engine
	Logger    *slog.Logger
}

// NewOperationRunner is the constructor for OperationRunner.
func NewOperationRunner(params OperationRunnerParams) *OperationRunner {
	return &OperationRunner{
		txManager: params.TxManager,
		locker:    params.Locker,
		publisher: params.Publisher,
		now:       params.Engine.Now,
		logger:    params.Logger,
	}
}

func (r *OperationRunner) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// run executes fn inside a transaction holding the user's lock and publishes
// the resulting effects once the transaction committed.
func (r *OperationRunner) run(
	ctx context.Context,
	operation string,
	userID uint64,
	fn func(repos repository.RepositoryFactory) (entity.Effects, error),
) (entity.Effects, error) {
	unlock := r.locker.Lock(userID)
	defer unlock()

	var effects entity.Effects
	err := r.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().FindByIDForUpdate(ctx, userID); err != nil {
			return domainerrors.FromRepository(err)
		}

		out, err := fn(repos)
		if err != nil {
			return err
		}
		effects = out

		return nil
	})
	if err != nil {
		return nil, r.fail(ctx, operation, userID, err)
	}

	r.publish(ctx, operation, userID, effects)

	return effects, nil
}

// fail keeps client errors as they are and hides everything else behind ErrTransactionFailed.
func (r *OperationRunner) fail(ctx context.Context, operation string, userID uint64, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < 500 {
		return appErr
	}

	r.log(ctx).Error("Operation failed",
		slog.String("operation", operation),
		slog.Uint64("userID", userID),
		slog.Any("error", err),
	)

	return domainerrors.ErrTransactionFailed.WithDetails(operation)
}

func (r *OperationRunner) publish(ctx context.Context, operation string, userID uint64, effects entity.Effects) {
	if len(effects) == 0 || r.publisher == nil {
		return
	}

	event := &service.GamificationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Operation:  operation,
		UserID:     userID,
		Effects:    effects,
		OccurredAt: r.now(),
	}

	// The operation is committed; a cancelled request must not drop its event.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := r.publisher.PublishGamificationEvent(publishCtx, event); err != nil {
		r.log(ctx).Warn("Failed to publish gamification event",
			slog.String("operation", operation),
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)

		return
	}

	r.log(ctx).Debug("Published gamification event",
		slog.String("operation", operation),
		slog.String("eventID", event.EventID),
		slog.Int("effects", len(effects)),
	)
}

// readError translates errors of reads that run outside a transaction.
func readError(ctx context.Context, logger *slog.Logger, err error) error {
	err = domainerrors.FromRepository(err)
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() >= 500 {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Error("Read failed", slog.Any("error", err))
	}

	return err
}
