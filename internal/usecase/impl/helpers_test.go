package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/gamification"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/infra/auth"
	"plantcare/internal/infra/lock"
	"plantcare/internal/infra/persistence/persistencetest"
	"plantcare/internal/infra/persistence/postgres"
	"plantcare/internal/infra/qrcode"
	mockSvc "plantcare/internal/mocks/service"
	"plantcare/internal/usecase/engine"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testEnv wires every service against one in-memory database.
type testEnv struct {
	ctx       context.Context
	repos     repository.RepositoryFactory
	txManager repository.TransactionManager
	engine    *engine.Engine
	runner    *OperationRunner
	publisher *mockSvc.MockEventPublisher
	tokens    *mockSvc.MockTokenService
	hasher    service.PasswordHasher

	mu     sync.Mutex
	events []*service.GamificationEvent
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := persistencetest.NewSQLite(t)
	env := &testEnv{
		ctx:       context.Background(),
		repos:     postgres.NewRepositoryFactory(db),
		txManager: postgres.NewTransactionManager(db),
		engine:    engine.New(gamification.DefaultSettings()).WithClock(func() time.Time { return fixedNow }),
		publisher: mockSvc.NewMockEventPublisher(t),
		tokens:    mockSvc.NewMockTokenService(t),
		hasher:    auth.NewBcryptHasherWithCost(0),
	}

	env.publisher.EXPECT().
		PublishGamificationEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.GamificationEvent) error {
			env.mu.Lock()
			defer env.mu.Unlock()
			env.events = append(env.events, event)

			return nil
		}).
		Maybe()

	env.runner = NewOperationRunner(OperationRunnerParams{
		TxManager: env.txManager,
		Locker:    lock.NewUserLocker(),
		Publisher: env.publisher,
		Engine:    env.engine,
		Logger:    newDiscardLogger(),
	})

	_, err := env.seedService(nil).SeedCatalog(env.ctx)
	require.NoError(t, err)

	return env
}

func (env *testEnv) publishedEvents() []*service.GamificationEvent {
	env.mu.Lock()
	defer env.mu.Unlock()

	return append([]*service.GamificationEvent(nil), env.events...)
}

func (env *testEnv) userService() *userService {
	return NewUserService(UserServiceParams{
		Repos:        env.repos,
		Hasher:       env.hasher,
		TokenService: env.tokens,
		Logger:       newDiscardLogger(),
	}).(*userService)
}

func (env *testEnv) plantService() *plantService {
	return NewPlantService(PlantServiceParams{
		Runner: env.runner,
		Engine: env.engine,
		Repos:  env.repos,
		QRCode: qrcode.NewQRCodeService(nil),
		Logger: newDiscardLogger(),
	}).(*plantService)
}

func (env *testEnv) taskService() *taskService {
	return NewTaskService(TaskServiceParams{
		Runner: env.runner,
		Engine: env.engine,
		Repos:  env.repos,
		Logger: newDiscardLogger(),
	}).(*taskService)
}

func (env *testEnv) gamificationService() *gamificationService {
	return NewGamificationService(GamificationServiceParams{
		Runner: env.runner,
		Engine: env.engine,
		Repos:  env.repos,
		Logger: newDiscardLogger(),
	}).(*gamificationService)
}

func (env *testEnv) notificationService() *notificationService {
	return NewNotificationService(NotificationServiceParams{
		Runner: env.runner,
		Engine: env.engine,
		Repos:  env.repos,
		Logger: newDiscardLogger(),
	}).(*notificationService)
}

func (env *testEnv) analysisService() *analysisService {
	return NewAnalysisService(AnalysisServiceParams{
		Runner: env.runner,
		Engine: env.engine,
		Repos:  env.repos,
		Logger: newDiscardLogger(),
	}).(*analysisService)
}

func (env *testEnv) seedService(cfg *config.Config) *seedService {
	return NewSeedService(SeedServiceParams{
		TxManager: env.txManager,
		Repos:     env.repos,
		Hasher:    env.hasher,
		Engine:    env.engine,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*seedService)
}

func (env *testEnv) createUser(t *testing.T, username string) *entity.User {
	t.Helper()

	user := entity.NewUser(username, "hash")
	require.NoError(t, env.repos.UserRepo().Create(env.ctx, user))

	return user
}

func (env *testEnv) createPlant(t *testing.T, userID uint64, name string) *entity.Plant {
	t.Helper()

	plant := entity.NewPlant(userID, name, nil, nil, fixedNow)
	require.NoError(t, env.repos.PlantRepo().Create(env.ctx, plant))

	return plant
}

func (env *testEnv) createTask(t *testing.T, userID, plantID uint64, taskType entity.TaskType) *entity.Task {
	t.Helper()

	task := &entity.Task{
		PlantID:  plantID,
		UserID:   userID,
		Title:    string(taskType),
		Type:     taskType,
		Priority: entity.TaskPriorityMedium,
	}
	require.NoError(t, env.repos.TaskRepo().Create(env.ctx, task))

	return task
}

func (env *testEnv) reloadUser(t *testing.T, userID uint64) *entity.User {
	t.Helper()

	user, err := env.repos.UserRepo().FindByID(env.ctx, userID)
	require.NoError(t, err)

	return user
}
