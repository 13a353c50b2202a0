package impl

import (
	"testing"

	"plantcare/config"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/gamification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_SeedCatalog_IsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	srv := env.seedService(nil)

	// newTestEnv already seeded the catalog.
	created, err := srv.SeedCatalog(env.ctx)
	require.NoError(t, err)
	assert.Zero(t, created)

	badges, err := env.repos.BadgeRepo().FindAll(env.ctx)
	require.NoError(t, err)
	assert.Len(t, badges, len(gamification.Catalog()))
}

func TestSeedService_SeedDemoData(t *testing.T) {
	env := newTestEnv(t)
	srv := env.seedService(nil)

	created, err := srv.SeedDemoData(env.ctx)
	require.NoError(t, err)
	assert.True(t, created)

	user, err := env.repos.UserRepo().FindByUsername(env.ctx, demoUsername)
	require.NoError(t, err)
	assert.True(t, env.hasher.Check(demoPassword, user.PasswordHash))
	assert.Equal(t, 40, user.Points)
	assert.Equal(t, 1, user.Level)

	plants, err := env.repos.PlantRepo().FindByUser(env.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, plants, 2)
	assert.Equal(t, "Monstera", plants[0].Name)
	assert.Equal(t, 60, plants[0].HealthScore)
	assert.Equal(t, 25, plants[0].WaterLevel)
	assert.Equal(t, 75, plants[1].HealthScore)
	assert.Equal(t, 50, plants[1].LightLevel)

	tasks, err := env.repos.TaskRepo().FindByUser(env.ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	badges, err := env.repos.BadgeRepo().FindUserBadges(env.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, badges, 2)
	assert.Equal(t, gamification.BadgeFirstPlant, badges[0].Name)
	assert.Equal(t, gamification.BadgeHydrationPro, badges[1].Name)

	notifications, err := env.repos.NotificationRepo().FindByUser(env.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 4)
	assert.Equal(t, entity.NotificationTypeTip, notifications[0].Type)

	latest, err := env.repos.AnalysisRepo().FindLatestByPlant(env.ctx, plants[0].ID)
	require.NoError(t, err)
	assert.Len(t, latest.Issues, 2)
	assert.Len(t, latest.Recommendations, 4)

	again, err := srv.SeedDemoData(env.ctx)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestSeedService_Run(t *testing.T) {
	env := newTestEnv(t)
	srv := env.seedService(&config.Config{Seed: &config.SeedConfig{Catalog: true, DemoData: true}})

	out, err := srv.Run(env.ctx)
	require.NoError(t, err)
	assert.Zero(t, out.BadgesCreated)
	assert.True(t, out.DemoCreated)

	out, err = env.seedService(&config.Config{Seed: &config.SeedConfig{}}).Run(env.ctx)
	require.NoError(t, err)
	assert.Zero(t, out.BadgesCreated)
	assert.False(t, out.DemoCreated)
}
