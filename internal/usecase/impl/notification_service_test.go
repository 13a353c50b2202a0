package impl

import (
	"testing"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_EmitIssueNotifications(t *testing.T) {
	env := newTestEnv(t)
	srv := env.notificationService()
	user := env.createUser(t, "fern")
	plant := env.createPlant(t, user.ID, "Monstera")

	issues := []entity.Issue{
		{Name: "Dehydration", Description: "The soil is very dry."},
		{Name: "Pests", Description: "Spider mites on the underside of leaves."},
	}

	effects, err := srv.EmitIssueNotifications(env.ctx, user.ID, plant.ID, issues)
	require.NoError(t, err)
	assert.Len(t, effects.OfKind(entity.EffectNotificationCreated), 2)

	notifications, err := srv.ListNotifications(env.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	for _, notification := range notifications {
		assert.Equal(t, entity.NotificationTypeIssue, notification.Type)
		assert.Equal(t, plant.ID, *notification.RelatedID)
		assert.False(t, notification.Read)
	}
}

func TestNotificationService_EmitIssueNotifications_SkipsUnknownAndForeignPlants(t *testing.T) {
	env := newTestEnv(t)
	srv := env.notificationService()
	owner := env.createUser(t, "fern")
	other := env.createUser(t, "ivy")
	plant := env.createPlant(t, owner.ID, "Monstera")
	issues := []entity.Issue{{Name: "Dehydration"}}

	effects, err := srv.EmitIssueNotifications(env.ctx, other.ID, plant.ID, issues)
	require.NoError(t, err)
	assert.Empty(t, effects)

	effects, err = srv.EmitIssueNotifications(env.ctx, owner.ID, plant.ID+100, issues)
	require.NoError(t, err)
	assert.Empty(t, effects)

	notifications, err := srv.ListNotifications(env.ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	env := newTestEnv(t)
	srv := env.notificationService()
	owner := env.createUser(t, "fern")
	other := env.createUser(t, "ivy")
	plant := env.createPlant(t, owner.ID, "Monstera")

	_, err := srv.EmitIssueNotifications(env.ctx, owner.ID, plant.ID, []entity.Issue{{Name: "Dehydration"}})
	require.NoError(t, err)

	notifications, err := srv.ListNotifications(env.ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	id := notifications[0].ID

	_, err = srv.MarkAsRead(env.ctx, other.ID, id)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))

	read, err := srv.MarkAsRead(env.ctx, owner.ID, id)
	require.NoError(t, err)
	assert.True(t, read.Read)

	again, err := srv.MarkAsRead(env.ctx, owner.ID, id)
	require.NoError(t, err)
	assert.True(t, again.Read)

	unread, err := env.repos.NotificationRepo().CountUnread(env.ctx, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	_, err = srv.MarkAsRead(env.ctx, owner.ID, id+100)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}
