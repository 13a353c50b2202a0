package impl

import (
	"testing"
	"time"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	env := newTestEnv(t)
	srv := env.userService()

	expiresAt := fixedNow.Add(24 * time.Hour)
	env.tokens.EXPECT().GenerateAccessToken(mock.AnythingOfType("uint64"), "fern").Return("token", expiresAt, nil).Once()

	out, err := srv.Register(env.ctx, &usecase.RegisterInput{Username: "fern", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, 1, out.User.Level)
	assert.Zero(t, out.User.Points)
	assert.NotEqual(t, "secret123", out.User.PasswordHash)
	assert.True(t, env.hasher.Check("secret123", out.User.PasswordHash))
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	srv := env.userService()
	env.createUser(t, "fern")

	_, err := srv.Register(env.ctx, &usecase.RegisterInput{Username: "fern", Password: "secret123"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_Validation(t *testing.T) {
	env := newTestEnv(t)
	srv := env.userService()

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{name: "nil input", input: nil},
		{name: "short username", input: &usecase.RegisterInput{Username: "ab", Password: "secret123"}},
		{name: "short password", input: &usecase.RegisterInput{Username: "fern", Password: "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Register(env.ctx, tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestUserService_Login(t *testing.T) {
	env := newTestEnv(t)
	srv := env.userService()

	env.tokens.EXPECT().GenerateAccessToken(mock.Anything, "fern").Return("token", fixedNow, nil).Twice()

	registered, err := srv.Register(env.ctx, &usecase.RegisterInput{Username: "fern", Password: "secret123"})
	require.NoError(t, err)

	out, err := srv.Login(env.ctx, &usecase.LoginInput{Username: "fern", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, out.User.ID)

	_, err = srv.Login(env.ctx, &usecase.LoginInput{Username: "fern", Password: "wrong-password"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = srv.Login(env.ctx, &usecase.LoginInput{Username: "nobody", Password: "secret123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_TokenFailure(t *testing.T) {
	env := newTestEnv(t)
	srv := env.userService()

	hash, err := env.hasher.Hash("secret123")
	require.NoError(t, err)
	require.NoError(t, env.repos.UserRepo().Create(env.ctx, entity.NewUser("fern", hash)))

	env.tokens.EXPECT().GenerateAccessToken(mock.Anything, "fern").Return("", time.Time{}, errors.New("signing failed")).Once()

	_, err = srv.Login(env.ctx, &usecase.LoginInput{Username: "fern", Password: "secret123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestUserService_GetProfile(t *testing.T) {
	env := newTestEnv(t)
	srv := env.userService()

	user := env.createUser(t, "fern")
	_, err := env.plantService().CreatePlant(env.ctx, user.ID, &usecase.CreatePlantInput{Name: "Pothos"})
	require.NoError(t, err)

	profile, err := srv.GetProfile(env.ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, profile.User.ID)
	assert.Equal(t, 25, profile.User.Points)
	assert.Equal(t, 1, profile.BadgeCount)
	assert.Equal(t, int64(1), profile.PlantCount)
	assert.Equal(t, int64(1), profile.UnreadNotifications)

	_, err = srv.GetProfile(env.ctx, user.ID+100)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
