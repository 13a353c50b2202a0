package impl

import (
	"context"
	"log/slog"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	repos        repository.RepositoryFactory
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Repos        repository.RepositoryFactory
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		repos:        params.Repos,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account at level 1 with no points and signs it in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithDetails("failed to hash password")
	}

	user := entity.NewUser(input.Username, hash)
	if err := srv.repos.UserRepo().Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, readError(ctx, srv.logger, err)
	}

	srv.log(ctx).Info("User registered", slog.Uint64("userID", user.ID))

	return srv.issueToken(ctx, user)
}

// Login verifies the credentials. Unknown usernames and wrong passwords fail the same way.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := srv.repos.UserRepo().FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, readError(ctx, srv.logger, err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.Uint64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueToken(ctx, user)
}

func (srv *userService) issueToken(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Uint64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithDetails("failed to generate access token")
	}

	return &usecase.AuthOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// GetProfile returns the user with inbox and collection counters.
func (srv *userService) GetProfile(ctx context.Context, userID uint64) (*usecase.ProfileOutput, error) {
	user, err := srv.repos.UserRepo().FindByID(ctx, userID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	unread, err := srv.repos.NotificationRepo().CountUnread(ctx, userID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	badges, err := srv.repos.BadgeRepo().FindUserBadges(ctx, userID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	plants, err := srv.repos.PlantRepo().CountByUser(ctx, userID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err)
	}

	return &usecase.ProfileOutput{
		User:                user,
		UnreadNotifications: unread,
		BadgeCount:          len(badges),
		PlantCount:          plants,
	}, nil
}
