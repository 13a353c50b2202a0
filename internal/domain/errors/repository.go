package errors

import (
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
)

var repositoryErrors = []struct {
	sentinel error
	appErr   *BaseError
}{
	{repository.ErrUserNotFound, ErrUserNotFound},
	{repository.ErrUsernameTaken, ErrUserAlreadyExists},
	{repository.ErrPlantNotFound, ErrPlantNotFound},
	{repository.ErrTaskNotFound, ErrTaskNotFound},
	{repository.ErrBadgeNotFound, ErrBadgeNotFound},
	{repository.ErrNotificationNotFound, ErrNotificationNotFound},
	{repository.ErrAnalysisNotFound, ErrAnalysisNotFound},
}

// FromRepository translates repository sentinels into AppErrors. Errors that
// already are AppErrors, and nil, pass through unchanged.
func FromRepository(err error) error {
	if err == nil {
		return nil
	}

	for _, mapping := range repositoryErrors {
		if errors.Is(err, mapping.sentinel) {
			return mapping.appErr
		}
	}

	if _, ok := errors.AsType[AppError](err); ok {
		return err
	}

	return NewDatabaseExecuteError(err, "unexpected repository error")
}
