package impl

import (
	"fmt"
	"strings"

	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/errors"

	"github.com/go-playground/validator/v10"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks struct tags and reports every failed field in the error details.
func validateInput(input any) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fieldErr.Namespace(), fieldErr.Tag()))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
}
