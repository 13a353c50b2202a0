package postgres

import (
	"strings"

	"plantcare/internal/errors"

	"gorm.io/gorm"
)

// Both dialects run with TranslateError, so the gorm sentinels are the primary
// signal. The message checks cover drivers that leave errors untranslated.

func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "not null constraint") ||
		strings.Contains(msg, "null value in column") ||
		strings.Contains(msg, "23502")
}
