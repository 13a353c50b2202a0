// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"plantcare/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned when creating a user whose username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByIDForUpdate retrieves a user and locks its row until the surrounding transaction ends.
	// Databases without row locks fall back to a plain read.
	FindByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and sets its id.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProgress stores the points and level of a user.
	UpdateProgress(ctx context.Context, id uint64, points, level int) error
}
