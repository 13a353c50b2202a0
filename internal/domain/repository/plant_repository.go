package repository

import (
	"context"
	"errors"

	"plantcare/internal/domain/entity"
)

// ErrPlantNotFound is returned when a plant is not found.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository defines persistence operations for plants.
type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error
	FindByID(ctx context.Context, id uint64) (*entity.Plant, error)

	// FindByUser lists a user's plants in creation order.
	FindByUser(ctx context.Context, userID uint64) ([]*entity.Plant, error)

	CountByUser(ctx context.Context, userID uint64) (int64, error)

	// Update saves the descriptive fields and care timestamps of a plant.
	Update(ctx context.Context, plant *entity.Plant) error

	// UpdateHealth overwrites every health metric of a plant.
	UpdateHealth(ctx context.Context, id uint64, health entity.HealthSnapshot) error

	Delete(ctx context.Context, id uint64) error
}
