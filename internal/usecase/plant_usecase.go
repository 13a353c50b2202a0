package usecase

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"
)

// CreatePlantInput defines the data required to add a plant.
type CreatePlantInput struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Species  *string `json:"species,omitempty" validate:"omitempty,max=120"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdatePlantInput lists the fields a plant owner may change. Nil fields are left as they are.
// Health metrics only change through analyses.
type UpdatePlantInput struct {
	Name           *string    `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Species        *string    `json:"species,omitempty" validate:"omitempty,max=120"`
	ImageURL       *string    `json:"image_url,omitempty" validate:"omitempty,url"`
	LastWatered    *time.Time `json:"last_watered,omitempty"`
	LastFertilized *time.Time `json:"last_fertilized,omitempty"`
}

// PlantOutput is a plant together with the effects its creation caused.
type PlantOutput struct {
	Plant   *entity.Plant  `json:"plant"`
	Effects entity.Effects `json:"effects"`
}

// PlantUsecase defines plant management for the signed-in user.
type PlantUsecase interface {
	// CreatePlant adds a plant and evaluates plant-count badges.
	CreatePlant(ctx context.Context, userID uint64, input *CreatePlantInput) (*PlantOutput, error)
	ListPlants(ctx context.Context, userID uint64) ([]*entity.Plant, error)
	GetPlant(ctx context.Context, userID, plantID uint64) (*entity.Plant, error)
	UpdatePlant(ctx context.Context, userID, plantID uint64, input *UpdatePlantInput) (*entity.Plant, error)

	// DeletePlant removes the plant and every task attached to it.
	DeletePlant(ctx context.Context, userID, plantID uint64) error

	// GetPlantQRCode renders a PNG label for the plant.
	GetPlantQRCode(ctx context.Context, userID, plantID uint64) ([]byte, error)
}
