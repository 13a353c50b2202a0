package postgres

import (
	"context"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
	"plantcare/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	if err := repo.db.WithContext(ctx).Create(plantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required plant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plant")
	}

	plant.ID = plantM.ID
	plant.CreatedAt = plantM.CreatedAt

	return nil
}

func (repo *plantRepository) FindByID(ctx context.Context, id uint64) (*entity.Plant, error) {
	var plantM model.PlantModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&plantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find plant by id")
	}

	return toPlantDomain(&plantM), nil
}

func (repo *plantRepository) FindByUser(ctx context.Context, userID uint64) ([]*entity.Plant, error) {
	var plantMs []model.PlantModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&plantMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list plants")
	}

	plants := make([]*entity.Plant, 0, len(plantMs))
	for i := range plantMs {
		plants = append(plants, toPlantDomain(&plantMs[i]))
	}

	return plants, nil
}

func (repo *plantRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PlantModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count plants")
	}

	return count, nil
}

// Update writes the descriptive fields and care timestamps. Nil pointers clear the column.
func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", plant.ID).
		Updates(map[string]any{
			"name":            plant.Name,
			"species":         plant.Species,
			"image_url":       plant.ImageURL,
			"last_watered":    plant.LastWatered,
			"last_fertilized": plant.LastFertilized,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

func (repo *plantRepository) UpdateHealth(ctx context.Context, id uint64, health entity.HealthSnapshot) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"health_score":   health.HealthScore,
			"water_level":    health.WaterLevel,
			"light_level":    health.LightLevel,
			"nutrient_level": health.NutrientLevel,
			"pest_risk":      health.PestRisk,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plant health")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

func (repo *plantRepository) Delete(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PlantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	return &entity.Plant{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		Species:        data.Species,
		ImageURL:       data.ImageURL,
		HealthScore:    data.HealthScore,
		WaterLevel:     data.WaterLevel,
		LightLevel:     data.LightLevel,
		NutrientLevel:  data.NutrientLevel,
		PestRisk:       data.PestRisk,
		LastWatered:    data.LastWatered,
		LastFertilized: data.LastFertilized,
		CreatedAt:      data.CreatedAt,
	}
}

func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		Species:        data.Species,
		ImageURL:       data.ImageURL,
		HealthScore:    data.HealthScore,
		WaterLevel:     data.WaterLevel,
		LightLevel:     data.LightLevel,
		NutrientLevel:  data.NutrientLevel,
		PestRisk:       data.PestRisk,
		LastWatered:    data.LastWatered,
		LastFertilized: data.LastFertilized,
		CreatedAt:      data.CreatedAt,
	}
}
