package model

import (
	"time"
)

// PlantModel mirrors the 'plants' table. Health columns are overwritten by each analysis.
type PlantModel struct {
	ID             uint64  `gorm:"primaryKey;autoIncrement"`
	UserID         uint64  `gorm:"not null;index"`
	Name           string  `gorm:"type:varchar(120);not null"`
	Species        *string `gorm:"type:varchar(120)"`
	ImageURL       *string `gorm:"type:text"`
	HealthScore    int     `gorm:"not null"`
	WaterLevel     int     `gorm:"not null"`
	LightLevel     int     `gorm:"not null"`
	NutrientLevel  int     `gorm:"not null"`
	PestRisk       int     `gorm:"not null;default:0"`
	LastWatered    *time.Time
	LastFertilized *time.Time
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}
