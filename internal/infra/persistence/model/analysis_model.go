package model

import (
	"time"

	"gorm.io/datatypes"
)

// AnalysisIssue is the JSON shape of one detected issue.
type AnalysisIssue struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AnalysisRecommendation is the JSON shape of one recommendation.
type AnalysisRecommendation struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Type        string  `json:"type"`
	Icon        string  `json:"icon"`
	Tip         *string `json:"tip,omitempty"`
}

// PlantAnalysisModel mirrors the 'plant_analyses' table. Rows are never updated.
type PlantAnalysisModel struct {
	ID              uint64                                     `gorm:"primaryKey;autoIncrement"`
	PlantID         uint64                                     `gorm:"not null;index:idx_plant_analyses_plant_created,priority:1"`
	UserID          uint64                                     `gorm:"not null;index"`
	HealthScore     int                                        `gorm:"not null"`
	WaterLevel      int                                        `gorm:"not null"`
	LightLevel      int                                        `gorm:"not null"`
	NutrientLevel   int                                        `gorm:"not null"`
	PestRisk        int                                        `gorm:"not null"`
	Issues          datatypes.JSONSlice[AnalysisIssue]          `gorm:"not null"`
	Recommendations datatypes.JSONSlice[AnalysisRecommendation] `gorm:"not null"`
	ImageURL        *string                                    `gorm:"type:text"`
	CreatedAt       time.Time                                  `gorm:"index:idx_plant_analyses_plant_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (PlantAnalysisModel) TableName() string {
	return "plant_analyses"
}
