package entity

import (
	"time"
)

// RecommendationPriority decides whether a recommendation becomes a task.
type RecommendationPriority string

const (
	RecommendationUrgent      RecommendationPriority = "urgent"
	RecommendationRecommended RecommendationPriority = "recommended"
	RecommendationMaintenance RecommendationPriority = "maintenance"
)

// Issue is a problem detected by an analysis. Name is bounded so that
// "<name> detected in <plant>" fits a notification title.
type Issue struct {
	Name        string `json:"name" validate:"required,max=60"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Recommendation is a suggested care action produced by an analysis.
type Recommendation struct {
	Title       string                 `json:"title" validate:"required,max=200"`
	Description string                 `json:"description"`
	Priority    RecommendationPriority `json:"priority" validate:"required,oneof=urgent recommended maintenance"`
	Type        TaskType               `json:"type" validate:"required,max=32"`
	Icon        string                 `json:"icon"`
	Tip         *string                `json:"tip,omitempty"`
}

// PlantAnalysis is an append-only health assessment of a plant.
type PlantAnalysis struct {
	ID              uint64           `json:"id"`
	PlantID         uint64           `json:"plant_id"`
	UserID          uint64           `json:"user_id"`
	HealthScore     int              `json:"health_score"`
	WaterLevel      int              `json:"water_level"`
	LightLevel      int              `json:"light_level"`
	NutrientLevel   int              `json:"nutrient_level"`
	PestRisk        int              `json:"pest_risk"`
	Issues          []Issue          `json:"issues"`
	Recommendations []Recommendation `json:"recommendations"`
	ImageURL        *string          `json:"image_url,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// Health returns the metrics carried by the analysis.
func (a *PlantAnalysis) Health() HealthSnapshot {
	return HealthSnapshot{
		HealthScore:   a.HealthScore,
		WaterLevel:    a.WaterLevel,
		LightLevel:    a.LightLevel,
		NutrientLevel: a.NutrientLevel,
		PestRisk:      a.PestRisk,
	}
}
