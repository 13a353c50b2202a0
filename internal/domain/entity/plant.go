package entity

import (
	"time"
)

const (
	// DefaultMetricLevel is the value a new plant starts with for health, water, light and nutrients.
	DefaultMetricLevel = 100
	// DefaultPestRisk is the value a new plant starts with for pest risk.
	DefaultPestRisk = 0
)

// Plant is a single plant owned by a user together with its last known health snapshot.
type Plant struct {
	ID             uint64     `json:"id"`
	UserID         uint64     `json:"user_id"`
	Name           string     `json:"name"`
	Species        *string    `json:"species,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
	HealthScore    int        `json:"health_score"`
	WaterLevel     int        `json:"water_level"`
	LightLevel     int        `json:"light_level"`
	NutrientLevel  int        `json:"nutrient_level"`
	PestRisk       int        `json:"pest_risk"`
	LastWatered    *time.Time `json:"last_watered,omitempty"`
	LastFertilized *time.Time `json:"last_fertilized,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// HealthSnapshot is the set of metrics an analysis overwrites on a plant.
type HealthSnapshot struct {
	HealthScore   int `json:"health_score"`
	WaterLevel    int `json:"water_level"`
	LightLevel    int `json:"light_level"`
	NutrientLevel int `json:"nutrient_level"`
	PestRisk      int `json:"pest_risk"`
}

// NewPlant returns a healthy plant for the given owner, watered and fertilized at now.
func NewPlant(userID uint64, name string, species, imageURL *string, now time.Time) *Plant {
	return &Plant{
		UserID:         userID,
		Name:           name,
		Species:        species,
		ImageURL:       imageURL,
		HealthScore:    DefaultMetricLevel,
		WaterLevel:     DefaultMetricLevel,
		LightLevel:     DefaultMetricLevel,
		NutrientLevel:  DefaultMetricLevel,
		PestRisk:       DefaultPestRisk,
		LastWatered:    &now,
		LastFertilized: &now,
	}
}

// Health returns the plant's current metrics.
func (p *Plant) Health() HealthSnapshot {
	return HealthSnapshot{
		HealthScore:   p.HealthScore,
		WaterLevel:    p.WaterLevel,
		LightLevel:    p.LightLevel,
		NutrientLevel: p.NutrientLevel,
		PestRisk:      p.PestRisk,
	}
}

// ApplyHealth overwrites every health metric with the snapshot.
func (p *Plant) ApplyHealth(h HealthSnapshot) {
	p.HealthScore = h.HealthScore
	p.WaterLevel = h.WaterLevel
	p.LightLevel = h.LightLevel
	p.NutrientLevel = h.NutrientLevel
	p.PestRisk = h.PestRisk
}
