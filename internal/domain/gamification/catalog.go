package gamification

import "plantcare/internal/domain/entity"

// Catalog badge names. Award rules look badges up by name.
const (
	BadgeFirstPlant    = "First Plant"
	BadgeHydrationPro  = "Hydration Pro"
	BadgePlantReviver  = "Plant Reviver"
	BadgePlantExpert   = "Plant Expert"
	BadgePlantParent   = "Plant Parent"
	BadgeDiagnostician = "Diagnostician"
)

// Catalog returns the seeded badge definitions in their canonical order.
func Catalog() []entity.Badge {
	return []entity.Badge{
		{
			Name:        BadgeFirstPlant,
			Description: "Added your first plant",
			Icon:        "eco",
			Requirement: entity.BadgeRequirement{Kind: entity.RequirementPlantsAdded, Threshold: 1},
			BonusPoints: 25,
		},
		{
			Name:        BadgeHydrationPro,
			Description: "Watered on time 5 times",
			Icon:        "water_drop",
			Requirement: entity.BadgeRequirement{Kind: entity.RequirementWateringCompleted, Threshold: 5},
			BonusPoints: 50,
		},
		{
			Name:        BadgePlantReviver,
			Description: "Nurse a sick plant back to health",
			Icon:        "healing",
			Requirement: entity.BadgeRequirement{Kind: entity.RequirementPlantsRevived, Threshold: 1},
		},
		{
			Name:        BadgePlantExpert,
			Description: "Own 10 thriving plants",
			Icon:        "auto_awesome",
			Requirement: entity.BadgeRequirement{Kind: entity.RequirementHealthyPlants, Threshold: 10},
		},
		{
			Name:        BadgePlantParent,
			Description: "Care for plants for 30 days",
			Icon:        "volunteer_activism",
			Requirement: entity.BadgeRequirement{Kind: entity.RequirementDaysCaring, Threshold: 30},
		},
		{
			Name:        BadgeDiagnostician,
			Description: "Identify 5 plant issues",
			Icon:        "query_stats",
			Requirement: entity.BadgeRequirement{Kind: entity.RequirementIssuesIdentified, Threshold: 5},
		},
	}
}
