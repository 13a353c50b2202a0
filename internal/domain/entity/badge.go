package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// RequirementKind names the counter a badge requirement is measured against.
type RequirementKind string

const (
	RequirementPlantsAdded       RequirementKind = "plantsAdded"
	RequirementWateringCompleted RequirementKind = "wateringCompleted"
	RequirementPlantsRevived     RequirementKind = "plantsRevived"
	RequirementHealthyPlants     RequirementKind = "healthyPlants"
	RequirementDaysCaring        RequirementKind = "daysCaring"
	RequirementIssuesIdentified  RequirementKind = "issuesIdentified"
)

var knownRequirementKinds = map[RequirementKind]struct{}{
	RequirementPlantsAdded:       {},
	RequirementWateringCompleted: {},
	RequirementPlantsRevived:     {},
	RequirementHealthyPlants:     {},
	RequirementDaysCaring:        {},
	RequirementIssuesIdentified:  {},
}

// IsKnown reports whether k is a requirement kind the catalog understands.
func (k RequirementKind) IsKnown() bool {
	_, ok := knownRequirementKinds[k]

	return ok
}

// BadgeRequirement is a single counter threshold, e.g. plantsAdded >= 1.
// On the wire it is the one-key object {"plantsAdded": 1}.
type BadgeRequirement struct {
	Kind      RequirementKind
	Threshold int
}

// MarshalJSON encodes the requirement as {"<kind>": <threshold>}.
func (r BadgeRequirement) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[RequirementKind]int{r.Kind: r.Threshold})
}

// UnmarshalJSON accepts exactly one known kind with a positive threshold.
func (r *BadgeRequirement) UnmarshalJSON(data []byte) error {
	var raw map[RequirementKind]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("badge requirement: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("badge requirement must have exactly one key, got %d", len(raw))
	}

	for kind, threshold := range raw {
		if !kind.IsKnown() {
			return fmt.Errorf("unknown badge requirement kind %q", kind)
		}
		if threshold <= 0 {
			return fmt.Errorf("badge requirement %q threshold must be positive", kind)
		}
		r.Kind = kind
		r.Threshold = threshold
	}

	return nil
}

// Badge is a static catalog entry.
type Badge struct {
	ID          uint64           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Requirement BadgeRequirement `json:"requirement"`
	BonusPoints int              `json:"bonus_points"`
}

// UserBadge records that a user earned a badge. (UserID, BadgeID) is unique.
type UserBadge struct {
	ID       uint64    `json:"id"`
	UserID   uint64    `json:"user_id"`
	BadgeID  uint64    `json:"badge_id"`
	EarnedAt time.Time `json:"earned_at"`
}

// EarnedBadge is a badge joined with the moment a user earned it.
type EarnedBadge struct {
	Badge
	EarnedAt time.Time `json:"earned_at"`
}
