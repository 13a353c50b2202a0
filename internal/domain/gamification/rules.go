package gamification

import "plantcare/internal/domain/entity"

// Trigger is the action after which badge rules are re-evaluated.
type Trigger string

const (
	TriggerPlantCreated  Trigger = "plant_created"
	TriggerTaskCompleted Trigger = "task_completed"
)

// Facts are the counters observed right after a trigger, inside the same transaction.
type Facts struct {
	Trigger Trigger

	// Set for TriggerPlantCreated.
	PlantCount int64

	// Set for TriggerTaskCompleted.
	CompletedTaskType   entity.TaskType
	CompletedWaterTasks int64
}

type rule struct {
	trigger Trigger
	met     func(threshold int, facts Facts) bool
}

// Requirement kinds without a rule (plantsRevived, healthyPlants, daysCaring,
// issuesIdentified) are never awarded.
var rules = map[entity.RequirementKind]rule{
	// Fires on the transition to the threshold, so a later plant never re-triggers it.
	entity.RequirementPlantsAdded: {
		trigger: TriggerPlantCreated,
		met: func(threshold int, facts Facts) bool {
			return facts.PlantCount == int64(threshold)
		},
	},
	entity.RequirementWateringCompleted: {
		trigger: TriggerTaskCompleted,
		met: func(threshold int, facts Facts) bool {
			return facts.CompletedTaskType == entity.TaskTypeWater &&
				facts.CompletedWaterTasks >= int64(threshold)
		},
	},
}

// IsAttainable reports whether any rule can ever award a badge with this requirement.
func IsAttainable(req entity.BadgeRequirement) bool {
	_, ok := rules[req.Kind]

	return ok
}

// Watches reports whether the requirement is evaluated after the trigger.
func Watches(req entity.BadgeRequirement, trigger Trigger) bool {
	r, ok := rules[req.Kind]

	return ok && r.trigger == trigger
}

// Qualifies reports whether the facts satisfy the requirement.
func Qualifies(req entity.BadgeRequirement, facts Facts) bool {
	r, ok := rules[req.Kind]
	if !ok || r.trigger != facts.Trigger {
		return false
	}

	return r.met(req.Threshold, facts)
}
