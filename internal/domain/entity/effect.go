package entity

// EffectKind names one observable consequence of a gamification operation.
type EffectKind string

const (
	EffectPointsGranted       EffectKind = "points_granted"
	EffectLevelUp             EffectKind = "level_up"
	EffectBadgeAwarded        EffectKind = "badge_awarded"
	EffectNotificationCreated EffectKind = "notification_created"
	EffectTaskCreated         EffectKind = "task_created"
	EffectTaskCompleted       EffectKind = "task_completed"
	EffectPlantUpdated        EffectKind = "plant_updated"
	EffectAnalysisRecorded    EffectKind = "analysis_recorded"
)

// Effect is one entry of the ordered list of side effects an operation produced.
// SubjectID is the id of the badge, task, notification, plant or analysis involved.
type Effect struct {
	Kind      EffectKind `json:"kind"`
	UserID    uint64     `json:"user_id"`
	SubjectID uint64     `json:"subject_id,omitempty"`
	Points    int        `json:"points,omitempty"`
	Level     int        `json:"level,omitempty"`
	Detail    string     `json:"detail,omitempty"`
}

// Effects accumulates effects in the order they happened.
type Effects []Effect

// Add appends effects and returns the receiver for chaining.
func (e *Effects) Add(effects ...Effect) *Effects {
	*e = append(*e, effects...)

	return e
}

// OfKind returns the effects with the given kind, in order.
func (e Effects) OfKind(kind EffectKind) Effects {
	var out Effects
	for _, effect := range e {
		if effect.Kind == kind {
			out = append(out, effect)
		}
	}

	return out
}

// PointsTotal sums every points_granted effect.
func (e Effects) PointsTotal() int {
	total := 0
	for _, effect := range e.OfKind(EffectPointsGranted) {
		total += effect.Points
	}

	return total
}
