// Package gamification holds the pure rules of the point economy: levels,
// the badge catalog and its award rules, and the derivation of tasks and
// notifications from analyses. Nothing here touches storage.
package gamification

import "time"

// Settings are the tunable numbers of the point economy.
type Settings struct {
	PointsPerLevel       int
	TaskCompletionPoints int
	AnalysisPoints       int
	UrgentDueIn          time.Duration
	RecommendedDueIn     time.Duration
}

// DefaultSettings returns 100 points per level, +10 per completed task,
// +15 per analysis and task due dates of 24h (urgent) and 72h (recommended).
func DefaultSettings() Settings {
	return Settings{
		PointsPerLevel:       100,
		TaskCompletionPoints: 10,
		AnalysisPoints:       15,
		UrgentDueIn:          24 * time.Hour,
		RecommendedDueIn:     72 * time.Hour,
	}
}
