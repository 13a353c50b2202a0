package gamification

// LevelFor returns floor(points/perLevel)+1.
func LevelFor(points, perLevel int) int {
	if perLevel <= 0 || points < 0 {
		return 1
	}

	return points/perLevel + 1
}

// NextLevel returns the level a user holds after reaching points.
// A level never goes down, even if perLevel was raised since it was earned.
func NextLevel(currentLevel, points, perLevel int) int {
	return max(currentLevel, LevelFor(points, perLevel))
}
