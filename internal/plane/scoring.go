package plane

import (
	"time"

	"github.com/vovakirdan/flappy-plane/internal/config"
)

// LevelForScore returns the level implied by score.
func LevelForScore(score, pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		pointsPerLevel = 10
	}
	return score/pointsPerLevel + 1
}

// AwardObstacleCycle credits one obstacle spawn cycle: the score grows by the
// current multiplier and, when the level rises, the game speed grows once by
// the difficulty's per-level increase. Returns true on a level-up.
func AwardObstacleCycle(s *Session) bool {
	s.Run.Score += s.Run.PointsMultiplier

	level := LevelForScore(s.Run.Score, s.Config.Scoring.PointsPerLevel)
	if level <= s.Run.Level {
		return false
	}
	s.Run.Level = level
	s.Run.GameSpeed += s.Profile.SpeedIncreasePerLevel
	return true
}

// ObstacleInterval returns the delay until the next obstacle wave at level.
// It shrinks by a fixed step per level down to a floor.
func ObstacleInterval(profile config.DifficultyProfile, oc config.ObstacleConfig, level int) time.Duration {
	d := profile.ObstacleInterval() - time.Duration(level)*oc.IntervalStep()
	if floor := oc.MinInterval(); d < floor {
		return floor
	}
	return d
}
