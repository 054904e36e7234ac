package plane

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-plane/internal/config"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 1}, {9, 1}, {10, 2}, {19, 2}, {20, 3}, {105, 11},
	}
	for _, tc := range tests {
		if got := LevelForScore(tc.score, 10); got != tc.want {
			t.Errorf("LevelForScore(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}
}

func TestAwardObstacleCycleKeepsLevelInvariant(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, d := range config.Difficulties() {
		t.Run(string(d), func(t *testing.T) {
			profile, _ := cfg.Profile(d)
			s := NewSession(cfg, d, profile, NewEntityStore(cfg, nil), 0)
			levelUps := 0

			for i := 0; i < 60; i++ {
				// Alternate multipliers so some cycles add 2 points.
				s.Run.PointsMultiplier = 1 + i%2
				if AwardObstacleCycle(s) {
					levelUps++
				}
				if s.Run.Level != s.Run.Score/10+1 {
					t.Fatalf("cycle %d: level %d for score %d", i, s.Run.Level, s.Run.Score)
				}
			}

			want := profile.BaseSpeed + float64(levelUps)*profile.SpeedIncreasePerLevel
			if !approx(s.Run.GameSpeed, want) {
				t.Errorf("speed = %v after %d level-ups, expected %v", s.Run.GameSpeed, levelUps, want)
			}
			if levelUps != s.Run.Level-1 {
				t.Errorf("%d level-ups for level %d", levelUps, s.Run.Level)
			}
		})
	}
}

func TestLevelUpAddsSpeedOncePerCycle(t *testing.T) {
	cfg := config.DefaultConfig()
	profile, _ := cfg.Profile(config.DifficultyNormal)
	s := NewSession(cfg, config.DifficultyNormal, profile, NewEntityStore(cfg, nil), 0)

	// A single cycle jumping from level 1 to level 3 adds one increment.
	s.Run.Score = 18
	s.Run.PointsMultiplier = 2
	if !AwardObstacleCycle(s) {
		t.Fatal("expected a level-up")
	}
	if s.Run.Level != 3 {
		t.Errorf("level = %d, expected 3", s.Run.Level)
	}
	if !approx(s.Run.GameSpeed, 4.5) {
		t.Errorf("speed = %v, expected 4.5", s.Run.GameSpeed)
	}
}

func TestObstacleInterval(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		difficulty config.Difficulty
		level      int
		want       time.Duration
	}{
		{config.DifficultyEasy, 1, 1750 * time.Millisecond},
		{config.DifficultyEasy, 2, 1700 * time.Millisecond},
		{config.DifficultyNormal, 1, 1450 * time.Millisecond},
		{config.DifficultyHard, 1, 1150 * time.Millisecond},
		{config.DifficultyHard, 12, 600 * time.Millisecond},
		{config.DifficultyHard, 40, 600 * time.Millisecond},
	}

	for _, tc := range tests {
		profile, _ := cfg.Profile(tc.difficulty)
		if got := ObstacleInterval(profile, cfg.Obstacles, tc.level); got != tc.want {
			t.Errorf("%s level %d: interval %v, expected %v", tc.difficulty, tc.level, got, tc.want)
		}
	}
}
