package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	want := DefaultConfig()
	if cfg.Container != want.Container || cfg.Plane != want.Plane || cfg.Obstacles != want.Obstacles {
		t.Errorf("embedded geometry differs from DefaultConfig()")
	}
	if cfg.Enemies != want.Enemies || cfg.Powerups != want.Powerups || cfg.Clouds != want.Clouds {
		t.Errorf("embedded entity settings differ from DefaultConfig()")
	}
	for _, d := range Difficulties() {
		if cfg.Difficulties[d] != want.Difficulties[d] {
			t.Errorf("profile %q = %+v, expected %+v", d, cfg.Difficulties[d], want.Difficulties[d])
		}
	}
}

func TestProfileTable(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		difficulty Difficulty
		baseSpeed  float64
		gravity    float64
		intervalMs int
		unlock     int
		chance     float64
		increase   float64
	}{
		{DifficultyEasy, 3, 0.3, 1800, 4, 0.4, 0.3},
		{DifficultyNormal, 4, 0.4, 1500, 3, 0.25, 0.5},
		{DifficultyHard, 5, 0.5, 1200, 2, 0.15, 0.7},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			p, err := cfg.Profile(tc.difficulty)
			if err != nil {
				t.Fatalf("Profile() failed: %v", err)
			}
			if p.BaseSpeed != tc.baseSpeed || p.Gravity != tc.gravity {
				t.Errorf("speed/gravity = %v/%v", p.BaseSpeed, p.Gravity)
			}
			if p.ObstacleIntervalMs != tc.intervalMs || p.EnemyUnlockLevel != tc.unlock {
				t.Errorf("interval/unlock = %d/%d", p.ObstacleIntervalMs, p.EnemyUnlockLevel)
			}
			if p.PowerupChance != tc.chance || p.SpeedIncreasePerLevel != tc.increase {
				t.Errorf("chance/increase = %v/%v", p.PowerupChance, p.SpeedIncreasePerLevel)
			}
		})
	}

	if _, err := cfg.Profile("nightmare"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Profile(nightmare) error = %v, expected ErrUnknownDifficulty", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" Normal ", DifficultyNormal, false},
		{"HARD", DifficultyHard, false},
		{"", "", true},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyCycling(t *testing.T) {
	if DifficultyEasy.Next() != DifficultyNormal || DifficultyHard.Next() != DifficultyEasy {
		t.Error("Next() should advance and wrap")
	}
	if DifficultyEasy.Prev() != DifficultyHard || DifficultyNormal.Prev() != DifficultyEasy {
		t.Error("Prev() should go back and wrap")
	}
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero container", func(c *Config) { c.Container.Height = 0 }},
		{"hitbox swallows plane", func(c *Config) { c.Plane.HitboxInset = 14 }},
		{"empty gap range", func(c *Config) { c.Obstacles.MaxGap = c.Obstacles.MinGap }},
		{"gap does not fit", func(c *Config) { c.Container.Height = 300 }},
		{"missing profile", func(c *Config) { delete(c.Difficulties, DifficultyHard) }},
		{"bad powerup chance", func(c *Config) {
			p := c.Difficulties[DifficultyEasy]
			p.PowerupChance = 1.5
			c.Difficulties[DifficultyEasy] = p
		}},
		{"unknown default", func(c *Config) { c.DefaultDifficulty = "insane" }},
		{"negative margin", func(c *Config) { c.Obstacles.Margin = -10 }},
		{"enemy taller than container", func(c *Config) { c.Enemies.Height = 600 }},
		{"enemy spawn chance above one", func(c *Config) { c.Enemies.SpawnChance = 2 }},
		{"powerup taller than container", func(c *Config) { c.Powerups.Size = 650 }},
		{"zero powerup size", func(c *Config) { c.Powerups.Size = 0 }},
		{"cloud taller than container", func(c *Config) { c.Clouds.Height = 600 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plane.yaml")
	doc := []byte("container:\n  height: 700\ndefault_difficulty: hard\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Container.Height != 700 {
		t.Errorf("Container.Height = %v, expected 700", cfg.Container.Height)
	}
	if cfg.Container.Width != 800 {
		t.Errorf("unset fields should keep defaults, width = %v", cfg.Container.Width)
	}
	if cfg.DefaultDifficulty != DifficultyHard {
		t.Errorf("DefaultDifficulty = %q, expected hard", cfg.DefaultDifficulty)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("plane:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() of invalid config = %v, expected ErrInvalidConfig", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg.Difficulties[DifficultyNormal] != DefaultConfig().Difficulties[DifficultyNormal] {
		t.Error("profiles should survive a YAML round trip")
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultConfig()
	normal, err := cfg.Profile(DifficultyNormal)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"normal wave interval", normal.ObstacleInterval(), 1500 * time.Millisecond},
		{"interval step", cfg.Obstacles.IntervalStep(), 50 * time.Millisecond},
		{"interval floor", cfg.Obstacles.MinInterval(), 600 * time.Millisecond},
		{"powerup duration", cfg.Powerups.Duration(), 8 * time.Second},
		{"cloud interval", cfg.Clouds.Interval(), 2 * time.Second},
	}

	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.want)
		}
	}
}
