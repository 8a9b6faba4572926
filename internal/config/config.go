// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import "time"

// Config contains all tunable game parameters.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines terminal and board constraints.
type BoardConfig struct {
	MinCols     int `yaml:"min_cols"`     // Minimum terminal width to start
	MinRows     int `yaml:"min_rows"`     // Minimum terminal height to start
	StartLength int `yaml:"start_length"` // Initial snake length
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"` // Points per food eaten
}

// SpeedConfig defines the score-driven tick interval curve.
// The interval shrinks by DecrementMS at every ScoreStep points,
// never dropping below MinIntervalMS.
type SpeedConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	ScoreStep      int `yaml:"score_step"`
	DecrementMS    int `yaml:"decrement_ms"`
}

// IntervalFor returns the tick interval for a given score.
// Deterministic in score alone: non-increasing, bounded below by the floor.
func (s SpeedConfig) IntervalFor(score int) time.Duration {
	step := s.ScoreStep
	if step <= 0 {
		step = 1
	}
	ms := s.BaseIntervalMS - (score/step)*s.DecrementMS
	if ms < s.MinIntervalMS {
		ms = s.MinIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset scales the speed curve for a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseIntervalMS = cfg.Speed.BaseIntervalMS * 3 / 2
	case DifficultyHard:
		cfg.Speed.BaseIntervalMS = cfg.Speed.BaseIntervalMS * 7 / 10
		if cfg.Speed.BaseIntervalMS < cfg.Speed.MinIntervalMS {
			cfg.Speed.BaseIntervalMS = cfg.Speed.MinIntervalMS
		}
	}
}
