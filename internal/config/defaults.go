package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the default game configuration.
// Kept in sync with defaults/config.yaml as the last-resort fallback.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			MinCols:     40,
			MinRows:     10,
			StartLength: 3,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
		Speed: SpeedConfig{
			BaseIntervalMS: 100,
			MinIntervalMS:  50,
			ScoreStep:      50,
			DecrementMS:    1,
		},
		Difficulty: DifficultyNormal,
	}
}
