package config

import (
	_ "embed"
	"slices"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultGravity is the ticks-per-row table for levels 0..29.
var DefaultGravity = []int{
	48, 43, 38, 33, 28, 23, 18, 13, 8, 6,
	5, 5, 5, 4, 4, 4, 3, 3, 3, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 1,
}

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Well: WellConfig{
			Width:         10,
			Height:        22,
			VisibleHeight: 20,
		},
		Timing: TimingConfig{
			LockDelay:         30, // 0.5s at 60 ticks/s
			EntryDelay:        20,
			LineClearDelay:    20,
			ScorePopup:        60,
			SoftDropGravity:   5,
			AutoShiftDelay:    18,
			AutoShiftInterval: 3,
		},
		Queue: QueueConfig{
			Preview:    5,
			Randomizer: RandomizerRandom,
		},
		Levels: LevelsConfig{
			Start:         0,
			Max:           30,
			LinesPerLevel: 10,
			Gravity:       slices.Clone(DefaultGravity),
		},
		Scoring: ScoringConfig{
			Lines:      []int{40, 100, 300, 1200},
			TSpinBonus: 400,
		},
		Theme: ThemeConfig{
			Ghost: "░",
			Pieces: map[string]PieceTheme{
				"I": {Color: "cyan", Glyph: "█"},
				"J": {Color: "blue", Glyph: "█"},
				"L": {Color: "orange", Glyph: "█"},
				"O": {Color: "yellow", Glyph: "█"},
				"S": {Color: "green", Glyph: "█"},
				"T": {Color: "magenta", Glyph: "█"},
				"Z": {Color: "red", Glyph: "█"},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
