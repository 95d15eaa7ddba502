// Package config provides YAML-based rules and theme configuration for tetris,
// with embedded defaults and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Randomizer names accepted in queue.randomizer.
const (
	RandomizerRandom = "random"
	RandomizerBag    = "bag"
)

// PieceKinds lists the theme keys, one per tetromino.
var PieceKinds = []string{"I", "J", "L", "O", "S", "T", "Z"}

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Well       WellConfig       `yaml:"well"`
	Timing     TimingConfig     `yaml:"timing"`
	Queue      QueueConfig      `yaml:"queue"`
	Levels     LevelsConfig     `yaml:"levels"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Theme      ThemeConfig      `yaml:"theme"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WellConfig defines the playfield size. Rows above VisibleHeight are the
// hidden spawn zone.
type WellConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	VisibleHeight int `yaml:"visible_height"`
}

// TimingConfig holds every delay of the state machine, in ticks.
type TimingConfig struct {
	LockDelay         int `yaml:"lock_delay"`
	EntryDelay        int `yaml:"entry_delay"`
	LineClearDelay    int `yaml:"line_clear_delay"`
	ScorePopup        int `yaml:"score_popup"`
	SoftDropGravity   int `yaml:"soft_drop_gravity"`
	AutoShiftDelay    int `yaml:"autoshift_delay"`
	AutoShiftInterval int `yaml:"autoshift_interval"`
}

// QueueConfig defines the next-piece queue.
type QueueConfig struct {
	Preview    int    `yaml:"preview"`
	Randomizer string `yaml:"randomizer"` // "random" or "bag"
}

// LevelsConfig defines level progression and the gravity table.
// Gravity[i] is the number of ticks per row at level i; levels past the end
// of the table use the last entry.
type LevelsConfig struct {
	Start         int   `yaml:"start"`
	Max           int   `yaml:"max"`
	LinesPerLevel int   `yaml:"lines_per_level"`
	Gravity       []int `yaml:"gravity"`
}

// ScoringConfig defines line-clear values. Lines[n-1] is the base value for
// clearing n lines; both base and bonus are multiplied by (n+1).
type ScoringConfig struct {
	Lines      []int `yaml:"lines"`
	TSpinBonus int   `yaml:"tspin_bonus"`
}

// ThemeConfig maps piece kinds to their color and glyph.
type ThemeConfig struct {
	Pieces map[string]PieceTheme `yaml:"pieces"`
	Ghost  string                `yaml:"ghost"`
}

// PieceTheme is the look of one piece kind.
type PieceTheme struct {
	Color string `yaml:"color"`
	Glyph string `yaml:"glyph"`
}

// DifficultyConfig controls level progression.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"` // false keeps the start level forever
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c TetrisConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Well.Width < 4:
		return invalid("well.width must be at least 4, got %d", c.Well.Width)
	case c.Well.Height < 4:
		return invalid("well.height must be at least 4, got %d", c.Well.Height)
	case c.Well.VisibleHeight < 1 || c.Well.VisibleHeight > c.Well.Height:
		return invalid("well.visible_height must be in [1, %d], got %d", c.Well.Height, c.Well.VisibleHeight)
	}

	timings := []struct {
		name string
		val  int
	}{
		{"timing.lock_delay", c.Timing.LockDelay},
		{"timing.entry_delay", c.Timing.EntryDelay},
		{"timing.line_clear_delay", c.Timing.LineClearDelay},
		{"timing.score_popup", c.Timing.ScorePopup},
		{"timing.autoshift_delay", c.Timing.AutoShiftDelay},
	}
	for _, t := range timings {
		if t.val < 0 {
			return invalid("%s must not be negative, got %d", t.name, t.val)
		}
	}
	if c.Timing.SoftDropGravity < 1 {
		return invalid("timing.soft_drop_gravity must be at least 1, got %d", c.Timing.SoftDropGravity)
	}
	if c.Timing.AutoShiftInterval < 1 {
		return invalid("timing.autoshift_interval must be at least 1, got %d", c.Timing.AutoShiftInterval)
	}

	if c.Queue.Preview < 0 {
		return invalid("queue.preview must not be negative, got %d", c.Queue.Preview)
	}
	if c.Queue.Randomizer != RandomizerRandom && c.Queue.Randomizer != RandomizerBag {
		return invalid("queue.randomizer must be %q or %q, got %q", RandomizerRandom, RandomizerBag, c.Queue.Randomizer)
	}

	if len(c.Levels.Gravity) == 0 {
		return invalid("levels.gravity must not be empty")
	}
	for i, g := range c.Levels.Gravity {
		if g < 1 {
			return invalid("levels.gravity[%d] must be at least 1, got %d", i, g)
		}
	}
	if c.Levels.Max < 0 {
		return invalid("levels.max must not be negative, got %d", c.Levels.Max)
	}
	if c.Levels.Start < 0 || c.Levels.Start > c.Levels.Max {
		return invalid("levels.start must be in [0, %d], got %d", c.Levels.Max, c.Levels.Start)
	}
	if c.Levels.LinesPerLevel < 1 {
		return invalid("levels.lines_per_level must be at least 1, got %d", c.Levels.LinesPerLevel)
	}

	if len(c.Scoring.Lines) != 4 {
		return invalid("scoring.lines must have 4 entries, got %d", len(c.Scoring.Lines))
	}

	for kind, pt := range c.Theme.Pieces {
		if !slices.Contains(PieceKinds, kind) {
			return invalid("theme.pieces: unknown piece kind %q", kind)
		}
		if _, ok := core.ParseColor(pt.Color); pt.Color != "" && !ok {
			return invalid("theme.pieces.%s.color: unknown color %q", kind, pt.Color)
		}
	}
	return nil
}
