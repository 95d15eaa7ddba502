package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Phase is the wrapper state around the engine.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseToppedOut
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseToppedOut:
		return "topped_out"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty name means
// normal, as for the --difficulty flag. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game wraps the engine with the title/pause/game-over flow and turns
// platform input frames into engine intents.
type Game struct {
	runtime core.RuntimeConfig
	fixed   *config.TetrisConfig
	cfg     config.TetrisConfig
	theme   Theme
	engine  *Engine
	phase   Phase

	shift    AutoShift
	softHeld bool
	tick     uint64

	layout         layout
	screenTooSmall bool
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

func (g *Game) loadConfig() config.TetrisConfig {
	if g.fixed != nil {
		return *g.fixed
	}
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset initializes the game and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.theme = ThemeFromConfig(g.cfg.Theme)

	src, err := NewRandomizer(g.cfg.Queue.Randomizer, runtime.Seed)
	if err != nil {
		src = NewRandomGenerator(runtime.Seed)
	}
	g.engine = NewEngine(RulesFromConfig(g.cfg), src)

	g.shift = NewAutoShift(g.cfg.Timing.AutoShiftDelay, g.cfg.Timing.AutoShiftInterval)
	g.softHeld = false
	g.tick = 0
	g.phase = PhaseTitle

	g.layout = computeLayout(g.cfg.Well, runtime.ScreenW, runtime.ScreenH)
	g.screenTooSmall = !g.layout.fits
}

// Resize recomputes the layout for a new screen size, keeping the game.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW, g.runtime.ScreenH = screenW, screenH
	g.layout = computeLayout(g.cfg.Well, screenW, screenH)
	g.screenTooSmall = !g.layout.fits
}

// Step advances the wrapper and, while playing, the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.engine == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	var events []core.Event
	if g.phase != PhasePlaying && in.Has(core.ActionDebug) {
		g.engine.ToggleDebug()
	}

	switch g.phase {
	case PhaseTitle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionHardDrop) {
			g.phase = PhasePlaying
			events = append(events, core.NewEvent("game started",
				"level", g.engine.Level(), "randomizer", g.cfg.Queue.Randomizer))
		}

	case PhasePaused:
		switch {
		case in.Has(core.ActionRestart):
			events = append(events, g.restart())
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			g.phase = PhasePlaying
			events = append(events, core.NewEvent("resumed"))
		}

	case PhaseToppedOut:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			events = append(events, g.restart())
		}

	case PhasePlaying:
		switch {
		case in.Has(core.ActionPause):
			g.phase = PhasePaused
			g.shift.Reset()
			events = append(events, core.NewEvent("paused"))
		case in.Has(core.ActionRestart):
			events = append(events, g.restart())
		default:
			events = append(events, g.engine.Tick(g.decode(in))...)
			if g.engine.ToppedOut() {
				g.phase = PhaseToppedOut
			}
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) restart() core.Event {
	prev := g.engine.Score()
	g.engine.Restart()
	g.shift.Reset()
	g.softHeld = false
	g.phase = PhasePlaying
	return core.NewEvent("restart", "previous_score", prev)
}

// decode maps one input frame to engine intents.
func (g *Game) decode(in core.InputFrame) Intent {
	intents := g.shift.Update(in.IsHeld(core.ActionLeft), in.IsHeld(core.ActionRight))

	if in.Has(core.ActionRotateCW) {
		intents |= IntentRotateCW
	}
	if in.Has(core.ActionRotateCCW) {
		intents |= IntentRotateCCW
	}

	soft := in.IsHeld(core.ActionSoftDrop)
	switch {
	case soft && !g.softHeld:
		intents |= IntentSoftDropOn
	case !soft && g.softHeld:
		intents |= IntentSoftDropOff
	}
	g.softHeld = soft

	if in.Has(core.ActionHardDrop) {
		intents |= IntentHardDrop
	}
	if in.Has(core.ActionHold) {
		intents |= IntentHold
	}
	if in.Has(core.ActionDebug) {
		intents |= IntentToggleDebug
	}
	return intents
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.phase == PhaseToppedOut,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the wrapper phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Engine exposes the simulation for read-only inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Config returns the configuration in effect.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}
