package tetris

import (
	"errors"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Intent is a set of decoded player intents for one tick.
type Intent uint16

const (
	IntentMoveLeft Intent = 1 << iota
	IntentMoveRight
	IntentRotateCW
	IntentRotateCCW
	IntentSoftDropOn
	IntentSoftDropOff
	IntentHardDrop
	IntentHold
	IntentToggleDebug
)

// Has reports whether every bit of x is set.
func (i Intent) Has(x Intent) bool {
	return i&x == x
}

// Rules are the engine's fixed parameters, all timings in ticks.
type Rules struct {
	Width, Height   int
	LockDelay       int
	EntryDelay      int
	LineClearDelay  int
	ScorePopup      int
	SoftDropGravity int
	Preview         int
	Levels          LevelPolicy
	Scoring         ScoreTable
	Colors          [kindCount]core.Color
}

// RulesFromConfig converts a validated config into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	r := Rules{
		Width:           cfg.Well.Width,
		Height:          cfg.Well.Height,
		LockDelay:       cfg.Timing.LockDelay,
		EntryDelay:      cfg.Timing.EntryDelay,
		LineClearDelay:  cfg.Timing.LineClearDelay,
		ScorePopup:      cfg.Timing.ScorePopup,
		SoftDropGravity: cfg.Timing.SoftDropGravity,
		Preview:         cfg.Queue.Preview,
		Levels: LevelPolicy{
			Start:         cfg.Levels.Start,
			Max:           cfg.Levels.Max,
			LinesPerLevel: cfg.Levels.LinesPerLevel,
			Progression:   cfg.Difficulty.Enabled,
			Gravity:       cfg.Levels.Gravity,
		},
		Scoring: ScoreTable{TSpinBonus: cfg.Scoring.TSpinBonus},
	}
	copy(r.Scoring.Lines[:], cfg.Scoring.Lines)
	r.Colors = ThemeFromConfig(cfg.Theme).Colors
	return r
}

// DefaultRules returns the rules of the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTetrisConfig())
}

// LineClear is a pending removal of completed rows.
type LineClear struct {
	Rows    []int
	Counter int
}

// ScorePopup is the transient "+points" notice shown after a clear.
type ScorePopup struct {
	Points  int
	Lines   int
	TSpin   bool
	Counter int
}

// Engine is the per-tick simulation state machine. It owns the board and
// the active piece exclusively; all mutation happens inside Tick.
type Engine struct {
	rules Rules
	board *Board
	queue *Queue
	piece Piece
	hold  PieceKind

	ghost      Point
	ghostDirty bool

	gravityCounter int
	softDrop       bool

	score int
	lines int
	level int
	stats [kindCount]int

	lineClear *LineClear
	popup     *ScorePopup
	toppedOut bool
	debug     bool
	frame     uint64

	events []core.Event
}

// NewEngine creates an engine and spawns the first piece.
func NewEngine(rules Rules, src Randomizer) *Engine {
	e := &Engine{
		rules: rules,
		board: NewBoard(rules.Width, rules.Height),
		queue: NewQueue(src, rules.Preview),
	}
	e.init()
	return e
}

func (e *Engine) init() {
	e.hold = KindNone
	e.gravityCounter = 0
	e.softDrop = false
	e.score = 0
	e.lines = 0
	e.level = e.rules.Levels.Level(0)
	e.stats = [kindCount]int{}
	e.lineClear = nil
	e.popup = nil
	e.toppedOut = false
	e.frame = 0
	e.spawn(e.queue.Next())
}

// Restart reinitializes the game in place. The randomizer keeps its stream.
func (e *Engine) Restart() {
	e.board.Reset()
	e.queue.Refill()
	e.init()
}

// Tick advances the simulation by one frame and returns what happened.
func (e *Engine) Tick(in Intent) []core.Event {
	e.events = nil
	if in.Has(IntentToggleDebug) {
		e.debug = !e.debug
	}
	if e.toppedOut {
		return e.events
	}
	e.frame++

	if in.Has(IntentSoftDropOn) {
		e.softDrop = true
	}
	if in.Has(IntentSoftDropOff) {
		e.softDrop = false
	}

	if e.piece.EntryCounter < e.rules.EntryDelay {
		e.piece.EntryCounter++
	}
	e.advancePopup()
	e.advanceLineClear()

	if !e.Active() {
		return e.events
	}

	e.gravityCounter++
	if e.piece.Locking {
		e.piece.LockCounter++
	}

	if e.applyIntents(in) {
		// hold swapped in a fresh piece; it waits out its entry delay
		return e.events
	}

	e.refreshGhost()

	onSurface := ShouldCommit(e.board, e.piece)
	if onSurface {
		e.piece.Locking = true
		if e.piece.SonicLock || e.piece.LockCounter >= e.rules.LockDelay {
			e.commit()
		}
		return e.events
	}

	if e.gravityCounter >= e.gravityThreshold() {
		e.fall()
	}
	return e.events
}

// Active reports whether the piece accepts intents and gravity this tick.
func (e *Engine) Active() bool {
	return !e.toppedOut && e.lineClear == nil && e.piece.EntryCounter >= e.rules.EntryDelay
}

func (e *Engine) advancePopup() {
	if e.popup == nil {
		return
	}
	e.popup.Counter++
	if e.popup.Counter >= e.rules.ScorePopup {
		e.popup = nil
	}
}

func (e *Engine) advanceLineClear() {
	if e.lineClear == nil {
		return
	}
	e.lineClear.Counter++
	if e.lineClear.Counter < e.rules.LineClearDelay {
		return
	}
	rows := e.lineClear.Rows
	e.board.Clear(rows)
	e.board.Compact(rows)
	e.lineClear = nil
	e.ghostDirty = true
	e.checkBlockOut()
}

// applyIntents handles hold, moves, rotations and hard drop in that order.
// It returns true when a hold replaced the active piece.
func (e *Engine) applyIntents(in Intent) bool {
	if in.Has(IntentHold) && e.Hold() {
		return true
	}

	if in.Has(IntentMoveLeft) && !in.Has(IntentMoveRight) {
		e.shift(-1)
	}
	if in.Has(IntentMoveRight) && !in.Has(IntentMoveLeft) {
		e.shift(1)
	}

	if in.Has(IntentRotateCW) {
		e.rotate(DirCW)
	}
	if in.Has(IntentRotateCCW) {
		e.rotate(DirCCW)
	}

	if in.Has(IntentHardDrop) {
		e.refreshGhost()
		if e.ghost != e.piece.Pos {
			e.piece.Pos = e.ghost
			e.piece.LastRotated = false
		}
		e.piece.SonicLock = true
	}
	return false
}

func (e *Engine) shift(dx int) bool {
	dst := e.piece.Pos.Add(Point{X: dx})
	if !CanTranslateHorizontally(e.board, e.piece, dst) {
		return false
	}
	e.piece.Pos = dst
	e.piece.LastRotated = false
	e.ghostDirty = true
	return true
}

func (e *Engine) rotate(dir Direction) {
	res, err := Rotate(e.board, &e.piece, dir)
	if errors.Is(err, ErrKickExhausted) {
		e.emit("kick exhausted", "piece", e.piece.Kind.String(), "from", int(res.From), "dir", dir.String())
		return
	}
	if res.From != res.To {
		e.ghostDirty = true
	}
}

// CanMoveLeft reports whether the active piece could shift left now.
func (e *Engine) CanMoveLeft() bool {
	return CanTranslateHorizontally(e.board, e.piece, e.piece.Pos.Add(Point{X: -1}))
}

// CanMoveRight reports whether the active piece could shift right now.
func (e *Engine) CanMoveRight() bool {
	return CanTranslateHorizontally(e.board, e.piece, e.piece.Pos.Add(Point{X: 1}))
}

// Hold stores the active piece and brings in the held one, or the next
// queued piece when the slot is empty. It is allowed once per piece and
// reports whether the swap happened.
func (e *Engine) Hold() bool {
	if e.piece.Held || !e.Active() {
		return false
	}
	current := e.piece.Kind
	next := e.hold
	if next == KindNone {
		next = e.queue.Next()
	}
	e.hold = current
	e.spawn(next)
	e.piece.Held = true
	e.emit("hold", "stored", current.String(), "active", next.String())
	return true
}

func (e *Engine) gravityThreshold() int {
	g := e.rules.Levels.GravityFor(e.level)
	if e.softDrop {
		g = min(g, e.rules.SoftDropGravity)
	}
	return max(g, 1)
}

func (e *Engine) fall() {
	e.piece.Pos.Y--
	e.piece.LastRotated = false
	e.gravityCounter = 0
	if e.piece.Locking {
		e.piece.LockCounter = 0
	}
}

func (e *Engine) refreshGhost() {
	if !e.ghostDirty {
		return
	}
	p := e.piece
	for !ShouldCommit(e.board, p) {
		p.Pos.Y--
	}
	e.ghost = p.Pos
	e.ghostDirty = false
}

func (e *Engine) spawn(kind PieceKind) {
	e.piece = NewPiece(kind, e.rules.Width, e.rules.Height)
	e.gravityCounter = 0
	e.ghostDirty = true
	if e.lineClear == nil {
		e.checkBlockOut()
	}
}

// checkBlockOut tops out when the waiting piece overlaps the stack. While
// a clear is pending the check runs after compaction instead.
func (e *Engine) checkBlockOut() {
	if !Fits(e.board, e.piece.Footprint()) {
		e.topOut()
	}
}

func (e *Engine) topOut() {
	e.toppedOut = true
	e.emit("topped out", "score", e.score, "lines", e.lines, "level", e.level)
}

func (e *Engine) lockedOut(fp Footprint) bool {
	if e.piece.Pos == e.piece.Spawn {
		return true
	}
	for _, p := range fp {
		if p.Y >= e.rules.Height {
			return true
		}
	}
	return false
}

func (e *Engine) commit() {
	p := e.piece
	fp := p.Footprint()
	if e.lockedOut(fp) {
		e.topOut()
		return
	}

	e.board.Place(fp[:], Block{Kind: p.Kind, Color: e.rules.Colors[p.Kind]})
	e.stats[p.Kind]++
	tspin := p.LastRotated && IsTSpin(e.board, p)
	e.emit("piece locked", "piece", p.Kind.String(), "x", p.Pos.X, "y", p.Pos.Y, "rotation", int(p.Rotation))

	rows := e.board.CompletedLines()
	if len(rows) > 0 {
		points := e.rules.Scoring.Score(len(rows), tspin)
		e.score += points
		e.lines += len(rows)
		e.lineClear = &LineClear{Rows: rows}
		e.popup = &ScorePopup{Points: points, Lines: len(rows), TSpin: tspin}
		e.emit("lines cleared", "count", len(rows), "points", points, "tspin", tspin, "score", e.score)

		if lvl := e.rules.Levels.Level(e.lines); lvl != e.level {
			e.level = lvl
			e.emit("level up", "level", lvl, "lines", e.lines)
		}
	} else if tspin {
		e.emit("tspin", "piece", p.Kind.String(), "lines", 0)
	}

	e.spawn(e.queue.Next())
}

func (e *Engine) emit(name string, attrs ...any) {
	e.events = append(e.events, core.NewEvent(name, attrs...))
}

// ToggleDebug flips the debug overlay flag outside of play.
func (e *Engine) ToggleDebug() { e.debug = !e.debug }

// Board returns the well. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Piece returns a copy of the active piece.
func (e *Engine) Piece() Piece { return e.piece }

// Ghost returns the lowest resting position of the active piece.
func (e *Engine) Ghost() Point {
	e.refreshGhost()
	return e.ghost
}

// HoldKind returns the held kind, KindNone when the slot is empty.
func (e *Engine) HoldKind() PieceKind { return e.hold }

// NextKinds returns the visible upcoming kinds, front first.
func (e *Engine) NextKinds() []PieceKind { return e.queue.Peek() }

// Score returns the total points.
func (e *Engine) Score() int { return e.score }

// Lines returns the total lines cleared.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Stats returns how many pieces of a kind have been placed.
func (e *Engine) Stats(k PieceKind) int { return e.stats[k] }

// ToppedOut reports whether the game has ended.
func (e *Engine) ToppedOut() bool { return e.toppedOut }

// LineClear returns the pending line clear, or nil.
func (e *Engine) LineClear() *LineClear { return e.lineClear }

// Popup returns the active score popup, or nil.
func (e *Engine) Popup() *ScorePopup { return e.popup }

// Debug reports whether the debug overlay is on.
func (e *Engine) Debug() bool { return e.debug }

// SoftDropping reports whether soft drop is engaged.
func (e *Engine) SoftDropping() bool { return e.softDrop }

// GravityCounter returns ticks accumulated toward the next fall.
func (e *Engine) GravityCounter() int { return e.gravityCounter }

// Frame returns the number of ticks simulated since the last restart.
func (e *Engine) Frame() uint64 { return e.frame }

// Rules returns the engine's parameters.
func (e *Engine) Rules() Rules { return e.rules }
