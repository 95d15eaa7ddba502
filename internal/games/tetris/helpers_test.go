package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// sequence is a Randomizer that cycles through a fixed list.
type sequence struct {
	kinds []PieceKind
	i     int
}

func (s *sequence) Next() PieceKind {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return k
}

func fixedSequence(kinds ...PieceKind) *sequence {
	return &sequence{kinds: kinds}
}

// testRules are the default rules without the spawn beat, so intents act
// on the first tick.
func testRules() Rules {
	r := DefaultRules()
	r.EntryDelay = 0
	return r
}

func newTestEngine(t *testing.T, rules Rules, kinds ...PieceKind) *Engine {
	t.Helper()
	require.NotEmpty(t, kinds)
	return NewEngine(rules, fixedSequence(kinds...))
}

// fillRow places filler blocks across row y, skipping the given columns.
func fillRow(b *Board, y int, except ...int) {
	skip := map[int]bool{}
	for _, x := range except {
		skip[x] = true
	}
	for x := range b.Width() {
		if !skip[x] {
			b.Place([]Point{{X: x, Y: y}}, Block{Kind: KindJ, Color: KindJ.Color()})
		}
	}
}

// tickUntil runs empty ticks until cond holds, failing after limit ticks.
func tickUntil(t *testing.T, e *Engine, limit int, cond func() bool) {
	t.Helper()
	for range limit {
		if cond() {
			return
		}
		e.Tick(0)
	}
	require.True(t, cond(), "condition not reached within %d ticks", limit)
}

func hasEvent(events []core.Event, name string) bool {
	for _, ev := range events {
		if ev.Name == name {
			return true
		}
	}
	return false
}

// setPiece replaces the active piece, already past its entry delay.
func setPiece(e *Engine, kind PieceKind, rot RotationState, pos Point) {
	p := NewPiece(kind, e.rules.Width, e.rules.Height)
	p.Rotation = rot
	p.Pos = pos
	p.EntryCounter = e.rules.EntryDelay
	e.piece = p
	e.ghostDirty = true
}
