package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.SetHeld(a)
	}
	return in
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := config.DefaultTetrisConfig()
	cfg.Timing.EntryDelay = 0
	g := NewWithConfig(cfg)
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("tetris"))
	g, err := registry.Create("tetris")
	require.NoError(t, err)
	assert.Equal(t, "Tetris", g.Title())
}

func TestPhaseFlow(t *testing.T) {
	g := newTestGame(t, 1)
	assert.Equal(t, PhaseTitle, g.Phase())

	res := g.Step(core.NewInputFrame())
	assert.Equal(t, PhaseTitle, g.Phase(), "title waits for confirm")
	assert.Empty(t, res.Events)

	res = g.Step(press(core.ActionConfirm))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.True(t, hasEvent(res.Events, "game started"))

	res = g.Step(press(core.ActionPause))
	assert.Equal(t, PhasePaused, g.Phase())
	assert.True(t, res.State.Paused)
	assert.True(t, hasEvent(res.Events, "paused"))

	frame := g.Engine().Frame()
	g.Step(core.NewInputFrame())
	assert.Equal(t, frame, g.Engine().Frame(), "paused game does not tick")

	res = g.Step(press(core.ActionPause))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.True(t, hasEvent(res.Events, "resumed"))

	res = g.Step(press(core.ActionRestart))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.True(t, hasEvent(res.Events, "restart"))
}

func TestTopOutPhase(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))
	for y := range 20 {
		fillRow(g.Engine().board, y, 9)
	}

	res := g.Step(press(core.ActionHardDrop))

	assert.Equal(t, PhaseToppedOut, g.Phase())
	assert.True(t, res.State.GameOver)
	assert.True(t, hasEvent(res.Events, "topped out"))

	res = g.Step(press(core.ActionConfirm))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.False(t, res.State.GameOver)
	assert.True(t, hasEvent(res.Events, "restart"))
	assert.False(t, g.Engine().Board().IsOccupied(0, 0))
}

func TestHeldShiftAutoRepeats(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))
	x := g.Engine().Piece().Pos.X

	g.Step(press(core.ActionLeft))
	assert.Equal(t, x-1, g.Engine().Piece().Pos.X)

	for range 17 {
		g.Step(held(core.ActionLeft))
	}
	assert.Equal(t, x-1, g.Engine().Piece().Pos.X, "no repeat before the delay")

	g.Step(held(core.ActionLeft))
	assert.Equal(t, x-2, g.Engine().Piece().Pos.X)
}

func TestSoftDropFollowsHeldKey(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))

	g.Step(press(core.ActionSoftDrop))
	assert.True(t, g.Engine().SoftDropping())
	g.Step(held(core.ActionSoftDrop))
	assert.True(t, g.Engine().SoftDropping())
	g.Step(core.NewInputFrame())
	assert.False(t, g.Engine().SoftDropping())
}

func runScript(g *Game, ticks int) {
	script := []core.Action{
		core.ActionConfirm, core.ActionLeft, core.ActionRotateCW, core.ActionHardDrop,
		core.ActionRight, core.ActionRight, core.ActionHold, core.ActionRotateCCW, core.ActionHardDrop,
	}
	for i := range ticks {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.Set(script[(i/7)%len(script)])
		}
		g.Step(in)
	}
}

func TestDeterminism(t *testing.T) {
	a := newTestGame(t, 12345)
	b := newTestGame(t, 12345)

	runScript(a, 2000)
	runScript(b, 2000)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestRenderTitle(t *testing.T) {
	g := newTestGame(t, 1)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	assert.Contains(t, scr.String(), "T E T R I S")
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"HOLD", "NEXT", "SCORE", "LEVEL", "LINES", "STATS"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "T E T R I S")
}

func TestRenderWindowTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultTetrisConfig())
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = 30, 10
	g.Reset(rc)

	res := g.Step(press(core.ActionConfirm))
	assert.Equal(t, PhaseTitle, g.Phase())
	assert.False(t, res.State.GameOver)

	scr := core.NewScreen(30, 10)
	g.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "Window too small")
	assert.True(t, strings.Contains(out, "Need 48x24"))
}

func TestDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { difficultyPreset = "" })

	SetDifficultyPreset("hard")
	g := New()
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 10, g.Engine().Level())

	SetDifficultyPreset("")
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 5, g.Engine().Level(), "no flag plays normal")

	SetDifficultyPreset("bogus")
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 0, g.Engine().Level())
}

func TestResizeKeepsGame(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionHardDrop))
	placed := g.Snapshot().Stats

	g.Resize(20, 10)
	scr := core.NewScreen(20, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "too small")

	g.Resize(100, 40)
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, placed, g.Snapshot().Stats)
}

func TestRenderSpawnZoneBlocks(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))
	blk := Block{Kind: KindZ, Color: core.ColorRed}
	g.Engine().board.Place([]Point{{X: 0, Y: 20}, {X: 9, Y: 21}}, blk)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	l := g.layout
	for _, p := range []Point{{X: 0, Y: 20}, {X: 9, Y: 21}} {
		cell := scr.GetCell(l.colX(p.X), l.rowY(p.Y))
		assert.Equal(t, g.theme.Glyphs[KindZ], cell.Rune, "block at %v", p)
		assert.Equal(t, core.ColorRed, cell.Color, "block at %v", p)
	}
	assert.Equal(t, ' ', scr.Get(l.colX(1)+1, l.rowY(20)), "empty spawn-zone cells stay blank")
}
