package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestNewEngineSpawnsFirstPiece(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT, KindZ, KindI)

	p := e.Piece()
	assert.Equal(t, KindT, p.Kind)
	assert.Equal(t, Point{X: 3, Y: 21}, p.Pos)
	assert.Equal(t, RotationState(0), p.Rotation)
	assert.Equal(t, KindNone, e.HoldKind())
	assert.Equal(t, []PieceKind{KindZ, KindI, KindT, KindZ, KindI}, e.NextKinds())
	assert.Equal(t, 0, e.Level())
}

func TestGhostOnEmptyBoard(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT)
	assert.Equal(t, Point{X: 3, Y: 1}, e.Ghost())
}

func TestHardDropCommitsSameTick(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT, KindZ)

	events := e.Tick(IntentHardDrop)

	assert.True(t, hasEvent(events, "piece locked"))
	assert.Equal(t, 1, e.Stats(KindT))
	assert.True(t, e.Board().IsOccupied(3, 0))
	assert.True(t, e.Board().IsOccupied(4, 0))
	assert.True(t, e.Board().IsOccupied(5, 0))
	assert.True(t, e.Board().IsOccupied(4, 1))
	assert.Equal(t, KindZ, e.Piece().Kind)
	assert.False(t, e.ToppedOut())
}

func TestGravityFollowsLevelTable(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT)
	start := e.Piece().Pos.Y

	for range 47 {
		e.Tick(0)
	}
	assert.Equal(t, start, e.Piece().Pos.Y)
	e.Tick(0)
	assert.Equal(t, start-1, e.Piece().Pos.Y)
}

func TestSoftDropUsesFasterGravity(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT)
	start := e.Piece().Pos.Y

	e.Tick(IntentSoftDropOn)
	for range 9 {
		e.Tick(0)
	}
	assert.True(t, e.SoftDropping())
	assert.Equal(t, start-2, e.Piece().Pos.Y)

	e.Tick(IntentSoftDropOff)
	assert.False(t, e.SoftDropping())
}

func TestLineClear(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, rules, KindI, KindO)
	fillRow(e.board, 0, 9)
	setPiece(e, KindI, 1, Point{X: 7, Y: 10})

	events := e.Tick(IntentHardDrop)

	require.True(t, hasEvent(events, "lines cleared"))
	require.NotNil(t, e.LineClear())
	assert.Equal(t, []int{0}, e.LineClear().Rows)
	assert.Equal(t, 80, e.Score())
	assert.Equal(t, 1, e.Lines())
	require.NotNil(t, e.Popup())
	assert.Equal(t, 80, e.Popup().Points)
	assert.False(t, e.Active(), "piece waits for the clear")

	// Rows stay in place until the delay runs out
	assert.True(t, e.Board().IsOccupied(0, 0))
	for range rules.LineClearDelay {
		e.Tick(0)
	}
	assert.Nil(t, e.LineClear())
	assert.False(t, e.Board().IsOccupied(0, 0))
	for y := range 3 {
		assert.True(t, e.Board().IsOccupied(9, y), "row %d", y)
	}
	assert.False(t, e.Board().IsOccupied(9, 3))
}

func TestIntentsIgnoredDuringLineClear(t *testing.T) {
	e := newTestEngine(t, testRules(), KindI, KindO)
	fillRow(e.board, 0, 9)
	setPiece(e, KindI, 1, Point{X: 7, Y: 10})
	e.Tick(IntentHardDrop)

	pos := e.Piece().Pos
	e.Tick(IntentMoveLeft)
	assert.Equal(t, pos, e.Piece().Pos)
}

func TestTSpinSingle(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT, KindO)
	fillRow(e.board, 0, 4)
	fillRow(e.board, 1, 0, 3, 4, 5)
	setPiece(e, KindT, 1, Point{X: 3, Y: 2})

	e.Tick(IntentRotateCW)
	require.Equal(t, RotationState(2), e.Piece().Rotation)
	require.True(t, e.Piece().LastRotated)

	tickUntil(t, e, 100, func() bool { return e.Stats(KindT) == 1 })

	assert.Equal(t, 880, e.Score())
	require.NotNil(t, e.Popup())
	assert.True(t, e.Popup().TSpin)
}

func TestDroppedTIsNotTSpin(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT, KindO)
	fillRow(e.board, 0, 4)
	fillRow(e.board, 1, 0, 3, 4, 5)
	setPiece(e, KindT, 2, Point{X: 3, Y: 3})

	tickUntil(t, e, 200, func() bool { return e.Stats(KindT) == 1 })

	assert.Equal(t, 80, e.Score())
	require.NotNil(t, e.Popup())
	assert.False(t, e.Popup().TSpin)
}

func TestHold(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT, KindZ, KindI, KindO)

	events := e.Tick(IntentHold)
	assert.True(t, hasEvent(events, "hold"))
	assert.Equal(t, KindT, e.HoldKind())
	assert.Equal(t, KindZ, e.Piece().Kind)
	assert.True(t, e.Piece().Held)

	events = e.Tick(IntentHold)
	assert.False(t, hasEvent(events, "hold"), "hold is once per piece")
	assert.Equal(t, KindZ, e.Piece().Kind)

	e.Tick(IntentHardDrop)
	require.Equal(t, KindI, e.Piece().Kind)
	assert.False(t, e.Piece().Held)

	e.Tick(IntentHold)
	assert.Equal(t, KindI, e.HoldKind())
	p := e.Piece()
	assert.Equal(t, KindT, p.Kind)
	assert.Equal(t, p.Spawn, p.Pos)
	assert.Equal(t, RotationState(0), p.Rotation)
}

func TestTopOutOnSpawnLock(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT)
	for y := range 20 {
		fillRow(e.board, y, 9)
	}

	events := e.Tick(IntentHardDrop)

	assert.True(t, hasEvent(events, "topped out"))
	assert.True(t, e.ToppedOut())
	assert.Zero(t, e.Stats(KindT))
	assert.Empty(t, e.Tick(IntentHardDrop), "a topped out engine stays put")
}

func TestLockBelowSpawnIsNotTopOut(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT)
	for y := range 18 {
		fillRow(e.board, y, 9)
	}

	events := e.Tick(IntentHardDrop)

	assert.False(t, hasEvent(events, "topped out"))
	assert.False(t, e.ToppedOut())
	assert.Equal(t, 1, e.Stats(KindT))
}

func TestLockDelay(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, rules, KindT)
	setPiece(e, KindT, 0, Point{X: 3, Y: 1})

	for range rules.LockDelay {
		e.Tick(0)
	}
	assert.True(t, e.Piece().Locking)
	assert.Zero(t, e.Stats(KindT))

	e.Tick(0)
	assert.Equal(t, 1, e.Stats(KindT))
}

func TestRotationResetsLockDelay(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, rules, KindT)
	setPiece(e, KindT, 2, Point{X: 3, Y: 2})

	for range rules.LockDelay {
		e.Tick(0)
	}
	e.Tick(IntentRotateCW)
	require.Equal(t, RotationState(3), e.Piece().Rotation)
	assert.Zero(t, e.Piece().LockCounter)
	assert.Zero(t, e.Stats(KindT))

	for range rules.LockDelay - 1 {
		e.Tick(0)
	}
	assert.Zero(t, e.Stats(KindT))
	e.Tick(0)
	assert.Equal(t, 1, e.Stats(KindT))
}

func TestEntryDelayIgnoresIntents(t *testing.T) {
	rules := DefaultRules()
	require.Greater(t, rules.EntryDelay, 1)
	e := newTestEngine(t, rules, KindT)
	spawn := e.Piece().Pos

	e.Tick(IntentMoveLeft)
	assert.Equal(t, spawn, e.Piece().Pos)
	assert.False(t, e.Active())

	tickUntil(t, e, rules.EntryDelay, e.Active)
	e.Tick(IntentMoveLeft)
	assert.Equal(t, spawn.X-1, e.Piece().Pos.X)
}

func TestKickExhaustedEvent(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT)
	fillRow(e.board, 0, 3, 4, 5)
	fillRow(e.board, 1, 4)
	for y := 2; y <= 4; y++ {
		fillRow(e.board, y)
	}
	setPiece(e, KindT, 0, Point{X: 3, Y: 1})

	events := e.Tick(IntentRotateCW)

	assert.True(t, hasEvent(events, "kick exhausted"))
	assert.Equal(t, RotationState(0), e.Piece().Rotation)
	assert.Equal(t, Point{X: 3, Y: 1}, e.Piece().Pos)
}

func TestWallBlocksShift(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT)
	for range 10 {
		e.Tick(IntentMoveLeft)
	}
	assert.Zero(t, e.Piece().Pos.X, "T is flush with the left wall")
	assert.False(t, e.CanMoveLeft())
	assert.True(t, e.CanMoveRight())
}

func TestLevelUp(t *testing.T) {
	e := newTestEngine(t, testRules(), KindI, KindO)
	e.lines = 9
	fillRow(e.board, 0, 9)
	setPiece(e, KindI, 1, Point{X: 7, Y: 10})

	events := e.Tick(IntentHardDrop)

	assert.True(t, hasEvent(events, "level up"))
	assert.Equal(t, 1, e.Level())
}

func TestRestart(t *testing.T) {
	e := newTestEngine(t, testRules(), KindI, KindO)
	fillRow(e.board, 0, 9)
	setPiece(e, KindI, 1, Point{X: 7, Y: 10})
	e.Tick(IntentHardDrop)
	e.Tick(IntentHold)
	require.Positive(t, e.Score())

	e.Restart()

	assert.Zero(t, e.Score())
	assert.Zero(t, e.Lines())
	assert.Nil(t, e.LineClear())
	assert.Nil(t, e.Popup())
	assert.Equal(t, KindNone, e.HoldKind())
	assert.Zero(t, e.Frame())
	assert.Empty(t, e.Board().CompletedLines())
	for x := range e.Board().Width() {
		assert.False(t, e.Board().IsOccupied(x, 0))
	}
}

func TestBlockOutOnSpawn(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT, KindI)
	e.board.Place([]Point{{X: 6, Y: 20}}, Block{Kind: KindZ})

	events := e.Tick(IntentHardDrop)

	assert.True(t, hasEvent(events, "piece locked"))
	assert.True(t, hasEvent(events, "topped out"))
	assert.True(t, e.ToppedOut())
}

func TestDebugToggle(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT)
	e.Tick(IntentToggleDebug)
	assert.True(t, e.Debug())
	e.Tick(IntentToggleDebug)
	assert.False(t, e.Debug())
}

func TestClearInSpawnZoneIsNotBlockOut(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, rules, KindI, KindT)
	for y := range 20 {
		fillRow(e.board, y, 0)
	}
	fillRow(e.board, 20, 6, 7, 8, 9)
	setPiece(e, KindI, 0, Point{X: 6, Y: 21})

	events := e.Tick(IntentHardDrop)

	require.True(t, hasEvent(events, "lines cleared"))
	assert.Equal(t, []int{20}, e.LineClear().Rows)
	assert.False(t, hasEvent(events, "topped out"))
	assert.False(t, e.ToppedOut())

	for range rules.LineClearDelay {
		events = e.Tick(0)
		assert.False(t, hasEvent(events, "topped out"))
	}
	assert.Nil(t, e.LineClear())
	assert.False(t, e.ToppedOut())
	assert.True(t, e.Active())
	assert.True(t, Fits(e.Board(), e.Piece().Footprint()))
}

func TestBlockOutAfterClearCompacts(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, rules, KindI, KindT)
	for y := range 20 {
		fillRow(e.board, y, 0)
	}
	fillRow(e.board, 20, 6, 7, 8, 9)
	e.board.Place([]Point{{X: 4, Y: 21}}, Block{Kind: KindZ})
	setPiece(e, KindI, 0, Point{X: 6, Y: 21})

	e.Tick(IntentHardDrop)
	require.NotNil(t, e.LineClear())
	assert.False(t, e.ToppedOut())

	for range rules.LineClearDelay - 1 {
		e.Tick(0)
	}
	assert.False(t, e.ToppedOut())

	// the block above the cleared row drops into the T's spawn cells
	events := e.Tick(0)
	assert.True(t, hasEvent(events, "topped out"))
	assert.True(t, e.ToppedOut())
}

func TestLockOutAboveWell(t *testing.T) {
	e := newTestEngine(t, testRules(), KindT, KindI)
	for y := range 21 {
		e.board.Place([]Point{{X: 1, Y: y}}, Block{Kind: KindJ})
	}
	// one cell at y=22, above the top row
	setPiece(e, KindT, 0, Point{X: 0, Y: 22})
	require.True(t, ShouldCommit(e.Board(), e.Piece()))

	var events []core.Event
	assert.NotPanics(t, func() {
		events = e.Tick(IntentHardDrop)
	})

	assert.True(t, hasEvent(events, "topped out"))
	assert.False(t, hasEvent(events, "piece locked"))
	assert.True(t, e.ToppedOut())
	assert.False(t, e.Board().IsOccupied(0, 21))
	assert.False(t, e.Board().IsOccupied(1, 21))
}

func TestScorePopupTimeout(t *testing.T) {
	rules := testRules()
	e := newTestEngine(t, rules, KindI, KindO)
	fillRow(e.board, 0, 9)
	setPiece(e, KindI, 1, Point{X: 7, Y: 10})

	e.Tick(IntentHardDrop)
	require.NotNil(t, e.Popup())

	for i := range rules.ScorePopup - 1 {
		e.Tick(0)
		require.NotNil(t, e.Popup(), "tick %d", i+1)
	}
	e.Tick(0)
	assert.Nil(t, e.Popup())
}
