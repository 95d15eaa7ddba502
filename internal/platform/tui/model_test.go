package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func newTestModel(t *testing.T) (Model, *tetris.Game) {
	t.Helper()
	game := tetris.NewWithConfig(config.DefaultTetrisConfig())
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m, game
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStartsAndPauses(t *testing.T) {
	m, game := newTestModel(t)
	if !strings.Contains(m.View(), "T E T R I S") {
		t.Error("title screen expected before the first tick")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if game.Phase() != tetris.PhasePlaying {
		t.Fatalf("phase = %v, want playing", game.Phase())
	}

	m, _ = send(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back is ignored while playing")
	}

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg(time.Now()))
	if !m.gameState.Paused {
		t.Fatal("game should be paused")
	}

	m, _ = send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back from pause should return to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model renders nothing")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg(time.Now()))

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.Phase() != tetris.PhasePlaying {
		t.Error("resize should not reset a running game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}
