package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	SoftDrop  key.Binding
	HardDrop  key.Binding
	Hold      key.Binding
	Confirm   key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Debug     key.Binding
	Back      key.Binding
	Quit      key.Binding

	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.RotateCW, k.HardDrop, k.Hold, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.RotateCW, k.RotateCCW, k.Hold},
		{k.Pause, k.Restart, k.Debug, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("up", "x", "w", "k"),
			key.WithHelp("↑/x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z", "ctrl+z"),
			key.WithHelp("z", "rotate ccw"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		Hold: key.NewBinding(
			key.WithKeys("c", "shift+left", "shift+right"),
			key.WithHelp("c", "hold"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Debug: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "debug"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a game action.
// Returns core.ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.RotateCW, core.ActionRotateCW},
		{k.RotateCCW, core.ActionRotateCCW},
		{k.SoftDrop, core.ActionSoftDrop},
		{k.HardDrop, core.ActionHardDrop},
		{k.Hold, core.ActionHold},
		{k.Confirm, core.ActionConfirm},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Debug, core.ActionDebug},
		{k.Back, core.ActionBack},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// Terminals send no key-up events, so a key counts as held until no press
// or autorepeat arrived for a while. The first press waits for the
// terminal's initial repeat delay; once repeats flow, gaps are short and
// the shorter window ends the hold soon after release.
//
// DefaultInitialHoldWindow stays under the autoshift delay (18 ticks at
// 60 tps, 300ms) so a single tap never auto-repeats. Terminals whose
// initial repeat delay is longer than it see the key released and then
// pressed again on the first repeat, so autoshift starts over from there.
const (
	DefaultInitialHoldWindow = 250 * time.Millisecond
	DefaultHoldWindow        = 100 * time.Millisecond
)

type heldKey struct {
	last      time.Time
	repeating bool
}

// heldKeys approximates key-up events from press and autorepeat timing.
type heldKeys struct {
	initial time.Duration
	repeat  time.Duration
	keys    map[core.Action]heldKey
}

func newHeldKeys(initial, repeat time.Duration) *heldKeys {
	return &heldKeys{
		initial: initial,
		repeat:  repeat,
		keys:    make(map[core.Action]heldKey),
	}
}

func (h *heldKeys) window(k heldKey) time.Duration {
	if k.repeating {
		return h.repeat
	}
	return h.initial
}

// Press records a press or autorepeat of an action's key. A press while
// the key is still held is taken as an autorepeat.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	k, ok := h.keys[a]
	h.keys[a] = heldKey{
		last:      now,
		repeating: ok && now.Sub(k.last) <= h.window(k),
	}
}

// Apply marks every still-held action on the frame and forgets stale ones.
func (h *heldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, k := range h.keys {
		if now.Sub(k.last) > h.window(k) {
			delete(h.keys, a)
			continue
		}
		frame.SetHeld(a)
	}
}

// Reset releases all keys.
func (h *heldKeys) Reset() {
	clear(h.keys)
}
