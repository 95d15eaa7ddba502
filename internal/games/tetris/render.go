package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	sidePanelW   = 12
	panelGap     = 1
	maxHidden    = 2 // spawn-zone rows drawn above the well
	previewPitch = 3
	infoRows     = 6
)

var lineNames = [...]string{"", "SINGLE", "DOUBLE", "TRIPLE", "TETRIS"}

// layout places the hold box, well and next box on screen.
type layout struct {
	fits       bool
	minW, minH int

	hold    core.Rect
	well    core.Rect
	next    core.Rect
	visible int
	hidden  int
	shown   int // preview pieces that fit in the next box
}

func computeLayout(well config.WellConfig, screenW, screenH int) layout {
	l := layout{
		visible: well.VisibleHeight,
		hidden:  min(well.Height-well.VisibleHeight, maxHidden),
	}
	wellW := well.Width*2 + 2
	wellH := well.VisibleHeight + 2
	l.minW = sidePanelW + panelGap + wellW + panelGap + sidePanelW
	l.minH = l.hidden + wellH
	l.fits = screenW >= l.minW && screenH >= l.minH

	ox := max(0, (screenW-l.minW)/2)
	oy := max(0, (screenH-l.minH)/2) + l.hidden

	l.hold = core.NewRect(ox, oy, sidePanelW, 4)
	l.well = core.NewRect(ox+sidePanelW+panelGap, oy, wellW, wellH)
	l.shown = max(0, (wellH-infoRows-1)/previewPitch)
	l.next = core.NewRect(l.well.Right()+panelGap, oy, sidePanelW, l.shown*previewPitch+1)
	return l
}

// rowY maps a board row to a screen row. Rows above the visible well are
// drawn above its top border.
func (l layout) rowY(y int) int {
	if y < l.visible {
		return l.well.Y + l.visible - y
	}
	return l.well.Y - 1 - (y - l.visible)
}

func (l layout) colX(x int) int {
	return l.well.X + 1 + 2*x
}

func (l layout) drawable(y int) bool {
	return y >= 0 && y < l.visible+l.hidden
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.engine == nil {
		return
	}

	g.renderWell(dst)
	g.renderHold(dst)
	g.renderStats(dst)
	g.renderNext(dst)
	g.renderInfo(dst)
	g.renderPopup(dst)
	if g.engine.Debug() {
		g.renderDebug(dst)
	}
	g.renderOverlay(dst)
}

func (g *Game) drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	if !g.layout.drawable(y) {
		return
	}
	sx, sy := g.layout.colX(x), g.layout.rowY(y)
	dst.SetColored(sx, sy, r, c)
	dst.SetColored(sx+1, sy, r, c)
}

func (g *Game) renderWell(dst *core.Screen) {
	e := g.engine
	l := g.layout
	b := e.Board()
	dst.DrawBoxColored(l.well, core.ColorGray)

	flashing := map[int]bool{}
	flashOn := false
	if lc := e.LineClear(); lc != nil {
		for _, y := range lc.Rows {
			flashing[y] = true
		}
		flashOn = (lc.Counter/4)%2 == 0
	}

	// locked blocks in the spawn zone show above the border
	for y := range l.visible + l.hidden {
		for x := range b.Width() {
			blk := b.At(x, y)
			switch {
			case flashing[y] && flashOn:
				g.drawCell(dst, x, y, '▓', core.ColorBrightWhite)
			case blk.Empty():
				if y < l.visible {
					dst.SetColored(l.colX(x)+1, l.rowY(y), '·', core.ColorGray)
				}
			default:
				g.drawCell(dst, x, y, g.theme.Glyphs[blk.Kind], blk.Color)
			}
		}
	}

	if e.ToppedOut() || e.LineClear() != nil {
		g.renderPiece(dst, e.Piece())
		return
	}
	p := e.Piece()
	if ghost := e.Ghost(); ghost != p.Pos {
		gp := p
		gp.Pos = ghost
		for _, c := range gp.Footprint() {
			if c.Y < l.visible {
				g.drawCell(dst, c.X, c.Y, g.theme.Ghost, g.theme.Colors[p.Kind])
			}
		}
	}
	g.renderPiece(dst, p)
}

func (g *Game) renderPiece(dst *core.Screen, p Piece) {
	for _, c := range p.Footprint() {
		g.drawCell(dst, c.X, c.Y, g.theme.Glyphs[p.Kind], g.theme.Colors[p.Kind])
	}
}

// drawPreview draws a kind's spawn rows inside a panel, centered.
func (g *Game) drawPreview(dst *core.Screen, kind PieceKind, inner core.Rect, y int, color core.Color) {
	if kind == KindNone {
		return
	}
	m := MatrixFor(kind, 0)
	x0 := inner.X + (inner.W-2*m.Size)/2
	glyph := g.theme.Glyphs[kind]
	for r := range min(m.Size, 2) {
		for c := range m.Size {
			if m.Cells[r][c] {
				dst.SetColored(x0+2*c, y+r, glyph, color)
				dst.SetColored(x0+2*c+1, y+r, glyph, color)
			}
		}
	}
}

func (g *Game) panel(dst *core.Screen, r core.Rect, title string) core.Rect {
	dst.DrawBoxColored(r, core.ColorGray)
	dst.DrawTextColored(r.X+2, r.Y, " "+title+" ", core.ColorWhite)
	return r.Inner()
}

func (g *Game) renderHold(dst *core.Screen) {
	inner := g.panel(dst, g.layout.hold, "HOLD")
	kind := g.engine.HoldKind()
	color := g.theme.Colors[kind]
	if g.engine.Piece().Held {
		color = core.ColorGray
	}
	g.drawPreview(dst, kind, inner, inner.Y, color)
}

func (g *Game) renderStats(dst *core.Screen) {
	x := g.layout.hold.X + 1
	y := g.layout.hold.Bottom() + 1
	dst.DrawTextColored(x, y, "STATS", core.ColorWhite)
	for i, k := range AllKinds {
		row := y + 1 + i
		dst.SetColored(x, row, g.theme.Glyphs[k], g.theme.Colors[k])
		dst.DrawTextColored(x+2, row, fmt.Sprintf("%s %5d", k, g.engine.Stats(k)), core.ColorGray)
	}
}

func (g *Game) renderNext(dst *core.Screen) {
	l := g.layout
	if l.shown == 0 {
		return
	}
	inner := g.panel(dst, l.next, "NEXT")
	for i, k := range g.engine.NextKinds() {
		if i >= l.shown {
			break
		}
		g.drawPreview(dst, k, inner, inner.Y+i*previewPitch, g.theme.Colors[k])
	}
}

func (g *Game) renderInfo(dst *core.Screen) {
	x := g.layout.next.X + 1
	y := g.layout.next.Bottom()
	rows := []struct {
		label string
		value int
	}{
		{"SCORE", g.engine.Score()},
		{"LEVEL", g.engine.Level()},
		{"LINES", g.engine.Lines()},
	}
	for i, r := range rows {
		dst.DrawTextColored(x, y+2*i, r.label, core.ColorGray)
		dst.DrawTextColored(x, y+2*i+1, fmt.Sprintf("%d", r.value), core.ColorBrightWhite)
	}
}

func (g *Game) renderPopup(dst *core.Screen) {
	p := g.engine.Popup()
	if p == nil {
		return
	}
	label := ""
	if p.Lines < len(lineNames) {
		label = lineNames[p.Lines]
	}
	if p.TSpin {
		label = "T-SPIN " + label
	}
	well := g.layout.well.Inner()
	color := core.ColorBrightYellow
	if p.TSpin {
		color = core.ColorBrightMagenta
	}
	centerText(dst, well, well.Y+1, label, color)
	centerText(dst, well, well.Y+2, fmt.Sprintf("+%d", p.Points), color)
}

func (g *Game) renderDebug(dst *core.Screen) {
	e := g.engine
	p := e.Piece()
	x := g.layout.hold.X + 1
	y := g.layout.hold.Bottom() + 2 + len(AllKinds)
	lines := []string{
		fmt.Sprintf("pos %d,%d r%d", p.Pos.X, p.Pos.Y, p.Rotation),
		fmt.Sprintf("lock %d/%d", p.LockCounter, e.Rules().LockDelay),
		fmt.Sprintf("entry %d/%d", p.EntryCounter, e.Rules().EntryDelay),
		fmt.Sprintf("grav %d/%d", e.GravityCounter(), e.gravityThreshold()),
		fmt.Sprintf("f %d", e.Frame()),
	}
	for i, s := range lines {
		dst.DrawTextColored(x, y+i, s, core.ColorGreen)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	var lines []string
	color := core.ColorBrightWhite
	switch g.phase {
	case PhaseTitle:
		lines = []string{"T E T R I S", "", "Enter  start", "←→  move", "↑ X  rotate", "Z  rotate ccw", "↓  soft drop", "Space hard drop", "C  hold", "P  pause"}
		color = core.ColorBrightCyan
	case PhasePaused:
		lines = []string{"PAUSED", "", "P/Enter resume", "R  restart", "Q  quit"}
		color = core.ColorBrightYellow
	case PhaseToppedOut:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score %d", g.engine.Score()), "", "Enter  again", "Q  quit"}
		color = core.ColorBrightRed
	default:
		return
	}

	well := g.layout.well.Inner()
	top := well.Y + (well.H-len(lines))/2
	dst.DrawRect(core.NewRect(well.X, top-1, well.W, len(lines)+2), ' ')
	for i, s := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		centerText(dst, well, top+i, s, c)
	}
}

func centerText(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-utf8.RuneCountInString(text))/2
	dst.DrawTextColored(x, y, text, c)
}
