// Package tetris implements a deterministic falling-block puzzle game:
// the piece catalog, board, collision queries, the Super Rotation System,
// and the per-tick lock/line-clear state machine.
package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PieceKind identifies one of the seven tetrominoes.
type PieceKind uint8

const (
	KindNone PieceKind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// AllKinds lists the playable kinds in catalog order.
var AllKinds = [...]PieceKind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// kindCount sizes arrays indexed by PieceKind, KindNone included.
const kindCount = int(KindZ) + 1

func (k PieceKind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "-"
	}
}

// ParseKind converts a single-letter name to a kind.
func ParseKind(s string) (PieceKind, bool) {
	for _, k := range AllKinds {
		if k.String() == s {
			return k, true
		}
	}
	return KindNone, false
}

// RotationState is one of four orientations: 0 spawn, 1 CW, 2 180, 3 CCW.
type RotationState uint8

// CW returns the state after a clockwise turn.
func (r RotationState) CW() RotationState { return (r + 1) % 4 }

// CCW returns the state after a counter-clockwise turn.
func (r RotationState) CCW() RotationState { return (r + 3) % 4 }

// Point is an integer board coordinate. Y grows upward; row 0 is the floor.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Matrix is a square occupancy grid of size 3 or 4. Row 0 is the top.
type Matrix struct {
	Size  int
	Cells [4][4]bool
}

// RotateCW turns the matrix a quarter turn clockwise.
func (m Matrix) RotateCW() Matrix {
	out := Matrix{Size: m.Size}
	n := m.Size
	for r := range n {
		for c := range n {
			out.Cells[c][n-1-r] = m.Cells[r][c]
		}
	}
	return out
}

// RotateCCW turns the matrix a quarter turn counter-clockwise.
func (m Matrix) RotateCCW() Matrix {
	out := Matrix{Size: m.Size}
	n := m.Size
	for r := range n {
		for c := range n {
			out.Cells[n-1-c][r] = m.Cells[r][c]
		}
	}
	return out
}

func parseMatrix(rows ...string) Matrix {
	m := Matrix{Size: len(rows)}
	for r, row := range rows {
		for c, ch := range row {
			m.Cells[r][c] = ch == 'X'
		}
	}
	return m
}

var spawnShapes = [kindCount]Matrix{
	KindI: parseMatrix("....", "XXXX", "....", "...."),
	KindJ: parseMatrix("X..", "XXX", "..."),
	KindL: parseMatrix("..X", "XXX", "..."),
	KindO: parseMatrix(".XX.", ".XX.", "....", "...."),
	KindS: parseMatrix(".XX", "XX.", "..."),
	KindT: parseMatrix(".X.", "XXX", "..."),
	KindZ: parseMatrix("XX.", ".XX", "..."),
}

var kindColors = [kindCount]core.Color{
	KindI: core.ColorCyan,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
	KindO: core.ColorYellow,
	KindS: core.ColorGreen,
	KindT: core.ColorMagenta,
	KindZ: core.ColorRed,
}

// Color returns the catalog color of the kind.
func (k PieceKind) Color() core.Color {
	if int(k) >= kindCount {
		return core.ColorDefault
	}
	return kindColors[k]
}

// Width returns the side of the kind's bounding matrix.
func (k PieceKind) Width() int {
	return spawnShapes[k].Size
}

// MatrixFor returns the occupancy matrix of a kind in a rotation state.
// The O piece has a single orientation.
func MatrixFor(kind PieceKind, rot RotationState) Matrix {
	m := spawnShapes[kind]
	if kind == KindO {
		return m
	}
	for range rot % 4 {
		m = m.RotateCW()
	}
	return m
}

// Footprint is the set of absolute cells a piece covers. Every tetromino has four.
type Footprint [4]Point

// FootprintAt maps matrix cell (r, c) to board cell (pos.X+c, pos.Y-r).
func FootprintAt(kind PieceKind, rot RotationState, pos Point) Footprint {
	var fp Footprint
	m := MatrixFor(kind, rot)
	i := 0
	for r := range m.Size {
		for c := range m.Size {
			if m.Cells[r][c] && i < len(fp) {
				fp[i] = Point{X: pos.X + c, Y: pos.Y - r}
				i++
			}
		}
	}
	return fp
}

// SpawnPosition centers a kind horizontally at the top row of the well.
func SpawnPosition(kind PieceKind, wellW, wellH int) Point {
	return Point{X: (wellW - kind.Width()) / 2, Y: wellH - 1}
}

// Piece is the active falling unit.
type Piece struct {
	Kind     PieceKind
	Rotation RotationState
	Pos      Point
	Spawn    Point

	Locking      bool // resting and eligible to lock
	SonicLock    bool // hard dropped, commits on contact
	Held         bool // already swapped through hold
	LockCounter  int
	EntryCounter int
	LastRotated  bool // last successful movement was a rotation
}

// NewPiece creates a piece of the given kind at its spawn position.
func NewPiece(kind PieceKind, wellW, wellH int) Piece {
	spawn := SpawnPosition(kind, wellW, wellH)
	return Piece{Kind: kind, Pos: spawn, Spawn: spawn}
}

// Footprint returns the cells the piece currently covers.
func (p Piece) Footprint() Footprint {
	return FootprintAt(p.Kind, p.Rotation, p.Pos)
}

// Matrix returns the piece's current occupancy matrix.
func (p Piece) Matrix() Matrix {
	return MatrixFor(p.Kind, p.Rotation)
}

// ResetTransform returns the piece to spawn orientation and position.
func (p *Piece) ResetTransform() {
	*p = Piece{Kind: p.Kind, Pos: p.Spawn, Spawn: p.Spawn}
}
