package tetris

import (
	"errors"
	"fmt"
)

// ErrKickExhausted is returned when neither the plain rotation nor any
// kick offset produces a legal placement.
var ErrKickExhausted = errors.New("tetris: no kick fits")

// Direction is a rotation direction.
type Direction int

const (
	DirCW Direction = iota
	DirCCW
)

func (d Direction) String() string {
	if d == DirCCW {
		return "ccw"
	}
	return "cw"
}

// Kick tables, indexed by the state rotated from. Offsets are (x, y-up).
var (
	jlstzKicksCW = [4][4]Point{
		{{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 0 -> 1
		{{1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 1 -> 2
		{{1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 2 -> 3
		{{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 3 -> 0
	}
	jlstzKicksCCW = [4][4]Point{
		{{1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 0 -> 3
		{{1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 1 -> 0
		{{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 2 -> 1
		{{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 3 -> 2
	}
	iKicksCW = [4][4]Point{
		{{-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, // 0 -> 1
		{{-1, 0}, {2, 0}, {-1, 2}, {2, -1}}, // 1 -> 2
		{{2, 0}, {-1, 0}, {2, 1}, {-1, -2}}, // 2 -> 3
		{{1, 0}, {-2, 0}, {1, -2}, {-2, 1}}, // 3 -> 0
	}
	iKicksCCW = [4][4]Point{
		{{-1, 0}, {2, 0}, {-1, 2}, {2, -1}}, // 0 -> 3
		{{2, 0}, {-1, 0}, {2, 1}, {-1, -2}}, // 1 -> 0
		{{1, 0}, {-2, 0}, {1, -2}, {-2, 1}}, // 2 -> 1
		{{-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, // 3 -> 2
	}
)

// Kicks returns the ordered kick candidates for rotating kind from a state.
func Kicks(kind PieceKind, from RotationState, dir Direction) [4]Point {
	switch {
	case kind == KindI && dir == DirCW:
		return iKicksCW[from%4]
	case kind == KindI:
		return iKicksCCW[from%4]
	case dir == DirCW:
		return jlstzKicksCW[from%4]
	default:
		return jlstzKicksCCW[from%4]
	}
}

// RotationResult describes an applied rotation.
type RotationResult struct {
	From, To  RotationState
	Kick      Point
	KickIndex int // -1 when the plain rotation fit
}

// Rotate turns p in place. The plain rotation is tried first, then each
// kick offset in table order; the first fit wins. When nothing fits p is
// left untouched and the error wraps ErrKickExhausted. The O piece never
// rotates.
func Rotate(b *Board, p *Piece, dir Direction) (RotationResult, error) {
	from := p.Rotation
	res := RotationResult{From: from, To: from, KickIndex: -1}
	if p.Kind == KindO {
		return res, nil
	}

	to := from.CW()
	if dir == DirCCW {
		to = from.CCW()
	}
	res.To = to

	if CanPlace(b, p.Kind, to, p.Pos) {
		applyRotation(p, to, p.Pos)
		return res, nil
	}

	for i, kick := range Kicks(p.Kind, from, dir) {
		pos := p.Pos.Add(kick)
		if CanPlace(b, p.Kind, to, pos) {
			applyRotation(p, to, pos)
			res.Kick = kick
			res.KickIndex = i
			return res, nil
		}
	}

	return RotationResult{From: from, To: from, KickIndex: -1},
		fmt.Errorf("%w: %s %s from state %d", ErrKickExhausted, p.Kind, dir, from)
}

func applyRotation(p *Piece, to RotationState, pos Point) {
	p.Rotation = to
	p.Pos = pos
	p.LastRotated = true
	if p.Locking {
		p.LockCounter = 0
	}
}
