package tetris

// tspinWindow is the box-local region (matrix rows and columns, inclusive)
// around the T's stem, extended one cell in the direction it points.
type tspinWindow struct {
	r0, r1, c0, c1 int
}

var tspinWindows = [4]tspinWindow{
	{r0: -1, r1: 0, c0: 0, c1: 2}, // stem up
	{r0: 0, r1: 2, c0: 2, c1: 3},  // stem right
	{r0: 2, r1: 3, c0: 0, c1: 2},  // stem down
	{r0: 0, r1: 2, c0: -1, c1: 0}, // stem left
}

func (w tspinWindow) contains(r, c int) bool {
	return r >= w.r0 && r <= w.r1 && c >= w.c0 && c <= w.c1
}

// IsTSpin reports whether a just-placed T qualifies as a T-spin: every
// orthogonal neighbor of its cells that falls inside the rotation state's
// window is occupied. Walls, the floor and the T's own cells count as
// occupied. This is a narrow heuristic and makes no mini/full distinction.
func IsTSpin(b *Board, p Piece) bool {
	if p.Kind != KindT {
		return false
	}
	m := p.Matrix()
	w := tspinWindows[p.Rotation%4]
	neighbors := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	counted := 0
	for r := range m.Size {
		for c := range m.Size {
			if !m.Cells[r][c] {
				continue
			}
			for _, d := range neighbors {
				nr, nc := r+d[0], c+d[1]
				if !w.contains(nr, nc) {
					continue
				}
				counted++
				if m.occupied(nr, nc) {
					continue
				}
				if !solidAt(b, p.Pos.X+nc, p.Pos.Y-nr) {
					return false
				}
			}
		}
	}
	return counted > 0
}

func solidAt(b *Board, x, y int) bool {
	if x < 0 || x >= b.Width() || y < 0 {
		return true
	}
	return b.IsOccupied(x, y)
}

func (m Matrix) occupied(r, c int) bool {
	return r >= 0 && r < m.Size && c >= 0 && c < m.Size && m.Cells[r][c]
}
