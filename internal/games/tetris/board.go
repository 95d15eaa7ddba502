package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Block is a placed cell. The zero Block is an empty cell.
type Block struct {
	Kind  PieceKind
	Color core.Color
}

// Empty reports whether the cell holds nothing.
func (b Block) Empty() bool {
	return b.Kind == KindNone
}

// Board is the well: a width x height grid of blocks, row 0 at the bottom.
type Board struct {
	width  int
	height int
	cells  []Block // row-major, index y*width + x
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Block, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the block at (x, y), or an empty block outside the grid.
func (b *Board) At(x, y int) Block {
	if !b.inBounds(x, y) {
		return Block{}
	}
	return b.cells[y*b.width+x]
}

// IsOccupied reports whether (x, y) holds a block. Cells above the well
// are open; callers check walls and floor before asking.
func (b *Board) IsOccupied(x, y int) bool {
	return !b.At(x, y).Empty()
}

// Place writes blk at every point. Placing outside the grid or onto an
// occupied cell is a programming error and panics.
func (b *Board) Place(points []Point, blk Block) {
	for _, p := range points {
		if !b.inBounds(p.X, p.Y) {
			panic(fmt.Sprintf("tetris: place out of range at (%d, %d)", p.X, p.Y))
		}
		if b.IsOccupied(p.X, p.Y) {
			panic(fmt.Sprintf("tetris: place onto occupied cell (%d, %d)", p.X, p.Y))
		}
		b.cells[p.Y*b.width+p.X] = blk
	}
}

func (b *Board) rowFull(y int) bool {
	for x := range b.width {
		if !b.IsOccupied(x, y) {
			return false
		}
	}
	return true
}

// CompletedLines returns the full rows in ascending order.
func (b *Board) CompletedLines() []int {
	var rows []int
	for y := range b.height {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Clear empties every listed row.
func (b *Board) Clear(rows []int) {
	for _, y := range rows {
		if y < 0 || y >= b.height {
			continue
		}
		clear(b.cells[y*b.width : (y+1)*b.width])
	}
}

// Compact drops the remaining rows over the removed ones. Surviving rows
// keep their relative order; each moves down by the number of removed rows
// beneath it. Rows are copied bottom-up so no source is overwritten before
// it is read.
func (b *Board) Compact(removed []int) {
	if len(removed) == 0 {
		return
	}
	skip := make(map[int]bool, len(removed))
	for _, y := range removed {
		skip[y] = true
	}

	dst := 0
	for src := range b.height {
		if skip[src] {
			continue
		}
		if dst != src {
			copy(b.row(dst), b.row(src))
		}
		dst++
	}
	for ; dst < b.height; dst++ {
		clear(b.row(dst))
	}
}

func (b *Board) row(y int) []Block {
	return b.cells[y*b.width : (y+1)*b.width]
}

// Reset empties the whole board.
func (b *Board) Reset() {
	clear(b.cells)
}

// Kinds returns the board as row-major kind values, for snapshots.
func (b *Board) Kinds() []int {
	out := make([]int, len(b.cells))
	for i, c := range b.cells {
		out[i] = int(c.Kind)
	}
	return out
}
