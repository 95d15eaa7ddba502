package tetris

// WellCollision reports whether any cell lies outside the walls or below
// the floor. The well has no ceiling.
func WellCollision(b *Board, fp Footprint) bool {
	for _, p := range fp {
		if p.X < 0 || p.X >= b.Width() || p.Y < 0 {
			return true
		}
	}
	return false
}

// BottomCollision reports whether any cell sits on the floor row.
func BottomCollision(fp Footprint) bool {
	for _, p := range fp {
		if p.Y == 0 {
			return true
		}
	}
	return false
}

// VerticalBlockCollision reports whether any cell rests on a placed block.
func VerticalBlockCollision(b *Board, fp Footprint) bool {
	for _, p := range fp {
		if p.Y > 0 && b.IsOccupied(p.X, p.Y-1) {
			return true
		}
	}
	return false
}

// LeftBlockCollision reports whether any cell has a placed block to its left.
func LeftBlockCollision(b *Board, fp Footprint) bool {
	for _, p := range fp {
		if p.X > 0 && b.IsOccupied(p.X-1, p.Y) {
			return true
		}
	}
	return false
}

// RightBlockCollision reports whether any cell has a placed block to its right.
func RightBlockCollision(b *Board, fp Footprint) bool {
	for _, p := range fp {
		if p.X < b.Width()-1 && b.IsOccupied(p.X+1, p.Y) {
			return true
		}
	}
	return false
}

// ShouldCommit reports whether the piece is resting on the floor or a block.
func ShouldCommit(b *Board, p Piece) bool {
	fp := p.Footprint()
	return BottomCollision(fp) || VerticalBlockCollision(b, fp)
}

// CanTranslateHorizontally checks a sideways move to newPos: the destination
// must be inside the walls, and the current footprint must have no block
// beside it in the direction of travel. For single-cell steps this equals a
// full destination test.
func CanTranslateHorizontally(b *Board, p Piece, newPos Point) bool {
	if WellCollision(b, FootprintAt(p.Kind, p.Rotation, newPos)) {
		return false
	}
	fp := p.Footprint()
	switch {
	case newPos.X < p.Pos.X:
		return !LeftBlockCollision(b, fp)
	case newPos.X > p.Pos.X:
		return !RightBlockCollision(b, fp)
	default:
		return true
	}
}

// Fits reports whether every cell is inside the walls and unoccupied.
func Fits(b *Board, fp Footprint) bool {
	if WellCollision(b, fp) {
		return false
	}
	for _, p := range fp {
		if b.IsOccupied(p.X, p.Y) {
			return false
		}
	}
	return true
}

// CanPlace reports whether kind in rot fits at pos.
func CanPlace(b *Board, kind PieceKind, rot RotationState, pos Point) bool {
	return Fits(b, FootprintAt(kind, rot, pos))
}
