package game

// Direction identifies one of the four push directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// cell returns a pointer to slot k of line i for a push in dir. Slot 0 is
// the edge the tiles compact toward, so all four directions walk their
// lines with the same loop.
func (b *Board) cell(dir Direction, i, k int) *int {
	switch dir {
	case DirLeft:
		return &b[i][k]
	case DirRight:
		return &b[i][Size-1-k]
	case DirUp:
		return &b[k][i]
	default:
		return &b[Size-1-k][i]
	}
}

// Push slides every tile toward the dir edge, merging equal neighbors
// along the way. It returns the score gained from merges and whether the
// board changed; moved=false is the signal that no tile spawn must follow.
// A tile produced by a merge never merges again within the same push, and
// of three equal tiles in a line the pair nearest the destination edge
// merges.
func (b *Board) Push(dir Direction) (gained int, moved bool) {
	for i := range Size {
		g, m := b.pushLine(dir, i)
		gained += g
		moved = moved || m
	}
	return gained, moved
}

// pushLine compacts one line toward slot 0. It scans from the destination
// edge, counting empty slots and carrying at most one pending tile; a tile
// equal to the pending one merges at the next compacted slot, anything
// else flushes the pending tile there first. Clearing pending right after
// a merge is what keeps a merged tile from merging twice.
func (b *Board) pushLine(dir Direction, i int) (gained int, moved bool) {
	zeros := 0   // empty slots passed over, including merged-away sources
	pending := 0 // tile seen but not yet settled, 0 = none
	for k := range Size {
		v := *b.cell(dir, i, k)
		switch {
		case v == 0:
			zeros++
		case v == pending:
			*b.cell(dir, i, k-zeros-1) = pending * 2
			gained += pending * 2
			moved = true
			zeros++
			pending = 0
		default:
			if pending != 0 {
				*b.cell(dir, i, k-zeros-1) = pending
				if zeros > 0 {
					moved = true
				}
			}
			pending = v
		}
	}
	if pending != 0 {
		dst := b.cell(dir, i, Size-zeros-1)
		if *dst != pending {
			moved = true
		}
		*dst = pending
	}
	for k := Size - zeros; k < Size; k++ {
		*b.cell(dir, i, k) = 0
	}
	return gained, moved
}
