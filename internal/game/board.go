package game

// Size is the board dimension. Boards are always square and the size is
// fixed at compile time.
const Size = 4

// Board is the tile grid. Zero means an empty cell; every non-zero cell
// holds a power of two, 2 or larger.
type Board [Size][Size]int

// Cell is a board coordinate.
type Cell struct{ X, Y int }

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				cells = append(cells, Cell{x, y})
			}
		}
	}
	return cells
}

// HasEmptyCell reports whether at least one cell is empty.
func (b Board) HasEmptyCell() bool {
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair reports whether two horizontally or vertically
// neighboring cells hold the same non-zero value.
func (b Board) HasAdjacentPair() bool {
	for y := range Size {
		for x := range Size {
			v := b[y][x]
			if v == 0 {
				continue
			}
			if x < Size-1 && b[y][x+1] == v {
				return true
			}
			if y < Size-1 && b[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MoveAvailable reports whether any push can still change the board. A
// move remains possible while an empty cell leaves room to slide or an
// adjacent equal pair can merge.
func (b Board) MoveAvailable() bool {
	return b.HasEmptyCell() || b.HasAdjacentPair()
}

// MaxTile returns the largest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for y := range Size {
		for x := range Size {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}
