package game

// Snapshot captures the restorable game state: board contents and score.
// It is the unit stored by the undo history and written by the save layer.
type Snapshot struct {
	Board Board `json:"board"`
	Score int   `json:"score"`
}

// Valid reports whether the snapshot could have been produced by play:
// every non-zero cell a power of two starting at 2, and a non-negative
// score.
func (s Snapshot) Valid() bool {
	if s.Score < 0 {
		return false
	}
	for y := range Size {
		for x := range Size {
			v := s.Board[y][x]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return false
			}
		}
	}
	return true
}

// Snapshot returns the current board and score.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{Board: g.board, Score: g.score}
}
