package game

// SpawnMode selects how new tiles are placed after a board-changing push.
type SpawnMode string

const (
	// SpawnRandom places a tile on a uniformly chosen empty cell: a 2
	// most of the time, occasionally a 4.
	SpawnRandom SpawnMode = "random"
	// SpawnDeterministic fills the first empty cell in row-major order
	// with a 2. Useful for reproducible games.
	SpawnDeterministic SpawnMode = "deterministic"
)

// DefaultFourChance is the probability of spawning a 4 instead of a 2 in
// random mode.
const DefaultFourChance = 0.10

// Valid reports whether m names a known spawn mode.
func (m SpawnMode) Valid() bool {
	return m == SpawnRandom || m == SpawnDeterministic
}

// spawnTile places one new tile on an empty cell according to the spawn
// mode. It is called only after a push changed the board, which always
// frees at least one cell, so a full board never reaches it.
func (g *Game) spawnTile() {
	cells := g.board.EmptyCells()
	if len(cells) == 0 {
		return
	}

	if g.spawnMode == SpawnDeterministic {
		c := cells[0]
		g.board[c.Y][c.X] = 2
		return
	}

	c := cells[g.rng.Intn(len(cells))]
	value := 2
	if g.rng.Float64() < g.fourChance {
		value = 4
	}
	g.board[c.Y][c.X] = value
}
