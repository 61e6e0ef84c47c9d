package game

import (
	"errors"
	"math/rand"
)

// ErrNoUndo is returned by Undo when no state before the current one
// remains in the history ring.
var ErrNoUndo = errors.New("game: no undos available")

// Game owns one running session: board, score, spawn policy and undo
// history. It is not safe for concurrent use; a single caller drives it
// one operation at a time.
type Game struct {
	board      Board
	score      int
	spawnMode  SpawnMode
	fourChance float64
	rng        *rand.Rand
	history    history
}

// New creates a game with the given spawn mode and seed and deals the
// opening tile. An unknown mode falls back to SpawnRandom.
func New(mode SpawnMode, seed int64) *Game {
	if !mode.Valid() {
		mode = SpawnRandom
	}
	g := &Game{
		spawnMode:  mode,
		fourChance: DefaultFourChance,
		rng:        rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g
}

// Reset starts a fresh game: clears the board, zeroes the score, drops
// the history, spawns the opening tile and records it as the baseline.
func (g *Game) Reset() {
	g.board = Board{}
	g.score = 0
	g.history.reset()
	g.spawnTile()
	g.history.push(g.Snapshot())
}

// Move pushes the board in dir. When the push changed the board, Move
// adds the merge gains to the score, spawns one tile, records the new
// state in the history and reports true. Otherwise it reports false and
// the game is untouched.
func (g *Game) Move(dir Direction) bool {
	gained, moved := g.board.Push(dir)
	if !moved {
		return false
	}
	g.score += gained
	g.spawnTile()
	g.history.push(g.Snapshot())
	return true
}

// Undo rewinds board and score to the state before the latest
// board-changing move. Once only the baseline remains it returns
// ErrNoUndo and leaves the game untouched.
func (g *Game) Undo() error {
	snap, ok := g.history.pop()
	if !ok {
		return ErrNoUndo
	}
	g.board = snap.Board
	g.score = snap.Score
	return nil
}

// Restore replaces the live board and score with snap and resets the
// history to a fresh baseline holding only snap. A restored game starts
// with no undos.
func (g *Game) Restore(snap Snapshot) {
	g.board = snap.Board
	g.score = snap.Score
	g.history.reset()
	g.history.push(snap)
}

// Over reports whether no move remains. Undoing out of a dead position
// brings the game back, so this is recomputed on every call.
func (g *Game) Over() bool {
	return !g.board.MoveAvailable()
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// SpawnMode returns the active spawn policy.
func (g *Game) SpawnMode() SpawnMode {
	return g.spawnMode
}

// SetSpawnMode switches the spawn policy for tiles spawned from now on.
func (g *Game) SetSpawnMode(mode SpawnMode) {
	if mode.Valid() {
		g.spawnMode = mode
	}
}

// SetFourChance overrides the probability of spawning a 4 in random mode.
// Values outside [0,1] are ignored.
func (g *Game) SetFourChance(p float64) {
	if p >= 0 && p <= 1 {
		g.fourChance = p
	}
}
