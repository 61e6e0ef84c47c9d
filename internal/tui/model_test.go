package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/save"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		Game:     game.New(game.SpawnDeterministic, 1),
		SavePath: filepath.Join(t.TempDir(), "save.json"),
	})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func TestUndoAtBaselineShowsStatus(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('u'))
	if m.status != statusNoUndo {
		t.Errorf("status = %q, want %q", m.status, statusNoUndo)
	}
}

func TestMoveClearsStatus(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('u'))
	if m.status == "" {
		t.Fatal("expected a status message before the move")
	}

	// A fresh deterministic game holds a single 2 at the top-left
	// corner; pushing right always changes the board.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.status != "" {
		t.Errorf("status = %q, want cleared after a board-changing move", m.status)
	}
}

func TestSaveLoadStatusMessages(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('l'))
	if m.status != statusLoadError {
		t.Errorf("load without a save file: status = %q, want %q", m.status, statusLoadError)
	}

	m = update(t, m, keyRune('s'))
	if m.status != statusSaved {
		t.Errorf("save: status = %q, want %q", m.status, statusSaved)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	scoreBefore := m.game.Score()
	boardBefore := m.game.Board()

	m = update(t, m, keyRune('l'))
	if m.status != statusLoaded {
		t.Errorf("load: status = %q, want %q", m.status, statusLoaded)
	}
	if m.game.Board() == boardBefore && m.game.Score() == scoreBefore {
		t.Error("load did not restore the saved snapshot")
	}
}

func TestLoadErrorLeavesGameUntouched(t *testing.T) {
	m := newTestModel(t)
	boardBefore := m.game.Board()
	scoreBefore := m.game.Score()

	m = update(t, m, keyRune('l'))
	if m.game.Board() != boardBefore || m.game.Score() != scoreBefore {
		t.Error("failed load mutated the live game")
	}
}

func TestSpawnModeToggleStatus(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('r'))
	if m.status != statusRandom {
		t.Errorf("status = %q, want %q", m.status, statusRandom)
	}
	if got := m.game.SpawnMode(); got != game.SpawnRandom {
		t.Errorf("spawn mode = %q, want %q", got, game.SpawnRandom)
	}

	m = update(t, m, keyRune('d'))
	if m.status != statusDeterministic {
		t.Errorf("status = %q, want %q", m.status, statusDeterministic)
	}
	if got := m.game.SpawnMode(); got != game.SpawnDeterministic {
		t.Errorf("spawn mode = %q, want %q", got, game.SpawnDeterministic)
	}
}

func TestNewGameResets(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m = update(t, m, keyRune('n'))
	if got := m.game.Score(); got != 0 {
		t.Errorf("score after new game = %d, want 0", got)
	}
	if got := len(m.game.Board().EmptyCells()); got != game.Size*game.Size-1 {
		t.Errorf("empty cells after new game = %d, want %d", got, game.Size*game.Size-1)
	}
}

func TestUndoRevivalRecordsNextGameOver(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	// One merge away from death: pushing left merges the 2s, the spawn
	// fills the freed cell and no pair or gap remains.
	savePath := filepath.Join(dir, "save.json")
	snap := game.Snapshot{
		Board: game.Board{
			{32, 2, 2, 64},
			{128, 256, 512, 1024},
			{2048, 4096, 8192, 16384},
			{4, 8, 16, 65536},
		},
		Score: 100,
	}
	if err := save.Write(savePath, snap); err != nil {
		t.Fatalf("Write: %v", err)
	}

	m := NewModel(Options{
		Game:     game.New(game.SpawnDeterministic, 1),
		SavePath: savePath,
		Store:    store,
	})
	m = update(t, m, keyRune('l'))
	if m.status != statusLoaded {
		t.Fatalf("load: status = %q, want %q", m.status, statusLoaded)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.game.Over() {
		t.Fatal("push on the crafted board should end the game")
	}

	m = update(t, m, keyRune('u'))
	if m.game.Over() {
		t.Fatal("undo should revive the game")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.game.Over() {
		t.Fatal("second push should end the game again")
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("recorded %d scores across two game overs, want 2", len(scores))
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if got := next.(Model); !got.quitting {
		t.Error("quitting flag not set")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if got := m.View(); !strings.Contains(got, "Window too small") {
		t.Errorf("View() on a tiny window = %q, want a too-small notice", got)
	}
}

func TestViewShowsScoreAndBoard(t *testing.T) {
	m := newTestModel(t)

	got := m.View()
	if !strings.Contains(got, "Score: 0") {
		t.Errorf("View() missing score line:\n%s", got)
	}
	if !strings.Contains(got, "2048") {
		t.Errorf("View() missing title:\n%s", got)
	}
}
