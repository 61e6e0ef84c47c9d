package save

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/game"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	snap := game.Snapshot{
		Board: game.Board{
			{2, 4, 8, 0},
			{0, 16, 0, 2},
			{0, 0, 1024, 0},
			{2, 0, 0, 0},
		},
		Score: 1356,
	}

	if err := Write(path, snap); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != snap {
		t.Errorf("round trip: got %+v, want %+v", got, snap)
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	first := game.Snapshot{Board: game.Board{{2}}, Score: 0}
	second := game.Snapshot{Board: game.Board{{4, 4}}, Score: 8}

	if err := Write(path, first); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := Write(path, second); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != second {
		t.Errorf("Read after overwrite: got %+v, want %+v", got, second)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "save.json")

	if err := Write(path, game.Snapshot{Board: game.Board{{2}}}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "save.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only save.json", names)
	}
}

func TestWriteCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "save.json")

	if err := Write(path, game.Snapshot{Board: game.Board{{2}}}); err != nil {
		t.Fatalf("Write into missing directories: %v", err)
	}
	if _, err := Read(path); err != nil {
		t.Errorf("Read back: %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Read of a missing file should fail")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Read error = %v, want fs.ErrNotExist in its chain", err)
	}
}

func TestReadRejectsBadContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{
			name:    "truncated json",
			content: `{"version":1,"board":[[2,`,
		},
		{
			name:    "not json at all",
			content: "\x00\x01\x02",
		},
		{
			name:    "unknown version",
			content: `{"version":9,"board":[[2,0,0,0]],"score":0}`,
			invalid: true,
		},
		{
			name:    "tile not a power of two",
			content: `{"version":1,"board":[[3,0,0,0]],"score":0}`,
			invalid: true,
		},
		{
			name:    "negative score",
			content: `{"version":1,"board":[[2,0,0,0]],"score":-5}`,
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "save.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			_, err := Read(path)
			if err == nil {
				t.Fatal("Read should reject the file")
			}
			if tt.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Read error = %v, want ErrInvalid in its chain", err)
			}
		})
	}
}

func TestFailedLoadLeavesGameUntouched(t *testing.T) {
	g := game.New(game.SpawnDeterministic, 1)
	before := g.Snapshot()

	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Read of a missing file should fail")
	}

	// Nothing is restored on failure, so the live game is exactly as it
	// was before the attempt.
	if g.Snapshot() != before {
		t.Errorf("game state changed across a failed load: %+v, was %+v", g.Snapshot(), before)
	}
	if err := g.Undo(); !errors.Is(err, game.ErrNoUndo) {
		t.Errorf("undo availability changed across a failed load: %v", err)
	}
}
