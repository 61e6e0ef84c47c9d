// Package save reads and writes game snapshots as JSON files.
// A save replaces the previous file atomically, so a crash mid-write
// never leaves a half-written file behind as the current save.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// FormatVersion is the save file layout version. Files written by newer
// layouts are rejected rather than misread.
const FormatVersion = 1

// ErrInvalid marks a save file whose content cannot belong to a real
// game: wrong format version, impossible tile values or a negative score.
var ErrInvalid = errors.New("save: invalid save file")

// record is the on-disk layout.
type record struct {
	Version int        `json:"version"`
	Board   game.Board `json:"board"`
	Score   int        `json:"score"`
}

// Write stores snap at path, creating parent directories as needed. The
// data goes to a temp file in the same directory first and is renamed
// over the destination, so readers only ever see a complete file.
func Write(path string, snap game.Snapshot) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(record{
		Version: FormatVersion,
		Board:   snap.Board,
		Score:   snap.Score,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("save: cannot marshal state: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save: cannot create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save: cannot write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: cannot replace %s: %w", path, err)
	}
	return nil
}

// Read loads and validates a snapshot from path. It parses into a staged
// value and returns an error without any partial result when the file is
// missing, unreadable, or fails validation; the caller's live state is
// only ever replaced after a fully successful read.
func Read(path string) (game.Snapshot, error) {
	path, err := expandHome(path)
	if err != nil {
		return game.Snapshot{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("save: cannot read %s: %w", path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return game.Snapshot{}, fmt.Errorf("save: cannot parse %s: %w", path, err)
	}
	if rec.Version != FormatVersion {
		return game.Snapshot{}, fmt.Errorf("save: %s has format version %d, want %d: %w", path, rec.Version, FormatVersion, ErrInvalid)
	}

	snap := game.Snapshot{Board: rec.Board, Score: rec.Score}
	if !snap.Valid() {
		return game.Snapshot{}, fmt.Errorf("save: %s holds an impossible game state: %w", path, ErrInvalid)
	}
	return snap, nil
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("save: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
