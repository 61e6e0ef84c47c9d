package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/tui"
)

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, warnings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		logger.Warn("config fallback", "reason", w)
	}

	// Flags win over config and environment.
	if flagMode != "" {
		cfg.Spawn.Mode = flagMode
		if !cfg.SpawnMode().Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown spawn mode %q (want random or deterministic)\n", flagMode)
			os.Exit(1)
		}
	}
	if flagSave != "" {
		cfg.Save.Path = flagSave
	}
	if flagDBPath != "" {
		cfg.Scores.DB = flagDBPath
	}

	// Refuse to start in a window the board cannot fit.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tui.MinWidth || h < tui.MinHeight {
			fmt.Fprintf(os.Stderr, "Terminal too small: need at least %dx%d, have %dx%d.\n",
				tui.MinWidth, tui.MinHeight, w, h)
			os.Exit(1)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(cfg.SpawnMode(), seed)
	g.SetFourChance(cfg.Spawn.FourChance)

	// The score table is best-effort: play works without it.
	store, err := storage.Open(cfg.Scores.DB)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(tui.Options{
		Game:     g,
		SavePath: cfg.Save.Path,
		Store:    store,
		Logger:   logger,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns the session logger. A full-screen TUI owns the
// terminal, so debug output goes to a file when --debug is set and
// nowhere otherwise.
func newLogger() *log.Logger {
	if !flagDebug {
		return log.New(io.Discard)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard)
	}
	dir := filepath.Join(home, ".t2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard)
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
}
