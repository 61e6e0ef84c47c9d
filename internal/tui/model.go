// Package tui is the Bubble Tea presentation layer. It renders the board
// and score, translates key presses into core game operations and shows
// the transient status messages the operations produce. All game rules
// live in internal/game; this package only consumes its outputs.
package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/save"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Status messages shown next to the board. Board-changing moves clear
// the current message.
const (
	statusNoUndo        = "No undos available."
	statusSaved         = "Game saved."
	statusSaveError     = "Error saving game!"
	statusLoaded        = "Game loaded."
	statusLoadError     = "Error loading game!"
	statusDeterministic = "New tiles spawn deterministically."
	statusRandom        = "New tiles spawn randomly."
)

// Options configures a game session.
type Options struct {
	Game     *game.Game
	SavePath string
	Store    *storage.Store // optional; nil disables the score table
	Logger   *log.Logger    // optional; nil discards
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game     *game.Game
	savePath string
	store    *storage.Store
	logger   *log.Logger

	keys   keyMap
	help   help.Model
	status string
	width  int
	height int

	highScore  int
	scoreSaved bool // final score recorded for the current game over
	quitting   bool
}

// NewModel creates the model for the given session options.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     opts.Game,
		savePath: opts.SavePath,
		store:    opts.Store,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}

	if m.store != nil {
		best, err := m.store.HighScore()
		if err != nil {
			logger.Warn("could not read high score", "error", err)
		} else {
			m.highScore = best
		}
	}
	return m
}

// Init implements tea.Model. The game is turn-based, so there is no tick
// loop; the model only reacts to key and resize messages.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey dispatches one key press to the core.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.move(game.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.move(game.DirDown)
	case key.Matches(msg, m.keys.Left):
		m.move(game.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.move(game.DirRight)

	case key.Matches(msg, m.keys.New):
		m.game.Reset()
		m.scoreSaved = false
		m.status = ""

	case key.Matches(msg, m.keys.Undo):
		if err := m.game.Undo(); err != nil {
			if !errors.Is(err, game.ErrNoUndo) {
				m.logger.Warn("undo failed", "error", err)
			}
			m.status = statusNoUndo
		} else {
			// Undo can revive a dead game; the next game over is a
			// new final score and must be recorded again.
			m.scoreSaved = false
			m.status = ""
		}

	case key.Matches(msg, m.keys.Save):
		if err := save.Write(m.savePath, m.game.Snapshot()); err != nil {
			m.logger.Warn("could not save game", "path", m.savePath, "error", err)
			m.status = statusSaveError
		} else {
			m.status = statusSaved
		}

	case key.Matches(msg, m.keys.Load):
		snap, err := save.Read(m.savePath)
		if err != nil {
			m.logger.Warn("could not load game", "path", m.savePath, "error", err)
			m.status = statusLoadError
		} else {
			m.game.Restore(snap)
			m.scoreSaved = false
			m.status = statusLoaded
		}

	case key.Matches(msg, m.keys.Deterministic):
		m.game.SetSpawnMode(game.SpawnDeterministic)
		m.status = statusDeterministic

	case key.Matches(msg, m.keys.Random):
		m.game.SetSpawnMode(game.SpawnRandom)
		m.status = statusRandom

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// move pushes the board and runs the post-move bookkeeping: a changed
// board clears the status line, and entering game over records the final
// score once.
func (m *Model) move(dir game.Direction) {
	if !m.game.Move(dir) {
		return
	}
	m.status = ""

	if m.game.Score() > m.highScore {
		m.highScore = m.game.Score()
	}

	if m.game.Over() && !m.scoreSaved {
		if m.store != nil {
			if _, err := m.store.SaveScore(m.game.Score(), m.game.Board().MaxTile()); err != nil {
				m.logger.Warn("could not record score", "error", err)
			}
		}
		m.scoreSaved = true
	}
}

// Run starts the Bubble Tea program for the session.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
