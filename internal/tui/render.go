package tui

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// Minimum terminal size needed to show the board, score and status line.
const (
	MinWidth  = 44
	MinHeight = 21
)

const tileWidth = 6

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("94")).
			Padding(0, 2)

	scoreStyle = lipgloss.NewStyle().Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Italic(true)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("238"))
)

// tilePalette maps log2(value) to a tile style: warm oranges through
// greens, purples and reds toward blue for the largest tiles, seventeen
// steps in all.
var tilePalette = [...]lipgloss.Style{
	tileStyle("0", "223"),  // 2
	tileStyle("0", "216"),  // 4
	tileStyle("0", "215"),  // 8
	tileStyle("15", "209"), // 16
	tileStyle("15", "202"), // 32
	tileStyle("15", "107"), // 64
	tileStyle("15", "71"),  // 128
	tileStyle("15", "29"),  // 256
	tileStyle("15", "135"), // 512
	tileStyle("15", "99"),  // 1024
	tileStyle("15", "57"),  // 2048
	tileStyle("15", "203"), // 4096
	tileStyle("15", "160"), // 8192
	tileStyle("15", "124"), // 16384
	tileStyle("15", "39"),  // 32768
	tileStyle("15", "27"),  // 65536
	tileStyle("15", "19"),  // 131072
}

func tileStyle(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

// renderTile formats one cell as a fixed-width colored block.
func renderTile(v int) string {
	if v == 0 {
		return emptyTileStyle.Render("·")
	}
	idx := bits.Len(uint(v)) - 2 // v=2 -> 0, v=4 -> 1, ...
	if idx < 0 {
		idx = 0
	}
	if idx >= len(tilePalette) {
		idx = len(tilePalette) - 1
	}
	return tilePalette[idx].Render(strconv.Itoa(v))
}

// renderBoard draws the grid inside a rounded border.
func renderBoard(b game.Board) string {
	rows := make([]string, 0, game.Size)
	for y := range game.Size {
		tiles := make([]string, 0, game.Size)
		for x := range game.Size {
			tiles = append(tiles, renderTile(b[y][x]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return boardStyle.Render(strings.Join(rows, "\n\n"))
}

// View renders the whole screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && (m.width < MinWidth || m.height < MinHeight) {
		notice := fmt.Sprintf("Window too small.\nNeed at least %dx%d.", MinWidth, MinHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, notice)
	}

	var scoreLine string
	if m.game.Over() {
		scoreLine = gameOverStyle.Render(fmt.Sprintf("Game Over! Final Score: %d", m.game.Score()))
	} else {
		scoreLine = scoreStyle.Render(fmt.Sprintf("Score: %d", m.game.Score()))
	}
	if m.highScore > 0 {
		scoreLine += scoreStyle.Render(fmt.Sprintf("   Best: %d", m.highScore))
	}

	status := " "
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("2048"),
		"",
		scoreLine,
		"",
		renderBoard(m.game.Board()),
		"",
		status,
		"",
		m.help.View(m.keys),
	)

	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
