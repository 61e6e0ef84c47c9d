package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/game"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			Mode:       string(game.SpawnRandom),
			FourChance: game.DefaultFourChance,
		},
		Save: SaveConfig{
			Path: "~/.t2048/save.json",
		},
		Scores: ScoresConfig{
			DB: "~/.t2048/scores.db",
		},
	}
}
