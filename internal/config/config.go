// Package config provides YAML-based configuration loading for the game:
// spawn behavior, the save file location and the score database path.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// Config holds the full runtime configuration.
type Config struct {
	Spawn  SpawnConfig  `yaml:"spawn"`
	Save   SaveConfig   `yaml:"save"`
	Scores ScoresConfig `yaml:"scores"`
}

// SpawnConfig controls how new tiles are placed.
type SpawnConfig struct {
	Mode       string  `yaml:"mode"`        // "random" or "deterministic"
	FourChance float64 `yaml:"four_chance"` // probability of a 4 in random mode
}

// SaveConfig controls where the game snapshot is stored.
type SaveConfig struct {
	Path string `yaml:"path"`
}

// ScoresConfig controls the high score database.
type ScoresConfig struct {
	DB string `yaml:"db"`
}

// SpawnMode returns the configured spawn mode as the game type.
func (c Config) SpawnMode() game.SpawnMode {
	return game.SpawnMode(c.Spawn.Mode)
}

// normalize replaces values play cannot work with by their defaults and
// returns a warning per replaced value for the caller to log. Unset paths
// take their defaults silently.
func (c *Config) normalize() []string {
	def := Default()
	var warnings []string
	if !game.SpawnMode(c.Spawn.Mode).Valid() {
		warnings = append(warnings, fmt.Sprintf("unknown spawn mode %q, using %q", c.Spawn.Mode, def.Spawn.Mode))
		c.Spawn.Mode = def.Spawn.Mode
	}
	if c.Spawn.FourChance < 0 || c.Spawn.FourChance > 1 {
		warnings = append(warnings, fmt.Sprintf("four_chance %v is outside [0,1], using %v", c.Spawn.FourChance, def.Spawn.FourChance))
		c.Spawn.FourChance = def.Spawn.FourChance
	}
	if c.Save.Path == "" {
		c.Save.Path = def.Save.Path
	}
	if c.Scores.DB == "" {
		c.Scores.DB = def.Scores.DB
	}
	return warnings
}
