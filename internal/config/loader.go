package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load returns the configuration from the first source that works.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml
// -> embedded default. T2048_* environment variables override file values,
// and anything unusable falls back to its default with a warning returned
// for the caller to log.
func Load(customPath string) (Config, []string, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, nil, err
	}
	cfg.applyEnv()
	warnings := cfg.normalize()
	return cfg, warnings, nil
}

// loadFile reads the configuration file. Only an explicit custom path is
// allowed to fail loudly; the fallback locations are best-effort.
func loadFile(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "t2048.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// applyEnv overrides file values from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("T2048_SPAWN_MODE"); v != "" {
		c.Spawn.Mode = v
	}
	if v := os.Getenv("T2048_FOUR_CHANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Spawn.FourChance = f
		}
	}
	if v := os.Getenv("T2048_SAVE_PATH"); v != "" {
		c.Save.Path = v
	}
	if v := os.Getenv("T2048_SCORES_DB"); v != "" {
		c.Scores.DB = v
	}
}

// userConfigPath returns the path of the user config file, or empty if
// home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "config.yaml")
}
