// t2048 is a terminal 2048 game with bounded undo, save/load and a
// persistent high-score table.
//
// Usage:
//
//	t2048                    - Play the game
//	t2048 play               - Same as running without a subcommand
//	t2048 scores             - Show the high-score table
//	t2048 scores --clear     - Wipe the high-score table
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--save <path>    - Save file location
//	--db <path>      - Scores database location
//	--seed <value>   - RNG seed for reproducible tile spawns
//	--mode <mode>    - Tile spawn mode: random or deterministic
//	--debug          - Write a debug log to ~/.t2048/debug.log
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSave   string
	flagDBPath string
	flagSeed   int64
	flagMode   string
	flagDebug  bool
)

func main() {
	// Environment overrides (T2048_*) may come from a .env file.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is a terminal 2048 with bounded undo, save/load and a
persistent high-score table.

Controls:
  Arrow keys - Push the board
  n          - New game
  u          - Undo (up to 3 moves back)
  s / l      - Save / load the game
  d / r      - Deterministic / random tile spawning
  ?          - Toggle help
  q / Ctrl+C - Quit

Examples:
  t2048
  t2048 --mode deterministic --seed 42
  t2048 scores`,
	Run: runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Run:   runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSave, "save", "", "Save file path (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Scores database path (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Tile spawn mode: random or deterministic")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.t2048/debug.log")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
