// seabattle is a game of Battleship against the computer, played in the terminal.
//
// Usage:
//
//	seabattle                - Play in the console (same as "seabattle play")
//	seabattle play           - Play in the console, one line per shot
//	seabattle tui            - Play in a full-screen terminal UI
//	seabattle history        - Show recently finished matches
//	seabattle stats          - Show win/loss statistics
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible match
//	--config <path>     - Use a custom YAML config
//	--db <path>         - Set history database path (default from config)
//	--log-level <level> - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write logs to a file instead of stderr
//	--no-history        - Do not record the finished match
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed      int64
	flagConfig    string
	flagDBPath    string
	flagLogLevel  string
	flagLogFile   string
	flagNoHistory bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seabattle",
	Short: "Sea Battle - Battleship against the computer",
	Long: `Sea Battle is the classic Battleship game played in your terminal.

Both fleets are placed at random on a 7x7 board. Take turns firing at the
computer's hidden board by typing a row and a column, e.g. "3 5".
A hit lets you shoot again; sinking a ship or missing passes the turn.

Available commands:
  play     - Play in the console (default)
  tui      - Play in a full-screen terminal UI
  history  - Show recently finished matches
  stats    - Show win/loss statistics

Examples:
  seabattle
  seabattle --seed 42
  seabattle tui
  seabattle history
  seabattle stats`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record the finished match")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
}
