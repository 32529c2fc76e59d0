// minesweeper is a terminal Minesweeper game.
//
// Usage:
//
//	minesweeper play             - Play full-screen in the terminal
//	minesweeper play --plain     - Play by typing coordinates line by line
//	minesweeper defaults         - Print the default configuration file
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.minesweeper/config.yaml)
//	--seed <value>     - RNG seed for reproducible boards
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper in your terminal.

Reveal every cell that is not a mine. A number tells how many of the
eight surrounding cells hide a mine. The first cell you open is never
a mine.

Examples:
  minesweeper play
  minesweeper play --height 16 --width 30 --mines 99
  minesweeper play --plain --seed 42
  minesweeper defaults > ~/.minesweeper/config.yaml`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger builds the logger for a session. Without --log-file it writes to
// fallback. The returned close function must be called when done.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
		Level:           level,
	})
	return logger, closeFn, nil
}
