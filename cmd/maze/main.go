// maze generates shaped mazes in the terminal.
//
// Usage:
//
//	maze generate            - Generate and print a maze
//	maze walk --moves RRDD   - Replay moves through a maze
//	maze audit --runs 500    - Generate many mazes and check their invariants
//	maze history             - Show recorded audit runs
//	maze kinds               - List available shape kinds
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible mazes
//	--config <path>      - Use a custom generator config YAML
//	--db <path>          - Set database path (default: ~/.maze/runs.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Shaped maze generator",
	Long: `maze carves solvable mazes into organic shapes: blobs, hearts,
spirals, donuts and more.

Available commands:
  generate - Generate and print a maze
  walk     - Replay a move sequence through a maze
  audit    - Generate many mazes and verify every invariant
  history  - Show recorded audit runs
  kinds    - List shape kinds

Examples:
  maze generate --kind heart --seed 42
  maze generate --width 320 --height 240 --format yaml
  maze walk --seed 42 --moves RRDDLL
  maze audit --runs 1000
  maze history`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom generator config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default: ~/.maze/runs.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(kindsCmd)
}

// newLogger creates the stderr logger at the level given by --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
		Level:           level,
	}), nil
}

// loadConfig reads .env, then the generator config.
func loadConfig() (config.MazeConfig, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.MazeConfig{}, err
	}
	return config.Load(flagConfig)
}

// resolveSeed returns --seed, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// dbPath returns --db or the configured database path.
func dbPath(cfg config.MazeConfig) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.DBPath()
}

// boardSize picks the board in pixels: explicit flags first, then a board
// that fits the terminal, then the configured board.
func boardSize(cfg config.MazeConfig, width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	cell := cfg.Board.CellSize
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && isTerminal() {
		// Every cell takes 4 columns and 2 rows, keep room for the summary
		bw, bh := (w-1)/4*cell, (h-8)/2*cell
		if bw > 0 && bh > 0 {
			return bw, bh
		}
	}
	return cfg.Board.Width, cfg.Board.Height
}

// runtimeConfig assembles the runtime parameters for a board.
func runtimeConfig(cfg config.MazeConfig, width, height int, seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if width > 0 && height > 0 {
		rc.BoardW, rc.BoardH = width, height
	}
	if cfg.Board.CellSize > 0 {
		rc.CellSize = cfg.Board.CellSize
	}
	rc.TargetCells = cfg.Generation.TargetCells
	rc.Seed = seed
	return rc
}

// engineOptions builds generator options seeded with seed.
func engineOptions(cfg config.MazeConfig, seed int64, logger *log.Logger) maze.Options {
	opts := cfg.EngineOptions()
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Logger = logger
	return opts
}

// fail prints an error and exits.
func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
