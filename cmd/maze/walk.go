package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/session"
)

var (
	flagMoves  string
	flagSolve  bool
	flagLevels int
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Replay moves through a maze",
	Long: `Generate a maze and walk it with a move sequence.

Moves are U, R, D and L (case-insensitive). Walls block a move without
ending the walk. Walking stops when the end is reached.

With --solve the solution path is walked instead. --levels repeats the
solve over consecutive levels, each with a new maze.

Examples:
  maze walk --seed 42 --moves RRDDLL
  maze walk --seed 42 --solve
  maze walk --seed 42 --solve --levels 5`,
	Run: runWalk,
}

func init() {
	walkCmd.Flags().StringVar(&flagMoves, "moves", "", "Move sequence, e.g. RRDDL")
	walkCmd.Flags().BoolVar(&flagSolve, "solve", false, "Walk the solution path")
	walkCmd.Flags().IntVar(&flagLevels, "levels", 1, "Levels to solve with --solve")
	walkCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in pixels")
	walkCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in pixels")
}

func runWalk(_ *cobra.Command, _ []string) {
	if flagMoves == "" && !flagSolve {
		fail("either --moves or --solve is required")
	}
	moves, err := session.ParseMoves(flagMoves)
	if err != nil {
		fail("%v", err)
	}

	logger, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	seed := resolveSeed()
	width, height := boardSize(cfg, flagWidth, flagHeight)
	difficulty := config.NewDifficultyManager(cfg)
	sess, err := session.New(
		runtimeConfig(cfg, width, height, seed),
		engineOptions(cfg, seed, logger),
		session.WithTarget(difficulty.Target),
	)
	if err != nil {
		fail("%v", err)
	}

	if !flagSolve {
		results := sess.Replay(moves)
		blocked := 0
		for _, r := range results {
			if !r.Moved {
				blocked++
			}
		}
		fmt.Println(colorize(sess.Render()))
		fmt.Println()
		fmt.Println(box(
			fmt.Sprintf("Seed:    %d", seed),
			fmt.Sprintf("Moves:   %d (%d blocked)", len(results), blocked),
			fmt.Sprintf("Steps:   %d", sess.Steps()),
			fmt.Sprintf("Player:  %s", sess.Player()),
			fmt.Sprintf("Reached: %t", sess.Reached()),
		))
		if !sess.Reached() {
			os.Exit(2)
		}
		return
	}

	for level := 1; level <= max(1, flagLevels); level++ {
		if level > 1 {
			if err := sess.Advance(); err != nil {
				fail("%v", err)
			}
		}
		path := session.PathMoves(sess.Maze().Solution())
		sess.Replay(path)
		fmt.Printf("Level %d: %dx%d, %d cells, solved in %d steps (%s)\n",
			sess.Level(), sess.Maze().Cols(), sess.Maze().Rows(),
			sess.Maze().Report().CellsFinal, sess.Steps(), session.FormatMoves(path))
		if !sess.Reached() {
			fail("level %d: solution did not reach the end", sess.Level())
		}
	}
}
