package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

var (
	flagWidth      int
	flagHeight     int
	flagTarget     int
	flagKind       string
	flagDifficulty string
	flagFormat     string
	flagSolution   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and print a maze",
	Long: `Generate a maze for a board of --width × --height pixels and print it.

Without --width/--height the board fits the terminal, or falls back to the
configured board size.

Difficulty options:
  easy   - 25% of the board's cells
  normal - 50% of the board's cells
  hard   - 85% of the board's cells
  fixed  - Use generation.target_cells from the config

Examples:
  maze generate
  maze generate --kind spiral --seed 7
  maze generate --difficulty hard --solution
  maze generate --width 320 --height 240 --target 120 --format yaml`,
	Run: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in pixels")
	generateCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in pixels")
	generateCmd.Flags().IntVar(&flagTarget, "target", -1, "Target cell count (0 = every cell, -1 = from config)")
	generateCmd.Flags().StringVar(&flagKind, "kind", "", "Shape kind (see 'maze kinds')")
	generateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	generateCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
	generateCmd.Flags().BoolVar(&flagSolution, "solution", false, "Mark the solution path")
}

// mazeDump is the YAML form of a generated maze.
type mazeDump struct {
	Seed      int64     `yaml:"seed"`
	Cols      int       `yaml:"cols"`
	Rows      int       `yaml:"rows"`
	Kind      string    `yaml:"kind"`
	Start     [2]int    `yaml:"start,flow"`
	End       [2]int    `yaml:"end,flow"`
	Mask      []string  `yaml:"mask"`     // '#' in shape, '.' outside
	Passages  []string  `yaml:"passages"` // one hex digit per cell: 1=up 2=right 4=down 8=left
	Solution  [][2]int  `yaml:"solution,omitempty,flow"`
	Fallbacks []string  `yaml:"fallbacks,omitempty,flow"`
	Stats     dumpStats `yaml:"stats"`
}

type dumpStats struct {
	Target      int `yaml:"target"`
	Cells       int `yaml:"cells"`
	MinDistance int `yaml:"min_distance"`
	Distance    int `yaml:"distance"`
}

func runGenerate(cmd *cobra.Command, _ []string) {
	logger, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
		if err := cfg.Validate(); err != nil {
			fail("%v", err)
		}
	}

	seed := resolveSeed()
	width, height := boardSize(cfg, flagWidth, flagHeight)
	rc := runtimeConfig(cfg, width, height, seed)

	target := flagTarget
	if !cmd.Flags().Changed("target") {
		cols, rows := rc.GridSize()
		target = config.NewDifficultyManager(cfg).Target(cols, rows, 1)
	}

	opts := engineOptions(cfg, seed, logger)
	opts.Kind = flagKind
	m, err := maze.New(rc.BoardW, rc.BoardH, target, opts)
	if err != nil {
		fail("%v", err)
	}

	switch flagFormat {
	case "yaml":
		if err := writeYAML(m, seed); err != nil {
			fail("%v", err)
		}
	case "text":
		printMaze(m, seed)
	default:
		fail("unknown format %q (text or yaml)", flagFormat)
	}
}

func printMaze(m *maze.Maze, seed int64) {
	marks := map[grid.Coord]rune{}
	if flagSolution {
		for _, c := range m.Solution() {
			marks[c] = '.'
		}
	}
	marks[m.Start()] = 'S'
	marks[m.End()] = 'E'
	fmt.Println(colorize(m.Render(marks)))
	fmt.Println()

	rep := m.Report()
	lines := []string{
		fmt.Sprintf("Seed:     %d", seed),
		fmt.Sprintf("Grid:     %dx%d", m.Cols(), m.Rows()),
		fmt.Sprintf("Shape:    %s (radius %.1f)", rep.Kind, rep.Radius),
		fmt.Sprintf("Cells:    %d (target %d)", rep.CellsFinal, rep.Target),
		fmt.Sprintf("Distance: %d (floor %d)", rep.Distance, rep.MinDistance),
	}
	if len(rep.Fallbacks) > 0 {
		lines = append(lines, fmt.Sprintf("Fallback: %s", rep.FallbackList()))
	}
	fmt.Println(box(lines...))
}

func writeYAML(m *maze.Maze, seed int64) error {
	rep := m.Report()
	dump := mazeDump{
		Seed:  seed,
		Cols:  m.Cols(),
		Rows:  m.Rows(),
		Kind:  rep.Kind,
		Start: [2]int{m.Start().X, m.Start().Y},
		End:   [2]int{m.End().X, m.End().Y},
		Stats: dumpStats{
			Target:      rep.Target,
			Cells:       rep.CellsFinal,
			MinDistance: rep.MinDistance,
			Distance:    rep.Distance,
		},
	}
	for y := 0; y < m.Rows(); y++ {
		var mask, pass strings.Builder
		for x := 0; x < m.Cols(); x++ {
			if m.InShape(x, y) {
				mask.WriteByte('#')
			} else {
				mask.WriteByte('.')
			}
			fmt.Fprintf(&pass, "%x", m.Passage(x, y))
		}
		dump.Mask = append(dump.Mask, mask.String())
		dump.Passages = append(dump.Passages, pass.String())
	}
	if flagSolution {
		for _, c := range m.Solution() {
			dump.Solution = append(dump.Solution, [2]int{c.X, c.Y})
		}
	}
	for _, f := range rep.Fallbacks {
		dump.Fallbacks = append(dump.Fallbacks, string(f))
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("cannot encode maze: %w", err)
	}
	return enc.Close()
}
