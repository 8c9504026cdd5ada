package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagRunID string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded audit runs",
	Long: `Display the most recent audit runs, fallback frequencies and
per-kind statistics from the runs database.

Examples:
  maze history
  maze history --limit 25
  maze history --id 3f2c9a1e-...
  maze history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent runs to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	historyCmd.Flags().StringVar(&flagRunID, "id", "", "Show a single run in detail")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fail("opening runs database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fail("%v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagRunID != "" {
		run, err := store.RunByID(flagRunID)
		if err != nil {
			fail("%v", err)
		}
		if run == nil {
			fail("run %q not found", flagRunID)
		}
		printRun(*run)
		return
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'maze audit' to record some.")
		return
	}

	fmt.Printf("  %-8s  %-20s  %-9s  %-6s  %-5s  %-5s  %s\n", "ID", "Seed", "Kind", "Grid", "Cells", "Dist", "Fallbacks")
	fmt.Printf("  %-8s  %-20s  %-9s  %-6s  %-5s  %-5s  %s\n", "--", "----", "----", "----", "-----", "----", "---------")
	for _, r := range runs {
		fallbacks := strings.Join(r.Fallbacks, ",")
		if r.Violations > 0 {
			fallbacks = warnText(fmt.Sprintf("%d violations ", r.Violations)) + fallbacks
		}
		fmt.Printf("  %-8s  %-20d  %-9s  %-6s  %-5d  %-5d  %s\n",
			r.ID[:min(8, len(r.ID))], r.Seed, r.Kind, fmt.Sprintf("%dx%d", r.Cols, r.Rows),
			r.CellsFinal, r.Distance, fallbacks)
	}

	fmt.Println()
	fallbacks, err := store.FallbackStats()
	if err == nil {
		counts := make(map[maze.Fallback]int, len(fallbacks))
		for name, n := range fallbacks {
			counts[maze.Fallback(name)] = n
		}
		total := 0
		if kinds, err := store.AllKindStats(); err == nil {
			for _, k := range kinds {
				total += k.Runs
			}
			printFallbackTable(counts, total)
			fmt.Println()
			printKindStats(kinds)
		}
	}
}

func printKindStats(stats map[string]*storage.KindStats) {
	kinds := make([]string, 0, len(stats))
	for k := range stats {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	fmt.Printf("  %-9s  %-6s  %-9s  %-9s  %-10s  %s\n", "Kind", "Runs", "Avg cells", "Avg dist", "Violations", "Last run")
	fmt.Printf("  %-9s  %-6s  %-9s  %-9s  %-10s  %s\n", "----", "----", "---------", "--------", "----------", "--------")
	for _, k := range kinds {
		s := stats[k]
		fmt.Printf("  %-9s  %-6d  %-9.1f  %-9.1f  %-10d  %s\n",
			s.Kind, s.Runs, s.AvgCells, s.AvgDistance, s.Violations, s.LastRun.Format("2006-01-02 15:04"))
	}
}

func printRun(r storage.Run) {
	fallbacks := strings.Join(r.Fallbacks, ", ")
	if fallbacks == "" {
		fallbacks = "none"
	}
	lines := []string{
		fmt.Sprintf("Run: %s", r.ID),
		fmt.Sprintf("Recorded: %s", r.CreatedAt.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Seed: %d", r.Seed),
		fmt.Sprintf("Grid: %dx%d, target %d", r.Cols, r.Rows, r.Target),
		fmt.Sprintf("Kind: %s", r.Kind),
		fmt.Sprintf("Cells: raw %d, shaped %d, final %d", r.CellsRaw, r.CellsShaped, r.CellsFinal),
		fmt.Sprintf("Distance: %d (floor %d)", r.Distance, r.MinDistance),
		fmt.Sprintf("Repair: %d merge attempts, %d bridged, %d trimmed", r.MergeAttempts, r.Bridged, r.Trimmed),
		fmt.Sprintf("Fallbacks: %s", fallbacks),
	}
	if r.Violations > 0 {
		lines = append(lines, warnText(fmt.Sprintf("Violations: %d", r.Violations)))
	}
	fmt.Println(box(lines...))
}
