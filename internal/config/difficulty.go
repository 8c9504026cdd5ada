package config

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// DifficultyManager calculates the target cell count for a level.
type DifficultyManager struct {
	cfg    MazeConfig
	preset DifficultyPreset
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg MazeConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:    cfg,
		preset: DifficultyPreset(cfg.Difficulty.Preset),
	}
}

// Fraction returns the share of board cells the active preset targets,
// or 0 when the configured target is used.
func (d *DifficultyManager) Fraction() float64 {
	if IsFixedPreset(d.preset) {
		return 0
	}
	if frac, ok := d.cfg.Difficulty.Presets[string(d.preset)]; ok {
		return frac
	}
	return FractionForPreset(d.preset)
}

// Target returns the target cell count for a cols×rows grid at the given
// level (1-based). The result never exceeds cols·rows. A result of 0 means
// every cell.
func (d *DifficultyManager) Target(cols, rows, level int) int {
	total := cols * rows
	base := d.cfg.Generation.TargetCells
	if frac := d.Fraction(); frac > 0 {
		base = int(math.Round(frac * float64(total)))
	}
	if base <= 0 || total <= 0 {
		return 0
	}

	if level > 1 && d.cfg.Levels.Growth > 0 {
		// Target grows linearly with the level
		base = int(math.Round(float64(base) * (1 + d.cfg.Levels.Growth*float64(level-1))))
	}
	if base > total {
		base = total
	}
	return base
}

// EngineOptions converts the configuration into generator options. Rand and
// Logger are left for the caller to fill in.
func (c MazeConfig) EngineOptions() maze.Options {
	return maze.Options{
		CellSize:          c.Board.CellSize,
		Kinds:             c.Generation.Kinds,
		Tolerance:         core.ClampF(c.Generation.Tolerance, 0, 1),
		MinRadius:         c.Generation.MinRadius,
		MaxMergeAttempts:  c.Repair.MaxMergeAttempts,
		MaxExpandAttempts: c.Endpoints.MaxExpandAttempts,
		ExpandStep:        c.Endpoints.ExpandStep,
	}
}
