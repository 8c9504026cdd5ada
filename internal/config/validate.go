package config

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-maze/internal/registry"
)

// Validation error codes.
const (
	CodeCellSize   = "cell_size"
	CodeBoard      = "board"
	CodeTarget     = "target_cells"
	CodeTolerance  = "tolerance"
	CodeMinRadius  = "min_radius"
	CodeKind       = "kind"
	CodeAttempts   = "attempts"
	CodeExpandStep = "expand_step"
	CodeGrowth     = "growth"
	CodePreset     = "preset"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...interface{}) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the configuration for values the generator cannot use.
func (c MazeConfig) Validate() error {
	if c.Board.CellSize <= 0 {
		return invalid(CodeCellSize, "cell size must be positive, got %d", c.Board.CellSize)
	}
	if c.Board.Width < 0 || c.Board.Height < 0 {
		return invalid(CodeBoard, "board size must not be negative, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Generation.TargetCells < 0 {
		return invalid(CodeTarget, "target cells must not be negative, got %d", c.Generation.TargetCells)
	}
	if c.Generation.Tolerance <= 0 || c.Generation.Tolerance >= 1 {
		return invalid(CodeTolerance, "tolerance must be in (0, 1), got %g", c.Generation.Tolerance)
	}
	if c.Generation.MinRadius < 0 {
		return invalid(CodeMinRadius, "min radius must not be negative, got %g", c.Generation.MinRadius)
	}
	for _, kind := range c.Generation.Kinds {
		if !registry.Exists(kind) {
			return invalid(CodeKind, "unknown shape kind %q (known: %v)", kind, registry.IDs())
		}
	}
	if c.Repair.MaxMergeAttempts < 0 || c.Endpoints.MaxExpandAttempts < 0 {
		return invalid(CodeAttempts, "attempt limits must not be negative")
	}
	if c.Endpoints.ExpandStep < 0 || c.Endpoints.ExpandStep > 1 {
		return invalid(CodeExpandStep, "expand step must be in [0, 1], got %g", c.Endpoints.ExpandStep)
	}
	if c.Levels.Growth < 0 {
		return invalid(CodeGrowth, "level growth must not be negative, got %g", c.Levels.Growth)
	}
	known := []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, ""}
	if !slices.Contains(known, DifficultyPreset(c.Difficulty.Preset)) {
		return invalid(CodePreset, "unknown difficulty preset %q", c.Difficulty.Preset)
	}
	for name, frac := range c.Difficulty.Presets {
		if frac <= 0 || frac > 1 {
			return invalid(CodePreset, "preset %q fraction must be in (0, 1], got %g", name, frac)
		}
	}
	return nil
}
