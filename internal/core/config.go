package core

// Defaults for board-to-grid derivation.
const (
	DefaultCellSize    = 16  // Pixels per cell edge
	DefaultTargetCells = 400 // Cells requested per level
)

// RuntimeConfig contains the parameters a maze session is built from.
// The board is measured in pixels; the grid is derived by floor division.
type RuntimeConfig struct {
	BoardW      int   // Board width in pixels
	BoardH      int   // Board height in pixels
	CellSize    int   // Cell edge in pixels
	TargetCells int   // Desired occupied cells (0 = every cell the board holds)
	Seed        int64 // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:      640,
		BoardH:      480,
		CellSize:    DefaultCellSize,
		TargetCells: DefaultTargetCells,
		Seed:        0, // 0 means use current time in the CLI layer
	}
}

// GridSize returns the number of whole cells that fit on the board.
// A non-positive cell size falls back to DefaultCellSize.
func (c RuntimeConfig) GridSize() (cols, rows int) {
	cell := c.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	if c.BoardW <= 0 || c.BoardH <= 0 {
		return 0, 0
	}
	return c.BoardW / cell, c.BoardH / cell
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
