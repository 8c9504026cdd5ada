// Package shape synthesizes the organic region a maze is carved into.
//
// A shape is produced in two steps: a parametric generator evaluates a
// closed-form inclusion test around the grid center, then Normalize expands
// or shrinks the mask until its cell count is within tolerance of the target.
package shape

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// DefaultTolerance is the accepted relative deviation from the target cell count.
const DefaultTolerance = 0.2

// DefaultMinRadius keeps shapes from collapsing to a single cell.
const DefaultMinRadius = 2.0

// Generate builds the raw mask for the given kind.
func Generate(rows, cols int, center grid.Coord, radius float64, kind string, rng grid.Rand) (*grid.Mask, error) {
	s, err := registry.Create(kind)
	if err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}
	return s.Generate(registry.Params{
		Rows:   rows,
		Cols:   cols,
		Center: center,
		Radius: radius,
	}, rng), nil
}

// Radius derives the nominal radius for a target cell count:
// min(sqrt(target/π), min(cols, rows)/2), never below minRadius.
func Radius(target, cols, rows int, minRadius float64) float64 {
	r := math.Sqrt(float64(target) / math.Pi)
	maxRadius := float64(min(cols, rows)) / 2
	r = math.Min(r, maxRadius)
	if r < minRadius {
		r = minRadius
	}
	return r
}

// Center returns the anchor cell used for shapes on a cols×rows grid.
func Center(cols, rows int) grid.Coord {
	return grid.C(cols/2, rows/2)
}

// PickKind selects a kind uniformly from kinds, or from every registered
// kind when kinds is empty.
func PickKind(kinds []string, rng grid.Rand) string {
	if len(kinds) == 0 {
		kinds = registry.IDs()
	}
	if len(kinds) == 0 {
		return ""
	}
	return kinds[rng.Intn(len(kinds))]
}

// Normalize brings the occupied-cell count inside [target·(1-tol), target·(1+tol)].
// Out-of-band masks are resized to exactly target. Cells in protected are
// never removed. Returns the resulting count.
func Normalize(m *grid.Mask, target int, tolerance float64, protected []grid.Coord, rng grid.Rand) int {
	count := m.Count()
	low := float64(target) * (1 - tolerance)
	high := float64(target) * (1 + tolerance)

	switch {
	case float64(count) < low:
		Expand(m, target, rng)
	case float64(count) > high:
		Shrink(m, target, protected, rng)
	}
	return m.Count()
}
