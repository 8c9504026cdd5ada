// Package maze generates shaped mazes.
//
// The pipeline runs shape generation, endpoint selection, carving and repair
// in that order. The resulting Maze is frozen: it is never mutated after New
// returns, so queries are safe to share between readers.
package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/shape"
)

// Maze is a generated maze restricted to a shape.
type Maze struct {
	cols, rows int
	mask       *grid.Mask
	passages   *grid.Passages
	start, end grid.Coord
	report     Report
}

// generator carries the working state of one generation.
type generator struct {
	opts     Options
	mask     *grid.Mask
	passages *grid.Passages
	report   Report
}

func (g *generator) fallback(f Fallback, msg string, keyvals ...interface{}) {
	g.report.record(f)
	g.opts.Logger.Warn(msg, append([]interface{}{"fallback", f}, keyvals...)...)
}

// New builds a maze for a board of width×height pixels. Each cell spans
// opts.CellSize pixels. A target of 0 uses every cell the board holds.
func New(width, height, target int, opts Options) (*Maze, error) {
	opts = opts.withDefaults()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("maze: board %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return NewGrid(width/opts.CellSize, height/opts.CellSize, target, opts)
}

// NewGrid builds a maze on a cols×rows grid. Grids with fewer than two
// cells fail with ErrInvalidDimensions.
func NewGrid(cols, rows, target int, opts Options) (*Maze, error) {
	if cols <= 0 || rows <= 0 || cols*rows < 2 {
		return nil, fmt.Errorf("maze: grid %dx%d: %w", cols, rows, ErrInvalidDimensions)
	}
	opts = opts.withDefaults()
	if target <= 0 || target > cols*rows {
		target = cols * rows
	}

	g := &generator{opts: opts}
	g.report.Target = target

	kind := opts.Kind
	if kind == "" {
		kind = shape.PickKind(opts.Kinds, opts.Rand)
	}
	radius := shape.Radius(target, cols, rows, opts.MinRadius)
	center := shape.Center(cols, rows)

	mask, err := shape.Generate(rows, cols, center, radius, kind, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	g.mask = mask
	g.report.Kind = kind
	g.report.Radius = radius
	g.report.CellsRaw = mask.Count()
	g.report.CellsShaped = shape.Normalize(mask, target, opts.Tolerance, nil, opts.Rand)
	opts.Logger.Debug("shape generated", "kind", kind, "radius", radius,
		"raw", g.report.CellsRaw, "shaped", g.report.CellsShaped, "target", target)

	start, end := g.selectEndpoints(target)
	g.passages = Carve(mask, start, opts.Rand)
	end = g.repair(start, end)
	g.report.CellsFinal = mask.Count()

	return &Maze{
		cols:     cols,
		rows:     rows,
		mask:     mask,
		passages: g.passages,
		start:    start,
		end:      end,
		report:   g.report,
	}, nil
}

// Cols returns the grid width in cells.
func (m *Maze) Cols() int { return m.cols }

// Rows returns the grid height in cells.
func (m *Maze) Rows() int { return m.rows }

// Start returns the start cell.
func (m *Maze) Start() grid.Coord { return m.start }

// End returns the end cell.
func (m *Maze) End() grid.Coord { return m.end }

// Report returns generation statistics and the fallbacks that fired.
func (m *Maze) Report() Report {
	r := m.report
	r.Fallbacks = append([]Fallback(nil), m.report.Fallbacks...)
	return r
}

// InShape reports whether (x, y) is part of the maze.
func (m *Maze) InShape(x, y int) bool {
	return m.mask.Has(grid.C(x, y))
}

// Passage returns the raw passage bits of (x, y), 0 outside the grid.
func (m *Maze) Passage(x, y int) uint8 {
	return m.passages.Value(grid.C(x, y))
}

// Mask returns a copy of the shape mask.
func (m *Maze) Mask() *grid.Mask { return m.mask.Clone() }

// Passages returns a copy of the passage grid.
func (m *Maze) Passages() *grid.Passages { return m.passages.Clone() }

// IsMoveAllowed reports whether a step of (dx, dy) from (x, y) is legal:
// the step is a unit cardinal vector, the destination lies in the shape and
// the passage between the two cells is open.
func (m *Maze) IsMoveAllowed(x, y, dx, dy int) bool {
	d, ok := grid.DirFromDelta(dx, dy)
	if !ok {
		return false
	}
	from := grid.C(x, y)
	if !m.mask.Has(from.Step(d)) {
		return false
	}
	return m.passages.Has(from, d)
}

// HasWall reports whether the cells are separated by a wall. Non-adjacent
// cells are always separated.
func (m *Maze) HasWall(fromX, fromY, toX, toY int) bool {
	from := grid.C(fromX, fromY)
	d, ok := grid.DirBetween(from, grid.C(toX, toY))
	if !ok {
		return true
	}
	return !m.passages.Has(from, d)
}

// Solution returns the passage path from start to end, both included.
func (m *Maze) Solution() []grid.Coord {
	return grid.PassagePath(m.passages, m.start, m.end)
}
