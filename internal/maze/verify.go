package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// Properties checked by Verify.
const (
	PropConnectivity = "connectivity"
	PropSymmetry     = "symmetry"
	PropDeadCell     = "dead-cell"
	PropOutOfShape   = "out-of-shape"
	PropEndpoints    = "endpoints"
	PropSolvable     = "solvable"
	PropDistance     = "distance"
)

// Violation describes a broken maze property.
type Violation struct {
	Property string
	Cell     grid.Coord
	Detail   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %s: %s", v.Property, v.Cell, v.Detail)
}

// Verify checks the structural guarantees of a generated maze and returns
// every violation found. A nil result means the maze is sound. The distance
// floor is measured on the maze's own shape and is not enforced when the
// farthest-candidate fallback fired.
func Verify(m *Maze) []Violation {
	var out []Violation
	add := func(prop string, c grid.Coord, format string, args ...interface{}) {
		out = append(out, Violation{Property: prop, Cell: c, Detail: fmt.Sprintf(format, args...)})
	}

	p := m.passages
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			c := grid.C(x, y)
			inShape := m.mask.Has(c)
			if !inShape && p.Value(c) != 0 {
				add(PropOutOfShape, c, "passage bits %04b outside shape", p.Value(c))
			}
			if inShape && p.Value(c) == 0 {
				add(PropDeadCell, c, "no exits")
			}
			for _, d := range grid.Dirs {
				nb := c.Step(d)
				if !p.Has(c, d) {
					continue
				}
				if !p.InBounds(nb) {
					add(PropSymmetry, c, "passage %s leaves the grid", d)
					continue
				}
				if !p.Has(nb, d.Opposite()) {
					add(PropSymmetry, c, "passage %s not mirrored by %s", d, nb)
				}
			}
		}
	}

	if !m.mask.Has(m.start) || !m.mask.Has(m.end) {
		add(PropEndpoints, m.start, "endpoint outside shape (end %s)", m.end)
	}
	if m.start == m.end {
		add(PropEndpoints, m.start, "start equals end")
	}

	reach := grid.Reachable(p, m.start)
	missing := 0
	var first grid.Coord
	for _, c := range m.mask.Coords() {
		if !reach[m.mask.Index(c)] {
			if missing == 0 {
				first = c
			}
			missing++
		}
	}
	if missing > 0 {
		add(PropConnectivity, first, "%d of %d shape cells unreachable", missing, m.mask.Count())
	}

	if m.Solution() == nil {
		add(PropSolvable, m.end, "no passage path from %s", m.start)
	}

	if m.mask.Has(m.end) && !m.report.Fell(FallbackFarthest) {
		d := grid.ShapeDistances(m.mask, m.start)[m.mask.Index(m.end)]
		if d < m.report.MinDistance {
			add(PropDistance, m.end, "shape distance %d below floor %d", d, m.report.MinDistance)
		}
	}
	return out
}
