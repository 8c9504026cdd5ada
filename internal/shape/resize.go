package shape

import "github.com/vovakirdan/tui-maze/internal/grid"

// cellSet is an indexable set of coordinates supporting O(1) random removal.
type cellSet struct {
	items []grid.Coord
	pos   []int // mask index -> position in items, -1 when absent
	m     *grid.Mask
}

func newCellSet(m *grid.Mask) *cellSet {
	pos := make([]int, m.Len())
	for i := range pos {
		pos[i] = -1
	}
	return &cellSet{pos: pos, m: m}
}

func (s *cellSet) len() int {
	return len(s.items)
}

func (s *cellSet) add(c grid.Coord) {
	i := s.m.Index(c)
	if s.pos[i] >= 0 {
		return
	}
	s.pos[i] = len(s.items)
	s.items = append(s.items, c)
}

func (s *cellSet) remove(c grid.Coord) {
	i := s.m.Index(c)
	p := s.pos[i]
	if p < 0 {
		return
	}
	last := s.items[len(s.items)-1]
	s.items[p] = last
	s.pos[s.m.Index(last)] = p
	s.items = s.items[:len(s.items)-1]
	s.pos[i] = -1
}

func (s *cellSet) take(k int) grid.Coord {
	c := s.items[k]
	s.remove(c)
	return c
}

// Expand grows the mask toward target by repeatedly occupying a random
// border cell: an empty cell 8-adjacent to an occupied one. An empty mask
// is seeded at the grid center first. When no border cell exists, a square
// spiral sweep from the center supplies the next empty cell.
// Returns the number of cells added.
func Expand(m *grid.Mask, target int, rng grid.Rand) int {
	if target > m.Len() {
		target = m.Len()
	}
	count := m.Count()
	added := 0
	if count >= target {
		return 0
	}

	border := newCellSet(m)
	occupy := func(c grid.Coord) {
		m.Set(c, true)
		border.remove(c)
		count++
		added++
		for _, n := range c.Around() {
			if m.InBounds(n) && !m.Has(n) {
				border.add(n)
			}
		}
	}

	if count == 0 {
		occupy(Center(m.W, m.H))
	}

	// Row-major scan so the initial border order is stable for a given mask.
	for i := 0; i < m.Len(); i++ {
		c := m.CoordAt(i)
		if m.Has(c) {
			continue
		}
		for _, n := range c.Around() {
			if m.Has(n) {
				border.add(c)
				break
			}
		}
	}

	for count < target {
		if border.len() == 0 {
			c, ok := sweepFromCenter(m)
			if !ok {
				break
			}
			occupy(c)
			continue
		}
		occupy(border.take(rng.Intn(border.len())))
	}
	return added
}

// sweepFromCenter walks square rings outward from the center and returns
// the first empty in-bounds cell.
func sweepFromCenter(m *grid.Mask) (grid.Coord, bool) {
	center := Center(m.W, m.H)
	maxRing := max(m.W, m.H)
	for r := 0; r <= maxRing; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				c := center.Add(dx, dy)
				if m.InBounds(c) && !m.Has(c) {
					return c, true
				}
			}
		}
	}
	return grid.Coord{}, false
}

// Shrink trims the mask toward target by repeatedly clearing a random
// border cell: an occupied cell 8-adjacent to an empty or off-grid cell.
// Protected cells are never cleared, and the mask never drops below one cell.
// Returns the number of cells removed.
func Shrink(m *grid.Mask, target int, protected []grid.Coord, rng grid.Rand) int {
	floor := max(target, 1)
	count := m.Count()
	removed := 0

	keep := make(map[grid.Coord]bool, len(protected))
	for _, c := range protected {
		keep[c] = true
	}

	border := newCellSet(m)
	for _, c := range m.Coords() {
		if keep[c] {
			continue
		}
		for _, n := range c.Around() {
			if !m.Has(n) {
				border.add(c)
				break
			}
		}
	}

	for count > floor && border.len() > 0 {
		c := border.take(rng.Intn(border.len()))
		m.Set(c, false)
		count--
		removed++
		for _, n := range c.Around() {
			if m.Has(n) && !keep[n] {
				border.add(n)
			}
		}
	}
	return removed
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
