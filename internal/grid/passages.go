package grid

// Passages is the passage grid: one 4-bit value per cell where each bit
// marks an open passage toward the neighbor in that direction.
//
// Open and Close always update both sides of a wall, so a bit set from A
// toward B is mirrored by the opposite bit in B. Nothing else writes cells.
type Passages struct {
	W     int
	H     int
	cells []uint8
}

// NewPassages creates a fully walled passage grid.
func NewPassages(w, h int) *Passages {
	return &Passages{
		W:     w,
		H:     h,
		cells: make([]uint8, w*h),
	}
}

func (p *Passages) index(c Coord) int {
	return c.Y*p.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (p *Passages) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < p.W && c.Y >= 0 && c.Y < p.H
}

// Value returns the raw 0-15 passage value of a cell, 0 when out of bounds.
func (p *Passages) Value(c Coord) uint8 {
	if !p.InBounds(c) {
		return 0
	}
	return p.cells[p.index(c)]
}

// Has reports whether the passage from c in direction d is open.
func (p *Passages) Has(c Coord, d Dir) bool {
	return p.Value(c)&d.Bit() != 0
}

// Open carves the passage between c and its neighbor in direction d.
// Returns false without changes when either cell is out of bounds.
func (p *Passages) Open(c Coord, d Dir) bool {
	n := c.Step(d)
	if !p.InBounds(c) || !p.InBounds(n) {
		return false
	}
	p.cells[p.index(c)] |= d.Bit()
	p.cells[p.index(n)] |= d.Opposite().Bit()
	return true
}

// Close restores the wall between c and its neighbor in direction d.
func (p *Passages) Close(c Coord, d Dir) {
	n := c.Step(d)
	if !p.InBounds(c) || !p.InBounds(n) {
		return
	}
	p.cells[p.index(c)] &^= d.Bit()
	p.cells[p.index(n)] &^= d.Opposite().Bit()
}

// Isolate closes every passage of c.
func (p *Passages) Isolate(c Coord) {
	for _, d := range Dirs {
		if p.Has(c, d) {
			p.Close(c, d)
		}
	}
}

// Exits returns the number of open passages of c.
func (p *Passages) Exits(c Coord) int {
	v := p.Value(c)
	n := 0
	for _, d := range Dirs {
		if v&d.Bit() != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the passage grid.
func (p *Passages) Clone() *Passages {
	cells := make([]uint8, len(p.cells))
	copy(cells, p.cells)
	return &Passages{W: p.W, H: p.H, cells: cells}
}

// Rows returns the raw values as rows[y][x].
func (p *Passages) Rows() [][]uint8 {
	rows := make([][]uint8, p.H)
	for y := range rows {
		rows[y] = make([]uint8, p.W)
		copy(rows[y], p.cells[y*p.W:(y+1)*p.W])
	}
	return rows
}
