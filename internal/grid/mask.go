package grid

// Mask is the shape mask: a W×H occupancy matrix where true marks a cell
// that participates in the maze. Cells are stored row-major: index = y*W + x.
type Mask struct {
	W     int
	H     int
	cells []bool
}

// NewMask creates an empty mask with the given dimensions.
func NewMask(w, h int) *Mask {
	return &Mask{
		W:     w,
		H:     h,
		cells: make([]bool, w*h),
	}
}

// MaskFromRows builds a mask from rows[y][x]. Rows shorter than the first
// row are padded with false.
func MaskFromRows(rows [][]bool) *Mask {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	m := NewMask(w, h)
	for y, row := range rows {
		for x := 0; x < w && x < len(row); x++ {
			m.cells[y*w+x] = row[x]
		}
	}
	return m
}

// Index converts a coordinate to a flat array index.
func (m *Mask) Index(c Coord) int {
	return c.Y*m.W + c.X
}

// CoordAt converts a flat index back to a coordinate.
func (m *Mask) CoordAt(i int) Coord {
	return C(i%m.W, i/m.W)
}

// Len returns the total number of cells, occupied or not.
func (m *Mask) Len() int {
	return len(m.cells)
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (m *Mask) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.W && c.Y >= 0 && c.Y < m.H
}

// Has reports whether the cell is occupied. Out-of-bounds cells never are.
func (m *Mask) Has(c Coord) bool {
	if !m.InBounds(c) {
		return false
	}
	return m.cells[m.Index(c)]
}

// Set marks the cell occupied or empty. Out-of-bounds writes are ignored.
func (m *Mask) Set(c Coord, v bool) {
	if m.InBounds(c) {
		m.cells[m.Index(c)] = v
	}
}

// Clear empties every cell.
func (m *Mask) Clear() {
	for i := range m.cells {
		m.cells[i] = false
	}
}

// Count returns the number of occupied cells.
func (m *Mask) Count() int {
	count := 0
	for _, v := range m.cells {
		if v {
			count++
		}
	}
	return count
}

// Coords returns all occupied coordinates ordered by row then column.
func (m *Mask) Coords() []Coord {
	coords := make([]Coord, 0)
	for i, v := range m.cells {
		if v {
			coords = append(coords, m.CoordAt(i))
		}
	}
	return coords
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	cells := make([]bool, len(m.cells))
	copy(cells, m.cells)
	return &Mask{W: m.W, H: m.H, cells: cells}
}

// Rows returns the mask as rows[y][x].
func (m *Mask) Rows() [][]bool {
	rows := make([][]bool, m.H)
	for y := range rows {
		rows[y] = make([]bool, m.W)
		copy(rows[y], m.cells[y*m.W:(y+1)*m.W])
	}
	return rows
}
