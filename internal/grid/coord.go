// Package grid holds the positional primitives shared by the maze engine:
// coordinates, cardinal directions, the shape mask and the passage grid.
package grid

import "fmt"

// Coord represents a cell position on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighboring Coord one cell in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// around8 lists the offsets of the eight surrounding cells, row-major.
var around8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Around returns the eight surrounding coordinates (no bounds check).
func (c Coord) Around() [8]Coord {
	var out [8]Coord
	for i, o := range around8 {
		out[i] = c.Add(o[0], o[1])
	}
	return out
}
