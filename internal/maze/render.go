package maze

import (
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/grid"
)

// Render draws the maze as ASCII art. Each cell is three characters wide,
// walls are drawn with '+', '-' and '|' and cells outside the shape are
// left blank. marks places a rune in the middle of the given cells.
func (m *Maze) Render(marks map[grid.Coord]rune) string {
	scr := core.NewScreen(m.cols*4+1, m.rows*2+1)

	for _, c := range m.mask.Coords() {
		x, y := c.X*4, c.Y*2
		for _, corner := range [][2]int{{0, 0}, {4, 0}, {0, 2}, {4, 2}} {
			scr.Set(x+corner[0], y+corner[1], '+')
		}
		if !m.passages.Has(c, grid.Up) {
			scr.DrawHLine(x+1, y, 3, '-')
		}
		if !m.passages.Has(c, grid.Down) {
			scr.DrawHLine(x+1, y+2, 3, '-')
		}
		if !m.passages.Has(c, grid.Left) {
			scr.Set(x, y+1, '|')
		}
		if !m.passages.Has(c, grid.Right) {
			scr.Set(x+4, y+1, '|')
		}
		if r, ok := marks[c]; ok {
			scr.Set(x+2, y+1, r)
		}
	}
	return scr.Text()
}

// String renders the maze with 'S' at the start and 'E' at the end.
func (m *Maze) String() string {
	return m.Render(map[grid.Coord]rune{m.start: 'S', m.end: 'E'})
}
