// Package core provides fundamental types shared by the maze engine and its
// front ends: the runtime configuration and a character buffer for text dumps.
// It has no external dependencies so engine code stays pure and testable.
package core

import (
	"strings"
)

// Screen is a 2D character buffer used to compose text renderings of a maze.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]rune, height)
	for y := range s.cells {
		s.cells[y] = make([]rune, width)
	}
	s.Clear()
	return s
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// Text returns the buffer rows joined with newlines, trailing spaces removed.
func (s *Screen) Text() string {
	lines := make([]string, s.height)
	for y := range lines {
		lines[y] = strings.TrimRight(string(s.cells[y]), " ")
	}
	return strings.Join(lines, "\n")
}
