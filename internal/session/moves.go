package session

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// ParseMoves converts a move string such as "RRDDL" into directions.
// U, R, D and L are accepted in either case. Whitespace is ignored.
func ParseMoves(s string) ([]grid.Dir, error) {
	var dirs []grid.Dir
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		d := strings.IndexRune("URDL", unicode.ToUpper(r))
		if d < 0 {
			return nil, fmt.Errorf("session: bad move %q at offset %d", r, i)
		}
		dirs = append(dirs, grid.Dir(d))
	}
	return dirs, nil
}

// Replay applies moves in order and returns the results.
// It stops early once the end is reached.
func (s *Session) Replay(moves []grid.Dir) []MoveResult {
	results := make([]MoveResult, 0, len(moves))
	for _, d := range moves {
		res := s.MoveDir(d)
		results = append(results, res)
		if res.Reached {
			break
		}
	}
	return results
}

// FormatMoves renders directions back into the U/R/D/L notation.
func FormatMoves(dirs []grid.Dir) string {
	var sb strings.Builder
	for _, d := range dirs {
		sb.WriteByte("URDL"[d])
	}
	return sb.String()
}

// PathMoves converts a cell path into the directions that walk it.
// Non-adjacent steps are skipped.
func PathMoves(path []grid.Coord) []grid.Dir {
	var dirs []grid.Dir
	for i := 1; i < len(path); i++ {
		if d, ok := grid.DirBetween(path[i-1], path[i]); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
