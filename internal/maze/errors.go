package maze

import "errors"

// ErrInvalidDimensions is returned when the board cannot hold a maze:
// non-positive width or height, or fewer than two cells after dividing
// by the cell size. A 1×1 grid is rejected since start and end must be
// distinct cells.
var ErrInvalidDimensions = errors.New("invalid dimensions")
