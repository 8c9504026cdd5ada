package grid

// Dir is one of the four cardinal directions. Its value is also the bit
// position used in the passage encoding: up=1, right=2, down=4, left=8.
type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
)

// Dirs lists the directions in bit order.
var Dirs = [4]Dir{Up, Right, Down, Left}

var (
	dirDX = [4]int{0, 1, 0, -1}
	dirDY = [4]int{-1, 0, 1, 0}
)

// Bit returns the passage bit for this direction.
func (d Dir) Bit() uint8 {
	return 1 << d
}

// Opposite returns the direction pointing back.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Delta returns the (dx, dy) unit offset for the direction.
func (d Dir) Delta() (int, int) {
	return dirDX[d%4], dirDY[d%4]
}

// DirFromDelta maps a unit cardinal vector to its direction.
// Any other vector (diagonals, zero, longer jumps) reports false.
func DirFromDelta(dx, dy int) (Dir, bool) {
	for _, d := range Dirs {
		if dirDX[d] == dx && dirDY[d] == dy {
			return d, true
		}
	}
	return 0, false
}

// DirBetween returns the direction leading from a to an adjacent b.
func DirBetween(a, b Coord) (Dir, bool) {
	return DirFromDelta(b.X-a.X, b.Y-a.Y)
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}
