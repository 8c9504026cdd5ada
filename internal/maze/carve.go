package maze

import "github.com/vovakirdan/tui-maze/internal/grid"

// Carve runs a randomized depth-first backtracker over the cells of mask
// 4-connected to start. The result is a spanning tree of that component.
// Shape cells outside the component keep zero passage bits.
func Carve(mask *grid.Mask, start grid.Coord, rng grid.Rand) *grid.Passages {
	p := grid.NewPassages(mask.W, mask.H)
	carveFrom(p, mask, grid.NewMask(mask.W, mask.H), start, rng)
	return p
}

type frame struct {
	at   grid.Coord
	dirs [4]grid.Dir
	next int
}

// carveFrom extends the tree in p from start into unvisited cells of mask.
// visited is updated in place. Returns the number of cells newly visited.
func carveFrom(p *grid.Passages, mask, visited *grid.Mask, start grid.Coord, rng grid.Rand) int {
	if !mask.Has(start) {
		return 0
	}
	n := 0
	if !visited.Has(start) {
		visited.Set(start, true)
		n++
	}

	stack := []frame{{at: start, dirs: grid.ShuffledDirs(rng)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		nb := top.at.Step(d)
		if !mask.Has(nb) || visited.Has(nb) {
			continue
		}
		p.Open(top.at, d)
		visited.Set(nb, true)
		n++
		stack = append(stack, frame{at: nb, dirs: grid.ShuffledDirs(rng)})
	}
	return n
}
