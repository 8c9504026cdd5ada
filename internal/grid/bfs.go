package grid

// ShapeDistances returns the 4-adjacency BFS distance from `from` to every
// cell of the mask, indexed like the mask. Walls are ignored; only occupancy
// matters. Unreachable or unoccupied cells hold -1.
func ShapeDistances(m *Mask, from Coord) []int {
	dist := make([]int, m.Len())
	for i := range dist {
		dist[i] = -1
	}
	if !m.Has(from) {
		return dist
	}

	queue := []Coord{from}
	dist[m.Index(from)] = 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range Dirs {
			next := curr.Step(d)
			if !m.Has(next) || dist[m.Index(next)] >= 0 {
				continue
			}
			dist[m.Index(next)] = dist[m.Index(curr)] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// Reachable marks every cell reachable from `from` by following open
// passages. The result is indexed like the mask.
func Reachable(p *Passages, from Coord) []bool {
	seen := make([]bool, p.W*p.H)
	if !p.InBounds(from) {
		return seen
	}

	queue := []Coord{from}
	seen[p.index(from)] = true
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range Dirs {
			if !p.Has(curr, d) {
				continue
			}
			next := curr.Step(d)
			if !p.InBounds(next) || seen[p.index(next)] {
				continue
			}
			seen[p.index(next)] = true
			queue = append(queue, next)
		}
	}
	return seen
}

// ShortestPath runs a multi-source BFS over 4-adjacency from sources through
// cells accepted by passable, stopping at the first cell accepted by goal.
// The returned path starts at one of the sources and ends at the goal cell.
// Returns nil when no goal is reachable.
func ShortestPath(w, h int, sources []Coord, passable, goal func(Coord) bool) []Coord {
	inBounds := func(c Coord) bool {
		return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
	}
	index := func(c Coord) int { return c.Y*w + c.X }

	cameFrom := make([]int, w*h)
	for i := range cameFrom {
		cameFrom[i] = -2
	}

	queue := make([]Coord, 0, len(sources))
	for _, s := range sources {
		if !inBounds(s) || cameFrom[index(s)] != -2 {
			continue
		}
		if goal(s) {
			return []Coord{s}
		}
		cameFrom[index(s)] = -1
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range Dirs {
			next := curr.Step(d)
			if !inBounds(next) || cameFrom[index(next)] != -2 {
				continue
			}
			isGoal := goal(next)
			if !isGoal && !passable(next) {
				continue
			}
			cameFrom[index(next)] = index(curr)
			if isGoal {
				return tracePath(w, cameFrom, index(next))
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// tracePath walks cameFrom links back to a source and returns the path in
// source-to-goal order.
func tracePath(w int, cameFrom []int, at int) []Coord {
	var rev []Coord
	for at >= 0 {
		rev = append(rev, C(at%w, at/w))
		at = cameFrom[at]
	}
	path := make([]Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// PassagePath returns the shortest path from `from` to `to` following open
// passages only, or nil when `to` is unreachable.
func PassagePath(p *Passages, from, to Coord) []Coord {
	if !p.InBounds(from) || !p.InBounds(to) {
		return nil
	}
	if from == to {
		return []Coord{from}
	}

	cameFrom := make([]int, p.W*p.H)
	for i := range cameFrom {
		cameFrom[i] = -2
	}
	cameFrom[p.index(from)] = -1

	queue := []Coord{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range Dirs {
			if !p.Has(curr, d) {
				continue
			}
			next := curr.Step(d)
			if !p.InBounds(next) || cameFrom[p.index(next)] != -2 {
				continue
			}
			cameFrom[p.index(next)] = p.index(curr)
			if next == to {
				return tracePath(p.W, cameFrom, p.index(next))
			}
			queue = append(queue, next)
		}
	}
	return nil
}
