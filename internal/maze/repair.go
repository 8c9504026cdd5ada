package maze

import (
	"github.com/vovakirdan/tui-maze/internal/grid"
)

// Repair makes every shape cell reachable from start over open passages,
// removes walled-in cells and guarantees a path from start to end. mask and
// p are modified in place. The returned end differs from the input only when
// the original end had to be replaced. Repair knows no target, so it enforces
// no distance floor; NewGrid does.
func Repair(mask *grid.Mask, p *grid.Passages, start, end grid.Coord, opts Options) (grid.Coord, Report) {
	g := &generator{opts: opts.withDefaults(), mask: mask, passages: p}
	end = g.repair(start, end)
	return end, g.report
}

func (g *generator) repair(start, end grid.Coord) grid.Coord {
	g.mergeClusters(start)
	g.stitchOrphans(start)
	g.openDeadCells()
	g.trimUnreachable(start)
	g.forcePath(start, end)
	return g.settleEnd(start, end)
}

// connected returns the passage-reachable set from start as a mask and the
// shape cells missing from it.
func (g *generator) connected(start grid.Coord) (*grid.Mask, []grid.Coord) {
	reach := grid.Reachable(g.passages, start)
	set := grid.NewMask(g.mask.W, g.mask.H)
	var orphans []grid.Coord
	for i, ok := range reach {
		c := g.mask.CoordAt(i)
		switch {
		case ok:
			set.Set(c, true)
		case g.mask.Has(c):
			orphans = append(orphans, c)
		}
	}
	return set, orphans
}

// clusters groups cells into maximal 4-connected components.
func clusters(w, h int, cells []grid.Coord) [][]grid.Coord {
	pending := grid.NewMask(w, h)
	for _, c := range cells {
		pending.Set(c, true)
	}

	var out [][]grid.Coord
	for _, c := range cells {
		if !pending.Has(c) {
			continue
		}
		pending.Set(c, false)
		group := []grid.Coord{c}
		for i := 0; i < len(group); i++ {
			for _, d := range grid.Dirs {
				nb := group[i].Step(d)
				if pending.Has(nb) {
					pending.Set(nb, false)
					group = append(group, nb)
				}
			}
		}
		out = append(out, group)
	}
	return out
}

// mergeClusters bridges every orphan cluster to the connected set along the
// shortest grid path, then carves a subtree through the cluster.
func (g *generator) mergeClusters(start grid.Coord) {
	for attempt := 0; attempt < g.opts.MaxMergeAttempts; attempt++ {
		set, orphans := g.connected(start)
		if len(orphans) == 0 {
			return
		}
		g.report.MergeAttempts++
		groups := clusters(g.mask.W, g.mask.H, orphans)
		g.opts.Logger.Debug("merging orphan clusters", "attempt", attempt+1,
			"orphans", len(orphans), "clusters", len(groups))

		for _, group := range groups {
			g.mergeCluster(group, set)
		}
	}

	if _, orphans := g.connected(start); len(orphans) > 0 {
		g.fallback(FallbackMergeExhausted, "cluster merge did not converge",
			"attempts", g.opts.MaxMergeAttempts, "orphans", len(orphans))
	}
}

func (g *generator) mergeCluster(group []grid.Coord, set *grid.Mask) {
	// An earlier bridge may already run through this cluster.
	anchored := false
	for _, c := range group {
		if set.Has(c) {
			carveFrom(g.passages, g.mask, set, c, g.opts.Rand)
			anchored = true
		}
	}
	if anchored {
		return
	}

	path := g.bridge(group, set)
	if path == nil {
		return
	}
	carveFrom(g.passages, g.mask, set, path[0], g.opts.Rand)
}

// bridge carves the shortest grid path from any of sources to the connected
// set, ignoring walls and shape. Cells on the path join the shape and the set.
func (g *generator) bridge(sources []grid.Coord, set *grid.Mask) []grid.Coord {
	path := grid.ShortestPath(g.mask.W, g.mask.H, sources,
		func(grid.Coord) bool { return true },
		set.Has,
	)
	if path == nil {
		return nil
	}
	g.carvePath(path)
	for _, c := range path {
		set.Set(c, true)
	}
	return path
}

// carvePath opens passages along consecutive path cells, promoting any
// out-of-shape cell into the shape.
func (g *generator) carvePath(path []grid.Coord) {
	for i, c := range path {
		if !g.mask.Has(c) {
			g.mask.Set(c, true)
			g.report.Bridged++
		}
		if i == 0 {
			continue
		}
		if d, ok := grid.DirBetween(path[i-1], c); ok {
			g.passages.Open(path[i-1], d)
		}
	}
}

// stitchOrphans connects each remaining orphan cell on its own.
func (g *generator) stitchOrphans(start grid.Coord) {
	set, orphans := g.connected(start)
	for _, c := range orphans {
		if set.Has(c) {
			continue
		}
		g.bridge([]grid.Coord{c}, set)
	}
}

// openDeadCells gives every shape cell without exits a passage to a random
// in-shape neighbor.
func (g *generator) openDeadCells() {
	for _, c := range g.mask.Coords() {
		if g.passages.Value(c) != 0 {
			continue
		}
		var dirs []grid.Dir
		for _, d := range grid.Dirs {
			if g.mask.Has(c.Step(d)) {
				dirs = append(dirs, d)
			}
		}
		if len(dirs) == 0 {
			continue
		}
		d := dirs[g.opts.Rand.Intn(len(dirs))]
		g.passages.Open(c, d)
		g.fallback(FallbackDeadCell, "forced exit on walled-in cell", "cell", c, "dir", d)
	}
}

// trimUnreachable drops shape cells that cannot be reached from start.
func (g *generator) trimUnreachable(start grid.Coord) {
	_, orphans := g.connected(start)
	for _, c := range orphans {
		g.mask.Set(c, false)
		g.passages.Isolate(c)
	}
	if len(orphans) > 0 {
		g.report.Trimmed += len(orphans)
		g.fallback(FallbackTrim, "unreachable cells removed from shape", "cells", len(orphans))
	}
}

// forcePath carves a direct start to end path when end is not reachable.
func (g *generator) forcePath(start, end grid.Coord) {
	if !g.mask.InBounds(end) || grid.PassagePath(g.passages, start, end) != nil {
		return
	}
	path := grid.ShortestPath(g.mask.W, g.mask.H, []grid.Coord{start},
		func(grid.Coord) bool { return true },
		func(c grid.Coord) bool { return c == end },
	)
	if path == nil {
		return
	}
	g.carvePath(path)
	g.fallback(FallbackForcedPath, "carved direct path to end", "length", len(path)-1)
}

// settleEnd checks end against the final shape. Bridging can promote cells
// that shorten the start to end distance, and trimming can drop end. An end
// that left the shape, collapsed onto start or fell below the distance floor
// is replaced by a random cell meeting the floor, or by the farthest cell
// when none does. Report.Distance is set from the final shape.
func (g *generator) settleEnd(start, end grid.Coord) grid.Coord {
	dist := grid.ShapeDistances(g.mask, start)
	minDist := g.report.MinDistance
	valid := g.mask.Has(end) && end != start
	if valid && dist[g.mask.Index(end)] >= minDist {
		g.report.Distance = dist[g.mask.Index(end)]
		return end
	}

	next := end
	if candidates := g.candidates(dist, minDist); len(candidates) > 0 {
		next = candidates[g.opts.Rand.Intn(len(candidates))]
		g.fallback(FallbackEndReselected, "end no longer valid, picking a new one",
			"old", end, "new", next, "floor", minDist)
	} else if best, bestDist := farthestIndex(dist); best >= 0 {
		if !valid || dist[g.mask.Index(end)] < bestDist {
			next = g.mask.CoordAt(best)
		}
		if next != end || !g.report.Fell(FallbackFarthest) {
			g.fallback(FallbackFarthest, "distance floor lost on final shape, using farthest cell",
				"old", end, "new", next, "distance", bestDist, "floor", minDist)
		}
	}
	if g.mask.InBounds(next) && dist[g.mask.Index(next)] > 0 {
		g.report.Distance = dist[g.mask.Index(next)]
	}
	return next
}
