package maze

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/shape"
)

// MinDistance is the required shape distance between start and end for a
// target cell count: ceil(target/2).
func MinDistance(target int) int {
	return (target + 1) / 2
}

// SelectEndpoints picks start and end cells on mask so that their 4-adjacency
// distance within the shape is at least MinDistance(target). The mask may be
// seeded or expanded along the way. When no cell qualifies after the bounded
// expansion, the farthest reachable cell is used instead.
func SelectEndpoints(mask *grid.Mask, target int, opts Options) (start, end grid.Coord, rep Report) {
	g := &generator{opts: opts.withDefaults(), mask: mask}
	start, end = g.selectEndpoints(target)
	return start, end, g.report
}

func (g *generator) selectEndpoints(target int) (grid.Coord, grid.Coord) {
	mask, rng := g.mask, g.opts.Rand
	minDist := MinDistance(target)
	g.report.MinDistance = minDist

	if mask.Count() < 2 {
		g.seedCenterPair()
	}
	if count := mask.Count(); count < minDist {
		g.fallback(FallbackGrowToFloor, "shape below distance floor", "cells", count, "floor", minDist)
		shape.Expand(mask, minDist, rng)
	}

	cells := mask.Coords()
	start := cells[rng.Intn(len(cells))]

	dist := grid.ShapeDistances(mask, start)
	candidates := g.candidates(dist, minDist)
	for attempt := 0; len(candidates) == 0 && attempt < g.opts.MaxExpandAttempts; attempt++ {
		count := mask.Count()
		if count == mask.Len() {
			break
		}
		step := max(1, int(math.Ceil(g.opts.ExpandStep*float64(count))))
		g.fallback(FallbackExpandForEnd, "no end candidate, expanding shape",
			"attempt", attempt+1, "cells", count, "add", step)
		shape.Expand(mask, count+step, rng)
		dist = grid.ShapeDistances(mask, start)
		candidates = g.candidates(dist, minDist)
	}

	var end grid.Coord
	if len(candidates) > 0 {
		end = candidates[rng.Intn(len(candidates))]
	} else {
		end = g.farthest(start, dist)
	}
	g.report.Distance = dist[mask.Index(end)]
	g.opts.Logger.Debug("endpoints selected", "start", start, "end", end,
		"distance", g.report.Distance, "floor", minDist)
	return start, end
}

// seedCenterPair replaces the mask with the center cell and one neighbor.
func (g *generator) seedCenterPair() {
	mask := g.mask
	g.fallback(FallbackSeeded, "shape too small, seeding center pair", "cells", mask.Count())

	center := shape.Center(mask.W, mask.H)
	mask.Clear()
	mask.Set(center, true)
	for _, d := range []grid.Dir{grid.Right, grid.Left, grid.Down, grid.Up} {
		if nb := center.Step(d); mask.InBounds(nb) {
			mask.Set(nb, true)
			return
		}
	}
}

func (g *generator) candidates(dist []int, minDist int) []grid.Coord {
	var out []grid.Coord
	for i, d := range dist {
		if d > 0 && d >= minDist {
			out = append(out, g.mask.CoordAt(i))
		}
	}
	return out
}

// farthest returns the reachable cell farthest from start. When start has no
// reachable neighbor at all, any other shape cell is returned and repair
// carves the connection.
func (g *generator) farthest(start grid.Coord, dist []int) grid.Coord {
	if best, bestDist := farthestIndex(dist); best >= 0 {
		g.fallback(FallbackFarthest, "distance floor not reachable, using farthest cell",
			"distance", bestDist, "floor", g.report.MinDistance)
		return g.mask.CoordAt(best)
	}

	g.fallback(FallbackFarthest, "start is isolated, picking any other cell")
	var others []grid.Coord
	for _, c := range g.mask.Coords() {
		if c != start {
			others = append(others, c)
		}
	}
	return others[g.opts.Rand.Intn(len(others))]
}

// farthestIndex returns the index and distance of the largest positive entry
// of dist, or -1 when there is none.
func farthestIndex(dist []int) (int, int) {
	best, bestDist := -1, 0
	for i, d := range dist {
		if d > bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}
