package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

func TestMinDistance(t *testing.T) {
	tests := []struct {
		target, want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{19, 10},
		{20, 10},
		{400, 200},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MinDistance(tc.target), "target %d", tc.target)
	}
}

func TestSelectEndpointsOnCorridor(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		mask := fullMask(10, 1)

		start, end, rep := SelectEndpoints(mask, 10, Options{Rand: rand.New(rand.NewSource(seed))})

		assert.NotEqual(t, start, end)
		span := max(start.X, end.X) - min(start.X, end.X)
		assert.GreaterOrEqual(t, span, 5, "seed %d", seed)
		assert.Equal(t, span, rep.Distance)
		assert.Empty(t, rep.Fallbacks)
	}
}

func TestSelectEndpointsSeedsTinyShape(t *testing.T) {
	mask := grid.NewMask(5, 5)

	start, end, rep := SelectEndpoints(mask, 1, Options{Rand: rand.New(rand.NewSource(1))})

	require.Equal(t, 2, mask.Count())
	assert.True(t, mask.Has(grid.C(2, 2)))
	assert.NotEqual(t, start, end)
	_, adjacent := grid.DirBetween(start, end)
	assert.True(t, adjacent)
	assert.True(t, rep.Fell(FallbackSeeded))
}

func TestSelectEndpointsSeedsAtGridEdge(t *testing.T) {
	mask := grid.NewMask(1, 2)

	start, end, _ := SelectEndpoints(mask, 1, Options{Rand: rand.New(rand.NewSource(1))})

	assert.Equal(t, 2, mask.Count())
	assert.NotEqual(t, start, end)
}

func TestSelectEndpointsGrowsToFloor(t *testing.T) {
	mask := grid.NewMask(10, 10)
	mask.Set(grid.C(5, 5), true)
	mask.Set(grid.C(6, 5), true)

	_, _, rep := SelectEndpoints(mask, 20, Options{Rand: rand.New(rand.NewSource(4))})

	assert.True(t, rep.Fell(FallbackGrowToFloor))
	assert.GreaterOrEqual(t, mask.Count(), 10)
}

func TestSelectEndpointsExpandsForCandidates(t *testing.T) {
	mask := grid.NewMask(10, 10)
	for x := 4; x < 7; x++ {
		mask.Set(grid.C(x, 5), true)
	}

	_, _, rep := SelectEndpoints(mask, 6, Options{Rand: rand.New(rand.NewSource(8))})

	assert.True(t, rep.Fell(FallbackExpandForEnd))
	assert.Greater(t, mask.Count(), 3)
	if !rep.Fell(FallbackFarthest) {
		assert.GreaterOrEqual(t, rep.Distance, 3)
	}
}

func TestSelectEndpointsFarthestFallback(t *testing.T) {
	mask := fullMask(3, 3)

	start, end, rep := SelectEndpoints(mask, 9, Options{Rand: rand.New(rand.NewSource(3))})

	require.True(t, rep.Fell(FallbackFarthest), "a full 3x3 grid cannot reach distance 5")
	dist := grid.ShapeDistances(mask, start)
	best := 0
	for _, d := range dist {
		best = max(best, d)
	}
	assert.Equal(t, best, dist[mask.Index(end)])
	assert.Equal(t, best, rep.Distance)
}

func TestSelectEndpointsIsolatedStart(t *testing.T) {
	mask := grid.MaskFromRows([][]bool{
		{true, false, true},
		{false, false, false},
		{true, false, true},
	})
	opts := Options{Rand: rand.New(rand.NewSource(2)), MaxExpandAttempts: 1, ExpandStep: 0.01}
	g := &generator{opts: opts.withDefaults(), mask: mask}

	start := grid.C(0, 0)
	end := g.farthest(start, grid.ShapeDistances(mask, start))

	assert.NotEqual(t, start, end)
	assert.True(t, mask.Has(end))
	assert.True(t, g.report.Fell(FallbackFarthest))
}
