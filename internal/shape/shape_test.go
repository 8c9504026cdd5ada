package shape

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// firstRand always picks index 0 and the lowest float.
type firstRand struct{}

func (firstRand) Intn(int) int     { return 0 }
func (firstRand) Float64() float64 { return 0 }

func TestExpandWithFixedSource(t *testing.T) {
	m := grid.MaskFromRows([][]bool{
		{true, false},
		{false, false},
	})

	added := Expand(m, 3, firstRand{})

	assert.Equal(t, 2, added)
	assert.Equal(t, 3, m.Count())
	assert.True(t, m.Has(grid.C(0, 0)), "original cell must remain occupied")
}

func TestExpandSeedsEmptyMask(t *testing.T) {
	m := grid.NewMask(5, 5)

	Expand(m, 1, firstRand{})

	require.Equal(t, 1, m.Count())
	assert.True(t, m.Has(Center(5, 5)))
}

func TestExpandStopsWhenFull(t *testing.T) {
	m := grid.NewMask(3, 2)

	added := Expand(m, 50, rand.New(rand.NewSource(1)))

	assert.Equal(t, 6, added)
	assert.Equal(t, 6, m.Count())
}

func TestExpandReachesDisconnectedRegions(t *testing.T) {
	// Every empty cell is 8-adjacent to an occupied one; expansion must still
	// terminate at exactly the target.
	m := grid.MaskFromRows([][]bool{
		{true, false, false, false, true},
		{false, false, false, false, false},
		{true, false, false, false, true},
	})

	Expand(m, 10, rand.New(rand.NewSource(7)))
	assert.Equal(t, 10, m.Count())
}

func TestShrinkRespectsProtectedCells(t *testing.T) {
	m := grid.NewMask(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			m.Set(grid.C(x, y), true)
		}
	}
	protected := []grid.Coord{grid.C(0, 0), grid.C(5, 5)}

	removed := Shrink(m, 4, protected, rand.New(rand.NewSource(3)))

	assert.Equal(t, 32, removed)
	assert.Equal(t, 4, m.Count())
	for _, c := range protected {
		assert.True(t, m.Has(c), "protected cell %v removed", c)
	}
}

func TestShrinkNeverEmptiesMask(t *testing.T) {
	m := grid.MaskFromRows([][]bool{{true, true, true}})

	Shrink(m, 0, nil, rand.New(rand.NewSource(9)))

	assert.Equal(t, 1, m.Count())
}

func TestNormalizeWithinTolerance(t *testing.T) {
	for _, kind := range registry.IDs() {
		if !isBuiltin(kind) {
			continue
		}
		t.Run(kind, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			target := 60
			r := Radius(target, 20, 20, DefaultMinRadius)

			m, err := Generate(20, 20, Center(20, 20), r, kind, rng)
			require.NoError(t, err)

			count := Normalize(m, target, DefaultTolerance, nil, rng)
			assert.GreaterOrEqual(t, float64(count), 0.8*float64(target))
			assert.LessOrEqual(t, float64(count), 1.2*float64(target))
		})
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := Generate(5, 5, grid.C(2, 2), 2, "octagon", firstRand{})
	assert.ErrorIs(t, err, registry.ErrUnknownKind)
}

func TestGenerateKindsStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, kind := range []string{KindBlob, KindParabola, KindHeart, KindSpiral, KindRandom, KindDonut} {
		m, err := Generate(12, 30, Center(30, 12), 8, kind, rng)
		require.NoError(t, err, kind)
		assert.Equal(t, 30, m.W, kind)
		assert.Equal(t, 12, m.H, kind)
	}
}

func TestHeartContainsCenterRow(t *testing.T) {
	m, err := Generate(21, 21, grid.C(10, 10), 8, KindHeart, firstRand{})
	require.NoError(t, err)

	// The implicit curve includes (±0.5, 0) in normalized units.
	assert.True(t, m.Has(grid.C(12, 10)))
	assert.True(t, m.Has(grid.C(8, 10)))
	assert.False(t, m.Has(grid.C(0, 0)))
}

func TestDonutHasHole(t *testing.T) {
	m, err := Generate(21, 21, grid.C(10, 10), 8, KindDonut, firstRand{})
	require.NoError(t, err)

	assert.False(t, m.Has(grid.C(10, 10)), "center must be outside the annulus")
	assert.True(t, m.Has(grid.C(16, 10)))
}

func TestParabolaBounds(t *testing.T) {
	m, err := Generate(21, 21, grid.C(10, 10), 4, KindParabola, firstRand{})
	require.NoError(t, err)

	assert.True(t, m.Has(grid.C(10, 14)), "apex row is included")
	assert.False(t, m.Has(grid.C(10, 15)))
	assert.False(t, m.Has(grid.C(10, 5)), "above cy - r is excluded")
}

func TestRadius(t *testing.T) {
	assert.Equal(t, DefaultMinRadius, Radius(1, 50, 50, DefaultMinRadius))
	assert.InDelta(t, math.Sqrt(400/math.Pi), Radius(400, 100, 100, DefaultMinRadius), 1e-9)
	assert.Equal(t, 3.0, Radius(10000, 6, 40, DefaultMinRadius))
}

func TestPickKind(t *testing.T) {
	assert.Equal(t, KindHeart, PickKind([]string{KindHeart, KindDonut}, firstRand{}))
	assert.NotEmpty(t, PickKind(nil, firstRand{}))
}

func isBuiltin(kind string) bool {
	switch kind {
	case KindBlob, KindParabola, KindHeart, KindSpiral, KindRandom, KindDonut:
		return true
	}
	return false
}
