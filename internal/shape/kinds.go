package shape

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// Kind names accepted by Generate.
const (
	KindBlob     = "blob"
	KindParabola = "parabola"
	KindHeart    = "heart"
	KindSpiral   = "spiral"
	KindRandom   = "random"
	KindDonut    = "donut"
)

const (
	spiralTurns        = 2
	minSpiralTolerance = 0.75 // keeps thin arms 4-connected at small radii
	donutInnerRatio    = 0.4
	donutNoiseRatio    = 0.15
	blobNoiseRatio     = 0.3
)

func init() {
	registry.Register(KindBlob, func() registry.Shape { return blob{} })
	registry.Register(KindParabola, func() registry.Shape { return parabola{} })
	registry.Register(KindHeart, func() registry.Shape { return heart{} })
	registry.Register(KindSpiral, func() registry.Shape { return spiral{} })
	registry.Register(KindRandom, func() registry.Shape { return protrusions{} })
	registry.Register(KindDonut, func() registry.Shape { return donut{} })
}

// fill evaluates include for every cell, row by row.
func fill(p registry.Params, include func(dx, dy float64) bool) *grid.Mask {
	m := grid.NewMask(p.Cols, p.Rows)
	cx, cy := float64(p.Center.X), float64(p.Center.Y)
	for y := 0; y < p.Rows; y++ {
		for x := 0; x < p.Cols; x++ {
			if include(float64(x)-cx, float64(y)-cy) {
				m.Set(grid.C(x, y), true)
			}
		}
	}
	return m
}

// blob is an irregular disk: each cell gets its own noisy radius.
type blob struct{}

func (blob) ID() string    { return KindBlob }
func (blob) Title() string { return "Blob" }

func (blob) Generate(p registry.Params, rng grid.Rand) *grid.Mask {
	return fill(p, func(dx, dy float64) bool {
		noise := rng.Float64() * p.Radius * blobNoiseRatio
		return math.Hypot(dx, dy) <= p.Radius+noise
	})
}

// parabola keeps the cells under an inverted parabola opening downward
// from the top of the radius band.
type parabola struct{}

func (parabola) ID() string    { return KindParabola }
func (parabola) Title() string { return "Parabola" }

func (parabola) Generate(p registry.Params, _ grid.Rand) *grid.Mask {
	a := 1 / (2 * p.Radius)
	return fill(p, func(dx, dy float64) bool {
		// y <= -a(x-cx)^2 + cy + r, expressed relative to the center
		return dy >= -p.Radius && dy <= -a*dx*dx+p.Radius
	})
}

// heart uses the implicit curve (x²+y²-1)³ - x²y³ < 0 scaled by radius/2.
type heart struct{}

func (heart) ID() string    { return KindHeart }
func (heart) Title() string { return "Heart" }

func (heart) Generate(p registry.Params, _ grid.Rand) *grid.Mask {
	s := p.Radius / 2
	return fill(p, func(dx, dy float64) bool {
		nx, ny := dx/s, dy/s
		return math.Pow(nx*nx+ny*ny-1, 3)-nx*nx*ny*ny*ny < 0
	})
}

// spiral keeps a band around the Archimedean spiral r = bθ.
type spiral struct{}

func (spiral) ID() string    { return KindSpiral }
func (spiral) Title() string { return "Spiral" }

func (spiral) Generate(p registry.Params, _ grid.Rand) *grid.Mask {
	b := p.Radius / (2 * math.Pi * spiralTurns)
	tolerance := math.Max(b*math.Pi/4, minSpiralTolerance)
	return fill(p, func(dx, dy float64) bool {
		distance := math.Hypot(dx, dy)
		if distance > p.Radius {
			return false
		}
		angle := math.Atan2(dy, dx)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		for turn := 0; turn < spiralTurns; turn++ {
			arm := b * (angle + 2*math.Pi*float64(turn))
			if math.Abs(distance-arm) <= tolerance {
				return true
			}
		}
		return false
	})
}

// protrusions is a disk with 3-7 randomly angled arms ORed in.
type protrusions struct{}

func (protrusions) ID() string    { return KindRandom }
func (protrusions) Title() string { return "Random" }

func (protrusions) Generate(p registry.Params, rng grid.Rand) *grid.Mask {
	m := fill(p, func(dx, dy float64) bool {
		return math.Hypot(dx, dy) <= p.Radius
	})

	cx, cy := float64(p.Center.X), float64(p.Center.Y)
	count := rng.Intn(5) + 3
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		length := p.Radius * (rng.Float64()*0.5 + 0.5)
		width := p.Radius * (rng.Float64()*0.3 + 0.1)
		dirX, dirY := math.Cos(angle), math.Sin(angle)

		for j := 0.0; j < length; j++ {
			x := math.Floor(cx + dirX*j)
			y := math.Floor(cy + dirY*j)
			if !m.InBounds(grid.C(int(x), int(y))) {
				continue
			}
			for ox := -width; ox <= width; ox++ {
				for oy := -width; oy <= width; oy++ {
					if math.Abs(ox*dirY-oy*dirX) > width {
						continue
					}
					m.Set(grid.C(int(math.Floor(x+ox)), int(math.Floor(y+oy))), true)
				}
			}
		}
	}
	return m
}

// donut is an annulus whose inner and outer boundaries are both noisy.
type donut struct{}

func (donut) ID() string    { return KindDonut }
func (donut) Title() string { return "Donut" }

func (donut) Generate(p registry.Params, rng grid.Rand) *grid.Mask {
	inner := donutInnerRatio * p.Radius
	outer := p.Radius
	noise := donutNoiseRatio * p.Radius
	return fill(p, func(dx, dy float64) bool {
		d := math.Hypot(dx, dy)
		in := inner + rng.Float64()*noise
		out := outer + rng.Float64()*noise
		return d >= in && d <= out
	})
}
