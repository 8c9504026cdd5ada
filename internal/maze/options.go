package maze

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/shape"
)

// Default bounds for the retry loops in repair and endpoint selection.
const (
	DefaultMaxMergeAttempts  = 10
	DefaultMaxExpandAttempts = 10
	DefaultExpandStep        = 0.10
)

// Options tunes a single generation. The zero value is usable.
type Options struct {
	// Rand drives every random decision. Nil seeds from the clock.
	Rand grid.Rand
	// Logger receives fallback warnings and phase progress. Nil discards.
	Logger *log.Logger

	CellSize int      // Pixels per cell, used by New only
	Kind     string   // Pin a shape kind; empty picks one from Kinds
	Kinds    []string // Kinds to pick from; empty means every registered kind

	Tolerance         float64 // Accepted relative deviation from the target count
	MinRadius         float64
	MaxMergeAttempts  int
	MaxExpandAttempts int
	ExpandStep        float64 // Fraction of the current count added per expansion
}

func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.CellSize <= 0 {
		o.CellSize = core.DefaultCellSize
	}
	if o.Tolerance <= 0 || o.Tolerance >= 1 {
		o.Tolerance = shape.DefaultTolerance
	}
	if o.MinRadius <= 0 {
		o.MinRadius = shape.DefaultMinRadius
	}
	if o.MaxMergeAttempts <= 0 {
		o.MaxMergeAttempts = DefaultMaxMergeAttempts
	}
	if o.MaxExpandAttempts <= 0 {
		o.MaxExpandAttempts = DefaultMaxExpandAttempts
	}
	if o.ExpandStep <= 0 {
		o.ExpandStep = DefaultExpandStep
	}
	return o
}
