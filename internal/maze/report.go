package maze

import (
	"slices"
	"strings"
)

// Fallback names a step of the generation fallback ladder.
type Fallback string

const (
	FallbackSeeded         Fallback = "seeded"          // shape had <2 cells, center pair forced
	FallbackGrowToFloor    Fallback = "grow-to-floor"   // shape smaller than the distance floor
	FallbackExpandForEnd   Fallback = "expand-for-end"  // no end candidate, shape grown
	FallbackFarthest       Fallback = "farthest"        // end is the farthest reachable cell
	FallbackMergeExhausted Fallback = "merge-exhausted" // cluster merge ran out of attempts
	FallbackDeadCell       Fallback = "dead-cell"       // exit forced on a walled-in cell
	FallbackTrim           Fallback = "trim"            // unreachable cells dropped from the shape
	FallbackForcedPath     Fallback = "forced-path"     // start to end carved directly
	FallbackEndReselected  Fallback = "end-reselected"  // end replaced after repair
)

// Report records what happened while a maze was generated.
type Report struct {
	Kind   string
	Radius float64
	Target int

	CellsRaw    int // after the parametric generator
	CellsShaped int // after normalization, before endpoint selection
	CellsFinal  int // after repair and trim

	MinDistance   int // required shape distance between start and end
	Distance      int // shape distance between the returned start and end
	MergeAttempts int
	Bridged       int // out-of-shape cells promoted by bridging paths
	Trimmed       int

	Fallbacks []Fallback
}

// Fell reports whether the given fallback fired.
func (r Report) Fell(f Fallback) bool {
	return slices.Contains(r.Fallbacks, f)
}

// FallbackList joins the fired fallbacks with commas.
func (r Report) FallbackList() string {
	names := make([]string, len(r.Fallbacks))
	for i, f := range r.Fallbacks {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

func (r *Report) record(f Fallback) {
	if !r.Fell(f) {
		r.Fallbacks = append(r.Fallbacks, f)
	}
}
