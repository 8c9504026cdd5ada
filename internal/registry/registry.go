// Package registry provides a global registry of shape generators.
// Shape kinds register themselves in init() functions, allowing the maze
// engine and the CLI to discover kinds by name without hardcoded lists.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// ErrUnknownKind is returned when a shape kind is not registered.
var ErrUnknownKind = errors.New("registry: unknown shape kind")

// Params describes the region a shape generator is asked to fill.
type Params struct {
	Rows   int        // Grid height in cells
	Cols   int        // Grid width in cells
	Center grid.Coord // Anchor of the shape, usually the grid center
	Radius float64    // Nominal radius in cells
}

// Shape is implemented by every region generator.
// Generators are pure functions of the params and the random source.
type Shape interface {
	// ID returns the unique kind name (e.g., "blob", "heart").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Generate evaluates the inclusion test for every cell of the grid.
	Generate(p Params, rng grid.Rand) *grid.Mask
}

// ShapeInfo contains metadata about a registered shape kind.
type ShapeInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new shape generator.
type Factory func() Shape

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a shape factory to the registry.
// Panics if a kind with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: shape %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered kinds, sorted by ID.
func List() []ShapeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShapeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ShapeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered kind names, sorted.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a shape generator by its ID.
func Create(id string) (Shape, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, id)
	}

	return f(), nil
}

// Exists checks if a shape kind with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
