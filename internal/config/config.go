// Package config provides YAML-based generator configuration loading and
// difficulty management for the maze engine.
package config

// MazeConfig contains all configuration for maze generation.
type MazeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Generation GenerationConfig `yaml:"generation"`
	Repair     RepairConfig     `yaml:"repair"`
	Endpoints  EndpointsConfig  `yaml:"endpoints"`
	Levels     LevelsConfig     `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
}

// BoardConfig defines the board the grid is derived from.
type BoardConfig struct {
	Width    int `yaml:"width"`     // Pixels
	Height   int `yaml:"height"`    // Pixels
	CellSize int `yaml:"cell_size"` // Pixels per cell edge
}

// GenerationConfig defines shape parameters.
type GenerationConfig struct {
	TargetCells int      `yaml:"target_cells"` // 0 = every cell the board holds
	Kinds       []string `yaml:"kinds"`        // Allowed shape kinds, empty = all
	Tolerance   float64  `yaml:"tolerance"`
	MinRadius   float64  `yaml:"min_radius"`
}

// RepairConfig bounds the connectivity repair.
type RepairConfig struct {
	MaxMergeAttempts int `yaml:"max_merge_attempts"`
}

// EndpointsConfig bounds the endpoint search.
type EndpointsConfig struct {
	MaxExpandAttempts int     `yaml:"max_expand_attempts"`
	ExpandStep        float64 `yaml:"expand_step"` // Fraction of cells added per expansion
}

// LevelsConfig defines how the target grows as levels advance.
type LevelsConfig struct {
	Growth float64 `yaml:"growth"` // Relative target increase per level, 0 = constant
}

// DifficultyConfig maps the active preset to a share of the board's cells.
type DifficultyConfig struct {
	Preset  string             `yaml:"preset"`  // easy, normal, hard or fixed
	Presets map[string]float64 `yaml:"presets"` // Overrides for preset fractions
}

// StorageConfig locates the audit database.
type StorageConfig struct {
	Path string `yaml:"path"` // Empty = ~/.maze/runs.db
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// FractionForPreset returns the share of board cells a preset targets.
// Fixed and unknown presets return 0, meaning the configured target is used.
func FractionForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.25
	case DifficultyNormal:
		return 0.5
	case DifficultyHard:
		return 0.85
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset uses the configured target as is.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed || preset == ""
}
