package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Board: BoardConfig{
			Width:    640,
			Height:   480,
			CellSize: 16,
		},
		Generation: GenerationConfig{
			TargetCells: 400,
			Tolerance:   0.2,
			MinRadius:   2,
		},
		Repair: RepairConfig{
			MaxMergeAttempts: 10,
		},
		Endpoints: EndpointsConfig{
			MaxExpandAttempts: 10,
			ExpandStep:        0.1,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyFixed),
		},
	}
}
