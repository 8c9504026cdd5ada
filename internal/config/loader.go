package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvCellSize    = "MAZE_CELL_SIZE"
	EnvTargetCells = "MAZE_TARGET_CELLS"
	EnvDB          = "MAZE_DB"
)

// Load loads the maze configuration and applies environment overrides.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func Load(customPath string) (MazeConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (MazeConfig, error) {
	cfg := DefaultMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultMazeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/maze.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultMazeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}

// DefaultDBPath returns ~/.maze/runs.db, or runs.db when home is unavailable.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "runs.db"
	}
	return filepath.Join(home, ".maze", "runs.db")
}

// LoadDotEnv loads variables from the given .env files (./.env when none
// are given). Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides configuration values from the environment.
func ApplyEnv(cfg *MazeConfig) error {
	if v, ok := os.LookupEnv(EnvCellSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", EnvCellSize, err)
		}
		cfg.Board.CellSize = n
	}
	if v, ok := os.LookupEnv(EnvTargetCells); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", EnvTargetCells, err)
		}
		cfg.Generation.TargetCells = n
	}
	if v, ok := os.LookupEnv(EnvDB); ok && v != "" {
		cfg.Storage.Path = v
	}
	return nil
}

// ApplyPreset switches the config to a difficulty preset.
func ApplyPreset(cfg *MazeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
}

// DBPath returns the configured audit database path or the default one.
func (c MazeConfig) DBPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return DefaultDBPath()
}
