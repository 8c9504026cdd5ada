package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so only
// the embedded defaults are found.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Board.CellSize != 16 {
		t.Errorf("CellSize = %d, expected 16", cfg.Board.CellSize)
	}
	if cfg.Generation.TargetCells != 400 {
		t.Errorf("TargetCells = %d, expected 400", cfg.Generation.TargetCells)
	}
	if cfg.Repair.MaxMergeAttempts != 10 || cfg.Endpoints.MaxExpandAttempts != 10 {
		t.Errorf("attempt limits = %d/%d, expected 10/10", cfg.Repair.MaxMergeAttempts, cfg.Endpoints.MaxExpandAttempts)
	}
	if cfg.Difficulty.Presets["hard"] != 0.85 {
		t.Errorf("hard preset = %g, expected 0.85", cfg.Difficulty.Presets["hard"])
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  cell_size: 8\ngeneration:\n  target_cells: 50\n  kinds: [blob, heart]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Board.CellSize != 8 || cfg.Generation.TargetCells != 50 {
		t.Errorf("got cell size %d, target %d", cfg.Board.CellSize, cfg.Generation.TargetCells)
	}
	if len(cfg.Generation.Kinds) != 2 {
		t.Errorf("Kinds = %v, expected 2 entries", cfg.Generation.Kinds)
	}
	// Keys missing from the file keep their defaults
	if cfg.Generation.Tolerance != 0.2 {
		t.Errorf("Tolerance = %g, expected default 0.2", cfg.Generation.Tolerance)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("generation:\n  target_cells: 123\n")
	if err := os.WriteFile(filepath.Join(dir, "configs", "maze.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generation.TargetCells != 123 {
		t.Errorf("TargetCells = %d, expected 123", cfg.Generation.TargetCells)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("generation:\n  kinds: [octagon]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Code != CodeKind {
		t.Errorf("Load() error = %v, expected %s validation error", err, CodeKind)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvCellSize, "20")
	t.Setenv(EnvTargetCells, "0")
	t.Setenv(EnvDB, "/tmp/audit.db")

	cfg := DefaultMazeConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Board.CellSize != 20 {
		t.Errorf("CellSize = %d, expected 20", cfg.Board.CellSize)
	}
	if cfg.Generation.TargetCells != 0 {
		t.Errorf("TargetCells = %d, expected 0", cfg.Generation.TargetCells)
	}
	if cfg.DBPath() != "/tmp/audit.db" {
		t.Errorf("DBPath() = %q", cfg.DBPath())
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv(EnvCellSize, "sixteen")

	cfg := DefaultMazeConfig()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("ApplyEnv() should reject a non-integer cell size")
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "MAZE_DOTENV_PROBE"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv(key); got != "42" {
		t.Errorf("%s = %q, expected 42", key, got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeConfig)
		code   string
	}{
		{"defaults", func(*MazeConfig) {}, ""},
		{"zero cell size", func(c *MazeConfig) { c.Board.CellSize = 0 }, CodeCellSize},
		{"negative board", func(c *MazeConfig) { c.Board.Width = -1 }, CodeBoard},
		{"negative target", func(c *MazeConfig) { c.Generation.TargetCells = -5 }, CodeTarget},
		{"tolerance one", func(c *MazeConfig) { c.Generation.Tolerance = 1 }, CodeTolerance},
		{"negative radius", func(c *MazeConfig) { c.Generation.MinRadius = -1 }, CodeMinRadius},
		{"unknown kind", func(c *MazeConfig) { c.Generation.Kinds = []string{"blob", "star"} }, CodeKind},
		{"negative attempts", func(c *MazeConfig) { c.Repair.MaxMergeAttempts = -1 }, CodeAttempts},
		{"expand step", func(c *MazeConfig) { c.Endpoints.ExpandStep = 2 }, CodeExpandStep},
		{"negative growth", func(c *MazeConfig) { c.Levels.Growth = -0.1 }, CodeGrowth},
		{"unknown preset", func(c *MazeConfig) { c.Difficulty.Preset = "nightmare" }, CodePreset},
		{"bad fraction", func(c *MazeConfig) { c.Difficulty.Presets = map[string]float64{"easy": 0} }, CodePreset},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.code == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, expected nil", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %q, expected %q", verr.Code, tc.code)
			}
		})
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultMazeConfig()
	cfg.Generation.Kinds = []string{"spiral"}

	opts := cfg.EngineOptions()

	if opts.CellSize != 16 || opts.MaxMergeAttempts != 10 || opts.ExpandStep != 0.1 {
		t.Errorf("EngineOptions() = %+v", opts)
	}
	if len(opts.Kinds) != 1 || opts.Kinds[0] != "spiral" {
		t.Errorf("Kinds = %v", opts.Kinds)
	}
}
