package config

import "testing"

func TestFractionForPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected float64
	}{
		{DifficultyEasy, 0.25},
		{DifficultyNormal, 0.5},
		{DifficultyHard, 0.85},
		{DifficultyFixed, 0.0},
		{DifficultyPreset("unknown"), 0.0},
	}

	for _, tc := range tests {
		if result := FractionForPreset(tc.preset); result != tc.expected {
			t.Errorf("FractionForPreset(%q) = %g, expected %g", tc.preset, result, tc.expected)
		}
	}
}

func TestDifficultyTarget(t *testing.T) {
	tests := []struct {
		name     string
		preset   DifficultyPreset
		target   int
		growth   float64
		level    int
		expected int
	}{
		{"fixed uses configured target", DifficultyFixed, 50, 0, 1, 50},
		{"fixed zero means all", DifficultyFixed, 0, 0, 3, 0},
		{"fixed clamps to grid", DifficultyFixed, 500, 0, 1, 100},
		{"easy quarter", DifficultyEasy, 50, 0, 1, 25},
		{"hard", DifficultyHard, 50, 0, 1, 85},
		{"growth level 1", DifficultyFixed, 40, 0.5, 1, 40},
		{"growth level 3", DifficultyFixed, 40, 0.5, 3, 80},
		{"growth clamps", DifficultyNormal, 0, 0.5, 5, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			cfg.Generation.TargetCells = tc.target
			cfg.Levels.Growth = tc.growth
			ApplyPreset(&cfg, tc.preset)

			d := NewDifficultyManager(cfg)
			if result := d.Target(10, 10, tc.level); result != tc.expected {
				t.Errorf("Target(10, 10, %d) = %d, expected %d", tc.level, result, tc.expected)
			}
		})
	}
}

func TestDifficultyPresetOverrides(t *testing.T) {
	cfg := DefaultMazeConfig()
	cfg.Difficulty.Presets = map[string]float64{"easy": 0.1}
	ApplyPreset(&cfg, DifficultyEasy)

	d := NewDifficultyManager(cfg)

	if result := d.Fraction(); result != 0.1 {
		t.Errorf("Fraction() = %g, expected 0.1", result)
	}
	if result := d.Target(20, 10, 1); result != 20 {
		t.Errorf("Target() = %d, expected 20", result)
	}
}
