package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/grid"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCrossingConfig()) {
		t.Errorf("embedded defaults differ from DefaultCrossingConfig():\n%+v\n%+v", cfg, DefaultCrossingConfig())
	}
}

func TestDefaultLayout(t *testing.T) {
	if DefaultCrossingConfig().Layout() != grid.DefaultLayout() {
		t.Error("default config layout should equal grid.DefaultLayout()")
	}
}

func TestLoadCrossingFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCrossingConfig()) {
		t.Error("without config files LoadCrossing should return the defaults")
	}
}

func TestLoadCrossingSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	writeFile(t, filepath.Join(work, "configs", "crossing.yaml"), "obstacles:\n  count: 1\n")

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if cfg.Obstacles.Count != 1 {
		t.Errorf("local config should be used, got obstacle count %d", cfg.Obstacles.Count)
	}

	// User config wins over the local directory
	writeFile(t, filepath.Join(home, ".crossing", "configs", "crossing.yaml"), "obstacles:\n  count: 2\n")
	cfg, err = LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if cfg.Obstacles.Count != 2 {
		t.Errorf("user config should be preferred, got obstacle count %d", cfg.Obstacles.Count)
	}
}

func TestLoadCrossingSkipsBrokenSearchPaths(t *testing.T) {
	work := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(work)

	writeFile(t, filepath.Join(work, "configs", "crossing.yaml"), "grid: [not, a, map")

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("broken search-path config should be skipped, got %v", err)
	}
	if cfg.Obstacles.Count != 3 {
		t.Errorf("expected defaults, got obstacle count %d", cfg.Obstacles.Count)
	}
}

func TestLoadCrossingCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "hazards:\n  rows: [2, 3]\n  min_speed: 10\n  max_speed: 20\nrules:\n  reset_on_hazard_hit: true\n")

	cfg, err := LoadCrossing(path)
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Hazards.Rows, []int{2, 3}) {
		t.Errorf("Rows = %v, expected [2 3]", cfg.Hazards.Rows)
	}
	if cfg.Hazards.MinSpeed != 10 || cfg.Hazards.MaxSpeed != 20 {
		t.Errorf("speed range = [%d,%d), expected [10,20)", cfg.Hazards.MinSpeed, cfg.Hazards.MaxSpeed)
	}
	if !cfg.Rules.ResetOnHazardHit {
		t.Error("rules override should be applied")
	}
	// Untouched sections keep their defaults
	if cfg.Grid.CellWidth != 101 || cfg.Player.HomeRow != 6 {
		t.Error("keys absent from the file should keep default values")
	}
}

func TestLoadCrossingCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCrossing(filepath.Join(dir, "missing.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing custom file should wrap os.ErrNotExist, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "player:\n  home_column: 9\n")
	_, err = LoadCrossing(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom file should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrossingConfig)
		want   string
	}{
		{"zero cell width", func(c *CrossingConfig) { c.Grid.CellWidth = 0 }, "cell size"},
		{"tiny canvas", func(c *CrossingConfig) { c.Grid.CanvasWidth = 50 }, "smaller than one cell"},
		{"guard too tall", func(c *CrossingConfig) { c.Grid.PlayerSpriteHeightGuard = 700 }, "no playable row"},
		{"negative obstacle count", func(c *CrossingConfig) { c.Obstacles.Count = -1 }, "count"},
		{"inverted obstacle bounds", func(c *CrossingConfig) { c.Obstacles.MinRow = 5; c.Obstacles.MaxRow = 2 }, "inverted"},
		{"obstacles off grid", func(c *CrossingConfig) { c.Obstacles.MaxColumn = 6 }, "leave the grid"},
		{"hazard row off grid", func(c *CrossingConfig) { c.Hazards.Rows = []int{2, 7} }, "row 7"},
		{"empty speed range", func(c *CrossingConfig) { c.Hazards.MaxSpeed = c.Hazards.MinSpeed }, "speed range"},
		{"inverted stagger", func(c *CrossingConfig) { c.Hazards.MinStagger = 600 }, "stagger"},
		{"home off grid", func(c *CrossingConfig) { c.Player.HomeRow = 0 }, "home cell"},
		{"partial last column", func(c *CrossingConfig) { c.Grid.CanvasWidth = 550 }, "not a multiple"},
		{"player offset above row 1", func(c *CrossingConfig) { c.Grid.PlayerOffset = -50 }, "above row 1"},
		{"player offset blocks row 2", func(c *CrossingConfig) { c.Grid.PlayerOffset = 50 }, "from row 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateAcceptsAlignedLayouts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrossingConfig)
	}{
		{"six columns", func(c *CrossingConfig) { c.Grid.CanvasWidth = 606 }},
		{"offset at half row", func(c *CrossingConfig) { c.Grid.PlayerOffset = 41 }},
		{"negative offset below half row", func(c *CrossingConfig) {
			c.Grid.PlayerOffset = -41
			c.Player.HomeRow = 5
			c.Obstacles.MaxRow = 5
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v, expected valid layout", err)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Hazards.Rows = []int{9}
	cfg.Player.HomeColumn = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "row 9") || !strings.Contains(err.Error(), "home cell") {
		t.Errorf("Validate() should report both problems, got %q", err)
	}
}

func TestValidateAllowsNoObstacles(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Obstacles = ObstacleConfig{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero obstacles should be valid, got %v", err)
	}
}

func TestApplyCrossingPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		min, max int
	}{
		{DifficultyEasy, 30, 90},
		{DifficultyNormal, 50, 150},
		{DifficultyHard, 75, 225},
		{"", 50, 150},
	}

	for _, tc := range tests {
		cfg := DefaultCrossingConfig()
		ApplyCrossingPreset(&cfg, tc.preset)
		if cfg.Hazards.MinSpeed != tc.min || cfg.Hazards.MaxSpeed != tc.max {
			t.Errorf("preset %q: speed range = [%d,%d), expected [%d,%d)",
				tc.preset, cfg.Hazards.MinSpeed, cfg.Hazards.MaxSpeed, tc.min, tc.max)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produced invalid config: %v", tc.preset, err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("fixed") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}
