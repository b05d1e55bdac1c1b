package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies stock values and that they validate
func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.GridSize != 10 || cfg.CellSize != 60 || cfg.Margin != 50 {
		t.Errorf("Expected 10/60/50 geometry, got %d/%d/%d", cfg.GridSize, cfg.CellSize, cfg.Margin)
	}
	if cfg.Snakes != (Range{8, 10}) || cfg.Ladders != (Range{8, 10}) {
		t.Errorf("Expected [8,10] counts, got snakes %v ladders %v", cfg.Snakes, cfg.Ladders)
	}
	if cfg.ItemLength != (Range{10, 20}) {
		t.Errorf("Expected item length [10,20], got %v", cfg.ItemLength)
	}
	if cfg.PlacementAttempts != 300 || cfg.CurveAttempts != 10 {
		t.Errorf("Expected attempt caps 300/10, got %d/%d", cfg.PlacementAttempts, cfg.CurveAttempts)
	}
	if len(cfg.ForbiddenCells) != 5 {
		t.Errorf("Expected 5 forbidden cells, got %v", cfg.ForbiddenCells)
	}
}

// TestDefaultIsolation verifies defaults do not share slices
func TestDefaultIsolation(t *testing.T) {
	a := Default()
	a.ForbiddenCells[0] = 42
	b := Default()
	if b.ForbiddenCells[0] != 1 {
		t.Errorf("Expected fresh forbidden cells, got %v", b.ForbiddenCells)
	}
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(`
seed = 7
ladder_on_top = true

[snakes]
min = 4
max = 6

[pattern]
spacing = 30
`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Seed)
	}
	if !cfg.LadderOnTop {
		t.Error("Expected ladder_on_top true")
	}
	if cfg.Snakes != (Range{4, 6}) {
		t.Errorf("Expected snakes [4,6], got %v", cfg.Snakes)
	}
	if cfg.Pattern.Spacing != 30 {
		t.Errorf("Expected pattern spacing 30, got %d", cfg.Pattern.Spacing)
	}
	// Untouched keys keep defaults
	if cfg.Ladders != (Range{8, 10}) {
		t.Errorf("Expected default ladders, got %v", cfg.Ladders)
	}
	if cfg.Pattern.EndMargin != 40 {
		t.Errorf("Expected default pattern end margin, got %d", cfg.Pattern.EndMargin)
	}
}

func TestDecodeRejectsInvalid(t *testing.T) {
	_, err := Decode(`
grid_size = 7

[ladders]
min = 5
max = 2
`)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	if _, err := Decode("grid_size = = 3"); err == nil {
		t.Fatal("Expected syntax error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	if err := os.WriteFile(path, []byte("cell_size = 40\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CellSize != 40 {
		t.Errorf("Expected cell size 40, got %d", cfg.CellSize)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.CellSize = 0
	cfg.CurveAttempts = 0
	cfg.BezierSamples = 1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation errors")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		t.Fatalf("Expected joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 3 {
		t.Errorf("Expected 3 violations, got %d: %v", n, err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SNAKEBOARD_SEED", "99")
	t.Setenv("SNAKEBOARD_CELL_SIZE", "48")
	t.Setenv("SNAKEBOARD_MARGIN", "oops")
	t.Setenv("SNAKEBOARD_LADDER_ON_TOP", "true")

	cfg := ApplyEnv(Default())

	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
	if cfg.CellSize != 48 {
		t.Errorf("Expected cell size 48, got %d", cfg.CellSize)
	}
	if cfg.Margin != 50 {
		t.Errorf("Expected malformed margin ignored, got %d", cfg.Margin)
	}
	if !cfg.LadderOnTop {
		t.Error("Expected ladder_on_top from env")
	}
}
