// Package config holds the immutable generation settings passed into every
// board generation call
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/snakeboard/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid board config")

// Range is an inclusive integer interval
type Range struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// Config is a flat value copied into generators; nothing in it is shared
type Config struct {
	Seed int64 `toml:"seed"` // 0 = time-based

	GridSize int `toml:"grid_size"`
	CellSize int `toml:"cell_size"`
	Margin   int `toml:"margin"`

	Snakes  Range `toml:"snakes"`
	Ladders Range `toml:"ladders"`

	ItemLength           Range   `toml:"item_length"`
	SnakeMaxXDistance    int     `toml:"snake_max_x_distance"`
	LadderMaxXDistance   int     `toml:"ladder_max_x_distance"`
	ExclusionRadius      int     `toml:"exclusion_radius"`
	ForbiddenCells       []int   `toml:"forbidden_cells"`
	PlacementAttempts    int     `toml:"placement_attempts"`
	TopRowSnakes         int     `toml:"top_row_snakes"`
	SnakeMinBodyDistance float64 `toml:"snake_min_body_distance"`
	CurveAttempts        int     `toml:"curve_attempts"`
	BezierSamples        int     `toml:"bezier_samples"`
	CurveIntersectStride int     `toml:"curve_intersect_stride"`

	Pattern Pattern `toml:"pattern"`

	LadderOnTop        bool   `toml:"ladder_on_top"`
	ShowStartEndPoints bool   `toml:"show_start_end_points"`
	HeadAssetDir       string `toml:"head_asset_dir"`
	BaseHeadSize       int    `toml:"base_head_size"`
}

// Pattern places stripe marks along a snake body, pixels along the curve
type Pattern struct {
	Start       int   `toml:"start"`
	StartJitter int   `toml:"start_jitter"`
	Spacing     int   `toml:"spacing"`
	Jitter      Range `toml:"jitter"`
	EndMargin   int   `toml:"end_margin"`
}

// Default returns the stock 10x10 configuration
func Default() Config {
	return Config{
		GridSize: parameter.BoardGridSize,
		CellSize: parameter.BoardCellSize,
		Margin:   parameter.BoardMargin,

		Snakes:  Range{parameter.MinSnakesToGenerate, parameter.MaxSnakesToGenerate},
		Ladders: Range{parameter.MinLaddersToGenerate, parameter.MaxLaddersToGenerate},

		ItemLength:           Range{parameter.MinItemLengthCells, parameter.MaxItemLengthCells},
		SnakeMaxXDistance:    parameter.SnakeMaxXDistanceCells,
		LadderMaxXDistance:   parameter.LadderMaxXDistanceCells,
		ExclusionRadius:      parameter.ExclusionZoneRadius,
		ForbiddenCells:       slices.Clone(parameter.ForbiddenCells),
		PlacementAttempts:    parameter.PlacementAttempts,
		TopRowSnakes:         parameter.TopRowSnakes,
		SnakeMinBodyDistance: parameter.SnakeMinBodyDistance,
		CurveAttempts:        parameter.MaxCurveGenerationAttempts,
		BezierSamples:        parameter.BezierSamplesPerSegment,
		CurveIntersectStride: parameter.CurveIntersectStride,

		Pattern: Pattern{
			Start:       parameter.PatternStart,
			StartJitter: parameter.PatternStartJitter,
			Spacing:     parameter.PatternSpacing,
			Jitter:      Range{parameter.PatternSpacingLow, parameter.PatternSpacingHigh},
			EndMargin:   parameter.PatternEndMargin,
		},

		HeadAssetDir: parameter.HeadAssetDir,
		BaseHeadSize: parameter.BaseHeadSize,
	}
}

// Load decodes a TOML file over the defaults, keys absent from the file keep their default
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv returns cfg with environment overrides applied, malformed values are ignored
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("SNAKEBOARD_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("SNAKEBOARD_GRID_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.GridSize = n
		}
	}
	if v := os.Getenv("SNAKEBOARD_CELL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CellSize = n
		}
	}
	if v := os.Getenv("SNAKEBOARD_MARGIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Margin = n
		}
	}
	if v := os.Getenv("SNAKEBOARD_LADDER_ON_TOP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LadderOnTop = b
		}
	}
	cfg.ForbiddenCells = slices.Clone(cfg.ForbiddenCells)
	return cfg
}

// Validate reports every bound the config violates, joined
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.GridSize < 4 || c.GridSize > 32 || c.GridSize%2 != 0 {
		fail("grid_size %d must be even and within [4, 32]", c.GridSize)
	}
	if c.CellSize <= 0 {
		fail("cell_size %d must be positive", c.CellSize)
	}
	if c.Margin < 0 {
		fail("margin %d must not be negative", c.Margin)
	}
	checkRange := func(name string, r Range, floor int) {
		if r.Min < floor {
			fail("%s.min %d must be at least %d", name, r.Min, floor)
		}
		if r.Min > r.Max {
			fail("%s.min %d exceeds max %d", name, r.Min, r.Max)
		}
	}
	checkRange("snakes", c.Snakes, 0)
	checkRange("ladders", c.Ladders, 0)
	checkRange("item_length", c.ItemLength, 1)
	checkRange("pattern.jitter", c.Pattern.Jitter, -c.Pattern.Spacing+1)

	if c.SnakeMaxXDistance < 0 || c.LadderMaxXDistance < 0 {
		fail("column distance caps must not be negative")
	}
	if c.ExclusionRadius < 0 {
		fail("exclusion_radius %d must not be negative", c.ExclusionRadius)
	}
	if c.PlacementAttempts < 1 {
		fail("placement_attempts %d must be at least 1", c.PlacementAttempts)
	}
	if c.TopRowSnakes < 0 {
		fail("top_row_snakes %d must not be negative", c.TopRowSnakes)
	}
	if c.CurveAttempts < 1 {
		fail("curve_attempts %d must be at least 1", c.CurveAttempts)
	}
	if c.BezierSamples < 2 {
		fail("bezier_samples %d must be at least 2", c.BezierSamples)
	}
	if c.CurveIntersectStride < 1 {
		fail("curve_intersect_stride %d must be at least 1", c.CurveIntersectStride)
	}
	if c.SnakeMinBodyDistance < 0 {
		fail("snake_min_body_distance %.1f must not be negative", c.SnakeMinBodyDistance)
	}
	if c.Pattern.Spacing <= 0 {
		fail("pattern.spacing %d must be positive", c.Pattern.Spacing)
	}
	if c.Pattern.StartJitter < 0 {
		fail("pattern.start_jitter %d must not be negative", c.Pattern.StartJitter)
	}
	if c.BaseHeadSize <= 0 {
		fail("base_head_size %d must be positive", c.BaseHeadSize)
	}

	return errors.Join(errs...)
}
