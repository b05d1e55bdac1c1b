// Package board assembles complete layouts: placement, snake styling, curve
// synthesis with collision retries, and the jump table consumed by play.
package board

import (
	"math/rand"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/snakeboard/config"
	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/curve"
	"github.com/lixenwraith/snakeboard/grid"
	"github.com/lixenwraith/snakeboard/logging"
	"github.com/lixenwraith/snakeboard/parameter/visual"
	"github.com/lixenwraith/snakeboard/placement"
)

// Stage tracks how far the last generation got
type Stage int

const (
	StageEmpty Stage = iota
	StageSampling
	StageAssigning
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageSampling:
		return "sampling"
	case StageAssigning:
		return "assigning"
	case StageComplete:
		return "complete"
	}
	return "unknown"
}

// Report summarizes one generation
type Report struct {
	Seed             int64
	Stages           []Stage
	RequestedSnakes  int
	RequestedLadders int
	Sampling         placement.Stats
	CurveRetries     int
	DirtyCurves      int // Snakes accepted without clearing every earlier body
}

// Layout is a generated board
type Layout struct {
	Snakes      []Snake
	Ladders     []Ladder
	Centers     []core.Point // Centers[c] is the pixel center of cell c, index 0 unused
	LadderOnTop bool
	Report      Report
}

// Items returns every item in draw order: ladders under snakes unless
// LadderOnTop is set
func (l Layout) Items() []Item {
	items := make([]Item, 0, len(l.Snakes)+len(l.Ladders))
	if l.LadderOnTop {
		for _, s := range l.Snakes {
			items = append(items, s)
		}
		for _, ld := range l.Ladders {
			items = append(items, ld)
		}
		return items
	}
	for _, ld := range l.Ladders {
		items = append(items, ld)
	}
	for _, s := range l.Snakes {
		items = append(items, s)
	}
	return items
}

// Generator produces layouts from one seeded random stream
// Successive Generate calls continue the stream, so a fixed seed reproduces
// the whole sequence
type Generator struct {
	cfg      config.Config
	geo      grid.Geometry
	seed     int64
	rng      *rand.Rand
	sampler  *placement.Sampler
	synth    *curve.Synthesizer
	resolver *curve.Resolver
	stage    Stage
}

// New creates a generator for cfg; seed 0 picks a time-based seed
func New(cfg config.Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	rules := placement.NewRules(cfg)
	synth := curve.NewSynthesizer(cfg, rules.Geo.Bounds(), rng)

	return &Generator{
		cfg:      cfg,
		geo:      rules.Geo,
		seed:     seed,
		rng:      rng,
		sampler:  placement.NewSampler(rules, rng),
		synth:    synth,
		resolver: curve.NewResolver(synth, cfg),
	}
}

// Seed returns the seed actually in use
func (g *Generator) Seed() int64 {
	return g.seed
}

// Geometry returns the board geometry
func (g *Generator) Geometry() grid.Geometry {
	return g.geo
}

// Stage returns the last stage reached
func (g *Generator) Stage() Stage {
	return g.stage
}

func (g *Generator) between(r config.Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}

// Generate builds a new layout; it always returns one, possibly with fewer
// items than requested
func (g *Generator) Generate() Layout {
	report := Report{Seed: g.seed}
	advance := func(s Stage) {
		g.stage = s
		report.Stages = append(report.Stages, s)
	}
	g.stage = StageEmpty

	report.RequestedSnakes = g.between(g.cfg.Snakes)
	report.RequestedLadders = g.between(g.cfg.Ladders)

	advance(StageSampling)
	snakeSpans, ladderSpans, stats := g.sampler.Positions(report.RequestedSnakes, report.RequestedLadders)
	report.Sampling = stats

	advance(StageAssigning)
	ladders := make([]Ladder, len(ladderSpans))
	for i, sp := range ladderSpans {
		ladders[i] = Ladder{Span: sp, Color: visual.PastelColors[g.rng.Intn(len(visual.PastelColors))]}
	}

	styles := g.assignStyles(len(snakeSpans))
	snakes := make([]Snake, 0, len(snakeSpans))
	bodies := make([][]core.Point, 0, len(snakeSpans))
	for i, sp := range snakeSpans {
		body, retries, clean := g.resolver.Place(g.geo.CellCenter(sp.Start), g.geo.CellCenter(sp.End), bodies)
		report.CurveRetries += retries
		if !clean {
			report.DirtyCurves++
			logging.Log.WithFields(logrus.Fields{
				"snake":   sp.String(),
				"retries": retries,
			}).Debug("snake body accepted without clearance")
		}
		bodies = append(bodies, body)
		snakes = append(snakes, Snake{
			Span:    sp,
			Style:   styles[i],
			Curve:   body,
			Pattern: g.synth.Pattern(body),
		})
	}

	advance(StageComplete)
	logging.Log.WithFields(logrus.Fields{
		"seed":          g.seed,
		"snakes":        len(snakes),
		"ladders":       len(ladders),
		"attempts":      stats.Attempts,
		"curve_retries": report.CurveRetries,
	}).Debug("board generated")

	return Layout{
		Snakes:      snakes,
		Ladders:     ladders,
		Centers:     g.geo.PixelMap(),
		LadderOnTop: g.cfg.LadderOnTop,
		Report:      report,
	}
}

// assignStyles uses each distinct style once before repeating any
func (g *Generator) assignStyles(n int) []visual.SnakeStyle {
	if n <= 0 {
		return nil
	}
	pool := slices.Clone(visual.SnakeStyles)
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	out := make([]visual.SnakeStyle, 0, n)
	out = append(out, pool[:min(n, len(pool))]...)
	for len(out) < n {
		out = append(out, visual.SnakeStyles[g.rng.Intn(len(visual.SnakeStyles))])
	}
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
