// Package curve turns snake endpoints into dense Bezier bodies, keeps bodies
// apart and lays out the stripe pattern along each one.
package curve

import (
	"math/rand"

	"github.com/lixenwraith/snakeboard/config"
	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/vmath"
)

// Synthesizer builds randomized snake curves inside the board bounds
type Synthesizer struct {
	bounds   core.Area
	cellSize int
	samples  int
	pattern  config.Pattern
	rng      *rand.Rand
}

// NewSynthesizer creates a synthesizer for the board described by cfg
func NewSynthesizer(cfg config.Config, bounds core.Area, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{
		bounds:   bounds,
		cellSize: cfg.CellSize,
		samples:  cfg.BezierSamples,
		pattern:  cfg.Pattern,
		rng:      rng,
	}
}

// jitter returns a uniform integer offset in [-k, k]
func (s *Synthesizer) jitter(k int) float64 {
	if k <= 0 {
		return 0
	}
	return float64(s.rng.Intn(2*k+1) - k)
}

// between returns a uniform integer in [lo, hi]
func (s *Synthesizer) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// ControlPoints returns start, a jittered midpoint and end, padded with
// jittered points along the chord until the count is 3k+1
func (s *Synthesizer) ControlPoints(start, end core.Point) []core.Point {
	mid := start.Lerp(end, 0.5)
	mid.X += s.jitter(s.cellSize)
	mid.Y += s.jitter(s.cellSize)

	pts := []core.Point{start, s.bounds.Clamp(mid), end}
	for (len(pts)-1)%3 != 0 {
		p := start.Lerp(end, s.rng.Float64())
		p.X += s.jitter(s.cellSize / 2)
		p.Y += s.jitter(s.cellSize / 2)
		last := len(pts) - 1
		pts = append(pts[:last], s.bounds.Clamp(p), pts[last])
	}
	return pts
}

// CubicBezier samples chained cubic segments, samples points per segment
// Fewer than 4 control points come back unchanged
func CubicBezier(ctrl []core.Point, samples int) []core.Point {
	return vmath.CubicChain(ctrl, samples)
}

// Curve returns a dense body running exactly from start to end
func (s *Synthesizer) Curve(start, end core.Point) []core.Point {
	return CubicBezier(s.ControlPoints(start, end), s.samples)
}

// Pattern returns arc distances of stripe marks along c, increasing
func (s *Synthesizer) Pattern(c []core.Point) []float64 {
	total := Length(c)
	p := s.pattern

	var marks []float64
	d := float64(p.Start) + s.jitter(p.StartJitter)
	for d < total-float64(p.EndMargin) {
		marks = append(marks, d)
		d += float64(p.Spacing + s.between(p.Jitter.Min, p.Jitter.Max))
	}
	return marks
}
