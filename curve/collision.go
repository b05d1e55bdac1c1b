package curve

import (
	"github.com/lixenwraith/snakeboard/config"
	"github.com/lixenwraith/snakeboard/core"
)

// Intersects reports whether any stride-th sample of a lies closer than
// minDistance to any stride-th sample of b
func Intersects(a, b []core.Point, minDistance float64, stride int) bool {
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(a); i += stride {
		for j := 0; j < len(b); j += stride {
			if a[i].Dist(b[j]) < minDistance {
				return true
			}
		}
	}
	return false
}

// Resolver retries curve synthesis until a body clears every accepted one
type Resolver struct {
	synth       *Synthesizer
	minDistance float64
	attempts    int
	stride      int
}

// NewResolver binds a resolver to synth with the limits in cfg
func NewResolver(synth *Synthesizer, cfg config.Config) *Resolver {
	return &Resolver{
		synth:       synth,
		minDistance: cfg.SnakeMinBodyDistance,
		attempts:    max(cfg.CurveAttempts, 1),
		stride:      cfg.CurveIntersectStride,
	}
}

// Place returns the first generated curve clear of accepted
// retries counts rejected candidates; when every attempt collides the last
// candidate is returned with clean false
func (r *Resolver) Place(start, end core.Point, accepted [][]core.Point) (curve []core.Point, retries int, clean bool) {
	for attempt := 0; attempt < r.attempts; attempt++ {
		curve = r.synth.Curve(start, end)
		if !r.collides(curve, accepted) {
			return curve, retries, true
		}
		retries++
	}
	return curve, retries, false
}

func (r *Resolver) collides(c []core.Point, accepted [][]core.Point) bool {
	for _, other := range accepted {
		if Intersects(c, other, r.minDistance, r.stride) {
			return true
		}
	}
	return false
}
