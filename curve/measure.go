package curve

import (
	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/vmath"
)

// Length returns the polyline arc length of c
func Length(c []core.Point) float64 {
	var total float64
	for i := 1; i < len(c); i++ {
		total += c[i-1].Dist(c[i])
	}
	return total
}

// PointAt returns the position at arc distance d along c and the unit
// direction of the segment holding it, plus the index of that segment
// d is clamped to [0, Length(c)]
func PointAt(c []core.Point, d float64) (pos, dir core.Point, seg int) {
	switch len(c) {
	case 0:
		return core.Point{}, core.Point{}, 0
	case 1:
		return c[0], core.Point{}, 0
	}
	if d <= 0 {
		return c[0], vmath.Normalize2D(c[1].Sub(c[0])), 0
	}

	var travelled float64
	for i := 0; i < len(c)-1; i++ {
		step := c[i].Dist(c[i+1])
		if step > 0 && travelled+step >= d {
			return c[i].Lerp(c[i+1], (d-travelled)/step), vmath.Normalize2D(c[i+1].Sub(c[i])), i
		}
		travelled += step
	}
	last := len(c) - 1
	return c[last], vmath.Normalize2D(c[last].Sub(c[last-1])), last - 1
}
