package vmath

import "github.com/lixenwraith/snakeboard/core"

// CubicPoint evaluates the cubic Bezier p0..p3 at t
func CubicPoint(p0, p1, p2, p3 core.Point, t float64) core.Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return core.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// CubicChain samples chained cubic segments sharing endpoints (stride 3)
// Each segment contributes samples points including both ends, so joints repeat
// Fewer than 4 control points are returned as a copy
func CubicChain(ctrl []core.Point, samples int) []core.Point {
	if len(ctrl) < 4 || samples <= 0 {
		out := make([]core.Point, len(ctrl))
		copy(out, ctrl)
		return out
	}

	ts := Linspace(0, 1, samples)
	out := make([]core.Point, 0, ((len(ctrl)-1)/3)*samples)
	for i := 0; i+3 < len(ctrl); i += 3 {
		p0, p1, p2, p3 := ctrl[i], ctrl[i+1], ctrl[i+2], ctrl[i+3]
		for _, t := range ts {
			out = append(out, CubicPoint(p0, p1, p2, p3, t))
		}
	}
	if len(out) == 0 {
		out = append(out, ctrl...)
	}
	return out
}
