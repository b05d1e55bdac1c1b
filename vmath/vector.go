package vmath

import (
	"math"

	"github.com/lixenwraith/snakeboard/core"
)

// Normalize2D returns the unit vector of v, zero-safe
func Normalize2D(v core.Point) core.Point {
	mag := Magnitude(v)
	if mag == 0 {
		return core.Point{}
	}
	return core.Point{X: v.X / mag, Y: v.Y / mag}
}

// Magnitude returns the Euclidean length of v
func Magnitude(v core.Point) float64 {
	return math.Hypot(v.X, v.Y)
}

// Perpendicular returns vector rotated 90° counter-clockwise in screen space
func Perpendicular(v core.Point) core.Point {
	return core.Point{X: -v.Y, Y: v.X}
}
