package core

// Area represents an axis-aligned pixel region, Min inclusive, Max inclusive
type Area struct {
	Min, Max Point
}

// Clamp pulls p inside the area on both axes
func (a Area) Clamp(p Point) Point {
	return Point{
		X: max(a.Min.X, min(a.Max.X, p.X)),
		Y: max(a.Min.Y, min(a.Max.Y, p.Y)),
	}
}

// Contains reports whether p lies inside the area
func (a Area) Contains(p Point) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}
