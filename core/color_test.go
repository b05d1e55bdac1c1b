package core

import "testing"

func TestColorHelpers(t *testing.T) {
	c := RGB{100, 200, 50}
	if got := c.Darken(0.5); got != (RGB{50, 100, 25}) {
		t.Errorf("Expected {50 100 25}, got %v", got)
	}
	if got := (RGB{0, 0, 0}).Lighten(1); got != RGBWhite {
		t.Errorf("Expected white, got %v", got)
	}
	if got := c.Hex(); got != "#64c832" {
		t.Errorf("Expected #64c832, got %s", got)
	}
}

func TestAreaClamp(t *testing.T) {
	a := Area{Min: Point{X: 10, Y: 10}, Max: Point{X: 20, Y: 20}}
	if got := a.Clamp(Point{X: 5, Y: 25}); got != (Point{X: 10, Y: 20}) {
		t.Errorf("Expected {10 20}, got %v", got)
	}
	if !a.Contains(Point{X: 20, Y: 10}) || a.Contains(Point{X: 21, Y: 10}) {
		t.Error("Contains disagrees with inclusive bounds")
	}
}
