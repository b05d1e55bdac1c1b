package vmath

import (
	"testing"

	"github.com/lixenwraith/snakeboard/core"
)

func TestChebyshev(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2 int
		want           int
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 3, 1, 3},
		{5, 5, 4, 9, 4},
		{9, 0, 0, 9, 9},
	}
	for _, tt := range tests {
		if got := Chebyshev(tt.x1, tt.y1, tt.x2, tt.y2); got != tt.want {
			t.Errorf("Chebyshev(%d,%d,%d,%d) = %d, want %d", tt.x1, tt.y1, tt.x2, tt.y2, got, tt.want)
		}
	}
}

func TestLinspaceEndpoints(t *testing.T) {
	ts := Linspace(0, 1, 60)
	if len(ts) != 60 {
		t.Fatalf("Expected 60 samples, got %d", len(ts))
	}
	if ts[0] != 0 || ts[59] != 1 {
		t.Errorf("Expected endpoints 0 and 1, got %f and %f", ts[0], ts[59])
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			t.Fatalf("Expected strictly increasing samples at %d", i)
		}
	}
	if got := Linspace(0, 1, 0); got != nil {
		t.Errorf("Expected nil for n=0, got %v", got)
	}
}

func TestCubicChainEndpoints(t *testing.T) {
	ctrl := []core.Point{{0, 0}, {10, 40}, {30, -20}, {50, 50}, {60, 10}, {80, 90}, {100, 100}}
	curve := CubicChain(ctrl, 60)

	if len(curve) != 2*60 {
		t.Fatalf("Expected %d samples for two segments, got %d", 2*60, len(curve))
	}
	if curve[0] != ctrl[0] {
		t.Errorf("Expected first sample %v, got %v", ctrl[0], curve[0])
	}
	if curve[len(curve)-1] != ctrl[len(ctrl)-1] {
		t.Errorf("Expected last sample %v, got %v", ctrl[len(ctrl)-1], curve[len(curve)-1])
	}
	// Segment joint is shared
	if curve[59] != ctrl[3] || curve[60] != ctrl[3] {
		t.Errorf("Expected joint %v repeated, got %v and %v", ctrl[3], curve[59], curve[60])
	}
}

func TestCubicChainDegenerate(t *testing.T) {
	ctrl := []core.Point{{1, 2}, {3, 4}, {5, 6}}
	curve := CubicChain(ctrl, 60)
	if len(curve) != 3 {
		t.Fatalf("Expected control points returned unchanged, got %d points", len(curve))
	}
	curve[0] = core.Point{}
	if ctrl[0] != (core.Point{X: 1, Y: 2}) {
		t.Error("Expected degenerate result to be a copy")
	}
}

func TestTraverseCoversLine(t *testing.T) {
	var cells [][2]int
	Traverse(0.5, 0.5, 3.5, 0.5, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	if len(cells) != len(want) {
		t.Fatalf("Expected %d cells, got %v", len(want), cells)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Cell %d: expected %v, got %v", i, want[i], cells[i])
		}
	}
}

func TestTraverseTerminatesOnDiagonal(t *testing.T) {
	count := 0
	Traverse(0.5, 0.5, 9.5, 9.5, func(x, y int) bool {
		count++
		return count < 1000
	})
	if count < 10 || count >= 1000 {
		t.Errorf("Expected bounded diagonal traversal, visited %d cells", count)
	}
}
