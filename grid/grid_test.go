package grid

import (
	"testing"

	"github.com/lixenwraith/snakeboard/core"
)

var std = Geometry{Size: 10, CellSize: 60, Margin: 50}

func TestBijection(t *testing.T) {
	for c := Cell(1); c <= 100; c++ {
		p, ok := std.CellToGrid(c)
		if !ok {
			t.Fatalf("Expected cell %d to be valid", c)
		}
		back, ok := std.GridToCell(p)
		if !ok || back != c {
			t.Errorf("Round trip of %d via %v returned %d (ok=%v)", c, p, back, ok)
		}
	}
}

func TestSerpentineNumbering(t *testing.T) {
	tests := []struct {
		cell Cell
		want Pos
	}{
		{1, Pos{9, 0}},
		{10, Pos{9, 9}},
		{11, Pos{8, 9}},
		{20, Pos{8, 0}},
		{21, Pos{7, 0}},
		{91, Pos{0, 9}},
		{100, Pos{0, 0}},
	}
	for _, tt := range tests {
		got, ok := std.CellToGrid(tt.cell)
		if !ok || got != tt.want {
			t.Errorf("CellToGrid(%d) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestCellToGridRejectsOutOfRange(t *testing.T) {
	for _, c := range []Cell{0, 101, -5} {
		if _, ok := std.CellToGrid(c); ok {
			t.Errorf("Expected cell %d to be rejected", c)
		}
	}
	if _, ok := std.GridToCell(Pos{10, 0}); ok {
		t.Error("Expected row 10 to be rejected")
	}
	if _, ok := std.GridToCell(Pos{0, -1}); ok {
		t.Error("Expected col -1 to be rejected")
	}
}

func TestCellCenter(t *testing.T) {
	if got := std.CellCenter(1); got != (core.Point{X: 80, Y: 620}) {
		t.Errorf("Expected cell 1 center (80,620), got %v", got)
	}
	if got := std.CellCenter(100); got != (core.Point{X: 80, Y: 80}) {
		t.Errorf("Expected cell 100 center (80,80), got %v", got)
	}
	if got := std.CellCenter(11); got != (core.Point{X: 620, Y: 560}) {
		t.Errorf("Expected cell 11 center (620,560), got %v", got)
	}
}

func TestQuadrantOf(t *testing.T) {
	tests := []struct {
		cell Cell
		want Quadrant
	}{
		{1, BottomLeft},
		{10, BottomRight},
		{100, TopLeft},
		{91, TopRight},
		{50, BottomRight}, // fifth row runs left to right
		{51, TopRight},    // sixth row starts on the right
		{60, TopLeft},
	}
	for _, tt := range tests {
		if got := std.QuadrantOf(tt.cell); got != tt.want {
			t.Errorf("QuadrantOf(%d) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestDistances(t *testing.T) {
	if d := std.Chebyshev(1, 19); d != 1 {
		t.Errorf("Expected Chebyshev(1,19)=1, got %d", d)
	}
	if d := std.Chebyshev(1, 100); d != 9 {
		t.Errorf("Expected Chebyshev(1,100)=9, got %d", d)
	}
	if d := std.ColumnDistance(1, 20); d != 0 {
		t.Errorf("Expected cells 1 and 20 in same column, got %d", d)
	}
	if d := std.ColumnDistance(1, 10); d != 9 {
		t.Errorf("Expected column distance 9, got %d", d)
	}
}

func TestPixelMapAndBounds(t *testing.T) {
	m := std.PixelMap()
	if len(m) != 101 {
		t.Fatalf("Expected 101 entries, got %d", len(m))
	}
	b := std.Bounds()
	for c := 1; c <= 100; c++ {
		if m[c] != std.CellCenter(Cell(c)) {
			t.Errorf("PixelMap[%d] mismatch", c)
		}
		if !b.Contains(m[c]) {
			t.Errorf("Center of %d outside bounds", c)
		}
	}
	if std.Width() != 700 || std.Height() != 700 {
		t.Errorf("Expected 700x700 surface, got %dx%d", std.Width(), std.Height())
	}
}

func TestRowCells(t *testing.T) {
	lo, hi := std.RowCells(9)
	if lo != 91 || hi != 100 {
		t.Errorf("Expected top row 91..100, got %d..%d", lo, hi)
	}
}
