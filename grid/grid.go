// Package grid maps between serpentine cell numbers, grid positions and pixel
// centers. Cell 1 is the bottom-left square; rows alternate direction.
package grid

import (
	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/vmath"
)

// Cell is a 1-based board square number
type Cell int

// Pos is a grid coordinate, row 0 is the top row
type Pos struct {
	Row, Col int
}

// Quadrant identifies one of four equal board regions
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// Quadrants lists every quadrant in declaration order
var Quadrants = [4]Quadrant{TopLeft, TopRight, BottomLeft, BottomRight}

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

// Geometry fixes board size and pixel layout
type Geometry struct {
	Size     int // Cells per side
	CellSize int // Pixels per cell
	Margin   int // Pixels around the grid
}

// CellCount returns Size²
func (g Geometry) CellCount() int {
	return g.Size * g.Size
}

// Width returns the full surface width in pixels
func (g Geometry) Width() int {
	return g.CellSize*g.Size + 2*g.Margin
}

// Height returns the full surface height in pixels
func (g Geometry) Height() int {
	return g.CellSize*g.Size + 2*g.Margin
}

// Valid reports whether c names a square on this board
func (g Geometry) Valid(c Cell) bool {
	return c >= 1 && int(c) <= g.CellCount()
}

// CellToGrid converts a cell number to its grid position
// Returns false for cells outside [1, Size²]
func (g Geometry) CellToGrid(c Cell) (Pos, bool) {
	if !g.Valid(c) {
		return Pos{}, false
	}
	idx := int(c) - 1
	rowFromBottom := idx / g.Size
	col := idx % g.Size
	if rowFromBottom%2 == 1 {
		col = g.Size - 1 - col
	}
	return Pos{Row: g.Size - 1 - rowFromBottom, Col: col}, true
}

// GridToCell is the inverse of CellToGrid
func (g Geometry) GridToCell(p Pos) (Cell, bool) {
	if p.Row < 0 || p.Row >= g.Size || p.Col < 0 || p.Col >= g.Size {
		return 0, false
	}
	rowFromBottom := g.Size - 1 - p.Row
	col := p.Col
	if rowFromBottom%2 == 1 {
		col = g.Size - 1 - col
	}
	return Cell(rowFromBottom*g.Size + col + 1), true
}

// CellCenter returns the pixel center of c
// Internal use: c must be valid, out-of-range input is not checked
func (g Geometry) CellCenter(c Cell) core.Point {
	idx := int(c) - 1
	rowFromBottom := idx / g.Size
	col := idx % g.Size
	if rowFromBottom%2 == 1 {
		col = g.Size - 1 - col
	}
	row := g.Size - 1 - rowFromBottom
	half := g.CellSize / 2
	return core.Point{
		X: float64(g.Margin + col*g.CellSize + half),
		Y: float64(g.Margin + row*g.CellSize + half),
	}
}

// QuadrantOf returns the board quadrant containing c, c must be valid
func (g Geometry) QuadrantOf(c Cell) Quadrant {
	p, _ := g.CellToGrid(c)
	top := float64(p.Row) < float64(g.Size)/2
	left := float64(p.Col) < float64(g.Size)/2
	switch {
	case top && left:
		return TopLeft
	case top:
		return TopRight
	case left:
		return BottomLeft
	default:
		return BottomRight
	}
}

// Chebyshev returns the king-move grid distance between two valid cells
func (g Geometry) Chebyshev(a, b Cell) int {
	pa, _ := g.CellToGrid(a)
	pb, _ := g.CellToGrid(b)
	return vmath.Chebyshev(pa.Col, pa.Row, pb.Col, pb.Row)
}

// ColumnDistance returns |col(a) - col(b)| for two valid cells
func (g Geometry) ColumnDistance(a, b Cell) int {
	pa, _ := g.CellToGrid(a)
	pb, _ := g.CellToGrid(b)
	return vmath.AbsInt(pa.Col - pb.Col)
}

// Bounds returns the grid interior used to clamp curve control points
func (g Geometry) Bounds() core.Area {
	return core.Area{
		Min: core.Point{X: float64(g.Margin), Y: float64(g.Margin)},
		Max: core.Point{X: float64(g.Width() - g.Margin), Y: float64(g.Height() - g.Margin)},
	}
}

// PixelMap returns the center of every cell, indexed by cell number
// Index 0 is unused so that m[c] is the center of c
func (g Geometry) PixelMap() []core.Point {
	m := make([]core.Point, g.CellCount()+1)
	for c := 1; c <= g.CellCount(); c++ {
		m[c] = g.CellCenter(Cell(c))
	}
	return m
}

// RowCells returns the cell range [lo, hi] of the row rowFromBottom (0 = bottom)
func (g Geometry) RowCells(rowFromBottom int) (lo, hi Cell) {
	return Cell(rowFromBottom*g.Size + 1), Cell((rowFromBottom + 1) * g.Size)
}
