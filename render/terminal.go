package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeboard/board"
	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/grid"
	"github.com/lixenwraith/snakeboard/parameter/visual"
	"github.com/lixenwraith/snakeboard/vmath"
)

// Character footprint of one board cell
const (
	termCellWidth  = 4
	termCellHeight = 2
)

// Marker runes
const (
	runeLadder     = '#'
	runeLadderEnd  = 'H'
	runeSnakeBody  = '~'
	runeSnakeHead  = 'S'
	runeSnakeTail  = 's'
	runeBackground = ' '
)

// TerminalSize returns the character area PaintTerminal covers
func TerminalSize(geo grid.Geometry) (width, height int) {
	return geo.Size * termCellWidth, geo.Size * termCellHeight
}

func tcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// terminalPainter projects board pixels onto character cells
type terminalPainter struct {
	screen tcell.Screen
	geo    grid.Geometry
	tiles  [][]tcell.Color
}

// project maps a board pixel to fractional character coordinates
func (p *terminalPainter) project(pt core.Point) (float64, float64) {
	x := (pt.X - float64(p.geo.Margin)) / float64(p.geo.CellSize) * termCellWidth
	y := (pt.Y - float64(p.geo.Margin)) / float64(p.geo.CellSize) * termCellHeight
	return x, y
}

// put draws r at (x, y) over the tile background, ignoring positions off the board
func (p *terminalPainter) put(x, y int, r rune, fg core.RGB) {
	w, h := TerminalSize(p.geo)
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	bg := p.tiles[y/termCellHeight][x/termCellWidth]
	p.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(tcellColor(fg)).Background(bg))
}

func (p *terminalPainter) stroke(a, b core.Point, r rune, fg core.RGB) {
	x1, y1 := p.project(a)
	x2, y2 := p.project(b)
	vmath.Traverse(x1, y1, x2, y2, func(x, y int) bool {
		p.put(x, y, r, fg)
		return true
	})
}

func (p *terminalPainter) mark(c grid.Cell, r rune, fg core.RGB) {
	x, y := p.project(p.geo.CellCenter(c))
	p.put(int(x), int(y), r, fg)
}

// PaintTerminal draws the layout at the screen origin: numbered tiles, ladder
// rails, snake bodies, then item endpoints on top
func PaintTerminal(s tcell.Screen, l board.Layout, geo grid.Geometry) {
	p := &terminalPainter{screen: s, geo: geo, tiles: make([][]tcell.Color, geo.Size)}
	for row := range p.tiles {
		p.tiles[row] = make([]tcell.Color, geo.Size)
		for col := range p.tiles[row] {
			base := visual.PastelColors[(row*geo.Size+col)%len(visual.PastelColors)]
			p.tiles[row][col] = tcellColor(base.Lighten(visual.TileLightenRate))
		}
	}

	for row := 0; row < geo.Size; row++ {
		for col := 0; col < geo.Size; col++ {
			x0, y0 := col*termCellWidth, row*termCellHeight
			cell, _ := geo.GridToCell(grid.Pos{Row: row, Col: col})
			label := []rune(fmt.Sprintf("%3d ", cell))
			for dy := 0; dy < termCellHeight; dy++ {
				for dx := 0; dx < termCellWidth; dx++ {
					r := runeBackground
					if dy == 0 && dx < len(label) {
						r = label[dx]
					}
					p.put(x0+dx, y0+dy, r, visual.RgbTileText)
				}
			}
		}
	}

	for _, it := range l.Items() {
		switch it := it.(type) {
		case board.Ladder:
			p.stroke(geo.CellCenter(it.Start), geo.CellCenter(it.End), runeLadder, it.Color.Darken(visual.RailDarkenRate))
		case board.Snake:
			for i := 1; i < len(it.Curve); i++ {
				p.stroke(it.Curve[i-1], it.Curve[i], runeSnakeBody, it.Style.Body)
			}
		}
	}

	for _, ld := range l.Ladders {
		p.mark(ld.Start, runeLadderEnd, visual.RgbLadderFoot)
		p.mark(ld.End, runeLadderEnd, visual.RgbLadderTop)
	}
	for _, sn := range l.Snakes {
		p.mark(sn.Start, runeSnakeHead, sn.Style.Body)
		p.mark(sn.End, runeSnakeTail, sn.Style.Body)
	}
}
