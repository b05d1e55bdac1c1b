// Package render draws generated boards: a supersampled PNG rasteriser and a
// character-cell painter for tcell screens.
package render

import (
	"image"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/lixenwraith/snakeboard/board"
	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/curve"
	"github.com/lixenwraith/snakeboard/grid"
	"github.com/lixenwraith/snakeboard/parameter"
	"github.com/lixenwraith/snakeboard/parameter/visual"
	"github.com/lixenwraith/snakeboard/vmath"
)

// tileFontSize is the cell number size in points
const tileFontSize = 18

// Options controls PNG output
type Options struct {
	DrawBoard     bool
	Background    core.RGB
	ShowEndpoints bool
	Supersample   int
	Heads         *HeadCache // nil skips head sprites
}

// DefaultOptions draws the full board with sprites from heads
func DefaultOptions(heads *HeadCache) Options {
	return Options{
		DrawBoard:   true,
		Background:  visual.RgbBackground,
		Supersample: parameter.PNGSupersample,
		Heads:       heads,
	}
}

// PNG encodes the layout as a PNG image
func PNG(w io.Writer, l board.Layout, geo grid.Geometry, opts Options) error {
	img, err := Image(l, geo, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image rasterises the layout at board resolution
func Image(l board.Layout, geo grid.Geometry, opts Options) (*image.RGBA, error) {
	scale := max(opts.Supersample, 1)
	c, err := newCanvas(geo.Width(), geo.Height(), scale, tileFontSize)
	if err != nil {
		return nil, err
	}

	c.fill(opts.Background)
	if opts.DrawBoard {
		drawTiles(c, geo)
	}
	for _, it := range l.Items() {
		switch it := it.(type) {
		case board.Ladder:
			drawLadder(c, it, geo, opts.ShowEndpoints)
		case board.Snake:
			drawSnake(c, it, opts)
		}
	}
	return c.downsample(geo.Width(), geo.Height()), nil
}

func drawTiles(c *canvas, geo grid.Geometry) {
	pastels := visual.PastelColors
	for row := 0; row < geo.Size; row++ {
		for col := 0; col < geo.Size; col++ {
			x := float64(geo.Margin + col*geo.CellSize)
			y := float64(geo.Margin + row*geo.CellSize)
			base := pastels[(row*geo.Size+col)%len(pastels)]
			c.rect(x, y, float64(geo.CellSize), float64(geo.CellSize), base.Lighten(visual.TileLightenRate))

			cell, _ := geo.GridToCell(grid.Pos{Row: row, Col: col})
			half := float64(geo.CellSize) / 2
			c.text(core.Point{X: x + half, Y: y + half}, strconv.Itoa(int(cell)), visual.RgbTileText)
		}
	}
}

func drawLadder(c *canvas, ld board.Ladder, geo grid.Geometry, markers bool) {
	p1, p2 := geo.CellCenter(ld.Start), geo.CellCenter(ld.End)
	d := p2.Sub(p1)
	dist := math.Hypot(d.X, d.Y)
	if dist < parameter.LadderMinLength {
		return
	}
	perp := vmath.Perpendicular(vmath.Normalize2D(d)).Scale(parameter.LadderRailOffset)

	lo, hi := parameter.LadderRungMargin, 1-parameter.LadderRungMargin
	rungs := max(2, int(dist*(hi-lo)/parameter.LadderRungSpacing))
	for i := 0; i < rungs; i++ {
		t := lo + float64(i)*(hi-lo)/float64(rungs-1)
		mid := p1.Add(d.Scale(t))
		c.line(mid.Sub(perp), mid.Add(perp), parameter.LadderRungThickness, ld.Color)
	}

	rails := ld.Color.Darken(visual.RailDarkenRate)
	c.line(p1.Add(perp), p2.Add(perp), parameter.LadderRailThickness, rails)
	c.line(p1.Sub(perp), p2.Sub(perp), parameter.LadderRailThickness, rails)

	if markers {
		marker(c, p1, visual.RgbLadderFoot)
		marker(c, p2, visual.RgbLadderTop)
	}
}

func marker(c *canvas, p core.Point, col core.RGB) {
	c.circle(p, 8, visual.RgbMarkerRing)
	c.circle(p, 6, col)
}

// taper returns the stroke width at progress along the body, narrowing over
// the last stretch toward the tail
func taper(progress float64, maxW, minW int) float64 {
	f := 0.0
	if progress > parameter.SnakeTaperStart {
		f = math.Pow((progress-parameter.SnakeTaperStart)/(1-parameter.SnakeTaperStart), 1.5)
	}
	return float64(max(1, int(float64(maxW)-float64(maxW-minW)*f)))
}

func drawSnake(c *canvas, s board.Snake, opts Options) {
	body := s.Curve
	n := len(body)
	if n < 2 {
		return
	}
	progress := func(i int) float64 {
		return float64(i) / float64(n-1)
	}

	outline := s.Style.Body.Darken(visual.OutlineDarken)
	for i := 0; i < n-1; i++ {
		w := taper(progress(i), parameter.SnakeMaxOutline, parameter.SnakeMinOutline)
		c.line(body[i], body[i+1], w, outline)
	}
	for i := 0; i < n-1; i++ {
		w := taper(progress(i), parameter.SnakeMaxInner, parameter.SnakeMinInner)
		c.line(body[i], body[i+1], w, s.Style.Body)
	}

	stripeEdge := s.Style.Body.Darken(visual.StripeDarken)
	for _, mark := range s.Pattern {
		pos, dir, seg := curve.PointAt(body, mark)
		perp := vmath.Perpendicular(dir)
		hw := taper(progress(seg), parameter.SnakeMaxInner, parameter.SnakeMinInner) / 2 * parameter.SnakePatternSizeFactor
		hh := float64(parameter.SnakeStripeHeight) / 2
		quad := []core.Point{
			pos.Sub(dir.Scale(hh)).Add(perp.Scale(hw)),
			pos.Add(dir.Scale(hh)).Add(perp.Scale(hw)),
			pos.Add(dir.Scale(hh)).Sub(perp.Scale(hw)),
			pos.Sub(dir.Scale(hh)).Sub(perp.Scale(hw)),
		}
		c.polygon(quad, s.Style.Stripe)
		c.outline(quad, 2, stripeEdge)
	}

	if opts.Heads != nil {
		head := opts.Heads.Head(s.Style.HeadImg, s.Style.Body)
		_, dir, _ := curve.PointAt(body, 0)
		c.sprite(head, body[0], dir, float64(opts.Heads.size))
	}
	if opts.ShowEndpoints {
		marker(c, body[n-1], visual.RgbSnakeTail)
	}
}
