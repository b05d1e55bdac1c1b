package render

import (
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/vmath"
)

// circleSegments approximates round caps and markers
const circleSegments = 20

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// canvas draws board-space shapes onto a supersampled RGBA image
// All coordinates are board pixels, scaled on the way in
type canvas struct {
	img   *image.RGBA
	scale float64
	z     *vector.Rasterizer
	face  font.Face
}

func newCanvas(width, height, scale int, fontSize float64) (*canvas, error) {
	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width*scale, height*scale)),
		scale: float64(scale),
		z:     vector.NewRasterizer(0, 0),
	}

	fnt, err := goRegular()
	if err != nil {
		return nil, err
	}
	c.face, err = opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    fontSize * c.scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func rgba(c core.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

func (c *canvas) fill(col core.RGB) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(rgba(col)), image.Point{}, draw.Src)
}

func (c *canvas) rect(x, y, w, h float64, col core.RGB) {
	r := image.Rect(int(x*c.scale), int(y*c.scale), int((x+w)*c.scale), int((y+h)*c.scale))
	draw.Draw(c.img, r, image.NewUniform(rgba(col)), image.Point{}, draw.Src)
}

// polygon fills the closed path pts
// The rasterizer is sized to the path's bounding box to keep large canvases cheap
func (c *canvas) polygon(pts []core.Point, col core.RGB) {
	if len(pts) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = min(minX, p.X*c.scale), max(maxX, p.X*c.scale)
		minY, maxY = min(minY, p.Y*c.scale), max(maxY, p.Y*c.scale)
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
	box = box.Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	c.z.Reset(box.Dx(), box.Dy())
	c.z.MoveTo(float32(pts[0].X*c.scale-ox), float32(pts[0].Y*c.scale-oy))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X*c.scale-ox), float32(p.Y*c.scale-oy))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, box, image.NewUniform(rgba(col)), image.Point{})
}

// line strokes p0-p1 with the given width and a round cap at p1
func (c *canvas) line(p0, p1 core.Point, width float64, col core.RGB) {
	d := p1.Sub(p0)
	half := width / 2
	if vmath.Magnitude(d) > 0 {
		n := vmath.Perpendicular(vmath.Normalize2D(d)).Scale(half)
		c.polygon([]core.Point{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)}, col)
	}
	c.circle(p1, half, col)
}

func (c *canvas) circle(center core.Point, r float64, col core.RGB) {
	if r <= 0 {
		return
	}
	pts := make([]core.Point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = core.Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	c.polygon(pts, col)
}

// outline strokes the closed path pts
func (c *canvas) outline(pts []core.Point, width float64, col core.RGB) {
	for i := range pts {
		c.line(pts[i], pts[(i+1)%len(pts)], width, col)
	}
}

// text draws s centered on p
func (c *canvas) text(p core.Point, s string, col core.RGB) {
	width := font.MeasureString(c.face, s)
	m := c.face.Metrics()
	x := fixed.Int26_6(p.X*c.scale*64) - width/2
	y := fixed.Int26_6(p.Y*c.scale*64) + (m.Ascent-m.Descent)/2
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(rgba(col)),
		Face: c.face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(s)
}

// sprite draws src centered on p at size board pixels, rotated so that the
// sprite's top edge faces dir
func (c *canvas) sprite(src image.Image, p, dir core.Point, size float64) {
	b := src.Bounds()
	if b.Empty() {
		return
	}
	if dir == (core.Point{}) {
		dir = core.Point{Y: -1}
	}
	k := size * c.scale / float64(b.Dx())
	// Rotation maps sprite up (0,-1) onto dir
	a, bb := -dir.Y*k, -dir.X*k
	cc, dd := dir.X*k, -dir.Y*k
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	px, py := p.X*c.scale, p.Y*c.scale

	s2d := f64.Aff3{a, bb, px - a*cx - bb*cy, cc, dd, py - cc*cx - dd*cy}
	draw.BiLinear.Transform(c.img, s2d, src, b, draw.Over, nil)
}

// downsample returns the canvas scaled back to board pixels
func (c *canvas) downsample(width, height int) *image.RGBA {
	if c.scale == 1 {
		return c.img
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(out, out.Bounds(), c.img, c.img.Bounds(), draw.Over, nil)
	return out
}
