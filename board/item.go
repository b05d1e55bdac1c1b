package board

import (
	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/parameter/visual"
	"github.com/lixenwraith/snakeboard/placement"
)

// Item is a placed snake or ladder; the set of implementations is closed
type Item interface {
	Endpoints() placement.Span
	item()
}

// Snake carries a player from Start down to End along Curve
// Curve[0] is the head at Start; Pattern holds stripe arc distances
type Snake struct {
	placement.Span
	Style   visual.SnakeStyle
	Curve   []core.Point
	Pattern []float64
}

// Ladder carries a player from Start up to End
type Ladder struct {
	placement.Span
	Color core.RGB
}

func (s Snake) Endpoints() placement.Span {
	return s.Span
}

func (l Ladder) Endpoints() placement.Span {
	return l.Span
}

func (Snake) item() {}

func (Ladder) item() {}
