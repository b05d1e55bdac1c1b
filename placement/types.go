// Package placement decides where snakes and ladders go: endpoint rules,
// quadrant-fair rejection sampling and the special seed slots.
package placement

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/snakeboard/config"
	"github.com/lixenwraith/snakeboard/grid"
)

// Kind separates the two item families; exclusion is enforced within a kind
type Kind int

const (
	KindSnake Kind = iota
	KindLadder
)

func (k Kind) String() string {
	if k == KindLadder {
		return "ladder"
	}
	return "snake"
}

// Span is a placed item, Start is the trigger cell and End the destination
// Snakes have Start > End, ladders Start < End
type Span struct {
	Start, End grid.Cell
}

// Length is the cell-number distance |Start-End|
func (s Span) Length() int {
	if s.Start > s.End {
		return int(s.Start - s.End)
	}
	return int(s.End - s.Start)
}

func (s Span) String() string {
	return fmt.Sprintf("%d->%d", s.Start, s.End)
}

// Rules is the placement slice of the board config
type Rules struct {
	Geo             grid.Geometry
	MinLength       int
	MaxLength       int
	SnakeMaxX       int
	LadderMaxX      int
	ExclusionRadius int
	Attempts        int
	TopRowSnakes    int
	Forbidden       mapset.Set[grid.Cell]
}

// NewRules extracts placement rules from cfg
func NewRules(cfg config.Config) Rules {
	forbidden := mapset.New[grid.Cell]()
	for _, c := range cfg.ForbiddenCells {
		forbidden.Put(grid.Cell(c))
	}
	return Rules{
		Geo:             grid.Geometry{Size: cfg.GridSize, CellSize: cfg.CellSize, Margin: cfg.Margin},
		MinLength:       cfg.ItemLength.Min,
		MaxLength:       cfg.ItemLength.Max,
		SnakeMaxX:       cfg.SnakeMaxXDistance,
		LadderMaxX:      cfg.LadderMaxXDistance,
		ExclusionRadius: cfg.ExclusionRadius,
		Attempts:        cfg.PlacementAttempts,
		TopRowSnakes:    cfg.TopRowSnakes,
		Forbidden:       forbidden,
	}
}

// MaxXDistance returns the column cap for kind
func (r Rules) MaxXDistance(kind Kind) int {
	if kind == KindLadder {
		return r.LadderMaxX
	}
	return r.SnakeMaxX
}

// State accumulates placements across sampling steps
// Commit never mutates the receiver, so earlier states stay valid
type State struct {
	used    mapset.Set[grid.Cell]
	snakes  []Span
	ladders []Span
}

// NewState returns an empty accumulator
func NewState() State {
	return State{used: mapset.New[grid.Cell]()}
}

// Used reports whether c is already an endpoint of any placed item
func (s State) Used(c grid.Cell) bool {
	return s.used.Has(c)
}

// UsedCount returns the number of occupied endpoint cells
func (s State) UsedCount() int {
	return s.used.Size()
}

// Items returns a copy of the placed spans of kind
func (s State) Items(kind Kind) []Span {
	if kind == KindLadder {
		return slices.Clone(s.ladders)
	}
	return slices.Clone(s.snakes)
}

func (s State) items(kind Kind) []Span {
	if kind == KindLadder {
		return s.ladders
	}
	return s.snakes
}

// Commit returns a new state with span added under kind and both endpoints marked used
func (s State) Commit(kind Kind, span Span) State {
	used := mapset.New[grid.Cell]()
	s.used.Each(func(c grid.Cell) { used.Put(c) })
	used.Put(span.Start)
	used.Put(span.End)

	next := State{
		used:    used,
		snakes:  slices.Clone(s.snakes),
		ladders: slices.Clone(s.ladders),
	}
	if kind == KindLadder {
		next.ladders = append(next.ladders, span)
	} else {
		next.snakes = append(next.snakes, span)
	}
	return next
}
