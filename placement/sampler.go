package placement

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/snakeboard/grid"
	"github.com/lixenwraith/snakeboard/logging"
)

// Stats counts sampling effort; MaxAttemptsPerSlot never exceeds Rules.Attempts
type Stats struct {
	Attempts           int
	MaxAttemptsPerSlot int
	Requested          int
	Placed             int
	Exhausted          int
}

// Add folds o into s
func (s Stats) Add(o Stats) Stats {
	s.Attempts += o.Attempts
	s.MaxAttemptsPerSlot = max(s.MaxAttemptsPerSlot, o.MaxAttemptsPerSlot)
	s.Requested += o.Requested
	s.Placed += o.Placed
	s.Exhausted += o.Exhausted
	return s
}

// cellRange is an inclusive draw interval
type cellRange struct {
	lo, hi int
}

func (r cellRange) draw(rng *rand.Rand) grid.Cell {
	if r.hi <= r.lo {
		return grid.Cell(r.lo)
	}
	return grid.Cell(r.lo + rng.Intn(r.hi-r.lo+1))
}

// Sampler draws endpoint pairs by bounded rejection sampling
type Sampler struct {
	rules     Rules
	validator Validator
	rng       *rand.Rand
}

// NewSampler creates a sampler over rules using rng for every draw
func NewSampler(rules Rules, rng *rand.Rand) *Sampler {
	return &Sampler{
		rules:     rules,
		validator: NewValidator(rules),
		rng:       rng,
	}
}

// Rules returns the rules the sampler enforces
func (s *Sampler) Rules() Rules {
	return s.rules
}

// ranges returns the start and end intervals of the generic fill for kind
// On a 10x10 board: snakes 20..99 onto 2..80, ladders 2..80 onto 20..90
func (s *Sampler) ranges(kind Kind) (start, end cellRange) {
	n := s.rules.Geo.Size
	total := n * n
	if kind == KindLadder {
		return cellRange{2, total - 2*n}, cellRange{2 * n, total - n}
	}
	return cellRange{2 * n, total - 1}, cellRange{2, total - 2*n}
}

// directed reports whether span points the way kind must travel
func directed(kind Kind, sp Span) bool {
	if kind == KindLadder {
		return sp.Start < sp.End
	}
	return sp.Start > sp.End
}

// selfSpanOK rejects items whose own endpoints sit inside the exclusion radius
func (s *Sampler) selfSpanOK(sp Span) bool {
	return s.rules.Geo.Chebyshev(sp.Start, sp.End) >= s.rules.ExclusionRadius
}

// slot runs up to Rules.Attempts draws and commits the first candidate
// passing pre and the validator
func (s *Sampler) slot(st State, kind Kind, start, end cellRange, pre func(Span) bool) (State, Span, int, bool) {
	geo := s.rules.Geo
	for attempt := 1; attempt <= s.rules.Attempts; attempt++ {
		sp := Span{Start: start.draw(s.rng), End: end.draw(s.rng)}
		if !geo.Valid(sp.Start) || !geo.Valid(sp.End) || !directed(kind, sp) {
			continue
		}
		if pre != nil && !pre(sp) {
			continue
		}
		if !s.validator.Acceptable(sp, kind, st.items(kind), st.used) {
			continue
		}
		return st.Commit(kind, sp), sp, attempt, true
	}
	return st, Span{}, s.rules.Attempts, false
}

// Fill places up to count items of kind spread across quadrants
// Targets cycle through the four quadrants and are shuffled; a target whose
// attempts run out is skipped
func (s *Sampler) Fill(st State, kind Kind, count int) (State, []Span, Stats) {
	stats := Stats{Requested: max(count, 0)}
	if count <= 0 {
		return st, nil, stats
	}

	targets := make([]grid.Quadrant, 0, count)
	for len(targets) < count {
		for _, q := range grid.Quadrants {
			if len(targets) == count {
				break
			}
			targets = append(targets, q)
		}
	}
	s.rng.Shuffle(len(targets), func(i, j int) { targets[i], targets[j] = targets[j], targets[i] })

	startR, endR := s.ranges(kind)
	geo := s.rules.Geo
	placed := make([]Span, 0, count)
	for _, q := range targets {
		pre := func(sp Span) bool {
			if geo.ColumnDistance(sp.Start, sp.End) > s.rules.MaxXDistance(kind) {
				return false
			}
			if !s.selfSpanOK(sp) {
				return false
			}
			if n := sp.Length(); n < s.rules.MinLength || n > s.rules.MaxLength {
				return false
			}
			return geo.QuadrantOf(sp.Start) == q
		}

		var (
			sp       Span
			attempts int
			ok       bool
		)
		st, sp, attempts, ok = s.slot(st, kind, startR, endR, pre)
		stats.Attempts += attempts
		stats.MaxAttemptsPerSlot = max(stats.MaxAttemptsPerSlot, attempts)
		if !ok {
			stats.Exhausted++
			logging.Log.WithFields(logrus.Fields{
				"kind":     kind.String(),
				"quadrant": q.String(),
				"attempts": attempts,
			}).Debug("placement slot exhausted")
			continue
		}
		placed = append(placed, sp)
	}
	stats.Placed = len(placed)
	return st, placed, stats
}

// SeedTop places up to count snakes starting in the top row
// All seeds share one attempt budget
func (s *Sampler) SeedTop(st State, count int) (State, []Span, Stats) {
	stats := Stats{Requested: max(count, 0)}
	if count <= 0 {
		return st, nil, stats
	}

	n := s.rules.Geo.Size
	lo, hi := s.rules.Geo.RowCells(n - 1)
	startR := cellRange{int(lo), int(hi)}
	endR := cellRange{2, n*n - 2*n}

	placed := make([]Span, 0, count)
	for attempt := 1; attempt <= s.rules.Attempts && len(placed) < count; attempt++ {
		stats.Attempts++
		sp := Span{Start: startR.draw(s.rng), End: endR.draw(s.rng)}
		if !directed(KindSnake, sp) || !s.selfSpanOK(sp) {
			continue
		}
		if !s.validator.Acceptable(sp, KindSnake, st.snakes, st.used) {
			continue
		}
		st = st.Commit(KindSnake, sp)
		placed = append(placed, sp)
	}
	stats.MaxAttemptsPerSlot = stats.Attempts
	stats.Placed = len(placed)
	stats.Exhausted = count - len(placed)
	if stats.Exhausted > 0 {
		logging.Log.WithFields(logrus.Fields{
			"requested": count,
			"placed":    len(placed),
		}).Debug("top row seeding exhausted")
	}
	return st, placed, stats
}

// SeedBottom places one ladder rising out of the bottom row
func (s *Sampler) SeedBottom(st State) (State, []Span, Stats) {
	n := s.rules.Geo.Size
	_, rowEnd := s.rules.Geo.RowCells(0)
	startR := cellRange{4, int(rowEnd)}
	endR := cellRange{2 * n, 4 * n}

	stats := Stats{Requested: 1}
	st, sp, attempts, ok := s.slot(st, KindLadder, startR, endR, nil)
	stats.Attempts = attempts
	stats.MaxAttemptsPerSlot = attempts
	if !ok {
		stats.Exhausted = 1
		logging.Log.WithField("attempts", attempts).Debug("bottom ladder seeding exhausted")
		return st, nil, stats
	}
	stats.Placed = 1
	return st, []Span{sp}, stats
}

// Positions runs the full sampling sequence: top-row snakes, generic snakes,
// bottom ladder, generic ladders
// Slots left unfilled by a seed step roll over into the generic fill
func (s *Sampler) Positions(nSnakes, nLadders int) (snakes, ladders []Span, stats Stats) {
	st := NewState()

	st, seeded, ss := s.SeedTop(st, min(s.rules.TopRowSnakes, max(nSnakes, 0)))
	st, filled, fs := s.Fill(st, KindSnake, nSnakes-len(seeded))
	snakes = append(seeded, filled...)
	stats = stats.Add(ss).Add(fs)

	if nLadders > 0 {
		var bottom, rest []Span
		var bs, ls Stats
		st, bottom, bs = s.SeedBottom(st)
		_, rest, ls = s.Fill(st, KindLadder, nLadders-len(bottom))
		ladders = append(bottom, rest...)
		stats = stats.Add(bs).Add(ls)
	}

	stats.Requested = max(nSnakes, 0) + max(nLadders, 0)
	stats.Placed = len(snakes) + len(ladders)
	stats.Exhausted = stats.Requested - stats.Placed
	return snakes, ladders, stats
}
