package placement

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/snakeboard/grid"
)

// Rejection names the first rule a candidate span failed
type Rejection int

const (
	Accepted Rejection = iota
	RejectOffBoard
	RejectDirection
	RejectColumn
	RejectSelfSpan
	RejectLength
	RejectQuadrant
	RejectForbidden
	RejectOccupied
	RejectCrowded
)

var rejectionNames = [...]string{
	Accepted:        "accepted",
	RejectOffBoard:  "off-board",
	RejectDirection: "direction",
	RejectColumn:    "column",
	RejectSelfSpan:  "self-span",
	RejectLength:    "length",
	RejectQuadrant:  "quadrant",
	RejectForbidden: "forbidden",
	RejectOccupied:  "occupied",
	RejectCrowded:   "crowded",
}

func (r Rejection) String() string {
	if int(r) < len(rejectionNames) {
		return rejectionNames[r]
	}
	return "unknown"
}

// Validator applies the endpoint rules shared by every placement path
type Validator struct {
	rules Rules
}

// NewValidator binds a validator to rules
func NewValidator(rules Rules) Validator {
	return Validator{rules: rules}
}

// Reason runs length, exclusivity, column cap and exclusion radius, in that order
// same holds already-placed spans of the candidate's kind, used every occupied endpoint
func (v Validator) Reason(s Span, kind Kind, same []Span, used mapset.Set[grid.Cell]) Rejection {
	geo := v.rules.Geo
	if !geo.Valid(s.Start) || !geo.Valid(s.End) {
		return RejectOffBoard
	}

	if n := s.Length(); n < v.rules.MinLength || n > v.rules.MaxLength {
		return RejectLength
	}

	if v.rules.Forbidden.Has(s.Start) || v.rules.Forbidden.Has(s.End) {
		return RejectForbidden
	}
	if used.Has(s.Start) || used.Has(s.End) {
		return RejectOccupied
	}

	if geo.ColumnDistance(s.Start, s.End) > v.rules.MaxXDistance(kind) {
		return RejectColumn
	}

	if v.tooClose(s, same) {
		return RejectCrowded
	}
	return Accepted
}

// Acceptable reports whether s passes every rule
func (v Validator) Acceptable(s Span, kind Kind, same []Span, used mapset.Set[grid.Cell]) bool {
	return v.Reason(s, kind, same, used) == Accepted
}

// tooClose compares all four endpoint pairings against every existing span
func (v Validator) tooClose(s Span, same []Span) bool {
	geo := v.rules.Geo
	r := v.rules.ExclusionRadius
	for _, e := range same {
		if geo.Chebyshev(s.Start, e.Start) < r ||
			geo.Chebyshev(s.Start, e.End) < r ||
			geo.Chebyshev(s.End, e.Start) < r ||
			geo.Chebyshev(s.End, e.End) < r {
			return true
		}
	}
	return false
}
