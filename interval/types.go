// SPDX-License-Identifier: MIT

package interval

import "errors"

// Sentinel errors for interval construction.
var (
	// ErrEmptyInterval indicates a zero-length interval was requested.
	ErrEmptyInterval = errors.New("interval: length must be positive")
	// ErrOverflow indicates Start+Length exceeds the uint64 range.
	ErrOverflow = errors.New("interval: end overflows uint64")
)

// Interval is the half-open range [Start, Start+Length).
//
// The zero value is the empty interval. Intervals built with New are never
// empty and never overflow; literal values are trusted as-is.
type Interval struct {
	Start  uint64
	Length uint64
}

// Relation describes how interval a sits relative to interval b.
type Relation int

const (
	// Disjoint: a and b share no value.
	Disjoint Relation = iota
	// Equals: a and b cover exactly the same values.
	Equals
	// Inside: every value of a is in b, and a != b.
	Inside
	// Spans: every value of b is in a, and a != b.
	Spans
	// Intersects: a and b share some values but neither contains the other.
	Intersects
)

var relationNames = [...]string{
	Disjoint:   "Disjoint",
	Equals:     "Equals",
	Inside:     "Inside",
	Spans:      "Spans",
	Intersects: "Intersects",
}

// String returns the relation name.
func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "Relation(?)"
	}
	return relationNames[r]
}

// Overlaps reports whether the relation implies at least one shared value.
func (r Relation) Overlaps() bool {
	return r != Disjoint
}
