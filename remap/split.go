// SPDX-License-Identifier: MIT

package remap

import "github.com/katalvlaran/almanac/interval"

// Split is the result of cutting one interval against one rule.
//
// Before and After are untouched values left and right of the rule source;
// they still have to be tried against the other rules of the stage. Mapped is
// already translated. Any of the three may be empty.
type Split struct {
	Relation interval.Relation
	Before   interval.Interval
	Mapped   interval.Interval
	After    interval.Interval
}

// Matched reports whether the rule translated anything.
func (s Split) Matched() bool {
	return s.Relation.Overlaps()
}

// Pieces returns the non-empty parts in order Before, Mapped, After.
func (s Split) Pieces() []interval.Interval {
	out := make([]interval.Interval, 0, 3)
	for _, iv := range [...]interval.Interval{s.Before, s.Mapped, s.After} {
		if !iv.IsEmpty() {
			out = append(out, iv)
		}
	}
	return out
}

// Length returns the total length of all three parts.
func (s Split) Length() uint64 {
	return s.Before.Length + s.Mapped.Length + s.After.Length
}
