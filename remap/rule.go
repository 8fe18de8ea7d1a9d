// SPDX-License-Identifier: MIT

package remap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/almanac/interval"
)

// Rule translates [SourceStart, SourceStart+Length) onto
// [DestStart, DestStart+Length).
type Rule struct {
	SourceStart uint64
	DestStart   uint64
	Length      uint64
}

// NewRule validates and returns a rule. Arguments follow the almanac line
// order: destination first, then source, then length.
func NewRule(destStart, sourceStart, length uint64) (Rule, error) {
	r := Rule{SourceStart: sourceStart, DestStart: destStart, Length: length}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Validate reports ErrInvalidRule for a zero length or an end that would
// overflow on either side.
func (r Rule) Validate() error {
	switch {
	case r.Length == 0:
		return fmt.Errorf("%w: %v has zero length", ErrInvalidRule, r)
	case r.SourceStart > math.MaxUint64-r.Length:
		return fmt.Errorf("%w: %v source end overflows", ErrInvalidRule, r)
	case r.DestStart > math.MaxUint64-r.Length:
		return fmt.Errorf("%w: %v destination end overflows", ErrInvalidRule, r)
	}
	return nil
}

// Source returns the interval of values the rule translates.
func (r Rule) Source() interval.Interval {
	return interval.Interval{Start: r.SourceStart, Length: r.Length}
}

// Dest returns the image of Source.
func (r Rule) Dest() interval.Interval {
	return interval.Interval{Start: r.DestStart, Length: r.Length}
}

// ApplyToValue translates v when it lies in Source and returns it unchanged
// otherwise.
func (r Rule) ApplyToValue(v uint64) uint64 {
	if !r.Source().Contains(v) {
		return v
	}
	return r.DestStart + (v - r.SourceStart)
}

// Split cuts iv against the rule source.
//
//	Disjoint         iv is returned untouched as Before or After.
//	Equals, Inside   iv is translated whole.
//	Intersects       the overlap is translated; the part before or after
//	                 the source is left untouched.
//	Spans            the whole destination is produced; Before and After
//	                 hold what lies outside the source (either may be empty).
//
// Before, Mapped and After always have lengths summing to iv.Length.
func (r Rule) Split(iv interval.Interval) Split {
	src := r.Source()
	sp := Split{Relation: interval.Classify(iv, src)}

	switch sp.Relation {
	case interval.Disjoint:
		if iv.Start < src.Start {
			sp.Before = iv
		} else {
			sp.After = iv
		}
	case interval.Equals, interval.Inside:
		sp.Mapped = iv.MoveTo(r.ApplyToValue(iv.Start))
	case interval.Intersects, interval.Spans:
		overlap := iv.Intersection(src)
		sp.Before = iv.Prefix(src)
		sp.Mapped = overlap.MoveTo(r.ApplyToValue(overlap.Start))
		sp.After = iv.Suffix(src)
	}
	return sp
}

// ApplyToInterval returns the non-empty pieces of Split(iv) in positional
// order: before, mapped, after.
func (r Rule) ApplyToInterval(iv interval.Interval) []interval.Interval {
	return r.Split(iv).Pieces()
}

// String renders the rule as "[src,end) -> [dst,end)".
func (r Rule) String() string {
	return fmt.Sprintf("%v -> %v", r.Source(), r.Dest())
}
