// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"
	"sort"
)

// New returns [start, start+length) after validating it.
//
// Errors:
//   - ErrEmptyInterval if length == 0.
//   - ErrOverflow if start+length > math.MaxUint64.
func New(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, fmt.Errorf("New(%d, %d): %w", start, length, ErrEmptyInterval)
	}
	if start > math.MaxUint64-length {
		return Interval{}, fmt.Errorf("New(%d, %d): %w", start, length, ErrOverflow)
	}
	return Interval{Start: start, Length: length}, nil
}

// FromBounds returns [start, end). An empty or inverted range yields
// ErrEmptyInterval.
func FromBounds(start, end uint64) (Interval, error) {
	if end <= start {
		return Interval{}, fmt.Errorf("FromBounds(%d, %d): %w", start, end, ErrEmptyInterval)
	}
	return Interval{Start: start, Length: end - start}, nil
}

// span builds [start, end) without validation; an inverted range is empty.
func span(start, end uint64) Interval {
	if end <= start {
		return Interval{}
	}
	return Interval{Start: start, Length: end - start}
}

// End returns the exclusive upper bound.
func (i Interval) End() uint64 {
	return i.Start + i.Length
}

// Last returns the largest value in the interval. It is meaningless for an
// empty interval.
func (i Interval) Last() uint64 {
	return i.End() - 1
}

// IsEmpty reports whether the interval covers no value.
func (i Interval) IsEmpty() bool {
	return i.Length == 0
}

// Contains reports whether v lies in [Start, End).
func (i Interval) Contains(v uint64) bool {
	return v >= i.Start && v-i.Start < i.Length
}

// Intersection returns the values shared by i and o, or the empty interval.
func (i Interval) Intersection(o Interval) Interval {
	return span(max(i.Start, o.Start), min(i.End(), o.End()))
}

// Prefix returns the part of i strictly before o.Start.
func (i Interval) Prefix(o Interval) Interval {
	return span(i.Start, min(i.End(), o.Start))
}

// Suffix returns the part of i at or after o.End().
func (i Interval) Suffix(o Interval) Interval {
	return span(max(i.Start, o.End()), i.End())
}

// MoveTo returns an interval of the same length starting at start.
func (i Interval) MoveTo(start uint64) Interval {
	return Interval{Start: start, Length: i.Length}
}

// Shift moves the interval by offset, keeping its length. It fails with
// ErrOverflow when the new start would drop below zero or the new end would
// exceed math.MaxUint64.
func (i Interval) Shift(offset int64) (Interval, error) {
	if offset < 0 {
		d := uint64(-(offset + 1)) + 1 // safe for math.MinInt64
		if d > i.Start {
			return Interval{}, fmt.Errorf("Shift(%v, %d): %w", i, offset, ErrOverflow)
		}
		return i.MoveTo(i.Start - d), nil
	}
	d := uint64(offset)
	if i.Start > math.MaxUint64-i.Length-d || i.Length > math.MaxUint64-d {
		return Interval{}, fmt.Errorf("Shift(%v, %d): %w", i, offset, ErrOverflow)
	}
	return i.MoveTo(i.Start + d), nil
}

// String renders the interval as "[start,end)".
func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.End())
}

// TotalLength sums the lengths of all intervals.
func TotalLength(ivs []Interval) uint64 {
	var total uint64
	for _, iv := range ivs {
		total += iv.Length
	}
	return total
}

// Normalize returns a new slice with empty intervals dropped, the rest
// sorted by Start, and touching or overlapping intervals merged.
// Two interval sets cover the same values iff their normalized forms are equal.
func Normalize(ivs []Interval) []Interval {
	out := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			out = append(out, iv)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Start < out[b].Start })

	merged := out[:0]
	for _, iv := range out {
		n := len(merged)
		if n > 0 && iv.Start <= merged[n-1].End() {
			if iv.End() > merged[n-1].End() {
				merged[n-1] = span(merged[n-1].Start, iv.End())
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
