// SPDX-License-Identifier: MIT

// Package interval provides half-open ranges of unsigned integers and the
// small algebra needed to split one range against another.
//
// What:
//
//   - Interval is an immutable {Start, Length} value; End() is exclusive.
//   - Classify places two intervals into exactly one of five relations:
//     Disjoint, Equals, Inside, Spans or Intersects.
//   - Intersection, Prefix and Suffix cut an interval into the part that
//     overlaps another range and the parts left of and right of it.
//
// Why:
//
//	Range remapping (see package remap) splits an input range whenever it
//	only partially overlaps a rule. Getting those splits right depends on a
//	closed, exhaustive classification rather than nested ad hoc checks.
//
// Relations are evaluated in priority order, so Equals wins over Inside and
// Spans (two equal intervals are trivially inside one another):
//
//	Equals      a.Start == b.Start && a.End == b.End
//	Inside      a.Start >= b.Start && a.End <= b.End
//	Spans       a.Start <= b.Start && a.End >= b.End
//	Intersects  a.Start <  b.End   && a.End >  b.Start
//	Disjoint    otherwise
//
// Complexity: every operation is O(1), except Normalize and TotalLength
// which are O(n log n) and O(n).
//
// Errors:
//
//   - ErrEmptyInterval: constructor called with a zero length.
//   - ErrOverflow: Start+Length does not fit in a uint64.
package interval
