// SPDX-License-Identifier: MIT

package interval

// Classify returns the relation of a to b.
//
// The checks run in priority order Equals, Inside, Spans, Intersects and
// fall through to Disjoint, so exactly one relation is produced for any pair.
// For non-empty inputs the result matches the set-theoretic meaning of each
// relation. Empty intervals never overlap anything and always classify as
// Disjoint.
//
// Complexity: O(1).
func Classify(a, b Interval) Relation {
	aEnd, bEnd := a.End(), b.End()

	switch {
	case a.IsEmpty() || b.IsEmpty():
		return Disjoint
	case a.Start == b.Start && aEnd == bEnd:
		return Equals
	case a.Start >= b.Start && aEnd <= bEnd:
		return Inside
	case a.Start <= b.Start && aEnd >= bEnd:
		return Spans
	case a.Start < bEnd && aEnd > b.Start:
		return Intersects
	default:
		return Disjoint
	}
}

// Overlap reports whether a and b share at least one value.
func Overlap(a, b Interval) bool {
	return Classify(a, b).Overlaps()
}
