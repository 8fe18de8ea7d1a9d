// SPDX-License-Identifier: MIT

package remap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/remap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// span is shorthand for [s, e).
func span(s, e uint64) interval.Interval {
	return interval.Interval{Start: s, Length: e - s}
}

// TestNewRule checks argument order and validation.
func TestNewRule(t *testing.T) {
	r, err := remap.NewRule(50, 98, 2)
	require.NoError(t, err)
	assert.Equal(t, remap.Rule{SourceStart: 98, DestStart: 50, Length: 2}, r)
	assert.Equal(t, span(98, 100), r.Source())
	assert.Equal(t, span(50, 52), r.Dest())
	assert.Equal(t, "[98,100) -> [50,52)", r.String())

	cases := []struct {
		name              string
		dest, src, length uint64
	}{
		{"ZeroLength", 1, 2, 0},
		{"SourceOverflow", 0, math.MaxUint64, 2},
		{"DestOverflow", math.MaxUint64 - 1, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := remap.NewRule(tc.dest, tc.src, tc.length)
			assert.ErrorIs(t, err, remap.ErrInvalidRule)
		})
	}
}

// TestApplyToValue covers both bounds and values outside the source.
func TestApplyToValue(t *testing.T) {
	r := remap.Rule{SourceStart: 98, DestStart: 50, Length: 2}
	assert.Equal(t, uint64(50), r.ApplyToValue(98))
	assert.Equal(t, uint64(51), r.ApplyToValue(99))
	assert.Equal(t, uint64(97), r.ApplyToValue(97), "identity below the source")
	assert.Equal(t, uint64(100), r.ApplyToValue(100), "identity at the exclusive end")
}

// TestSplit_Cases walks every relation against source [40,60) -> [240,260).
func TestSplit_Cases(t *testing.T) {
	r := remap.Rule{SourceStart: 40, DestStart: 240, Length: 20}
	empty := interval.Interval{}

	cases := []struct {
		name                  string
		in                    interval.Interval
		rel                   interval.Relation
		before, mapped, after interval.Interval
	}{
		{"DisjointBefore", span(0, 10), interval.Disjoint, span(0, 10), empty, empty},
		{"DisjointTouching", span(60, 80), interval.Disjoint, empty, empty, span(60, 80)},
		{"Equals", span(40, 60), interval.Equals, empty, span(240, 260), empty},
		{"Inside", span(45, 50), interval.Inside, empty, span(245, 250), empty},
		{"IntersectsFromLeft", span(30, 50), interval.Intersects, span(30, 40), span(240, 250), empty},
		{"IntersectsToRight", span(50, 70), interval.Intersects, empty, span(250, 260), span(60, 70)},
		{"Spans", span(0, 100), interval.Spans, span(0, 40), span(240, 260), span(60, 100)},
		{"SpansSharedStart", span(40, 70), interval.Spans, empty, span(240, 260), span(60, 70)},
		{"SpansSharedEnd", span(35, 60), interval.Spans, span(35, 40), span(240, 260), empty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sp := r.Split(tc.in)
			assert.Equal(t, tc.rel, sp.Relation)
			assert.Equal(t, tc.before, sp.Before, "before")
			assert.Equal(t, tc.mapped, sp.Mapped, "mapped")
			assert.Equal(t, tc.after, sp.After, "after")
			assert.Equal(t, tc.in.Length, sp.Length(), "conservation")
			assert.Equal(t, tc.rel != interval.Disjoint, sp.Matched())
		})
	}
}

// TestApplyToInterval_Pieces checks piece order and that empties are dropped.
func TestApplyToInterval_Pieces(t *testing.T) {
	r := remap.Rule{SourceStart: 40, DestStart: 240, Length: 20}

	assert.Equal(t, []interval.Interval{span(0, 40), span(240, 260), span(60, 100)}, r.ApplyToInterval(span(0, 100)))
	assert.Equal(t, []interval.Interval{span(240, 260), span(60, 70)}, r.ApplyToInterval(span(40, 70)))
	assert.Equal(t, []interval.Interval{span(70, 90)}, r.ApplyToInterval(span(70, 90)), "disjoint input is returned as-is")
}

// TestApplyToInterval_Properties checks conservation, identity outside the
// domain, full containment and agreement with per-value mapping for every
// interval of a small domain.
func TestApplyToInterval_Properties(t *testing.T) {
	// Destination overlaps the source on purpose.
	r := remap.Rule{SourceStart: 40, DestStart: 50, Length: 20}

	for s := uint64(20); s < 80; s++ {
		for e := s + 1; e <= 80; e++ {
			in := span(s, e)
			pieces := r.ApplyToInterval(in)

			require.Equal(t, in.Length, interval.TotalLength(pieces), "conservation for %v", in)

			switch interval.Classify(in, r.Source()) {
			case interval.Disjoint:
				require.Equal(t, []interval.Interval{in}, pieces, "identity for %v", in)
			case interval.Equals, interval.Inside:
				require.Len(t, pieces, 1)
				require.Equal(t, r.ApplyToValue(in.Start), pieces[0].Start, "containment for %v", in)
			}

			var want []interval.Interval
			for v := in.Start; v < in.End(); v++ {
				want = append(want, interval.Interval{Start: r.ApplyToValue(v), Length: 1})
			}
			require.Equal(t, interval.Normalize(want), interval.Normalize(pieces), "values of %v", in)
		}
	}
}

// TestSplit_SingleValue checks length-1 intervals agree with ApplyToValue.
func TestSplit_SingleValue(t *testing.T) {
	r := remap.Rule{SourceStart: 98, DestStart: 50, Length: 2}
	for v := uint64(95); v < 103; v++ {
		pieces := r.ApplyToInterval(interval.Interval{Start: v, Length: 1})
		require.Len(t, pieces, 1)
		assert.Equal(t, r.ApplyToValue(v), pieces[0].Start, "value %d", v)
	}
}
