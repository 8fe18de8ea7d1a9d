// SPDX-License-Identifier: MIT

package interval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/almanac/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation checks the constructor rejects empty and overflowing ranges.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name          string
		start, length uint64
		err           error
	}{
		{"Valid", 10, 5, nil},
		{"Empty", 10, 0, interval.ErrEmptyInterval},
		{"Overflow", math.MaxUint64, 2, interval.ErrOverflow},
		{"UpToMax", math.MaxUint64 - 3, 3, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := interval.New(tc.start, tc.length)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, iv.Start)
			assert.Equal(t, tc.length, iv.Length)
		})
	}
}

// TestFromBounds verifies [start,end) construction and inverted bounds.
func TestFromBounds(t *testing.T) {
	iv, err := interval.FromBounds(79, 93)
	require.NoError(t, err)
	assert.Equal(t, interval.Interval{Start: 79, Length: 14}, iv)
	assert.Equal(t, uint64(93), iv.End())
	assert.Equal(t, uint64(92), iv.Last())

	_, err = interval.FromBounds(5, 5)
	assert.ErrorIs(t, err, interval.ErrEmptyInterval)
	_, err = interval.FromBounds(6, 5)
	assert.ErrorIs(t, err, interval.ErrEmptyInterval)
}

// TestContains checks membership at both bounds.
func TestContains(t *testing.T) {
	iv := interval.Interval{Start: 98, Length: 2}
	assert.False(t, iv.Contains(97))
	assert.True(t, iv.Contains(98))
	assert.True(t, iv.Contains(99))
	assert.False(t, iv.Contains(100), "end is exclusive")

	top := interval.Interval{Start: math.MaxUint64 - 1, Length: 1}
	assert.True(t, top.Contains(math.MaxUint64-1))
	assert.False(t, top.Contains(math.MaxUint64))
}

// TestCutting exercises Intersection, Prefix and Suffix together.
func TestCutting(t *testing.T) {
	iv := interval.Interval{Start: 0, Length: 100}
	rule := interval.Interval{Start: 40, Length: 20}

	assert.Equal(t, interval.Interval{Start: 0, Length: 40}, iv.Prefix(rule))
	assert.Equal(t, interval.Interval{Start: 40, Length: 20}, iv.Intersection(rule))
	assert.Equal(t, interval.Interval{Start: 60, Length: 40}, iv.Suffix(rule))

	// The three cuts always add up to the original length.
	for _, o := range []interval.Interval{{Start: 0, Length: 5}, {Start: 95, Length: 50}, {Start: 200, Length: 1}, {Start: 0, Length: 100}} {
		sum := iv.Prefix(o).Length + iv.Intersection(o).Length + iv.Suffix(o).Length
		assert.Equal(t, iv.Length, sum, "cut against %v", o)
	}

	assert.True(t, iv.Intersection(interval.Interval{Start: 100, Length: 5}).IsEmpty())
}

// TestMoveToAndString checks translation and formatting.
func TestMoveToAndString(t *testing.T) {
	iv := interval.Interval{Start: 55, Length: 13}
	moved := iv.MoveTo(57)
	assert.Equal(t, uint64(13), moved.Length)
	assert.Equal(t, "[57,70)", moved.String())
}

// TestNormalize verifies sorting, merging and dropping of empty intervals.
func TestNormalize(t *testing.T) {
	in := []interval.Interval{
		{Start: 60, Length: 20},
		{Start: 0, Length: 40},
		{Start: 7, Length: 0},
		{Start: 40, Length: 10},
		{Start: 45, Length: 10},
		{Start: 200, Length: 1},
	}
	got := interval.Normalize(in)
	assert.Equal(t, []interval.Interval{
		{Start: 0, Length: 55},
		{Start: 60, Length: 20},
		{Start: 200, Length: 1},
	}, got)
	assert.Equal(t, uint64(20), in[0].Length, "input must not be modified")
	assert.Empty(t, interval.Normalize(nil))
}

// TestTotalLength sums lengths.
func TestTotalLength(t *testing.T) {
	ivs := []interval.Interval{{Start: 240, Length: 20}, {Start: 280, Length: 20}, {Start: 60, Length: 20}, {Start: 0, Length: 40}}
	assert.Equal(t, uint64(100), interval.TotalLength(ivs))
	assert.Zero(t, interval.TotalLength(nil))
}

func TestShift(t *testing.T) {
	iv := interval.Interval{Start: 50, Length: 48}

	up, err := iv.Shift(2)
	require.NoError(t, err)
	assert.Equal(t, "[52,100)", up.String())

	down, err := iv.Shift(-50)
	require.NoError(t, err)
	assert.Equal(t, interval.Interval{Start: 0, Length: 48}, down)

	_, err = iv.Shift(-51)
	assert.ErrorIs(t, err, interval.ErrOverflow)

	_, err = iv.Shift(math.MinInt64)
	assert.ErrorIs(t, err, interval.ErrOverflow)

	top := interval.Interval{Start: math.MaxUint64 - 10, Length: 5}
	_, err = top.Shift(5)
	assert.NoError(t, err)
	_, err = top.Shift(6)
	assert.ErrorIs(t, err, interval.ErrOverflow)
}
