// SPDX-License-Identifier: MIT

package remap

import (
	"context"
	"fmt"

	"github.com/katalvlaran/almanac/interval"
)

// MinStart returns the smallest Start among non-empty intervals.
// ErrNoIntervals is returned when there is none.
func MinStart(ivs []interval.Interval) (uint64, error) {
	var (
		best  uint64
		found bool
	)
	for _, iv := range ivs {
		if iv.IsEmpty() {
			continue
		}
		if !found || iv.Start < best {
			best, found = iv.Start, true
		}
	}
	if !found {
		return 0, ErrNoIntervals
	}
	return best, nil
}

// Lowest pushes seed ranges through p and returns the smallest resulting value.
//
// Errors:
//   - ErrEmptySeedSet if seeds holds no non-empty interval.
//   - ErrNoIntervals if the pipeline produced nothing.
func Lowest(p *Pipeline, seeds []interval.Interval) (uint64, error) {
	if interval.TotalLength(seeds) == 0 {
		return 0, fmt.Errorf("Lowest: %w", ErrEmptySeedSet)
	}
	v, err := MinStart(p.Apply(seeds))
	if err != nil {
		return 0, fmt.Errorf("Lowest: %w", err)
	}
	return v, nil
}

// LowestValue maps every seed value individually and returns the minimum.
func LowestValue(p *Pipeline, values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("LowestValue: %w", ErrEmptySeedSet)
	}
	best := p.ApplyValue(values[0])
	for _, v := range values[1:] {
		best = min(best, p.ApplyValue(v))
	}
	return best, nil
}

// LowestConcurrent is Lowest on top of ApplyConcurrent.
func LowestConcurrent(ctx context.Context, p *Pipeline, seeds []interval.Interval, workers int) (uint64, error) {
	if interval.TotalLength(seeds) == 0 {
		return 0, fmt.Errorf("LowestConcurrent: %w", ErrEmptySeedSet)
	}
	out, err := p.ApplyConcurrent(ctx, seeds, workers)
	if err != nil {
		return 0, fmt.Errorf("LowestConcurrent: %w", err)
	}
	v, err := MinStart(out)
	if err != nil {
		return 0, fmt.Errorf("LowestConcurrent: %w", err)
	}
	return v, nil
}
