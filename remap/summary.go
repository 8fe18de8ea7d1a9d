// SPDX-License-Identifier: MIT

package remap

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/almanac/interval"
)

// Summary describes how fragmented an interval set is.
type Summary struct {
	Count    int     // non-empty intervals
	Total    uint64  // sum of lengths
	MinStart uint64  // smallest Start
	MaxEnd   uint64  // largest exclusive End
	Mean     float64 // mean fragment length
	StdDev   float64 // sample standard deviation of fragment lengths; 0 when Count < 2
}

// Summarize computes a Summary over the non-empty intervals of ivs.
func Summarize(ivs []interval.Interval) Summary {
	var sum Summary
	lengths := make([]float64, 0, len(ivs))
	for _, iv := range ivs {
		if iv.IsEmpty() {
			continue
		}
		if sum.Count == 0 || iv.Start < sum.MinStart {
			sum.MinStart = iv.Start
		}
		sum.MaxEnd = max(sum.MaxEnd, iv.End())
		sum.Count++
		sum.Total += iv.Length
		lengths = append(lengths, float64(iv.Length))
	}
	if sum.Count == 0 {
		return sum
	}
	sum.Mean = stat.Mean(lengths, nil)
	if sum.Count > 1 {
		sum.StdDev = stat.StdDev(lengths, nil)
	}
	return sum
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("fragments=%d total=%d span=[%d,%d) mean=%.2f stddev=%.2f",
		s.Count, s.Total, s.MinStart, s.MaxEnd, s.Mean, s.StdDev)
}
