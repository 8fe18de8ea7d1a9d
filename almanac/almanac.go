// SPDX-License-Identifier: MIT

package almanac

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/remap"
)

// SeedMode selects how seed numbers are read.
type SeedMode int

const (
	// SeedRanges reads seeds as (start, length) pairs.
	SeedRanges SeedMode = iota
	// SeedValues reads every seed number as a single value.
	SeedValues
)

// String returns the flag spelling of the mode.
func (m SeedMode) String() string {
	switch m {
	case SeedRanges:
		return "ranges"
	case SeedValues:
		return "values"
	default:
		return "SeedMode(?)"
	}
}

// ParseSeedMode is the inverse of SeedMode.String.
func ParseSeedMode(s string) (SeedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ranges", "range":
		return SeedRanges, nil
	case "values", "value":
		return SeedValues, nil
	}
	return 0, fmt.Errorf("unknown seed mode %q", s)
}

// Map is one parsed block.
type Map struct {
	Name  string // e.g. "seed-to-soil"
	From  string // "seed"; empty when Name has no "-to-"
	To    string // "soil"
	Line  int    // header line
	Rules []remap.Rule
}

// Almanac is a parsed input.
type Almanac struct {
	Seeds     []uint64
	SeedsLine int
	Maps      []Map
}

// SeedValues returns one length-1 interval per seed number.
func (a *Almanac) SeedValues() []interval.Interval {
	out := make([]interval.Interval, len(a.Seeds))
	for i, v := range a.Seeds {
		out[i] = interval.Interval{Start: v, Length: 1}
	}
	return out
}

// SeedRanges reads the seed numbers as (start, length) pairs.
//
// Errors: ErrOddSeedCount, interval.ErrEmptyInterval (zero length),
// interval.ErrOverflow; all wrapped in *LineError for the seeds line.
func (a *Almanac) SeedRanges() ([]interval.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, &LineError{Line: a.SeedsLine, Text: "seeds", Err: fmt.Errorf("%w: got %d", ErrOddSeedCount, len(a.Seeds))}
	}
	out := make([]interval.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		iv, err := interval.New(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, &LineError{Line: a.SeedsLine, Text: "seeds", Err: fmt.Errorf("pair %d: %w", i/2, err)}
		}
		out = append(out, iv)
	}
	return out, nil
}

// SeedIntervals returns the seed intervals for mode.
func (a *Almanac) SeedIntervals(mode SeedMode) ([]interval.Interval, error) {
	if mode == SeedValues {
		return a.SeedValues(), nil
	}
	return a.SeedRanges()
}

// Pipeline checks that the maps chain and builds one stage per map.
func (a *Almanac) Pipeline(opts ...remap.StageOption) (*remap.Pipeline, error) {
	stages := make([]*remap.Stage, 0, len(a.Maps))
	for i, m := range a.Maps {
		if i > 0 {
			prev := a.Maps[i-1]
			if prev.To != "" && m.From != "" && prev.To != m.From {
				return nil, &LineError{Line: m.Line, Text: m.Name, Err: fmt.Errorf("%w: %q is followed by %q", ErrBrokenChain, prev.Name, m.Name)}
			}
		}
		st, err := remap.NewStage(m.Name, m.Rules, opts...)
		if err != nil {
			return nil, &LineError{Line: m.Line, Text: m.Name, Err: err}
		}
		stages = append(stages, st)
	}
	return remap.NewPipeline(stages...)
}

// Lowest builds the pipeline and returns the lowest final value for mode.
func (a *Almanac) Lowest(mode SeedMode, opts ...remap.StageOption) (uint64, error) {
	p, err := a.Pipeline(opts...)
	if err != nil {
		return 0, err
	}
	if mode == SeedValues {
		return remap.LowestValue(p, a.Seeds)
	}
	seeds, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return remap.Lowest(p, seeds)
}
