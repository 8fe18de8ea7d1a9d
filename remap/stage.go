// SPDX-License-Identifier: MIT

package remap

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/almanac/interval"
)

// Stage is one immutable step of a Pipeline.
type Stage struct {
	name   string
	rules  []Rule // listed order
	scan   []Rule // order used by match; sorted by SourceStart when sorted is set
	sorted bool

	// overlap holds the listed indices of the first pair of rules found to
	// share source values, or {-1, -1}.
	overlap [2]int
}

// NewStage validates rules and builds a stage. The rules slice is copied.
//
// Errors:
//   - ErrInvalidRule if any rule fails Validate.
//   - ErrAmbiguousOverlap if two sources overlap and the policy is OverlapReject.
func NewStage(name string, rules []Rule, opts ...StageOption) (*Stage, error) {
	cfg := newStageConfig(opts...)

	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("NewStage(%q): rule %d: %w", name, i, err)
		}
	}

	s := &Stage{
		name:    name,
		rules:   append([]Rule(nil), rules...),
		overlap: findOverlap(rules),
	}
	if s.overlap[0] >= 0 && cfg.overlap == OverlapReject {
		return nil, fmt.Errorf("NewStage(%q): rules %d (%v) and %d (%v): %w",
			name, s.overlap[0], rules[s.overlap[0]], s.overlap[1], rules[s.overlap[1]], ErrAmbiguousOverlap)
	}

	s.scan = s.rules
	if cfg.sortedScan && s.overlap[0] < 0 {
		s.scan = append([]Rule(nil), s.rules...)
		sort.Slice(s.scan, func(a, b int) bool { return s.scan[a].SourceStart < s.scan[b].SourceStart })
		s.sorted = true
	}
	return s, nil
}

// findOverlap returns the listed indices of two rules with overlapping
// sources, or {-1, -1}. After sorting by start, any overlap shows up between
// neighbours.
func findOverlap(rules []Rule) [2]int {
	order := make([]int, len(rules))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rules[order[a]].SourceStart < rules[order[b]].SourceStart
	})
	for k := 1; k < len(order); k++ {
		prev, cur := order[k-1], order[k]
		if interval.Overlap(rules[prev].Source(), rules[cur].Source()) {
			return [2]int{min(prev, cur), max(prev, cur)}
		}
	}
	return [2]int{-1, -1}
}

// Name returns the stage label, e.g. "seed-to-soil".
func (s *Stage) Name() string { return s.name }

// Len returns the number of rules.
func (s *Stage) Len() int { return len(s.rules) }

// Rules returns a copy of the rules in listed order.
func (s *Stage) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Overlap returns the listed indices of two rules whose sources overlap.
// ok is false when all sources are pairwise disjoint.
func (s *Stage) Overlap() (i, j int, ok bool) {
	return s.overlap[0], s.overlap[1], s.overlap[0] >= 0
}

// match returns the first rule in scan order whose source overlaps iv.
func (s *Stage) match(iv interval.Interval) (Rule, bool) {
	end := iv.End()
	for _, r := range s.scan {
		if s.sorted && r.SourceStart >= end {
			break
		}
		if interval.Overlap(iv, r.Source()) {
			return r, true
		}
	}
	return Rule{}, false
}

// Apply pushes intervals through the stage and returns a fresh slice.
//
// Each input gets its own worklist. A popped fragment is matched against the
// first overlapping rule: the translated piece goes to the output, the
// untouched before/after pieces go back on the worklist. Fragments that match
// no rule are emitted unchanged. Empty inputs are dropped.
//
// Unmatched inputs keep their relative order, so a stage without rules
// returns a copy of its (non-empty) input.
func (s *Stage) Apply(ivs []interval.Interval) []interval.Interval {
	out := make([]interval.Interval, 0, len(ivs))
	var work []interval.Interval

	for _, iv := range ivs {
		if iv.IsEmpty() {
			continue
		}
		work = append(work[:0], iv)

		for len(work) > 0 {
			n := len(work) - 1
			frag := work[n]
			work = work[:n]

			r, ok := s.match(frag)
			if !ok {
				out = append(out, frag)
				continue
			}

			sp := r.Split(frag)
			out = append(out, sp.Mapped)
			if !sp.Before.IsEmpty() {
				work = append(work, sp.Before)
			}
			if !sp.After.IsEmpty() {
				work = append(work, sp.After)
			}
		}
	}
	return out
}

// ApplyValue translates v by the first listed rule that covers it.
func (s *Stage) ApplyValue(v uint64) uint64 {
	for _, r := range s.rules {
		if r.Source().Contains(v) {
			return r.ApplyToValue(v)
		}
	}
	return v
}

// String returns the name and rule count.
func (s *Stage) String() string {
	return fmt.Sprintf("%s (%d rules)", s.name, len(s.rules))
}
