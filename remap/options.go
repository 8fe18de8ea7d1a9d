// SPDX-License-Identifier: MIT
// Package: almanac/remap
//
// options.go — functional options for NewStage.
//
// Contract:
//   • Options are functional (type StageOption func(*stageConfig)).
//   • Option constructors panic on meaningless inputs; NewStage and Apply
//     never panic.
//   • Later options override earlier ones.

package remap

// OverlapPolicy decides what NewStage does with rules whose sources overlap.
type OverlapPolicy int

const (
	// OverlapFirstWins keeps every rule; each value is translated by the first
	// listed rule that covers it.
	OverlapFirstWins OverlapPolicy = iota

	// OverlapReject makes NewStage fail with ErrAmbiguousOverlap.
	OverlapReject
)

// String returns the policy name.
func (p OverlapPolicy) String() string {
	switch p {
	case OverlapFirstWins:
		return "first-wins"
	case OverlapReject:
		return "reject"
	default:
		return "OverlapPolicy(?)"
	}
}

// StageOption customizes stage construction.
type StageOption func(*stageConfig)

// stageConfig aggregates all NewStage knobs.
type stageConfig struct {
	overlap    OverlapPolicy
	sortedScan bool
}

// newStageConfig returns the defaults (first-wins, listed-order scan) with
// opts applied in order.
func newStageConfig(opts ...StageOption) stageConfig {
	cfg := stageConfig{
		overlap:    OverlapFirstWins,
		sortedScan: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOverlapPolicy selects how overlapping rule sources are handled.
// Panics on an unknown policy.
func WithOverlapPolicy(p OverlapPolicy) StageOption {
	if p != OverlapFirstWins && p != OverlapReject {
		panic("remap: WithOverlapPolicy(unknown policy)")
	}
	return func(c *stageConfig) {
		c.overlap = p
	}
}

// WithSortedScan orders the rule scan by SourceStart so that it can stop as
// soon as a rule starts past the fragment being matched. It only takes effect
// on stages whose sources are pairwise disjoint; on overlapping stages the
// listed order is kept so that first-wins resolution is unchanged.
func WithSortedScan() StageOption {
	return func(c *stageConfig) {
		c.sortedScan = true
	}
}
