// SPDX-License-Identifier: MIT

// Package remap pushes sets of half-open intervals through an ordered
// pipeline of translation stages.
//
// What:
//
//   - Rule maps [SourceStart, SourceStart+Length) onto
//     [DestStart, DestStart+Length) with a constant offset; values outside
//     the source are left unchanged.
//   - Stage is one step of the pipeline: an ordered list of rules. An input
//     interval that only partly overlaps a rule is split; the overlapping
//     piece is translated, the leftovers are retried against the other rules
//     and pass through unchanged when nothing matches.
//   - Pipeline folds its stages left to right.
//   - Lowest, LowestValue and MinStart reduce the final set to an answer.
//
// Why:
//
//	Mapping every value of a large seed range one by one is O(values).
//	Splitting whole ranges keeps the cost proportional to the number of
//	fragments produced, which is bounded by inputs × rules per stage.
//
// Invariants:
//
//   - Conservation: the total length of a stage's output equals the total
//     length of its input.
//   - A value translated by a rule is never translated again by the same stage.
//   - Inputs are never mutated; every Apply returns a fresh slice.
//
// Overlapping rules:
//
//	Rule sources inside one stage are expected to be disjoint. When they are
//	not, the default policy OverlapFirstWins resolves every value by the
//	first listed rule that covers it. OverlapReject makes NewStage fail with
//	ErrAmbiguousOverlap instead.
//
// Concurrency:
//
//	Stages and pipelines are immutable once built and safe for concurrent
//	use. ApplyConcurrent fans seeds out over a worker pool; output order is
//	unspecified.
//
// Complexity (per stage): O(F·R) time where F is the number of fragments
// produced and R the number of rules; WithSortedScan stops the rule scan early
// on disjoint stages.
package remap
