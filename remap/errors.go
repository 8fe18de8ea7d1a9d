// SPDX-License-Identifier: MIT

package remap

import "errors"

// Sentinel errors for the remap package. Callers branch with errors.Is;
// implementations attach context with %w.
var (
	// ErrInvalidRule indicates a rule with zero length or an overflowing end.
	ErrInvalidRule = errors.New("remap: invalid rule")

	// ErrAmbiguousOverlap indicates two rules in one stage share source values
	// while the stage was built with OverlapReject.
	ErrAmbiguousOverlap = errors.New("remap: overlapping rule sources")

	// ErrNilStage indicates a nil *Stage was passed to NewPipeline.
	ErrNilStage = errors.New("remap: nil stage")

	// ErrEmptySeedSet indicates there is nothing to push through the pipeline.
	ErrEmptySeedSet = errors.New("remap: empty seed set")

	// ErrNoIntervals indicates a reduction was asked of an empty interval set.
	ErrNoIntervals = errors.New("remap: no intervals to reduce")
)
