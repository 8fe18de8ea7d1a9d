// SPDX-License-Identifier: MIT
// Package: almanac/fixture
//
// options.go — functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package fixture

import (
	"math/rand"

	"github.com/katalvlaran/almanac/remap"
)

// Option customizes a generator.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDomain sets the exclusive upper bound of generated values. Panics if n <= 0.
func WithDomain(n int64) Option {
	if n <= 0 {
		panic("fixture: WithDomain(n<=0)")
	}
	return func(c *config) {
		c.domain = n
	}
}

// WithMaxSeedLength caps the length of generated seed intervals. Panics if n <= 0.
func WithMaxSeedLength(n int64) Option {
	if n <= 0 {
		panic("fixture: WithMaxSeedLength(n<=0)")
	}
	return func(c *config) {
		c.maxSeedLen = n
	}
}

// WithStageOptions forwards options to every remap.NewStage call.
func WithStageOptions(opts ...remap.StageOption) Option {
	return func(c *config) {
		c.stageOpts = append(c.stageOpts, opts...)
	}
}
