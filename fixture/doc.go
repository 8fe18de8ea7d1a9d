// SPDX-License-Identifier: MIT

// Package fixture generates deterministic stages, pipelines and seed sets for
// tests and benchmarks, and carries the reference almanac from the puzzle
// statement together with its known answers.
//
// Random generators require an explicit RNG (WithSeed or WithRand) so that
// every fixture is reproducible:
//
//	st, err := fixture.RandomStage("s0", 8, fixture.WithSeed(42), fixture.WithDomain(1000))
//
// Generated stages always have pairwise-disjoint rule sources inside
// [0, domain); destinations may land anywhere in [0, domain).
package fixture
