// SPDX-License-Identifier: MIT
// Package: almanac/fixture
//
// errors.go — sentinel errors for the fixture package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the call site.
//   • Generators never panic; option constructors may.

package fixture

import "errors"

// ErrTooFewRules indicates a negative count was requested.
var ErrTooFewRules = errors.New("fixture: count must not be negative")

// ErrDomainTooSmall indicates the domain cannot hold the requested number of
// disjoint rule sources.
var ErrDomainTooSmall = errors.New("fixture: domain too small")

// ErrNeedRandSource indicates a random generator was called without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("fixture: rng is required")
