// SPDX-License-Identifier: MIT

// Package almanac reads the seed almanac text format and turns it into a
// remap.Pipeline.
//
// Format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// The first non-blank line lists the seed numbers. Every following block is a
// "<from>-to-<to> map:" header and rule lines "destStart sourceStart length",
// ended by a blank line or end of input. Blocks must chain: the "to" of one
// map is the "from" of the next.
//
// Seed numbers can be read two ways (see SeedMode): as individual values, or
// as (start, length) pairs describing ranges.
//
// Errors carry the 1-based line they came from (*LineError) and wrap one of
// the package sentinels; use errors.Is to branch and errors.As for the line.
package almanac
