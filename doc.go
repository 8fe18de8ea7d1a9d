// SPDX-License-Identifier: MIT

// Package almanac is the root of a small library for pushing integer ranges
// through chains of piecewise translation tables.
//
// Under the hood, everything is organized under these subpackages:
//
//	interval/     — half-open [Start, Start+Length) ranges and their five-way classification
//	remap/        — rules, stages and pipelines; splitting, folding and reductions
//	almanac/      — reader for the "seeds: ... / x-to-y map:" text format
//	fixture/      — seeded random stages and seeds, plus the reference almanac
//	cmd/almanac/  — command line solver with watch mode
//
// Quick example:
//
//	seeds [0,100)   rules [40,60)->[240,260)  [80,120)->[280,320)
//
//	  0        40      60      80         100
//	  |--------|=======|-------|==========|
//	   [0,40)   [240,260) [60,80) [280,300)
//
// which conserves the total length of 100.
//
//	go get github.com/katalvlaran/almanac
package almanac
