// SPDX-License-Identifier: MIT

package fixture

import (
	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/remap"
)

// ReferenceText is the example almanac from the puzzle statement.
const ReferenceText = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// Known answers for ReferenceText.
const (
	// ReferenceLowestValue is the lowest location when every seed number is a single seed.
	ReferenceLowestValue uint64 = 35
	// ReferenceLowestRange is the lowest location when seeds are (start, length) pairs.
	ReferenceLowestRange uint64 = 46
)

// ReferenceSeedValues returns the seed numbers of ReferenceText.
func ReferenceSeedValues() []uint64 {
	return []uint64{79, 14, 55, 13}
}

// ReferenceSeedRanges returns the seed numbers read as (start, length) pairs.
func ReferenceSeedRanges() []interval.Interval {
	return []interval.Interval{
		{Start: 79, Length: 14},
		{Start: 55, Length: 13},
	}
}

// referenceTables holds (destStart, sourceStart, length) triples per stage.
var referenceTables = []struct {
	name  string
	rules [][3]uint64
}{
	{"seed-to-soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil-to-fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer-to-water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water-to-light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light-to-temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature-to-humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity-to-location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

// ReferencePipeline builds the seven-stage pipeline of ReferenceText
// without going through the text parser.
func ReferencePipeline(opts ...remap.StageOption) (*remap.Pipeline, error) {
	stages := make([]*remap.Stage, 0, len(referenceTables))
	for _, tbl := range referenceTables {
		rules := make([]remap.Rule, 0, len(tbl.rules))
		for _, t := range tbl.rules {
			r, err := remap.NewRule(t[0], t[1], t[2])
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
		st, err := remap.NewStage(tbl.name, rules, opts...)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	return remap.NewPipeline(stages...)
}
