// SPDX-License-Identifier: MIT

package interval_test

import (
	"fmt"

	"github.com/katalvlaran/almanac/interval"
)

// ExampleClassify shows where a seed range sits against a rule source.
func ExampleClassify() {
	seeds, _ := interval.FromBounds(79, 93)
	source, _ := interval.FromBounds(50, 98)

	fmt.Println(interval.Classify(seeds, source))
	fmt.Println(interval.Classify(source, seeds))
	// Output:
	// Inside
	// Spans
}

// ExampleInterval_Prefix cuts a range around another one.
func ExampleInterval_Prefix() {
	iv, _ := interval.FromBounds(0, 100)
	src, _ := interval.FromBounds(40, 60)

	fmt.Println(iv.Prefix(src), iv.Intersection(src), iv.Suffix(src))
	// Output:
	// [0,40) [40,60) [60,100)
}
