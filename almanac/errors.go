// SPDX-License-Identifier: MIT

package almanac

import (
	"errors"
	"fmt"
)

// Sentinel errors for the almanac package.
var (
	// ErrMissingSeeds indicates the input has no "seeds:" line.
	ErrMissingSeeds = errors.New("almanac: missing seeds line")
	// ErrMalformedSeeds indicates a seed token is not an unsigned integer.
	ErrMalformedSeeds = errors.New("almanac: malformed seeds")
	// ErrOddSeedCount indicates range mode was asked of an odd number of seeds.
	ErrOddSeedCount = errors.New("almanac: seed ranges need an even number of values")
	// ErrMalformedHeader indicates a line where a "<name> map:" header was expected.
	ErrMalformedHeader = errors.New("almanac: malformed map header")
	// ErrMalformedRule indicates a rule line without exactly three unsigned integers,
	// or one describing an invalid rule.
	ErrMalformedRule = errors.New("almanac: malformed rule")
	// ErrBrokenChain indicates consecutive maps do not connect.
	ErrBrokenChain = errors.New("almanac: maps do not chain")
	// ErrNoExample indicates an HTML page without a <pre><code> block.
	ErrNoExample = errors.New("almanac: no example block")
)

// LineError attaches input position to a parse or build error.
type LineError struct {
	Line int    // 1-based line number
	Text string // offending line, trimmed
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
