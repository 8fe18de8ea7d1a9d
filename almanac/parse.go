// SPDX-License-Identifier: MIT

package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/almanac/remap"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
	chainSep    = "-to-"
)

// ParseString parses an almanac held in memory.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads an almanac. Leading, trailing and repeated blank lines are
// ignored, as is surrounding whitespace on every line.
//
// Errors are *LineError wrapping ErrMissingSeeds, ErrMalformedSeeds,
// remap.ErrEmptySeedSet, ErrMalformedHeader or ErrMalformedRule; read
// errors from r are returned wrapped.
func Parse(r io.Reader) (*Almanac, error) {
	sc := bufio.NewScanner(r)
	a := &Almanac{}

	var (
		lineNo  int
		cur     *Map
		haveHdr bool
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "":
			cur = nil
		case !haveHdr:
			if err := parseSeeds(a, lineNo, line); err != nil {
				return nil, err
			}
			haveHdr = true
		case cur == nil:
			m, err := parseHeader(lineNo, line)
			if err != nil {
				return nil, err
			}
			a.Maps = append(a.Maps, m)
			cur = &a.Maps[len(a.Maps)-1]
		default:
			rule, err := parseRule(lineNo, line)
			if err != nil {
				return nil, err
			}
			cur.Rules = append(cur.Rules, rule)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("almanac: read: %w", err)
	}
	if !haveHdr {
		return nil, &LineError{Line: lineNo, Err: ErrMissingSeeds}
	}
	return a, nil
}

// parseSeeds reads "seeds: n n n ...".
func parseSeeds(a *Almanac, lineNo int, line string) error {
	rest, ok := strings.CutPrefix(line, seedsPrefix)
	if !ok {
		return &LineError{Line: lineNo, Text: line, Err: ErrMissingSeeds}
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return &LineError{Line: lineNo, Text: line, Err: remap.ErrEmptySeedSet}
	}
	seeds := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return &LineError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: %w", ErrMalformedSeeds, err)}
		}
		seeds = append(seeds, v)
	}
	a.Seeds = seeds
	a.SeedsLine = lineNo
	return nil
}

// parseHeader reads "<from>-to-<to> map:".
func parseHeader(lineNo int, line string) (Map, error) {
	name, ok := strings.CutSuffix(line, mapSuffix)
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.ContainsAny(name, " \t") {
		return Map{}, &LineError{Line: lineNo, Text: line, Err: ErrMalformedHeader}
	}
	m := Map{Name: name, Line: lineNo}
	if from, to, found := strings.Cut(name, chainSep); found {
		m.From, m.To = from, to
	}
	return m, nil
}

// parseRule reads "destStart sourceStart length".
func parseRule(lineNo int, line string) (remap.Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return remap.Rule{}, &LineError{Line: lineNo, Text: line,
			Err: fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRule, len(fields))}
	}
	var nums [3]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return remap.Rule{}, &LineError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: %w", ErrMalformedRule, err)}
		}
		nums[i] = v
	}
	rule, err := remap.NewRule(nums[0], nums[1], nums[2])
	if err != nil {
		return remap.Rule{}, &LineError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: %w", ErrMalformedRule, err)}
	}
	return rule, nil
}
