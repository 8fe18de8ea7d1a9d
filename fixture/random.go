// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/remap"
)

// RandomRules returns n rules with pairwise-disjoint sources in [0, domain),
// listed in random order.
//
// Errors: ErrTooFewRules, ErrDomainTooSmall (2n > domain), ErrNeedRandSource.
func RandomRules(n int, opts ...Option) ([]remap.Rule, error) {
	cfg := newConfig(opts...)
	return randomRules(&cfg, n)
}

func randomRules(cfg *config, n int) ([]remap.Rule, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("RandomRules(%d): %w", n, ErrTooFewRules)
	case int64(2*n) > cfg.domain:
		return nil, fmt.Errorf("RandomRules(%d): domain %d: %w", n, cfg.domain, ErrDomainTooSmall)
	case cfg.rng == nil:
		return nil, fmt.Errorf("RandomRules(%d): %w", n, ErrNeedRandSource)
	}

	// 2n distinct cut points; consecutive pairs become sources.
	seen := make(map[int64]struct{}, 2*n)
	cuts := make([]int64, 0, 2*n)
	for len(cuts) < 2*n {
		c := cfg.rng.Int63n(cfg.domain)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		cuts = append(cuts, c)
	}
	sort.Slice(cuts, func(a, b int) bool { return cuts[a] < cuts[b] })

	rules := make([]remap.Rule, n)
	for i := range rules {
		lo, hi := cuts[2*i], cuts[2*i+1]
		rules[i] = remap.Rule{
			SourceStart: uint64(lo),
			DestStart:   uint64(cfg.rng.Int63n(cfg.domain)),
			Length:      uint64(hi - lo),
		}
	}
	cfg.rng.Shuffle(len(rules), func(a, b int) { rules[a], rules[b] = rules[b], rules[a] })
	return rules, nil
}

// RandomStage wraps RandomRules in a named stage.
func RandomStage(name string, n int, opts ...Option) (*remap.Stage, error) {
	cfg := newConfig(opts...)
	return randomStage(&cfg, name, n)
}

func randomStage(cfg *config, name string, n int) (*remap.Stage, error) {
	rules, err := randomRules(cfg, n)
	if err != nil {
		return nil, fmt.Errorf("RandomStage(%q): %w", name, err)
	}
	return remap.NewStage(name, rules, cfg.stageOpts...)
}

// RandomPipeline builds stages stages of rulesPerStage rules each, all drawn
// from the same RNG.
func RandomPipeline(stages, rulesPerStage int, opts ...Option) (*remap.Pipeline, error) {
	if stages < 0 {
		return nil, fmt.Errorf("RandomPipeline(%d): %w", stages, ErrTooFewRules)
	}
	cfg := newConfig(opts...)
	built := make([]*remap.Stage, 0, stages)
	for i := 0; i < stages; i++ {
		st, err := randomStage(&cfg, fmt.Sprintf("stage-%d", i), rulesPerStage)
		if err != nil {
			return nil, fmt.Errorf("RandomPipeline: %w", err)
		}
		built = append(built, st)
	}
	return remap.NewPipeline(built...)
}

// RandomSeeds returns n non-empty intervals starting in [0, domain) with
// lengths in [1, maxSeedLen]. Seeds may overlap each other.
func RandomSeeds(n int, opts ...Option) ([]interval.Interval, error) {
	cfg := newConfig(opts...)
	switch {
	case n < 0:
		return nil, fmt.Errorf("RandomSeeds(%d): %w", n, ErrTooFewRules)
	case cfg.rng == nil:
		return nil, fmt.Errorf("RandomSeeds(%d): %w", n, ErrNeedRandSource)
	}
	out := make([]interval.Interval, n)
	for i := range out {
		out[i] = interval.Interval{
			Start:  uint64(cfg.rng.Int63n(cfg.domain)),
			Length: uint64(cfg.rng.Int63n(cfg.maxSeedLen) + 1),
		}
	}
	return out, nil
}
