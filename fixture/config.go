// SPDX-License-Identifier: MIT
// Package: almanac/fixture
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng        = nil   (random generators fail with ErrNeedRandSource)
//   • domain     = 1000
//   • maxSeedLen = 50
//   • stageOpts  = none

package fixture

import (
	"math/rand"

	"github.com/katalvlaran/almanac/remap"
)

const (
	defaultDomain     = int64(1000)
	defaultMaxSeedLen = int64(50)
)

// config aggregates all generator knobs.
type config struct {
	rng        *rand.Rand
	domain     int64
	maxSeedLen int64
	stageOpts  []remap.StageOption
}

// newConfig applies opts over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:        nil,
		domain:     defaultDomain,
		maxSeedLen: defaultMaxSeedLen,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
