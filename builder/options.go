// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: every run is seeded (default seed 1).

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/lvroute/core"
)

// defaultSeed keeps unconfigured builds reproducible.
const defaultSeed = 1

// AttrFn draws the attributes of one generated edge.
type AttrFn func(r *rand.Rand) core.Attrs

// BuilderOption customizes a constructor before the graph is built.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per constructor call.
type builderConfig struct {
	rng    *rand.Rand
	idFn   func(int) string
	attrFn AttrFn
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts []BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    rand.New(rand.NewSource(defaultSeed)),
		idFn:   DefaultIDFn,
		attrFn: DefaultAttrFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// DefaultAttrFn draws Time uniformly in [1,10) and Risk in [0,5).
func DefaultAttrFn(r *rand.Rand) core.Attrs {
	return core.Attrs{Time: 1 + 9*r.Float64(), Risk: 5 * r.Float64()}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithIDScheme sets the node ID generator for Path and RandomSparse.
// Grid always uses "r,c". Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithAttrFn overrides the per-edge attribute generator. It must draw only
// from the supplied RNG to stay deterministic. Panics on nil.
func WithAttrFn(fn AttrFn) BuilderOption {
	if fn == nil {
		panic("builder: WithAttrFn(nil)")
	}
	return func(c *builderConfig) { c.attrFn = fn }
}
