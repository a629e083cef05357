// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// Default identifier prefixes.
const (
	DefaultPersonPrefix = "P"
	DefaultGroupPrefix  = "G"
)

// builderConfig aggregates the knobs shared by all constructors.
type builderConfig struct {
	// RNG for stochastic constructors; nil means "no randomness".
	rng          *rand.Rand
	personPrefix string
	groupPrefix  string
}

// Option customizes a constructor by mutating builderConfig.
type Option func(*builderConfig)

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		personPrefix: DefaultPersonPrefix,
		groupPrefix:  DefaultGroupPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithPersonPrefix sets the person identifier prefix. Panics on "".
func WithPersonPrefix(p string) Option {
	if p == "" {
		panic("builder: WithPersonPrefix(\"\")")
	}
	return func(c *builderConfig) {
		c.personPrefix = p
	}
}

// WithGroupPrefix sets the group identifier prefix. Panics on "".
func WithGroupPrefix(p string) Option {
	if p == "" {
		panic("builder: WithGroupPrefix(\"\")")
	}
	return func(c *builderConfig) {
		c.groupPrefix = p
	}
}
