// SPDX-License-Identifier: MIT
// Package: tensornet/builder
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options mutate generatorConfig; later options override earlier ones.
//   • Option constructors validate and PANIC on meaningless inputs.
//     Generation itself never panics.
//   • Determinism is explicit: the default RNG is seeded with DefaultSeed.

package builder

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Deterministic defaults.
const (
	// DefaultSeed seeds the leg-dimension RNG when no option overrides it.
	DefaultSeed int64 = 123
	// DefaultFactor is the default base factor of leg dimensions.
	DefaultFactor int64 = 2
	// MinFactor is the smallest base factor; f = 1 collapses every regime.
	MinFactor int64 = 2
	// MaxFactor keeps f⁴ (the largest regime bound) within int64.
	MaxFactor int64 = 1 << 15
)

// generatorConfig aggregates all generator knobs. Passed by value.
type generatorConfig struct {
	rng     *rand.Rand // leg-dimension draws
	factor  int64      // base factor f
	legMode LegMode    // recorded on every Instance
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*generatorConfig)

func newGeneratorConfig(opts ...GeneratorOption) generatorConfig {
	cfg := generatorConfig{
		factor:  DefaultFactor,
		legMode: LegClosed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// ValidateFactor returns ErrBadFactor unless MinFactor <= f <= MaxFactor.
func ValidateFactor(f int64) error {
	if f < MinFactor || f > MaxFactor {
		return errors.Wrapf(ErrBadFactor, "factor %d not in [%d, %d]", f, MinFactor, MaxFactor)
	}
	return nil
}

// WithSeed seeds a fresh RNG for leg-dimension draws.
func WithSeed(seed int64) GeneratorOption {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) GeneratorOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithFactor sets the base factor f of leg dimensions.
// Panics if f is outside [MinFactor, MaxFactor].
func WithFactor(f int64) GeneratorOption {
	if err := ValidateFactor(f); err != nil {
		panic(err.Error())
	}
	return func(c *generatorConfig) {
		c.factor = f
	}
}

// WithLegMode records the leg mode on generated instances.
func WithLegMode(m LegMode) GeneratorOption {
	return func(c *generatorConfig) {
		c.legMode = m
	}
}
