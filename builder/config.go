// SPDX-License-Identifier: MIT
//
// config.go — internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • spacing = 100 canvas units between neighbours on lines and grids
//   • radius  = 0 (derived: 40% of the smaller canvas side)
//   • center  = canvas midpoint
//   • rng     = nil (pure unless seeded)

package builder

import (
	"math"
	"math/rand"
)

const (
	defaultSpacing     = 100.0
	defaultRadiusShare = 0.4
)

// builderConfig aggregates the knobs constructors read. Passed by value.
type builderConfig struct {
	spacing   float64
	radius    float64
	center    [2]float64
	hasCenter bool
	rng       *rand.Rand

	// canvas bounds of the target graph, filled in by Apply
	minX, minY, maxX, maxY float64
}

// BuilderOption customizes a build.
type BuilderOption func(*builderConfig)

// WithSpacing sets the distance between consecutive nodes on lines, grids
// and tree levels. Panics on non-positive values.
func WithSpacing(d float64) BuilderOption {
	if !(d > 0) {
		panic("builder: WithSpacing(<=0)")
	}
	return func(c *builderConfig) { c.spacing = d }
}

// WithRadius sets the ring radius used by Cycle, Star, Wheel, Complete and
// RandomSparse. Panics on non-positive values.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) {
		panic("builder: WithRadius(<=0)")
	}
	return func(c *builderConfig) { c.radius = r }
}

// WithCenter overrides the layout centre (default: canvas midpoint).
func WithCenter(x, y float64) BuilderOption {
	return func(c *builderConfig) {
		c.center = [2]float64{x, y}
		c.hasCenter = true
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// newBuilderConfig resolves opts against the canvas bounds.
// Complexity: O(len(opts)).
func newBuilderConfig(minX, minY, maxX, maxY float64, opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: defaultSpacing,
		minX:    minX,
		minY:    minY,
		maxX:    maxX,
		maxY:    maxY,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasCenter {
		cfg.center = [2]float64{(minX + maxX) / 2, (minY + maxY) / 2}
	}
	if cfg.radius == 0 {
		cfg.radius = defaultRadiusShare * math.Min(maxX-minX, maxY-minY)
	}

	return cfg
}

// ring returns the position of slot i of n on the layout circle, starting
// at twelve o'clock and going clockwise.
func (c builderConfig) ring(i, n int) (float64, float64) {
	angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return c.center[0] + c.radius*math.Cos(angle), c.center[1] + c.radius*math.Sin(angle)
}

// row returns the x of slot i in a centred row of n slots.
func (c builderConfig) row(i, n int) float64 {
	return c.center[0] + (float64(i)-float64(n-1)/2)*c.spacing
}
