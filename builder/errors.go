// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.
//   • Core rejections (out of bounds, too close) pass through wrapped, so a
//     layout that does not fit the canvas is still errors.Is(err, core.ErrTooClose).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an otherwise impossible build.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates a Preset kind with no constructor.
var ErrUnknownPreset = errors.New("builder: unknown preset")
