// SPDX-License-Identifier: MIT
//
// impl_tree.go — BinaryTree(depth) and RandomSparse(n, p).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

const (
	methodTree   = "BinaryTree"
	minTreeDepth = 0
	maxTreeDepth = 5

	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// BinaryTree returns a Constructor for the complete binary tree of the given
// depth (2^(depth+1)-1 nodes), placed level by level in heap order: node i
// has children 2i+1 and 2i+2. Levels are cfg.spacing apart and each level
// is spread evenly across the canvas width. Edges run parent→child in child
// order. Depth is capped at 5; whether a depth fits is decided by the
// canvas width and the graph's minimum separation.
// Complexity: O(2^depth).
func BinaryTree(depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if depth < minTreeDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodTree, depth, minTreeDepth, ErrTooFewVertices)
		}
		if depth > maxTreeDepth {
			return fmt.Errorf("%s: depth=%d > max=%d: %w", methodTree, depth, maxTreeDepth, ErrConstructFailed)
		}

		width := cfg.maxX - cfg.minX
		n := 1<<(depth+1) - 1
		pts := make([][2]float64, 0, n)
		for level := 0; level <= depth; level++ {
			slots := 1 << level
			y := cfg.center[1] + (float64(level)-float64(depth)/2)*cfg.spacing
			for i := 0; i < slots; i++ {
				x := cfg.minX + (float64(i)+0.5)*width/float64(slots)
				pts = append(pts, [2]float64{x, y})
			}
		}
		ids, err := place(g, methodTree, pts)
		if err != nil {
			return err
		}
		for child := 1; child < n; child++ {
			if err := connect(g, methodTree, ids[(child-1)/2], ids[child]); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that places n nodes on the layout circle
// and adds each pair (i, j), i<j, as i→j with probability p. Requires an RNG
// (WithSeed or WithRand); deterministic for a fixed seed.
// Complexity: O(n²) pair draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var pts [][2]float64
		if n == 1 {
			pts = [][2]float64{cfg.center}
		} else {
			pts = ringPoints(cfg, n)
		}
		ids, err := place(g, methodRandomSparse, pts)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
