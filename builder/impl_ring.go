// SPDX-License-Identifier: MIT
//
// impl_ring.go — Cycle, Star, Wheel and Complete on the layout circle.
//
// Layout:
//   • Ring slots start at twelve o'clock and run clockwise (cfg.ring).
//   • Star and Wheel place the hub first at the centre, so it is labelled A.
//
// Edge order:
//   • Cycle: i→(i+1)%n.
//   • Star: hub→leaf in leaf order.
//   • Wheel: spokes hub→rim first, then rim i→(i+1)%m.
//   • Complete: (i, j) for i<j in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3

	methodStar   = "Star"
	minStarNodes = 2

	methodWheel   = "Wheel"
	minWheelNodes = 4

	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// ringPoints returns n ring positions.
func ringPoints(cfg builderConfig, n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		x, y := cfg.ring(i, n)
		pts[i] = [2]float64{x, y}
	}

	return pts
}

// Cycle returns a Constructor that lays out the simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := place(g, methodCycle, ringPoints(cfg, n))
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// hubAndRim places a hub at the centre followed by m rim nodes.
func hubAndRim(g *core.Graph, cfg builderConfig, method string, m int) (core.NodeID, []core.NodeID, error) {
	pts := append([][2]float64{cfg.center}, ringPoints(cfg, m)...)
	ids, err := place(g, method, pts)
	if err != nil {
		return 0, nil, err
	}

	return ids[0], ids[1:], nil
}

// Star returns a Constructor for a hub with n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, leaves, err := hubAndRim(g, cfg, methodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := connect(g, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a hub joined to every node of C_{n-1}.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub, rim, err := hubAndRim(g, cfg, methodWheel, n-1)
		if err != nil {
			return err
		}
		for _, r := range rim {
			if err := connect(g, methodWheel, hub, r); err != nil {
				return err
			}
		}
		for i := range rim {
			if err := connect(g, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n.
// Complexity: O(n) nodes + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		var pts [][2]float64
		if n == 1 {
			pts = [][2]float64{cfg.center}
		} else {
			pts = ringPoints(cfg, n)
		}
		ids, err := place(g, methodComplete, pts)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
