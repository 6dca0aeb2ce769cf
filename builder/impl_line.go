// SPDX-License-Identifier: MIT
//
// impl_line.go — Path(n) and Grid(rows, cols).
//
// Layout:
//   • Path: n nodes on a horizontal line through the centre, cfg.spacing apart.
//   • Grid: rows×cols nodes centred on the canvas, row-major, cfg.spacing apart.
//
// Edge order:
//   • Path: i→i+1 for i ascending.
//   • Grid: for each (r,c) row-major, Right then Down when present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2

	methodGrid = "Grid"
	minGridDim = 1
)

// Path returns a Constructor that lays out the simple path P_n.
// Complexity: O(n) nodes + O(n) edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		pts := make([][2]float64, n)
		for i := range pts {
			pts[i] = [2]float64{cfg.row(i, n), cfg.center[1]}
		}
		ids, err := place(g, methodPath, pts)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid returns a Constructor that lays out a rows×cols 4-neighbourhood grid.
// Complexity: O(rows·cols) nodes and edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		pts := make([][2]float64, 0, rows*cols)
		for r := 0; r < rows; r++ {
			y := cfg.center[1] + (float64(r)-float64(rows-1)/2)*cfg.spacing
			for c := 0; c < cols; c++ {
				pts = append(pts, [2]float64{cfg.row(c, cols), y})
			}
		}
		ids, err := place(g, methodGrid, pts)
		if err != nil {
			return err
		}

		at := func(r, c int) core.NodeID { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(g, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
