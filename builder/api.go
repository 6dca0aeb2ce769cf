// SPDX-License-Identifier: MIT
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   • One orchestrator, Apply(g, bopts, cons...); BuildGraph wraps it with a
//     fresh graph.
//   • Constructors add nodes in a documented order and edges in a stable one.
//   • Any core rejection aborts the build; nodes already placed stay placed
//     (callers that need all-or-nothing build into a fresh or cleared graph).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Constructor applies a deterministic placement to g using cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts and applies cons in order.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply resolves bopts against g's bounds and runs cons in order.
// Errors are wrapped as "BuildGraph: %w".
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	minX, minY, maxX, maxY := g.Bounds()
	cfg := newBuilderConfig(minX, minY, maxX, maxY, bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// place adds the nodes at pts in order and returns their ids.
func place(g *core.Graph, method string, pts [][2]float64) ([]core.NodeID, error) {
	ids := make([]core.NodeID, len(pts))
	for i, p := range pts {
		n, err := g.AddNode(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("%s: AddNode(%.0f, %.0f): %w", method, p[0], p[1], err)
		}
		ids[i] = n.ID
	}

	return ids, nil
}

// connect adds from→to, wrapping failures with method context.
func connect(g *core.Graph, method string, from, to core.NodeID) error {
	if _, err := g.AddEdge(from, to); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, from, to, err)
	}

	return nil
}
