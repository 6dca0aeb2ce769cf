// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/stretchr/testify/require"
)

// Grid spacing used by fixtures; comfortably above DefaultMinSeparation.
const (
	gridStep   = 100.0
	gridOrigin = 50.0
)

// slot returns the canvas position of the i-th fixture node, laid out in
// rows of seven.
func slot(i int) (float64, float64) {
	return gridOrigin + float64(i%7)*gridStep, gridOrigin + float64(i/7)*gridStep
}

// mustNodes adds n nodes on the fixture grid and returns them in order.
func mustNodes(t *testing.T, g *core.Graph, n int) []core.Node {
	t.Helper()
	out := make([]core.Node, 0, n)
	for i := 0; i < n; i++ {
		x, y := slot(i)
		node, err := g.AddNode(x, y)
		require.NoError(t, err)
		out = append(out, node)
	}

	return out
}

// mustEdge connects a and b or fails the test.
func mustEdge(t *testing.T, g *core.Graph, a, b core.Node) core.Edge {
	t.Helper()
	e, err := g.AddEdge(a.ID, b.ID)
	require.NoError(t, err)

	return e
}

// labels extracts node labels in order.
func labels(nodes []core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label
	}

	return out
}
