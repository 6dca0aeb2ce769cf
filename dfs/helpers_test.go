package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/stretchr/testify/require"
)

// build creates n nodes (labels A, B, ...) and connects the given label pairs.
func build(t *testing.T, directed bool, n int, pairs ...[2]string) (*core.Graph, map[string]core.NodeID) {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	ids := make(map[string]core.NodeID, n)
	for i := 0; i < n; i++ {
		node, err := g.AddNode(50+float64(i%7)*100, 50+float64(i/7)*100)
		require.NoError(t, err)
		ids[node.Label] = node.ID
	}
	for _, p := range pairs {
		_, err := g.AddEdge(ids[p[0]], ids[p[1]])
		require.NoError(t, err)
	}

	return g, ids
}

// randomGraph builds a seeded random graph without geometry constraints.
func randomGraph(t *testing.T, seed int64, n, m int, directed bool) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithDirected(directed), core.WithBounds(0, 0, 1, 1), core.WithMinSeparation(0))
	nodes := make([]core.Node, n)
	for i := range nodes {
		node, err := g.AddNode(0.5, 0.5)
		require.NoError(t, err)
		nodes[i] = node
	}
	for i := 0; i < m; i++ {
		a, b := nodes[r.Intn(n)], nodes[r.Intn(n)]
		_, _ = g.AddEdge(a.ID, b.ID)
	}

	return g
}

// reachable computes the reachable set from start with a plain BFS.
func reachable(adj *core.Adjacency, start core.NodeID) map[core.NodeID]int {
	dist := map[core.NodeID]int{start: 0}
	queue := []core.NodeID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj.Neighbors(cur) {
			if _, ok := dist[nb]; !ok {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}

	return dist
}
