package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/dfs"
	"github.com/katalvlaran/lvwalk/traversal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFS_LineScenario(t *testing.T) {
	g, id := build(t, false, 3, [2]string{"A", "B"}, [2]string{"B", "C"})
	a, b, c := id["A"], id["B"], id["C"]

	steps := traversal.Drain(dfs.New(core.BuildAdjacency(g.Snapshot()), a))
	require.Len(t, steps, 6)

	var kinds []traversal.Kind
	var nodes []core.NodeID
	for _, s := range steps {
		kinds = append(kinds, s.Kind)
		nodes = append(nodes, s.Node)
		assert.Equal(t, traversal.DFS, s.Algorithm)
	}
	assert.Equal(t, []traversal.Kind{
		traversal.KindVisit, traversal.KindExplore,
		traversal.KindVisit, traversal.KindExplore,
		traversal.KindVisit, traversal.KindComplete,
	}, kinds)
	assert.Equal(t, []core.NodeID{a, b, b, c, c, a}, nodes)
	assert.Equal(t, []core.NodeID{a, b, c}, steps[5].Path)
	assert.Empty(t, steps[5].Frontier)
}

// TestDFS_SquareStackContents shows reverse pushing and the rule that a
// node already on the stack is not pushed again.
func TestDFS_SquareStackContents(t *testing.T) {
	g, id := build(t, false, 4,
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"})
	a, b, c, d := id["A"], id["B"], id["C"], id["D"]

	steps := traversal.Drain(dfs.New(core.BuildAdjacency(g.Snapshot()), a))

	var frontiers [][]core.NodeID
	for _, s := range steps {
		frontiers = append(frontiers, s.Frontier)
	}
	assert.Equal(t, [][]core.NodeID{
		{},     // visit A
		{c},    // explore C
		{c, b}, // explore B
		{c},    // visit B
		{c, d}, // explore D
		{c},    // visit D
		{},     // visit C
		{},     // complete
	}, frontiers)

	final, ok := traversal.Final(steps)
	require.True(t, ok)
	assert.Equal(t, []core.NodeID{a, b, d, c}, final.Path)
}

func TestDFS_LeftToRightDescent(t *testing.T) {
	// A has children B, C; B has child D.
	g, id := build(t, true, 4, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"})

	final, ok := traversal.Final(traversal.Drain(dfs.New(core.BuildAdjacency(g.Snapshot()), id["A"])))
	require.True(t, ok)
	assert.Equal(t, []core.NodeID{id["A"], id["B"], id["D"], id["C"]}, final.Path)
}

func TestDFS_MissingStart(t *testing.T) {
	g, _ := build(t, false, 1)
	w := dfs.New(core.BuildAdjacency(g.Snapshot()), core.NodeID(77))

	steps := traversal.Drain(w)
	require.Len(t, steps, 1)
	assert.Equal(t, traversal.KindComplete, steps[0].Kind)
	assert.Equal(t, core.NodeID(77), steps[0].Node)
	assert.Empty(t, steps[0].Path)
	assert.Empty(t, steps[0].Visited)
	assert.True(t, w.Done())
	assert.Equal(t, core.NodeID(77), w.Start())
}

func TestDFS_IsolatedStart(t *testing.T) {
	g, id := build(t, false, 2)

	steps := traversal.Drain(dfs.New(core.BuildAdjacency(g.Snapshot()), id["B"]))
	require.Len(t, steps, 2)
	assert.Equal(t, traversal.KindVisit, steps[0].Kind)
	assert.Equal(t, []core.NodeID{id["B"]}, steps[1].Path)
}

func TestDFS_HooksReportDepth(t *testing.T) {
	g, id := build(t, false, 3, [2]string{"A", "B"}, [2]string{"B", "C"})
	depths := map[core.NodeID]int{}

	traversal.Drain(dfs.New(core.BuildAdjacency(g.Snapshot()), id["A"],
		traversal.WithOnVisit(func(n core.NodeID, d int) { depths[n] = d }),
	))

	assert.Equal(t, map[core.NodeID]int{id["A"]: 0, id["B"]: 1, id["C"]: 2}, depths)
}

func TestDFS_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := randomGraph(t, seed, 12, 16, seed%3 == 0)
		snap := g.Snapshot()
		adj := core.BuildAdjacency(snap)
		start := snap.Nodes[int(seed*5)%len(snap.Nodes)].ID
		want := reachable(adj, start)

		steps := traversal.Drain(dfs.New(adj, start))
		require.Equal(t, steps, traversal.Drain(dfs.New(adj, start)), "seed %d: determinism", seed)
		require.LessOrEqual(t, len(steps), 2*len(snap.Nodes)+1)

		visited := map[core.NodeID]bool{}
		for _, s := range steps {
			if s.Kind != traversal.KindVisit {
				continue
			}
			require.False(t, visited[s.Node], "seed %d: revisit", seed)
			visited[s.Node] = true
		}

		final, ok := traversal.Final(steps)
		require.True(t, ok)
		require.Len(t, final.Path, len(want), "seed %d", seed)
		for _, n := range final.Path {
			_, ok := want[n]
			require.True(t, ok)
		}
	}
}
