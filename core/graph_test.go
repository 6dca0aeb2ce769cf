package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNode_AssignsLabelsInCreationOrder(t *testing.T) {
	g := core.NewGraph()
	nodes := mustNodes(t, g, 3)

	assert.Equal(t, []string{"A", "B", "C"}, labels(nodes))
	assert.Equal(t, 3, g.NodeCount())
	for _, n := range nodes {
		assert.True(t, n.ID.Valid())
		assert.True(t, g.HasNode(n.ID))
	}
	assert.Less(t, uint64(nodes[0].ID), uint64(nodes[1].ID))
}

func TestAddNode_Bounds(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddNode(10, 10)
	require.ErrorIs(t, err, core.ErrOutOfBounds)
	_, err = g.AddNode(core.DefaultCanvasWidth, 200)
	require.ErrorIs(t, err, core.ErrOutOfBounds)

	// the border of the admissible rectangle is outside
	_, err = g.AddNode(core.DefaultMargin, 200)
	require.ErrorIs(t, err, core.ErrOutOfBounds)
	_, err = g.AddNode(core.DefaultMargin+1, core.DefaultMargin+1)
	require.NoError(t, err)
	_, err = g.AddNode(core.DefaultCanvasWidth-core.DefaultMargin-1, core.DefaultCanvasHeight-core.DefaultMargin-1)
	require.NoError(t, err)

	assert.Equal(t, 2, g.NodeCount())
}

func TestAddNode_TooClose(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode(100, 100)
	require.NoError(t, err)

	_, err = g.AddNode(130, 130)
	require.ErrorIs(t, err, core.ErrTooClose)
	assert.True(t, core.IsRejection(err))
	assert.Equal(t, 1, g.NodeCount())

	// exactly the minimum separation is admitted
	_, err = g.AddNode(100+core.DefaultMinSeparation, 100)
	require.NoError(t, err)
}

func TestAddNode_CustomGeometry(t *testing.T) {
	g := core.NewGraph(core.WithBounds(100, 100, 0, 0), core.WithMinSeparation(0))

	minX, minY, maxX, maxY := g.Bounds()
	assert.Equal(t, []float64{0, 0, 100, 100}, []float64{minX, minY, maxX, maxY})
	assert.Zero(t, g.MinSeparation())

	_, err := g.AddNode(5, 5)
	require.NoError(t, err)
	_, err = g.AddNode(5, 5)
	require.NoError(t, err, "separation disabled")
}

func TestRemoveNode_CascadesEdgesAndSelection(t *testing.T) {
	var seen [][]core.NodeID
	g := core.NewGraph(core.WithOnRemove(func(ids []core.NodeID) { seen = append(seen, ids) }))
	n := mustNodes(t, g, 3)
	mustEdge(t, g, n[0], n[1])
	keep := mustEdge(t, g, n[1], n[2])
	mustEdge(t, g, n[2], n[0])

	_, _, err := g.ToggleSelection(n[0].ID)
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode(n[0].ID))
	assert.False(t, g.HasNode(n[0].ID))
	assert.Equal(t, []core.Edge{keep}, g.Edges())
	assert.Empty(t, g.Selection())
	assert.Equal(t, [][]core.NodeID{{n[0].ID}}, seen)

	require.ErrorIs(t, g.RemoveNode(n[0].ID), core.ErrNodeNotFound)
	assert.Len(t, seen, 1)
}

func TestRemoveNode_FreesSpace(t *testing.T) {
	g := core.NewGraph()
	a, err := g.AddNode(200, 200)
	require.NoError(t, err)
	require.NoError(t, g.RemoveNode(a.ID))

	b, err := g.AddNode(200, 200)
	require.NoError(t, err)
	assert.Equal(t, "B", b.Label, "labels are not reused")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddEdge_Rejections(t *testing.T) {
	g := core.NewGraph()
	n := mustNodes(t, g, 2)

	_, err := g.AddEdge(n[0].ID, n[0].ID)
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = g.AddEdge(n[0].ID, core.NodeID(999))
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	e := mustEdge(t, g, n[0], n[1])
	assert.Equal(t, "e1", e.ID)
	assert.False(t, e.Directed)

	_, err = g.AddEdge(n[0].ID, n[1].ID)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
	_, err = g.AddEdge(n[1].ID, n[0].ID)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_DirectedRejectsReverse(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	n := mustNodes(t, g, 2)

	e := mustEdge(t, g, n[0], n[1])
	assert.True(t, e.Directed)
	assert.True(t, g.HasEdge(n[0].ID, n[1].ID))
	assert.False(t, g.HasEdge(n[1].ID, n[0].ID))

	_, err := g.AddEdge(n[1].ID, n[0].ID)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestSetDirected_RetroApplies(t *testing.T) {
	g := core.NewGraph()
	n := mustNodes(t, g, 3)
	mustEdge(t, g, n[0], n[1])
	mustEdge(t, g, n[1], n[2])

	g.SetDirected(true)
	assert.True(t, g.Directed())
	for _, e := range g.Edges() {
		assert.True(t, e.Directed, e.ID)
	}
	stats := g.Stats()
	assert.Equal(t, 2, stats.DirectedEdgeCount)
	assert.Zero(t, stats.UndirectedEdgeCount)

	g.SetDirected(false)
	for _, e := range g.Edges() {
		assert.False(t, e.Directed, e.ID)
	}
	assert.Equal(t, n[0].ID, g.Edges()[0].From, "endpoints untouched")
}

func TestClear_KeepsCountersAndNotifies(t *testing.T) {
	var removed []core.NodeID
	g := core.NewGraph(
		core.WithDirected(true),
		core.WithOnRemove(func(ids []core.NodeID) { removed = append(removed, ids...) }),
	)
	n := mustNodes(t, g, 2)
	mustEdge(t, g, n[0], n[1])

	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.Directed(), "configuration survives Clear")
	assert.ElementsMatch(t, []core.NodeID{n[0].ID, n[1].ID}, removed)

	c, err := g.AddNode(gridOrigin, gridOrigin)
	require.NoError(t, err)
	assert.Equal(t, "C", c.Label)
	assert.Greater(t, uint64(c.ID), uint64(n[1].ID))

	d, err := g.AddNode(gridOrigin+gridStep, gridOrigin)
	require.NoError(t, err)
	e := mustEdge(t, g, c, d)
	assert.Equal(t, "e2", e.ID)
}

func TestSnapshot_IsIndependent(t *testing.T) {
	g := core.NewGraph()
	n := mustNodes(t, g, 2)
	mustEdge(t, g, n[0], n[1])

	s := g.Snapshot()
	require.NoError(t, g.RemoveNode(n[1].ID))

	assert.Len(t, s.Nodes, 2)
	assert.Len(t, s.Edges, 1)
	assert.Equal(t, "B", s.Label(n[1].ID))
	assert.Equal(t, map[core.NodeID]int{n[0].ID: 0, n[1].ID: 1}, s.NodeIndex())
	assert.Equal(t, core.NodeID(42).String(), s.Label(42))
}

func TestNodeByLabel(t *testing.T) {
	g := core.NewGraph()
	n := mustNodes(t, g, 3)

	got, ok := g.NodeByLabel("B")
	require.True(t, ok)
	assert.Equal(t, n[1], got)

	_, ok = g.NodeByLabel("Z")
	assert.False(t, ok)
}

// TestConcurrentMutations drives AddNode, AddEdge and readers from many
// goroutines; the race detector does the checking.
func TestConcurrentMutations(t *testing.T) {
	g := core.NewGraph(core.WithBounds(0, 0, 10000, 10000), core.WithMinSeparation(1))
	const workers = 50

	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddNode(float64(i*10+5), float64(i*10+5))
		}(i)
		go func() {
			defer wg.Done()
			nodes := g.Nodes()
			if len(nodes) >= 2 {
				_, _ = g.AddEdge(nodes[0].ID, nodes[len(nodes)-1].ID)
			}
			_ = g.Snapshot()
			_ = g.Stats()
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, g.NodeCount())
	assert.LessOrEqual(t, g.EdgeCount(), workers-1)
}
