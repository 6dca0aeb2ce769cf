package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// ExampleGraph demonstrates node placement, pairwise edge creation and removal.
func ExampleGraph() {
	g := core.NewGraph()

	a, _ := g.AddNode(100, 100)
	b, _ := g.AddNode(200, 100)
	_, err := g.AddNode(110, 110)
	fmt.Println("too close:", err)

	g.ToggleSelection(a.ID)
	out, e, _ := g.ToggleSelection(b.ID)
	fmt.Println(out, e.ID, a.Label+"-"+b.Label)

	_ = g.RemoveNode(a.ID)
	fmt.Println(g.NodeCount(), g.EdgeCount())

	// Output:
	// too close: core: position too close to an existing node
	// paired e1 A-B
	// 1 0
}

// ExampleBuildAdjacency shows the neighbor order of an undirected snapshot.
func ExampleBuildAdjacency() {
	g := core.NewGraph()
	a, _ := g.AddNode(100, 100)
	b, _ := g.AddNode(200, 100)
	c, _ := g.AddNode(300, 100)
	g.AddEdge(a.ID, c.ID)
	g.AddEdge(b.ID, a.ID)

	s := g.Snapshot()
	adj := core.BuildAdjacency(s)
	for _, id := range adj.Nodes() {
		var nbrs []string
		for _, nb := range adj.Neighbors(id) {
			nbrs = append(nbrs, s.Label(nb))
		}
		fmt.Println(s.Label(id), nbrs)
	}

	// Output:
	// A [C B]
	// B [A]
	// C [A]
}
