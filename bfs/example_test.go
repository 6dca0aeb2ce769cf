package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/bfs"
	"github.com/katalvlaran/lvwalk/core"
)

// ExampleNew prints every step of a breadth-first walk over A–B, A–C.
func ExampleNew() {
	g := core.NewGraph()
	a, _ := g.AddNode(100, 100)
	b, _ := g.AddNode(200, 100)
	c, _ := g.AddNode(100, 200)
	g.AddEdge(a.ID, b.ID)
	g.AddEdge(a.ID, c.ID)

	snap := g.Snapshot()
	w := bfs.New(core.BuildAdjacency(snap), a.ID)
	for s, ok := w.Next(); ok; s, ok = w.Next() {
		var queue []string
		for _, id := range s.Frontier {
			queue = append(queue, snap.Label(id))
		}
		fmt.Println(s.Kind, snap.Label(s.Node), queue)
	}

	// Output:
	// visit A []
	// explore B [B]
	// explore C [B C]
	// visit B [C]
	// visit C []
	// complete A []
}
