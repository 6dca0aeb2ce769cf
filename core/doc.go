// Package core provides the thread-safe in-memory Graph behind the
// visualizer, with a mutation API shaped for pointer-driven editors.
//
// The Graph G = (V,E) keeps:
//
//   - Nodes with a canvas position and a display label ("A", "B", ..., "Z",
//     "AA", ...), issued in creation order and never reused.
//   - Edges between two distinct nodes, at most one per unordered pair,
//     each carrying the Directed flag of the graph's current mode.
//   - A two-slot selection used to create edges by clicking two nodes.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)         initial edge mode
//	– WithBounds(minX, minY, maxX, maxY)  admissible node rectangle (border excluded)
//	– WithMinSeparation(r float64)        minimum distance between node centres
//	– WithOnRemove(fn RemoveFunc)         observer of destroyed node ids
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(x, y float64) (Node, error)   // ErrOutOfBounds, ErrTooClose
//	RemoveNode(id NodeID) error           // cascades edges and selection
//
//	// Edge lifecycle
//	AddEdge(from, to NodeID) (Edge, error) // ErrSelfLoop, ErrDuplicateEdge, ErrNodeNotFound
//	ToggleSelection(id NodeID) (SelectOutcome, *Edge, error)
//	SetDirected(directed bool)            // retro-applies to every edge
//
//	// Query
//	Nodes(), Edges(), Selection(), Snapshot(), Stats()
//
//	// Maintenance
//	Clear()                               // counters are not rewound
//
// Spatial admission uses an R-tree (github.com/dhconnelly/rtreego) to find
// candidate neighbours and github.com/paulmach/orb/planar for the exact
// distance test.
//
// BuildAdjacency turns a Snapshot into the neighbor index consumed by the
// bfs and dfs walkers: every node is present, neighbor order follows edge
// insertion order, and undirected edges are listed in both directions.
package core
