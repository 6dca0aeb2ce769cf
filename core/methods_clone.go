// File: methods_clone.go
// Role: Snapshotting and clearing graph instances.
// Determinism:
//   - Snapshot carries nodes and edges in insertion order.
// Concurrency:
//   - Snapshot takes one read lock for a consistent view; Clear takes the write lock
//     and notifies removal observers after releasing it.

package core

// Snapshot is an immutable-by-convention value copy of the graph topology.
// Every downstream consumer (adjacency builder, classification encoder,
// renderers) works from a Snapshot so it never observes a half-applied mutation.
type Snapshot struct {
	Nodes     []Node   `json:"nodes"`
	Edges     []Edge   `json:"edges"`
	Directed  bool     `json:"directed"`
	Selection []NodeID `json:"selection"`
}

// NodeIndex maps every node id to its zero-based insertion position.
// Complexity: O(V).
func (s Snapshot) NodeIndex() map[NodeID]int {
	idx := make(map[NodeID]int, len(s.Nodes))
	for i, n := range s.Nodes {
		idx[n.ID] = i
	}

	return idx
}

// Label returns the label of id, or id.String() when it is not in the snapshot.
func (s Snapshot) Label(id NodeID) string {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n.Label
		}
	}

	return id.String()
}

// Snapshot returns a consistent copy of nodes, edges, mode and selection.
// Complexity: O(V + E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Snapshot{
		Nodes:     make([]Node, len(g.nodes)),
		Edges:     make([]Edge, len(g.edges)),
		Directed:  g.directed,
		Selection: make([]NodeID, len(g.selection)),
	}
	copy(s.Nodes, g.nodes)
	copy(s.Edges, g.edges)
	copy(s.Selection, g.selection)

	return s
}

// Clear empties nodes, edges and selection, keeps configuration, and
// notifies removal observers with every destroyed id. Id and label counters
// are not rewound.
// Complexity: O(V).
func (g *Graph) Clear() {
	g.mu.Lock()
	removed := make([]NodeID, len(g.nodes))
	for i, n := range g.nodes {
		removed[i] = n.ID
	}
	g.nodes = nil
	g.edges = nil
	g.selection = nil
	g.index = make(map[NodeID]int)
	g.spatial = newSpatialTree()
	g.entries = make(map[NodeID]*anchor)
	observers := g.onRemove
	g.mu.Unlock()

	notify(observers, removed)
}
