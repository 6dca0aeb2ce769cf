// File: adjacency.go
// Role: Adjacency Builder. Derives a directed neighbor index from a Snapshot.
// Determinism:
//   - Neighbor lists follow edge insertion order.
//   - Nodes() follows node insertion order.
// Policy:
//   - The index is rebuilt per traversal run and never patched; it shares no
//     memory with the Graph it came from.

package core

// Adjacency maps each node id to its ordered outgoing neighbor ids.
// It is read-only after BuildAdjacency returns.
type Adjacency struct {
	order     []NodeID
	neighbors map[NodeID][]NodeID
}

// BuildAdjacency derives the adjacency index of s.
//
// Implementation:
//   - Stage 1: Seed every node of the snapshot with an empty neighbor list.
//   - Stage 2: For each edge in insertion order append from→to, and to→from
//     when the edge is undirected. Edges whose endpoints are not in the
//     snapshot are skipped.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func BuildAdjacency(s Snapshot) *Adjacency {
	adj := &Adjacency{
		order:     make([]NodeID, 0, len(s.Nodes)),
		neighbors: make(map[NodeID][]NodeID, len(s.Nodes)),
	}
	for _, n := range s.Nodes {
		if _, dup := adj.neighbors[n.ID]; dup {
			continue
		}
		adj.order = append(adj.order, n.ID)
		adj.neighbors[n.ID] = nil
	}

	var ok bool
	for _, e := range s.Edges {
		if _, ok = adj.neighbors[e.From]; !ok {
			continue
		}
		if _, ok = adj.neighbors[e.To]; !ok {
			continue
		}
		adj.neighbors[e.From] = append(adj.neighbors[e.From], e.To)
		if !e.Directed {
			adj.neighbors[e.To] = append(adj.neighbors[e.To], e.From)
		}
	}

	return adj
}

// Has reports whether id is a node of the index.
func (a *Adjacency) Has(id NodeID) bool {
	if a == nil {
		return false
	}
	_, ok := a.neighbors[id]

	return ok
}

// Neighbors returns the outgoing neighbors of id in edge insertion order.
// The returned slice is shared with the index and must not be modified.
func (a *Adjacency) Neighbors(id NodeID) []NodeID {
	if a == nil {
		return nil
	}

	return a.neighbors[id]
}

// Nodes returns the indexed node ids in insertion order.
func (a *Adjacency) Nodes() []NodeID {
	if a == nil {
		return nil
	}
	out := make([]NodeID, len(a.order))
	copy(out, a.order)

	return out
}

// Len returns the number of indexed nodes.
func (a *Adjacency) Len() int {
	if a == nil {
		return 0
	}

	return len(a.order)
}

// Map returns an independent copy of the index, keyed by node id.
// Complexity: O(V + E).
func (a *Adjacency) Map() map[NodeID][]NodeID {
	if a == nil {
		return map[NodeID][]NodeID{}
	}
	out := make(map[NodeID][]NodeID, len(a.neighbors))
	for id, nbrs := range a.neighbors {
		cp := make([]NodeID, len(nbrs))
		copy(cp, nbrs)
		out[id] = cp
	}

	return out
}
