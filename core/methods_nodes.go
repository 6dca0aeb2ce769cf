// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - Labels follow creation order and are never reissued.
//
// Concurrency:
//   - All state guarded by g.mu; removal observers run after the lock is released.
package core

import "github.com/paulmach/orb"

// AddNode places a new node at (x, y).
//
// Implementation:
//   - Stage 1: Reject positions outside the canvas bounds (ErrOutOfBounds).
//   - Stage 2: Reject positions closer than the minimum separation to any
//     existing node centre (ErrTooClose).
//   - Stage 3: Allocate the next id and label, append to the node list and
//     register the centre in the spatial index.
//
// Returns:
//   - Node: the created node (zero value on rejection).
//   - error: nil, ErrOutOfBounds or ErrTooClose. Graph state is unchanged on rejection.
//
// Complexity:
//   - Time O(log V + k) where k is the number of candidates in the separation square.
func (g *Graph) AddNode(x, y float64) (Node, error) {
	p := orb.Point{x, y}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inBounds(p) {
		return Node{}, ErrOutOfBounds
	}
	if g.crowded(p) {
		return Node{}, ErrTooClose
	}

	g.nodeSeq++
	n := Node{
		ID:    NodeID(g.nodeSeq),
		X:     x,
		Y:     y,
		Label: LabelFor(g.created),
	}
	g.created++

	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.place(n.ID, p)

	return n, nil
}

// RemoveNode deletes a node, every edge touching it, and its pending
// selection slot, then notifies removal observers.
//
// Implementation:
//   - Stage 1: Under the write lock verify presence (ErrNodeNotFound).
//   - Stage 2: Filter the edge list in place, preserving order of survivors.
//   - Stage 3: Drop the node from the node list, index, spatial index and selection.
//   - Stage 4: Release the lock and invoke observers with the removed id.
//
// Complexity:
//   - Time O(V + E).
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	pos, ok := g.index[id]
	if !ok {
		g.mu.Unlock()
		return ErrNodeNotFound
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if !e.Touches(id) {
			kept = append(kept, e)
		}
	}
	// zero the tail so removed edges are not retained by the backing array
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = Edge{}
	}
	g.edges = kept

	g.nodes = append(g.nodes[:pos], g.nodes[pos+1:]...)
	delete(g.index, id)
	for i := pos; i < len(g.nodes); i++ {
		g.index[g.nodes[i].ID] = i
	}
	g.unplace(id)
	g.dropSelected(id)

	observers := g.onRemove
	g.mu.Unlock()

	notify(observers, []NodeID{id})

	return nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[pos], true
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// NodeByLabel finds a node by its display label.
// Complexity: O(V).
func (g *Graph) NodeByLabel(label string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, n := range g.nodes {
		if n.Label == label {
			return n, true
		}
	}

	return Node{}, false
}

// Nodes returns a copy of the node list in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// notify runs observers outside of any graph lock.
func notify(observers []RemoveFunc, removed []NodeID) {
	if len(removed) == 0 {
		return
	}
	for _, fn := range observers {
		fn(removed)
	}
}
