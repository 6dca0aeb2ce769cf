// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount and the
//       directed-mode toggle. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (adjacency order depends on it).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "strconv"

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects from and to using the graph's current mode.
//
// Steps:
//  1. Reject from == to (ErrSelfLoop).
//  2. Under the write lock, verify both endpoints exist (ErrNodeNotFound).
//  3. Reject if any edge already joins the pair in either orientation
//     (ErrDuplicateEdge). The reverse check applies in directed mode too, so
//     a later switch to undirected mode can never produce two equal edges.
//  4. Append the edge with Directed = current mode.
//
// Complexity: O(E) for the duplicate scan.
func (g *Graph) AddEdge(from, to NodeID) (Edge, error) {
	if from == to {
		return Edge{}, ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(from, to)
}

// addEdgeLocked implements AddEdge. Caller must hold the write lock.
func (g *Graph) addEdgeLocked(from, to NodeID) (Edge, error) {
	if from == to {
		return Edge{}, ErrSelfLoop
	}
	if _, ok := g.index[from]; !ok {
		return Edge{}, ErrNodeNotFound
	}
	if _, ok := g.index[to]; !ok {
		return Edge{}, ErrNodeNotFound
	}
	for _, e := range g.edges {
		if e.Connects(from, to) {
			return Edge{}, ErrDuplicateEdge
		}
	}

	e := Edge{ID: g.nextEdgeID(), From: from, To: to, Directed: g.directed}
	g.edges = append(g.edges, e)

	return e, nil
}

// HasEdge reports whether an edge joins a and b. Directed edges only match
// in their own orientation; undirected edges match either way.
func (g *Graph) HasEdge(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.From == a && e.To == b {
			return true
		}
		if !e.Directed && e.From == b && e.To == a {
			return true
		}
	}

	return false
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// SetDirected switches the edge mode and rewrites every existing edge's
// Directed flag to match. Endpoints and order are untouched.
// Complexity: O(E).
func (g *Graph) SetDirected(directed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.directed = directed
	for i := range g.edges {
		g.edges[i].Directed = directed
	}
}

// nextEdgeID returns the next textual edge id. Caller must hold the write lock.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}
