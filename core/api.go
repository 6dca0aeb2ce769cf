// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// Directed reports the current edge mode: the Directed flag given to new
// edges and, after SetDirected, to every existing edge.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// MinSeparation reports the minimum distance enforced between node centres.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) MinSeparation() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.minSep
}

// Bounds reports the admissible node rectangle as (minX, minY, maxX, maxY).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Bounds() (minX, minY, maxX, maxY float64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.bounds.Min[0], g.bounds.Min[1], g.bounds.Max[0], g.bounds.Max[1]
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Directed            bool `json:"directed"` // current edge mode
	NodeCount           int  `json:"node_count"`
	EdgeCount           int  `json:"edge_count"`
	DirectedEdgeCount   int  `json:"directed_edge_count"`
	UndirectedEdgeCount int  `json:"undirected_edge_count"`
	Pending             int  `json:"pending"` // nodes waiting in the selection
}

// Stats produces a deterministic snapshot of counts, classifying edges by
// their Directed flag.
//
// Implementation:
//   - Stage 1: Acquire the read lock, record mode and catalog sizes.
//   - Stage 2: Scan the edge list once to split directed and undirected counts.
//
// Complexity:
//   - Time O(E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:  g.directed,
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
		Pending:   len(g.selection),
	}
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}

	return &stats
}
