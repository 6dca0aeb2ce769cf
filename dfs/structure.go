// File: structure.go
// Role: Colour-marking structure checks over an adjacency snapshot:
//       cycle detection (directed and undirected) and topological order.
// Determinism:
//   - Roots are tried in adjacency node order, neighbors in adjacency order.

package dfs

import (
	"errors"

	"github.com/katalvlaran/lvwalk/core"
)

// ErrCycleDetected indicates that a cycle was encountered during TopologicalOrder.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// Vertex colours for structure checks.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// HasCycle reports whether s contains a cycle. Directed edges are followed
// From→To only; for undirected edges the single edge back to the parent is
// not counted.
//
// Complexity: O(V + E).
func HasCycle(s core.Snapshot) bool {
	out := make(map[core.NodeID][]link, len(s.Nodes))
	for _, e := range s.Edges {
		out[e.From] = append(out[e.From], link{to: e.To, edge: e.ID})
		if !e.Directed {
			out[e.To] = append(out[e.To], link{to: e.From, edge: e.ID})
		}
	}

	state := make(map[core.NodeID]int, len(s.Nodes))
	for _, n := range s.Nodes {
		if state[n.ID] == White && cycleFrom(n.ID, "", out, state) {
			return true
		}
	}

	return false
}

// link is one traversable direction of an edge.
type link struct {
	to   core.NodeID
	edge string
}

// cycleFrom runs the Gray/Black visit from id; via is the edge used to
// enter id, which an undirected walk must not immediately reuse.
func cycleFrom(id core.NodeID, via string, out map[core.NodeID][]link, state map[core.NodeID]int) bool {
	state[id] = Gray
	for _, l := range out[id] {
		if l.edge == via {
			continue
		}
		switch state[l.to] {
		case Gray:
			return true
		case White:
			if cycleFrom(l.to, l.edge, out, state) {
				return true
			}
		}
	}
	state[id] = Black

	return false
}

// TopologicalOrder returns the nodes of adj ordered so that every arc u→v
// places u before v. It is meaningful for directed snapshots; an undirected
// edge appears as a 2-cycle and yields ErrCycleDetected.
//
// Implementation:
//   - Stage 1: Depth-first from every White node in adjacency order,
//     recording post-order.
//   - Stage 2: A Gray neighbor is a back edge → ErrCycleDetected.
//   - Stage 3: Reverse the post-order.
//
// Complexity: O(V + E).
func TopologicalOrder(adj *core.Adjacency) ([]core.NodeID, error) {
	nodes := adj.Nodes()
	state := make(map[core.NodeID]int, len(nodes))
	order := make([]core.NodeID, 0, len(nodes))

	var visit func(id core.NodeID) error
	visit = func(id core.NodeID) error {
		state[id] = Gray
		for _, nb := range adj.Neighbors(id) {
			switch state[nb] {
			case Gray:
				return ErrCycleDetected
			case White:
				if err := visit(nb); err != nil {
					return err
				}
			}
		}
		state[id] = Black
		order = append(order, id)

		return nil
	}

	for _, id := range nodes {
		if state[id] == White {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
