package classify

import (
	"context"
	"strconv"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/dfs"
)

// SourceStructural tags predictions made by Structural.
const SourceStructural = "structural"

// Structural classifies encoded graphs from their structure alone:
//
//   - any cycle → Cyclic (a 2-cycle from one undirected edge does not count;
//     directed graphs are checked by attempting a topological order);
//   - undirected, acyclic and connected → Tree;
//   - directed, acyclic, a single root and in-degree ≤ 1 everywhere → Tree;
//   - directed and acyclic otherwise → DAG;
//   - anything else (empty graph, undirected forest) → Unknown.
//
// Requests carry no directedness flag; a pair list where every [a,b] has a
// matching [b,a] is treated as undirected.
type Structural struct{}

// Classify implements Classifier.
func (Structural) Classify(_ context.Context, req Request) (Prediction, error) {
	snap, directed := decode(req)
	p := Prediction{Type: Unknown, Label: LabelNone, Confidence: 1, Source: SourceStructural}
	if len(snap.Nodes) == 0 {
		return p, nil
	}

	if directed {
		_, err := dfs.TopologicalOrder(core.BuildAdjacency(snap))
		switch {
		case err != nil:
			p.Type, p.Label = Cyclic, LabelCyclic
		case arborescence(snap):
			p.Type, p.Label = Tree, LabelTree
		default:
			p.Type, p.Label = DAG, LabelDAG
		}
		return p, nil
	}

	switch {
	case dfs.HasCycle(snap):
		p.Type, p.Label = Cyclic, LabelCyclic
	case len(snap.Edges) == len(snap.Nodes)-1:
		p.Type, p.Label = Tree, LabelTree
	}

	return p, nil
}

// decode rebuilds a snapshot from index pairs. Node i gets id i+1.
func decode(req Request) (core.Snapshot, bool) {
	snap := core.Snapshot{Nodes: make([]core.Node, req.NodeCount)}
	for i := range snap.Nodes {
		snap.Nodes[i] = core.Node{ID: core.NodeID(i + 1)}
	}

	arcs := make(map[[2]int]bool, len(req.Edges))
	for _, p := range req.Edges {
		arcs[p] = true
	}
	directed := false
	for p := range arcs {
		if !arcs[[2]int{p[1], p[0]}] {
			directed = true
			break
		}
	}

	done := make(map[[2]int]bool, len(req.Edges))
	for _, p := range req.Edges {
		if p[0] < 0 || p[1] < 0 || p[0] >= req.NodeCount || p[1] >= req.NodeCount {
			continue
		}
		key := p
		if !directed && key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if done[key] {
			continue
		}
		done[key] = true
		snap.Edges = append(snap.Edges, core.Edge{
			ID:       "e" + strconv.Itoa(len(snap.Edges)+1),
			From:     core.NodeID(p[0] + 1),
			To:       core.NodeID(p[1] + 1),
			Directed: directed,
		})
	}
	snap.Directed = directed

	return snap, directed
}

// arborescence reports whether an acyclic directed snapshot is a rooted tree.
func arborescence(s core.Snapshot) bool {
	if len(s.Edges) != len(s.Nodes)-1 {
		return false
	}
	in := make(map[core.NodeID]int, len(s.Nodes))
	for _, e := range s.Edges {
		in[e.To]++
		if in[e.To] > 1 {
			return false
		}
	}

	return len(s.Nodes)-len(in) == 1
}
