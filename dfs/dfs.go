package dfs

import (
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/traversal"
)

// Walker is a resumable depth-first step sequence. It is not safe for
// concurrent use; one consumer pulls steps with Next.
type Walker struct {
	adj   *core.Adjacency
	start core.NodeID
	opts  traversal.Options

	stack   []core.NodeID
	stacked map[core.NodeID]bool
	visited map[core.NodeID]bool
	order   []core.NodeID // visit order, doubles as the path
	depth   map[core.NodeID]int

	// reverse neighbor scan of the most recently visited node
	current   core.NodeID
	cursor    int
	expanding bool

	index int
	done  bool
}

// New returns a Walker over adj from start. Nothing is computed until the
// first call to Next.
func New(adj *core.Adjacency, start core.NodeID, opts ...traversal.Option) *Walker {
	n := adj.Len()
	w := &Walker{
		adj:     adj,
		start:   start,
		opts:    traversal.NewOptions(opts...),
		stack:   make([]core.NodeID, 0, n),
		stacked: make(map[core.NodeID]bool, n),
		visited: make(map[core.NodeID]bool, n),
		order:   make([]core.NodeID, 0, n),
		depth:   make(map[core.NodeID]int, n),
	}
	if adj.Has(start) {
		w.push(start, 0)
	}

	return w
}

// Start returns the start node the walker was created with.
func (w *Walker) Start() core.NodeID { return w.start }

// Done reports whether the complete step has been emitted.
func (w *Walker) Done() bool { return w.done }

// Next returns the next Step, or false once the walk is exhausted.
func (w *Walker) Next() (traversal.Step, bool) {
	if w.done {
		return traversal.Step{}, false
	}
	if s, ok := w.exploreNext(); ok {
		return s, true
	}
	if s, ok := w.visitNext(); ok {
		return s, true
	}
	w.done = true

	return w.emit(traversal.KindComplete, w.start, 0), true
}

// exploreNext pushes the next unseen neighbor of the current node, scanning
// the adjacency list from its end.
func (w *Walker) exploreNext() (traversal.Step, bool) {
	if !w.expanding {
		return traversal.Step{}, false
	}
	nbrs := w.adj.Neighbors(w.current)
	d := w.depth[w.current] + 1
	for w.cursor >= 0 {
		nb := nbrs[w.cursor]
		w.cursor--
		if w.visited[nb] || w.stacked[nb] {
			continue
		}
		w.push(nb, d)
		w.opts.OnExplore(nb, d)

		return w.emit(traversal.KindExplore, nb, d), true
	}
	w.expanding = false

	return traversal.Step{}, false
}

// visitNext pops stack entries until an unvisited one is found.
func (w *Walker) visitNext() (traversal.Step, bool) {
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		id := w.stack[top]
		w.stack = w.stack[:top]
		delete(w.stacked, id)
		if w.visited[id] {
			continue
		}
		w.visited[id] = true
		w.order = append(w.order, id)
		w.current, w.expanding = id, true
		w.cursor = len(w.adj.Neighbors(id)) - 1
		d := w.depth[id]
		w.opts.OnVisit(id, d)

		return w.emit(traversal.KindVisit, id, d), true
	}

	return traversal.Step{}, false
}

// push places id on the stack at depth d.
func (w *Walker) push(id core.NodeID, d int) {
	w.stack = append(w.stack, id)
	w.stacked[id] = true
	w.depth[id] = d
}

// emit snapshots walker state into a Step.
func (w *Walker) emit(kind traversal.Kind, id core.NodeID, d int) traversal.Step {
	s := traversal.Step{
		Index:     w.index,
		Kind:      kind,
		Node:      id,
		Depth:     d,
		Algorithm: traversal.DFS,
		Frontier:  traversal.Snapshot(w.stack),
		Visited:   traversal.Snapshot(w.order),
		Path:      traversal.Snapshot(w.order),
	}
	w.index++

	return s
}

var _ traversal.Sequence = (*Walker)(nil)
