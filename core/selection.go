package core

// SelectOutcome names what ToggleSelection did.
type SelectOutcome int

const (
	// SelectIgnored means the call changed nothing (unknown node, or two
	// nodes already pending).
	SelectIgnored SelectOutcome = iota
	// SelectAdded means the node became the first pending selection.
	SelectAdded
	// SelectRemoved means an already pending node was deselected.
	SelectRemoved
	// SelectPaired means a second distinct node completed the pair, an edge
	// was attempted, and the selection was cleared.
	SelectPaired
)

// String returns the outcome name.
func (o SelectOutcome) String() string {
	switch o {
	case SelectAdded:
		return "added"
	case SelectRemoved:
		return "removed"
	case SelectPaired:
		return "paired"
	default:
		return "ignored"
	}
}

// maxSelection is the size of the pending pair.
const maxSelection = 2

// ToggleSelection applies the pairwise edge-creation protocol to id.
//
//   - id pending: it is deselected (SelectRemoved).
//   - two already pending: no-op (SelectIgnored).
//   - otherwise id is appended; when this completes a pair, AddEdge(first, id)
//     is attempted and the selection is cleared whether or not it succeeded
//     (SelectPaired). The created edge is returned, or the rejection error.
//
// Unknown ids yield SelectIgnored with ErrNodeNotFound.
func (g *Graph) ToggleSelection(id NodeID) (SelectOutcome, *Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; !ok {
		return SelectIgnored, nil, ErrNodeNotFound
	}
	for _, pending := range g.selection {
		if pending == id {
			g.dropSelected(id)
			return SelectRemoved, nil, nil
		}
	}
	if len(g.selection) >= maxSelection {
		return SelectIgnored, nil, nil
	}

	g.selection = append(g.selection, id)
	if len(g.selection) < maxSelection {
		return SelectAdded, nil, nil
	}

	from, to := g.selection[0], g.selection[1]
	g.selection = g.selection[:0]
	e, err := g.addEdgeLocked(from, to)
	if err != nil {
		return SelectPaired, nil, err
	}

	return SelectPaired, &e, nil
}

// Selection returns the pending node ids in selection order.
func (g *Graph) Selection() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, len(g.selection))
	copy(out, g.selection)

	return out
}

// ClearSelection drops any pending selection.
func (g *Graph) ClearSelection() {
	g.mu.Lock()
	g.selection = g.selection[:0]
	g.mu.Unlock()
}

// dropSelected removes id from the pending selection. Caller must hold the write lock.
func (g *Graph) dropSelected(id NodeID) {
	kept := g.selection[:0]
	for _, s := range g.selection {
		if s != id {
			kept = append(kept, s)
		}
	}
	g.selection = kept
}
