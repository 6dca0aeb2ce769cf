package render

import (
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/playback"
	"github.com/katalvlaran/lvwalk/traversal"
)

// NodeState is the visual class of a node.
type NodeState int

const (
	Unvisited NodeState = iota
	Selected
	InFrontier
	Visited
	Current
)

// String returns the legend name.
func (s NodeState) String() string {
	switch s {
	case Selected:
		return "selected"
	case InFrontier:
		return "frontier"
	case Visited:
		return "visited"
	case Current:
		return "current"
	default:
		return "unvisited"
	}
}

// MarshalText encodes the state by name.
func (s NodeState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// NodeView is a node together with its visual state.
type NodeView struct {
	core.Node
	State NodeState `json:"state"`
}

// EdgeView is an edge together with its activity flag.
type EdgeView struct {
	core.Edge
	Active bool `json:"active"`
}

// Frame is one renderable picture.
type Frame struct {
	Nodes    []NodeView             `json:"nodes"`
	Edges    []EdgeView             `json:"edges"`
	Directed bool                   `json:"directed"`
	Step     *traversal.Step        `json:"step,omitempty"`
	Labels   map[core.NodeID]string `json:"-"`
}

// DisplayedStep picks the step a renderer should show: the current step of a
// live run, otherwise the terminal step of a completed one.
func DisplayedStep(ps playback.Snapshot) *traversal.Step {
	if ps.Current != nil && !ps.Complete {
		return ps.Current
	}

	return ps.Final
}

// StateOf classifies id against step and the pending selection. A terminal
// step has no current node.
func StateOf(id core.NodeID, step *traversal.Step, selection []core.NodeID) NodeState {
	if step != nil {
		if !step.Terminal() && step.Node == id {
			return Current
		}
		if step.IsVisited(id) {
			return Visited
		}
		if step.InFrontier(id) {
			return InFrontier
		}
	}
	for _, s := range selection {
		if s == id {
			return Selected
		}
	}

	return Unvisited
}

// NewFrame builds the frame for snap with step on display (nil for none).
// Complexity: O(V·F + E·W) where F and W are the frontier and visited sizes
// of step.
func NewFrame(snap core.Snapshot, step *traversal.Step) Frame {
	f := Frame{
		Nodes:    make([]NodeView, len(snap.Nodes)),
		Edges:    make([]EdgeView, len(snap.Edges)),
		Directed: snap.Directed,
		Step:     step,
		Labels:   make(map[core.NodeID]string, len(snap.Nodes)),
	}
	for i, n := range snap.Nodes {
		f.Nodes[i] = NodeView{Node: n, State: StateOf(n.ID, step, snap.Selection)}
		f.Labels[n.ID] = n.Label
	}
	for i, e := range snap.Edges {
		active := step != nil && step.IsVisited(e.From) && step.IsVisited(e.To)
		f.Edges[i] = EdgeView{Edge: e, Active: active}
	}

	return f
}

// FromPlayback builds the frame for snap and the step ps displays.
func FromPlayback(snap core.Snapshot, ps playback.Snapshot) Frame {
	return NewFrame(snap, DisplayedStep(ps))
}

// Label returns the label of id, or id.String() when unknown to the frame.
func (f Frame) Label(id core.NodeID) string {
	if l, ok := f.Labels[id]; ok {
		return l
	}

	return id.String()
}

// Count returns how many nodes are in state s.
func (f Frame) Count(s NodeState) int {
	n := 0
	for _, v := range f.Nodes {
		if v.State == s {
			n++
		}
	}

	return n
}
