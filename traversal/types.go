package traversal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvwalk/core"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unsupported names.
var ErrUnknownAlgorithm = errors.New("traversal: unknown algorithm")

// Kind classifies a Step.
type Kind string

const (
	// KindVisit marks a node being popped from the frontier and visited.
	KindVisit Kind = "visit"
	// KindExplore marks a neighbor being pushed onto the frontier.
	KindExplore Kind = "explore"
	// KindComplete is the terminal step of every walk.
	KindComplete Kind = "complete"
)

// Algorithm names a walk strategy.
type Algorithm string

const (
	// BFS walks with a FIFO queue.
	BFS Algorithm = "bfs"
	// DFS walks with a LIFO stack.
	DFS Algorithm = "dfs"
)

// ParseAlgorithm accepts "bfs" or "dfs" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case BFS:
		return BFS, nil
	case DFS:
		return DFS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Valid reports whether a is BFS or DFS.
func (a Algorithm) Valid() bool { return a == BFS || a == DFS }

// FrontierName is the display name of a's frontier collection.
func (a Algorithm) FrontierName() string {
	if a == DFS {
		return "Stack"
	}

	return "Queue"
}

// String returns the upper-case display name ("BFS", "DFS").
func (a Algorithm) String() string { return strings.ToUpper(string(a)) }

// Step is one snapshot of traversal progress.
//
// Frontier lists the queue front-to-back (BFS) or the stack bottom-to-top
// (DFS). Visited and Path both list visited nodes in visitation order; Path
// is the walk's output, Visited is the membership set rendered as a slice.
type Step struct {
	Index     int           `json:"index"`
	Kind      Kind          `json:"kind"`
	Node      core.NodeID   `json:"node"`
	Depth     int           `json:"depth"`
	Algorithm Algorithm     `json:"algorithm"`
	Frontier  []core.NodeID `json:"frontier"`
	Visited   []core.NodeID `json:"visited"`
	Path      []core.NodeID `json:"path"`
}

// Terminal reports whether s is the complete step.
func (s Step) Terminal() bool { return s.Kind == KindComplete }

// IsVisited reports whether id was visited at the time s was emitted.
func (s Step) IsVisited(id core.NodeID) bool {
	for _, v := range s.Visited {
		if v == id {
			return true
		}
	}

	return false
}

// InFrontier reports whether id was pending in the frontier when s was emitted.
func (s Step) InFrontier(id core.NodeID) bool {
	for _, f := range s.Frontier {
		if f == id {
			return true
		}
	}

	return false
}

// Sequence is a lazy, pull-based stream of Steps. After the complete step
// has been returned, Next reports false forever.
type Sequence interface {
	Next() (Step, bool)
}

// Hook observes a walker event: the node involved and its discovery depth.
// Hooks run synchronously inside Next and cannot abort the walk.
type Hook func(id core.NodeID, depth int)

// Options holds walker hooks.
type Options struct {
	// OnVisit is called when a node is visited.
	OnVisit Hook

	// OnExplore is called when a node is pushed onto the frontier.
	OnExplore Hook
}

// Option configures walker behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnVisit:   func(core.NodeID, int) {},
		OnExplore: func(core.NodeID, int) {},
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExplore registers a callback to run on frontier push.
func WithOnExplore(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}
