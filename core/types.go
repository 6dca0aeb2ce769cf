// Package core defines the central Graph, Node, and Edge types of the
// visualizer, together with the mutation protocol used by pointer-driven
// editors: node placement with spatial admission, pairwise edge creation
// through a two-slot selection, cascading removal and the directed-mode toggle.
//
// This file declares Node, Edge, Graph, GraphOption, the rejection
// sentinels, and the NewGraph constructor.
//
// Errors:
//
//	ErrOutOfBounds    - node position lies outside the canvas bounds.
//	ErrTooClose       - node position is within the minimum separation of another node.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrSelfLoop       - edge endpoints are identical.
//	ErrDuplicateEdge  - an edge between the same endpoints already exists.
package core

import (
	"errors"
	"strconv"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Sentinel errors for rejected graph mutations. A rejection never changes
// graph state.
var (
	// ErrOutOfBounds indicates AddNode was called with a position outside the canvas.
	ErrOutOfBounds = errors.New("core: position out of bounds")

	// ErrTooClose indicates AddNode was called within the minimum separation of an existing node.
	ErrTooClose = errors.New("core: position too close to an existing node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge from a node to itself was attempted.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge between the same endpoints already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// IsRejection reports whether err is one of the named mutation rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrTooClose) ||
		errors.Is(err, ErrNodeNotFound) ||
		errors.Is(err, ErrSelfLoop) ||
		errors.Is(err, ErrDuplicateEdge)
}

// NodeID identifies a node within its Graph. IDs are assigned at creation,
// start at 1 and are never reused, not even after Clear. The zero value means
// "no node".
type NodeID uint64

// String renders the id as "n<decimal>".
func (id NodeID) String() string {
	return "n" + strconv.FormatUint(uint64(id), 10)
}

// Valid reports whether id is non-zero.
func (id NodeID) Valid() bool { return id != 0 }

// Node is a placed vertex. X and Y are only used for spatial admission and by
// renderers; traversal never looks at them.
type Node struct {
	ID    NodeID  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Edge connects two nodes.
//
// ID is a stable textual key ("e1", "e2", ...). Directed edges are traversed
// From→To only; undirected edges in both directions.
type Edge struct {
	ID       string `json:"id"`
	From     NodeID `json:"from"`
	To       NodeID `json:"to"`
	Directed bool   `json:"directed"`
}

// Connects reports whether e joins a and b in either orientation.
func (e Edge) Connects(a, b NodeID) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Touches reports whether id is one of e's endpoints.
func (e Edge) Touches(id NodeID) bool {
	return e.From == id || e.To == id
}

// Default canvas geometry: an 800×500 drawing surface with a 25-unit margin
// and a 60-unit minimum distance between node centres.
const (
	DefaultCanvasWidth   = 800.0
	DefaultCanvasHeight  = 500.0
	DefaultMargin        = 25.0
	DefaultMinSeparation = 60.0
)

// RemoveFunc observes node removal. It receives the ids of every node
// destroyed by one RemoveNode or Clear call and runs after the graph lock
// has been released.
type RemoveFunc func(removed []NodeID)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the initial edge mode (true = new edges are directed).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithBounds sets the admissible rectangle for node positions. The border
// itself is outside.
// An inverted rectangle is normalized.
func WithBounds(minX, minY, maxX, maxY float64) GraphOption {
	return func(g *Graph) {
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		g.bounds = orb.Bound{Min: orb.Point{minX, minY}, Max: orb.Point{maxX, maxY}}
	}
}

// WithMinSeparation sets the minimum distance between node centres.
// Zero or negative disables the check.
func WithMinSeparation(r float64) GraphOption {
	return func(g *Graph) {
		if r < 0 {
			r = 0
		}
		g.minSep = r
	}
}

// WithOnRemove registers an observer notified after nodes are destroyed.
// Multiple observers run in registration order.
func WithOnRemove(fn RemoveFunc) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.onRemove = append(g.onRemove, fn)
		}
	}
}

// Graph is the single source of truth for the visualizer's topology.
//
// Nodes and edges are kept in insertion order: node order drives labels and
// the classification index encoding, edge order drives adjacency order.
// All methods are safe for concurrent use; mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	directed bool      // mode applied to new edges
	bounds   orb.Bound // admissible node positions
	minSep   float64   // minimum centre distance

	// Storage
	nodes     []Node             // insertion order
	index     map[NodeID]int     // id → position in nodes
	edges     []Edge             // insertion order
	selection []NodeID           // pending pair, selection order
	spatial   *rtreego.Rtree     // node positions for proximity queries
	entries   map[NodeID]*anchor // id → spatial entry (for deletion)

	// Counters, never rewound
	nodeSeq uint64
	edgeSeq uint64
	created int // labels issued so far

	onRemove []RemoveFunc
}

// NewGraph creates an empty Graph. By default it is undirected, uses the
// 800×500 canvas with a 25-unit margin, and a minimum separation of 60.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		bounds: orb.Bound{
			Min: orb.Point{DefaultMargin, DefaultMargin},
			Max: orb.Point{DefaultCanvasWidth - DefaultMargin, DefaultCanvasHeight - DefaultMargin},
		},
		minSep:  DefaultMinSeparation,
		index:   make(map[NodeID]int),
		spatial: newSpatialTree(),
		entries: make(map[NodeID]*anchor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
