// Package session adapts the graph model and the playback controller to the
// pointer-driven intents of a renderer, and wires graph removals into
// playback invalidation.
//
// Intents:
//
//	CanvasClicked(x, y)     → core.Graph.AddNode
//	NodeClicked(id)         → core.Graph.ToggleSelection
//	NodeDoubleClicked(id)   → core.Graph.RemoveNode
//
// When a node is destroyed the session clears it as start node and stops a
// run whose snapshot contains it. Clear resets playback entirely.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/classify"
	"github.com/katalvlaran/lvwalk/config"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/playback"
	"github.com/katalvlaran/lvwalk/traversal"
)

// ErrEmptyGraph is returned by Classify when the graph has no nodes.
var ErrEmptyGraph = errors.New("session: graph is empty")

type subscriber struct {
	id uint64
	fn func(View)
}

// View is everything a renderer needs for one frame.
type View struct {
	Graph    core.Snapshot     `json:"graph"`
	Playback playback.Snapshot `json:"playback"`
	Stats    core.GraphStats   `json:"stats"`
}

// Option configures a Session.
type Option func(*Session)

// WithClassifier injects the classification collaborator. The default is
// classify.Structural.
func WithClassifier(c classify.Classifier) Option {
	return func(s *Session) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithLogger sets the structured logger used by the session and its controller.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGraphOptions passes options to the underlying core.Graph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(s *Session) { s.graphOpts = append(s.graphOpts, opts...) }
}

// WithPlaybackOptions passes options to the underlying playback.Controller.
func WithPlaybackOptions(opts ...playback.Option) Option {
	return func(s *Session) { s.playOpts = append(s.playOpts, opts...) }
}

// Session owns one graph and one controller.
type Session struct {
	graph      *core.Graph
	ctrl       *playback.Controller
	classifier classify.Classifier
	logger     *slog.Logger

	graphOpts []core.GraphOption
	playOpts  []playback.Option

	mu      sync.Mutex
	subs    []subscriber
	nextSub uint64

	// notify serializes view deliveries; lastSeq is the playback Seq of the
	// newest view sent
	notify  sync.Mutex
	lastSeq uint64
}

// New builds a Session.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		classifier: classify.Structural{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.graph = core.NewGraph(append(s.graphOpts, core.WithOnRemove(s.nodesRemoved))...)
	ctrl, err := playback.New(s.graph, append([]playback.Option{playback.WithLogger(s.logger)}, s.playOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.ctrl = ctrl
	s.ctrl.Subscribe(func(ps playback.Snapshot) { s.publish(ps) })

	return s, nil
}

// FromSettings builds a Session configured by st.
func FromSettings(st config.Settings, opts ...Option) (*Session, error) {
	base := []Option{
		WithGraphOptions(st.GraphOptions()...),
		WithPlaybackOptions(
			playback.WithAlgorithm(st.Algorithm()),
			playback.WithDelay(st.Playback.Delay),
		),
	}

	return New(append(base, opts...)...)
}

// Graph returns the underlying graph.
func (s *Session) Graph() *core.Graph { return s.graph }

// Controller returns the underlying playback controller.
func (s *Session) Controller() *playback.Controller { return s.ctrl }

// CanvasClicked places a node at (x, y).
func (s *Session) CanvasClicked(x, y float64) (core.Node, error) {
	n, err := s.graph.AddNode(x, y)
	if err != nil {
		s.logger.Debug("node rejected", "x", x, "y", y, "reason", err)
		return n, err
	}
	s.logger.Debug("node added", "node", n.ID.String(), "label", n.Label)
	s.publishCurrent()

	return n, nil
}

// NodeClicked advances the two-slot selection; a completed pair creates an edge.
func (s *Session) NodeClicked(id core.NodeID) (core.SelectOutcome, *core.Edge, error) {
	out, e, err := s.graph.ToggleSelection(id)
	if out != core.SelectIgnored {
		s.publishCurrent()
	}
	if e != nil {
		s.logger.Debug("edge added", "edge", e.ID, "from", e.From.String(), "to", e.To.String())
	}

	return out, e, err
}

// NodeDoubleClicked removes a node, its edges and any playback reference to it.
func (s *Session) NodeDoubleClicked(id core.NodeID) error {
	if err := s.graph.RemoveNode(id); err != nil {
		return err
	}
	s.publishCurrent()

	return nil
}

// AddEdge connects two nodes directly, bypassing the selection.
func (s *Session) AddEdge(from, to core.NodeID) (core.Edge, error) {
	e, err := s.graph.AddEdge(from, to)
	if err != nil {
		return e, err
	}
	s.publishCurrent()

	return e, nil
}

// SetStart designates the start node of the next run.
func (s *Session) SetStart(id core.NodeID) error {
	if !s.graph.HasNode(id) {
		return core.ErrNodeNotFound
	}
	s.ctrl.SetStart(id)

	return nil
}

// Play starts a run; see playback.Controller.Play.
func (s *Session) Play() { s.ctrl.Play() }

// Pause pauses a run.
func (s *Session) Pause() { s.ctrl.Pause() }

// Resume resumes a paused run.
func (s *Session) Resume() { s.ctrl.Resume() }

// StepOnce advances a paused run by one step.
func (s *Session) StepOnce() { s.ctrl.StepOnce() }

// Stop discards the current run.
func (s *Session) Stop() { s.ctrl.Stop() }

// Reset discards the current run and the start node.
func (s *Session) Reset() { s.ctrl.Reset() }

// SetDirected switches the edge mode of the graph.
func (s *Session) SetDirected(directed bool) {
	s.graph.SetDirected(directed)
	s.publishCurrent()
}

// SetAlgorithm selects the algorithm for the next run.
func (s *Session) SetAlgorithm(alg traversal.Algorithm) error { return s.ctrl.SetAlgorithm(alg) }

// SetDelay changes the pump delay.
func (s *Session) SetDelay(d time.Duration) error { return s.ctrl.SetDelay(d) }

// Clear empties the graph and resets playback.
func (s *Session) Clear() {
	s.graph.Clear()
	s.ctrl.Reset()
	s.logger.Info("graph cleared")
}

// LoadPreset replaces the graph with the preset topology. A preset that does
// not fit the canvas leaves the graph empty.
func (s *Session) LoadPreset(p builder.Preset) error {
	if _, err := p.Constructor(); err != nil {
		return err
	}
	s.graph.Clear()
	s.ctrl.Reset()
	if err := p.Apply(s.graph); err != nil {
		s.graph.Clear()
		s.publishCurrent()
		s.logger.Warn("preset rejected", "kind", p.Kind, "error", err)
		return err
	}
	s.logger.Info("preset loaded", "kind", p.Kind, "nodes", s.graph.NodeCount())
	s.publishCurrent()

	return nil
}

// Apply applies the runtime-adjustable settings: edge mode, algorithm and delay.
// Canvas geometry is fixed when the session is created.
func (s *Session) Apply(st config.Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if err := s.ctrl.SetAlgorithm(st.Algorithm()); err != nil {
		return err
	}
	if err := s.ctrl.SetDelay(st.Playback.Delay); err != nil {
		return err
	}
	if s.graph.Directed() != st.Graph.Directed {
		s.SetDirected(st.Graph.Directed)
	}
	s.logger.Info("settings applied",
		"algorithm", st.Playback.Algorithm,
		"delay", st.Playback.Delay,
		"directed", st.Graph.Directed)

	return nil
}

// Classify encodes the current graph and asks the classifier about it.
// An empty graph yields ErrEmptyGraph. Classifier errors are returned as is
// and leave graph and playback state alone.
func (s *Session) Classify(ctx context.Context) (classify.Prediction, error) {
	p, _, err := s.ClassifyGraph(ctx)

	return p, err
}

// ClassifyGraph is Classify that also returns the request it sent, so callers
// can describe exactly the graph that was classified.
func (s *Session) ClassifyGraph(ctx context.Context) (classify.Prediction, classify.Request, error) {
	snap := s.graph.Snapshot()
	if len(snap.Nodes) == 0 {
		return classify.Prediction{}, classify.Request{}, ErrEmptyGraph
	}
	req := classify.Encode(snap)
	p, err := s.classifier.Classify(ctx, req)
	if err != nil {
		s.logger.Warn("classification unavailable", "error", err)
		return classify.Prediction{}, req, err
	}

	return p, req, nil
}

// View returns the current frame.
func (s *Session) View() View {
	return s.view(s.ctrl.Snapshot())
}

// Subscribe registers fn to receive a View after every change. Calls are
// serialized and never go back in playback Seq; fn must not mutate the
// session. The returned function unregisters it.
func (s *Session) Subscribe(fn func(View)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// nodesRemoved is the graph's removal observer.
func (s *Session) nodesRemoved(ids []core.NodeID) {
	stop := false
	for _, id := range ids {
		if s.ctrl.ClearStartIf(id) {
			s.logger.Info("start node removed", "node", id.String())
		}
		if s.ctrl.References(id) {
			stop = true
		}
	}
	if stop {
		s.logger.Info("run invalidated by node removal", "nodes", len(ids))
		s.ctrl.Stop()
	}
}

func (s *Session) view(ps playback.Snapshot) View {
	return View{
		Graph:    s.graph.Snapshot(),
		Playback: ps,
		Stats:    *s.graph.Stats(),
	}
}

// publish delivers a view built from a controller snapshot. Views go out one
// at a time; a snapshot older than the last delivered view is dropped.
func (s *Session) publish(ps playback.Snapshot) {
	s.notify.Lock()
	defer s.notify.Unlock()
	s.deliverLocked(ps)
}

// publishCurrent delivers a view of the graph and controller as they are now.
func (s *Session) publishCurrent() {
	s.notify.Lock()
	defer s.notify.Unlock()
	s.deliverLocked(s.ctrl.Snapshot())
}

func (s *Session) deliverLocked(ps playback.Snapshot) {
	if ps.Seq < s.lastSeq {
		return
	}
	s.lastSeq = ps.Seq

	s.mu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	if len(subs) == 0 {
		return
	}

	v := s.view(ps)
	for _, sub := range subs {
		sub.fn(v)
	}
}
