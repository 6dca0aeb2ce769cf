// File: controller.go
// Role: Playback Controller. Timed pump over a traversal.Sequence with
//       Idle/Playing/Paused/Stopped states and a Complete flag.
// Determinism:
//   - Steps come from a walker over a snapshot taken at Play; later graph
//     edits never leak into a running sequence.
// Concurrency:
//   - mu guards all fields. Timer callbacks and subscriber notifications run
//     on their own goroutines and never hold mu while calling out.

package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvwalk/bfs"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/dfs"
	"github.com/katalvlaran/lvwalk/traversal"
)

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the system clock, typically with a fake in tests.
func WithClock(clk Clock) Option {
	return func(c *Controller) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithAlgorithm sets the initial algorithm. An invalid one is reported by New.
func WithAlgorithm(alg traversal.Algorithm) Option {
	return func(c *Controller) {
		if !alg.Valid() {
			c.err = traversal.ErrUnknownAlgorithm
			return
		}
		c.alg = alg
	}
}

// WithDelay sets the initial pump delay. Out-of-range values are reported by New.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		if err := ValidateDelay(d); err != nil {
			c.err = err
			return
		}
		c.delay = d
	}
}

// WithTraversalOptions passes hooks to every walker the controller creates.
func WithTraversalOptions(opts ...traversal.Option) Option {
	return func(c *Controller) { c.walkOpts = append(c.walkOpts, opts...) }
}

// subscriber is one registered listener.
type subscriber struct {
	id uint64
	fn func(Snapshot)
}

// Controller paces a traversal over the graph supplied by its Source.
type Controller struct {
	mu sync.Mutex

	src      Source
	clock    Clock
	logger   *slog.Logger
	metrics  *Metrics
	walkOpts []traversal.Option

	// settings
	alg   traversal.Algorithm
	delay time.Duration
	start core.NodeID

	// run state
	state     State
	complete  bool
	seq       traversal.Sequence
	members   map[core.NodeID]bool // nodes of the run's snapshot
	current   *traversal.Step
	final     *traversal.Step
	runID     string
	runAlg    traversal.Algorithm
	startedAt time.Time

	// single pending pump
	timer Timer
	gen   uint64

	subs    []subscriber
	nextSub uint64
	version uint64 // bumped on every publish

	// notify serializes deliveries; delivered is the newest Seq sent
	notify    sync.Mutex
	delivered uint64

	err error // construction error recorded by options
}

// New returns an Idle controller reading graphs from src.
// Defaults: BFS, DefaultDelay, SystemClock, slog.Default(), no metrics.
func New(src Source, opts ...Option) (*Controller, error) {
	c := &Controller{
		src:    src,
		clock:  SystemClock{},
		logger: slog.Default(),
		alg:    traversal.BFS,
		delay:  DefaultDelay,
		state:  Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.err != nil {
		return nil, c.err
	}

	return c, nil
}

// Play starts a fresh run from the designated start node over the current
// graph and pumps its first step immediately. Without a start node it does
// nothing. A run already in progress is discarded first.
func (c *Controller) Play() {
	c.mu.Lock()
	if !c.start.Valid() {
		c.mu.Unlock()
		return
	}
	c.abandonLocked()

	snap := c.src.Snapshot()
	adj := core.BuildAdjacency(snap)
	c.members = make(map[core.NodeID]bool, adj.Len())
	for _, id := range adj.Nodes() {
		c.members[id] = true
	}
	c.seq = c.newSequence(adj)
	c.runAlg = c.alg
	c.runID = uuid.New().String()
	c.startedAt = c.clock.Now()
	c.complete = false
	c.current, c.final = nil, nil
	c.transitionLocked(Playing)
	c.logger.Info("playback started",
		"run_id", c.runID,
		"algorithm", string(c.alg),
		"start", c.start.String(),
		"nodes", len(snap.Nodes),
		"edges", len(snap.Edges))

	c.pumpLocked()
	c.publishAndUnlock()
}

// Pause cancels the pending pump. Only valid while Playing.
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.state != Playing {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	c.transitionLocked(Paused)
	c.publishAndUnlock()
}

// Resume schedules the next pump after the current delay. Only valid while Paused.
func (c *Controller) Resume() {
	c.mu.Lock()
	if c.state != Paused {
		c.mu.Unlock()
		return
	}
	c.transitionLocked(Playing)
	c.scheduleLocked()
	c.publishAndUnlock()
}

// StepOnce pumps exactly one step without scheduling another. Only valid while Paused.
func (c *Controller) StepOnce() {
	c.mu.Lock()
	if c.state != Paused {
		c.mu.Unlock()
		return
	}
	c.pumpLocked()
	c.publishAndUnlock()
}

// Stop cancels any pending pump, clears the current step and the Complete
// flag and discards the sequence. No-op while Idle.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.state == Idle {
		c.mu.Unlock()
		return
	}
	c.abandonLocked()
	c.clearRunLocked()
	c.transitionLocked(Stopped)
	c.publishAndUnlock()
}

// Reset performs Stop and also clears the start node, returning to Idle.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.abandonLocked()
	c.clearRunLocked()
	c.start = 0
	c.transitionLocked(Idle)
	c.publishAndUnlock()
}

// SetStart designates the start node used by the next Play.
func (c *Controller) SetStart(id core.NodeID) {
	c.mu.Lock()
	c.start = id
	c.publishAndUnlock()
}

// Start returns the designated start node (zero when none).
func (c *Controller) Start() core.NodeID {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.start
}

// ClearStartIf clears the start designation when it equals id and reports
// whether it did.
func (c *Controller) ClearStartIf(id core.NodeID) bool {
	c.mu.Lock()
	if !id.Valid() || c.start != id {
		c.mu.Unlock()
		return false
	}
	c.start = 0
	c.logger.Debug("start node cleared", "node", id.String())
	c.publishAndUnlock()

	return true
}

// References reports whether the displayed or running run was built from a
// snapshot containing id.
func (c *Controller) References(id core.NodeID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.members[id]
}

// SetDelay changes the pump delay. The new value applies to the next
// scheduled pump; a pump already pending keeps its deadline.
func (c *Controller) SetDelay(d time.Duration) error {
	if err := ValidateDelay(d); err != nil {
		return err
	}
	c.mu.Lock()
	c.delay = d
	c.publishAndUnlock()

	return nil
}

// Delay returns the current pump delay.
func (c *Controller) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.delay
}

// SetAlgorithm selects the algorithm used by the next Play.
func (c *Controller) SetAlgorithm(alg traversal.Algorithm) error {
	if !alg.Valid() {
		return traversal.ErrUnknownAlgorithm
	}
	c.mu.Lock()
	c.alg = alg
	c.publishAndUnlock()

	return nil
}

// Algorithm returns the algorithm used by the next Play.
func (c *Controller) Algorithm() traversal.Algorithm {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.alg
}

// State returns the primary state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Snapshot returns a value copy of the controller state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Subscribe registers fn to receive a Snapshot after every state change.
// Calls are serialized and arrive in Seq order; fn must not Play, Pause,
// Stop or otherwise mutate c. The returned function unregisters it.
func (c *Controller) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// newSequence picks the walker for the configured algorithm.
func (c *Controller) newSequence(adj *core.Adjacency) traversal.Sequence {
	if c.alg == traversal.DFS {
		return dfs.New(adj, c.start, c.walkOpts...)
	}

	return bfs.New(adj, c.start, c.walkOpts...)
}

// pumpLocked pulls one step. A complete step or an exhausted sequence ends
// the run; anything else becomes current and, while Playing, schedules the
// next pump.
func (c *Controller) pumpLocked() {
	if c.seq == nil {
		return
	}
	s, ok := c.seq.Next()
	if ok {
		c.metrics.recordStep(string(c.runAlg), string(s.Kind))
	}
	if !ok || s.Terminal() {
		c.cancelLocked()
		c.seq = nil
		c.complete = true
		if ok {
			c.final = &s
		}
		c.transitionLocked(Stopped)
		elapsed := c.clock.Now().Sub(c.startedAt)
		c.metrics.recordRun(string(c.runAlg), outcomeCompleted, elapsed.Seconds())
		c.logger.Info("playback complete",
			"run_id", c.runID,
			"visited", len(s.Path),
			"elapsed", elapsed)
		return
	}

	c.current = &s
	if c.state == Playing {
		c.scheduleLocked()
	}
}

// scheduleLocked arms the single pump timer, cancelling any prior one first.
func (c *Controller) scheduleLocked() {
	c.cancelLocked()
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.delay, func() { c.fire(gen) })
}

// cancelLocked stops the pending timer and invalidates any in-flight fire.
func (c *Controller) cancelLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

// fire is the timer callback for generation gen.
func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != Playing {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.pumpLocked()
	c.publishAndUnlock()
}

// abandonLocked cancels the timer and drops an unfinished sequence.
func (c *Controller) abandonLocked() {
	c.cancelLocked()
	if c.seq != nil {
		c.metrics.recordRun(string(c.runAlg), outcomeStopped, 0)
		c.logger.Info("playback abandoned", "run_id", c.runID)
		c.seq = nil
	}
}

// clearRunLocked drops every trace of the last run.
func (c *Controller) clearRunLocked() {
	c.current, c.final = nil, nil
	c.complete = false
	c.members = nil
	c.runID = ""
}

// transitionLocked records a state change.
func (c *Controller) transitionLocked(to State) {
	if c.state == to {
		return
	}
	c.logger.Debug("playback transition", "run_id", c.runID, "from", c.state.String(), "to", to.String())
	c.state = to
	c.metrics.recordTransition(to)
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:     c.state,
		Complete:  c.complete,
		Start:     c.start,
		Algorithm: c.alg,
		Delay:     c.delay,
		RunID:     c.runID,
		Seq:       c.version,
		Current:   c.current,
		Final:     c.final,
	}
}

// publishAndUnlock snapshots state, releases mu and notifies subscribers.
// Deliveries never overlap and go out in Seq order: a snapshot that loses the
// race to notify against a newer one is dropped. Subscribers must not call
// back into the controller's mutators.
func (c *Controller) publishAndUnlock() {
	c.version++
	snap := c.snapshotLocked()
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	c.notify.Lock()
	defer c.notify.Unlock()
	if snap.Seq <= c.delivered {
		return
	}
	c.delivered = snap.Seq
	for _, s := range subs {
		s.fn(snap)
	}
}
