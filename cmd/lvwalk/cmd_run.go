package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/bfs"
	"github.com/katalvlaran/lvwalk/config"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/dfs"
	"github.com/katalvlaran/lvwalk/render"
	"github.com/katalvlaran/lvwalk/session"
	"github.com/katalvlaran/lvwalk/traversal"
)

// ErrNoStart is returned when neither the scenario nor --start names a start node.
var ErrNoStart = errors.New("no start node: set start in the scenario or pass --start")

type runOptions struct {
	graph     string
	algorithm string
	delay     time.Duration
	start     string
	instant   bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a scenario and print every traversal step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := root.load()
			if err != nil {
				return err
			}
			if err := opts.apply(&st); err != nil {
				return err
			}
			sc, err := LoadScenario(opts.graph)
			if err != nil {
				return err
			}
			if opts.start != "" {
				sc.Start = opts.start
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runScenario(ctx, cmd.OutOrStdout(), st, sc, opts.instant)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.graph, "graph", "g", "", "scenario YAML file")
	f.StringVarP(&opts.algorithm, "algorithm", "a", "", "bfs or dfs (overrides playback.algorithm)")
	f.DurationVarP(&opts.delay, "delay", "d", 0, "step delay within [100ms, 2s] (overrides playback.delay)")
	f.StringVarP(&opts.start, "start", "s", "", "start node label (overrides the scenario)")
	f.BoolVar(&opts.instant, "instant", false, "print all steps at once instead of pacing them")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// apply folds the flag overrides into st and revalidates.
func (o *runOptions) apply(st *config.Settings) error {
	if o.algorithm != "" {
		alg, err := traversal.ParseAlgorithm(o.algorithm)
		if err != nil {
			return err
		}
		st.Playback.Algorithm = string(alg)
	}
	if o.delay != 0 {
		st.Playback.Delay = o.delay
	}

	return st.Validate()
}

// runScenario replays sc and prints its traversal to out. Timed runs go
// through the playback controller; instant runs drain a walker directly.
func runScenario(ctx context.Context, out io.Writer, st config.Settings, sc Scenario, instant bool) error {
	logger := newLogger(st, os.Stderr)
	sess, err := session.FromSettings(st, session.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := sc.Replay(sess); err != nil {
		return err
	}
	if !sess.Controller().Start().Valid() {
		return ErrNoStart
	}

	term := render.NewTerminal(out)
	if instant {
		return printInstant(out, term, sess, st.Algorithm())
	}

	return printTimed(ctx, out, term, sess)
}

func printInstant(out io.Writer, term *render.Terminal, sess *session.Session, alg traversal.Algorithm) error {
	snap := sess.Graph().Snapshot()
	adj := core.BuildAdjacency(snap)
	start := sess.Controller().Start()

	var seq traversal.Sequence
	if alg == traversal.DFS {
		seq = dfs.New(adj, start)
	} else {
		seq = bfs.New(adj, start)
	}
	steps := traversal.Drain(seq)
	for i := range steps {
		fmt.Fprintln(out, term.StepLine(render.NewFrame(snap, &steps[i])))
	}
	final, ok := traversal.Final(steps)
	if !ok {
		return nil
	}
	fmt.Fprintln(out, term.Frame(render.NewFrame(snap, &final), alg))

	return nil
}

func printTimed(ctx context.Context, out io.Writer, term *render.Terminal, sess *session.Session) error {
	var (
		mu   sync.Mutex
		last = -1
		once sync.Once
		done = make(chan struct{})
	)
	unsubscribe := sess.Subscribe(func(v session.View) {
		frame := render.FromPlayback(v.Graph, v.Playback)
		mu.Lock()
		defer mu.Unlock()
		if frame.Step != nil && frame.Step.Index != last {
			last = frame.Step.Index
			fmt.Fprintln(out, term.StepLine(frame))
		}
		if v.Playback.Complete {
			once.Do(func() {
				fmt.Fprintln(out, term.Frame(frame, v.Playback.Algorithm))
				close(done)
			})
		}
	})
	defer unsubscribe()

	sess.Play()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		sess.Stop()
		return ctx.Err()
	}
}
