package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/classify"
	"github.com/katalvlaran/lvwalk/config"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/playback"
	"github.com/katalvlaran/lvwalk/playback/playbacktest"
	"github.com/katalvlaran/lvwalk/session"
	"github.com/katalvlaran/lvwalk/traversal"
)

type failingClassifier struct{ calls int }

func (f *failingClassifier) Classify(context.Context, classify.Request) (classify.Prediction, error) {
	f.calls++
	return classify.Prediction{}, classify.ErrTransport
}

// SessionSuite drives a session over A–B–C on a fake clock.
type SessionSuite struct {
	suite.Suite

	clock *playbacktest.Clock
	sess  *session.Session

	a, b, c core.NodeID
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.clock = playbacktest.NewClock()
	var err error
	s.sess, err = session.New(
		session.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
		session.WithPlaybackOptions(playback.WithClock(s.clock)),
	)
	s.Require().NoError(err)

	s.a = s.place(100, 100)
	s.b = s.place(200, 100)
	s.c = s.place(300, 100)
	s.link(s.a, s.b)
	s.link(s.b, s.c)
}

func (s *SessionSuite) place(x, y float64) core.NodeID {
	n, err := s.sess.CanvasClicked(x, y)
	s.Require().NoError(err)

	return n.ID
}

func (s *SessionSuite) link(from, to core.NodeID) {
	out, _, err := s.sess.NodeClicked(from)
	s.Require().NoError(err)
	s.Require().Equal(core.SelectAdded, out)
	out, e, err := s.sess.NodeClicked(to)
	s.Require().NoError(err)
	s.Require().Equal(core.SelectPaired, out)
	s.Require().NotNil(e)
}

func (s *SessionSuite) TestCanvasClickRejectionsLeaveGraphUnchanged() {
	_, err := s.sess.CanvasClicked(110, 100)
	s.ErrorIs(err, core.ErrTooClose)
	_, err = s.sess.CanvasClicked(5, 5)
	s.ErrorIs(err, core.ErrOutOfBounds)

	s.Equal(3, s.sess.View().Stats.NodeCount)
}

func (s *SessionSuite) TestSetStartUnknownNode() {
	s.ErrorIs(s.sess.SetStart(core.NodeID(99)), core.ErrNodeNotFound)
	s.False(s.sess.View().Playback.Start.Valid())
}

func (s *SessionSuite) TestRemovingStartWhileIdleClearsIt() {
	s.Require().NoError(s.sess.SetStart(s.a))
	s.Require().NoError(s.sess.NodeDoubleClicked(s.a))

	v := s.sess.View()
	s.False(v.Playback.Start.Valid())
	s.Equal(playback.Idle, v.Playback.State)
	s.Equal(2, v.Stats.NodeCount)
	s.Equal(1, v.Stats.EdgeCount)
}

func (s *SessionSuite) TestRemovingRunNodeStopsPlayback() {
	s.Require().NoError(s.sess.SetStart(s.a))
	s.sess.Play()
	s.Require().Equal(playback.Playing, s.sess.View().Playback.State)

	s.Require().NoError(s.sess.NodeDoubleClicked(s.c))

	v := s.sess.View()
	s.Equal(playback.Stopped, v.Playback.State)
	s.Nil(v.Playback.Current)
	s.False(v.Playback.Complete)
	s.Equal(s.a, v.Playback.Start)
	s.Zero(s.clock.Pending())
}

func (s *SessionSuite) TestRemovingForeignNodeKeepsRunning() {
	s.Require().NoError(s.sess.SetStart(s.a))
	s.sess.Play()
	late := s.place(400, 300)

	s.Require().NoError(s.sess.NodeDoubleClicked(late))

	s.Equal(playback.Playing, s.sess.View().Playback.State)
	s.clock.Advance(playback.DefaultDelay)
	s.Equal(playback.Playing, s.sess.View().Playback.State)
}

func (s *SessionSuite) TestRemovingNodeAfterCompletedRunClearsHighlight() {
	s.Require().NoError(s.sess.SetStart(s.a))
	s.sess.Play()
	for i := 0; i < 20 && !s.sess.View().Playback.Complete; i++ {
		s.clock.Advance(playback.DefaultDelay)
	}
	s.Require().True(s.sess.View().Playback.Complete)

	s.Require().NoError(s.sess.NodeDoubleClicked(s.b))

	v := s.sess.View()
	s.False(v.Playback.Complete)
	s.Nil(v.Playback.Final)
}

func (s *SessionSuite) TestClearResetsEverything() {
	s.Require().NoError(s.sess.SetStart(s.a))
	s.sess.Play()

	s.sess.Clear()

	v := s.sess.View()
	s.Empty(v.Graph.Nodes)
	s.Empty(v.Graph.Edges)
	s.Equal(playback.Idle, v.Playback.State)
	s.False(v.Playback.Start.Valid())
	s.Zero(s.clock.Pending())
}

func (s *SessionSuite) TestSetDirectedRewritesEdges() {
	s.sess.SetDirected(true)

	v := s.sess.View()
	s.True(v.Graph.Directed)
	s.Equal(2, v.Stats.DirectedEdgeCount)
	s.Zero(v.Stats.UndirectedEdgeCount)
}

func (s *SessionSuite) TestAlgorithmAndDelay() {
	s.Require().NoError(s.sess.SetAlgorithm(traversal.DFS))
	s.ErrorIs(s.sess.SetAlgorithm("dijkstra"), traversal.ErrUnknownAlgorithm)
	s.Require().NoError(s.sess.SetDelay(250 * time.Millisecond))
	s.ErrorIs(s.sess.SetDelay(5*time.Second), playback.ErrDelayOutOfRange)

	ps := s.sess.View().Playback
	s.Equal(traversal.DFS, ps.Algorithm)
	s.Equal(250*time.Millisecond, ps.Delay)
}

func (s *SessionSuite) TestPauseStepResume() {
	s.Require().NoError(s.sess.SetStart(s.a))
	s.sess.Play()
	s.sess.Pause()
	first := s.sess.View().Playback.Current
	s.Require().NotNil(first)

	s.sess.StepOnce()
	second := s.sess.View().Playback.Current
	s.Require().NotNil(second)
	s.Equal(first.Index+1, second.Index)

	s.sess.Resume()
	s.Equal(playback.Playing, s.sess.View().Playback.State)
	s.sess.Stop()
	s.Equal(playback.Stopped, s.sess.View().Playback.State)
	s.sess.Reset()
	s.Equal(playback.Idle, s.sess.View().Playback.State)
}

func (s *SessionSuite) TestClassifyStructural() {
	p, err := s.sess.Classify(context.Background())
	s.Require().NoError(err)
	s.Equal(classify.Tree, p.Type)

	s.link(s.a, s.c)
	p, err = s.sess.Classify(context.Background())
	s.Require().NoError(err)
	s.Equal(classify.Cyclic, p.Type)
}

func (s *SessionSuite) TestSubscribeReceivesViews() {
	var (
		mu    sync.Mutex
		views []session.View
	)
	unsubscribe := s.sess.Subscribe(func(v session.View) {
		mu.Lock()
		views = append(views, v)
		mu.Unlock()
	})

	s.place(400, 300)
	s.Require().NoError(s.sess.SetStart(s.a))

	mu.Lock()
	s.Require().Len(views, 2)
	s.Equal(4, views[0].Stats.NodeCount)
	s.Equal(s.a, views[1].Playback.Start)
	mu.Unlock()

	unsubscribe()
	s.place(500, 300)
	mu.Lock()
	s.Len(views, 2)
	mu.Unlock()
}

// Views published while a subscriber is busy must not land after a newer one.
func (s *SessionSuite) TestSubscribersSeeLatestViewLast() {
	var (
		mu      sync.Mutex
		last    session.View
		blocked bool
		entered = make(chan struct{})
		gate    = make(chan struct{})
	)
	s.sess.Subscribe(func(v session.View) {
		mu.Lock()
		cur := v.Playback.Current
		hold := !blocked && v.Playback.State == playback.Playing && cur != nil && cur.Index == 1
		if hold {
			blocked = true
		}
		mu.Unlock()
		if hold {
			close(entered)
			<-gate
		}
		mu.Lock()
		last = v
		mu.Unlock()
	})

	s.Require().NoError(s.sess.SetStart(s.a))
	s.sess.Play()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.clock.Advance(s.sess.Controller().Delay())
	}()
	<-entered
	go func() {
		defer wg.Done()
		s.sess.Pause()
	}()
	go func() {
		defer wg.Done()
		_, _ = s.sess.CanvasClicked(400, 300)
	}()
	s.Require().Eventually(func() bool {
		return s.sess.Controller().State() == playback.Paused && s.sess.Graph().NodeCount() == 4
	}, time.Second, time.Millisecond)
	close(gate)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	s.Equal(playback.Paused, last.Playback.State)
	s.Equal(4, last.Stats.NodeCount)
	s.Equal(s.sess.View().Playback.Seq, last.Playback.Seq)
}

func TestClassifyEmptyGraph(t *testing.T) {
	sess, err := session.New()
	require.NoError(t, err)

	_, err = sess.Classify(context.Background())
	assert.ErrorIs(t, err, session.ErrEmptyGraph)
}

func TestClassifyFailureLeavesStateAlone(t *testing.T) {
	fc := &failingClassifier{}
	sess, err := session.New(session.WithClassifier(fc))
	require.NoError(t, err)
	n, err := sess.CanvasClicked(100, 100)
	require.NoError(t, err)
	require.NoError(t, sess.SetStart(n.ID))
	before := sess.View()

	_, err = sess.Classify(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, classify.ErrTransport))
	assert.Equal(t, 1, fc.calls)
	assert.Equal(t, before, sess.View())
}

func TestFromSettingsAndApply(t *testing.T) {
	st := config.Default()
	st.Playback.Algorithm = "dfs"
	st.Playback.Delay = 300 * time.Millisecond
	st.Graph.Directed = true

	sess, err := session.FromSettings(st)
	require.NoError(t, err)
	v := sess.View()
	assert.Equal(t, traversal.DFS, v.Playback.Algorithm)
	assert.Equal(t, 300*time.Millisecond, v.Playback.Delay)
	assert.True(t, v.Graph.Directed)

	st.Playback.Algorithm = "bfs"
	st.Playback.Delay = time.Second
	st.Graph.Directed = false
	require.NoError(t, sess.Apply(st))
	v = sess.View()
	assert.Equal(t, traversal.BFS, v.Playback.Algorithm)
	assert.Equal(t, time.Second, v.Playback.Delay)
	assert.False(t, v.Graph.Directed)

	st.Playback.Delay = 10 * time.Millisecond
	assert.ErrorIs(t, sess.Apply(st), config.ErrInvalidSettings)
}

func (s *SessionSuite) TestLoadPreset() {
	s.Require().NoError(s.sess.SetStart(s.a))
	s.sess.Play()

	s.Require().NoError(s.sess.LoadPreset(builder.Preset{Kind: builder.KindCycle, N: 5}))

	v := s.sess.View()
	s.Equal(5, v.Stats.NodeCount)
	s.Equal(5, v.Stats.EdgeCount)
	s.Equal(playback.Idle, v.Playback.State)
	s.False(v.Playback.Start.Valid())
	s.Zero(s.clock.Pending())
}

func (s *SessionSuite) TestLoadPresetFailures() {
	s.ErrorIs(s.sess.LoadPreset(builder.Preset{Kind: "moebius"}), builder.ErrUnknownPreset)
	s.Equal(3, s.sess.View().Stats.NodeCount)

	s.ErrorIs(s.sess.LoadPreset(builder.Preset{Kind: builder.KindPath, N: 30}), core.ErrOutOfBounds)
	s.Zero(s.sess.View().Stats.NodeCount)
}
