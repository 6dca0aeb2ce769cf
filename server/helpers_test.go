package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/classify"
	"github.com/katalvlaran/lvwalk/playback"
	"github.com/katalvlaran/lvwalk/playback/playbacktest"
	"github.com/katalvlaran/lvwalk/server"
	"github.com/katalvlaran/lvwalk/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubClassifier struct {
	p   classify.Prediction
	err error
}

func (s stubClassifier) Classify(context.Context, classify.Request) (classify.Prediction, error) {
	return s.p, s.err
}

// mutatingClassifier calls during before answering, standing in for an edit
// that lands while the classifier is busy.
type mutatingClassifier struct {
	during func()
	p      classify.Prediction
}

func (m mutatingClassifier) Classify(context.Context, classify.Request) (classify.Prediction, error) {
	m.during()
	return m.p, nil
}

type fixture struct {
	sess  *session.Session
	srv   *server.Server
	clock *playbacktest.Clock
	reg   *prometheus.Registry
}

func newFixture(t *testing.T, opts ...session.Option) *fixture {
	t.Helper()
	clock := playbacktest.NewClock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	base := []session.Option{
		session.WithLogger(logger),
		session.WithPlaybackOptions(playback.WithClock(clock)),
	}
	sess, err := session.New(append(base, opts...)...)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	srv := server.New(sess, server.WithLogger(logger), server.WithRegistry(reg))
	t.Cleanup(srv.Hub().Close)

	return &fixture{sess: sess, srv: srv, clock: clock, reg: reg}
}

// do sends a JSON request and returns the recorder.
func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

// nodeResp mirrors core.Node on the wire.
type nodeResp struct {
	ID    uint64  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// viewResp is the subset of a view message the tests look at.
type viewResp struct {
	Type     string `json:"type"`
	ClientID string `json:"client_id"`
	Graph    struct {
		Nodes    []nodeResp `json:"nodes"`
		Directed bool       `json:"directed"`
	} `json:"graph"`
	Playback struct {
		State     string `json:"state"`
		Complete  bool   `json:"complete"`
		Start     uint64 `json:"start"`
		Algorithm string `json:"algorithm"`
		Delay     int64  `json:"delay"`
		Current   *struct {
			Kind string `json:"kind"`
			Node uint64 `json:"node"`
		} `json:"current"`
	} `json:"playback"`
	Stats struct {
		NodeCount int `json:"node_count"`
		EdgeCount int `json:"edge_count"`
	} `json:"stats"`
	Frame struct {
		Nodes []struct {
			Label string `json:"label"`
			State string `json:"state"`
		} `json:"nodes"`
	} `json:"frame"`
}

func (f *fixture) addNode(t *testing.T, x, y float64) nodeResp {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/nodes", map[string]float64{"x": x, "y": y})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decode[nodeResp](t, w)
}
