package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/session"
)

const squareYAML = `
directed: false
nodes:
  - {x: 100, y: 100}
  - {x: 200, y: 100}
  - {x: 100, y: 200}
  - {x: 200, y: 200}
edges:
  - [A, B]
  - [A, C]
  - [B, D]
  - [C, D]
start: A
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(squareYAML))
	require.NoError(t, err)
	assert.Len(t, sc.Nodes, 4)
	assert.Equal(t, [2]string{"C", "D"}, sc.Edges[3])
	assert.Equal(t, "A", sc.Start)

	_, err = ParseScenario([]byte("nodes: []\n"))
	assert.ErrorIs(t, err, ErrScenario)

	_, err = ParseScenario([]byte("nodes:\n  - {x: 1, y: 1}\ncolour: red\n"))
	assert.ErrorIs(t, err, ErrScenario)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrScenario)
}

func TestScenarioReplay(t *testing.T) {
	sc, err := ParseScenario([]byte(squareYAML))
	require.NoError(t, err)
	sess, err := session.New()
	require.NoError(t, err)

	require.NoError(t, sc.Replay(sess))

	v := sess.View()
	assert.Equal(t, 4, v.Stats.NodeCount)
	assert.Equal(t, 4, v.Stats.EdgeCount)
	a, ok := sess.Graph().NodeByLabel("A")
	require.True(t, ok)
	assert.Equal(t, a.ID, v.Playback.Start)
}

func TestScenarioReplayFailures(t *testing.T) {
	cases := []struct {
		name string
		sc   Scenario
		want error
	}{
		{
			name: "too close",
			sc:   Scenario{Nodes: []Point{{100, 100}, {110, 100}}},
			want: ErrScenario,
		},
		{
			name: "unknown edge label",
			sc:   Scenario{Nodes: []Point{{100, 100}}, Edges: [][2]string{{"A", "Z"}}},
			want: ErrScenario,
		},
		{
			name: "self loop",
			sc:   Scenario{Nodes: []Point{{100, 100}}, Edges: [][2]string{{"A", "A"}}},
			want: ErrScenario,
		},
		{
			name: "unknown start",
			sc:   Scenario{Nodes: []Point{{100, 100}}, Start: "Q"},
			want: ErrScenario,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess, err := session.New()
			require.NoError(t, err)

			err = tc.sc.Replay(sess)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	sess, err := session.New()
	require.NoError(t, err)
	err = Scenario{Nodes: []Point{{100, 100}}, Start: "Q"}.Replay(sess)
	assert.Contains(t, err.Error(), core.ErrNodeNotFound.Error())
}

func TestScenarioPreset(t *testing.T) {
	sc, err := ParseScenario([]byte(`
directed: true
preset: {kind: path, n: 3}
nodes:
  - {x: 400, y: 400}
edges:
  - [C, D]
start: A
`))
	require.NoError(t, err)
	sess, err := session.New()
	require.NoError(t, err)

	require.NoError(t, sc.Replay(sess))

	v := sess.View()
	assert.Equal(t, 4, v.Stats.NodeCount)
	assert.Equal(t, 3, v.Stats.DirectedEdgeCount)

	bad := Scenario{Preset: &builder.Preset{Kind: "blob"}}
	assert.ErrorIs(t, bad.Replay(sess), ErrScenario)
}
