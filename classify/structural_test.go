package classify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/classify"
)

func TestStructural(t *testing.T) {
	cases := []struct {
		name string
		req  classify.Request
		want classify.Type
	}{
		{"empty", classify.Request{}, classify.Unknown},
		{"single node", classify.Request{NodeCount: 1}, classify.Tree},
		{"undirected path", classify.Request{NodeCount: 3, Edges: [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}}, classify.Tree},
		{"undirected forest", classify.Request{NodeCount: 4, Edges: [][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 2}}}, classify.Unknown},
		{"undirected triangle", classify.Request{NodeCount: 3, Edges: [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {0, 2}}}, classify.Cyclic},
		{"directed out-tree", classify.Request{NodeCount: 3, Edges: [][2]int{{0, 1}, {0, 2}}}, classify.Tree},
		{"directed diamond", classify.Request{NodeCount: 4, Edges: [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}}, classify.DAG},
		{"directed in-tree", classify.Request{NodeCount: 3, Edges: [][2]int{{1, 0}, {2, 0}}}, classify.DAG},
		{"directed two-way arc", classify.Request{NodeCount: 3, Edges: [][2]int{{0, 1}, {1, 0}, {1, 2}}}, classify.Cyclic},
		{"directed ring", classify.Request{NodeCount: 3, Edges: [][2]int{{0, 1}, {1, 2}, {2, 0}}}, classify.Cyclic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := classify.Structural{}.Classify(context.Background(), tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Type)
			assert.Equal(t, classify.SourceStructural, p.Source)
			assert.Equal(t, 1.0, p.Confidence)
		})
	}
}
