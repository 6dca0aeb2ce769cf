package classify

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvwalk/core"
)

// Encode maps s to index pairs in edge insertion order. Edges with an
// endpoint missing from s are skipped.
// Complexity: O(V + E).
func Encode(s core.Snapshot) Request {
	idx := s.NodeIndex()
	req := Request{
		Edges:     make([][2]int, 0, 2*len(s.Edges)),
		NodeCount: len(s.Nodes),
	}
	for _, e := range s.Edges {
		from, ok := idx[e.From]
		if !ok {
			continue
		}
		to, ok := idx[e.To]
		if !ok {
			continue
		}
		req.Edges = append(req.Edges, [2]int{from, to})
		if !e.Directed {
			req.Edges = append(req.Edges, [2]int{to, from})
		}
	}

	return req
}

// FormatEdges renders pairs as a deduplicated, orientation-free, sorted list:
// [[1 0] [0 1] [1 2]] → "[(0, 1), (1, 2)]".
func FormatEdges(pairs [][2]int) string {
	seen := make(map[[2]int]struct{}, len(pairs))
	uniq := make([][2]int, 0, len(pairs))
	for _, p := range pairs {
		if p[0] > p[1] {
			p[0], p[1] = p[1], p[0]
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i][0] != uniq[j][0] {
			return uniq[i][0] < uniq[j][0]
		}
		return uniq[i][1] < uniq[j][1]
	})

	var b strings.Builder
	b.WriteByte('[')
	for i, p := range uniq {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(p[0]))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(p[1]))
		b.WriteByte(')')
	}
	b.WriteByte(']')

	return b.String()
}
