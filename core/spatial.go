package core

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// anchorTolerance is the half-size of the degenerate rectangle stored for a
// node centre; rtreego rejects zero-length sides.
const anchorTolerance = 0.001

// anchor is the R-tree entry for one node centre.
type anchor struct {
	id NodeID
	at orb.Point
}

// Bounds implements rtreego.Spatial.
func (a *anchor) Bounds() rtreego.Rect {
	return rtreego.Point{a.at[0], a.at[1]}.ToRect(anchorTolerance)
}

// newSpatialTree returns an empty 2-D R-tree sized for interactive canvases.
func newSpatialTree() *rtreego.Rtree {
	return rtreego.NewTree(2, 4, 16)
}

// inBounds reports whether p lies strictly inside the admissible rectangle;
// points on the border are rejected.
// Caller must hold g.mu.
func (g *Graph) inBounds(p orb.Point) bool {
	if !g.bounds.Contains(p) {
		return false
	}

	return p[0] > g.bounds.Min[0] && p[0] < g.bounds.Max[0] &&
		p[1] > g.bounds.Min[1] && p[1] < g.bounds.Max[1]
}

// crowded reports whether any node centre lies strictly closer than the
// minimum separation to p. The R-tree narrows candidates to the square
// around p; planar.Distance decides.
// Caller must hold g.mu.
func (g *Graph) crowded(p orb.Point) bool {
	if g.minSep <= 0 || g.spatial.Size() == 0 {
		return false
	}
	r := g.minSep
	box, err := rtreego.NewRect(rtreego.Point{p[0] - r, p[1] - r}, []float64{2 * r, 2 * r})
	if err != nil {
		return false
	}
	for _, item := range g.spatial.SearchIntersect(box) {
		a, ok := item.(*anchor)
		if !ok {
			continue
		}
		if planar.Distance(a.at, p) < r {
			return true
		}
	}

	return false
}

// place registers id at p in the spatial index. Caller must hold g.mu.
func (g *Graph) place(id NodeID, p orb.Point) {
	a := &anchor{id: id, at: p}
	g.spatial.Insert(a)
	g.entries[id] = a
}

// unplace drops id from the spatial index. Caller must hold g.mu.
func (g *Graph) unplace(id NodeID) {
	if a, ok := g.entries[id]; ok {
		g.spatial.Delete(a)
		delete(g.entries, id)
	}
}
