package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/traversal"
)

// Node palette, matching the browser renderer.
var (
	ColorUnvisited = lipgloss.Color("#6B7280") // gray
	ColorSelected  = lipgloss.Color("#3B82F6") // blue
	ColorFrontier  = lipgloss.Color("#F59E0B") // amber
	ColorVisited   = lipgloss.Color("#22C55E") // green
	ColorCurrent   = lipgloss.Color("#EF4444") // red
	ColorEdge      = lipgloss.Color("#9CA3AF")
	ColorActive    = lipgloss.Color("#3B82F6")
)

// Glyphs per node state. They keep frames readable without colour.
const (
	glyphUnvisited = "○"
	glyphSelected  = "◇"
	glyphFrontier  = "◎"
	glyphVisited   = "●"
	glyphCurrent   = "◉"
)

// Terminal draws frames as lipgloss-styled text.
type Terminal struct {
	nodes  map[NodeState]lipgloss.Style
	edge   lipgloss.Style
	active lipgloss.Style
	title  lipgloss.Style
	muted  lipgloss.Style
	box    lipgloss.Style
}

// NewTerminal returns a renderer whose colour profile is detected from w.
// Writers that are not terminals get plain text.
func NewTerminal(w io.Writer) *Terminal {
	r := lipgloss.NewRenderer(w)

	return &Terminal{
		nodes: map[NodeState]lipgloss.Style{
			Unvisited:  r.NewStyle().Foreground(ColorUnvisited),
			Selected:   r.NewStyle().Foreground(ColorSelected).Bold(true),
			InFrontier: r.NewStyle().Foreground(ColorFrontier),
			Visited:    r.NewStyle().Foreground(ColorVisited),
			Current:    r.NewStyle().Foreground(ColorCurrent).Bold(true),
		},
		edge:   r.NewStyle().Foreground(ColorEdge),
		active: r.NewStyle().Foreground(ColorActive).Bold(true),
		title:  r.NewStyle().Bold(true),
		muted:  r.NewStyle().Faint(true),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func glyph(s NodeState) string {
	switch s {
	case Selected:
		return glyphSelected
	case InFrontier:
		return glyphFrontier
	case Visited:
		return glyphVisited
	case Current:
		return glyphCurrent
	default:
		return glyphUnvisited
	}
}

// Legend renders the node-state key. The frontier entry is named after the
// algorithm's container.
func (t *Terminal) Legend(alg traversal.Algorithm) string {
	frontier := "In Queue/Stack"
	if alg.Valid() {
		frontier = "In " + alg.FrontierName()
	}
	entries := []struct {
		state NodeState
		text  string
	}{
		{Unvisited, "Unvisited"},
		{InFrontier, frontier},
		{Current, "Current"},
		{Visited, "Visited"},
		{Selected, "Selected"},
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = t.nodes[e.state].Render(glyph(e.state)) + " " + e.text
	}

	return strings.Join(parts, "  ")
}

// Nodes renders one line per node: glyph, label and state.
func (t *Terminal) Nodes(f Frame) string {
	if len(f.Nodes) == 0 {
		return t.muted.Render("(no nodes)")
	}
	lines := make([]string, len(f.Nodes))
	for i, n := range f.Nodes {
		st := t.nodes[n.State]
		lines[i] = fmt.Sprintf("%s %s %s",
			st.Render(glyph(n.State)),
			st.Render(fmt.Sprintf("%-3s", n.Label)),
			t.muted.Render(n.State.String()))
	}

	return strings.Join(lines, "\n")
}

// Edges renders one line per edge; active edges are highlighted.
func (t *Terminal) Edges(f Frame) string {
	if len(f.Edges) == 0 {
		return t.muted.Render("(no edges)")
	}
	lines := make([]string, len(f.Edges))
	for i, e := range f.Edges {
		arrow := "—"
		if e.Directed {
			arrow = "→"
		}
		st := t.edge
		if e.Active {
			st = t.active
		}
		lines[i] = st.Render(fmt.Sprintf("%s %s %s", f.Label(e.From), arrow, f.Label(e.To)))
	}

	return strings.Join(lines, "\n")
}

// Step renders the traversal panel: current node, frontier, visited and path.
func (t *Terminal) Step(f Frame) string {
	s := f.Step
	if s == nil {
		return t.muted.Render("No traversal in progress")
	}
	current := "None"
	if !s.Terminal() && s.Node.Valid() {
		current = f.Label(s.Node)
	}
	rows := []string{
		t.title.Render(fmt.Sprintf("%s · step %d · %s", s.Algorithm.String(), s.Index, s.Kind)),
		fmt.Sprintf("Current Node: %s", current),
		fmt.Sprintf("%s: %s", s.Algorithm.FrontierName(), t.list(f, s.Frontier, ", ", "Empty")),
		fmt.Sprintf("Visited Nodes: %s", t.list(f, s.Visited, ", ", "None")),
		fmt.Sprintf("Traversal Path: %s", t.list(f, s.Path, " → ", "None")),
	}
	if s.Terminal() {
		rows = append(rows, t.nodes[Visited].Render(fmt.Sprintf("Traversal complete! Visited %d nodes", len(s.Visited))))
	}

	return strings.Join(rows, "\n")
}

// StepLine renders the step on display as one compact line, for logs and
// headless runs.
func (t *Terminal) StepLine(f Frame) string {
	s := f.Step
	if s == nil {
		return ""
	}
	subject := f.Label(s.Node)
	if s.Terminal() {
		subject = "-"
	}
	kind := t.nodes[Current].Render(fmt.Sprintf("%-8s", s.Kind))
	if s.Terminal() {
		kind = t.nodes[Visited].Render(fmt.Sprintf("%-8s", s.Kind))
	}

	return fmt.Sprintf("#%02d %s %-3s d=%d  %s: [%s]  visited: [%s]",
		s.Index, kind, subject, s.Depth,
		s.Algorithm.FrontierName(),
		t.list(f, s.Frontier, " ", ""),
		t.list(f, s.Visited, " ", ""))
}

func (t *Terminal) list(f Frame, ids []core.NodeID, sep, empty string) string {
	if len(ids) == 0 {
		return empty
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = f.Label(id)
	}

	return strings.Join(out, sep)
}

// Frame renders the whole frame: step panel, nodes and edges side by side,
// then the legend.
func (t *Terminal) Frame(f Frame, alg traversal.Algorithm) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		t.box.Render(t.title.Render("Nodes")+"\n"+t.Nodes(f)),
		" ",
		t.box.Render(t.title.Render("Edges")+"\n"+t.Edges(f)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		t.box.Render(t.Step(f)),
		body,
		t.Legend(alg),
	)
}
