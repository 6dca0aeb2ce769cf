package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvwalk/core"
)

// Preset kinds.
const (
	KindPath     = "path"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindWheel    = "wheel"
	KindComplete = "complete"
	KindGrid     = "grid"
	KindTree     = "tree"
	KindRandom   = "random"
)

// Preset is a serializable constructor call, used by scenario files and the
// HTTP API. Only the fields the kind needs are read.
type Preset struct {
	Kind  string  `yaml:"kind" json:"kind"`
	N     int     `yaml:"n,omitempty" json:"n,omitempty"`
	Rows  int     `yaml:"rows,omitempty" json:"rows,omitempty"`
	Cols  int     `yaml:"cols,omitempty" json:"cols,omitempty"`
	Depth int     `yaml:"depth,omitempty" json:"depth,omitempty"`
	P     float64 `yaml:"p,omitempty" json:"p,omitempty"`
	Seed  int64   `yaml:"seed,omitempty" json:"seed,omitempty"`
}

var presets = map[string]func(Preset) Constructor{
	KindPath:     func(p Preset) Constructor { return Path(p.N) },
	KindCycle:    func(p Preset) Constructor { return Cycle(p.N) },
	KindStar:     func(p Preset) Constructor { return Star(p.N) },
	KindWheel:    func(p Preset) Constructor { return Wheel(p.N) },
	KindComplete: func(p Preset) Constructor { return Complete(p.N) },
	KindGrid:     func(p Preset) Constructor { return Grid(p.Rows, p.Cols) },
	KindTree:     func(p Preset) Constructor { return BinaryTree(p.Depth) },
	KindRandom:   func(p Preset) Constructor { return RandomSparse(p.N, p.P) },
}

// Kinds lists the preset kinds in alphabetical order.
func Kinds() []string {
	out := make([]string, 0, len(presets))
	for k := range presets {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Constructor resolves the preset. Kind matching is case-insensitive.
func (p Preset) Constructor() (Constructor, error) {
	mk, ok := presets[strings.ToLower(strings.TrimSpace(p.Kind))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPreset, p.Kind, strings.Join(Kinds(), ", "))
	}

	return mk(p), nil
}

// Options returns the builder options the preset implies: a seeded RNG.
func (p Preset) Options() []BuilderOption {
	return []BuilderOption{WithSeed(p.Seed)}
}

// Apply builds the preset into g. Extra opts are applied after the
// preset's own.
func (p Preset) Apply(g *core.Graph, opts ...BuilderOption) error {
	c, err := p.Constructor()
	if err != nil {
		return err
	}

	return Apply(g, append(p.Options(), opts...), c)
}
