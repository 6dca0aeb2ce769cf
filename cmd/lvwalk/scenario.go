package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/session"
)

// ErrScenario wraps every scenario load or replay failure.
var ErrScenario = errors.New("scenario")

// Scenario is a scripted graph: nodes are placed in order and therefore
// labelled A, B, C, ...; edges and the start node refer to those labels.
// An optional preset (for example `preset: {kind: cycle, n: 4}`) is laid out
// first and its nodes take the first labels.
//
//	directed: false
//	nodes:
//	  - {x: 100, y: 100}
//	  - {x: 200, y: 100}
//	edges:
//	  - [A, B]
//	start: A
type Scenario struct {
	Directed bool            `yaml:"directed"`
	Preset   *builder.Preset `yaml:"preset"`
	Nodes    []Point         `yaml:"nodes"`
	Edges    [][2]string     `yaml:"edges"`
	Start    string          `yaml:"start"`
}

// Point is a canvas position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ParseScenario decodes YAML, rejecting unknown keys.
func ParseScenario(data []byte) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrScenario, err)
	}
	if len(sc.Nodes) == 0 && sc.Preset == nil {
		return Scenario{}, fmt.Errorf("%w: no nodes and no preset", ErrScenario)
	}

	return sc, nil
}

// LoadScenario reads and parses path.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrScenario, err)
	}

	return ParseScenario(data)
}

// Replay builds the scenario into sess through the same intents a pointer
// user would issue, and designates the start node when one is named.
// Every rejection is fatal: a scenario either replays exactly or not at all.
func (sc Scenario) Replay(sess *session.Session) error {
	sess.SetDirected(sc.Directed)
	if sc.Preset != nil {
		if err := sess.LoadPreset(*sc.Preset); err != nil {
			return fmt.Errorf("%w: preset %s: %v", ErrScenario, sc.Preset.Kind, err)
		}
	}

	g := sess.Graph()
	for i, p := range sc.Nodes {
		if _, err := sess.CanvasClicked(p.X, p.Y); err != nil {
			return fmt.Errorf("%w: node %d at (%g, %g): %v", ErrScenario, i, p.X, p.Y, err)
		}
	}
	for _, e := range sc.Edges {
		from, ok := g.NodeByLabel(e[0])
		if !ok {
			return fmt.Errorf("%w: edge %s-%s: unknown label %q", ErrScenario, e[0], e[1], e[0])
		}
		to, ok := g.NodeByLabel(e[1])
		if !ok {
			return fmt.Errorf("%w: edge %s-%s: unknown label %q", ErrScenario, e[0], e[1], e[1])
		}
		if _, err := sess.AddEdge(from.ID, to.ID); err != nil {
			return fmt.Errorf("%w: edge %s-%s: %v", ErrScenario, e[0], e[1], err)
		}
	}
	if sc.Start == "" {
		return nil
	}
	start, ok := g.NodeByLabel(sc.Start)
	if !ok {
		return fmt.Errorf("%w: start: %v %q", ErrScenario, core.ErrNodeNotFound, sc.Start)
	}

	return sess.SetStart(start.ID)
}
