package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/playback"
	"github.com/katalvlaran/lvwalk/traversal"
)

// ErrInvalidSettings wraps every parse and validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

// settingsValidate is the shared validator instance.
var settingsValidate = validator.New()

// Settings is the complete lvwalk configuration.
type Settings struct {
	Playback   PlaybackSettings   `yaml:"playback" json:"playback"`
	Graph      GraphSettings      `yaml:"graph" json:"graph"`
	Classifier ClassifierSettings `yaml:"classifier" json:"classifier"`
	Server     ServerSettings     `yaml:"server" json:"server"`
	Log        LogSettings        `yaml:"log" json:"log"`
}

// PlaybackSettings controls the traversal pump.
type PlaybackSettings struct {
	Algorithm string        `yaml:"algorithm" json:"algorithm" validate:"oneof=bfs dfs"`
	Delay     time.Duration `yaml:"delay" json:"delay" validate:"gte=100ms,lte=2s"`
}

// GraphSettings controls the editing canvas.
type GraphSettings struct {
	Directed      bool    `yaml:"directed" json:"directed"`
	Width         float64 `yaml:"width" json:"width" validate:"gt=0"`
	Height        float64 `yaml:"height" json:"height" validate:"gt=0"`
	Margin        float64 `yaml:"margin" json:"margin" validate:"gte=0"`
	MinSeparation float64 `yaml:"min_separation" json:"min_separation" validate:"gte=0"`
}

// ClassifierSettings configures the graph-type classification client.
// An empty Endpoint disables the remote classifier.
type ClassifierSettings struct {
	Endpoint      string        `yaml:"endpoint" json:"endpoint" validate:"omitempty,url"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" validate:"gte=0"`
	RatePerSecond float64       `yaml:"rate_per_second" json:"rate_per_second" validate:"gte=0"`
	Burst         int           `yaml:"burst" json:"burst" validate:"gte=0"`
}

// ServerSettings configures the HTTP surface.
type ServerSettings struct {
	Addr string `yaml:"addr" json:"addr" validate:"required"`
}

// LogSettings configures the slog handler.
type LogSettings struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" json:"format" validate:"oneof=text json"`
}

// Default returns the built-in settings: BFS at 800ms on an undirected
// 800×500 canvas with a 25-unit margin and 60-unit separation.
func Default() Settings {
	return Settings{
		Playback: PlaybackSettings{
			Algorithm: string(traversal.BFS),
			Delay:     playback.DefaultDelay,
		},
		Graph: GraphSettings{
			Width:         core.DefaultCanvasWidth,
			Height:        core.DefaultCanvasHeight,
			Margin:        core.DefaultMargin,
			MinSeparation: core.DefaultMinSeparation,
		},
		Classifier: ClassifierSettings{
			Timeout:       10 * time.Second,
			RatePerSecond: 2,
			Burst:         4,
		},
		Server: ServerSettings{Addr: ":8080"},
		Log:    LogSettings{Level: "info", Format: "text"},
	}
}

// Validate checks s against its struct tags and cross-field rules.
func (s Settings) Validate() error {
	if err := settingsValidate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if 2*s.Graph.Margin >= s.Graph.Width || 2*s.Graph.Margin >= s.Graph.Height {
		return fmt.Errorf("%w: margin %.0f leaves no drawable area", ErrInvalidSettings, s.Graph.Margin)
	}

	return nil
}

// Algorithm returns the parsed playback algorithm.
func (s Settings) Algorithm() traversal.Algorithm {
	alg, err := traversal.ParseAlgorithm(s.Playback.Algorithm)
	if err != nil {
		return traversal.BFS
	}

	return alg
}

// GraphOptions converts the canvas settings into core.Graph options.
func (s Settings) GraphOptions() []core.GraphOption {
	g := s.Graph

	return []core.GraphOption{
		core.WithDirected(g.Directed),
		core.WithBounds(g.Margin, g.Margin, g.Width-g.Margin, g.Height-g.Margin),
		core.WithMinSeparation(g.MinSeparation),
	}
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Load reads and parses the YAML file at path. An empty path yields Default.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}
