package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/traversal"
)

// Delay bounds and default, matching the speed slider of the visualizer.
const (
	MinDelay     = 100 * time.Millisecond
	MaxDelay     = 2 * time.Second
	DefaultDelay = 800 * time.Millisecond
)

// ErrDelayOutOfRange is returned by SetDelay for values outside [MinDelay, MaxDelay].
var ErrDelayOutOfRange = errors.New("playback: delay out of range")

// ValidateDelay checks d against [MinDelay, MaxDelay].
func ValidateDelay(d time.Duration) error {
	if d < MinDelay || d > MaxDelay {
		return fmt.Errorf("%w: %s not in [%s, %s]", ErrDelayOutOfRange, d, MinDelay, MaxDelay)
	}

	return nil
}

// State is the controller's primary state.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Stopped
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText renders the state name in JSON and YAML.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Snapshot is a value copy of controller state handed to renderers and
// subscribers.
//
// Current is the last published step (nil before the first pump and after
// Stop). Final is the terminal complete step of a finished run. Seq grows
// with every published change, so a later snapshot always has a larger Seq.
type Snapshot struct {
	State     State               `json:"state"`
	Complete  bool                `json:"complete"`
	Start     core.NodeID         `json:"start"`
	Algorithm traversal.Algorithm `json:"algorithm"`
	Delay     time.Duration       `json:"delay"`
	RunID     string              `json:"run_id,omitempty"`
	Seq       uint64              `json:"seq"`
	Current   *traversal.Step     `json:"current,omitempty"`
	Final     *traversal.Step     `json:"final,omitempty"`
}

// Source supplies the graph snapshot a run is built from. *core.Graph
// satisfies it.
type Source interface {
	Snapshot() core.Snapshot
}
