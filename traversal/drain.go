package traversal

import "github.com/katalvlaran/lvwalk/core"

// Drain pulls every remaining Step from seq.
// A nil seq yields nil.
func Drain(seq Sequence) []Step {
	if seq == nil {
		return nil
	}
	var steps []Step
	for {
		s, ok := seq.Next()
		if !ok {
			return steps
		}
		steps = append(steps, s)
	}
}

// Final returns the last Step of steps and whether it is the complete step.
func Final(steps []Step) (Step, bool) {
	if len(steps) == 0 {
		return Step{}, false
	}
	last := steps[len(steps)-1]

	return last, last.Terminal()
}

// Snapshot copies ids into a fresh non-nil slice, so an emitted Step never
// aliases walker state.
func Snapshot(ids []core.NodeID) []core.NodeID {
	out := make([]core.NodeID, len(ids))
	copy(out, ids)

	return out
}
