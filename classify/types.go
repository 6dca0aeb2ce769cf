package classify

import (
	"context"
	"errors"
)

// Sentinel errors for classification failures. Both are recoverable.
var (
	// ErrTransport indicates the request never produced a response.
	ErrTransport = errors.New("classify: transport failure")

	// ErrRejected indicates the service responded with an error status or an unusable body.
	ErrRejected = errors.New("classify: request rejected")
)

// Type is a graph-type label.
type Type string

const (
	Tree    Type = "Tree"
	Cyclic  Type = "Cyclic"
	DAG     Type = "DAG"
	Unknown Type = "Unknown"
)

// Numeric labels used on the wire.
const (
	LabelCyclic = 0
	LabelDAG    = 1
	LabelTree   = 2
	// LabelNone marks a response without a usable label.
	LabelNone = -1
)

// TypeForLabel maps a wire label to its Type. Unrecognized labels are Unknown.
func TypeForLabel(label int) Type {
	switch label {
	case LabelCyclic:
		return Cyclic
	case LabelDAG:
		return DAG
	case LabelTree:
		return Tree
	default:
		return Unknown
	}
}

// Request is the classification input.
type Request struct {
	Edges     [][2]int `json:"edges"`
	NodeCount int      `json:"node_count"`
}

// Prediction is a classification outcome.
type Prediction struct {
	Type       Type    `json:"type"`
	Confidence float64 `json:"confidence"`
	Label      int     `json:"label"`
	Source     string  `json:"source"`
}

// Classifier predicts the type of an encoded graph.
type Classifier interface {
	Classify(ctx context.Context, req Request) (Prediction, error)
}
