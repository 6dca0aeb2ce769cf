package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/classify"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/playback"
	"github.com/katalvlaran/lvwalk/session"
	"github.com/katalvlaran/lvwalk/traversal"
)

// ErrBadNodeID is returned for a malformed :id path segment.
var ErrBadNodeID = errors.New("server: malformed node id")

// ErrUnknownAction is returned for an unsupported playback action.
var ErrUnknownAction = errors.New("server: unknown playback action")

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrDuplicateEdge):
		return http.StatusConflict
	case errors.Is(err, core.ErrOutOfBounds),
		errors.Is(err, core.ErrTooClose),
		errors.Is(err, core.ErrSelfLoop):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadNodeID),
		errors.Is(err, ErrUnknownAction),
		errors.Is(err, builder.ErrUnknownPreset),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrInvalidProbability),
		errors.Is(err, builder.ErrConstructFailed),
		errors.Is(err, traversal.ErrUnknownAlgorithm),
		errors.Is(err, playback.ErrDelayOutOfRange),
		errors.Is(err, session.ErrEmptyGraph):
		return http.StatusBadRequest
	case errors.Is(err, classify.ErrTransport),
		errors.Is(err, classify.ErrRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// abort writes err with its mapped status.
func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), errorResponse{Error: err.Error()})
}
