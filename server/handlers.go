package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/classify"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/session"
	"github.com/katalvlaran/lvwalk/traversal"
)

// Playback actions accepted by POST /api/playback/:action.
const (
	ActPlay   = "play"
	ActPause  = "pause"
	ActResume = "resume"
	ActStep   = "step"
	ActStop   = "stop"
	ActReset  = "reset"
)

type pointRequest struct {
	X *float64 `json:"x" binding:"required"`
	Y *float64 `json:"y" binding:"required"`
}

type edgeRequest struct {
	From core.NodeID `json:"from" binding:"required"`
	To   core.NodeID `json:"to" binding:"required"`
}

type modeRequest struct {
	Directed *bool `json:"directed" binding:"required"`
}

type startRequest struct {
	Node core.NodeID `json:"node" binding:"required"`
}

type playbackRequest struct {
	Algorithm string `json:"algorithm"`
	DelayMS   *int64 `json:"delay_ms"`
}

type selectResponse struct {
	Outcome string     `json:"outcome"`
	Edge    *core.Edge `json:"edge,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type classifyResponse struct {
	classify.Prediction
	Edges string `json:"edges"`
}

// parseNodeID accepts "12" and "n12".
func parseNodeID(raw string) (core.NodeID, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(raw, "n"), 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadNodeID, raw)
	}

	return core.NodeID(v), nil
}

// runAction applies a playback control by name.
func runAction(sess *session.Session, action string) error {
	switch action {
	case ActPlay:
		sess.Play()
	case ActPause:
		sess.Pause()
	case ActResume:
		sess.Resume()
	case ActStep:
		sess.StepOnce()
	case ActStop:
		sess.Stop()
	case ActReset:
		sess.Reset()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	return nil
}

func (s *Server) respondView(c *gin.Context, code int) {
	c.JSON(code, viewMessage(s.sess.View(), "", MsgView))
}

func (s *Server) getView(c *gin.Context) {
	s.respondView(c, http.StatusOK)
}

func (s *Server) addNode(c *gin.Context) {
	var req pointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	n, err := s.sess.CanvasClicked(*req.X, *req.Y)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *Server) removeNode(c *gin.Context) {
	id, err := parseNodeID(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	if err := s.sess.NodeDoubleClicked(id); err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// selectNode always answers 200 once the node exists; a rejected pair
// reports its error in the body because the selection was still consumed.
func (s *Server) selectNode(c *gin.Context) {
	id, err := parseNodeID(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	out, e, err := s.sess.NodeClicked(id)
	if out == core.SelectIgnored && err != nil {
		abort(c, err)
		return
	}
	resp := selectResponse{Outcome: out.String(), Edge: e}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) addEdge(c *gin.Context) {
	var req edgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	e, err := s.sess.AddEdge(req.From, req.To)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (s *Server) setMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.sess.SetDirected(*req.Directed)
	s.respondView(c, http.StatusOK)
}

func (s *Server) clearGraph(c *gin.Context) {
	s.sess.Clear()
	c.Status(http.StatusNoContent)
}

func (s *Server) setStart(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := s.sess.SetStart(req.Node); err != nil {
		abort(c, err)
		return
	}
	s.respondView(c, http.StatusOK)
}

// setPlayback parses the algorithm before touching the delay so a bad name
// changes nothing.
func (s *Server) setPlayback(c *gin.Context) {
	var req playbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var (
		alg   traversal.Algorithm
		delay time.Duration
		err   error
	)
	if req.Algorithm != "" {
		if alg, err = traversal.ParseAlgorithm(req.Algorithm); err != nil {
			abort(c, err)
			return
		}
	}
	if req.DelayMS != nil {
		delay = time.Duration(*req.DelayMS) * time.Millisecond
		if err = s.sess.SetDelay(delay); err != nil {
			abort(c, err)
			return
		}
	}
	if alg != "" {
		if err = s.sess.SetAlgorithm(alg); err != nil {
			abort(c, err)
			return
		}
	}
	s.respondView(c, http.StatusOK)
}

func (s *Server) loadPreset(c *gin.Context) {
	var req builder.Preset
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := s.sess.LoadPreset(req); err != nil {
		abort(c, err)
		return
	}
	s.respondView(c, http.StatusCreated)
}

func (s *Server) listPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"kinds": builder.Kinds()})
}

func (s *Server) playbackAction(c *gin.Context) {
	if err := runAction(s.sess, c.Param("action")); err != nil {
		abort(c, err)
		return
	}
	s.respondView(c, http.StatusOK)
}

func (s *Server) classify(c *gin.Context) {
	p, req, err := s.sess.ClassifyGraph(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, classifyResponse{
		Prediction: p,
		Edges:      classify.FormatEdges(req.Edges),
	})
}
