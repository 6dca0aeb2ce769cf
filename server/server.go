package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/katalvlaran/lvwalk/session"
)

// ServiceName tags server spans.
const ServiceName = "lvwalk"

const shutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry registers the HTTP collectors on reg and serves reg on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registerer, s.gatherer = reg, reg
		}
	}
}

// Server is the HTTP and WebSocket surface of one Session.
type Server struct {
	sess       *session.Session
	logger     *slog.Logger
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	router  *gin.Engine
	hub     *Hub
	metrics *httpMetrics
}

// New builds the router for sess. Defaults: slog.Default() and the global
// Prometheus registry.
func New(sess *session.Session, opts ...Option) *Server {
	s := &Server{
		sess:       sess,
		logger:     slog.Default(),
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newHTTPMetrics(s.registerer)
	s.hub = newHub(sess, s.logger, s.metrics)
	s.router = s.routes()

	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), otelgin.Middleware(ServiceName), s.metrics.middleware())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	r.GET("/ws", func(c *gin.Context) { s.hub.serve(c.Writer, c.Request) })

	api := r.Group("/api")
	{
		api.GET("/view", s.getView)
		api.POST("/nodes", s.addNode)
		api.DELETE("/nodes/:id", s.removeNode)
		api.POST("/nodes/:id/select", s.selectNode)
		api.POST("/edges", s.addEdge)
		api.PUT("/mode", s.setMode)
		api.DELETE("/graph", s.clearGraph)
		api.GET("/presets", s.listPresets)
		api.POST("/presets", s.loadPreset)
		api.PUT("/start", s.setStart)
		api.PUT("/playback", s.setPlayback)
		api.POST("/playback/:action", s.playbackAction)
		api.POST("/classify", s.classify)
	}

	return r
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub { return s.hub }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.hub.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
