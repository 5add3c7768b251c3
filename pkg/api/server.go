// Package api is the REST and WebSocket surface. Handlers stay thin:
// validation at the boundary, then delegation to the engine; every error
// leaves through the central envelope mapper.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/synckairos/synckairos/pkg/audit"
	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/database"
	"github.com/synckairos/synckairos/pkg/engine"
	"github.com/synckairos/synckairos/pkg/hub"
	"github.com/synckairos/synckairos/pkg/store"
)

// Server is the HTTP server.
type Server struct {
	cfg    config.ServerConfig
	limits config.RateLimits

	engine *engine.Engine
	store  *store.Client
	db     *database.Client
	hub    *hub.Hub
	queue  *audit.Queue
	auth   hub.AuthFunc

	echo    *echo.Echo
	httpSrv *http.Server

	// start anchors /time to a monotonic reading taken at construction.
	start time.Time
}

// NewServer wires the surface. db and queue may be nil in tests that do not
// exercise health or idempotency mirroring. A nil auth accepts every
// handshake.
func NewServer(
	cfg config.ServerConfig,
	eng *engine.Engine,
	st *store.Client,
	db *database.Client,
	h *hub.Hub,
	queue *audit.Queue,
	auth hub.AuthFunc,
) *Server {
	s := &Server{
		cfg:    cfg,
		limits: cfg.Limits,
		engine: eng,
		store:  st,
		db:     db,
		hub:    h,
		queue:  queue,
		auth:   auth,
		start:  time.Now(),
	}

	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.Use(correlationID())
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e
	s.httpSrv = &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	// System surface: no deadline middleware, no rate limits.
	e.GET("/health", s.healthHandler)
	e.GET("/ready", s.readyHandler)
	e.GET("/metrics", s.metricsHandler)
	e.GET("/time", s.timeHandler)

	// The WebSocket upgrade outlives any request deadline.
	e.GET("/sessions/:id/ws", s.wsHandler)

	sessions := e.Group("/sessions",
		requestTimeout(s.cfg.RequestTimeout),
		s.globalRateLimit(),
	)
	sessions.POST("", s.createSessionHandler)
	sessions.POST("/batch", s.batchHandler)
	sessions.GET("/:id", s.getSessionHandler)
	sessions.DELETE("/:id", s.deleteSessionHandler)
	sessions.GET("/:id/poll", s.pollHandler)
	sessions.POST("/:id/start", s.startSessionHandler)
	sessions.POST("/:id/switch", s.switchCycleHandler)
	sessions.POST("/:id/pause", s.pauseSessionHandler)
	sessions.POST("/:id/resume", s.resumeSessionHandler)
	sessions.POST("/:id/complete", s.completeSessionHandler)
	sessions.POST("/:id/cancel", s.cancelSessionHandler)
}

// Handler exposes the routing tree, for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	slog.Info("HTTP server starting", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops intake and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// now is the monotonic-anchored wall clock served by /time.
func (s *Server) now() time.Time {
	return s.start.Add(time.Since(s.start))
}
