package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/synckairos/synckairos/pkg/database"
	"github.com/synckairos/synckairos/pkg/models"
)

// healthProbeTimeout bounds each dependency check; /health promises an
// answer in under a second per dependency.
const healthProbeTimeout = time.Second

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	AuditDB string `json:"audit_db"`
}

// healthHandler handles GET /health. 200 only when both the store and the
// audit DB answer; otherwise 503 with the failing side marked down.
func (s *Server) healthHandler(c *echo.Context) error {
	resp := HealthResponse{Status: "ok", Store: "up", AuditDB: "up"}
	status := http.StatusOK

	storeCtx, cancelStore := context.WithTimeout(c.Request().Context(), healthProbeTimeout)
	defer cancelStore()
	if err := s.store.Ping(storeCtx); err != nil {
		resp.Store = "down"
	}

	if s.db == nil {
		resp.AuditDB = "down"
	} else {
		dbCtx, cancelDB := context.WithTimeout(c.Request().Context(), healthProbeTimeout)
		defer cancelDB()
		if _, err := database.Health(dbCtx, s.db.DB()); err != nil {
			resp.AuditDB = "down"
		}
	}

	if resp.Store == "down" || resp.AuditDB == "down" {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, resp)
}

// ReadyResponse is the body of GET /ready.
type ReadyResponse struct {
	Ready  bool   `json:"ready"`
	Store  string `json:"store"`
	Worker string `json:"worker"`
}

// readyHandler handles GET /ready: 200 iff the store is reachable and the
// audit worker pool is running. The audit DB itself is a soft dependency.
func (s *Server) readyHandler(c *echo.Context) error {
	resp := ReadyResponse{Ready: true, Store: "up", Worker: "running"}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthProbeTimeout)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		resp.Ready = false
		resp.Store = "down"
	}
	if s.queue == nil || !s.queue.Running() {
		resp.Ready = false
		resp.Worker = "stopped"
	}

	if !resp.Ready {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// metricsHandler serves the Prometheus scrape endpoint.
func (s *Server) metricsHandler(c *echo.Context) error {
	promhttp.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}

// timeHandler handles GET /time: server wall clock anchored to a monotonic
// reading, for client offset estimation.
func (s *Server) timeHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, models.TimeResponse{TimestampMs: s.now().UnixMilli()})
}
