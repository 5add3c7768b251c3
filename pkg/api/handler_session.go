package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/synckairos/synckairos/pkg/models"
	"github.com/synckairos/synckairos/pkg/store"
)

// IdempotencyHeader makes a switch request replayable: repeated requests
// with the same key return the cached response bit-for-bit for 24 h.
const IdempotencyHeader = "Idempotency-Key"

// maxBatchSize bounds POST /sessions/batch.
const maxBatchSize = 50

// createSessionHandler handles POST /sessions.
func (s *Server) createSessionHandler(c *echo.Context) error {
	if err := s.checkLimit(c, "rl:create:"+callerIdentity(c), s.limits.CreatePerMinute, time.Minute); err != nil {
		return err
	}

	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	state, err := s.engine.CreateSession(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, state)
}

// getSessionHandler handles GET /sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	state, err := s.engine.GetCurrentState(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

// deleteSessionHandler handles DELETE /sessions/:id.
func (s *Server) deleteSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.engine.DeleteSession(c.Request().Context(), sessionID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// startSessionHandler handles POST /sessions/:id/start.
func (s *Server) startSessionHandler(c *echo.Context) error {
	state, err := s.engine.StartSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

// switchCycleHandler handles POST /sessions/:id/switch, the hot path.
// An Idempotency-Key header short-circuits to the cached response.
func (s *Server) switchCycleHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	ctx := c.Request().Context()

	if err := s.checkLimit(c, "rl:switch:"+sessionID, s.limits.SwitchPerSecond, time.Second); err != nil {
		return err
	}

	idemKey := c.Request().Header.Get(IdempotencyHeader)
	if idemKey != "" {
		cached, found, err := s.store.GetIdempotent(ctx, idemKey)
		if err == nil && found {
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, cached)
		}
	}

	var req models.SwitchRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}

	result, err := s.engine.SwitchCycle(ctx, sessionID, req.CurrentParticipantID, req.NextParticipantID)
	if err != nil {
		return err
	}

	body, err := json.Marshal(result)
	if err != nil {
		return err
	}

	if idemKey != "" {
		// First writer wins in the store; the durable mirror follows async.
		if err := s.store.PutIdempotent(ctx, idemKey, body); err != nil {
			// Cache failures do not fail the switch.
			slog.Warn("Idempotency cache write failed", "key", idemKey, "error", err)
		}
		if s.queue != nil {
			s.queue.EnqueueIdempotency(ctx, idemKey, body)
		}
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
}

// pauseSessionHandler handles POST /sessions/:id/pause.
func (s *Server) pauseSessionHandler(c *echo.Context) error {
	state, err := s.engine.PauseSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

// resumeSessionHandler handles POST /sessions/:id/resume.
func (s *Server) resumeSessionHandler(c *echo.Context) error {
	state, err := s.engine.ResumeSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

// completeSessionHandler handles POST /sessions/:id/complete.
func (s *Server) completeSessionHandler(c *echo.Context) error {
	state, err := s.engine.CompleteSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

// cancelSessionHandler handles POST /sessions/:id/cancel.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	state, err := s.engine.CancelSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

// pollHandler handles GET /sessions/:id/poll. Returns 304 when the client's
// since_version is already current, else the full state.
func (s *Server) pollHandler(c *echo.Context) error {
	state, err := s.engine.GetCurrentState(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if v := c.QueryParam("since_version"); v != "" {
		since, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since_version")
		}
		if since >= state.Version {
			return c.NoContent(http.StatusNotModified)
		}
	}
	return c.JSON(http.StatusOK, state)
}

// batchHandler handles POST /sessions/batch: up to 50 session reads in one
// round-trip. Absent ids are reported, not errored.
func (s *Server) batchHandler(c *echo.Context) error {
	var req models.BatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.SessionIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "session_ids is required")
	}
	if len(req.SessionIDs) > maxBatchSize {
		return echo.NewHTTPError(http.StatusBadRequest, "session_ids exceeds the batch limit of 50")
	}

	ctx := c.Request().Context()
	resp := models.BatchResponse{Sessions: make(map[string]*models.SessionState, len(req.SessionIDs))}
	for _, id := range req.SessionIDs {
		state, err := s.engine.GetCurrentState(ctx, id)
		switch {
		case err == nil:
			resp.Sessions[id] = state
		case isNotFound(err):
			resp.Missing = append(resp.Missing, id)
		default:
			return err
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrSessionNotFound)
}
