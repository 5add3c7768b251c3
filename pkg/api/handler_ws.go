package api

import (
	"fmt"
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/synckairos/synckairos/pkg/hub"
	"github.com/synckairos/synckairos/pkg/store"
)

// wsHandler handles GET /sessions/:id/ws: validates the handshake, applies
// the connection quotas, upgrades, and hands the socket to the hub.
// HandleConnection blocks until the socket closes.
func (s *Server) wsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if s.auth != nil {
		if err := s.auth(c.Request(), sessionID); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "handshake rejected")
		}
	}

	// The session must exist before we hold a socket open for it.
	state, err := s.store.Get(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	if state == nil {
		return fmt.Errorf("%w: %s", store.ErrSessionNotFound, sessionID)
	}

	if err := s.hub.Admit(clientIP(c.Request())); err != nil {
		switch err {
		case hub.ErrIPQuota:
			return ErrRateLimited
		case hub.ErrInstanceFull:
			return echo.NewHTTPError(http.StatusServiceUnavailable, "connection limit reached")
		}
		return err
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: s.cfg.AllowedOrigins,
	})
	if err != nil {
		return err
	}

	s.hub.HandleConnection(c.Request().Context(), conn, sessionID, c.Request().UserAgent())
	return nil
}
