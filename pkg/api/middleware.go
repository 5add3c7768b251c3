package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
)

const correlationIDKey = "correlation_id"

// CorrelationHeader carries the request correlation id; generated when the
// client does not supply one.
const CorrelationHeader = "X-Correlation-ID"

// correlationID returns middleware that tags every request with a
// correlation id, echoed in the response header and the error envelope.
func correlationID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(CorrelationHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(correlationIDKey, id)
			c.Response().Header().Set(CorrelationHeader, id)
			return next(c)
		}
	}
}

func correlationIDFrom(c *echo.Context) string {
	if id, ok := c.Get(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requestTimeout returns middleware that bounds a handler by the configured
// deadline; exceeding it surfaces as 504.
func requestTimeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if errors.Is(err, context.DeadlineExceeded) || (err != nil && ctx.Err() == context.DeadlineExceeded) {
				return context.DeadlineExceeded
			}
			return err
		}
	}
}

// globalRateLimit enforces the per-caller request budget across all session
// routes using the store's fixed-window counters.
func (s *Server) globalRateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if err := s.checkLimit(c, "rl:global:"+callerIdentity(c), s.limits.GlobalPerMinute, time.Minute); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// checkLimit increments a windowed counter and rejects once the budget is
// exceeded. Store failures fail open: the limiter never takes down the API.
func (s *Server) checkLimit(c *echo.Context, key string, limit int64, window time.Duration) error {
	count, err := s.store.IncrWindow(c.Request().Context(), key, window)
	if err != nil {
		slog.Warn("Rate limit check failed, allowing request", "key", key, "error", err)
		return nil
	}
	if count > limit {
		return fmt.Errorf("%w: %s", ErrRateLimited, key)
	}
	return nil
}

// callerIdentity resolves the authenticated caller from proxy headers,
// falling back to the client IP.
func callerIdentity(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return clientIP(c.Request())
}

// clientIP returns the originating client address, honoring the first
// X-Forwarded-For hop.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
