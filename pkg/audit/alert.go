package audit

import (
	"context"
	"log/slog"
)

// LogAlertSink is the default AlertSink: a structured error log entry per
// dead job. Deployments that page on audit loss plug in their own sink.
type LogAlertSink struct{}

// Emit logs the escalation.
func (LogAlertSink) Emit(_ context.Context, alert Alert) {
	slog.Error("Audit job exhausted all attempts",
		"job_id", alert.JobID,
		"session_id", alert.SessionID,
		"event_type", alert.EventType,
		"attempts", alert.Attempts,
		"last_error", alert.LastError)
}
