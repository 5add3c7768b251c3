// Package audit provides the durable audit job queue. Jobs are enqueued on
// the hot path (fire-and-forget) and drained by a worker pool that writes
// the relational audit trail the recovery loader depends on.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/synckairos/synckairos/pkg/models"
)

// Queue key layout. Ready jobs are LPUSHed to auditJobsKey and claimed with
// BRPOP; retries wait in the auditScheduledKey ZSET scored by due time.
const (
	auditJobsKey      = "audit:jobs"
	auditScheduledKey = "audit:scheduled"
	auditCompletedKey = "audit:completed"
	auditDeadKey      = "audit:dead"
)

// Job kinds.
const (
	KindEvent       = "event"
	KindIdempotency = "idempotency"
)

// Job is the wire form of one queued audit write.
type Job struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	// Event jobs.
	SessionID       string           `json:"session_id,omitempty"`
	EventType       models.EventType `json:"event_type,omitempty"`
	Timestamp       time.Time        `json:"timestamp,omitzero"`
	Version         int64            `json:"version,omitempty"`
	ParticipantID   *string          `json:"participant_id,omitempty"`
	TimeRemainingMs *int64           `json:"time_remaining_ms,omitempty"`
	StateSnapshot   json.RawMessage  `json:"state_snapshot,omitempty"`
	Metadata        map[string]any   `json:"metadata,omitempty"`

	// Idempotency jobs.
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
	Response       json.RawMessage `json:"response,omitempty"`

	Attempts   int       `json:"attempts"`
	EnqueuedAt time.Time `json:"enqueued_at"`
	LastError  string    `json:"last_error,omitempty"`
}

// Record is the caller-facing description of an audit event.
type Record struct {
	EventType       models.EventType
	State           *models.SessionState
	ParticipantID   string
	TimeRemainingMs *int64
	Metadata        map[string]any
}

// Applier performs the relational write for one job. Implemented by
// entApplier; swapped for fakes in queue tests.
type Applier interface {
	Apply(ctx context.Context, job *Job) error
}

// Metrics is a point-in-time view of the queue backlog.
type Metrics struct {
	Ready     int64 `json:"ready"`
	Scheduled int64 `json:"scheduled"`
	Completed int64 `json:"completed"`
	Dead      int64 `json:"dead"`
}

// Alert describes a job that exhausted its attempts.
type Alert struct {
	JobID     string `json:"job_id"`
	SessionID string `json:"session_id"`
	EventType string `json:"event_type"`
	Attempts  int    `json:"attempts"`
	LastError string `json:"last_error"`
}

// AlertSink receives escalations for dead jobs.
type AlertSink interface {
	Emit(ctx context.Context, alert Alert)
}
