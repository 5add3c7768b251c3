package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/metrics"
)

// Queue is the audit job queue: a Redis ready list drained by a local
// worker pool, with a scheduled set for backoff retries. Every instance
// runs a pool; any instance's workers may process any instance's jobs.
type Queue struct {
	rdb     *redis.Client
	cfg     *config.QueueConfig
	applier Applier
	alerts  AlertSink

	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
	closed   atomic.Bool
	now      func() time.Time
}

// NewQueue creates an audit queue. A nil alerts sink falls back to
// structured error logs.
func NewQueue(rdb *redis.Client, cfg *config.QueueConfig, applier Applier, alerts AlertSink) *Queue {
	if alerts == nil {
		alerts = LogAlertSink{}
	}
	return &Queue{
		rdb:     rdb,
		cfg:     cfg,
		applier: applier,
		alerts:  alerts,
		workers: make([]*Worker, 0, cfg.WorkerCount),
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}
}

// Start spawns the worker pool, the retry promoter, and the depth monitor.
// Safe to call once; subsequent calls are no-ops.
func (q *Queue) Start(ctx context.Context) {
	if q.started {
		slog.Warn("Audit queue already started, ignoring duplicate Start call")
		return
	}
	q.started = true

	slog.Info("Starting audit queue", "worker_count", q.cfg.WorkerCount)

	for i := 0; i < q.cfg.WorkerCount; i++ {
		worker := NewWorker(fmt.Sprintf("audit-worker-%d", i), q)
		q.workers = append(q.workers, worker)
		worker.Start(ctx)
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.runScheduler(ctx)
	}()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.runDepthMonitor(ctx)
	}()

	slog.Info("Audit queue started")
}

// Running reports whether the worker pool has started and not been closed.
// Consulted by the readiness probe.
func (q *Queue) Running() bool {
	return q.started && !q.closed.Load()
}

// Enqueue queues an audit event. Fire-and-forget: failures are logged and
// never propagate to the caller; the user request already succeeded.
func (q *Queue) Enqueue(ctx context.Context, rec Record) {
	if rec.State == nil {
		slog.Error("Audit enqueue without state", "event_type", rec.EventType)
		return
	}

	snapshot, err := json.Marshal(rec.State)
	if err != nil {
		slog.Error("Failed to marshal audit snapshot",
			"session_id", rec.State.SessionID, "error", err)
		return
	}

	job := &Job{
		ID:              uuid.NewString(),
		Kind:            KindEvent,
		SessionID:       rec.State.SessionID,
		EventType:       rec.EventType,
		Timestamp:       q.now().UTC(),
		Version:         rec.State.Version,
		TimeRemainingMs: rec.TimeRemainingMs,
		StateSnapshot:   snapshot,
		Metadata:        rec.Metadata,
		EnqueuedAt:      q.now().UTC(),
	}
	if rec.ParticipantID != "" {
		pid := rec.ParticipantID
		job.ParticipantID = &pid
	}

	q.push(ctx, job)
}

// EnqueueIdempotency queues the durable mirror of a cached idempotent
// response. Fire-and-forget, like Enqueue.
func (q *Queue) EnqueueIdempotency(ctx context.Context, key string, response []byte) {
	job := &Job{
		ID:             uuid.NewString(),
		Kind:           KindIdempotency,
		IdempotencyKey: key,
		Response:       response,
		EnqueuedAt:     q.now().UTC(),
	}
	q.push(ctx, job)
}

func (q *Queue) push(ctx context.Context, job *Job) {
	if q.closed.Load() {
		slog.Warn("Audit enqueue after close, dropping job",
			"job_id", job.ID, "session_id", job.SessionID)
		return
	}

	data, err := json.Marshal(job)
	if err != nil {
		slog.Error("Failed to marshal audit job", "job_id", job.ID, "error", err)
		return
	}
	if err := q.rdb.LPush(ctx, auditJobsKey, data).Err(); err != nil {
		slog.Error("Audit enqueue failed",
			"job_id", job.ID, "session_id", job.SessionID, "error", err)
	}
}

// Metrics returns the current backlog depths.
func (q *Queue) Metrics(ctx context.Context) (Metrics, error) {
	var m Metrics
	var err error
	if m.Ready, err = q.rdb.LLen(ctx, auditJobsKey).Result(); err != nil {
		return m, err
	}
	if m.Scheduled, err = q.rdb.ZCard(ctx, auditScheduledKey).Result(); err != nil {
		return m, err
	}
	if m.Completed, err = q.rdb.LLen(ctx, auditCompletedKey).Result(); err != nil {
		return m, err
	}
	if m.Dead, err = q.rdb.LLen(ctx, auditDeadKey).Result(); err != nil {
		return m, err
	}
	return m, nil
}

// Close stops accepting jobs and shuts the pool down, letting workers
// finish their in-flight job. Queued jobs stay in Redis for the next start
// (any instance's pool may drain them).
func (q *Queue) Close() {
	q.closed.Store(true)

	slog.Info("Stopping audit queue")
	q.stopOnce.Do(func() { close(q.stopCh) })

	done := make(chan struct{})
	go func() {
		for _, worker := range q.workers {
			worker.Stop()
		}
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Audit queue stopped")
	case <-time.After(q.cfg.GracefulShutdownTimeout):
		slog.Warn("Audit queue shutdown timed out before workers drained",
			"timeout", q.cfg.GracefulShutdownTimeout)
	}
}

// runScheduler promotes due retries from the scheduled set to the ready
// list. ZRem acts as the claim: exactly one instance's scheduler wins a
// member even when several scan concurrently.
func (q *Queue) runScheduler(ctx context.Context) {
	ticker := time.NewTicker(q.cfg.ScheduledScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-q.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			q.promoteDue(ctx)
		}
	}
}

func (q *Queue) promoteDue(ctx context.Context) {
	now := q.now().UnixMilli()
	members, err := q.rdb.ZRangeByScore(ctx, auditScheduledKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   fmt.Sprintf("%d", now),
		Count: 128,
	}).Result()
	if err != nil {
		slog.Warn("Failed to scan scheduled audit jobs", "error", err)
		return
	}

	for _, member := range members {
		removed, err := q.rdb.ZRem(ctx, auditScheduledKey, member).Result()
		if err != nil {
			slog.Warn("Failed to claim scheduled audit job", "error", err)
			continue
		}
		if removed == 0 {
			continue // another scheduler won
		}
		if err := q.rdb.LPush(ctx, auditJobsKey, member).Err(); err != nil {
			slog.Error("Failed to promote scheduled audit job", "error", err)
		}
	}
}

func (q *Queue) runDepthMonitor(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-q.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			m, err := q.Metrics(ctx)
			if err != nil {
				continue
			}
			metrics.AuditQueueDepth.WithLabelValues("ready").Set(float64(m.Ready))
			metrics.AuditQueueDepth.WithLabelValues("scheduled").Set(float64(m.Scheduled))
			metrics.AuditQueueDepth.WithLabelValues("dead").Set(float64(m.Dead))
		}
	}
}

// backoff returns the retry delay for the given attempt count (1-based),
// doubling from BackoffBase up to BackoffMax: 2s, 4s, 8s, 16s, 32s.
func (q *Queue) backoff(attempts int) time.Duration {
	d := q.cfg.BackoffBase
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= q.cfg.BackoffMax {
			return q.cfg.BackoffMax
		}
	}
	return d
}

// requeue schedules a retry or declares the job dead once its attempt
// budget is spent.
func (q *Queue) requeue(ctx context.Context, job *Job, cause error) {
	job.Attempts++
	job.LastError = cause.Error()

	data, err := json.Marshal(job)
	if err != nil {
		slog.Error("Failed to marshal audit job for retry", "job_id", job.ID, "error", err)
		return
	}

	if job.Attempts >= q.cfg.MaxAttempts {
		metrics.AuditJobs.WithLabelValues("dead").Inc()
		if err := q.rdb.LPush(ctx, auditDeadKey, data).Err(); err != nil {
			slog.Error("Failed to record dead audit job", "job_id", job.ID, "error", err)
		}
		q.alerts.Emit(ctx, Alert{
			JobID:     job.ID,
			SessionID: job.SessionID,
			EventType: string(job.EventType),
			Attempts:  job.Attempts,
			LastError: job.LastError,
		})
		return
	}

	metrics.AuditJobs.WithLabelValues("retried").Inc()
	due := q.now().Add(q.backoff(job.Attempts)).UnixMilli()
	if err := q.rdb.ZAdd(ctx, auditScheduledKey, redis.Z{Score: float64(due), Member: data}).Err(); err != nil {
		slog.Error("Failed to schedule audit retry", "job_id", job.ID, "error", err)
	}
}

// complete records a finished job, keeping only the most recent
// CompletedRetention entries.
func (q *Queue) complete(ctx context.Context, job *Job, outcome string) {
	metrics.AuditJobs.WithLabelValues(outcome).Inc()

	data, err := json.Marshal(job)
	if err != nil {
		return
	}
	pipe := q.rdb.TxPipeline()
	pipe.LPush(ctx, auditCompletedKey, data)
	pipe.LTrim(ctx, auditCompletedKey, 0, int64(q.cfg.CompletedRetention-1))
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Failed to record completed audit job", "job_id", job.ID, "error", err)
	}
}
