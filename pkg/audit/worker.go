package audit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// applyTimeout bounds a single relational write.
const applyTimeout = 10 * time.Second

// Worker claims jobs from the ready list and applies them to the audit
// database, classifying failures as retryable or not.
type Worker struct {
	id       string
	queue    *Queue
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorker creates an audit worker bound to its queue.
func NewWorker(id string, queue *Queue) *Worker {
	return &Worker{
		id:     id,
		queue:  queue,
		stopCh: make(chan struct{}),
	}
}

// Start begins the claim loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the in-flight job to
// finish. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Debug("Audit worker started")

	for {
		select {
		case <-w.stopCh:
			log.Debug("Audit worker shutting down")
			return
		case <-ctx.Done():
			log.Debug("Context cancelled, audit worker shutting down")
			return
		default:
			raw, err := w.claim(ctx)
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				log.Warn("Audit claim failed", "error", err)
				w.sleep(time.Second)
				continue
			}
			w.process(ctx, raw)
		}
	}
}

// claim blocks on the ready list for at most PollInterval so the loop can
// notice shutdown.
func (w *Worker) claim(ctx context.Context) (string, error) {
	res, err := w.queue.rdb.BRPop(ctx, w.queue.cfg.PollInterval, auditJobsKey).Result()
	if err != nil {
		return "", err
	}
	// BRPOP returns [key, value].
	if len(res) != 2 {
		return "", redis.Nil
	}
	return res[1], nil
}

func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

func (w *Worker) process(ctx context.Context, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		// Malformed payloads can never succeed; keep them for forensics.
		slog.Error("Malformed audit job, moving to dead list", "worker_id", w.id, "error", err)
		if err := w.queue.rdb.LPush(ctx, auditDeadKey, raw).Err(); err != nil {
			slog.Error("Failed to record malformed audit job", "error", err)
		}
		return
	}

	applyCtx, cancel := context.WithTimeout(ctx, applyTimeout)
	err := w.queue.applier.Apply(applyCtx, &job)
	cancel()

	if err == nil {
		w.queue.complete(ctx, &job, "completed")
		return
	}

	if !classify(err) {
		slog.Warn("Non-retryable audit write, marking job complete",
			"worker_id", w.id,
			"job_id", job.ID,
			"session_id", job.SessionID,
			"event_type", job.EventType,
			"error", err)
		w.queue.complete(ctx, &job, "skipped")
		return
	}

	slog.Warn("Audit write failed, scheduling retry",
		"worker_id", w.id,
		"job_id", job.ID,
		"session_id", job.SessionID,
		"attempt", job.Attempts+1,
		"error", err)
	w.queue.requeue(ctx, &job, err)
}
