package audit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/models"
)

type fakeApplier struct {
	mu   sync.Mutex
	jobs []Job
	errs []error // popped per call; nil slice means always succeed
}

func (f *fakeApplier) Apply(_ context.Context, job *Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = append(f.jobs, *job)
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func (f *fakeApplier) applied() []Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Job, len(f.jobs))
	copy(out, f.jobs)
	return out
}

type fakeSink struct {
	mu     sync.Mutex
	alerts []Alert
}

func (f *fakeSink) Emit(_ context.Context, alert Alert) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, alert)
}

func (f *fakeSink) all() []Alert {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Alert, len(f.alerts))
	copy(out, f.alerts)
	return out
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.ScheduledScanInterval = 20 * time.Millisecond
	return cfg
}

func newTestQueue(t *testing.T, applier Applier, sink AlertSink) (*Queue, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	q := NewQueue(rdb, testQueueConfig(), applier, sink)
	return q, rdb
}

func runningState(id string) *models.SessionState {
	now := time.Now().UTC()
	return &models.SessionState{
		SessionID: id,
		SyncMode:  models.ModePerParticipant,
		Status:    models.StatusRunning,
		Version:   2,
		CreatedAt: now,
		UpdatedAt: now,
		Participants: []models.Participant{
			{ParticipantID: "p1", ParticipantIndex: 0, IsActive: true},
			{ParticipantID: "p2", ParticipantIndex: 1},
		},
	}
}

func TestEnqueue_PushesJob(t *testing.T) {
	q, rdb := newTestQueue(t, &fakeApplier{}, nil)
	ctx := context.Background()

	remaining := int64(57000)
	q.Enqueue(ctx, Record{
		EventType:       models.EventCycleSwitched,
		State:           runningState("sess-1"),
		ParticipantID:   "p1",
		TimeRemainingMs: &remaining,
	})

	raw, err := rdb.LRange(ctx, auditJobsKey, 0, -1).Result()
	require.NoError(t, err)
	require.Len(t, raw, 1)

	var job Job
	require.NoError(t, json.Unmarshal([]byte(raw[0]), &job))
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, KindEvent, job.Kind)
	assert.Equal(t, "sess-1", job.SessionID)
	assert.Equal(t, models.EventCycleSwitched, job.EventType)
	assert.Equal(t, int64(2), job.Version)
	require.NotNil(t, job.ParticipantID)
	assert.Equal(t, "p1", *job.ParticipantID)
	require.NotNil(t, job.TimeRemainingMs)
	assert.Equal(t, int64(57000), *job.TimeRemainingMs)
	assert.NotEmpty(t, job.StateSnapshot)
	assert.Zero(t, job.Attempts)
}

func TestEnqueue_AfterCloseDropsJob(t *testing.T) {
	q, rdb := newTestQueue(t, &fakeApplier{}, nil)
	ctx := context.Background()

	q.Close()
	q.Enqueue(ctx, Record{EventType: models.EventSessionCreated, State: runningState("sess-1")})

	depth, err := rdb.LLen(ctx, auditJobsKey).Result()
	require.NoError(t, err)
	assert.Zero(t, depth)
}

type stuckApplier struct {
	started chan struct{}
	release chan struct{}
}

func (s *stuckApplier) Apply(_ context.Context, _ *Job) error {
	close(s.started)
	<-s.release
	return nil
}

func TestClose_BoundedByShutdownTimeout(t *testing.T) {
	applier := &stuckApplier{started: make(chan struct{}), release: make(chan struct{})}
	defer close(applier.release)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := testQueueConfig()
	cfg.WorkerCount = 1
	cfg.GracefulShutdownTimeout = 100 * time.Millisecond
	q := NewQueue(rdb, cfg, applier, nil)
	ctx := context.Background()
	q.Start(ctx)

	q.Enqueue(ctx, Record{EventType: models.EventSessionCreated, State: runningState("sess-1")})

	select {
	case <-applier.started:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never claimed the job")
	}

	closed := make(chan struct{})
	go func() {
		q.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close blocked past the shutdown timeout on a stuck job")
	}
}

func TestWorker_CompletesJob(t *testing.T) {
	applier := &fakeApplier{}
	q, rdb := newTestQueue(t, applier, nil)
	ctx := context.Background()

	q.Start(ctx)
	defer q.Close()

	q.Enqueue(ctx, Record{EventType: models.EventSessionStarted, State: runningState("sess-1")})

	require.Eventually(t, func() bool {
		return len(applier.applied()) == 1
	}, 3*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		n, _ := rdb.LLen(ctx, auditCompletedKey).Result()
		return n == 1
	}, 3*time.Second, 10*time.Millisecond)

	jobs := applier.applied()
	assert.Equal(t, "sess-1", jobs[0].SessionID)
	assert.Equal(t, models.EventSessionStarted, jobs[0].EventType)
}

func TestWorker_NonRetryableCompletes(t *testing.T) {
	applier := &fakeApplier{errs: []error{&pgconn.PgError{Code: "23505"}}}
	sink := &fakeSink{}
	q, rdb := newTestQueue(t, applier, sink)
	ctx := context.Background()

	q.Start(ctx)
	defer q.Close()

	q.Enqueue(ctx, Record{EventType: models.EventCycleSwitched, State: runningState("sess-1")})

	// The unique collision completes without a retry or an alert.
	require.Eventually(t, func() bool {
		n, _ := rdb.LLen(ctx, auditCompletedKey).Result()
		return n == 1
	}, 3*time.Second, 10*time.Millisecond)

	assert.Len(t, applier.applied(), 1)
	scheduled, _ := rdb.ZCard(ctx, auditScheduledKey).Result()
	assert.Zero(t, scheduled)
	assert.Empty(t, sink.all())
}

func TestWorker_RetryableRetriesAndSucceeds(t *testing.T) {
	applier := &fakeApplier{errs: []error{&pgconn.PgError{Code: "40P01"}}}
	q, rdb := newTestQueue(t, applier, nil)
	ctx := context.Background()

	// Immediate retries so the test does not wait out real backoff.
	q.cfg.BackoffBase = time.Millisecond
	q.cfg.BackoffMax = time.Millisecond

	q.Start(ctx)
	defer q.Close()

	q.Enqueue(ctx, Record{EventType: models.EventCycleSwitched, State: runningState("sess-1")})

	require.Eventually(t, func() bool {
		return len(applier.applied()) == 2
	}, 5*time.Second, 10*time.Millisecond)

	jobs := applier.applied()
	assert.Equal(t, 0, jobs[0].Attempts)
	assert.Equal(t, 1, jobs[1].Attempts)
	assert.Contains(t, jobs[1].LastError, "40P01")

	require.Eventually(t, func() bool {
		n, _ := rdb.LLen(ctx, auditCompletedKey).Result()
		return n == 1
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWorker_ExhaustionEscalates(t *testing.T) {
	failing := make([]error, 10)
	for i := range failing {
		failing[i] = errors.New("connection refused")
	}
	applier := &fakeApplier{errs: failing}
	sink := &fakeSink{}
	q, rdb := newTestQueue(t, applier, sink)
	ctx := context.Background()

	q.cfg.MaxAttempts = 3
	q.cfg.BackoffBase = time.Millisecond
	q.cfg.BackoffMax = time.Millisecond

	q.Start(ctx)
	defer q.Close()

	q.Enqueue(ctx, Record{EventType: models.EventSessionCompleted, State: runningState("sess-dead")})

	require.Eventually(t, func() bool {
		n, _ := rdb.LLen(ctx, auditDeadKey).Result()
		return n == 1
	}, 5*time.Second, 10*time.Millisecond)

	alerts := sink.all()
	require.Len(t, alerts, 1)
	assert.Equal(t, "sess-dead", alerts[0].SessionID)
	assert.Equal(t, string(models.EventSessionCompleted), alerts[0].EventType)
	assert.Equal(t, 3, alerts[0].Attempts)
	assert.Contains(t, alerts[0].LastError, "connection refused")
}

func TestBackoffSchedule(t *testing.T) {
	q, _ := newTestQueue(t, &fakeApplier{}, nil)

	assert.Equal(t, 2*time.Second, q.backoff(1))
	assert.Equal(t, 4*time.Second, q.backoff(2))
	assert.Equal(t, 8*time.Second, q.backoff(3))
	assert.Equal(t, 16*time.Second, q.backoff(4))
	assert.Equal(t, 32*time.Second, q.backoff(5))
	assert.Equal(t, 32*time.Second, q.backoff(9))
}

func TestCompletedRetention(t *testing.T) {
	applier := &fakeApplier{}
	q, rdb := newTestQueue(t, applier, nil)
	ctx := context.Background()

	q.cfg.CompletedRetention = 5

	q.Start(ctx)
	defer q.Close()

	for i := 0; i < 20; i++ {
		q.Enqueue(ctx, Record{EventType: models.EventCycleSwitched, State: runningState("sess-r")})
	}

	require.Eventually(t, func() bool {
		return len(applier.applied()) == 20
	}, 5*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		n, _ := rdb.LLen(ctx, auditCompletedKey).Result()
		return n == 5
	}, 3*time.Second, 10*time.Millisecond)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"fk violation", &pgconn.PgError{Code: "23503"}, false},
		{"check violation", &pgconn.PgError{Code: "23514"}, false},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"connection exception", &pgconn.PgError{Code: "08006"}, true},
		{"insufficient resources", &pgconn.PgError{Code: "53300"}, true},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true},
		{"deadline", context.DeadlineExceeded, true},
		{"plain transport error", errors.New("dial tcp: connection refused"), true},
		{"other pg error", &pgconn.PgError{Code: "22001"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, classify(tt.err))
		})
	}
}
