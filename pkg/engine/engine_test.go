package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synckairos/synckairos/pkg/audit"
	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/models"
	"github.com/synckairos/synckairos/pkg/store"
)

// fakeClock is a settable wall clock shared by the engine and the store.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func (c *fakeClock) Rewind(d time.Duration) {
	c.Advance(-d)
}

func newTestEngine(t *testing.T) (*Engine, *store.Client, *fakeClock) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	st := store.NewClient(rdb, config.DefaultRedisConfig())

	// The queue is never started here; Enqueue only pushes to the ready
	// list, which is all the engine needs.
	q := audit.NewQueue(rdb, config.DefaultQueueConfig(), nil, nil)

	clk := newFakeClock()
	e := NewEngine(st, q)
	e.now = clk.Now
	return e, st, clk
}

func createRequest(participants int, totalMs int64) *models.CreateSessionRequest {
	req := &models.CreateSessionRequest{
		SessionID: uuid.NewString(),
		SyncMode:  models.ModePerParticipant,
	}
	for i := 0; i < participants; i++ {
		req.Participants = append(req.Participants, models.CreateParticipantInput{
			ParticipantID: uuid.NewString(),
			TotalTimeMs:   totalMs,
		})
	}
	return req
}

func mustCreate(t *testing.T, e *Engine, req *models.CreateSessionRequest) *models.SessionState {
	t.Helper()
	state, err := e.CreateSession(context.Background(), req)
	require.NoError(t, err)
	return state
}

func mustStart(t *testing.T, e *Engine, id string) *models.SessionState {
	t.Helper()
	state, err := e.StartSession(context.Background(), id)
	require.NoError(t, err)
	return state
}

func TestCreateSession(t *testing.T) {
	e, _, clk := newTestEngine(t)

	req := createRequest(2, 600_000)
	state := mustCreate(t, e, req)

	assert.Equal(t, req.SessionID, state.SessionID)
	assert.Equal(t, models.StatusPending, state.Status)
	assert.Equal(t, int64(1), state.Version)
	assert.Equal(t, clk.Now(), state.CreatedAt)
	assert.Nil(t, state.CycleStartedAt)
	assert.Nil(t, state.SessionStartedAt)
	require.Len(t, state.Participants, 2)
	for i, p := range state.Participants {
		assert.Equal(t, i, p.ParticipantIndex)
		assert.Equal(t, int64(600_000), p.TotalTimeMs)
		assert.Equal(t, int64(600_000), p.TimeRemainingMs)
		assert.Zero(t, p.TimeUsedMs)
		assert.Zero(t, p.CycleCount)
		assert.False(t, p.IsActive)
		assert.False(t, p.HasExpired)
	}
}

func TestCreateSession_Validation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.CreateSessionRequest)
	}{
		{"bad session id", func(r *models.CreateSessionRequest) { r.SessionID = "not-a-uuid" }},
		{"bad mode", func(r *models.CreateSessionRequest) { r.SyncMode = "turbo" }},
		{"no participants", func(r *models.CreateSessionRequest) { r.Participants = nil }},
		{"bad participant id", func(r *models.CreateSessionRequest) {
			r.Participants[0].ParticipantID = "nope"
		}},
		{"duplicate participant id", func(r *models.CreateSessionRequest) {
			r.Participants[1].ParticipantID = r.Participants[0].ParticipantID
		}},
		{"total time too small", func(r *models.CreateSessionRequest) {
			r.Participants[0].TotalTimeMs = 999
		}},
		{"total time too large", func(r *models.CreateSessionRequest) {
			r.Participants[0].TotalTimeMs = 86_400_001
		}},
		{"increment too large", func(r *models.CreateSessionRequest) { r.IncrementMs = 60_001 }},
		{"negative increment", func(r *models.CreateSessionRequest) { r.IncrementMs = -1 }},
		{"time per cycle too small", func(r *models.CreateSessionRequest) { r.TimePerCycleMs = 500 }},
		{"sparse explicit indexes", func(r *models.CreateSessionRequest) {
			zero, two := 0, 2
			r.Participants[0].ParticipantIndex = &zero
			r.Participants[1].ParticipantIndex = &two
		}},
		{"partial explicit indexes", func(r *models.CreateSessionRequest) {
			zero := 0
			r.Participants[0].ParticipantIndex = &zero
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest(2, 600_000)
			tt.mutate(req)
			_, err := e.CreateSession(ctx, req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateSession_Duplicate(t *testing.T) {
	e, _, _ := newTestEngine(t)

	req := createRequest(2, 600_000)
	mustCreate(t, e, req)

	_, err := e.CreateSession(context.Background(), req)
	require.ErrorIs(t, err, store.ErrSessionExists)
}

func TestStartSession(t *testing.T) {
	e, _, clk := newTestEngine(t)

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	started := mustStart(t, e, created.SessionID)

	assert.Equal(t, models.StatusRunning, started.Status)
	assert.Equal(t, int64(2), started.Version)
	require.NotNil(t, started.SessionStartedAt)
	require.NotNil(t, started.CycleStartedAt)
	assert.Equal(t, clk.Now(), *started.CycleStartedAt)
	assert.Equal(t, req.Participants[0].ParticipantID, started.ActiveParticipantID)
	assert.True(t, started.Participants[0].IsActive)
	assert.False(t, started.Participants[1].IsActive)
}

func TestStartSession_GlobalHasNoActiveParticipant(t *testing.T) {
	e, _, _ := newTestEngine(t)

	req := createRequest(1, 600_000)
	req.SyncMode = models.ModeGlobal
	created := mustCreate(t, e, req)
	started := mustStart(t, e, created.SessionID)

	assert.Empty(t, started.ActiveParticipantID)
	assert.Nil(t, started.ActiveParticipant())
}

func TestStartSession_InvalidState(t *testing.T) {
	e, _, _ := newTestEngine(t)

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	_, err := e.StartSession(context.Background(), created.SessionID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestSwitchCycle_TwoPlayerWithIncrement(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	req.IncrementMs = 2_000
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	clk.Advance(1 * time.Second)

	result, err := e.SwitchCycle(ctx, created.SessionID, "", "")
	require.NoError(t, err)

	state := result.State
	assert.Equal(t, int64(3), state.Version)
	assert.Empty(t, result.ExpiredParticipantID)

	p0 := state.ParticipantByIndex(0)
	assert.Equal(t, int64(601_000), p0.TotalTimeMs) // 600000 - 1000 + 2000
	assert.Equal(t, int64(601_000), p0.TimeRemainingMs)
	assert.Equal(t, int64(1_000), p0.TimeUsedMs)
	assert.Equal(t, 1, p0.CycleCount)
	assert.False(t, p0.IsActive)
	assert.False(t, p0.HasExpired)

	p1 := state.ParticipantByIndex(1)
	assert.True(t, p1.IsActive)
	assert.Equal(t, p1.ParticipantID, state.ActiveParticipantID)
	assert.Equal(t, clk.Now(), *state.CycleStartedAt)
}

func TestSwitchCycle_ExpirySuppressesIncrement(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 1_000)
	req.IncrementMs = 2_000
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	clk.Advance(1_500 * time.Millisecond)

	result, err := e.SwitchCycle(ctx, created.SessionID, "", "")
	require.NoError(t, err)

	p0 := result.State.ParticipantByIndex(0)
	assert.Zero(t, p0.TotalTimeMs)
	assert.Zero(t, p0.TimeRemainingMs)
	assert.True(t, p0.HasExpired)
	assert.Equal(t, 1, p0.CycleCount)
	assert.Equal(t, int64(1_500), p0.TimeUsedMs)

	assert.Equal(t, p0.ParticipantID, result.ExpiredParticipantID)
	assert.Equal(t, p0.ParticipantID, result.State.ExpiredParticipantID)

	// No halting policy: rotation continues.
	assert.Equal(t, models.StatusRunning, result.State.Status)
	assert.True(t, result.State.ParticipantByIndex(1).IsActive)
}

func TestSwitchCycle_EndSessionPolicy(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 1_000)
	req.ActionOnTimeout = map[string]any{"type": models.TimeoutActionEndSession}
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	clk.Advance(2 * time.Second)

	result, err := e.SwitchCycle(ctx, created.SessionID, "", "")
	require.NoError(t, err)

	assert.Equal(t, models.StatusExpired, result.State.Status)
	assert.Equal(t, models.TimeoutActionEndSession, result.AppliedAction)
	assert.Empty(t, result.State.ActiveParticipantID)
	assert.Nil(t, result.State.ActiveParticipant())
	assert.Nil(t, result.State.CycleStartedAt)
	assert.Equal(t, result.ExpiredParticipantID, result.State.ExpiredParticipantID)
}

func TestSwitchCycle_SelfSwitchPerCycle(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	req.SyncMode = models.ModePerCycle
	created := mustCreate(t, e, req)
	started := mustStart(t, e, created.SessionID)
	active := started.ActiveParticipantID

	clk.Advance(1 * time.Second)
	anchorBefore := clk.Now()

	result, err := e.SwitchCycle(ctx, created.SessionID, "", active)
	require.NoError(t, err)

	p := result.State.Participant(active)
	assert.Equal(t, 1, p.CycleCount)
	assert.True(t, p.IsActive)
	assert.Equal(t, active, result.State.ActiveParticipantID)
	assert.Equal(t, anchorBefore, *result.State.CycleStartedAt)
	assert.Equal(t, int64(1_000), p.TimeUsedMs)
}

func TestSwitchCycle_SingleParticipantRotatesToSelf(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(1, 600_000)
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	clk.Advance(1 * time.Second)

	result, err := e.SwitchCycle(ctx, created.SessionID, "", "")
	require.NoError(t, err)

	p := result.State.ParticipantByIndex(0)
	assert.True(t, p.IsActive)
	assert.Equal(t, 1, p.CycleCount)
}

func TestSwitchCycle_ClockSkewClampsToZero(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	// Another instance's clock runs ahead; ours reads before the anchor.
	clk.Rewind(5 * time.Second)

	result, err := e.SwitchCycle(ctx, created.SessionID, "", "")
	require.NoError(t, err)

	p0 := result.State.ParticipantByIndex(0)
	assert.Equal(t, int64(600_000), p0.TotalTimeMs)
	assert.Zero(t, p0.TimeUsedMs)
	assert.Equal(t, 1, p0.CycleCount)
}

func TestSwitchCycle_StaleCurrentPid(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	started := mustStart(t, e, created.SessionID)

	inactive := started.ParticipantByIndex(1).ParticipantID
	_, err := e.SwitchCycle(ctx, created.SessionID, inactive, "")
	require.ErrorIs(t, err, store.ErrConcurrentModification)
}

func TestSwitchCycle_UnknownNextPid(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	_, err := e.SwitchCycle(ctx, created.SessionID, "", uuid.NewString())
	require.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestSwitchCycle_RequiresRunning(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)

	_, err := e.SwitchCycle(ctx, created.SessionID, "", "")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestSwitchCycle_NotFound(t *testing.T) {
	e, _, _ := newTestEngine(t)

	_, err := e.SwitchCycle(context.Background(), uuid.NewString(), "", "")
	require.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestPauseResumeAccounting(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	clk.Advance(10 * time.Second)
	paused, err := e.PauseSession(ctx, created.SessionID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPaused, paused.Status)
	assert.Nil(t, paused.CycleStartedAt)
	p0 := paused.ParticipantByIndex(0)
	assert.Equal(t, int64(10_000), p0.TimeUsedMs)
	assert.Equal(t, int64(590_000), p0.TotalTimeMs)
	assert.True(t, p0.IsActive, "pause keeps the active marker for resume")

	// The pause interval is not billed.
	clk.Advance(5 * time.Second)
	resumed, err := e.ResumeSession(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, resumed.Status)
	assert.Equal(t, clk.Now(), *resumed.CycleStartedAt)

	clk.Advance(2 * time.Second)
	result, err := e.SwitchCycle(ctx, created.SessionID, "", "")
	require.NoError(t, err)

	p0 = result.State.ParticipantByIndex(0)
	assert.Equal(t, int64(12_000), p0.TimeUsedMs)
	assert.Equal(t, int64(588_000), p0.TotalTimeMs)
}

func TestPauseRequiresRunning(t *testing.T) {
	e, _, _ := newTestEngine(t)

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)

	_, err := e.PauseSession(context.Background(), created.SessionID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestResumeRequiresPaused(t *testing.T) {
	e, _, _ := newTestEngine(t)

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	_, err := e.ResumeSession(context.Background(), created.SessionID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteSession(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	completed, err := e.CompleteSession(ctx, created.SessionID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, completed.Status)
	require.NotNil(t, completed.SessionCompletedAt)
	assert.Equal(t, clk.Now(), *completed.SessionCompletedAt)
	assert.Nil(t, completed.CycleStartedAt)
	assert.Empty(t, completed.ActiveParticipantID)
	for _, p := range completed.Participants {
		assert.False(t, p.IsActive)
	}

	// completed is terminal for everything except cancellation
	_, err = e.CompleteSession(ctx, created.SessionID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteRequiresRunning(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)
	_, err := e.PauseSession(ctx, created.SessionID)
	require.NoError(t, err)

	_, err = e.CompleteSession(ctx, created.SessionID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestCancelSession(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)

	cancelled, err := e.CancelSession(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	_, err = e.CancelSession(ctx, created.SessionID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestCancelCompletedSession(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)
	_, err := e.CompleteSession(ctx, created.SessionID)
	require.NoError(t, err)

	cancelled, err := e.CancelSession(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestVersionStrictlyIncreases(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	last := created.Version

	step := func(state *models.SessionState, err error) {
		t.Helper()
		require.NoError(t, err)
		require.Greater(t, state.Version, last)
		last = state.Version
	}

	step(e.StartSession(ctx, created.SessionID))
	clk.Advance(time.Second)
	result, err := e.SwitchCycle(ctx, created.SessionID, "", "")
	step(result.State, err)
	step(e.PauseSession(ctx, created.SessionID))
	step(e.ResumeSession(ctx, created.SessionID))
	step(e.CompleteSession(ctx, created.SessionID))
	assert.Equal(t, int64(6), last)
}

func TestGetCurrentStateDoesNotAdvanceTime(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)
	started := mustStart(t, e, created.SessionID)
	anchor := *started.CycleStartedAt

	clk.Advance(30 * time.Second)

	state, err := e.GetCurrentState(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, anchor, *state.CycleStartedAt)
	assert.Zero(t, state.ParticipantByIndex(0).TimeUsedMs)
	assert.Equal(t, started.Version, state.Version)
}

func TestDeleteSession(t *testing.T) {
	e, st, _ := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(2, 600_000)
	created := mustCreate(t, e, req)

	require.NoError(t, e.DeleteSession(ctx, created.SessionID))

	state, err := st.Get(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestGlobalModeSwitchResetsAnchor(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()

	req := createRequest(1, 600_000)
	req.SyncMode = models.ModeCountUp
	created := mustCreate(t, e, req)
	mustStart(t, e, created.SessionID)

	clk.Advance(3 * time.Second)
	result, err := e.SwitchCycle(ctx, created.SessionID, "", "")
	require.NoError(t, err)

	assert.Equal(t, clk.Now(), *result.State.CycleStartedAt)
	assert.Equal(t, int64(3), result.State.Version)
	assert.Zero(t, result.State.ParticipantByIndex(0).TimeUsedMs)
}
