package engine

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synckairos/synckairos/ent/syncevent"
	"github.com/synckairos/synckairos/pkg/audit"
	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/database"
	"github.com/synckairos/synckairos/pkg/models"
	"github.com/synckairos/synckairos/pkg/store"
	testdb "github.com/synckairos/synckairos/test/database"
)

// newAuditedEngine wires an engine to a running audit queue whose applier
// writes into a real Postgres schema.
func newAuditedEngine(t *testing.T, db *database.Client) (*Engine, *fakeClock) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	st := store.NewClient(rdb, config.DefaultRedisConfig())

	qcfg := config.DefaultQueueConfig()
	qcfg.WorkerCount = 2
	qcfg.PollInterval = 50 * time.Millisecond
	qcfg.ScheduledScanInterval = 20 * time.Millisecond
	q := audit.NewQueue(rdb, qcfg, audit.NewApplier(db), nil)
	q.Start(context.Background())
	t.Cleanup(q.Close)

	clk := newFakeClock()
	e := NewEngine(st, q)
	e.now = clk.Now
	return e, clk
}

func countEvents(t *testing.T, db *database.Client, sessionID, participantID string, eventType models.EventType) int {
	t.Helper()
	n, err := db.SyncEvent.Query().
		Where(
			syncevent.SessionID(sessionID),
			syncevent.ParticipantID(participantID),
			syncevent.EventTypeEQ(syncevent.EventType(eventType)),
		).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

// After the queue drains, each participant's cycle count matches the
// cycle_switched rows recorded for them.
func TestSwitchAudit_CycleCountMatchesSwitchRows(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	db := shared.NewClient(t)
	e, clk := newAuditedEngine(t, db)
	ctx := context.Background()

	state := mustCreate(t, e, createRequest(2, 600_000))
	id := state.SessionID
	p0 := state.Participants[0].ParticipantID
	p1 := state.Participants[1].ParticipantID
	mustStart(t, e, id)

	// Five non-expiring switches: p0 yields on 1, 3, 5 and p1 on 2, 4.
	for i := 0; i < 5; i++ {
		clk.Advance(time.Second)
		_, err := e.SwitchCycle(ctx, id, "", "")
		require.NoError(t, err)
	}

	final, err := e.GetCurrentState(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, final.Participant(p0).CycleCount)
	assert.Equal(t, 2, final.Participant(p1).CycleCount)

	require.Eventually(t, func() bool {
		n, err := db.SyncEvent.Query().
			Where(syncevent.SessionID(id)).
			Count(ctx)
		return err == nil && n == 7 // created + started + 5 switches
	}, 5*time.Second, 20*time.Millisecond, "audit queue did not drain")

	assert.Equal(t, 3, countEvents(t, db, id, p0, models.EventCycleSwitched))
	assert.Equal(t, 2, countEvents(t, db, id, p1, models.EventCycleSwitched))
}

// An expiring switch still increments the cycle count but is recorded as
// participant_expired rather than cycle_switched, so per participant
// cycle_count = cycle_switched rows + participant_expired rows.
func TestSwitchAudit_ExpiryRecordsExpiredNotSwitched(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	db := shared.NewClient(t)
	e, clk := newAuditedEngine(t, db)
	ctx := context.Background()

	state := mustCreate(t, e, createRequest(2, 1_000))
	id := state.SessionID
	p0 := state.Participants[0].ParticipantID
	mustStart(t, e, id)

	clk.Advance(2 * time.Second) // overruns p0's whole budget
	result, err := e.SwitchCycle(ctx, id, "", "")
	require.NoError(t, err)
	require.Equal(t, p0, result.ExpiredParticipantID)
	assert.Equal(t, 1, result.State.Participant(p0).CycleCount)

	require.Eventually(t, func() bool {
		n, err := db.SyncEvent.Query().
			Where(syncevent.SessionID(id)).
			Count(ctx)
		return err == nil && n == 3 // created + started + the expiry
	}, 5*time.Second, 20*time.Millisecond, "audit queue did not drain")

	assert.Zero(t, countEvents(t, db, id, p0, models.EventCycleSwitched))
	assert.Equal(t, 1, countEvents(t, db, id, p0, models.EventParticipantExpired))
}
