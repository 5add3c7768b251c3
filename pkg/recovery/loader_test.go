package recovery

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synckairos/synckairos/pkg/models"
	testdb "github.com/synckairos/synckairos/test/database"
)

type capturingWriter struct {
	id              string
	state           *models.SessionState
	expectedVersion *int64
	calls           int
}

func (w *capturingWriter) Update(_ context.Context, id string, next *models.SessionState, expectedVersion *int64) error {
	w.id = id
	w.state = next
	w.expectedVersion = expectedVersion
	w.calls++
	return nil
}

func snapshotFor(t *testing.T, state *models.SessionState) map[string]any {
	t.Helper()
	raw, err := json.Marshal(state)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestLoader_NoSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)

	loader := NewLoader(client, nil)

	state, err := loader.Load(context.Background(), "never-existed")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestLoader_RecoversLatestSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	_, err := client.SyncSession.Create().
		SetID("sess-1").
		SetSyncMode("per_participant").
		SetTotalParticipants(2).
		Save(ctx)
	require.NoError(t, err)

	for v := int64(1); v <= 3; v++ {
		st := &models.SessionState{
			SessionID: "sess-1",
			SyncMode:  models.ModePerParticipant,
			Status:    models.StatusRunning,
			Version:   v,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
			Participants: []models.Participant{
				{ParticipantID: "p1", ParticipantIndex: 0, TimeRemainingMs: 60000 - v*1000, IsActive: true},
				{ParticipantID: "p2", ParticipantIndex: 1, TimeRemainingMs: 60000},
			},
		}
		_, err := client.SyncEvent.Create().
			SetSessionID("sess-1").
			SetEventType("cycle_switched").
			SetTimestamp(time.Now().UTC()).
			SetVersion(v).
			SetStateSnapshot(snapshotFor(t, st)).
			Save(ctx)
		require.NoError(t, err)
	}

	writer := &capturingWriter{}
	loader := NewLoader(client, writer)

	state, err := loader.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, state)

	// Latest snapshot wins and the version is preserved, not bumped.
	assert.Equal(t, int64(3), state.Version)
	assert.Equal(t, models.StatusRunning, state.Status)
	require.Len(t, state.Participants, 2)
	assert.Equal(t, int64(57000), state.Participants[0].TimeRemainingMs)

	// Recovery is flagged so clients can tell the state may be stale.
	assert.Equal(t, true, state.Metadata["recovered"])
	assert.NotEmpty(t, state.Metadata["recovered_at"])
	assert.NotEmpty(t, state.Metadata["recovery_warning"])

	// Written back unconditionally (no CAS version).
	assert.Equal(t, 1, writer.calls)
	assert.Equal(t, "sess-1", writer.id)
	assert.Nil(t, writer.expectedVersion)
	assert.Same(t, state, writer.state)
}

func TestLoader_SkipsEventsWithoutSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	st := &models.SessionState{
		SessionID: "sess-2",
		SyncMode:  models.ModeGlobal,
		Status:    models.StatusPaused,
		Version:   5,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := client.SyncEvent.Create().
		SetSessionID("sess-2").
		SetEventType("session_paused").
		SetTimestamp(time.Now().UTC()).
		SetVersion(5).
		SetStateSnapshot(snapshotFor(t, st)).
		Save(ctx)
	require.NoError(t, err)

	// A newer event without a snapshot must not shadow the recoverable one.
	_, err = client.SyncEvent.Create().
		SetSessionID("sess-2").
		SetEventType("session_resumed").
		SetTimestamp(time.Now().UTC()).
		SetVersion(6).
		Save(ctx)
	require.NoError(t, err)

	loader := NewLoader(client, nil)

	state, err := loader.Load(ctx, "sess-2")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, int64(5), state.Version)
	assert.Equal(t, models.StatusPaused, state.Status)
}
