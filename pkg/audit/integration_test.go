package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synckairos/synckairos/pkg/models"
	"github.com/synckairos/synckairos/pkg/recovery"
	testdb "github.com/synckairos/synckairos/test/database"
)

// recordingWriter captures the recovery write-back without a live store.
type recordingWriter struct {
	calls int
}

func (w *recordingWriter) Update(_ context.Context, _ string, _ *models.SessionState, _ *int64) error {
	w.calls++
	return nil
}

// One instance's applier writes the audit trail; a different instance's
// recovery loader (own connection pool, same schema) reads it back.
func TestApplier_FeedsRecoveryAcrossInstances(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	writerDB := shared.NewClient(t)
	readerDB := shared.NewClient(t)
	ctx := context.Background()

	applier := NewApplier(writerDB)
	sessionID := uuid.NewString()

	for v := int64(1); v <= 3; v++ {
		state := &models.SessionState{
			SessionID: sessionID,
			SyncMode:  models.ModePerParticipant,
			Status:    models.StatusRunning,
			Version:   v,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
			Participants: []models.Participant{
				{ParticipantID: uuid.NewString(), TotalTimeMs: 600_000},
			},
		}
		raw, err := json.Marshal(state)
		require.NoError(t, err)

		job := &Job{
			ID:            uuid.NewString(),
			Kind:          KindEvent,
			SessionID:     sessionID,
			EventType:     models.EventCycleSwitched,
			Timestamp:     time.Now().UTC(),
			Version:       v,
			StateSnapshot: raw,
		}
		require.NoError(t, applier.Apply(ctx, job))
	}

	writer := &recordingWriter{}
	loader := recovery.NewLoader(readerDB, writer)

	recovered, err := loader.Load(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, recovered)

	assert.Equal(t, int64(3), recovered.Version, "newest snapshot wins")
	assert.Equal(t, models.StatusRunning, recovered.Status)
	assert.Equal(t, true, recovered.Metadata["recovered"])
	assert.Equal(t, 1, writer.calls, "recovered state is written back")
}

// A replayed idempotency mirror collides on the primary key; the collision
// is the signal the worker uses to skip the job.
func TestApplier_IdempotencyReplayCollides(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	db := shared.NewClient(t)
	ctx := context.Background()

	applier := NewApplier(db)
	job := &Job{
		ID:             uuid.NewString(),
		Kind:           KindIdempotency,
		IdempotencyKey: uuid.NewString(),
		Response:       json.RawMessage(`{"state":{"version":3}}`),
	}

	require.NoError(t, applier.Apply(ctx, job))

	err := applier.Apply(ctx, job)
	require.Error(t, err)
	assert.False(t, classify(err), "duplicate mirror writes must not be retried")
}
