// Package recovery materializes session state from the audit database when
// the state store has lost it (eviction, TTL expiry, store failover).
package recovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/synckairos/synckairos/ent"
	"github.com/synckairos/synckairos/ent/syncevent"
	"github.com/synckairos/synckairos/pkg/database"
	"github.com/synckairos/synckairos/pkg/models"
)

// StateWriter writes a recovered state back to the store. Satisfied by
// *store.Client; the nil expectedVersion makes the write unconditional.
type StateWriter interface {
	Update(ctx context.Context, id string, next *models.SessionState, expectedVersion *int64) error
}

// Loader reads the newest audited snapshot for a session and re-seeds the
// store with it. Recovery is lossy: writes after the last audited snapshot
// are gone, so the recovered state carries warning metadata for clients.
type Loader struct {
	db     *database.Client
	writer StateWriter
	now    func() time.Time
}

// NewLoader creates a recovery loader. writer may be nil, in which case
// recovered states are returned without being written back (used in tests).
func NewLoader(db *database.Client, writer StateWriter) *Loader {
	return &Loader{db: db, writer: writer, now: time.Now}
}

// Load returns the latest snapshotted state for the session, or nil when the
// audit log has no snapshot for it. On success the state has already been
// re-seeded into the store with a fresh TTL.
func (l *Loader) Load(ctx context.Context, sessionID string) (*models.SessionState, error) {
	ev, err := l.db.SyncEvent.Query().
		Where(
			syncevent.SessionID(sessionID),
			syncevent.StateSnapshotNotNil(),
		).
		Order(ent.Desc(syncevent.FieldVersion)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query audit snapshot for %s: %w", sessionID, err)
	}

	state, err := snapshotToState(ev.StateSnapshot)
	if err != nil {
		return nil, fmt.Errorf("decode audit snapshot for %s (version %d): %w", sessionID, ev.Version, err)
	}

	if state.Metadata == nil {
		state.Metadata = make(map[string]any, 3)
	}
	state.Metadata["recovered"] = true
	state.Metadata["recovered_at"] = l.now().UTC().Format(time.RFC3339)
	state.Metadata["recovery_warning"] = "state recovered from audit log; writes after the last audited snapshot are lost"

	slog.Warn("Recovered session state from audit log",
		"session_id", sessionID,
		"version", state.Version,
		"status", state.Status)

	if l.writer != nil {
		if err := l.writer.Update(ctx, sessionID, state, nil); err != nil {
			// Serve the recovered state anyway; the next read retries the seed.
			slog.Error("Failed to re-seed recovered state into store",
				"session_id", sessionID, "error", err)
		}
	}

	return state, nil
}

func snapshotToState(snapshot map[string]any) (*models.SessionState, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	var state models.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	if state.SessionID == "" {
		return nil, fmt.Errorf("snapshot missing session_id")
	}
	return &state, nil
}
