package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/synckairos/synckairos/ent"
	"github.com/synckairos/synckairos/ent/syncevent"
	"github.com/synckairos/synckairos/ent/syncsession"
	"github.com/synckairos/synckairos/pkg/database"
	"github.com/synckairos/synckairos/pkg/models"
)

// entApplier writes jobs to the audit database through ent transactions.
type entApplier struct {
	db *database.Client
}

// NewApplier creates the production Applier backed by the audit database.
func NewApplier(db *database.Client) Applier {
	return &entApplier{db: db}
}

// Apply performs the relational write for one job inside a transaction:
// upsert the session row, insert the immutable event row, commit. Errors
// roll the transaction back and bubble up for classification.
func (a *entApplier) Apply(ctx context.Context, job *Job) error {
	switch job.Kind {
	case KindEvent:
		return a.applyEvent(ctx, job)
	case KindIdempotency:
		return a.applyIdempotency(ctx, job)
	default:
		return fmt.Errorf("unknown audit job kind %q", job.Kind)
	}
}

func (a *entApplier) applyEvent(ctx context.Context, job *Job) error {
	var state models.SessionState
	if err := json.Unmarshal(job.StateSnapshot, &state); err != nil {
		return fmt.Errorf("decode snapshot for job %s: %w", job.ID, err)
	}
	var snapshot map[string]any
	if err := json.Unmarshal(job.StateSnapshot, &snapshot); err != nil {
		return fmt.Errorf("decode snapshot for job %s: %w", job.ID, err)
	}

	tx, err := a.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin audit tx: %w", err)
	}

	err = tx.SyncSession.Create().
		SetID(state.SessionID).
		SetSyncMode(syncsession.SyncMode(state.SyncMode)).
		SetFinalStatus(syncsession.FinalStatus(state.Status)).
		SetCreatedAt(state.CreatedAt).
		SetNillableStartedAt(state.SessionStartedAt).
		SetNillableCompletedAt(state.SessionCompletedAt).
		SetUpdatedAt(state.UpdatedAt).
		SetTotalParticipants(len(state.Participants)).
		SetMetadata(state.Metadata).
		OnConflictColumns(syncsession.FieldID).
		Update(func(u *ent.SyncSessionUpsert) {
			u.UpdateFinalStatus()
			u.UpdateStartedAt()
			u.UpdateCompletedAt()
			u.UpdateUpdatedAt()
			u.UpdateMetadata()
		}).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("upsert session row: %w", err)
	}

	create := tx.SyncEvent.Create().
		SetSessionID(job.SessionID).
		SetEventType(syncevent.EventType(job.EventType)).
		SetTimestamp(job.Timestamp).
		SetVersion(job.Version).
		SetNillableParticipantID(job.ParticipantID).
		SetNillableTimeRemainingMs(job.TimeRemainingMs).
		SetStateSnapshot(snapshot)
	if job.Metadata != nil {
		create.SetMetadata(job.Metadata)
	}
	if err := create.Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert event row: %w", err)
	}

	return tx.Commit()
}

func (a *entApplier) applyIdempotency(ctx context.Context, job *Job) error {
	var response map[string]any
	if err := json.Unmarshal(job.Response, &response); err != nil {
		return fmt.Errorf("decode idempotent response for job %s: %w", job.ID, err)
	}

	// First writer wins; a unique collision means the mirror already
	// exists and is classified non-retryable upstream.
	return a.db.IdempotencyKey.Create().
		SetID(job.IdempotencyKey).
		SetResponse(response).
		Exec(ctx)
}
