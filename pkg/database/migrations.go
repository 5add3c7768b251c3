package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateAuditIndexes creates PostgreSQL indexes that Ent/Atlas cannot express.
// Recovery reads the newest snapshot per session, and retention jobs scan the
// event log by time range, so both get purpose-built indexes here.
func CreateAuditIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Partial index covering the recovery query: latest event for a session
	// that actually carries a state snapshot.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_sync_events_session_snapshot
		ON sync_events (session_id, version DESC)
		WHERE state_snapshot IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create snapshot recovery index: %w", err)
	}

	// BRIN index for time-range scans over the append-only event log.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_sync_events_timestamp_brin
		ON sync_events USING brin(timestamp)`)
	if err != nil {
		return fmt.Errorf("failed to create timestamp BRIN index: %w", err)
	}

	return nil
}
