package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synckairos/synckairos/ent"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests instead of the embedded SQL files
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateAuditIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestEventVersionUniqueness(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.SyncSession.Create().
		SetID("sess-unique").
		SetSyncMode("per_participant").
		SetTotalParticipants(2).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.SyncEvent.Create().
		SetSessionID("sess-unique").
		SetEventType("session_created").
		SetTimestamp(time.Now().UTC()).
		SetVersion(1).
		Save(ctx)
	require.NoError(t, err)

	// Same (session_id, version) pair must be rejected by the unique index.
	_, err = client.SyncEvent.Create().
		SetSessionID("sess-unique").
		SetEventType("session_started").
		SetTimestamp(time.Now().UTC()).
		SetVersion(1).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestLatestSnapshotQuery(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.SyncSession.Create().
		SetID("sess-snap").
		SetSyncMode("per_participant").
		SetTotalParticipants(2).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)

	for v := int64(1); v <= 3; v++ {
		builder := client.SyncEvent.Create().
			SetSessionID("sess-snap").
			SetEventType("cycle_switched").
			SetTimestamp(time.Now().UTC()).
			SetVersion(v)
		if v != 2 {
			// version 2 has no snapshot, recovery must skip it
			builder.SetStateSnapshot(map[string]any{"version": v})
		}
		_, err := builder.Save(ctx)
		require.NoError(t, err)
	}

	rows, err := client.DB().QueryContext(ctx,
		`SELECT version FROM sync_events
		WHERE session_id = $1 AND state_snapshot IS NOT NULL
		ORDER BY version DESC LIMIT 1`,
		"sess-snap",
	)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var version int64
	require.NoError(t, rows.Scan(&version))
	assert.Equal(t, int64(3), version)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "synckairos", cfg.User)
				assert.Equal(t, "synckairos", cfg.Database)
				assert.Equal(t, 10, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, "require", cfg.SSLMode)
				assert.Equal(t, 50, cfg.MaxOpenConns)
			},
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
