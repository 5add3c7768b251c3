// SyncKairos server — authoritative session timing state over a shared
// store, with WebSocket fan-out and a durable audit trail.
package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/synckairos/synckairos/pkg/api"
	"github.com/synckairos/synckairos/pkg/audit"
	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/database"
	"github.com/synckairos/synckairos/pkg/engine"
	"github.com/synckairos/synckairos/pkg/hub"
	"github.com/synckairos/synckairos/pkg/recovery"
	"github.com/synckairos/synckairos/pkg/store"
	"github.com/synckairos/synckairos/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	slog.Info("Starting SyncKairos", "version", version.Full())

	ctx := context.Background()

	// 1. Configuration
	serverCfg := config.LoadServerFromEnv()
	redisCfg, err := config.LoadRedisFromEnv()
	if err != nil {
		slog.Error("Failed to load store config", "error", err)
		os.Exit(1)
	}
	queueCfg := config.DefaultQueueConfig()
	hubCfg := config.DefaultHubConfig()

	// 2. Audit database (Postgres via ent). A down audit DB is degraded,
	// not fatal: the hot path runs entirely against the store.
	var dbClient *database.Client
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err = database.NewClient(ctx, dbCfg)
	if err != nil {
		slog.Warn("Audit database unavailable at startup, continuing degraded", "error", err)
		dbClient = nil
	} else {
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		slog.Info("Connected to PostgreSQL audit database")
	}

	// 3. State store
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})
	st := store.NewClient(rdb, redisCfg)
	if err := st.Ping(ctx); err != nil {
		slog.Error("State store unreachable", "addr", redisCfg.Addr, "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to state store", "addr", redisCfg.Addr)

	// 4. Recovery loader: audit DB snapshots backfill store misses.
	if dbClient != nil {
		st.SetRecoveryLoader(recovery.NewLoader(dbClient, st))
	}

	// 5. Audit queue worker pool (before HTTP intake so /ready is honest).
	var applier audit.Applier
	if dbClient != nil {
		applier = audit.NewApplier(dbClient)
	} else {
		applier = unavailableApplier{}
	}
	queue := audit.NewQueue(rdb, queueCfg, applier, nil)
	queue.Start(ctx)

	// 6. Engine
	eng := engine.NewEngine(st, queue)

	// 7. WebSocket hub + cross-instance listener
	h := hub.NewHub(hubCfg, st)
	listener := hub.NewListener(st, h)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start WebSocket listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop()

	// 8. HTTP server. Token issuance is external; when WS_AUTH_TOKEN is set
	// the handshake requires it, otherwise every upgrade is accepted.
	var auth hub.AuthFunc
	if secret := os.Getenv("WS_AUTH_TOKEN"); secret != "" {
		auth = func(r *http.Request, _ string) error {
			if subtle.ConstantTimeCompare([]byte(r.URL.Query().Get("token")), []byte(secret)) != 1 {
				return errors.New("invalid token")
			}
			return nil
		}
	}
	httpServer := api.NewServer(serverCfg, eng, st, dbClient, h, queue, auth)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("SyncKairos started", "http_port", serverCfg.HTTPPort, "workers", queueCfg.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop HTTP intake, flush audit enqueues, close
	// WebSockets 1001 after the drain, release the store last.
	shutdownCtx, cancel := context.WithTimeout(ctx, serverCfg.ShutdownDrain)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown did not drain cleanly", "error", err)
	}

	queue.Close()

	h.Shutdown()

	if err := st.Close(); err != nil {
		slog.Error("Error closing store client", "error", err)
	}
	slog.Info("SyncKairos stopped")
}

// unavailableApplier fails every job as retryable so audit records survive
// in the scheduled set until the audit DB comes back.
type unavailableApplier struct{}

func (unavailableApplier) Apply(context.Context, *audit.Job) error {
	return context.DeadlineExceeded
}
