// Package store implements the shared state store client: session state
// under session:{id} with TTL, optimistic compare-and-set writes, and the
// two pub/sub channels (session-updates for engine-to-engine, ws:{id} for
// engine-to-hub fan-out).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/metrics"
	"github.com/synckairos/synckairos/pkg/models"
)

const (
	sessionKeyPrefix     = "session:"
	idempotencyKeyPrefix = "idempotency:"
	wsChannelPrefix      = "ws:"
	updatesChannel       = "session-updates"
	wsChannelPattern     = "ws:*"
)

// RecoveryLoader is the store-miss fallback. Implemented by
// pkg/recovery.Loader; Load returns nil when no audit snapshot exists.
type RecoveryLoader interface {
	Load(ctx context.Context, sessionID string) (*models.SessionState, error)
}

// Client is the state store client. All mutating operations refresh the
// session TTL and publish the full new state (or a tombstone) on the
// session-updates channel after the write succeeds. Writes for a single
// session are linearized by the CAS, so subscribers observe monotonically
// increasing versions modulo drops.
type Client struct {
	rdb      *redis.Client
	cfg      config.RedisConfig
	recovery RecoveryLoader
	now      func() time.Time
}

// NewClient creates a store client. The recovery loader is wired after
// construction with SetRecoveryLoader (it needs the client itself for the
// write-back).
func NewClient(rdb *redis.Client, cfg config.RedisConfig) *Client {
	return &Client{rdb: rdb, cfg: cfg, now: time.Now}
}

// SetRecoveryLoader installs the store-miss fallback. Called once during
// startup wiring.
func (c *Client) SetRecoveryLoader(l RecoveryLoader) {
	c.recovery = l
}

// SessionKey returns the store key for a session id.
func SessionKey(id string) string {
	return sessionKeyPrefix + id
}

// WSChannel returns the fan-out channel for a session id.
func WSChannel(id string) string {
	return wsChannelPrefix + id
}

// SessionIDFromWSChannel strips the ws: prefix from a channel name.
func SessionIDFromWSChannel(channel string) string {
	if len(channel) > len(wsChannelPrefix) && channel[:len(wsChannelPrefix)] == wsChannelPrefix {
		return channel[len(wsChannelPrefix):]
	}
	return ""
}

func (c *Client) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.cfg.OpTimeout)
}

// observeOp records operation latency. Use as: defer observeOp("get")().
func observeOp(op string) func() {
	start := time.Now()
	return func() {
		metrics.StoreOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

// Get returns the session state, or nil when the id is unknown. A store
// miss consults the recovery loader; a recovered state has already been
// written back when Get returns it. Unparsable blobs fail with
// ErrStateDeserialization.
func (c *Client) Get(ctx context.Context, id string) (*models.SessionState, error) {
	defer observeOp("get")()
	opCtx, cancel := c.opCtx(ctx)
	defer cancel()

	val, err := c.rdb.Get(opCtx, SessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		if c.recovery == nil {
			return nil, nil
		}
		state, rerr := c.recovery.Load(ctx, id)
		if rerr != nil {
			// An audit DB outage must not masquerade as a missing session.
			slog.Warn("Recovery load failed", "session_id", id, "error", rerr)
			return nil, fmt.Errorf("%w: recovery load for session %s: %v", ErrStoreUnavailable, id, rerr)
		}
		return state, nil
	}
	if err != nil {
		return nil, unavailable("get", err)
	}

	var state models.SessionState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, fmt.Errorf("%w: session %s: %v", ErrStateDeserialization, id, err)
	}
	return &state, nil
}

// Create persists a brand-new session. The key must not already exist.
// Publishes the initial state after the write.
func (c *Client) Create(ctx context.Context, state *models.SessionState) error {
	defer observeOp("create")()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", state.SessionID, err)
	}

	opCtx, cancel := c.opCtx(ctx)
	defer cancel()

	ok, err := c.rdb.SetNX(opCtx, SessionKey(state.SessionID), data, c.cfg.SessionTTL).Result()
	if err != nil {
		return unavailable("create", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionExists, state.SessionID)
	}

	c.publishUpdate(ctx, models.UpdateEnvelope{SessionID: state.SessionID, State: state})
	return nil
}

// Update writes the next state. With expectedVersion set it is an atomic
// compare-and-set: the version read inside the watched section must equal
// expectedVersion or the write fails with ErrConcurrentModification (a
// missing key fails with ErrSessionNotFound). The store owns the version
// bump: next.Version becomes expectedVersion+1 and UpdatedAt is refreshed.
//
// Without expectedVersion the write is unconditional — used only for the
// recovery write-back of a freshly materialized state.
//
// Every write refreshes the TTL and publishes the new state afterwards.
func (c *Client) Update(ctx context.Context, id string, next *models.SessionState, expectedVersion *int64) error {
	defer observeOp("update")()
	opCtx, cancel := c.opCtx(ctx)
	defer cancel()

	if expectedVersion == nil {
		next.UpdatedAt = c.now().UTC()
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("marshal session %s: %w", id, err)
		}
		if err := c.rdb.Set(opCtx, SessionKey(id), data, c.cfg.SessionTTL).Err(); err != nil {
			return unavailable("update", err)
		}
		c.publishUpdate(ctx, models.UpdateEnvelope{SessionID: id, State: next})
		return nil
	}

	key := SessionKey(id)
	err := c.rdb.Watch(opCtx, func(tx *redis.Tx) error {
		val, err := tx.Get(opCtx, key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return unavailable("cas read", err)
		}

		var current models.SessionState
		if err := json.Unmarshal([]byte(val), &current); err != nil {
			return fmt.Errorf("%w: session %s: %v", ErrStateDeserialization, id, err)
		}
		if current.Version != *expectedVersion {
			return fmt.Errorf("%w: expected version %d, store has %d",
				ErrConcurrentModification, *expectedVersion, current.Version)
		}

		next.Version = *expectedVersion + 1
		next.UpdatedAt = c.now().UTC()
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("marshal session %s: %w", id, err)
		}

		_, err = tx.TxPipelined(opCtx, func(pipe redis.Pipeliner) error {
			pipe.Set(opCtx, key, data, c.cfg.SessionTTL)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		// Another writer touched the key between our read and EXEC.
		return fmt.Errorf("%w: transaction aborted", ErrConcurrentModification)
	}
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrConcurrentModification) ||
			errors.Is(err, ErrStateDeserialization) || errors.Is(err, ErrStoreUnavailable) {
			return err
		}
		return unavailable("cas write", err)
	}

	c.publishUpdate(ctx, models.UpdateEnvelope{SessionID: id, State: next})
	return nil
}

// Delete removes the session and publishes a tombstone. Deleting an absent
// key is not an error; the audit database retains the final snapshot.
func (c *Client) Delete(ctx context.Context, id string) error {
	defer observeOp("delete")()
	opCtx, cancel := c.opCtx(ctx)
	defer cancel()

	if err := c.rdb.Del(opCtx, SessionKey(id)).Err(); err != nil {
		return unavailable("delete", err)
	}
	c.publishUpdate(ctx, models.UpdateEnvelope{SessionID: id, Deleted: true})
	return nil
}

// publishUpdate broadcasts on session-updates. Fire-and-forget: a lost
// publish is tolerated because subscribers key ordering off state.version.
func (c *Client) publishUpdate(ctx context.Context, env models.UpdateEnvelope) {
	data, err := json.Marshal(env)
	if err != nil {
		slog.Warn("Failed to marshal update envelope", "session_id", env.SessionID, "error", err)
		return
	}
	opCtx, cancel := c.opCtx(ctx)
	defer cancel()
	if err := c.rdb.Publish(opCtx, updatesChannel, data).Err(); err != nil {
		slog.Warn("Failed to publish session update", "session_id", env.SessionID, "error", err)
	}
}

// PublishWS broadcasts a typed message on ws:{id} for delivery to every
// instance's hub. Fire-and-forget.
func (c *Client) PublishWS(ctx context.Context, id string, message []byte) error {
	opCtx, cancel := c.opCtx(ctx)
	defer cancel()
	if err := c.rdb.Publish(opCtx, WSChannel(id), message).Err(); err != nil {
		return unavailable("publish ws", err)
	}
	return nil
}

// SubscribeUpdates consumes the session-updates channel until ctx is
// cancelled. Malformed payloads are logged and skipped.
func (c *Client) SubscribeUpdates(ctx context.Context, handler func(models.UpdateEnvelope)) error {
	sub := c.rdb.Subscribe(ctx, updatesChannel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return unavailable("subscribe updates", err)
	}

	go func() {
		defer func() { _ = sub.Close() }()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var env models.UpdateEnvelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					slog.Warn("Invalid session-updates payload", "error", err)
					continue
				}
				handler(env)
			}
		}
	}()
	return nil
}

// SubscribeWS pattern-subscribes to ws:* and invokes the handler with the
// session id and raw payload for every received message. Runs until ctx is
// cancelled; go-redis reconnects the subscription transparently.
func (c *Client) SubscribeWS(ctx context.Context, handler func(sessionID string, payload []byte)) error {
	sub := c.rdb.PSubscribe(ctx, wsChannelPattern)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return unavailable("subscribe ws", err)
	}

	go func() {
		defer func() { _ = sub.Close() }()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				id := SessionIDFromWSChannel(msg.Channel)
				if id == "" {
					continue
				}
				handler(id, []byte(msg.Payload))
			}
		}
	}()
	return nil
}

// GetIdempotent returns the cached response for an Idempotency-Key, if any.
func (c *Client) GetIdempotent(ctx context.Context, key string) ([]byte, bool, error) {
	opCtx, cancel := c.opCtx(ctx)
	defer cancel()

	val, err := c.rdb.Get(opCtx, idempotencyKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, unavailable("get idempotent", err)
	}
	return val, true, nil
}

// PutIdempotent caches a response body under an Idempotency-Key for the
// configured window (24 h). First writer wins: a concurrent duplicate does
// not overwrite the original response.
func (c *Client) PutIdempotent(ctx context.Context, key string, response []byte) error {
	opCtx, cancel := c.opCtx(ctx)
	defer cancel()

	if err := c.rdb.SetNX(opCtx, idempotencyKeyPrefix+key, response, c.cfg.IdempotencyTTL).Err(); err != nil {
		return unavailable("put idempotent", err)
	}
	return nil
}

// IncrWindow increments a fixed-window rate-limit counter, setting the
// window TTL on first increment, and returns the new count.
func (c *Client) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	opCtx, cancel := c.opCtx(ctx)
	defer cancel()

	pipe := c.rdb.TxPipeline()
	incr := pipe.Incr(opCtx, key)
	pipe.ExpireNX(opCtx, key, window)
	if _, err := pipe.Exec(opCtx); err != nil {
		return 0, unavailable("rate limit incr", err)
	}
	return incr.Val(), nil
}

// Ping verifies store connectivity (health checks).
func (c *Client) Ping(ctx context.Context) error {
	opCtx, cancel := c.opCtx(ctx)
	defer cancel()
	if err := c.rdb.Ping(opCtx).Err(); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
