package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/models"
)

func setupTestStore(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewClient(rdb, config.DefaultRedisConfig()), mr
}

func testState(id string, version int64) *models.SessionState {
	return &models.SessionState{
		SessionID: id,
		SyncMode:  models.ModePerParticipant,
		Status:    models.StatusPending,
		Version:   version,
		Participants: []models.Participant{
			{ParticipantID: "p1", ParticipantIndex: 0, TotalTimeMs: 600_000},
		},
	}
}

func TestCreateAndGet(t *testing.T) {
	c, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, c.Create(ctx, testState("s1", 1)))

	got, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, int64(1), got.Version)

	// TTL is set on create.
	ttl := mr.TTL(SessionKey("s1"))
	assert.Greater(t, ttl, 59*time.Minute)
}

func TestCreate_Duplicate(t *testing.T) {
	c, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, c.Create(ctx, testState("s1", 1)))
	err := c.Create(ctx, testState("s1", 1))
	assert.ErrorIs(t, err, ErrSessionExists)
}

func TestGet_MissWithoutRecovery(t *testing.T) {
	c, _ := setupTestStore(t)

	got, err := c.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGet_Unparsable(t *testing.T) {
	c, mr := setupTestStore(t)
	require.NoError(t, mr.Set(SessionKey("bad"), "{not json"))

	_, err := c.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrStateDeserialization)
}

type fakeRecovery struct {
	state *models.SessionState
	err   error
	calls int
	mu    sync.Mutex
}

func (f *fakeRecovery) Load(_ context.Context, _ string) (*models.SessionState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.state, f.err
}

func TestGet_MissConsultsRecovery(t *testing.T) {
	c, _ := setupTestStore(t)
	rec := &fakeRecovery{state: testState("s1", 4)}
	c.SetRecoveryLoader(rec)

	got, err := c.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(4), got.Version)
	assert.Equal(t, 1, rec.calls)
}

func TestGet_RecoveryFailureIsUnavailable(t *testing.T) {
	c, _ := setupTestStore(t)
	rec := &fakeRecovery{err: errors.New("audit db down")}
	c.SetRecoveryLoader(rec)

	got, err := c.Get(context.Background(), "s1")
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 1, rec.calls)
}

func TestUpdate_CAS(t *testing.T) {
	c, mr := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, c.Create(ctx, testState("s1", 1)))

	next := testState("s1", 0) // version is assigned by the store
	next.Status = models.StatusRunning
	expected := int64(1)
	require.NoError(t, c.Update(ctx, "s1", next, &expected))

	assert.Equal(t, int64(2), next.Version)
	assert.False(t, next.UpdatedAt.IsZero())

	got, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, models.StatusRunning, got.Status)

	// TTL refreshed on write.
	assert.Greater(t, mr.TTL(SessionKey("s1")), 59*time.Minute)
}

func TestUpdate_VersionMismatch(t *testing.T) {
	c, _ := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, c.Create(ctx, testState("s1", 1)))

	stale := int64(7)
	err := c.Update(ctx, "s1", testState("s1", 0), &stale)
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestUpdate_MissingSession(t *testing.T) {
	c, _ := setupTestStore(t)

	expected := int64(1)
	err := c.Update(context.Background(), "absent", testState("absent", 0), &expected)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdate_WinnerTakesOne(t *testing.T) {
	c, _ := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, c.Create(ctx, testState("s1", 1)))

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			expected := int64(1)
			errs[i] = c.Update(ctx, "s1", testState("s1", 0), &expected)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrConcurrentModification)
		}
	}
	assert.Equal(t, 1, wins, "exactly one CAS write may succeed per version")

	got, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
}

func TestUpdate_UnconditionalWriteBack(t *testing.T) {
	c, _ := setupTestStore(t)
	ctx := context.Background()

	// No key exists; the recovery write-back path must still succeed.
	recovered := testState("s1", 5)
	require.NoError(t, c.Update(ctx, "s1", recovered, nil))

	got, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Version, "unconditional writes keep the caller's version")
}

func TestDelete_PublishesTombstone(t *testing.T) {
	c, _ := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Create(ctx, testState("s1", 1)))

	envelopes := make(chan models.UpdateEnvelope, 8)
	require.NoError(t, c.SubscribeUpdates(ctx, func(env models.UpdateEnvelope) {
		envelopes <- env
	}))

	require.NoError(t, c.Delete(ctx, "s1"))

	select {
	case env := <-envelopes:
		assert.Equal(t, "s1", env.SessionID)
		assert.True(t, env.Deleted)
		assert.Nil(t, env.State)
	case <-time.After(2 * time.Second):
		t.Fatal("no tombstone received")
	}

	got, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op, not an error.
	assert.NoError(t, c.Delete(ctx, "s1"))
}

func TestSubscribeUpdates_ReceivesWrites(t *testing.T) {
	c, _ := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	envelopes := make(chan models.UpdateEnvelope, 8)
	require.NoError(t, c.SubscribeUpdates(ctx, func(env models.UpdateEnvelope) {
		envelopes <- env
	}))

	require.NoError(t, c.Create(ctx, testState("s1", 1)))

	select {
	case env := <-envelopes:
		assert.Equal(t, "s1", env.SessionID)
		require.NotNil(t, env.State)
		assert.Equal(t, int64(1), env.State.Version)
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
	}
}

func TestPublishWS_RoundTrip(t *testing.T) {
	c, _ := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type received struct {
		id      string
		payload []byte
	}
	got := make(chan received, 1)
	require.NoError(t, c.SubscribeWS(ctx, func(id string, payload []byte) {
		got <- received{id, payload}
	}))

	msg, _ := json.Marshal(map[string]any{"type": "STATE_UPDATE", "version": 3})
	require.NoError(t, c.PublishWS(ctx, "s1", msg))

	select {
	case r := <-got:
		assert.Equal(t, "s1", r.id)
		assert.JSONEq(t, string(msg), string(r.payload))
	case <-time.After(2 * time.Second):
		t.Fatal("no ws message received")
	}
}

func TestIdempotency_FirstWriterWins(t *testing.T) {
	c, mr := setupTestStore(t)
	ctx := context.Background()

	_, found, err := c.GetIdempotent(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.PutIdempotent(ctx, "key-1", []byte(`{"v":1}`)))
	require.NoError(t, c.PutIdempotent(ctx, "key-1", []byte(`{"v":2}`)))

	cached, found, err := c.GetIdempotent(ctx, "key-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte(`{"v":1}`), cached)

	// 24 h TTL on the cache entry.
	ttl := mr.TTL(idempotencyKeyPrefix + "key-1")
	assert.Greater(t, ttl, 23*time.Hour)
}

func TestIncrWindow(t *testing.T) {
	c, mr := setupTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := c.IncrWindow(ctx, "rl:global:u1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	// The window TTL is armed by the first increment and not extended.
	ttl := mr.TTL("rl:global:u1")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	mr.FastForward(2 * time.Minute)
	count, err := c.IncrWindow(ctx, "rl:global:u1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "window resets after expiry")
}

func TestPing(t *testing.T) {
	c, mr := setupTestStore(t)
	require.NoError(t, c.Ping(context.Background()))

	mr.Close()
	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
