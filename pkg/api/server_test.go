package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synckairos/synckairos/pkg/audit"
	"github.com/synckairos/synckairos/pkg/config"
	"github.com/synckairos/synckairos/pkg/engine"
	"github.com/synckairos/synckairos/pkg/hub"
	"github.com/synckairos/synckairos/pkg/models"
	"github.com/synckairos/synckairos/pkg/store"
)

// nopApplier satisfies audit.Applier for tests that never drain jobs to a
// relational database.
type nopApplier struct{}

func (nopApplier) Apply(context.Context, *audit.Job) error { return nil }

type testServer struct {
	srv   *Server
	http  *httptest.Server
	queue *audit.Queue
}

func setupTestServer(t *testing.T, mutate func(*config.ServerConfig)) *testServer {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	st := store.NewClient(rdb, config.DefaultRedisConfig())
	queue := audit.NewQueue(rdb, config.DefaultQueueConfig(), nopApplier{}, nil)
	queue.Start(context.Background())
	t.Cleanup(queue.Close)

	eng := engine.NewEngine(st, queue)
	h := hub.NewHub(config.DefaultHubConfig(), st)

	cfg := config.DefaultServerConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	srv := NewServer(cfg, eng, st, nil, h, queue, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testServer{srv: srv, http: ts, queue: queue}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ts.http.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, data
}

func createReq(n int) *models.CreateSessionRequest {
	req := &models.CreateSessionRequest{
		SessionID: uuid.NewString(),
		SyncMode:  models.ModePerParticipant,
	}
	for i := 0; i < n; i++ {
		req.Participants = append(req.Participants, models.CreateParticipantInput{
			ParticipantID: uuid.NewString(),
			TotalTimeMs:   600_000,
		})
	}
	return req
}

func (ts *testServer) mustCreate(t *testing.T, req *models.CreateSessionRequest) *models.SessionState {
	t.Helper()
	resp, body := ts.do(t, http.MethodPost, "/sessions", req, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var state models.SessionState
	require.NoError(t, json.Unmarshal(body, &state))
	return &state
}

func decodeErrorBody(t *testing.T, data []byte) ErrorDetail {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(data, &body))
	return body.Error
}

func TestCreateSession(t *testing.T) {
	ts := setupTestServer(t, nil)
	req := createReq(2)

	state := ts.mustCreate(t, req)
	assert.Equal(t, req.SessionID, state.SessionID)
	assert.Equal(t, int64(1), state.Version)
	assert.Equal(t, models.StatusPending, state.Status)
	assert.Len(t, state.Participants, 2)
}

func TestCreateSession_ValidationEnvelope(t *testing.T) {
	ts := setupTestServer(t, nil)

	req := createReq(1)
	req.SessionID = "not-a-uuid"
	resp, body := ts.do(t, http.MethodPost, "/sessions", req, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	detail := decodeErrorBody(t, body)
	assert.Equal(t, CodeValidation, detail.Code)
	assert.False(t, detail.Retryable)
	assert.NotEmpty(t, detail.CorrelationID)
	assert.Equal(t, detail.CorrelationID, resp.Header.Get(CorrelationHeader))
}

func TestGetSession_NotFound(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp, body := ts.do(t, http.MethodGet, "/sessions/"+uuid.NewString(), nil, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	detail := decodeErrorBody(t, body)
	assert.Equal(t, CodeSessionNotFound, detail.Code)
}

func TestUnknownRoute_ErrorEnvelope(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp, body := ts.do(t, http.MethodGet, "/nope", nil, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	detail := decodeErrorBody(t, body)
	assert.Equal(t, CodeSessionNotFound, detail.Code)
	assert.NotEmpty(t, detail.Message)
	assert.NotEmpty(t, detail.CorrelationID)
}

func TestSessionLifecycle(t *testing.T) {
	ts := setupTestServer(t, nil)
	state := ts.mustCreate(t, createReq(2))
	base := "/sessions/" + state.SessionID

	resp, body := ts.do(t, http.MethodPost, base+"/start", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var started models.SessionState
	require.NoError(t, json.Unmarshal(body, &started))
	assert.Equal(t, models.StatusRunning, started.Status)
	assert.Equal(t, int64(2), started.Version)

	resp, body = ts.do(t, http.MethodPost, base+"/switch", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var result models.SwitchResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, int64(3), result.State.Version)

	resp, _ = ts.do(t, http.MethodPost, base+"/pause", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = ts.do(t, http.MethodPost, base+"/resume", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = ts.do(t, http.MethodPost, base+"/complete", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var completed models.SessionState
	require.NoError(t, json.Unmarshal(body, &completed))
	assert.Equal(t, models.StatusCompleted, completed.Status)

	resp, _ = ts.do(t, http.MethodDelete, base, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestStartTwice_InvalidState(t *testing.T) {
	ts := setupTestServer(t, nil)
	state := ts.mustCreate(t, createReq(1))
	base := "/sessions/" + state.SessionID

	resp, _ := ts.do(t, http.MethodPost, base+"/start", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := ts.do(t, http.MethodPost, base+"/start", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	detail := decodeErrorBody(t, body)
	assert.Equal(t, CodeInvalidState, detail.Code)
}

func TestCancelSession(t *testing.T) {
	ts := setupTestServer(t, nil)
	state := ts.mustCreate(t, createReq(1))

	resp, body := ts.do(t, http.MethodPost, "/sessions/"+state.SessionID+"/cancel", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var cancelled models.SessionState
	require.NoError(t, json.Unmarshal(body, &cancelled))
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestPoll(t *testing.T) {
	ts := setupTestServer(t, nil)
	state := ts.mustCreate(t, createReq(1))
	base := "/sessions/" + state.SessionID

	resp, body := ts.do(t, http.MethodGet, base+"/poll?since_version=0", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var polled models.SessionState
	require.NoError(t, json.Unmarshal(body, &polled))
	assert.Equal(t, state.Version, polled.Version)

	resp, _ = ts.do(t, http.MethodGet, fmt.Sprintf("%s/poll?since_version=%d", base, state.Version), nil, nil)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp, body = ts.do(t, http.MethodGet, base+"/poll?since_version=junk", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, CodeValidation, decodeErrorBody(t, body).Code)
}

func TestSwitch_IdempotencyReplay(t *testing.T) {
	ts := setupTestServer(t, nil)
	state := ts.mustCreate(t, createReq(2))
	base := "/sessions/" + state.SessionID

	resp, _ := ts.do(t, http.MethodPost, base+"/start", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	headers := map[string]string{IdempotencyHeader: uuid.NewString()}
	resp, first := ts.do(t, http.MethodPost, base+"/switch", nil, headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, second := ts.do(t, http.MethodPost, base+"/switch", nil, headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, first, second, "replay must return the cached body bit-for-bit")

	// The replay must not have advanced the session.
	resp, body := ts.do(t, http.MethodGet, base, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var current models.SessionState
	require.NoError(t, json.Unmarshal(body, &current))
	assert.Equal(t, int64(3), current.Version)
}

func TestBatch(t *testing.T) {
	ts := setupTestServer(t, nil)
	s1 := ts.mustCreate(t, createReq(1))
	s2 := ts.mustCreate(t, createReq(1))
	missing := uuid.NewString()

	resp, body := ts.do(t, http.MethodPost, "/sessions/batch", models.BatchRequest{
		SessionIDs: []string{s1.SessionID, s2.SessionID, missing},
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var batch models.BatchResponse
	require.NoError(t, json.Unmarshal(body, &batch))
	assert.Len(t, batch.Sessions, 2)
	assert.Equal(t, []string{missing}, batch.Missing)
}

func TestBatch_Limits(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp, body := ts.do(t, http.MethodPost, "/sessions/batch", models.BatchRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, CodeValidation, decodeErrorBody(t, body).Code)

	big := models.BatchRequest{}
	for i := 0; i < maxBatchSize+1; i++ {
		big.SessionIDs = append(big.SessionIDs, uuid.NewString())
	}
	resp, body = ts.do(t, http.MethodPost, "/sessions/batch", big, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeErrorBody(t, body).Message, "batch limit")
}

func TestSwitchRateLimit(t *testing.T) {
	ts := setupTestServer(t, func(cfg *config.ServerConfig) {
		cfg.Limits.SwitchPerSecond = 2
	})
	state := ts.mustCreate(t, createReq(2))
	base := "/sessions/" + state.SessionID

	resp, _ := ts.do(t, http.MethodPost, base+"/start", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodPost, base+"/switch", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = ts.do(t, http.MethodPost, base+"/switch", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := ts.do(t, http.MethodPost, base+"/switch", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	detail := decodeErrorBody(t, body)
	assert.Equal(t, CodeRateLimited, detail.Code)
	assert.True(t, detail.Retryable)
}

func TestTimeEndpoint(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp, body := ts.do(t, http.MethodGet, "/time", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tr models.TimeResponse
	require.NoError(t, json.Unmarshal(body, &tr))
	assert.Positive(t, tr.TimestampMs)
}

func TestHealth_NoAuditDB(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp, body := ts.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "up", health.Store)
	assert.Equal(t, "down", health.AuditDB)
}

func TestReady(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp, body := ts.do(t, http.MethodGet, "/ready", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var ready ReadyResponse
	require.NoError(t, json.Unmarshal(body, &ready))
	assert.True(t, ready.Ready)

	ts.queue.Close()
	resp, _ = ts.do(t, http.MethodGet, "/ready", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestSecurityHeaders(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp, _ := ts.do(t, http.MethodGet, "/time", nil, nil)
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp, body := ts.do(t, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}
