// Package engine implements session lifecycle and time arithmetic. Every
// mutation is a read-modify-CAS round trip against the state store; the
// engine holds no per-session state and performs no internal retries, so
// any instance can serve any session.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/synckairos/synckairos/pkg/audit"
	"github.com/synckairos/synckairos/pkg/metrics"
	"github.com/synckairos/synckairos/pkg/models"
	"github.com/synckairos/synckairos/pkg/store"
)

// Engine orchestrates session mutations: validate, mutate a clone,
// CAS-write, then publish and audit. Either the mutation applied exactly
// once at some version, or nothing applied and the caller sees
// ConcurrentModification.
type Engine struct {
	store *store.Client
	audit *audit.Queue
	now   func() time.Time
}

// NewEngine creates an engine over the given store and audit queue.
func NewEngine(st *store.Client, q *audit.Queue) *Engine {
	return &Engine{store: st, audit: q, now: time.Now}
}

// CreateSession validates the request, initializes a pending session at
// version 1, and persists it.
func (e *Engine) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*models.SessionState, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := e.now().UTC()
	state := &models.SessionState{
		SessionID:       req.SessionID,
		SyncMode:        req.SyncMode,
		Status:          models.StatusPending,
		TimePerCycleMs:  req.TimePerCycleMs,
		IncrementMs:     req.IncrementMs,
		MaxTimeMs:       req.MaxTimeMs,
		AutoAdvance:     req.AutoAdvance,
		ActionOnTimeout: req.ActionOnTimeout,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
		Metadata:        req.Metadata,
		Participants:    make([]models.Participant, len(req.Participants)),
	}
	for i, in := range req.Participants {
		idx := i
		if in.ParticipantIndex != nil {
			idx = *in.ParticipantIndex
		}
		state.Participants[i] = models.Participant{
			ParticipantID:    in.ParticipantID,
			GroupID:          in.GroupID,
			ParticipantIndex: idx,
			TotalTimeMs:      in.TotalTimeMs,
			TimeRemainingMs:  in.TotalTimeMs,
		}
	}

	if err := e.store.Create(ctx, state); err != nil {
		return nil, err
	}

	e.publishStateUpdate(ctx, state)
	e.audit.Enqueue(ctx, audit.Record{EventType: models.EventSessionCreated, State: state})
	return state, nil
}

// StartSession moves a pending session to running, anchoring the session
// and cycle clocks. Modes with an active participant activate the one with
// participant_index 0.
func (e *Engine) StartSession(ctx context.Context, id string) (*models.SessionState, error) {
	current, err := e.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: cannot start a %s session", ErrInvalidState, current.Status)
	}

	expected := current.Version
	next := current.Clone()
	now := e.now().UTC()
	next.Status = models.StatusRunning
	next.SessionStartedAt = &now
	next.CycleStartedAt = &now
	if next.SyncMode.HasActiveParticipant() {
		first := next.ParticipantByIndex(0)
		if first == nil {
			// Indexes are dense from creation; a missing 0 means a corrupt state.
			return nil, fmt.Errorf("%w: no participant with index 0", ErrInvalidState)
		}
		first.IsActive = true
		next.ActiveParticipantID = first.ParticipantID
		next.ActiveGroupID = first.GroupID
	}

	if err := e.casWrite(ctx, id, next, expected); err != nil {
		return nil, err
	}

	e.publishStateUpdate(ctx, next)
	e.audit.Enqueue(ctx, audit.Record{EventType: models.EventSessionStarted, State: next})
	return next, nil
}

// SwitchCycle is the hot path: bill the active participant for the elapsed
// cycle, rotate (or jump) to the next one, and CAS-write the result.
// currentPid, when given, guards against acting on a stale view; nextPid,
// when given, overrides index rotation.
func (e *Engine) SwitchCycle(ctx context.Context, id, currentPid, nextPid string) (*models.SwitchResult, error) {
	start := time.Now()
	defer func() {
		metrics.SwitchDuration.Observe(time.Since(start).Seconds())
	}()

	current, err := e.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusRunning {
		return nil, fmt.Errorf("%w: cannot switch a %s session", ErrInvalidState, current.Status)
	}

	expected := current.Version
	next := current.Clone()
	now := e.now().UTC()

	result := &models.SwitchResult{State: next}

	prev := next.ActiveParticipant()
	if next.SyncMode.HasActiveParticipant() {
		if prev == nil {
			return nil, fmt.Errorf("%w: running session has no active participant", ErrInvalidState)
		}
		if currentPid != "" && currentPid != prev.ParticipantID {
			// The caller acted on a stale view; same contract as a lost CAS.
			return nil, fmt.Errorf("%w: active participant is %s, not %s",
				store.ErrConcurrentModification, prev.ParticipantID, currentPid)
		}

		elapsed := elapsedMs(now, next.CycleStartedAt)
		prev.TimeUsedMs += elapsed
		prev.TotalTimeMs = max(0, prev.TotalTimeMs-elapsed)
		if prev.TotalTimeMs == 0 {
			// Expiry suppresses the increment.
			prev.HasExpired = true
		} else if next.IncrementMs > 0 {
			prev.TotalTimeMs += next.IncrementMs
		}
		prev.TimeRemainingMs = prev.TotalTimeMs
		prev.CycleCount++
		prev.IsActive = false

		var nextP *models.Participant
		if nextPid != "" {
			nextP = next.Participant(nextPid)
			if nextP == nil {
				return nil, fmt.Errorf("%w: %s", ErrParticipantNotFound, nextPid)
			}
		} else {
			nextP = next.ParticipantByIndex((prev.ParticipantIndex + 1) % len(next.Participants))
			if nextP == nil {
				return nil, fmt.Errorf("%w: participant indexes are not dense", ErrInvalidState)
			}
		}

		if prev.HasExpired {
			result.ExpiredParticipantID = prev.ParticipantID
			next.ExpiredParticipantID = prev.ParticipantID
			result.AppliedAction = next.TimeoutActionType()
		}

		if prev.HasExpired && next.TimeoutActionType() == models.TimeoutActionEndSession {
			next.Status = models.StatusExpired
			next.ActiveParticipantID = ""
			next.ActiveGroupID = ""
			next.CycleStartedAt = nil
		} else {
			next.ActiveParticipantID = nextP.ParticipantID
			next.ActiveGroupID = nextP.GroupID
			nextP.IsActive = true
			next.CycleStartedAt = &now
		}
	} else {
		// global/count_up sessions bill the session as a whole; a switch
		// just closes the current cycle and opens the next one.
		next.CycleStartedAt = &now
	}

	if err := e.casWrite(ctx, id, next, expected); err != nil {
		return nil, err
	}

	if result.ExpiredParticipantID != "" {
		e.publishTimeExpired(ctx, next, result.ExpiredParticipantID, result.AppliedAction)
		e.audit.Enqueue(ctx, audit.Record{
			EventType:       models.EventParticipantExpired,
			State:           next,
			ParticipantID:   result.ExpiredParticipantID,
			TimeRemainingMs: remainingOf(next, result.ExpiredParticipantID),
		})
	} else {
		e.publishStateUpdate(ctx, next)
		rec := audit.Record{EventType: models.EventCycleSwitched, State: next}
		if prev != nil {
			rec.ParticipantID = prev.ParticipantID
			rec.TimeRemainingMs = &prev.TimeRemainingMs
		}
		e.audit.Enqueue(ctx, rec)
	}

	return result, nil
}

// PauseSession bills the active participant for the open cycle and stops
// the clock.
func (e *Engine) PauseSession(ctx context.Context, id string) (*models.SessionState, error) {
	current, err := e.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusRunning {
		return nil, fmt.Errorf("%w: cannot pause a %s session", ErrInvalidState, current.Status)
	}

	expected := current.Version
	next := current.Clone()
	now := e.now().UTC()

	if active := next.ActiveParticipant(); active != nil {
		elapsed := elapsedMs(now, next.CycleStartedAt)
		active.TimeUsedMs += elapsed
		active.TotalTimeMs = max(0, active.TotalTimeMs-elapsed)
		active.TimeRemainingMs = active.TotalTimeMs
	}
	next.CycleStartedAt = nil
	next.Status = models.StatusPaused

	if err := e.casWrite(ctx, id, next, expected); err != nil {
		return nil, err
	}

	e.publishStateUpdate(ctx, next)
	e.audit.Enqueue(ctx, audit.Record{EventType: models.EventSessionPaused, State: next})
	return next, nil
}

// ResumeSession restarts the cycle clock of a paused session. The pause
// interval is never billed.
func (e *Engine) ResumeSession(ctx context.Context, id string) (*models.SessionState, error) {
	current, err := e.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPaused {
		return nil, fmt.Errorf("%w: cannot resume a %s session", ErrInvalidState, current.Status)
	}

	expected := current.Version
	next := current.Clone()
	now := e.now().UTC()
	next.CycleStartedAt = &now
	next.Status = models.StatusRunning

	if err := e.casWrite(ctx, id, next, expected); err != nil {
		return nil, err
	}

	e.publishStateUpdate(ctx, next)
	e.audit.Enqueue(ctx, audit.Record{EventType: models.EventSessionResumed, State: next})
	return next, nil
}

// CompleteSession finishes a running session normally.
func (e *Engine) CompleteSession(ctx context.Context, id string) (*models.SessionState, error) {
	current, err := e.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(current.Status, models.StatusCompleted) {
		return nil, fmt.Errorf("%w: cannot complete a %s session", ErrInvalidState, current.Status)
	}

	expected := current.Version
	next := current.Clone()
	now := e.now().UTC()
	next.Status = models.StatusCompleted
	next.SessionCompletedAt = &now
	next.CycleStartedAt = nil
	deactivateAll(next)

	if err := e.casWrite(ctx, id, next, expected); err != nil {
		return nil, err
	}

	e.publishStateUpdate(ctx, next)
	e.audit.Enqueue(ctx, audit.Record{EventType: models.EventSessionCompleted, State: next})
	return next, nil
}

// CancelSession aborts a session from any non-cancelled status.
func (e *Engine) CancelSession(ctx context.Context, id string) (*models.SessionState, error) {
	current, err := e.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(current.Status, models.StatusCancelled) {
		return nil, fmt.Errorf("%w: session already cancelled", ErrInvalidState)
	}

	expected := current.Version
	next := current.Clone()
	next.Status = models.StatusCancelled
	next.CycleStartedAt = nil
	deactivateAll(next)

	if err := e.casWrite(ctx, id, next, expected); err != nil {
		return nil, err
	}

	e.publishStateUpdate(ctx, next)
	e.audit.Enqueue(ctx, audit.Record{EventType: models.EventSessionCancelled, State: next})
	return next, nil
}

// GetCurrentState returns the stored state without advancing time: clients
// derive live remaining time from the anchors plus GET /time.
func (e *Engine) GetCurrentState(ctx context.Context, id string) (*models.SessionState, error) {
	return e.getExisting(ctx, id)
}

// DeleteSession removes the session from the store. The audit trail keeps
// its history.
func (e *Engine) DeleteSession(ctx context.Context, id string) error {
	return e.store.Delete(ctx, id)
}

func (e *Engine) getExisting(ctx context.Context, id string) (*models.SessionState, error) {
	state, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("%w: %s", store.ErrSessionNotFound, id)
	}
	return state, nil
}

func (e *Engine) casWrite(ctx context.Context, id string, next *models.SessionState, expected int64) error {
	err := e.store.Update(ctx, id, next, &expected)
	if errors.Is(err, store.ErrConcurrentModification) {
		metrics.CASConflicts.Inc()
	}
	return err
}

func (e *Engine) publishStateUpdate(ctx context.Context, state *models.SessionState) {
	e.publishWS(ctx, state.SessionID, models.StateUpdateMessage{
		Type:      models.MsgStateUpdate,
		SessionID: state.SessionID,
		Version:   state.Version,
		State:     state,
		Timestamp: e.now().UTC().Format(time.RFC3339Nano),
	})
}

func (e *Engine) publishTimeExpired(ctx context.Context, state *models.SessionState, expiredPid, action string) {
	e.publishWS(ctx, state.SessionID, models.TimeExpiredMessage{
		Type:                 models.MsgTimeExpired,
		SessionID:            state.SessionID,
		Version:              state.Version,
		ExpiredParticipantID: expiredPid,
		AppliedAction:        action,
		State:                state,
		Timestamp:            e.now().UTC().Format(time.RFC3339Nano),
	})
}

func (e *Engine) publishWS(ctx context.Context, id string, message any) {
	data, err := json.Marshal(message)
	if err != nil {
		slog.Warn("Failed to marshal broadcast message", "session_id", id, "error", err)
		return
	}
	if err := e.store.PublishWS(ctx, id, data); err != nil {
		slog.Warn("Failed to publish broadcast message", "session_id", id, "error", err)
	}
}

// elapsedMs returns the clamped wall-clock distance from the cycle anchor.
// The clamp absorbs clock skew between coordinating instances.
func elapsedMs(now time.Time, anchor *time.Time) int64 {
	if anchor == nil {
		return 0
	}
	return max(0, now.Sub(*anchor).Milliseconds())
}

func deactivateAll(state *models.SessionState) {
	state.ActiveParticipantID = ""
	state.ActiveGroupID = ""
	for i := range state.Participants {
		state.Participants[i].IsActive = false
	}
}

func remainingOf(state *models.SessionState, pid string) *int64 {
	if p := state.Participant(pid); p != nil {
		return &p.TimeRemainingMs
	}
	return nil
}
