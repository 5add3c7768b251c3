package engine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/synckairos/synckairos/pkg/models"
)

// Input bounds for session creation.
const (
	minParticipants = 1
	maxParticipants = 1000

	minTotalTimeMs = 1_000
	maxTotalTimeMs = 86_400_000 // 24 h

	minTimePerCycleMs = 1_000
	maxIncrementMs    = 60_000

	maxMetadataBytes = 10 * 1024
)

func validateCreateRequest(req *models.CreateSessionRequest) error {
	if _, err := uuid.Parse(req.SessionID); err != nil {
		return invalid("session_id", "must be a well-formed UUID")
	}
	if !req.SyncMode.Valid() {
		return invalid("sync_mode", fmt.Sprintf("unknown mode %q", req.SyncMode))
	}

	n := len(req.Participants)
	if n < minParticipants || n > maxParticipants {
		return invalid("participants", fmt.Sprintf("must have %d..%d entries", minParticipants, maxParticipants))
	}

	seenIDs := make(map[string]struct{}, n)
	seenIdx := make(map[int]struct{}, n)
	explicitIdx := 0
	for i, p := range req.Participants {
		field := fmt.Sprintf("participants[%d]", i)
		if _, err := uuid.Parse(p.ParticipantID); err != nil {
			return invalid(field+".participant_id", "must be a well-formed UUID")
		}
		if _, dup := seenIDs[p.ParticipantID]; dup {
			return invalid(field+".participant_id", "duplicate participant id")
		}
		seenIDs[p.ParticipantID] = struct{}{}

		if p.TotalTimeMs < minTotalTimeMs || p.TotalTimeMs > maxTotalTimeMs {
			return invalid(field+".total_time_ms",
				fmt.Sprintf("must be in [%d, %d]", minTotalTimeMs, maxTotalTimeMs))
		}
		if p.GroupID != "" {
			if _, err := uuid.Parse(p.GroupID); err != nil {
				return invalid(field+".group_id", "must be a well-formed UUID")
			}
		}
		if p.ParticipantIndex != nil {
			if *p.ParticipantIndex < 0 {
				return invalid(field+".participant_index", "must be non-negative")
			}
			if _, dup := seenIdx[*p.ParticipantIndex]; dup {
				return invalid(field+".participant_index", "duplicate participant index")
			}
			seenIdx[*p.ParticipantIndex] = struct{}{}
			explicitIdx++
		}
	}
	// Indexes are either fully explicit (and dense) or fully assigned by
	// insertion order; a mix is ambiguous.
	if explicitIdx != 0 {
		if explicitIdx != n {
			return invalid("participants", "participant_index must be set on all participants or none")
		}
		for i := 0; i < n; i++ {
			if _, ok := seenIdx[i]; !ok {
				return invalid("participants", fmt.Sprintf("participant_index values must be dense 0..%d", n-1))
			}
		}
	}

	if req.TimePerCycleMs != 0 && (req.TimePerCycleMs < minTimePerCycleMs || req.TimePerCycleMs > maxTotalTimeMs) {
		return invalid("time_per_cycle_ms", fmt.Sprintf("must be in [%d, %d]", minTimePerCycleMs, maxTotalTimeMs))
	}
	if req.IncrementMs < 0 || req.IncrementMs > maxIncrementMs {
		return invalid("increment_ms", fmt.Sprintf("must be in [0, %d]", maxIncrementMs))
	}
	if req.MaxTimeMs != 0 && (req.MaxTimeMs < minTotalTimeMs || req.MaxTimeMs > maxTotalTimeMs) {
		return invalid("max_time_ms", fmt.Sprintf("must be in [%d, %d]", minTotalTimeMs, maxTotalTimeMs))
	}

	if req.Metadata != nil {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return invalid("metadata", "must be JSON-serializable")
		}
		if len(raw) > maxMetadataBytes {
			return invalid("metadata", fmt.Sprintf("must serialize to at most %d bytes", maxMetadataBytes))
		}
	}

	return nil
}
