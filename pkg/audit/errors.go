package audit

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// classify decides whether a failed job is worth retrying.
//
// Retryable: transport errors, timeouts, deadlocks/serialization failures,
// and resource exhaustion - the write may succeed later.
//
// Non-retryable: integrity violations. A unique collision on
// (session_id, version) means the event is already recorded (a replay);
// FK and check violations indicate a logic bug. Retrying cannot succeed.
func classify(err error) (retryable bool) {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", // unique_violation
			"23503", // foreign_key_violation
			"23514": // check_violation
			return false
		case "40001", // serialization_failure
			"40P01": // deadlock_detected
			return true
		}
		if len(pgErr.Code) >= 2 {
			switch pgErr.Code[:2] {
			case "08": // connection exceptions
				return true
			case "53": // insufficient resources (pool exhaustion, disk)
				return true
			case "57": // operator intervention (shutdown)
				return true
			}
		}
		return false
	}

	// Unclassified errors (driver-level transport failures mostly) retry.
	return true
}
