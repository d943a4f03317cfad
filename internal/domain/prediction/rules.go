package prediction

import (
	"errors"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
)

var (
	ErrDeadlinePassed = errors.New("prediction deadline has passed")
	ErrMatchFrozen    = errors.New("match result is already final")
	ErrUnknownPick    = errors.New("unknown predicted outcome")
)

// LockLead is how long before kickoff predictions close.
const LockLead = time.Hour

// CanWrite reports whether a prediction may still be created, changed,
// or removed for a match kicking off at the given time. Exactly one
// lock lead before kickoff is still writable.
func CanWrite(now, kickoffAt time.Time) bool {
	return kickoffAt.Sub(now) >= LockLead
}

// Award returns the points earned by a pick against the actual
// outcome: one point for the exact outcome, zero otherwise.
func Award(predicted, actual match.Outcome) int {
	if predicted == actual {
		return 1
	}
	return 0
}
