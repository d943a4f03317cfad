package prediction

import (
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
)

// Prediction is a user's pick for a single match outcome.
// At most one row exists per (user, match) pair.
type Prediction struct {
	UserID    string
	MatchID   string
	Pick      match.Outcome
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BracketPrediction is a user's knockout-stage winner pick. It is
// stored and listed but never scored. Winner stays nil until chosen.
type BracketPrediction struct {
	UserID       string
	MatchID      string
	WinnerTeamID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
