package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
)

func newPredictionServiceFixture(now time.Time, matches ...match.Match) (*PredictionService, *stubPredictionRepository) {
	matchRepo := &stubMatchRepository{byID: make(map[string]match.Match, len(matches))}
	for _, item := range matches {
		matchRepo.byID[item.ID] = item
	}
	predictionRepo := newStubPredictionRepository()
	userRepo := &stubUserRepository{byID: map[string]user.User{
		"u1": {ID: "u1", Email: "u1@example.com", Name: "User One"},
	}}
	service := NewPredictionService(matchRepo, predictionRepo, userRepo)
	service.now = func() time.Time { return now }
	return service, predictionRepo
}

func TestPredictionService_Upsert(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 11, 12, 0, 0, 0, time.UTC)

	open := kickoffMatch("m-open", match.PhaseGroup)
	open.KickoffAt = now.Add(48 * time.Hour)
	atBoundary := kickoffMatch("m-boundary", match.PhaseGroup)
	atBoundary.KickoffAt = now.Add(time.Hour)
	locked := kickoffMatch("m-locked", match.PhaseGroup)
	locked.KickoffAt = now.Add(59 * time.Minute)
	frozen := kickoffMatch("m-frozen", match.PhaseGroup)
	frozen.KickoffAt = now.Add(-2 * time.Hour)
	frozen.HomeScore, frozen.AwayScore = intPtr(1), intPtr(0)

	service, predictionRepo := newPredictionServiceFixture(now, open, atBoundary, locked, frozen)

	if err := service.Upsert(context.Background(), "u1", "m-open", match.OutcomeHomeWin); err != nil {
		t.Fatalf("upsert on open match: %v", err)
	}
	if err := service.Upsert(context.Background(), "u1", "m-boundary", match.OutcomeDraw); err != nil {
		t.Fatalf("upsert exactly one hour before kickoff must pass: %v", err)
	}
	if err := service.Upsert(context.Background(), "u1", "m-open", " away_win "); err != nil {
		t.Fatalf("pick normalization: %v", err)
	}
	if got, _, _ := predictionRepo.GetByUserAndMatch(context.Background(), "u1", "m-open"); got.Pick != match.OutcomeAwayWin {
		t.Fatalf("expected replaced pick AWAY_WIN, got %s", got.Pick)
	}

	if err := service.Upsert(context.Background(), "u1", "m-locked", match.OutcomeDraw); !errors.Is(err, prediction.ErrDeadlinePassed) {
		t.Fatalf("expected ErrDeadlinePassed inside the lock window, got %v", err)
	}
	if err := service.Upsert(context.Background(), "u1", "m-frozen", match.OutcomeHomeWin); !errors.Is(err, prediction.ErrMatchFrozen) {
		t.Fatalf("expected ErrMatchFrozen on scored match, got %v", err)
	}
	if err := service.Upsert(context.Background(), "u1", "m-open", "HOME_LOSS"); !errors.Is(err, prediction.ErrUnknownPick) {
		t.Fatalf("expected ErrUnknownPick, got %v", err)
	}
	if err := service.Upsert(context.Background(), "u1", "missing", match.OutcomeDraw); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
	if err := service.Upsert(context.Background(), "ghost", "m-open", match.OutcomeDraw); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestPredictionService_Delete(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 11, 12, 0, 0, 0, time.UTC)

	// Kickoff already passed but no score yet: deletes stay allowed.
	inPlay := kickoffMatch("m-inplay", match.PhaseGroup)
	inPlay.KickoffAt = now.Add(-30 * time.Minute)
	frozen := kickoffMatch("m-frozen", match.PhaseGroup)
	frozen.KickoffAt = now.Add(-2 * time.Hour)
	frozen.HomeScore, frozen.AwayScore = intPtr(0), intPtr(0)

	service, predictionRepo := newPredictionServiceFixture(now, inPlay, frozen)
	_ = predictionRepo.Upsert(context.Background(), prediction.Prediction{UserID: "u1", MatchID: "m-inplay", Pick: match.OutcomeDraw})
	_ = predictionRepo.Upsert(context.Background(), prediction.Prediction{UserID: "u1", MatchID: "m-frozen", Pick: match.OutcomeDraw})

	if err := service.Delete(context.Background(), "u1", "m-inplay"); err != nil {
		t.Fatalf("delete after kickoff but before the final score: %v", err)
	}
	if err := service.Delete(context.Background(), "u1", "m-frozen"); !errors.Is(err, prediction.ErrMatchFrozen) {
		t.Fatalf("expected ErrMatchFrozen, got %v", err)
	}
	if err := service.Delete(context.Background(), "u1", "m-inplay"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeated delete, got %v", err)
	}
}
