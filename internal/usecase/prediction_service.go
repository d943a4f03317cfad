package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
)

// PredictionService owns the outcome prediction write path.
type PredictionService struct {
	matchRepo      match.Repository
	predictionRepo prediction.Repository
	userRepo       user.Repository
	now            func() time.Time
}

func NewPredictionService(matchRepo match.Repository, predictionRepo prediction.Repository, userRepo user.Repository) *PredictionService {
	return &PredictionService{
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

// Upsert creates or replaces the caller's pick for a match. Writes are
// rejected once the match is frozen or the kickoff lock has engaged.
func (s *PredictionService) Upsert(ctx context.Context, userID, matchID string, pick match.Outcome) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Upsert")
	defer span.End()

	userID = strings.TrimSpace(userID)
	matchID = strings.TrimSpace(matchID)
	pick = match.Outcome(strings.ToUpper(strings.TrimSpace(string(pick))))
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if !match.IsKnownOutcome(pick) {
		return fmt.Errorf("%w: %q", prediction.ErrUnknownPick, pick)
	}

	if _, exists, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("get user for prediction: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match for prediction: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if item.Finalized() {
		return fmt.Errorf("%w: match=%s", prediction.ErrMatchFrozen, matchID)
	}
	if !prediction.CanWrite(s.now(), item.KickoffAt) {
		return fmt.Errorf("%w: match=%s", prediction.ErrDeadlinePassed, matchID)
	}

	if err := s.predictionRepo.Upsert(ctx, prediction.Prediction{
		UserID:  userID,
		MatchID: matchID,
		Pick:    pick,
	}); err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}
	return nil
}

// Delete removes the caller's pick for a match. Frozen matches stay
// untouched; the kickoff lock does not apply to removals.
func (s *PredictionService) Delete(ctx context.Context, userID, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Delete")
	defer span.End()

	userID = strings.TrimSpace(userID)
	matchID = strings.TrimSpace(matchID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match for prediction delete: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if item.Finalized() {
		return fmt.Errorf("%w: match=%s", prediction.ErrMatchFrozen, matchID)
	}

	deleted, err := s.predictionRepo.Delete(ctx, userID, matchID)
	if err != nil {
		return fmt.Errorf("delete prediction: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: prediction user=%s match=%s", ErrNotFound, userID, matchID)
	}
	return nil
}

func (s *PredictionService) ListMine(ctx context.Context, userID string) ([]prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.ListMine")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.predictionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list predictions by user: %w", err)
	}
	return items, nil
}

func (s *PredictionService) GetMineByMatch(ctx context.Context, userID, matchID string) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.GetMineByMatch")
	defer span.End()

	userID = strings.TrimSpace(userID)
	matchID = strings.TrimSpace(matchID)
	if userID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if matchID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.predictionRepo.GetByUserAndMatch(ctx, userID, matchID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get prediction: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("%w: prediction user=%s match=%s", ErrNotFound, userID, matchID)
	}
	return item, nil
}
