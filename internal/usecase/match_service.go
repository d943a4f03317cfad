package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
)

// MatchService serves the match catalog and runs result finalization.
type MatchService struct {
	matchRepo  match.Repository
	scorer     *ScoringService
	finalizeMu sync.Mutex
}

func NewMatchService(matchRepo match.Repository, scorer *ScoringService) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		scorer:    scorer,
	}
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) ListByPhase(ctx context.Context, phase string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByPhase")
	defer span.End()

	phase = match.NormalizePhase(phase)
	if !match.IsKnownPhase(phase) {
		return nil, fmt.Errorf("%w: unknown phase %q", ErrInvalidInput, phase)
	}

	items, err := s.matchRepo.ListByPhase(ctx, phase)
	if err != nil {
		return nil, fmt.Errorf("list matches by phase: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetByID(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByID")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

// FinalizeResult records the final score of a match and rebuilds the
// point totals of every user that predicted it. Score and totals land
// in one repository write, so a failure leaves both untouched. Running
// it again with the same score is a no-op for the totals; running it
// with a corrected score reconciles them.
func (s *MatchService) FinalizeResult(ctx context.Context, matchID string, homeScore, awayScore int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.FinalizeResult")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if homeScore < 0 || awayScore < 0 {
		return fmt.Errorf("%w: scores must be non-negative", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match for finalization: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	item.HomeScore = &homeScore
	item.AwayScore = &awayScore

	// Totals are recomputed from the stored snapshot, so recompute and
	// apply must not interleave: two finalizations racing on matches
	// that share a predictor would each miss the other's score and the
	// later write would drop points.
	s.finalizeMu.Lock()
	defer s.finalizeMu.Unlock()

	totals, err := s.scorer.ComputeTotals(ctx, item)
	if err != nil {
		return fmt.Errorf("recompute totals for match %s: %w", matchID, err)
	}

	if err := s.matchRepo.ApplyFinalResult(ctx, matchID, homeScore, awayScore, totals); err != nil {
		return fmt.Errorf("apply final result for match %s: %w", matchID, err)
	}
	return nil
}
