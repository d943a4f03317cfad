package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
)

const defaultScoringMaxWorkers = 8

// ScoringService recomputes user point totals from prediction history.
type ScoringService struct {
	matchRepo      match.Repository
	predictionRepo prediction.Repository
	maxWorkers     int
}

func NewScoringService(matchRepo match.Repository, predictionRepo prediction.Repository) *ScoringService {
	return &ScoringService{
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		maxWorkers:     defaultScoringMaxWorkers,
	}
}

type userTotal struct {
	userID string
	points int
}

// ComputeTotals rebuilds the full point total of every user that
// predicted the given match, as of the moment that match carries the
// scores in final. Totals are always derived from scratch over the
// user's whole prediction history so that re-finalizing a match with a
// corrected score converges to the right number instead of drifting.
func (s *ScoringService) ComputeTotals(ctx context.Context, final match.Match) (map[string]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ComputeTotals")
	defer span.End()

	if !final.Finalized() {
		return nil, fmt.Errorf("%w: match %s has no final score", ErrInvalidInput, final.ID)
	}

	affected, err := s.predictionRepo.ListByMatch(ctx, final.ID)
	if err != nil {
		return nil, fmt.Errorf("list predictions by match: %w", err)
	}
	if len(affected) == 0 {
		return map[string]int{}, nil
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches for scoring: %w", err)
	}

	matchByID := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		matchByID[m.ID] = m
	}
	// The finalizing score wins over whatever is stored right now.
	matchByID[final.ID] = final

	workers := s.maxWorkers
	if workers > len(affected) {
		workers = len(affected)
	}

	p := pool.NewWithResults[userTotal]().WithContext(ctx).WithMaxGoroutines(workers)
	for _, item := range affected {
		userID := item.UserID
		p.Go(func(ctx context.Context) (userTotal, error) {
			predictions, listErr := s.predictionRepo.ListByUser(ctx, userID)
			if listErr != nil {
				return userTotal{}, fmt.Errorf("list predictions for user %s: %w", userID, listErr)
			}

			total := 0
			for _, pred := range predictions {
				m, ok := matchByID[pred.MatchID]
				if !ok {
					continue
				}
				actual, finalized := m.Result()
				if !finalized {
					continue
				}
				total += prediction.Award(pred.Pick, actual)
			}
			return userTotal{userID: userID, points: total}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(results))
	for _, r := range results {
		totals[r.userID] = r.points
	}
	return totals, nil
}
