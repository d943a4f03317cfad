package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
)

// BracketService owns knockout winner picks.
type BracketService struct {
	matchRepo   match.Repository
	bracketRepo prediction.BracketRepository
	now         func() time.Time
}

func NewBracketService(matchRepo match.Repository, bracketRepo prediction.BracketRepository) *BracketService {
	return &BracketService{
		matchRepo:   matchRepo,
		bracketRepo: bracketRepo,
		now:         time.Now,
	}
}

// Upsert stores the caller's winner pick for a knockout match. The
// winner, when set, must be one of the two teams playing it. The same
// freeze and kickoff locks as outcome predictions apply.
func (s *BracketService) Upsert(ctx context.Context, userID, matchID string, winnerTeamID *string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.Upsert")
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
		return fmt.Errorf("get match for bracket pick: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if item.Phase == match.PhaseGroup {
		return fmt.Errorf("%w: match %s is a group stage match", ErrInvalidInput, matchID)
	}
	if item.Finalized() {
		return fmt.Errorf("%w: match=%s", prediction.ErrMatchFrozen, matchID)
	}
	if !prediction.CanWrite(s.now(), item.KickoffAt) {
		return fmt.Errorf("%w: match=%s", prediction.ErrDeadlinePassed, matchID)
	}

	if winnerTeamID != nil {
		winner := strings.TrimSpace(*winnerTeamID)
		if winner == "" {
			winnerTeamID = nil
		} else if winner != item.HomeTeamID && winner != item.AwayTeamID {
			return fmt.Errorf("%w: team %s is not playing match %s", ErrInvalidInput, winner, matchID)
		} else {
			winnerTeamID = &winner
		}
	}

	if err := s.bracketRepo.Upsert(ctx, prediction.BracketPrediction{
		UserID:       userID,
		MatchID:      matchID,
		WinnerTeamID: winnerTeamID,
	}); err != nil {
		return fmt.Errorf("upsert bracket pick: %w", err)
	}
	return nil
}

func (s *BracketService) ListMine(ctx context.Context, userID string) ([]prediction.BracketPrediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.ListMine")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.bracketRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bracket picks: %w", err)
	}
	return items, nil
}

// ListMineByPhase filters the caller's bracket picks down to matches
// in one knockout phase.
func (s *BracketService) ListMineByPhase(ctx context.Context, userID, phase string) ([]prediction.BracketPrediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.ListMineByPhase")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	phase = match.NormalizePhase(phase)
	if !match.IsKnownPhase(phase) || phase == match.PhaseGroup {
		return nil, fmt.Errorf("%w: unknown knockout phase %q", ErrInvalidInput, phase)
	}

	items, err := s.bracketRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bracket picks: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	matchIDs := make([]string, 0, len(items))
	for _, item := range items {
		matchIDs = append(matchIDs, item.MatchID)
	}
	matches, err := s.matchRepo.GetByIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("get matches for bracket picks: %w", err)
	}

	inPhase := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if m.Phase == phase {
			inPhase[m.ID] = struct{}{}
		}
	}

	filtered := make([]prediction.BracketPrediction, 0, len(items))
	for _, item := range items {
		if _, ok := inPhase[item.MatchID]; ok {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
