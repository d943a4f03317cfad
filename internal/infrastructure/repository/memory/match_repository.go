package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	byID  map[string]match.Match
	users *UserRepository
}

// NewMatchRepository wires the user store in so ApplyFinalResult can
// land score and totals together, mirroring the SQL transaction.
func NewMatchRepository(matches []match.Match, users *UserRepository) *MatchRepository {
	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		byID[item.ID] = item
	}

	return &MatchRepository{byID: byID, users: users}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sortMatches(out)

	return out, nil
}

func (r *MatchRepository) ListByPhase(_ context.Context, phase string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.byID {
		if item.Phase == phase {
			out = append(out, item)
		}
	}
	sortMatches(out)

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[matchID]
	return item, ok, nil
}

func (r *MatchRepository) GetByIDs(_ context.Context, matchIDs []string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		if item, ok := r.byID[matchID]; ok {
			out = append(out, item)
		}
	}
	sortMatches(out)

	return out, nil
}

func (r *MatchRepository) UpsertSchedule(_ context.Context, matches []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, item := range matches {
		if existing, ok := r.byID[item.ID]; ok {
			// Schedule refreshes never touch recorded scores.
			item.HomeScore = existing.HomeScore
			item.AwayScore = existing.AwayScore
			item.CreatedAt = existing.CreatedAt
		} else {
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		r.byID[item.ID] = item
	}

	return nil
}

func (r *MatchRepository) ApplyFinalResult(ctx context.Context, matchID string, homeScore, awayScore int, totalsByUserID map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[matchID]
	if !ok {
		return fmt.Errorf("apply final result: match %s not found", matchID)
	}

	if err := r.users.setTotalPoints(ctx, totalsByUserID); err != nil {
		return fmt.Errorf("apply final result totals: %w", err)
	}

	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.UpdatedAt = time.Now().UTC()
	r.byID[matchID] = item

	return nil
}

func sortMatches(items []match.Match) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].KickoffAt.Equal(items[j].KickoffAt) {
			return items[i].KickoffAt.Before(items[j].KickoffAt)
		}
		return items[i].ID < items[j].ID
	})
}
