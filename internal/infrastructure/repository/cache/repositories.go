package cache

import (
	"context"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/team"
	basecache "github.com/TobiasMoreno/wc-2026-be/internal/platform/cache"
)

// Read-through wrappers for the catalog repositories. Rankings and
// user totals are deliberately not cached anywhere: standings must be
// a fresh snapshot on every read.

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) UpsertTeams(ctx context.Context, items []team.Team) error {
	if err := r.next.UpsertTeams(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	v, err := r.cache.GetOrLoad(ctx, "match:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) ListByPhase(ctx context.Context, phase string) ([]match.Match, error) {
	key := "match:phase:" + phase
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByPhase(ctx, phase)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	key := "match:id:" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

// GetByIDs goes straight through; the id sets vary per caller and
// would only pollute the store.
func (r *MatchRepository) GetByIDs(ctx context.Context, matchIDs []string) ([]match.Match, error) {
	return r.next.GetByIDs(ctx, matchIDs)
}

func (r *MatchRepository) UpsertSchedule(ctx context.Context, matches []match.Match) error {
	if err := r.next.UpsertSchedule(ctx, matches); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

func (r *MatchRepository) ApplyFinalResult(ctx context.Context, matchID string, homeScore, awayScore int, totalsByUserID map[string]int) error {
	if err := r.next.ApplyFinalResult(ctx, matchID, homeScore, awayScore, totalsByUserID); err != nil {
		return err
	}
	r.cache.Delete(ctx, "match:id:"+matchID)
	r.cache.Delete(ctx, "match:list")
	r.cache.DeletePrefix(ctx, "match:phase:")
	return nil
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}
