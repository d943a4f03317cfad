package match

import "context"

// Repository exposes match reads and the finalization write.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ListByPhase(ctx context.Context, phase string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	GetByIDs(ctx context.Context, matchIDs []string) ([]Match, error)
	UpsertSchedule(ctx context.Context, matches []Match) error

	// ApplyFinalResult persists the final score together with the
	// recomputed per-user point totals in one atomic write. Either
	// everything lands or nothing does.
	ApplyFinalResult(ctx context.Context, matchID string, homeScore, awayScore int, totalsByUserID map[string]int) error
}
