package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	qb "github.com/TobiasMoreno/wc-2026-be/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").
		From("matches").
		OrderBy("kickoff_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) ListByPhase(ctx context.Context, phase string) ([]match.Match, error) {
	query, args, err := qb.Select("*").
		From("matches").
		Where(qb.Eq("phase", phase)).
		OrderBy("kickoff_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by phase query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches by phase: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").
		From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) GetByIDs(ctx context.Context, matchIDs []string) ([]match.Match, error) {
	if len(matchIDs) == 0 {
		return nil, nil
	}

	values := make([]any, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		values = append(values, matchID)
	}
	query, args, err := qb.Select("*").
		From("matches").
		Where(qb.In("id", values)).
		OrderBy("kickoff_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get matches by ids query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get matches by ids: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

// UpsertSchedule refreshes schedule fields only. Scores are owned by
// ApplyFinalResult and survive re-imports.
func (r *MatchRepository) UpsertSchedule(ctx context.Context, matches []match.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert schedule: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range matches {
		insertModel := matchInsertModel{
			ID:         item.ID,
			HomeTeamID: emptyToNilPtr(item.HomeTeamID),
			AwayTeamID: emptyToNilPtr(item.AwayTeamID),
			KickoffAt:  item.KickoffAt,
			City:       item.City,
			Stadium:    item.Stadium,
			Phase:      item.Phase,
			GroupLabel: item.GroupLabel,
		}
		query, args, err := qb.InsertModel("matches", insertModel, `ON CONFLICT (id)
DO UPDATE SET
    home_team_id = EXCLUDED.home_team_id,
    away_team_id = EXCLUDED.away_team_id,
    kickoff_at = EXCLUDED.kickoff_at,
    city = EXCLUDED.city,
    stadium = EXCLUDED.stadium,
    phase = EXCLUDED.phase,
    group_label = EXCLUDED.group_label,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert match %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert schedule tx: %w", err)
	}
	return nil
}

// ApplyFinalResult writes the final score and the recomputed user
// totals in one transaction.
func (r *MatchRepository) ApplyFinalResult(ctx context.Context, matchID string, homeScore, awayScore int, totalsByUserID map[string]int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx apply final result: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	scoreQuery, scoreArgs, err := qb.Update("matches").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build apply final score query: %w", err)
	}
	scoreResult, err := tx.ExecContext(ctx, scoreQuery, scoreArgs...)
	if err != nil {
		return fmt.Errorf("apply final score: %w", err)
	}
	affected, err := scoreResult.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected apply final score: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("apply final score: match %s not found", matchID)
	}

	for userID, totalPoints := range totalsByUserID {
		totalQuery, totalArgs, err := qb.Update("users").
			Set("total_points", totalPoints).
			SetExpr("updated_at", "NOW()").
			Where(qb.Eq("id", userID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update user total query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, totalQuery, totalArgs...); err != nil {
			return fmt.Errorf("update total points for user %s: %w", userID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit apply final result tx: %w", err)
	}
	return nil
}
