package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
	qb "github.com/TobiasMoreno/wc-2026-be/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Upsert(ctx context.Context, item prediction.Prediction) error {
	insertModel := predictionInsertModel{
		UserID:  item.UserID,
		MatchID: item.MatchID,
		Pick:    string(item.Pick),
	}
	query, args, err := qb.InsertModel("predictions", insertModel, `ON CONFLICT (user_id, match_id)
DO UPDATE SET
    pick = EXCLUDED.pick,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert prediction query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepository) Delete(ctx context.Context, userID, matchID string) (bool, error) {
	query, args, err := qb.DeleteFrom("predictions").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete prediction query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete prediction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete prediction: %w", err)
	}
	return affected > 0, nil
}

func (r *PredictionRepository) GetByUserAndMatch(ctx context.Context, userID, matchID string) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select("*").
		From("predictions").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build get prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("get prediction: %w", err)
	}
	return predictionFromRow(row), true, nil
}

func (r *PredictionRepository) ListByUser(ctx context.Context, userID string) ([]prediction.Prediction, error) {
	query, args, err := qb.Select("*").
		From("predictions").
		Where(qb.Eq("user_id", userID)).
		OrderBy("match_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions by user query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions by user: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

func (r *PredictionRepository) ListByMatch(ctx context.Context, matchID string) ([]prediction.Prediction, error) {
	query, args, err := qb.Select("*").
		From("predictions").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("user_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions by match query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions by match: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

type BracketRepository struct {
	db *sqlx.DB
}

func NewBracketRepository(db *sqlx.DB) *BracketRepository {
	return &BracketRepository{db: db}
}

func (r *BracketRepository) Upsert(ctx context.Context, item prediction.BracketPrediction) error {
	insertModel := bracketInsertModel{
		UserID:       item.UserID,
		MatchID:      item.MatchID,
		WinnerTeamID: item.WinnerTeamID,
	}
	query, args, err := qb.InsertModel("bracket_predictions", insertModel, `ON CONFLICT (user_id, match_id)
DO UPDATE SET
    winner_team_id = EXCLUDED.winner_team_id,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert bracket pick query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert bracket pick: %w", err)
	}
	return nil
}

func (r *BracketRepository) ListByUser(ctx context.Context, userID string) ([]prediction.BracketPrediction, error) {
	query, args, err := qb.Select("*").
		From("bracket_predictions").
		Where(qb.Eq("user_id", userID)).
		OrderBy("match_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list bracket picks query: %w", err)
	}

	var rows []bracketTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list bracket picks: %w", err)
	}

	out := make([]prediction.BracketPrediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, bracketFromRow(row))
	}
	return out, nil
}
