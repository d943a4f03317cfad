package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/favorite"
	qb "github.com/TobiasMoreno/wc-2026-be/internal/platform/querybuilder"
)

type favoriteTableModel struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	MatchID   string    `db:"match_id"`
	CreatedAt time.Time `db:"created_at"`
}

type favoriteInsertModel struct {
	UserID  string `db:"user_id"`
	MatchID string `db:"match_id"`
}

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, item favorite.Favorite) (bool, error) {
	insertModel := favoriteInsertModel{
		UserID:  item.UserID,
		MatchID: item.MatchID,
	}
	query, args, err := qb.InsertModel("favorites", insertModel, "ON CONFLICT (user_id, match_id) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build add favorite query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected add favorite: %w", err)
	}
	return affected > 0, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, matchID string) (bool, error) {
	query, args, err := qb.DeleteFrom("favorites").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build remove favorite query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected remove favorite: %w", err)
	}
	return affected > 0, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, matchID string) (bool, error) {
	query, args, err := qb.Select("1").
		From("favorites").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_id", matchID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build favorite exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("favorite exists: %w", err)
	}
	return true, nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]favorite.Favorite, error) {
	query, args, err := qb.Select("*").
		From("favorites").
		Where(qb.Eq("user_id", userID)).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list favorites query: %w", err)
	}

	var rows []favoriteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	out := make([]favorite.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, favorite.Favorite{
			UserID:    row.UserID,
			MatchID:   row.MatchID,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
