package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
	qb "github.com/TobiasMoreno/wc-2026-be/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select("*").
		From("users").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}
	return userFromRow(row), true, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	query, args, err := qb.Select("*").
		From("users").
		Where(qb.Eq("email", email)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by email query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by email: %w", err)
	}
	return userFromRow(row), true, nil
}

// Upsert writes profile fields only; group membership and points keep
// their stored values on conflict.
func (r *UserRepository) Upsert(ctx context.Context, item user.User) error {
	insertModel := userInsertModel{
		ID:         item.ID,
		Email:      item.Email,
		Name:       item.Name,
		PictureURL: item.PictureURL,
		Role:       item.Role,
	}
	query, args, err := qb.InsertModel("users", insertModel, `ON CONFLICT (email)
DO UPDATE SET
    name = EXCLUDED.name,
    picture_url = EXCLUDED.picture_url,
    role = EXCLUDED.role,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert user query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UserRepository) AssignGroup(ctx context.Context, userID, groupID string) error {
	query, args, err := qb.Update("users").
		Set("group_id", groupID).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build assign group query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("assign group: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected assign group: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assign group: user %s not found", userID)
	}
	return nil
}

func (r *UserRepository) ListByGroup(ctx context.Context, groupID string) ([]user.User, error) {
	query, args, err := qb.Select("*").
		From("users").
		Where(qb.Eq("group_id", groupID)).
		OrderBy("total_points DESC", "name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users by group query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users by group: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out, nil
}
