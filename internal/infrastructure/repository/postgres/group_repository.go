package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/group"
	qb "github.com/TobiasMoreno/wc-2026-be/internal/platform/querybuilder"
)

type GroupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, item group.Group) error {
	insertModel := groupInsertModel{
		ID:           item.ID,
		Name:         item.Name,
		PasswordHash: item.PasswordHash,
	}
	query, args, err := qb.InsertModel("groups", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create group query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	query, args, err := qb.Select("*").
		From("groups").
		Where(qb.Eq("id", groupID)).
		ToSQL()
	if err != nil {
		return group.Group{}, false, fmt.Errorf("build get group by id query: %w", err)
	}

	var row groupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return group.Group{}, false, nil
		}
		return group.Group{}, false, fmt.Errorf("get group by id: %w", err)
	}
	return groupFromRow(row), true, nil
}

func (r *GroupRepository) GetByName(ctx context.Context, name string) (group.Group, bool, error) {
	query, args, err := qb.Select("*").
		From("groups").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return group.Group{}, false, fmt.Errorf("build get group by name query: %w", err)
	}

	var row groupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return group.Group{}, false, nil
		}
		return group.Group{}, false, fmt.Errorf("get group by name: %w", err)
	}
	return groupFromRow(row), true, nil
}
