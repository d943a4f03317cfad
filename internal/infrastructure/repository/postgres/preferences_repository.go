package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/preferences"
	qb "github.com/TobiasMoreno/wc-2026-be/internal/platform/querybuilder"
)

type preferencesTableModel struct {
	UserID               string    `db:"user_id"`
	Timezone             string    `db:"timezone"`
	Language             string    `db:"language"`
	NotificationsEnabled bool      `db:"notifications_enabled"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type preferencesInsertModel struct {
	UserID               string `db:"user_id"`
	Timezone             string `db:"timezone"`
	Language             string `db:"language"`
	NotificationsEnabled bool   `db:"notifications_enabled"`
}

type PreferencesRepository struct {
	db *sqlx.DB
}

func NewPreferencesRepository(db *sqlx.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

func (r *PreferencesRepository) GetByUser(ctx context.Context, userID string) (preferences.Preferences, bool, error) {
	query, args, err := qb.Select("*").
		From("preferences").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return preferences.Preferences{}, false, fmt.Errorf("build get preferences query: %w", err)
	}

	var row preferencesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return preferences.Preferences{}, false, nil
		}
		return preferences.Preferences{}, false, fmt.Errorf("get preferences: %w", err)
	}

	return preferences.Preferences{
		UserID:               row.UserID,
		Timezone:             row.Timezone,
		Language:             row.Language,
		NotificationsEnabled: row.NotificationsEnabled,
		UpdatedAt:            row.UpdatedAt,
	}, true, nil
}

func (r *PreferencesRepository) Upsert(ctx context.Context, item preferences.Preferences) error {
	insertModel := preferencesInsertModel{
		UserID:               item.UserID,
		Timezone:             item.Timezone,
		Language:             item.Language,
		NotificationsEnabled: item.NotificationsEnabled,
	}
	query, args, err := qb.InsertModel("preferences", insertModel, `ON CONFLICT (user_id)
DO UPDATE SET
    timezone = EXCLUDED.timezone,
    language = EXCLUDED.language,
    notifications_enabled = EXCLUDED.notifications_enabled,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert preferences query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}
