package postgres

import (
	"database/sql"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
)

type matchTableModel struct {
	ID         string         `db:"id"`
	HomeTeamID sql.NullString `db:"home_team_id"`
	AwayTeamID sql.NullString `db:"away_team_id"`
	KickoffAt  time.Time      `db:"kickoff_at"`
	City       string         `db:"city"`
	Stadium    string         `db:"stadium"`
	Phase      string         `db:"phase"`
	GroupLabel sql.NullString `db:"group_label"`
	HomeScore  sql.NullInt64  `db:"home_score"`
	AwayScore  sql.NullInt64  `db:"away_score"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

type matchInsertModel struct {
	ID         string    `db:"id"`
	HomeTeamID *string   `db:"home_team_id"`
	AwayTeamID *string   `db:"away_team_id"`
	KickoffAt  time.Time `db:"kickoff_at"`
	City       string    `db:"city"`
	Stadium    string    `db:"stadium"`
	Phase      string    `db:"phase"`
	GroupLabel *string   `db:"group_label"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		HomeTeamID: row.HomeTeamID.String,
		AwayTeamID: row.AwayTeamID.String,
		KickoffAt:  row.KickoffAt,
		City:       row.City,
		Stadium:    row.Stadium,
		Phase:      row.Phase,
		GroupLabel: nullStringToPtr(row.GroupLabel),
		HomeScore:  nullInt64ToIntPtr(row.HomeScore),
		AwayScore:  nullInt64ToIntPtr(row.AwayScore),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
