package postgres

import (
	"database/sql"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
)

type predictionTableModel struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	MatchID   string    `db:"match_id"`
	Pick      string    `db:"pick"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type predictionInsertModel struct {
	UserID  string `db:"user_id"`
	MatchID string `db:"match_id"`
	Pick    string `db:"pick"`
}

func predictionFromRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		UserID:    row.UserID,
		MatchID:   row.MatchID,
		Pick:      match.Outcome(row.Pick),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type bracketTableModel struct {
	ID           int64          `db:"id"`
	UserID       string         `db:"user_id"`
	MatchID      string         `db:"match_id"`
	WinnerTeamID sql.NullString `db:"winner_team_id"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type bracketInsertModel struct {
	UserID       string  `db:"user_id"`
	MatchID      string  `db:"match_id"`
	WinnerTeamID *string `db:"winner_team_id"`
}

func bracketFromRow(row bracketTableModel) prediction.BracketPrediction {
	return prediction.BracketPrediction{
		UserID:       row.UserID,
		MatchID:      row.MatchID,
		WinnerTeamID: nullStringToPtr(row.WinnerTeamID),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
