package postgres

import "github.com/TobiasMoreno/wc-2026-be/internal/domain/team"

type teamTableModel struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	FIFACode   string `db:"fifa_code"`
	FlagURL    string `db:"flag_url"`
	GroupLabel string `db:"group_label"`
}

type teamInsertModel struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	FIFACode   string `db:"fifa_code"`
	FlagURL    string `db:"flag_url"`
	GroupLabel string `db:"group_label"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:         row.ID,
		Name:       row.Name,
		FIFACode:   row.FIFACode,
		FlagURL:    row.FlagURL,
		GroupLabel: row.GroupLabel,
	}
}
