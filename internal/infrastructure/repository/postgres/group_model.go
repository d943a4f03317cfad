package postgres

import (
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/group"
)

type groupTableModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type groupInsertModel struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
}

func groupFromRow(row groupTableModel) group.Group {
	return group.Group{
		ID:           row.ID,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
