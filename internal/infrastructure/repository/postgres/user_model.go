package postgres

import (
	"database/sql"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
)

type userTableModel struct {
	ID          string         `db:"id"`
	Email       string         `db:"email"`
	Name        string         `db:"name"`
	PictureURL  string         `db:"picture_url"`
	Role        string         `db:"role"`
	GroupID     sql.NullString `db:"group_id"`
	TotalPoints int            `db:"total_points"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type userInsertModel struct {
	ID         string `db:"id"`
	Email      string `db:"email"`
	Name       string `db:"name"`
	PictureURL string `db:"picture_url"`
	Role       string `db:"role"`
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:          row.ID,
		Email:       row.Email,
		Name:        row.Name,
		PictureURL:  row.PictureURL,
		Role:        row.Role,
		GroupID:     nullStringToPtr(row.GroupID),
		TotalPoints: row.TotalPoints,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
