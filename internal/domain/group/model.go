package group

import "time"

// Group is a private circle of users competing on the shared ranking.
// Names are unique; the join password is stored as a bcrypt hash.
type Group struct {
	ID           string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RankingEntry is one row of a group ranking snapshot. Positions are
// sequential 1-based indexes; tied totals do not share a position.
type RankingEntry struct {
	Position    int
	UserID      string
	Email       string
	Name        string
	PictureURL  string
	TotalPoints int
}
