package favorite

import "time"

// Favorite marks a match a user wants to follow. At most one row
// exists per (user, match) pair.
type Favorite struct {
	UserID    string
	MatchID   string
	CreatedAt time.Time
}
