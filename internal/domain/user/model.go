package user

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is a registered player. TotalPoints is a derived cache: it is
// recomputed from scratch whenever a match result is finalized and is
// only ever written together with that result.
type User struct {
	ID          string
	Email       string
	Name        string
	PictureURL  string
	Role        string
	GroupID     *string
	TotalPoints int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
