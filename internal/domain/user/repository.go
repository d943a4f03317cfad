package user

import "context"

// Repository exposes user account storage. Total points are written by
// the match repository's finalization transaction, not here.
type Repository interface {
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	Upsert(ctx context.Context, item User) error
	AssignGroup(ctx context.Context, userID, groupID string) error
	ListByGroup(ctx context.Context, groupID string) ([]User, error)
}
