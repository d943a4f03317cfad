package favorite

import "context"

// Repository exposes favorite match storage. Add reports false when
// the pair already exists; Remove reports false when it does not.
type Repository interface {
	Add(ctx context.Context, item Favorite) (bool, error)
	Remove(ctx context.Context, userID, matchID string) (bool, error)
	Exists(ctx context.Context, userID, matchID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
}
