package preferences

import "context"

// Repository exposes user preference storage.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (Preferences, bool, error)
	Upsert(ctx context.Context, item Preferences) error
}
