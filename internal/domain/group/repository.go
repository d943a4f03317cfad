package group

import "context"

// Repository exposes group storage.
type Repository interface {
	Create(ctx context.Context, item Group) error
	GetByID(ctx context.Context, groupID string) (Group, bool, error)
	GetByName(ctx context.Context, name string) (Group, bool, error)
}
