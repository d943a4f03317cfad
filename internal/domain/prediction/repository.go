package prediction

import "context"

// Repository exposes outcome prediction storage. Upsert keeps at most
// one row per (user, match) pair.
type Repository interface {
	Upsert(ctx context.Context, item Prediction) error
	Delete(ctx context.Context, userID, matchID string) (bool, error)
	GetByUserAndMatch(ctx context.Context, userID, matchID string) (Prediction, bool, error)
	ListByUser(ctx context.Context, userID string) ([]Prediction, error)
	ListByMatch(ctx context.Context, matchID string) ([]Prediction, error)
}

// BracketRepository stores knockout winner picks, one per (user, match).
type BracketRepository interface {
	Upsert(ctx context.Context, item BracketPrediction) error
	ListByUser(ctx context.Context, userID string) ([]BracketPrediction, error)
}
