package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
)

func pairKey(userID, matchID string) string {
	return userID + "|" + matchID
}

type PredictionRepository struct {
	mu    sync.RWMutex
	items map[string]prediction.Prediction
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{items: make(map[string]prediction.Prediction)}
}

func (r *PredictionRepository) Upsert(_ context.Context, item prediction.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(item.UserID, item.MatchID)
	now := time.Now().UTC()
	if existing, ok := r.items[key]; ok {
		item.CreatedAt = existing.CreatedAt
	} else {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	r.items[key] = item

	return nil
}

func (r *PredictionRepository) Delete(_ context.Context, userID, matchID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(userID, matchID)
	if _, ok := r.items[key]; !ok {
		return false, nil
	}
	delete(r.items, key)

	return true, nil
}

func (r *PredictionRepository) GetByUserAndMatch(_ context.Context, userID, matchID string) (prediction.Prediction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[pairKey(userID, matchID)]
	return item, ok, nil
}

func (r *PredictionRepository) ListByUser(_ context.Context, userID string) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })

	return out, nil
}

func (r *PredictionRepository) ListByMatch(_ context.Context, matchID string) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for _, item := range r.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out, nil
}

type BracketRepository struct {
	mu    sync.RWMutex
	items map[string]prediction.BracketPrediction
}

func NewBracketRepository() *BracketRepository {
	return &BracketRepository{items: make(map[string]prediction.BracketPrediction)}
}

func (r *BracketRepository) Upsert(_ context.Context, item prediction.BracketPrediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(item.UserID, item.MatchID)
	now := time.Now().UTC()
	if existing, ok := r.items[key]; ok {
		item.CreatedAt = existing.CreatedAt
	} else {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	r.items[key] = item

	return nil
}

func (r *BracketRepository) ListByUser(_ context.Context, userID string) ([]prediction.BracketPrediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.BracketPrediction, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })

	return out, nil
}
