package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/favorite"
)

type FavoriteRepository struct {
	mu    sync.RWMutex
	items map[string]favorite.Favorite
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{items: make(map[string]favorite.Favorite)}
}

func (r *FavoriteRepository) Add(_ context.Context, item favorite.Favorite) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(item.UserID, item.MatchID)
	if _, ok := r.items[key]; ok {
		return false, nil
	}
	item.CreatedAt = time.Now().UTC()
	r.items[key] = item

	return true, nil
}

func (r *FavoriteRepository) Remove(_ context.Context, userID, matchID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(userID, matchID)
	if _, ok := r.items[key]; !ok {
		return false, nil
	}
	delete(r.items, key)

	return true, nil
}

func (r *FavoriteRepository) Exists(_ context.Context, userID, matchID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[pairKey(userID, matchID)]
	return ok, nil
}

func (r *FavoriteRepository) ListByUser(_ context.Context, userID string) ([]favorite.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]favorite.Favorite, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })

	return out, nil
}
