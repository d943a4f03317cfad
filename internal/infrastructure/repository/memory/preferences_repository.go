package memory

import (
	"context"
	"sync"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/preferences"
)

type PreferencesRepository struct {
	mu     sync.RWMutex
	byUser map[string]preferences.Preferences
}

func NewPreferencesRepository() *PreferencesRepository {
	return &PreferencesRepository{byUser: make(map[string]preferences.Preferences)}
}

func (r *PreferencesRepository) GetByUser(_ context.Context, userID string) (preferences.Preferences, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byUser[userID]
	return item, ok, nil
}

func (r *PreferencesRepository) Upsert(_ context.Context, item preferences.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.UpdatedAt = time.Now().UTC()
	r.byUser[item.UserID] = item

	return nil
}
