package memory

import (
	"context"
	"sync"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/group"
)

type GroupRepository struct {
	mu   sync.RWMutex
	byID map[string]group.Group
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{byID: make(map[string]group.Group)}
}

func (r *GroupRepository) Create(_ context.Context, item group.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.byID[item.ID] = item

	return nil
}

func (r *GroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[groupID]
	return item, ok, nil
}

func (r *GroupRepository) GetByName(_ context.Context, name string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byID {
		if item.Name == name {
			return item, true, nil
		}
	}

	return group.Group{}, false, nil
}
