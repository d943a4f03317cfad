package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
)

type UserRepository struct {
	mu   sync.RWMutex
	byID map[string]user.User
}

func NewUserRepository(users []user.User) *UserRepository {
	byID := make(map[string]user.User, len(users))
	for _, item := range users {
		byID[item.ID] = item
	}

	return &UserRepository{byID: byID}
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[userID]
	return item, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byID {
		if item.Email == email {
			return item, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) Upsert(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := r.byID[item.ID]; ok {
		item.GroupID = existing.GroupID
		item.TotalPoints = existing.TotalPoints
		item.CreatedAt = existing.CreatedAt
	} else {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	r.byID[item.ID] = item

	return nil
}

func (r *UserRepository) AssignGroup(_ context.Context, userID, groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[userID]
	if !ok {
		return fmt.Errorf("assign group: user %s not found", userID)
	}
	item.GroupID = &groupID
	item.UpdatedAt = time.Now().UTC()
	r.byID[userID] = item

	return nil
}

func (r *UserRepository) ListByGroup(_ context.Context, groupID string) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0)
	for _, item := range r.byID {
		if item.GroupID != nil && *item.GroupID == groupID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *UserRepository) setTotalPoints(_ context.Context, totalsByUserID map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for userID, totalPoints := range totalsByUserID {
		item, ok := r.byID[userID]
		if !ok {
			return fmt.Errorf("set total points: user %s not found", userID)
		}
		item.TotalPoints = totalPoints
		item.UpdatedAt = now
		r.byID[userID] = item
	}

	return nil
}
