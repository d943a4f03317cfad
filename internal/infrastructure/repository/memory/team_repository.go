package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/team"
)

type TeamRepository struct {
	mu   sync.RWMutex
	byID map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}

	return &TeamRepository{byID: byID}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GroupLabel != out[j].GroupLabel {
			return out[i].GroupLabel < out[j].GroupLabel
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[teamID]
	return item, ok, nil
}

func (r *TeamRepository) UpsertTeams(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		teamID := strings.TrimSpace(item.ID)
		if teamID == "" {
			continue
		}
		r.byID[teamID] = item
	}

	return nil
}
