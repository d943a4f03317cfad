package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/team"
)

// ExternalTeam is a national team row as the schedule provider ships it.
type ExternalTeam struct {
	ID         string
	Name       string
	FIFACode   string
	FlagURL    string
	GroupLabel string
}

// ExternalMatch is a scheduled match row as the schedule provider ships it.
type ExternalMatch struct {
	ID         string
	HomeTeamID string
	AwayTeamID string
	KickoffAt  time.Time
	City       string
	Stadium    string
	Phase      string
	GroupLabel string
}

// ExternalSchedule bundles one full tournament schedule snapshot.
type ExternalSchedule struct {
	Teams   []ExternalTeam
	Matches []ExternalMatch
}

// ScheduleFeed fetches the tournament schedule from the provider.
type ScheduleFeed interface {
	FetchSchedule(ctx context.Context) (ExternalSchedule, error)
}

type ImportResult struct {
	TeamCount   int      `json:"team_count"`
	MatchCount  int      `json:"match_count"`
	PhaseCount  int      `json:"phase_count"`
	WorkerCount int      `json:"worker_count"`
	Phases      []string `json:"phases"`
}

const defaultImportMaxWorkers = 4

// ImportService pulls the official schedule and loads it into local
// storage. Imports only touch schedule fields; scores already recorded
// on a match survive a re-import.
type ImportService struct {
	feed       ScheduleFeed
	teamRepo   team.Repository
	matchRepo  match.Repository
	maxWorkers int
}

func NewImportService(feed ScheduleFeed, teamRepo team.Repository, matchRepo match.Repository, maxWorkers int) *ImportService {
	if maxWorkers <= 0 {
		maxWorkers = defaultImportMaxWorkers
	}
	return &ImportService{
		feed:       feed,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		maxWorkers: maxWorkers,
	}
}

// ImportSchedule fetches the provider snapshot, upserts the team
// catalog, and then upserts matches phase by phase on a worker pool.
func (s *ImportService) ImportSchedule(ctx context.Context) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportSchedule")
	defer span.End()

	if s.feed == nil {
		return ImportResult{}, fmt.Errorf("%w: schedule feed is not configured", ErrDependencyUnavailable)
	}

	schedule, err := s.feed.FetchSchedule(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetch schedule: %w", err)
	}

	teams, err := convertExternalTeams(schedule.Teams)
	if err != nil {
		return ImportResult{}, err
	}
	matchesByPhase, matchCount, err := convertExternalMatches(schedule.Matches, teams)
	if err != nil {
		return ImportResult{}, err
	}

	if err := s.teamRepo.UpsertTeams(ctx, teams); err != nil {
		return ImportResult{}, fmt.Errorf("upsert teams: %w", err)
	}

	phases := make([]string, 0, len(matchesByPhase))
	for phase := range matchesByPhase {
		phases = append(phases, phase)
	}
	sort.Strings(phases)

	workerCount := s.maxWorkers
	if workerCount > len(phases) {
		workerCount = len(phases)
	}

	result := ImportResult{
		TeamCount:   len(teams),
		MatchCount:  matchCount,
		PhaseCount:  len(phases),
		WorkerCount: workerCount,
		Phases:      phases,
	}
	if len(phases) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var failedCount atomic.Int32
	var firstErr atomic.Value

	var workers sync.WaitGroup
	for _, phase := range phases {
		phase := phase
		batch := matchesByPhase[phase]
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if upsertErr := s.matchRepo.UpsertSchedule(ctx, batch); upsertErr != nil {
				failedCount.Add(1)
				firstErr.CompareAndSwap(nil, fmt.Errorf("upsert %s schedule: %w", phase, upsertErr))
			}
		}); err != nil {
			workers.Done()
			return ImportResult{}, fmt.Errorf("submit phase to worker pool: %w", err)
		}
	}
	workers.Wait()

	if failedCount.Load() > 0 {
		err, _ := firstErr.Load().(error)
		return ImportResult{}, err
	}
	return result, nil
}

func convertExternalTeams(items []ExternalTeam) ([]team.Team, error) {
	teams := make([]team.Team, 0, len(items))
	for _, item := range items {
		converted := team.Team{
			ID:         strings.TrimSpace(item.ID),
			Name:       strings.TrimSpace(item.Name),
			FIFACode:   strings.ToUpper(strings.TrimSpace(item.FIFACode)),
			FlagURL:    strings.TrimSpace(item.FlagURL),
			GroupLabel: strings.ToUpper(strings.TrimSpace(item.GroupLabel)),
		}
		if err := converted.Validate(); err != nil {
			return nil, fmt.Errorf("%w: feed team %q: %v", ErrInvalidInput, item.ID, err)
		}
		teams = append(teams, converted)
	}
	return teams, nil
}

func convertExternalMatches(items []ExternalMatch, teams []team.Team) (map[string][]match.Match, int, error) {
	knownTeams := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		knownTeams[t.ID] = struct{}{}
	}

	byPhase := make(map[string][]match.Match)
	count := 0
	for _, item := range items {
		matchID := strings.TrimSpace(item.ID)
		if matchID == "" {
			return nil, 0, fmt.Errorf("%w: feed match without id", ErrInvalidInput)
		}

		phase := match.NormalizePhase(item.Phase)
		if !match.IsKnownPhase(phase) {
			return nil, 0, fmt.Errorf("%w: feed match %s has unknown phase %q", ErrInvalidInput, matchID, item.Phase)
		}

		homeTeamID := strings.TrimSpace(item.HomeTeamID)
		awayTeamID := strings.TrimSpace(item.AwayTeamID)
		for _, teamID := range []string{homeTeamID, awayTeamID} {
			// Knockout slots are often unassigned until the bracket resolves.
			if teamID == "" && phase != match.PhaseGroup {
				continue
			}
			if _, ok := knownTeams[teamID]; !ok {
				return nil, 0, fmt.Errorf("%w: feed match %s references unknown team %q", ErrInvalidInput, matchID, teamID)
			}
		}

		if item.KickoffAt.IsZero() {
			return nil, 0, fmt.Errorf("%w: feed match %s has no kickoff time", ErrInvalidInput, matchID)
		}

		converted := match.Match{
			ID:         matchID,
			HomeTeamID: homeTeamID,
			AwayTeamID: awayTeamID,
			KickoffAt:  item.KickoffAt.UTC(),
			City:       strings.TrimSpace(item.City),
			Stadium:    strings.TrimSpace(item.Stadium),
			Phase:      phase,
		}
		if label := strings.ToUpper(strings.TrimSpace(item.GroupLabel)); label != "" {
			converted.GroupLabel = &label
		}

		byPhase[phase] = append(byPhase[phase], converted)
		count++
	}
	return byPhase, count, nil
}
