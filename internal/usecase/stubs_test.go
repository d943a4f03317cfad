package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/favorite"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/group"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/preferences"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/team"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
)

type appliedFinalResult struct {
	matchID   string
	homeScore int
	awayScore int
	totals    map[string]int
}

type stubMatchRepository struct {
	byID     map[string]match.Match
	applied  []appliedFinalResult
	applyErr error
	upserted [][]match.Match
}

func (s *stubMatchRepository) List(_ context.Context) ([]match.Match, error) {
	out := make([]match.Match, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubMatchRepository) ListByPhase(_ context.Context, phase string) ([]match.Match, error) {
	out := make([]match.Match, 0)
	for _, item := range s.byID {
		if item.Phase == phase {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubMatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	item, ok := s.byID[matchID]
	return item, ok, nil
}

func (s *stubMatchRepository) GetByIDs(_ context.Context, matchIDs []string) ([]match.Match, error) {
	out := make([]match.Match, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		if item, ok := s.byID[matchID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubMatchRepository) UpsertSchedule(_ context.Context, matches []match.Match) error {
	s.upserted = append(s.upserted, matches)
	if s.byID == nil {
		s.byID = make(map[string]match.Match, len(matches))
	}
	for _, item := range matches {
		s.byID[item.ID] = item
	}
	return nil
}

func (s *stubMatchRepository) ApplyFinalResult(_ context.Context, matchID string, homeScore, awayScore int, totalsByUserID map[string]int) error {
	if s.applyErr != nil {
		return s.applyErr
	}
	item, ok := s.byID[matchID]
	if !ok {
		return errors.New("match not found")
	}
	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	s.byID[matchID] = item
	s.applied = append(s.applied, appliedFinalResult{
		matchID:   matchID,
		homeScore: homeScore,
		awayScore: awayScore,
		totals:    totalsByUserID,
	})
	return nil
}

func predictionKey(userID, matchID string) string {
	return userID + "|" + matchID
}

type stubPredictionRepository struct {
	items map[string]prediction.Prediction
}

func newStubPredictionRepository(items ...prediction.Prediction) *stubPredictionRepository {
	s := &stubPredictionRepository{items: make(map[string]prediction.Prediction, len(items))}
	for _, item := range items {
		s.items[predictionKey(item.UserID, item.MatchID)] = item
	}
	return s
}

func (s *stubPredictionRepository) Upsert(_ context.Context, item prediction.Prediction) error {
	s.items[predictionKey(item.UserID, item.MatchID)] = item
	return nil
}

func (s *stubPredictionRepository) Delete(_ context.Context, userID, matchID string) (bool, error) {
	key := predictionKey(userID, matchID)
	if _, ok := s.items[key]; !ok {
		return false, nil
	}
	delete(s.items, key)
	return true, nil
}

func (s *stubPredictionRepository) GetByUserAndMatch(_ context.Context, userID, matchID string) (prediction.Prediction, bool, error) {
	item, ok := s.items[predictionKey(userID, matchID)]
	return item, ok, nil
}

func (s *stubPredictionRepository) ListByUser(_ context.Context, userID string) ([]prediction.Prediction, error) {
	out := make([]prediction.Prediction, 0)
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubPredictionRepository) ListByMatch(_ context.Context, matchID string) ([]prediction.Prediction, error) {
	out := make([]prediction.Prediction, 0)
	for _, item := range s.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubBracketRepository struct {
	items map[string]prediction.BracketPrediction
}

func (s *stubBracketRepository) Upsert(_ context.Context, item prediction.BracketPrediction) error {
	if s.items == nil {
		s.items = make(map[string]prediction.BracketPrediction)
	}
	s.items[predictionKey(item.UserID, item.MatchID)] = item
	return nil
}

func (s *stubBracketRepository) ListByUser(_ context.Context, userID string) ([]prediction.BracketPrediction, error) {
	out := make([]prediction.BracketPrediction, 0)
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out, nil
}

type stubUserRepository struct {
	byID map[string]user.User
}

func (s *stubUserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	item, ok := s.byID[userID]
	return item, ok, nil
}

func (s *stubUserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	for _, item := range s.byID {
		if item.Email == email {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (s *stubUserRepository) Upsert(_ context.Context, item user.User) error {
	if s.byID == nil {
		s.byID = make(map[string]user.User)
	}
	if existing, ok := s.byID[item.ID]; ok {
		item.GroupID = existing.GroupID
		item.TotalPoints = existing.TotalPoints
	}
	s.byID[item.ID] = item
	return nil
}

func (s *stubUserRepository) AssignGroup(_ context.Context, userID, groupID string) error {
	item, ok := s.byID[userID]
	if !ok {
		return errors.New("user not found")
	}
	item.GroupID = &groupID
	s.byID[userID] = item
	return nil
}

func (s *stubUserRepository) ListByGroup(_ context.Context, groupID string) ([]user.User, error) {
	out := make([]user.User, 0)
	for _, item := range s.byID {
		if item.GroupID != nil && *item.GroupID == groupID {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubGroupRepository struct {
	byID map[string]group.Group
}

func (s *stubGroupRepository) Create(_ context.Context, item group.Group) error {
	if s.byID == nil {
		s.byID = make(map[string]group.Group)
	}
	s.byID[item.ID] = item
	return nil
}

func (s *stubGroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	item, ok := s.byID[groupID]
	return item, ok, nil
}

func (s *stubGroupRepository) GetByName(_ context.Context, name string) (group.Group, bool, error) {
	for _, item := range s.byID {
		if item.Name == name {
			return item, true, nil
		}
	}
	return group.Group{}, false, nil
}

type stubTeamRepository struct {
	byID map[string]team.Team
}

func (s *stubTeamRepository) List(_ context.Context) ([]team.Team, error) {
	out := make([]team.Team, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	item, ok := s.byID[teamID]
	return item, ok, nil
}

func (s *stubTeamRepository) UpsertTeams(_ context.Context, items []team.Team) error {
	if s.byID == nil {
		s.byID = make(map[string]team.Team, len(items))
	}
	for _, item := range items {
		s.byID[item.ID] = item
	}
	return nil
}

type stubFavoriteRepository struct {
	items map[string]favorite.Favorite
}

func (s *stubFavoriteRepository) Add(_ context.Context, item favorite.Favorite) (bool, error) {
	key := predictionKey(item.UserID, item.MatchID)
	if s.items == nil {
		s.items = make(map[string]favorite.Favorite)
	}
	if _, ok := s.items[key]; ok {
		return false, nil
	}
	s.items[key] = item
	return true, nil
}

func (s *stubFavoriteRepository) Remove(_ context.Context, userID, matchID string) (bool, error) {
	key := predictionKey(userID, matchID)
	if _, ok := s.items[key]; !ok {
		return false, nil
	}
	delete(s.items, key)
	return true, nil
}

func (s *stubFavoriteRepository) Exists(_ context.Context, userID, matchID string) (bool, error) {
	_, ok := s.items[predictionKey(userID, matchID)]
	return ok, nil
}

func (s *stubFavoriteRepository) ListByUser(_ context.Context, userID string) ([]favorite.Favorite, error) {
	out := make([]favorite.Favorite, 0)
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubPreferencesRepository struct {
	byUser map[string]preferences.Preferences
}

func (s *stubPreferencesRepository) GetByUser(_ context.Context, userID string) (preferences.Preferences, bool, error) {
	item, ok := s.byUser[userID]
	return item, ok, nil
}

func (s *stubPreferencesRepository) Upsert(_ context.Context, item preferences.Preferences) error {
	if s.byUser == nil {
		s.byUser = make(map[string]preferences.Preferences)
	}
	s.byUser[item.UserID] = item
	return nil
}

type stubTokenIssuer struct {
	token string
	err   error
}

func (s *stubTokenIssuer) IssueAccessToken(_ user.User) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

type stubScheduleFeed struct {
	schedule ExternalSchedule
	err      error
}

func (s *stubScheduleFeed) FetchSchedule(_ context.Context) (ExternalSchedule, error) {
	if s.err != nil {
		return ExternalSchedule{}, s.err
	}
	return s.schedule, nil
}

type sequenceIDGenerator struct {
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return "id-" + strconv.Itoa(g.next), nil
}
