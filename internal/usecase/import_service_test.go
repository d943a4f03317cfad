package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
)

func TestImportService_ImportSchedule(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, time.June, 11, 19, 0, 0, 0, time.UTC)
	feed := &stubScheduleFeed{schedule: ExternalSchedule{
		Teams: []ExternalTeam{
			{ID: "arg", Name: "Argentina", FIFACode: "arg", GroupLabel: "a"},
			{ID: "mex", Name: "México", FIFACode: "MEX", GroupLabel: "A"},
		},
		Matches: []ExternalMatch{
			{ID: "g-1", HomeTeamID: "mex", AwayTeamID: "arg", KickoffAt: kickoff, City: "Ciudad de México", Stadium: "Estadio Azteca", Phase: "group", GroupLabel: "a"},
			{ID: "f-1", KickoffAt: kickoff.Add(30 * 24 * time.Hour), City: "New York", Stadium: "MetLife Stadium", Phase: "FINAL"},
		},
	}}

	teamRepo := &stubTeamRepository{}
	matchRepo := &stubMatchRepository{}
	service := NewImportService(feed, teamRepo, matchRepo, 4)

	got, err := service.ImportSchedule(context.Background())
	if err != nil {
		t.Fatalf("ImportSchedule error: %v", err)
	}
	if got.TeamCount != 2 || got.MatchCount != 2 || got.PhaseCount != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}

	if stored := teamRepo.byID["arg"]; stored.FIFACode != "ARG" || stored.GroupLabel != "A" {
		t.Fatalf("team fields must be normalized: %+v", stored)
	}
	stored, ok := matchRepo.byID["g-1"]
	if !ok || stored.Phase != match.PhaseGroup || stored.GroupLabel == nil || *stored.GroupLabel != "A" {
		t.Fatalf("unexpected stored match: %+v", stored)
	}
	if final := matchRepo.byID["f-1"]; final.HomeTeamID != "" || final.Phase != match.PhaseFinal {
		t.Fatalf("knockout slots may stay unassigned: %+v", final)
	}
}

func TestImportService_ImportSchedule_RejectsBadFeed(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, time.June, 11, 19, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		schedule ExternalSchedule
	}{
		{
			name: "unknown phase",
			schedule: ExternalSchedule{
				Teams:   []ExternalTeam{{ID: "arg", Name: "Argentina"}},
				Matches: []ExternalMatch{{ID: "m1", HomeTeamID: "arg", AwayTeamID: "arg", KickoffAt: kickoff, Phase: "PLAYOFFS"}},
			},
		},
		{
			name: "unknown team",
			schedule: ExternalSchedule{
				Teams:   []ExternalTeam{{ID: "arg", Name: "Argentina"}},
				Matches: []ExternalMatch{{ID: "m1", HomeTeamID: "arg", AwayTeamID: "zzz", KickoffAt: kickoff, Phase: "GROUP"}},
			},
		},
		{
			name: "missing kickoff",
			schedule: ExternalSchedule{
				Teams:   []ExternalTeam{{ID: "arg", Name: "Argentina"}},
				Matches: []ExternalMatch{{ID: "m1", HomeTeamID: "arg", AwayTeamID: "arg", Phase: "GROUP"}},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := NewImportService(&stubScheduleFeed{schedule: tc.schedule}, &stubTeamRepository{}, &stubMatchRepository{}, 2)
			if _, err := service.ImportSchedule(context.Background()); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestImportService_ImportSchedule_FeedDown(t *testing.T) {
	t.Parallel()

	service := NewImportService(&stubScheduleFeed{err: errors.New("upstream 503")}, &stubTeamRepository{}, &stubMatchRepository{}, 2)
	if _, err := service.ImportSchedule(context.Background()); err == nil {
		t.Fatal("expected feed failure to surface")
	}
}
