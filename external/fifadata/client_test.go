package fifadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/platform/resilience"
	"github.com/TobiasMoreno/wc-2026-be/internal/usecase"
)

const scheduleFixture = `{
	"teams": [
		{"id": "arg", "name": "Argentina", "fifaCode": "ARG", "flagUrl": "https://flags.example.com/arg.svg", "groupLabel": "J"},
		{"id": "mex", "name": "México", "fifaCode": "MEX", "groupLabel": "A"}
	],
	"matches": [
		{"id": "m-001", "homeTeamId": "mex", "awayTeamId": "rsa", "kickoffAt": "2026-06-11T19:00:00Z", "city": "Ciudad de México", "stadium": "Estadio Azteca", "phase": "GROUP", "groupLabel": "A"},
		{"id": "m-104", "kickoffAt": "2026-07-19T19:00:00Z", "city": "Nueva York", "stadium": "MetLife Stadium", "phase": "FINAL"}
	]
}`

func TestClient_FetchSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/matches" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scheduleFixture))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 2 * time.Second})

	schedule, err := client.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("fetch schedule: %v", err)
	}

	if len(schedule.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(schedule.Teams))
	}
	if schedule.Teams[0].ID != "arg" || schedule.Teams[0].FIFACode != "ARG" {
		t.Fatalf("unexpected first team: %+v", schedule.Teams[0])
	}

	if len(schedule.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(schedule.Matches))
	}
	first := schedule.Matches[0]
	if first.ID != "m-001" || first.HomeTeamID != "mex" || first.Phase != "GROUP" {
		t.Fatalf("unexpected first match: %+v", first)
	}
	want := time.Date(2026, time.June, 11, 19, 0, 0, 0, time.UTC)
	if !first.KickoffAt.Equal(want) {
		t.Fatalf("unexpected kickoff: %s", first.KickoffAt)
	}
	final := schedule.Matches[1]
	if final.HomeTeamID != "" || final.AwayTeamID != "" {
		t.Fatalf("expected unassigned knockout slots, got %+v", final)
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scheduleFixture))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 2 * time.Second, MaxRetries: 2})

	if _, err := client.FetchSchedule(context.Background()); err != nil {
		t.Fatalf("fetch schedule after retry: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}

func TestClient_NonRetryableStatusFailsImmediately(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 2 * time.Second, MaxRetries: 3})

	if _, err := client.FetchSchedule(context.Background()); err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single call, got %d", calls.Load())
	}
}

func TestClient_CircuitBreakerOpensAfterFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	if _, err := client.FetchSchedule(context.Background()); err == nil {
		t.Fatalf("expected error from failing feed")
	}

	_, err := client.FetchSchedule(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable once circuit is open, got %v", err)
	}
}

func TestParseFeedTime(t *testing.T) {
	got, err := parseFeedTime("2026-06-11 19:00:00")
	if err != nil {
		t.Fatalf("parse feed time: %v", err)
	}
	want := time.Date(2026, time.June, 11, 19, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time: %s", got)
	}

	if _, err := parseFeedTime("not-a-time"); err == nil {
		t.Fatalf("expected error for malformed timestamp")
	}
}
