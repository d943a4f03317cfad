package prediction

import (
	"testing"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
)

func TestAward(t *testing.T) {
	t.Parallel()

	outcomes := []match.Outcome{match.OutcomeHomeWin, match.OutcomeDraw, match.OutcomeAwayWin}
	for _, predicted := range outcomes {
		for _, actual := range outcomes {
			want := 0
			if predicted == actual {
				want = 1
			}
			if got := Award(predicted, actual); got != want {
				t.Fatalf("Award(%s, %s) = %d, want %d", predicted, actual, got, want)
			}
		}
	}
}

func TestCanWrite(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, time.June, 11, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "well before kickoff", now: kickoff.Add(-48 * time.Hour), want: true},
		{name: "61 minutes before", now: kickoff.Add(-61 * time.Minute), want: true},
		{name: "exactly one hour before", now: kickoff.Add(-time.Hour), want: true},
		{name: "59m59s before", now: kickoff.Add(-time.Hour + time.Second), want: false},
		{name: "59 minutes before", now: kickoff.Add(-59 * time.Minute), want: false},
		{name: "at kickoff", now: kickoff, want: false},
		{name: "after kickoff", now: kickoff.Add(10 * time.Minute), want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := CanWrite(tc.now, kickoff); got != tc.want {
				t.Fatalf("CanWrite(%s) = %t, want %t", tc.name, got, tc.want)
			}
		})
	}
}
