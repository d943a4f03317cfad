package match

import (
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	for home := 0; home <= 5; home++ {
		for away := 0; away <= 5; away++ {
			home, away := home, away
			t.Run(fmt.Sprintf("%d-%d", home, away), func(t *testing.T) {
				t.Parallel()

				got := Classify(home, away)
				switch {
				case home > away && got != OutcomeHomeWin:
					t.Fatalf("Classify(%d, %d) = %s, want %s", home, away, got, OutcomeHomeWin)
				case home < away && got != OutcomeAwayWin:
					t.Fatalf("Classify(%d, %d) = %s, want %s", home, away, got, OutcomeAwayWin)
				case home == away && got != OutcomeDraw:
					t.Fatalf("Classify(%d, %d) = %s, want %s", home, away, got, OutcomeDraw)
				}
			})
		}
	}
}

func TestIsKnownOutcome(t *testing.T) {
	t.Parallel()

	for _, outcome := range []Outcome{OutcomeHomeWin, OutcomeDraw, OutcomeAwayWin} {
		if !IsKnownOutcome(outcome) {
			t.Fatalf("expected %s to be known", outcome)
		}
	}
	if IsKnownOutcome("HOME_LOSS") {
		t.Fatal("expected HOME_LOSS to be unknown")
	}
	if IsKnownOutcome("") {
		t.Fatal("expected empty outcome to be unknown")
	}
}

func TestMatchFinalized(t *testing.T) {
	t.Parallel()

	home := 2
	away := 2

	if (Match{}).Finalized() {
		t.Fatal("match without scores must not be finalized")
	}
	if (Match{HomeScore: &home}).Finalized() {
		t.Fatal("match with only home score must not be finalized")
	}
	if (Match{AwayScore: &away}).Finalized() {
		t.Fatal("match with only away score must not be finalized")
	}
	if !(Match{HomeScore: &home, AwayScore: &away}).Finalized() {
		t.Fatal("match with both scores must be finalized")
	}
}

func TestMatchResult(t *testing.T) {
	t.Parallel()

	if _, ok := (Match{}).Result(); ok {
		t.Fatal("result of a pending match must not exist")
	}

	home := 3
	away := 1
	got, ok := (Match{HomeScore: &home, AwayScore: &away}).Result()
	if !ok {
		t.Fatal("result of a finalized match must exist")
	}
	if got != OutcomeHomeWin {
		t.Fatalf("Result() = %s, want %s", got, OutcomeHomeWin)
	}
}

func TestIsKnownPhase(t *testing.T) {
	t.Parallel()

	for _, phase := range []string{PhaseGroup, PhaseRoundOf32, PhaseRoundOf16, PhaseQuarterFinal, PhaseSemiFinal, PhaseThirdPlace, PhaseFinal} {
		if !IsKnownPhase(phase) {
			t.Fatalf("expected %s to be a known phase", phase)
		}
	}
	if !IsKnownPhase(" group ") {
		t.Fatal("phase matching must be case and whitespace insensitive")
	}
	if IsKnownPhase("PLAYOFF") {
		t.Fatal("expected PLAYOFF to be unknown")
	}
}
