package match

import (
	"strings"
	"time"
)

const (
	PhaseGroup        = "GROUP"
	PhaseRoundOf32    = "ROUND_32"
	PhaseRoundOf16    = "ROUND_16"
	PhaseQuarterFinal = "QUARTER_FINAL"
	PhaseSemiFinal    = "SEMI_FINAL"
	PhaseThirdPlace   = "THIRD_PLACE"
	PhaseFinal        = "FINAL"
)

var knownPhases = map[string]struct{}{
	PhaseGroup:        {},
	PhaseRoundOf32:    {},
	PhaseRoundOf16:    {},
	PhaseQuarterFinal: {},
	PhaseSemiFinal:    {},
	PhaseThirdPlace:   {},
	PhaseFinal:        {},
}

// Outcome is the result of a match from the home side's perspective.
type Outcome string

const (
	OutcomeHomeWin Outcome = "HOME_WIN"
	OutcomeDraw    Outcome = "DRAW"
	OutcomeAwayWin Outcome = "AWAY_WIN"
)

// Classify maps a final score pair to its outcome.
func Classify(homeScore, awayScore int) Outcome {
	switch {
	case homeScore > awayScore:
		return OutcomeHomeWin
	case homeScore < awayScore:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}

func IsKnownOutcome(value Outcome) bool {
	switch value {
	case OutcomeHomeWin, OutcomeDraw, OutcomeAwayWin:
		return true
	default:
		return false
	}
}

func NormalizePhase(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsKnownPhase(value string) bool {
	_, ok := knownPhases[NormalizePhase(value)]
	return ok
}

// Match represents one tournament fixture. Scores stay nil until the
// result is finalized; they are always set together.
type Match struct {
	ID         string
	HomeTeamID string
	AwayTeamID string
	KickoffAt  time.Time
	City       string
	Stadium    string
	Phase      string
	GroupLabel *string
	HomeScore  *int
	AwayScore  *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (m Match) Finalized() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Result returns the classified outcome of a finalized match.
func (m Match) Result() (Outcome, bool) {
	if !m.Finalized() {
		return "", false
	}
	return Classify(*m.HomeScore, *m.AwayScore), true
}
