package memory

import (
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/team"
)

// Seed data covers a representative slice of the 2026 schedule, enough
// to run the API without a database or a schedule import.

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "mex", Name: "México", FIFACode: "MEX", GroupLabel: "A"},
		{ID: "rsa", Name: "Sudáfrica", FIFACode: "RSA", GroupLabel: "A"},
		{ID: "kor", Name: "Corea del Sur", FIFACode: "KOR", GroupLabel: "A"},
		{ID: "can", Name: "Canadá", FIFACode: "CAN", GroupLabel: "B"},
		{ID: "qat", Name: "Qatar", FIFACode: "QAT", GroupLabel: "B"},
		{ID: "sui", Name: "Suiza", FIFACode: "SUI", GroupLabel: "B"},
		{ID: "usa", Name: "Estados Unidos", FIFACode: "USA", GroupLabel: "D"},
		{ID: "par", Name: "Paraguay", FIFACode: "PAR", GroupLabel: "D"},
		{ID: "arg", Name: "Argentina", FIFACode: "ARG", GroupLabel: "J"},
		{ID: "alg", Name: "Argelia", FIFACode: "ALG", GroupLabel: "J"},
		{ID: "aut", Name: "Austria", FIFACode: "AUT", GroupLabel: "J"},
		{ID: "jor", Name: "Jordania", FIFACode: "JOR", GroupLabel: "J"},
		{ID: "bra", Name: "Brasil", FIFACode: "BRA", GroupLabel: "C"},
		{ID: "mar", Name: "Marruecos", FIFACode: "MAR", GroupLabel: "C"},
		{ID: "fra", Name: "Francia", FIFACode: "FRA", GroupLabel: "I"},
		{ID: "eng", Name: "Inglaterra", FIFACode: "ENG", GroupLabel: "E"},
	}
}

func SeedMatches() []match.Match {
	groupA := "A"
	groupB := "B"
	groupJ := "J"

	return []match.Match{
		{
			ID:         "m-001",
			HomeTeamID: "mex",
			AwayTeamID: "rsa",
			KickoffAt:  time.Date(2026, 6, 11, 19, 0, 0, 0, time.UTC),
			City:       "Ciudad de México",
			Stadium:    "Estadio Azteca",
			Phase:      match.PhaseGroup,
			GroupLabel: &groupA,
		},
		{
			ID:         "m-002",
			HomeTeamID: "can",
			AwayTeamID: "qat",
			KickoffAt:  time.Date(2026, 6, 12, 1, 0, 0, 0, time.UTC),
			City:       "Toronto",
			Stadium:    "BMO Field",
			Phase:      match.PhaseGroup,
			GroupLabel: &groupB,
		},
		{
			ID:         "m-024",
			HomeTeamID: "arg",
			AwayTeamID: "alg",
			KickoffAt:  time.Date(2026, 6, 16, 22, 0, 0, 0, time.UTC),
			City:       "Kansas City",
			Stadium:    "Arrowhead Stadium",
			Phase:      match.PhaseGroup,
			GroupLabel: &groupJ,
		},
		{
			ID:         "m-037",
			HomeTeamID: "arg",
			AwayTeamID: "aut",
			KickoffAt:  time.Date(2026, 6, 22, 22, 0, 0, 0, time.UTC),
			City:       "Dallas",
			Stadium:    "AT&T Stadium",
			Phase:      match.PhaseGroup,
			GroupLabel: &groupJ,
		},
		{
			ID:        "m-073",
			KickoffAt: time.Date(2026, 6, 28, 20, 0, 0, 0, time.UTC),
			City:      "Los Ángeles",
			Stadium:   "SoFi Stadium",
			Phase:     match.PhaseRoundOf32,
		},
		{
			ID:        "m-104",
			KickoffAt: time.Date(2026, 7, 19, 19, 0, 0, 0, time.UTC),
			City:      "Nueva York",
			Stadium:   "MetLife Stadium",
			Phase:     match.PhaseFinal,
		},
	}
}
