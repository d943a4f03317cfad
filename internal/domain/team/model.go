package team

import "fmt"

// Team is one national side in the tournament catalog.
type Team struct {
	ID         string
	Name       string
	FIFACode   string
	FlagURL    string
	GroupLabel string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
