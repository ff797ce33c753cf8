package team

import "fmt"

// Team is a club that appeared on a league's results or fixtures page.
type Team struct {
	ID       int64
	LeagueID int64
	Name     string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.LeagueID <= 0 {
		return fmt.Errorf("team league id is required")
	}

	return nil
}
