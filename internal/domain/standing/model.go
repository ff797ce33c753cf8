package standing

import "fmt"

// Standing is one league-table row for a team. A fresh set is derived on every
// scrape run from that run's results only, never merged with prior rows.
type Standing struct {
	League         string
	Team           string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Rank           int
}

func (s Standing) Validate() error {
	if s.Team == "" {
		return fmt.Errorf("standing team is required")
	}
	if s.Played < 0 || s.Won < 0 || s.Drawn < 0 || s.Lost < 0 {
		return fmt.Errorf("standing counters cannot be negative: team=%s", s.Team)
	}
	if s.GoalsFor < 0 || s.GoalsAgainst < 0 {
		return fmt.Errorf("standing goal counters cannot be negative: team=%s", s.Team)
	}
	if s.Played != s.Won+s.Drawn+s.Lost {
		return fmt.Errorf("standing played != won+drawn+lost: team=%s", s.Team)
	}
	if s.GoalDifference != s.GoalsFor-s.GoalsAgainst {
		return fmt.Errorf("standing goal difference mismatch: team=%s", s.Team)
	}
	if s.Points != 3*s.Won+s.Drawn {
		return fmt.Errorf("standing points != 3*won+drawn: team=%s", s.Team)
	}

	return nil
}
