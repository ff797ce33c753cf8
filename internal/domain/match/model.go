package match

import (
	"fmt"
	"time"
)

const (
	// StatusScheduled marks a fixture still expected to be played as listed.
	StatusScheduled = "scheduled"
	// StatusPostponed marks a fixture whose listed kickoff was struck through
	// on the source page.
	StatusPostponed = "postponed"
)

// Result is one completed match with a final score.
type Result struct {
	League    string
	Season    string
	Date      time.Time
	Time      string
	Home      string
	Away      string
	HomeScore int
	AwayScore int
}

func (r Result) Validate() error {
	if r.Home == "" || r.Away == "" {
		return fmt.Errorf("result requires both team names")
	}
	if r.Home == r.Away {
		return fmt.Errorf("result home and away teams must differ: %q", r.Home)
	}
	if r.HomeScore < 0 || r.AwayScore < 0 {
		return fmt.Errorf("result scores cannot be negative")
	}

	return nil
}

// Fixture is a scheduled match that has not been played yet. It carries a
// status instead of scores.
type Fixture struct {
	League string
	Season string
	Date   time.Time
	Time   string
	Home   string
	Away   string
	Status string
}

func (f Fixture) Validate() error {
	if f.Home == "" || f.Away == "" {
		return fmt.Errorf("fixture requires both team names")
	}
	if f.Home == f.Away {
		return fmt.Errorf("fixture home and away teams must differ: %q", f.Home)
	}
	if f.Status != StatusScheduled && f.Status != StatusPostponed {
		return fmt.Errorf("unknown fixture status %q", f.Status)
	}

	return nil
}
