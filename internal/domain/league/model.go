package league

import "fmt"

// League is one scraped competition within a single season scope.
type League struct {
	ID     int64
	Name   string
	Season string
}

func (l League) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Season == "" {
		return fmt.Errorf("league season is required")
	}

	return nil
}
