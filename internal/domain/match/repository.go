package match

import "context"

// ResultRepository stores completed matches keyed by (date, time, home, away).
type ResultRepository interface {
	UpsertMany(ctx context.Context, leagueID int64, teamIDByName map[string]int64, results []Result) error
	ListByLeague(ctx context.Context, leagueName string) ([]Result, error)
}

// FixtureRepository stores scheduled matches keyed by (date, time, home, away).
type FixtureRepository interface {
	UpsertMany(ctx context.Context, leagueID int64, teamIDByName map[string]int64, fixtures []Fixture) error
	ListByLeague(ctx context.Context, leagueName string) ([]Fixture, error)
}
