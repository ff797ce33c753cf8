package team

import "context"

type Repository interface {
	// UpsertMany inserts the teams that are new for their league and returns
	// the stored rows for every requested name, keyed by team name.
	UpsertMany(ctx context.Context, leagueID int64, names []string) (map[string]Team, error)
	ListByLeague(ctx context.Context, leagueName string) ([]Team, error)
}
