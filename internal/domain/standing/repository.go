package standing

import "context"

type Repository interface {
	// ReplaceByLeague swaps the league's table for the freshly derived rows.
	ReplaceByLeague(ctx context.Context, leagueID int64, teamIDByName map[string]int64, standings []Standing) error
	ListByLeague(ctx context.Context, leagueName string) ([]Standing, error)
}
