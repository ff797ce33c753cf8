package postgres

import "time"

type resultRowModel struct {
	LeagueName string    `db:"league_name"`
	Season     string    `db:"season"`
	MatchDate  time.Time `db:"match_date"`
	Kickoff    string    `db:"kickoff"`
	HomeName   string    `db:"home_name"`
	AwayName   string    `db:"away_name"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
}

type fixtureRowModel struct {
	LeagueName string    `db:"league_name"`
	Season     string    `db:"season"`
	MatchDate  time.Time `db:"match_date"`
	Kickoff    string    `db:"kickoff"`
	HomeName   string    `db:"home_name"`
	AwayName   string    `db:"away_name"`
	Status     string    `db:"status"`
}
