package postgres

type standingInsertModel struct {
	LeagueID       int64 `db:"league_id"`
	TeamID         int64 `db:"team_id"`
	Rank           int   `db:"rank"`
	Played         int   `db:"played"`
	Won            int   `db:"won"`
	Drawn          int   `db:"drawn"`
	Lost           int   `db:"lost"`
	GoalsFor       int   `db:"goals_for"`
	GoalsAgainst   int   `db:"goals_against"`
	GoalDifference int   `db:"goal_difference"`
	Points         int   `db:"points"`
}

type standingRowModel struct {
	LeagueName     string `db:"league_name"`
	TeamName       string `db:"team_name"`
	Rank           int    `db:"rank"`
	Played         int    `db:"played"`
	Won            int    `db:"won"`
	Drawn          int    `db:"drawn"`
	Lost           int    `db:"lost"`
	GoalsFor       int    `db:"goals_for"`
	GoalsAgainst   int    `db:"goals_against"`
	GoalDifference int    `db:"goal_difference"`
	Points         int    `db:"points"`
}
