package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-standings/internal/domain/match"
	qb "github.com/riskibarqy/football-standings/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// UpsertMany stores completed matches, skipping duplicates on the natural key
// and rows that reference clubs absent from the stored team set.
func (r *ResultRepository) UpsertMany(ctx context.Context, leagueID int64, teamIDByName map[string]int64, results []match.Result) error {
	insert := qb.InsertInto("results").
		Columns("league_id", "match_date", "kickoff", "home_team_id", "away_team_id", "home_score", "away_score")

	rows := 0
	for _, item := range results {
		homeID, homeOK := teamIDByName[item.Home]
		awayID, awayOK := teamIDByName[item.Away]
		if !homeOK || !awayOK {
			continue
		}
		insert.Values(leagueID, item.Date, item.Time, homeID, awayID, item.HomeScore, item.AwayScore)
		rows++
	}
	if rows == 0 {
		return nil
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (league_id, match_date, kickoff, home_team_id, away_team_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert results query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert results: %w", err)
	}
	return nil
}

func (r *ResultRepository) ListByLeague(ctx context.Context, leagueName string) ([]match.Result, error) {
	query, args, err := qb.Select(
		"l.name AS league_name", "l.season",
		"r.match_date", "r.kickoff",
		"h.name AS home_name", "a.name AS away_name",
		"r.home_score", "r.away_score",
	).
		From("results r").
		Join("JOIN leagues l ON l.id = r.league_id").
		Join("JOIN teams h ON h.id = r.home_team_id").
		Join("JOIN teams a ON a.id = r.away_team_id").
		Where(qb.Eq("l.name", leagueName)).
		OrderBy("r.match_date", "r.kickoff", "r.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results by league query: %w", err)
	}

	var rows []resultRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results by league: %w", err)
	}

	out := make([]match.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Result{
			League:    row.LeagueName,
			Season:    row.Season,
			Date:      row.MatchDate,
			Time:      row.Kickoff,
			Home:      row.HomeName,
			Away:      row.AwayName,
			HomeScore: row.HomeScore,
			AwayScore: row.AwayScore,
		})
	}
	return out, nil
}
