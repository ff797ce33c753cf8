package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-standings/internal/domain/match"
	qb "github.com/riskibarqy/football-standings/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) UpsertMany(ctx context.Context, leagueID int64, teamIDByName map[string]int64, fixtures []match.Fixture) error {
	insert := qb.InsertInto("fixtures").
		Columns("league_id", "match_date", "kickoff", "home_team_id", "away_team_id", "status")

	rows := 0
	for _, item := range fixtures {
		homeID, homeOK := teamIDByName[item.Home]
		awayID, awayOK := teamIDByName[item.Away]
		if !homeOK || !awayOK {
			continue
		}
		insert.Values(leagueID, item.Date, item.Time, homeID, awayID, item.Status)
		rows++
	}
	if rows == 0 {
		return nil
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (league_id, match_date, kickoff, home_team_id, away_team_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert fixtures query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert fixtures: %w", err)
	}
	return nil
}

func (r *FixtureRepository) ListByLeague(ctx context.Context, leagueName string) ([]match.Fixture, error) {
	query, args, err := qb.Select(
		"l.name AS league_name", "l.season",
		"f.match_date", "f.kickoff",
		"h.name AS home_name", "a.name AS away_name",
		"f.status",
	).
		From("fixtures f").
		Join("JOIN leagues l ON l.id = f.league_id").
		Join("JOIN teams h ON h.id = f.home_team_id").
		Join("JOIN teams a ON a.id = f.away_team_id").
		Where(qb.Eq("l.name", leagueName)).
		OrderBy("f.match_date", "f.kickoff", "f.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by league query: %w", err)
	}

	var rows []fixtureRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures by league: %w", err)
	}

	out := make([]match.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Fixture{
			League: row.LeagueName,
			Season: row.Season,
			Date:   row.MatchDate,
			Time:   row.Kickoff,
			Home:   row.HomeName,
			Away:   row.AwayName,
			Status: row.Status,
		})
	}
	return out, nil
}
