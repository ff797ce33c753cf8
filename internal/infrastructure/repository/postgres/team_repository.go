package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-standings/internal/domain/team"
	qb "github.com/riskibarqy/football-standings/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) UpsertMany(ctx context.Context, leagueID int64, names []string) (map[string]team.Team, error) {
	if len(names) == 0 {
		return map[string]team.Team{}, nil
	}

	insert := qb.InsertInto("teams").Columns("league_id", "name")
	for _, name := range names {
		insert.Values(leagueID, name)
	}
	query, args, err := insert.
		Suffix("ON CONFLICT (league_id, name) DO NOTHING").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build insert teams query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert teams: %w", err)
	}

	values := make([]any, 0, len(names))
	for _, name := range names {
		values = append(values, name)
	}
	query, args, err = qb.Select("*").From("teams").
		Where(
			qb.Eq("league_id", leagueID),
			qb.In("name", values),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make(map[string]team.Team, len(rows))
	for _, row := range rows {
		out[row.Name] = team.Team{ID: row.ID, LeagueID: row.LeagueID, Name: row.Name}
	}
	return out, nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueName string) ([]team.Team, error) {
	query, args, err := qb.Select("t.id", "t.league_id", "t.name", "t.created_at").
		From("teams t").
		Join("JOIN leagues l ON l.id = t.league_id").
		Where(qb.Eq("l.name", leagueName)).
		OrderBy("t.name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by league query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by league: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{ID: row.ID, LeagueID: row.LeagueID, Name: row.Name})
	}
	return out, nil
}
