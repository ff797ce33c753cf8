package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-standings/internal/domain/standing"
	qb "github.com/riskibarqy/football-standings/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

// ReplaceByLeague swaps the stored table for the freshly derived one inside a
// single transaction, so readers never observe a half-written table.
func (r *StandingRepository) ReplaceByLeague(ctx context.Context, leagueID int64, teamIDByName map[string]int64, standings []standing.Standing) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("standings").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear standings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear standings: %w", err)
	}

	for _, item := range standings {
		teamID, ok := teamIDByName[item.Team]
		if !ok {
			return fmt.Errorf("standings row references unknown team %q", item.Team)
		}

		query, args, err := qb.InsertModel("standings", standingInsertModel{
			LeagueID:       leagueID,
			TeamID:         teamID,
			Rank:           item.Rank,
			Played:         item.Played,
			Won:            item.Won,
			Drawn:          item.Drawn,
			Lost:           item.Lost,
			GoalsFor:       item.GoalsFor,
			GoalsAgainst:   item.GoalsAgainst,
			GoalDifference: item.GoalDifference,
			Points:         item.Points,
		}, "")
		if err != nil {
			return fmt.Errorf("build insert standing query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert standing team=%s: %w", item.Team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace standings tx: %w", err)
	}
	return nil
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueName string) ([]standing.Standing, error) {
	query, args, err := qb.Select(
		"l.name AS league_name", "t.name AS team_name",
		"s.rank", "s.played", "s.won", "s.drawn", "s.lost",
		"s.goals_for", "s.goals_against", "s.goal_difference", "s.points",
	).
		From("standings s").
		Join("JOIN leagues l ON l.id = s.league_id").
		Join("JOIN teams t ON t.id = s.team_id").
		Where(qb.Eq("l.name", leagueName)).
		OrderBy("s.rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings by league query: %w", err)
	}

	var rows []standingRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings by league: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Standing{
			League:         row.LeagueName,
			Team:           row.TeamName,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			Rank:           row.Rank,
		})
	}
	return out, nil
}
