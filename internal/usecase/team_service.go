package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-standings/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// ListTeamsByLeague returns the clubs stored for a league. An unknown league
// yields an empty list, not an error.
func (s *TeamService) ListTeamsByLeague(ctx context.Context, leagueName string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamsByLeague")
	defer span.End()

	leagueName = strings.ToLower(strings.TrimSpace(leagueName))
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueName)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}
