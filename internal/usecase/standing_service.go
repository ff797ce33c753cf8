package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-standings/internal/domain/standing"
)

type StandingService struct {
	standingRepo standing.Repository
}

func NewStandingService(standingRepo standing.Repository) *StandingService {
	return &StandingService{standingRepo: standingRepo}
}

// ListStandingsByLeague returns the stored table ordered by rank. An unknown
// league yields an empty table, not an error.
func (s *StandingService) ListStandingsByLeague(ctx context.Context, leagueName string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListStandingsByLeague")
	defer span.End()

	leagueName = strings.ToLower(strings.TrimSpace(leagueName))
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	standings, err := s.standingRepo.ListByLeague(ctx, leagueName)
	if err != nil {
		return nil, fmt.Errorf("list standings by league: %w", err)
	}

	return standings, nil
}
