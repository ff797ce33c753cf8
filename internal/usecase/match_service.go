package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-standings/internal/domain/match"
)

type MatchService struct {
	resultRepo  match.ResultRepository
	fixtureRepo match.FixtureRepository
}

func NewMatchService(resultRepo match.ResultRepository, fixtureRepo match.FixtureRepository) *MatchService {
	return &MatchService{
		resultRepo:  resultRepo,
		fixtureRepo: fixtureRepo,
	}
}

func (s *MatchService) ListResultsByLeague(ctx context.Context, leagueName string) ([]match.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListResultsByLeague")
	defer span.End()

	leagueName = strings.ToLower(strings.TrimSpace(leagueName))
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	results, err := s.resultRepo.ListByLeague(ctx, leagueName)
	if err != nil {
		return nil, fmt.Errorf("list results by league: %w", err)
	}

	return results, nil
}

func (s *MatchService) ListFixturesByLeague(ctx context.Context, leagueName string) ([]match.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListFixturesByLeague")
	defer span.End()

	leagueName = strings.ToLower(strings.TrimSpace(leagueName))
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	fixtures, err := s.fixtureRepo.ListByLeague(ctx, leagueName)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by league: %w", err)
	}

	return fixtures, nil
}
