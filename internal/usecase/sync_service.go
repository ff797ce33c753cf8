package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-standings/internal/domain/league"
	"github.com/riskibarqy/football-standings/internal/domain/match"
	"github.com/riskibarqy/football-standings/internal/domain/standing"
	"github.com/riskibarqy/football-standings/internal/domain/team"
	"github.com/riskibarqy/football-standings/internal/platform/logging"
	"github.com/riskibarqy/football-standings/internal/platform/resilience"
)

// MatchPageProvider fetches the raw pages for every configured (league, mode)
// pair. The provider owns its own fetch concurrency; the returned slice is
// fully materialized before the derivation pipeline starts.
type MatchPageProvider interface {
	FetchLeaguePages(ctx context.Context) ([]RawLeaguePage, error)
}

// SyncService drives one scrape-and-save cycle: fetch raw pages, normalize
// them per league, derive the ranked table and persist everything.
type SyncService struct {
	provider     MatchPageProvider
	leagueRepo   league.Repository
	teamRepo     team.Repository
	resultRepo   match.ResultRepository
	fixtureRepo  match.FixtureRepository
	standingRepo standing.Repository
	clock        clockwork.Clock
	logger       *logging.Logger
	flight       resilience.SingleFlight
}

func NewSyncService(
	provider MatchPageProvider,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	resultRepo match.ResultRepository,
	fixtureRepo match.FixtureRepository,
	standingRepo standing.Repository,
	clock clockwork.Clock,
	logger *logging.Logger,
) *SyncService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &SyncService{
		provider:     provider,
		leagueRepo:   leagueRepo,
		teamRepo:     teamRepo,
		resultRepo:   resultRepo,
		fixtureRepo:  fixtureRepo,
		standingRepo: standingRepo,
		clock:        clock,
		logger:       logger,
	}
}

// SyncReport summarises one scrape-and-save run.
type SyncReport struct {
	Leagues        int
	SkippedLeagues []string
	Results        int
	Fixtures       int
	Standings      int
}

type leaguePages struct {
	results  *RawLeaguePage
	fixtures *RawLeaguePage
}

// ScrapeAndSave runs the full cycle. Concurrent invocations share one run
// through single flight. A league whose pages cannot be normalized is logged
// and skipped without aborting the remaining leagues; persistence failures
// abort the run.
func (s *SyncService) ScrapeAndSave(ctx context.Context) (SyncReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.ScrapeAndSave")
	defer span.End()

	value, err, _ := s.flight.Do("scrape-and-save", func() (any, error) {
		return s.scrapeAndSave(ctx)
	})
	if err != nil {
		return SyncReport{}, err
	}

	report, ok := value.(SyncReport)
	if !ok {
		return SyncReport{}, fmt.Errorf("unexpected scrape-and-save result type %T", value)
	}
	return report, nil
}

func (s *SyncService) scrapeAndSave(ctx context.Context) (SyncReport, error) {
	pages, err := s.provider.FetchLeaguePages(ctx)
	if err != nil {
		return SyncReport{}, fmt.Errorf("%w: fetch league pages: %v", ErrDependencyUnavailable, err)
	}

	order, grouped := groupPagesByLeague(pages)
	now := s.clock.Now().UTC()

	var report SyncReport
	for _, name := range order {
		pair := grouped[name]
		if err := s.syncLeague(ctx, name, pair, now, &report); err != nil {
			if isLeagueDataError(err) {
				s.logger.WarnContext(ctx, "skipping league with bad scrape data", "league", name, "error", err)
				report.SkippedLeagues = append(report.SkippedLeagues, name)
				continue
			}
			return SyncReport{}, fmt.Errorf("sync league %q: %w", name, err)
		}
		report.Leagues++
	}

	return report, nil
}

func (s *SyncService) syncLeague(ctx context.Context, name string, pair *leaguePages, now time.Time, report *SyncReport) error {
	if pair.results == nil || pair.fixtures == nil {
		return fmt.Errorf("%w: league %q is missing a results or fixtures page", ErrMalformedPage, name)
	}

	results, err := normalizeResults(*pair.results, now)
	if err != nil {
		return err
	}
	fixtures, err := normalizeFixtures(*pair.fixtures, now)
	if err != nil {
		return err
	}

	roster := standing.Roster(results, fixtures)
	ranked := standing.RankTable(standing.BuildTable(name, roster, results))

	season := pair.results.Season
	if season == "" {
		season = pair.fixtures.Season
	}

	storedLeague, err := s.leagueRepo.Upsert(ctx, league.League{Name: name, Season: season})
	if err != nil {
		return fmt.Errorf("upsert league: %w", err)
	}

	teams, err := s.teamRepo.UpsertMany(ctx, storedLeague.ID, roster)
	if err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}

	teamIDByName := make(map[string]int64, len(teams))
	for teamName, item := range teams {
		teamIDByName[teamName] = item.ID
	}
	// A ranked row without a stored team signals a roster/statistics mismatch
	// upstream; surface it instead of zero-filling.
	for _, row := range ranked {
		if _, ok := teamIDByName[row.Team]; !ok {
			return fmt.Errorf("standings team %q is missing from the stored roster of league %q", row.Team, name)
		}
	}

	if err := s.resultRepo.UpsertMany(ctx, storedLeague.ID, teamIDByName, results); err != nil {
		return fmt.Errorf("upsert results: %w", err)
	}
	if err := s.fixtureRepo.UpsertMany(ctx, storedLeague.ID, teamIDByName, fixtures); err != nil {
		return fmt.Errorf("upsert fixtures: %w", err)
	}
	if err := s.standingRepo.ReplaceByLeague(ctx, storedLeague.ID, teamIDByName, ranked); err != nil {
		return fmt.Errorf("replace standings: %w", err)
	}

	report.Results += len(results)
	report.Fixtures += len(fixtures)
	report.Standings += len(ranked)
	return nil
}

func groupPagesByLeague(pages []RawLeaguePage) ([]string, map[string]*leaguePages) {
	order := make([]string, 0, len(pages)/2+1)
	grouped := make(map[string]*leaguePages, len(pages)/2+1)

	for i := range pages {
		name := strings.ToLower(strings.TrimSpace(pages[i].League))
		if name == "" {
			continue
		}
		pair, ok := grouped[name]
		if !ok {
			pair = &leaguePages{}
			grouped[name] = pair
			order = append(order, name)
		}
		switch pages[i].Mode {
		case PageModeResults:
			pair.results = &pages[i]
		case PageModeFixtures:
			pair.fixtures = &pages[i]
		}
	}

	return order, grouped
}

func isLeagueDataError(err error) bool {
	return errors.Is(err, ErrMalformedPage)
}
