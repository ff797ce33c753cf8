package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/football-standings/internal/config"
	"github.com/riskibarqy/football-standings/internal/infrastructure/flashscore"
	"github.com/riskibarqy/football-standings/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-standings/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-standings/internal/platform/logging"
	"github.com/riskibarqy/football-standings/internal/platform/resilience"
	"github.com/riskibarqy/football-standings/internal/usecase"
)

// OpenDB connects to Postgres with OpenTelemetry instrumentation.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	if cfg.DBURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return db, nil
}

// NewHTTPServer wires repositories, services and the router into a ready
// http.Server.
func NewHTTPServer(cfg config.Config, db *sqlx.DB, logger *slog.Logger, appLogger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if appLogger == nil {
		appLogger = logging.Default()
	}

	leagueRepo := postgres.NewLeagueRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	resultRepo := postgres.NewResultRepository(db)
	fixtureRepo := postgres.NewFixtureRepository(db)
	standingRepo := postgres.NewStandingRepository(db)

	var breaker *resilience.CircuitBreaker
	if cfg.ScrapeCircuitEnabled {
		breakerCfg := resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: cfg.ScrapeCircuitFailureCount,
			OpenTimeout:      cfg.ScrapeCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ScrapeCircuitHalfOpenMax,
		})
		breaker = resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq)
	}

	pageProvider := flashscore.NewClient(
		&http.Client{Timeout: cfg.ScrapeTimeout},
		scrapeTargets(cfg),
		cfg.ScrapeWorkers,
		breaker,
		appLogger,
	)

	syncSvc := usecase.NewSyncService(
		pageProvider,
		leagueRepo,
		teamRepo,
		resultRepo,
		fixtureRepo,
		standingRepo,
		clockwork.NewRealClock(),
		appLogger,
	)
	teamSvc := usecase.NewTeamService(teamRepo)
	matchSvc := usecase.NewMatchService(resultRepo, fixtureRepo)
	standingSvc := usecase.NewStandingService(standingRepo)

	handler := httpapi.NewHandler(syncSvc, teamSvc, matchSvc, standingSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func scrapeTargets(cfg config.Config) []flashscore.Target {
	out := make([]flashscore.Target, 0, len(cfg.ScrapeLeagues))
	for _, item := range cfg.ScrapeLeagues {
		base := cfg.ScrapeBaseURL + "/" + item.Path
		out = append(out, flashscore.Target{
			League:      item.Name,
			ResultsURL:  base + "/results/",
			FixturesURL: base + "/fixtures/",
		})
	}
	return out
}
