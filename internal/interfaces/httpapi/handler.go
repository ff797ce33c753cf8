package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-standings/internal/usecase"
)

type Handler struct {
	syncService     *usecase.SyncService
	teamService     *usecase.TeamService
	matchService    *usecase.MatchService
	standingService *usecase.StandingService
	logger          *slog.Logger
	validator       *validator.Validate
}

func NewHandler(
	syncService *usecase.SyncService,
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	standingService *usecase.StandingService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		syncService:     syncService,
		teamService:     teamService,
		matchService:    matchService,
		standingService: standingService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ScrapeAndSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScrapeAndSave")
	defer span.End()

	report, err := h.syncService.ScrapeAndSave(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "scrape and save failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	skipped := report.SkippedLeagues
	if skipped == nil {
		skipped = []string{}
	}
	writeSuccess(ctx, w, http.StatusOK, syncReportDTO{
		Leagues:        report.Leagues,
		SkippedLeagues: skipped,
		Results:        report.Results,
		Fixtures:       report.Fixtures,
		Standings:      report.Standings,
	})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	leagueName, err := h.leagueParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.ListTeamsByLeague(ctx, leagueName)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league", leagueName, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamDTO{ID: t.ID, Name: t.Name})
	}
	writeSuccess(ctx, w, http.StatusOK, teamListDTO{League: leagueName, Teams: items})
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	leagueName, err := h.leagueParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.matchService.ListResultsByLeague(ctx, leagueName)
	if err != nil {
		h.logger.WarnContext(ctx, "list results failed", "league", leagueName, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(results))
	for _, item := range results {
		items = append(items, resultDTO{
			Date:      item.Date.Format("2006-01-02"),
			Time:      item.Time,
			Home:      item.Home,
			Away:      item.Away,
			HomeScore: item.HomeScore,
			AwayScore: item.AwayScore,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	leagueName, err := h.leagueParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.matchService.ListFixturesByLeague(ctx, leagueName)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "league", leagueName, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, item := range fixtures {
		items = append(items, fixtureDTO{
			Date:   item.Date.Format("2006-01-02"),
			Time:   item.Time,
			Home:   item.Home,
			Away:   item.Away,
			Status: item.Status,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	leagueName, err := h.leagueParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	standings, err := h.standingService.ListStandingsByLeague(ctx, leagueName)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league", leagueName, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(standings))
	for _, item := range standings {
		items = append(items, standingDTO{
			Position:       item.Rank,
			Team:           item.Team,
			Played:         item.Played,
			Won:            item.Won,
			Drawn:          item.Drawn,
			Lost:           item.Lost,
			GoalsFor:       item.GoalsFor,
			GoalsAgainst:   item.GoalsAgainst,
			GoalDifference: item.GoalDifference,
			Points:         item.Points,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) leagueParam(r *http.Request) (string, error) {
	leagueName := r.PathValue("league")
	if err := h.validator.Var(leagueName, "required,max=64"); err != nil {
		return "", fmt.Errorf("%w: invalid league name", usecase.ErrInvalidInput)
	}
	return leagueName, nil
}

type syncReportDTO struct {
	Leagues        int      `json:"leagues"`
	SkippedLeagues []string `json:"skippedLeagues"`
	Results        int      `json:"results"`
	Fixtures       int      `json:"fixtures"`
	Standings      int      `json:"standings"`
}

type teamListDTO struct {
	League string    `json:"league"`
	Teams  []teamDTO `json:"teams"`
}

type teamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type resultDTO struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
}

type fixtureDTO struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Home   string `json:"home"`
	Away   string `json:"away"`
	Status string `json:"status"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}
