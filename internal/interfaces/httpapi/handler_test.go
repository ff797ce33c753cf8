package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-standings/internal/domain/league"
	"github.com/riskibarqy/football-standings/internal/domain/match"
	"github.com/riskibarqy/football-standings/internal/domain/standing"
	"github.com/riskibarqy/football-standings/internal/domain/team"
	"github.com/riskibarqy/football-standings/internal/usecase"
)

type envelope struct {
	APIVersion string          `json:"apiVersion"`
	Data       json.RawMessage `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

type fakeProvider struct {
	pages []usecase.RawLeaguePage
}

func (f *fakeProvider) FetchLeaguePages(_ context.Context) ([]usecase.RawLeaguePage, error) {
	return f.pages, nil
}

type fakeLeagueRepo struct{ nextID int64 }

func (f *fakeLeagueRepo) Upsert(_ context.Context, item league.League) (league.League, error) {
	f.nextID++
	item.ID = f.nextID
	return item, nil
}

func (f *fakeLeagueRepo) GetByName(_ context.Context, _ string) (league.League, bool, error) {
	return league.League{}, false, nil
}

type fakeTeamRepo struct {
	nextID int64
	teams  map[string][]team.Team
}

func (f *fakeTeamRepo) UpsertMany(_ context.Context, leagueID int64, names []string) (map[string]team.Team, error) {
	out := make(map[string]team.Team, len(names))
	for _, name := range names {
		f.nextID++
		out[name] = team.Team{ID: f.nextID, LeagueID: leagueID, Name: name}
	}
	return out, nil
}

func (f *fakeTeamRepo) ListByLeague(_ context.Context, leagueName string) ([]team.Team, error) {
	return f.teams[leagueName], nil
}

type fakeResultRepo struct {
	results map[string][]match.Result
}

func (f *fakeResultRepo) UpsertMany(_ context.Context, _ int64, _ map[string]int64, _ []match.Result) error {
	return nil
}

func (f *fakeResultRepo) ListByLeague(_ context.Context, leagueName string) ([]match.Result, error) {
	return f.results[leagueName], nil
}

type fakeFixtureRepo struct {
	fixtures map[string][]match.Fixture
}

func (f *fakeFixtureRepo) UpsertMany(_ context.Context, _ int64, _ map[string]int64, _ []match.Fixture) error {
	return nil
}

func (f *fakeFixtureRepo) ListByLeague(_ context.Context, leagueName string) ([]match.Fixture, error) {
	return f.fixtures[leagueName], nil
}

type fakeStandingRepo struct {
	standings map[string][]standing.Standing
}

func (f *fakeStandingRepo) ReplaceByLeague(_ context.Context, _ int64, _ map[string]int64, _ []standing.Standing) error {
	return nil
}

func (f *fakeStandingRepo) ListByLeague(_ context.Context, leagueName string) ([]standing.Standing, error) {
	return f.standings[leagueName], nil
}

func newTestRouter(
	provider *fakeProvider,
	teamRepo *fakeTeamRepo,
	resultRepo *fakeResultRepo,
	fixtureRepo *fakeFixtureRepo,
	standingRepo *fakeStandingRepo,
) http.Handler {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	syncService := usecase.NewSyncService(provider, &fakeLeagueRepo{}, teamRepo, resultRepo, fixtureRepo, standingRepo, clock, nil)
	handler := NewHandler(
		syncService,
		usecase.NewTeamService(teamRepo),
		usecase.NewMatchService(resultRepo, fixtureRepo),
		usecase.NewStandingService(standingRepo),
		nil,
	)
	return NewRouter(handler, nil, []string{"*"})
}

func emptyTestRouter() http.Handler {
	return newTestRouter(&fakeProvider{}, &fakeTeamRepo{}, &fakeResultRepo{}, &fakeFixtureRepo{}, &fakeStandingRepo{})
}

func doRequest(t *testing.T, router http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var body envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return rec, body
}

func TestHandler_Healthz(t *testing.T) {
	rec, body := doRequest(t, emptyTestRouter(), http.MethodGet, "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body.APIVersion != "2.0" {
		t.Fatalf("unexpected api version %q", body.APIVersion)
	}
}

func TestHandler_ListStandings(t *testing.T) {
	standingRepo := &fakeStandingRepo{standings: map[string][]standing.Standing{
		"premier-league": {
			{League: "premier-league", Team: "arsenal", Played: 2, Won: 2, GoalsFor: 5, GoalsAgainst: 1, GoalDifference: 4, Points: 6, Rank: 1},
			{League: "premier-league", Team: "chelsea", Played: 2, Won: 1, Lost: 1, GoalsFor: 2, GoalsAgainst: 3, GoalDifference: -1, Points: 3, Rank: 2},
		},
	}}
	router := newTestRouter(&fakeProvider{}, &fakeTeamRepo{}, &fakeResultRepo{}, &fakeFixtureRepo{}, standingRepo)

	rec, body := doRequest(t, router, http.MethodGet, "/api/premier-league/standings")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []standingDTO
	if err := json.Unmarshal(body.Data, &items); err != nil {
		t.Fatalf("decode standings: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
	if items[0].Position != 1 || items[0].Team != "arsenal" || items[0].Points != 6 {
		t.Fatalf("unexpected first row: %+v", items[0])
	}
	if items[1].Position != 2 || items[1].Team != "chelsea" {
		t.Fatalf("unexpected second row: %+v", items[1])
	}
}

func TestHandler_UnknownLeagueReturnsEmptyCollections(t *testing.T) {
	router := emptyTestRouter()

	for _, target := range []string{
		"/api/bundesliga/results",
		"/api/bundesliga/fixtures",
		"/api/bundesliga/standings",
	} {
		rec, body := doRequest(t, router, http.MethodGet, target)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}

		var items []json.RawMessage
		if err := json.Unmarshal(body.Data, &items); err != nil {
			t.Fatalf("%s: decode data: %v", target, err)
		}
		if len(items) != 0 {
			t.Fatalf("%s: expected empty collection, got %d items", target, len(items))
		}
	}

	rec, body := doRequest(t, router, http.MethodGet, "/api/bundesliga/teams")
	if rec.Code != http.StatusOK {
		t.Fatalf("teams: expected 200, got %d", rec.Code)
	}
	var teamList teamListDTO
	if err := json.Unmarshal(body.Data, &teamList); err != nil {
		t.Fatalf("teams: decode data: %v", err)
	}
	if teamList.League != "bundesliga" || len(teamList.Teams) != 0 {
		t.Fatalf("teams: unexpected payload: %+v", teamList)
	}
}

func TestHandler_ListTeams(t *testing.T) {
	teamRepo := &fakeTeamRepo{teams: map[string][]team.Team{
		"premier-league": {
			{ID: 1, LeagueID: 1, Name: "arsenal"},
			{ID: 2, LeagueID: 1, Name: "chelsea"},
		},
	}}
	router := newTestRouter(&fakeProvider{}, teamRepo, &fakeResultRepo{}, &fakeFixtureRepo{}, &fakeStandingRepo{})

	rec, body := doRequest(t, router, http.MethodGet, "/api/premier-league/teams")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var teamList teamListDTO
	if err := json.Unmarshal(body.Data, &teamList); err != nil {
		t.Fatalf("decode teams: %v", err)
	}
	if teamList.League != "premier-league" {
		t.Fatalf("unexpected league %q", teamList.League)
	}
	if len(teamList.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teamList.Teams))
	}
	if teamList.Teams[0].ID != 1 || teamList.Teams[0].Name != "arsenal" {
		t.Fatalf("unexpected first team: %+v", teamList.Teams[0])
	}
}

func TestHandler_ListResults(t *testing.T) {
	resultRepo := &fakeResultRepo{results: map[string][]match.Result{
		"premier-league": {
			{
				League: "premier-league", Season: "2025/2026",
				Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Time: "16:30",
				Home: "arsenal", Away: "chelsea", HomeScore: 2, AwayScore: 1,
			},
		},
	}}
	router := newTestRouter(&fakeProvider{}, &fakeTeamRepo{}, resultRepo, &fakeFixtureRepo{}, &fakeStandingRepo{})

	rec, body := doRequest(t, router, http.MethodGet, "/api/premier-league/results")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []resultDTO
	if err := json.Unmarshal(body.Data, &items); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 result, got %d", len(items))
	}
	if items[0].Date != "2026-08-01" || items[0].Home != "arsenal" || items[0].HomeScore != 2 {
		t.Fatalf("unexpected result row: %+v", items[0])
	}
}

func TestHandler_ScrapeAndSave(t *testing.T) {
	provider := &fakeProvider{pages: []usecase.RawLeaguePage{
		{
			League: "premier-league", Season: "2025/2026", Mode: usecase.PageModeResults,
			Schedules:  []string{"01.08. 16:30"},
			HomeTeams:  []string{"arsenal"},
			AwayTeams:  []string{"chelsea"},
			HomeScores: []string{"2"},
			AwayScores: []string{"1"},
		},
		{
			League: "premier-league", Season: "2025/2026", Mode: usecase.PageModeFixtures,
			Schedules: []string{"22.08. 16:30"},
			HomeTeams: []string{"chelsea"},
			AwayTeams: []string{"arsenal"},
			Statuses:  []string{""},
		},
	}}
	router := newTestRouter(provider, &fakeTeamRepo{}, &fakeResultRepo{}, &fakeFixtureRepo{}, &fakeStandingRepo{})

	rec, body := doRequest(t, router, http.MethodGet, "/api/scrape-and-save")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report syncReportDTO
	if err := json.Unmarshal(body.Data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Leagues != 1 || report.Results != 1 || report.Fixtures != 1 || report.Standings != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestCORS_PreflightAllowsConfiguredOrigin(t *testing.T) {
	router := emptyTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/premier-league/teams", nil)
	req.Header.Set("Origin", "https://example.com")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("unexpected allow origin %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
