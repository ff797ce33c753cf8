package standing

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-standings/internal/domain/match"
)

func result(home string, hs int, away string, as int) match.Result {
	return match.Result{
		League:    "premier league",
		Season:    "2024/2025",
		Date:      time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		Time:      "15:00",
		Home:      home,
		Away:      away,
		HomeScore: hs,
		AwayScore: as,
	}
}

func fixture(home, away string) match.Fixture {
	return match.Fixture{
		League: "premier league",
		Season: "2024/2025",
		Date:   time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
		Time:   "12:30",
		Home:   home,
		Away:   away,
		Status: match.StatusScheduled,
	}
}

func TestRoster_FirstSeenOrderResultsBeforeFixtures(t *testing.T) {
	t.Parallel()

	results := []match.Result{
		result("arsenal", 2, "chelsea", 1),
		result("chelsea", 0, "arsenal", 0),
	}
	fixtures := []match.Fixture{
		fixture("everton", "arsenal"),
		fixture("chelsea", "everton"),
	}

	got := Roster(results, fixtures)
	want := []string{"arsenal", "chelsea", "everton"}
	if len(got) != len(want) {
		t.Fatalf("roster size = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("roster[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRoster_AwayOnlyTeamExcluded(t *testing.T) {
	t.Parallel()

	// "wolves" never hosts; the home-only scan leaves it out by policy.
	results := []match.Result{result("arsenal", 1, "wolves", 0)}
	fixtures := []match.Fixture{fixture("chelsea", "wolves")}

	got := Roster(results, fixtures)
	if len(got) != 2 || got[0] != "arsenal" || got[1] != "chelsea" {
		t.Fatalf("roster = %v, want [arsenal chelsea]", got)
	}
}

func TestBuildTable_SingleMatch(t *testing.T) {
	t.Parallel()

	roster := []string{"a", "b"}
	table := BuildTable("premier league", roster, []match.Result{result("a", 2, "b", 1)})
	ranked := RankTable(table)

	a, b := ranked[0], ranked[1]
	if a.Team != "a" || a.Played != 1 || a.Won != 1 || a.Drawn != 0 || a.Lost != 0 {
		t.Fatalf("unexpected winner row: %+v", a)
	}
	if a.GoalsFor != 2 || a.GoalsAgainst != 1 || a.GoalDifference != 1 || a.Points != 3 || a.Rank != 1 {
		t.Fatalf("unexpected winner stats: %+v", a)
	}
	if b.Team != "b" || b.Played != 1 || b.Lost != 1 || b.GoalsFor != 1 || b.GoalsAgainst != 2 {
		t.Fatalf("unexpected loser row: %+v", b)
	}
	if b.GoalDifference != -1 || b.Points != 0 || b.Rank != 2 {
		t.Fatalf("unexpected loser stats: %+v", b)
	}
}

func TestBuildTable_NoCompletedMatches(t *testing.T) {
	t.Parallel()

	fixtures := []match.Fixture{fixture("a", "b"), fixture("b", "a")}
	roster := Roster(nil, fixtures)
	ranked := RankTable(BuildTable("premier league", roster, nil))

	if len(ranked) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(ranked))
	}
	// All keys tied: stable sort keeps roster order.
	if ranked[0].Team != "a" || ranked[0].Rank != 1 {
		t.Fatalf("unexpected first row: %+v", ranked[0])
	}
	if ranked[1].Team != "b" || ranked[1].Rank != 2 {
		t.Fatalf("unexpected second row: %+v", ranked[1])
	}
	for _, row := range ranked {
		if row.Played != 0 || row.Won != 0 || row.Drawn != 0 || row.Lost != 0 ||
			row.GoalsFor != 0 || row.GoalsAgainst != 0 || row.GoalDifference != 0 || row.Points != 0 {
			t.Fatalf("expected zero-filled row, got %+v", row)
		}
		if err := row.Validate(); err != nil {
			t.Fatalf("zero row failed validation: %v", err)
		}
	}
}

func TestBuildTable_ThreeTeams(t *testing.T) {
	t.Parallel()

	results := []match.Result{
		result("a", 1, "b", 1),
		result("b", 2, "c", 0),
	}
	fixtures := []match.Fixture{fixture("c", "a")}
	roster := Roster(results, fixtures)
	ranked := RankTable(BuildTable("premier league", roster, results))

	byTeam := make(map[string]Standing, len(ranked))
	for _, row := range ranked {
		byTeam[row.Team] = row
	}

	a, b, c := byTeam["a"], byTeam["b"], byTeam["c"]
	if a.Played != 1 || a.Drawn != 1 || a.Points != 1 || a.GoalDifference != 0 {
		t.Fatalf("unexpected row for a: %+v", a)
	}
	if b.Played != 2 || b.Won != 1 || b.Drawn != 1 || b.Points != 4 || b.GoalDifference != 2 {
		t.Fatalf("unexpected row for b: %+v", b)
	}
	if c.Played != 1 || c.Lost != 1 || c.Points != 0 || c.GoalDifference != -2 {
		t.Fatalf("unexpected row for c: %+v", c)
	}

	if ranked[0].Team != "b" || ranked[1].Team != "a" || ranked[2].Team != "c" {
		t.Fatalf("unexpected order: %v %v %v", ranked[0].Team, ranked[1].Team, ranked[2].Team)
	}
}

func TestRankTable_GoalsForBreaksGoalDifferenceTie(t *testing.T) {
	t.Parallel()

	results := []match.Result{
		result("a", 3, "x", 2),
		result("b", 1, "x", 0),
		result("x", 4, "a", 4),
		result("x", 2, "b", 2),
	}
	fixtures := []match.Fixture{fixture("x", "a")}
	roster := Roster(results, fixtures)
	ranked := RankTable(BuildTable("premier league", roster, results))

	// a and b both have 4 points and GD +1; a has more goals scored.
	if ranked[0].Team != "a" || ranked[1].Team != "b" {
		t.Fatalf("expected a before b on goals for, got %v then %v", ranked[0].Team, ranked[1].Team)
	}
}

func TestRankTable_Deterministic(t *testing.T) {
	t.Parallel()

	results := []match.Result{
		result("a", 1, "b", 1),
		result("b", 2, "c", 0),
		result("c", 3, "a", 3),
	}
	roster := Roster(results, nil)
	table := BuildTable("premier league", roster, results)

	first := RankTable(table)
	second := RankTable(first)
	if len(first) != len(second) {
		t.Fatalf("rank count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("re-ranking changed row %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBuildTable_AggregateIdentities(t *testing.T) {
	t.Parallel()

	results := []match.Result{
		result("a", 2, "b", 1),
		result("b", 0, "c", 0),
		result("c", 1, "d", 3),
		result("d", 2, "a", 2),
		result("a", 0, "c", 1),
	}
	fixtures := []match.Fixture{fixture("b", "d")}
	roster := Roster(results, fixtures)
	table := BuildTable("premier league", roster, results)

	var wins, losses, draws, goalsFor, goalsAgainst int
	for _, row := range table {
		if err := row.Validate(); err != nil {
			t.Fatalf("row failed invariants: %v", err)
		}
		wins += row.Won
		losses += row.Lost
		draws += row.Drawn
		goalsFor += row.GoalsFor
		goalsAgainst += row.GoalsAgainst
	}

	if wins != losses {
		t.Fatalf("sum(wins)=%d != sum(losses)=%d", wins, losses)
	}
	if draws%2 != 0 {
		t.Fatalf("sum(draws)=%d is not even", draws)
	}
	if goalsFor != goalsAgainst {
		t.Fatalf("goal balance broken: for=%d against=%d", goalsFor, goalsAgainst)
	}
}

func TestBuildTable_RosterCompleteness(t *testing.T) {
	t.Parallel()

	results := []match.Result{result("a", 2, "b", 1)}
	fixtures := []match.Fixture{fixture("b", "a"), fixture("c", "a")}
	roster := Roster(results, fixtures)
	table := BuildTable("premier league", roster, results)

	seen := make(map[string]int)
	for _, row := range table {
		seen[row.Team]++
	}
	for _, name := range roster {
		if seen[name] != 1 {
			t.Fatalf("team %q appears %d times in standings", name, seen[name])
		}
	}
	if len(table) != len(roster) {
		t.Fatalf("standings size %d != roster size %d", len(table), len(roster))
	}
}
