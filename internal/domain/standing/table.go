package standing

import (
	"sort"

	"github.com/riskibarqy/football-standings/internal/domain/match"
)

// Roster returns the distinct team names for a league in first-seen order,
// scanning results before fixtures. Only the home side is scanned: on a full
// round-robin listing every club hosts at least once, so the away column adds
// nothing. A club that only ever appears away across every page is excluded;
// that is the documented policy, not an oversight.
func Roster(results []match.Result, fixtures []match.Fixture) []string {
	seen := make(map[string]struct{})
	roster := make([]string, 0, 24)

	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		roster = append(roster, name)
	}

	for _, r := range results {
		add(r.Home)
	}
	for _, f := range fixtures {
		add(f.Home)
	}

	return roster
}

// BuildTable computes one Standing per roster team from the completed matches
// of a single league. Teams without any completed match get a zero-filled row.
// Match participants outside the roster contribute only the roster side's
// statistics, consistent with the home-only roster policy.
func BuildTable(leagueName string, roster []string, results []match.Result) []Standing {
	index := make(map[string]int, len(roster))
	table := make([]Standing, len(roster))
	for i, name := range roster {
		index[name] = i
		table[i] = Standing{League: leagueName, Team: name}
	}

	for _, r := range results {
		if i, ok := index[r.Home]; ok {
			row := &table[i]
			row.Played++
			row.GoalsFor += r.HomeScore
			row.GoalsAgainst += r.AwayScore
			switch {
			case r.HomeScore > r.AwayScore:
				row.Won++
			case r.HomeScore < r.AwayScore:
				row.Lost++
			default:
				row.Drawn++
			}
		}
		if i, ok := index[r.Away]; ok {
			row := &table[i]
			row.Played++
			row.GoalsFor += r.AwayScore
			row.GoalsAgainst += r.HomeScore
			switch {
			case r.AwayScore > r.HomeScore:
				row.Won++
			case r.AwayScore < r.HomeScore:
				row.Lost++
			default:
				row.Drawn++
			}
		}
	}

	for i := range table {
		table[i].GoalDifference = table[i].GoalsFor - table[i].GoalsAgainst
		table[i].Points = 3*table[i].Won + table[i].Drawn
	}

	return table
}

// RankTable sorts rows by points, goal difference and goals for, all
// descending, and assigns 1-based ranks. The sort is stable: rows still tied
// after the three keys keep their roster order. No further tie-break exists.
func RankTable(table []Standing) []Standing {
	ranked := make([]Standing, len(table))
	copy(ranked, table)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		if ranked[i].GoalDifference != ranked[j].GoalDifference {
			return ranked[i].GoalDifference > ranked[j].GoalDifference
		}
		return ranked[i].GoalsFor > ranked[j].GoalsFor
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}
