package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-standings/internal/domain/match"
)

// PageMode tells which listing a raw page was scraped from.
type PageMode string

const (
	PageModeResults  PageMode = "results"
	PageModeFixtures PageMode = "fixtures"
)

// RawLeaguePage is the raw scrape output for one (league, mode) fetch: the
// page's per-match values as parallel arrays, all of equal length. Results
// pages fill HomeScores/AwayScores; fixtures pages fill Statuses instead.
type RawLeaguePage struct {
	League     string
	Season     string
	Mode       PageMode
	Schedules  []string
	HomeTeams  []string
	AwayTeams  []string
	HomeScores []string
	AwayScores []string
	Statuses   []string
}

const postponedStatusFlag = "postponed"

// normalizeResults converts a results page into completed match records.
// A schedule token encodes "d.m[.] hh:mm" without a year; the year is taken
// from now, and a result dated after now is rolled back one year so that
// December results scraped in January land in the right season. Records whose
// schedule token or scores cannot be parsed are skipped individually.
func normalizeResults(page RawLeaguePage, now time.Time) ([]match.Result, error) {
	n := len(page.Schedules)
	if len(page.HomeTeams) != n || len(page.AwayTeams) != n ||
		len(page.HomeScores) != n || len(page.AwayScores) != n {
		return nil, fmt.Errorf("%w: results page for %q has mismatched array lengths", ErrMalformedPage, page.League)
	}

	out := make([]match.Result, 0, n)
	for i := 0; i < n; i++ {
		date, kickoff, err := parseScheduleToken(page.Schedules[i], now, true)
		if err != nil {
			continue
		}
		homeScore, err := strconv.Atoi(strings.TrimSpace(page.HomeScores[i]))
		if err != nil {
			continue
		}
		awayScore, err := strconv.Atoi(strings.TrimSpace(page.AwayScores[i]))
		if err != nil {
			continue
		}

		record := match.Result{
			League:    page.League,
			Season:    page.Season,
			Date:      date,
			Time:      kickoff,
			Home:      page.HomeTeams[i],
			Away:      page.AwayTeams[i],
			HomeScore: homeScore,
			AwayScore: awayScore,
		}
		if err := record.Validate(); err != nil {
			continue
		}
		out = append(out, record)
	}

	return out, nil
}

// normalizeFixtures converts a fixtures page into scheduled match records.
// Fixture dates are never year-rolled.
func normalizeFixtures(page RawLeaguePage, now time.Time) ([]match.Fixture, error) {
	n := len(page.Schedules)
	if len(page.HomeTeams) != n || len(page.AwayTeams) != n || len(page.Statuses) != n {
		return nil, fmt.Errorf("%w: fixtures page for %q has mismatched array lengths", ErrMalformedPage, page.League)
	}

	out := make([]match.Fixture, 0, n)
	for i := 0; i < n; i++ {
		date, kickoff, err := parseScheduleToken(page.Schedules[i], now, false)
		if err != nil {
			continue
		}

		status := match.StatusScheduled
		if strings.EqualFold(strings.TrimSpace(page.Statuses[i]), postponedStatusFlag) {
			status = match.StatusPostponed
		}

		record := match.Fixture{
			League: page.League,
			Season: page.Season,
			Date:   date,
			Time:   kickoff,
			Home:   page.HomeTeams[i],
			Away:   page.AwayTeams[i],
			Status: status,
		}
		if err := record.Validate(); err != nil {
			continue
		}
		out = append(out, record)
	}

	return out, nil
}

func parseScheduleToken(token string, now time.Time, isResult bool) (time.Time, string, error) {
	fields := strings.Fields(strings.TrimSpace(token))
	if len(fields) < 2 {
		return time.Time{}, "", fmt.Errorf("schedule token %q cannot be split into date and time", token)
	}

	datePart := strings.TrimSuffix(fields[0], ".")
	segments := strings.Split(datePart, ".")
	if len(segments) != 2 {
		return time.Time{}, "", fmt.Errorf("schedule date %q is not day.month", fields[0])
	}
	day, err := strconv.Atoi(segments[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("schedule day %q: %w", segments[0], err)
	}
	month, err := strconv.Atoi(segments[1])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("schedule month %q: %w", segments[1], err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, "", fmt.Errorf("schedule date %q out of range", fields[0])
	}

	kickoff := fields[len(fields)-1]
	if _, err := time.Parse("15:04", kickoff); err != nil {
		return time.Time{}, "", fmt.Errorf("schedule time %q: %w", kickoff, err)
	}

	date := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if isResult && date.After(now) {
		date = time.Date(now.Year()-1, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}

	return date, kickoff, nil
}
