package flashscore

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/football-standings/internal/usecase"
)

const (
	selMatchRow        = "div.event__match"
	selMatchTime       = ".event__time"
	selHomeParticipant = ".event__homeParticipant"
	selAwayParticipant = ".event__awayParticipant"
	selHomeScore       = ".event__score--home"
	selAwayScore       = ".event__score--away"
	selHeadingInfo     = ".heading__info"

	classPostponed = "lineThrough"
)

// parseLeaguePage extracts the per-match columns from a results or fixtures
// listing. Rows are walked one by one so the output arrays stay aligned even
// when individual cells are missing.
func parseLeaguePage(r io.Reader, leagueName string, mode usecase.PageMode) (usecase.RawLeaguePage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return usecase.RawLeaguePage{}, fmt.Errorf("parse league page html: %w", err)
	}

	page := usecase.RawLeaguePage{
		League: leagueName,
		Season: strings.TrimSpace(doc.Find(selHeadingInfo).First().Text()),
		Mode:   mode,
	}

	rows := doc.Find(selMatchRow)
	if rows.Length() == 0 {
		return page, fmt.Errorf("league page for %q has no match rows", leagueName)
	}

	rows.Each(func(_ int, row *goquery.Selection) {
		timeSel := row.Find(selMatchTime).First()

		page.Schedules = append(page.Schedules, strings.TrimSpace(timeSel.Text()))
		page.HomeTeams = append(page.HomeTeams, participantName(row.Find(selHomeParticipant).First()))
		page.AwayTeams = append(page.AwayTeams, participantName(row.Find(selAwayParticipant).First()))

		switch mode {
		case usecase.PageModeResults:
			page.HomeScores = append(page.HomeScores, strings.TrimSpace(row.Find(selHomeScore).First().Text()))
			page.AwayScores = append(page.AwayScores, strings.TrimSpace(row.Find(selAwayScore).First().Text()))
		case usecase.PageModeFixtures:
			status := ""
			if timeSel.HasClass(classPostponed) {
				status = "postponed"
			}
			page.Statuses = append(page.Statuses, status)
		}
	})

	return page, nil
}

// participantName prefers the club crest's alt text over the cell text, which
// can carry form badges and other decorations.
func participantName(sel *goquery.Selection) string {
	if alt, ok := sel.Find("img").First().Attr("alt"); ok {
		if name := strings.TrimSpace(alt); name != "" {
			return strings.ToLower(name)
		}
	}
	return strings.ToLower(strings.TrimSpace(sel.Text()))
}