package flashscore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-standings/internal/usecase"
)

const resultsHTML = `
<html><body>
<div class="heading">
  <div class="heading__name">Premier League</div>
  <div class="heading__info">2025/2026</div>
</div>
<div class="sportName soccer">
  <div class="event__match">
    <div class="event__time">01.08. 16:30</div>
    <div class="event__homeParticipant"><img alt="Arsenal"/>Arsenal</div>
    <div class="event__awayParticipant"><img alt="Chelsea"/>Chelsea</div>
    <div class="event__score--home">2</div>
    <div class="event__score--away">1</div>
  </div>
  <div class="event__match">
    <div class="event__time">08.08. 19:00</div>
    <div class="event__homeParticipant"><img alt="Everton"/>Everton</div>
    <div class="event__awayParticipant"><img alt="Fulham"/>Fulham</div>
    <div class="event__score--home">0</div>
    <div class="event__score--away">0</div>
  </div>
</div>
</body></html>`

const fixturesHTML = `
<html><body>
<div class="heading">
  <div class="heading__name">Premier League</div>
  <div class="heading__info">2025/2026</div>
</div>
<div class="sportName soccer">
  <div class="event__match">
    <div class="event__time">22.08. 16:30</div>
    <div class="event__homeParticipant"><img alt="Chelsea"/>Chelsea</div>
    <div class="event__awayParticipant"><img alt="Arsenal"/>Arsenal</div>
  </div>
  <div class="event__match">
    <div class="event__time lineThrough">23.08. 14:00</div>
    <div class="event__homeParticipant"><img alt="Fulham"/>Fulham</div>
    <div class="event__awayParticipant"><img alt="Everton"/>Everton</div>
  </div>
</div>
</body></html>`

func TestParseLeaguePage_Results(t *testing.T) {
	page, err := parseLeaguePage(strings.NewReader(resultsHTML), "premier-league", usecase.PageModeResults)
	require.NoError(t, err)

	assert.Equal(t, "premier-league", page.League)
	assert.Equal(t, "2025/2026", page.Season)
	assert.Equal(t, usecase.PageModeResults, page.Mode)

	assert.Equal(t, []string{"01.08. 16:30", "08.08. 19:00"}, page.Schedules)
	assert.Equal(t, []string{"arsenal", "everton"}, page.HomeTeams)
	assert.Equal(t, []string{"chelsea", "fulham"}, page.AwayTeams)
	assert.Equal(t, []string{"2", "0"}, page.HomeScores)
	assert.Equal(t, []string{"1", "0"}, page.AwayScores)
	assert.Empty(t, page.Statuses)
}

func TestParseLeaguePage_FixturesWithPostponed(t *testing.T) {
	page, err := parseLeaguePage(strings.NewReader(fixturesHTML), "premier-league", usecase.PageModeFixtures)
	require.NoError(t, err)

	assert.Equal(t, []string{"22.08. 16:30", "23.08. 14:00"}, page.Schedules)
	assert.Equal(t, []string{"chelsea", "fulham"}, page.HomeTeams)
	assert.Equal(t, []string{"arsenal", "everton"}, page.AwayTeams)
	assert.Equal(t, []string{"", "postponed"}, page.Statuses)
	assert.Empty(t, page.HomeScores)
	assert.Empty(t, page.AwayScores)
}

func TestParseLeaguePage_MissingCellsKeepRowsAligned(t *testing.T) {
	html := `
<div class="event__match">
  <div class="event__time">01.08. 16:30</div>
  <div class="event__homeParticipant"><img alt="Arsenal"/></div>
  <div class="event__awayParticipant"><img alt="Chelsea"/></div>
</div>
<div class="event__match">
  <div class="event__time">02.08. 16:30</div>
  <div class="event__homeParticipant"><img alt="Fulham"/></div>
  <div class="event__awayParticipant"><img alt="Everton"/></div>
  <div class="event__score--home">3</div>
  <div class="event__score--away">2</div>
</div>`

	page, err := parseLeaguePage(strings.NewReader(html), "premier-league", usecase.PageModeResults)
	require.NoError(t, err)

	require.Len(t, page.Schedules, 2)
	assert.Equal(t, []string{"", "3"}, page.HomeScores)
	assert.Equal(t, []string{"", "2"}, page.AwayScores)
}

func TestParseLeaguePage_FallsBackToCellText(t *testing.T) {
	html := `
<div class="event__match">
  <div class="event__time">01.08. 16:30</div>
  <div class="event__homeParticipant">Arsenal</div>
  <div class="event__awayParticipant">Chelsea</div>
  <div class="event__score--home">1</div>
  <div class="event__score--away">0</div>
</div>`

	page, err := parseLeaguePage(strings.NewReader(html), "premier-league", usecase.PageModeResults)
	require.NoError(t, err)

	assert.Equal(t, []string{"arsenal"}, page.HomeTeams)
	assert.Equal(t, []string{"chelsea"}, page.AwayTeams)
}

func TestParseLeaguePage_NoMatchRows(t *testing.T) {
	_, err := parseLeaguePage(strings.NewReader("<html><body></body></html>"), "premier-league", usecase.PageModeResults)
	require.Error(t, err)
}
