package render

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/omarshaarawi/matchview/internal/models"
)

type Side string

const (
	SideAway Side = "away-team"
	SideHome Side = "home-team"
)

// Winners reports which side outscored the other. A tie marks neither.
func Winners(m models.Matchup) (away, home bool) {
	return m.Away.Score > m.Home.Score, m.Home.Score > m.Away.Score
}

func Matchup(m models.Matchup) templ.Component {
	awayWinner, homeWinner := Winners(m)
	return el("div", class("teams-container")).Append(
		TeamBox(m.Away, SideAway, awayWinner),
		TeamBox(m.Home, SideHome, homeWinner),
	)
}

var lineupHeaders = []string{"Pos", "Player", "Team", "Opp", "Points", "Proj"}

func TeamBox(team models.TeamResult, side Side, isWinner bool) templ.Component {
	result := "loser"
	if isWinner {
		result = "winner"
	}

	head := el("tr")
	for _, h := range lineupHeaders {
		head = head.Append(el("th").Append(text(h)))
	}
	rows := el("tbody")
	for _, p := range team.Lineup {
		rows = rows.Append(PlayerRow(p))
	}

	return el("div", class("team-box", string(side), result)).Append(
		el("div", class("team-header")).Append(
			el("h3").Append(text(team.Name)),
			el("p", class("owner")).Append(text(team.Owner)),
			el("div", class("score-box")).Append(
				el("span", class("score")).Append(text(Number(team.Score))),
				el("span", class("projected-score")).Append(text("Proj: "+Number(team.Projected))),
			),
		),
		el("table", class("lineup-table")).Append(el("thead").Append(head), rows),
	)
}

// RowClasses returns the CSS classes for a lineup row: game progress,
// bench marker and performance tier, empty entries dropped.
func RowClasses(p models.PlayerLine) []string {
	playing := "player-finished"
	if p.GamePlayed < 100 && !p.Bye {
		playing = "player-playing"
	}
	bench := ""
	if p.Bench {
		bench = "player-bench"
	}
	return strings.Fields(classList(playing, bench, PerformanceClass(p.Points, p.Proj).Class()))
}

var injuryAbbreviations = map[string]string{
	"QUESTIONABLE": "Q",
	"DOUBTFUL":     "D",
	"OUT":          "O",
	"SUSPENSION":   "SSPD",
}

// InjuryBadge is the short label shown next to a player's name, empty for
// healthy players and those already parked on IR.
func InjuryBadge(status string) string {
	switch status {
	case "", "ACTIVE", "NORMAL", "INJURY_RESERVE":
		return ""
	}
	if abbr, ok := injuryAbbreviations[status]; ok {
		return abbr
	}
	return status
}

func PlayerRow(p models.PlayerLine) templ.Component {
	name := el("td").Append(text(p.Name))
	if badge := InjuryBadge(p.InjuryStatus); badge != "" {
		name = name.Append(text(" "), el("span", class("injury-badge")).Append(text(badge)))
	}

	return el("tr", class(RowClasses(p)...)).Append(
		el("td").Append(text(p.Slot)),
		name,
		el("td").Append(text(p.ProTeam)),
		el("td").Append(text(p.Opp)),
		el("td", class("points")).Append(text(Number(p.Points))),
		el("td", class("projected")).Append(text(Number(p.Proj))),
	)
}
