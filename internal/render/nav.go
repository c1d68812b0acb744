package render

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/omarshaarawi/matchview/internal/models"
)

// Button groups used for active-state toggling. Buttons rendered here carry
// the data-key that Surface.Activate matches against; buttons in the shared
// pages are matched by id or by the argument of their inline handler.
const (
	GroupYearButton  = "year-button"
	GroupWeekButton  = "week-button"
	GroupMatchupTab  = "matchup-tab-button"
	GroupStatsTab    = "stats-tab-button"
	GroupTeamTab     = "team-tab-button"
	GroupTeamYearTab = "year-tab-button"
)

// Actions dispatched by the page script from data-action attributes.
const (
	ActionInit                  = "init"
	ActionSwitchYear            = "switch-year"
	ActionShowWeek              = "show-week"
	ActionShowMatchup           = "show-matchup"
	ActionFindMatchup           = "find-matchup"
	ActionShowPanel             = "show-panel"
	ActionShowStatsPage         = "show-stats-page"
	ActionShowVulture           = "show-vulture"
	ActionCloseVulture          = "close-vulture"
	ActionShowTargets           = "show-targets"
	ActionCloseTargets          = "close-targets"
	ActionShowTeam              = "show-team"
	ActionShowTeamYear          = "show-team-year"
	ActionShowDefenseBreakdown  = "show-defense-breakdown"
	ActionCloseDefenseBreakdown = "close-defense-breakdown"
)

func WeekLabel(week int) string {
	return "Week " + strconv.Itoa(week)
}

func activeClass(active bool) string {
	if active {
		return "active"
	}
	return ""
}

func YearButtons(years []int, active int) templ.Component {
	nodes := fragment{el("span", class("year-label")).Append(text("Year:"))}
	for _, y := range years {
		year := strconv.Itoa(y)
		nodes = append(nodes, el("button",
			attr("type", "button"),
			class(GroupYearButton, activeClass(y == active)),
			attr("data-action", ActionSwitchYear),
			attr("data-year", year),
			attr("data-key", year),
		).Append(text(year)))
	}
	return nodes
}

// WeekNav lists every numeric week of the document. The button for
// activeWeek starts highlighted and the document's declared current week is
// flagged with data-current.
func WeekNav(doc *models.YearDocument, activeWeek int) templ.Component {
	weeks := doc.WeekNumbers()
	if len(weeks) == 0 {
		return Notice("No weeks found in data.")
	}

	nodes := fragment{el("div", class("week-nav-label")).Append(text("Weeks:"))}
	for _, w := range weeks {
		label := WeekLabel(w)
		nodes = append(nodes, el("button",
			attr("type", "button"),
			class(GroupWeekButton, activeClass(w == activeWeek)),
			attr("data-action", ActionShowWeek),
			attr("data-week", strconv.Itoa(w)),
			attr("data-year", strconv.Itoa(doc.Year)),
			attr("data-key", label),
			attrIf(w == doc.CurrentWeek, "data-current", "true"),
		).Append(text(label)))
	}
	return nodes
}

// MatchupTabs renders one tab per matchup of the week, the first active,
// followed by the team search for that week.
func MatchupTabs(doc *models.YearDocument, week int) templ.Component {
	matchups := doc.Matchups(week)
	if len(matchups) == 0 {
		return Notice("No matchups found for this week.")
	}

	nodes := make(fragment, 0, len(matchups)+1)
	for i, m := range matchups {
		nodes = append(nodes, el("button",
			attr("type", "button"),
			class(GroupMatchupTab, activeClass(i == 0)),
			attr("data-action", ActionShowMatchup),
			attr("data-week", strconv.Itoa(week)),
			attr("data-matchup", strconv.Itoa(i)),
			attr("data-year", strconv.Itoa(doc.Year)),
			attr("data-key", strconv.Itoa(i)),
		).Append(text(teamLabel(m.Away.Name, "Away")+" @ "+teamLabel(m.Home.Name, "Home"))))
	}
	return append(nodes, TeamSearch(doc.Year, week))
}

// TeamSearch is a form that jumps to the matchup of the week a team plays
// in. The page script posts the typed name as the team argument.
func TeamSearch(year, week int) templ.Component {
	return el("form",
		class("team-search"),
		attr("data-action", ActionFindMatchup),
		attr("data-week", strconv.Itoa(week)),
		attr("data-year", strconv.Itoa(year)),
	).Append(
		el("input",
			attr("type", "search"),
			attr("name", "team"),
			attr("placeholder", "Find a team"),
			attr("aria-label", "Team name"),
			attr("autocomplete", "off"),
		),
		el("button", attr("type", "submit")).Append(text("Find")),
	)
}

func teamLabel(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
