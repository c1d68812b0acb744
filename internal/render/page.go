package render

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/omarshaarawi/matchview/internal/ui"
)

func Notice(message string) templ.Component {
	return el("div", class("notice")).Append(text(message))
}

// NoMatchup is shown in the content pane when a week/index pair has no data.
// The index is shown one-based.
func NoMatchup(week, index int) templ.Component {
	return Notice(fmt.Sprintf("No matchup data found for Week %d, Matchup %d.", week, index+1))
}

func ErrorPanel(message string) templ.Component {
	code := func(s string) templ.Component {
		return el("code").Append(text(s))
	}
	return el("div", class("error-panel")).Append(
		el("h2").Append(text("Error Loading Data")),
		el("p", class("error-message")).Append(text(message)),
		el("p", class("error-help")).Append(
			el("strong").Append(text("To fix this:")),
			el("br"),
			text("Serve the "), code("data-<year>.json"),
			text(" files over HTTP. Either set "), code("DATA_DIR"),
			text(" to the folder holding them so this server publishes them under "), code("/data"),
			text(", or point "), code("DATA_BASE_URL"),
			text(" at an "), code("http://"), text(" or "), code("https://"),
			text(" location that does."),
		),
	)
}

type ShellPage struct {
	LeagueName  string
	Years       []int
	ActiveYear  int
	SharedPages templ.Component
}

var panelButtons = []struct {
	panel ui.Panel
	label string
}{
	{ui.PanelRBComparison, "Running Back Comparison"},
	{ui.PanelWRComparison, "Wide Receiver Comparison"},
	{ui.PanelTotalYearStats, "Total Year Stats"},
	{ui.PanelTeamPages, "Team Pages"},
	{ui.PanelDefenseRankings, "Defense Rankings"},
}

// Shell is the full page. The mount points start empty and are filled by
// the init action once the page script loads.
func Shell(page ShellPage) templ.Component {
	nav := el("div", class("main-navigation"))
	for _, b := range panelButtons {
		nav = nav.Append(el("button",
			attr("type", "button"),
			class("rb-comparison-main-btn"),
			attr("data-action", ActionShowPanel),
			attr("data-panel", string(b.panel)),
		).Append(el("span", class("btn-text")).Append(text(b.label))))
	}

	return fragment{
		templ.Raw("<!DOCTYPE html>"),
		el("html", attr("lang", "en")).Append(
			el("head").Append(
				el("meta", attr("charset", "UTF-8")),
				el("meta", attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1.0")),
				el("title").Append(text(page.LeagueName+" - All Weeks Matchups")),
				el("link", attr("rel", "stylesheet"), attr("href", "/data/styles.css")),
			),
			el("body").Append(
				el("div", class("container")).Append(
					el("div", class("header")).Append(
						el("h1").Append(text(page.LeagueName)),
						el("p").Append(text("All Weeks Matchups")),
					),
					nav,
					el("div", attr("id", ui.MountYearButtons), class("year-selector")).Append(YearButtons(page.Years, page.ActiveYear)),
					el("div", attr("id", ui.MountWeekNav), class("week-navigation")),
					el("div", attr("id", ui.MountMatchupNav), class("matchup-tabs")),
					el("div", attr("id", ui.MountContent), class("matchup-content-wrapper")),
					page.SharedPages,
				),
				el("script", attr("src", "/static/app.js")),
			),
		),
	}
}
