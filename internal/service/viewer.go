package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/a-h/templ"
	"github.com/omarshaarawi/matchview/internal/models"
	"github.com/omarshaarawi/matchview/internal/render"
	"github.com/omarshaarawi/matchview/internal/ui"
)

// Cursor is one browser's selection. Week is zero until a year has loaded.
type Cursor struct {
	Year    int
	Week    int
	Matchup int
}

// Viewer applies navigation events for a single session to a Surface.
// Handlers never return errors: failures are logged or shown on the page.
type Viewer struct {
	loader  *Loader
	cursor  *Cursor
	surface ui.Surface
	years   []int
}

func NewViewer(loader *Loader, cursor *Cursor, surface ui.Surface, years []int) *Viewer {
	return &Viewer{
		loader:  loader,
		cursor:  cursor,
		surface: surface,
		years:   years,
	}
}

func (v *Viewer) Cursor() Cursor {
	return *v.cursor
}

// Init performs the first load of the page. Failures replace the content
// pane with the full error panel.
func (v *Viewer) Init(ctx context.Context) {
	if err := v.LoadYear(ctx, v.cursor.Year); err != nil {
		slog.Error("Error loading year", "year", v.cursor.Year, "error", err)
		v.replace(ui.MountContent, render.ErrorPanel(UserMessage(err)))
	}
}

// LoadYear loads year and shows its initial week. On error neither the
// cursor nor the surface is touched.
func (v *Viewer) LoadYear(ctx context.Context, year int) error {
	doc, err := v.loader.Load(ctx, year)
	if err != nil {
		return err
	}

	week := doc.InitialWeek()
	v.cursor.Year = year
	v.cursor.Week = week

	v.renderYearButtons(year)
	v.replace(ui.MountWeekNav, render.WeekNav(doc, week))
	v.ShowWeek(week, year)
	return nil
}

func (v *Viewer) renderYearButtons(year int) {
	if len(v.years) > 0 {
		v.replace(ui.MountYearButtons, render.YearButtons(v.years, year))
		return
	}
	v.activate("", render.GroupYearButton, strconv.Itoa(year))
}

// SwitchYear hides the shared pages and loads year. Errors are logged and
// the previous view stays in place.
func (v *Viewer) SwitchYear(ctx context.Context, year int) {
	v.hideSharedPages()
	if err := v.LoadYear(ctx, year); err != nil {
		slog.Error("Error switching year", "year", year, "error", err)
	}
}

func (v *Viewer) ShowWeek(week, year int) {
	v.hideSharedPages()

	doc, ok := v.cachedYear(year)
	if !ok {
		return
	}

	v.cursor.Week = week
	v.cursor.Matchup = 0

	v.activate("", render.GroupWeekButton, render.WeekLabel(week))
	v.replace(ui.MountMatchupNav, render.MatchupTabs(doc, week))
	v.ShowMatchup(week, 0, year)
}

func (v *Viewer) ShowMatchup(week, index, year int) {
	doc, ok := v.cachedYear(year)
	if !ok {
		return
	}

	m, ok := doc.Matchup(week, index)
	if !ok {
		v.replace(ui.MountContent, render.NoMatchup(week, index))
		return
	}

	v.cursor.Matchup = index
	v.activate("", render.GroupMatchupTab, strconv.Itoa(index))
	v.replace(ui.MountContent, render.Matchup(m))
}

func (v *Viewer) cachedYear(year int) (*models.YearDocument, bool) {
	doc, ok := v.loader.Cached(year)
	if !ok {
		slog.Error("No data cached for year", "year", year)
	}
	return doc, ok
}

func (v *Viewer) replace(mount string, c templ.Component) {
	if err := v.surface.Replace(mount, c); err != nil {
		slog.Error("Error updating page", "mount", mount, "error", err)
	}
}

func (v *Viewer) activate(scope, group, key string) {
	if err := v.surface.Activate(scope, group, key); err != nil {
		slog.Error("Error updating active state", "group", group, "error", err)
	}
}

func (v *Viewer) display(selector string, visible bool) {
	if err := v.surface.Display(selector, visible); err != nil {
		slog.Error("Error updating visibility", "selector", selector, "error", err)
	}
}

func (v *Viewer) hideSharedPages() {
	for _, p := range ui.Panels {
		v.display(p.Selector(), false)
	}
}

// hideMatchups clears the matchup tabs and content but keeps week nav.
func (v *Viewer) hideMatchups() {
	v.replace(ui.MountMatchupNav, templ.NopComponent)
	v.replace(ui.MountContent, templ.NopComponent)
}

// ShowPanel replaces the matchup view with one shared page.
func (v *Viewer) ShowPanel(p ui.Panel) {
	v.hideMatchups()
	v.hideSharedPages()
	v.display(p.Selector(), true)
}

// ShowStatsPage shows one page of the stats panel. Its tab button is
// recognised by the page name in its inline handler.
func (v *Viewer) ShowStatsPage(name string) {
	v.display(ui.ByClass("stats-page"), false)
	v.activate("", render.GroupStatsTab, name)
	v.display(ui.ByID(name+"-page"), true)
}

func (v *Viewer) ShowVulture(team string) {
	v.display(ui.ByClass("vulture-modal"), false)
	v.display(ui.ByID("vulture-modal-"+team), true)
}

func (v *Viewer) CloseVulture() {
	v.display(ui.ByClass("vulture-modal"), false)
}

func (v *Viewer) ShowTargets(team string) {
	v.display(ui.ByClass("targets-modal"), false)
	v.display(ui.ByID("targets-modal-"+team), true)
}

func (v *Viewer) CloseTargets() {
	v.display(ui.ByClass("targets-modal"), false)
}

func (v *Viewer) ShowTeam(teamID string) {
	v.display(ui.ByClass("team-content"), false)
	v.activate("", render.GroupTeamTab, fmt.Sprintf("team-tab-%s", teamID))
	v.display(ui.ByID(fmt.Sprintf("team-%s-content", teamID)), true)
}

// ShowTeamYear switches the year tab inside one team's page only.
func (v *Viewer) ShowTeamYear(teamID string, year int) {
	scope := ui.ByID(fmt.Sprintf("team-%s-content", teamID))
	v.display(scope+" "+ui.ByClass("team-year-content"), false)
	v.activate(scope, render.GroupTeamYearTab, fmt.Sprintf("team-%s-year-%d-tab", teamID, year))
	v.display(ui.ByID(fmt.Sprintf("team-%s-year-%d-content", teamID, year)), true)
}

// ShowDefenseBreakdown shares the vulture modal class with the RB pages, so
// opening it closes any open vulture modal.
func (v *Viewer) ShowDefenseBreakdown(defense string) {
	v.display(ui.ByClass("vulture-modal"), false)
	v.display(ui.ByID("defense-breakdown-modal-"+defense), true)
}

func (v *Viewer) CloseDefenseBreakdown(defense string) {
	v.display(ui.ByID("defense-breakdown-modal-"+defense), false)
}
