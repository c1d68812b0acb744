package web

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/omarshaarawi/matchview/internal/ui"
)

// sharedPagesFragment is cut down from the generated stats and team pages,
// which drive the viewer from inline onclick handlers.
const sharedPagesFragment = `
<div id="rb-comparison-content" class="rb-content" style="display: none;">
  <td class="player-name clickable-rb" onclick="showVulturePercentage('KC')">Runner</td>
  <div id="vulture-modal-KC" class="vulture-modal">
    <span class="vulture-close" onclick="closeVultureModal('KC')">&times;</span>
  </div>
</div>
<div id="wr-comparison-content" class="rb-content" style="display: none;">
  <td class="player-name clickable-wr" onclick="showWRTargetsPercentage('DAL')">Catcher</td>
  <span class="vulture-close" onclick="closeWRTargetsModal('DAL')">&times;</span>
</div>
<div id="total-year-stats-content" class="rb-content" style="display: none;">
  <button class="stats-tab-button active" onclick="showStatsPage('fraud-watch')">Fraud Watch</button>
  <button class="stats-tab-button" onclick="showStatsPage('club-200')">200 Club</button>
  <td><a href="#" onclick="showWeek(2); return false;" class="week-link">View Matchup</a></td>
</div>
<div id="team-pages-content" class="rb-content" style="display: none;">
  <button class="team-tab-button" onclick="showTeam(4)" id="team-tab-4">Team Four</button>
  <div id="team-4-content" class="team-content">
    <button class="year-tab-button" onclick="showTeamYear(4, 2025)" id="team-4-year-2025-tab">2025</button>
    <button class="year-tab-button" onclick="showTeamYear(4, 2024)" id="team-4-year-2024-tab">2024</button>
  </div>
</div>
<div id="defense-rankings-content" class="rb-content" style="display: none;">
  <td onclick="showDefenseBreakdown('SF')">SF</td>
  <span class="vulture-close" onclick="closeDefenseBreakdown('SF')">&times;</span>
</div>`

var inlineCall = regexp.MustCompile(`onclick="(\w+)\(`)

func TestSharedPages_InlineHandlersExposed(t *testing.T) {
	router := newRouterWithPages(t, "", templ.Raw(sharedPagesFragment))

	shell := httptest.NewRecorder()
	router.ServeHTTP(shell, httptest.NewRequest(http.MethodGet, "/", nil))
	script := httptest.NewRecorder()
	router.ServeHTTP(script, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

	calls := inlineCall.FindAllStringSubmatch(shell.Body.String(), -1)
	if len(calls) == 0 {
		t.Fatal("shell does not contain the shared pages")
	}
	for _, call := range calls {
		if !strings.Contains(script.Body.String(), `expose("`+call[1]+`"`) {
			t.Errorf("app.js does not expose %s", call[1])
		}
	}
	for _, name := range []string{"showRBComparison", "showWRComparison", "showTotalYearStats", "showTeamPages", "showDefenseRankings", "switchYear", "showMatchup", "findMatchup"} {
		if !strings.Contains(script.Body.String(), `expose("`+name+`"`) {
			t.Errorf("app.js does not expose %s", name)
		}
	}
}

// The payloads below are what the exposed functions send for the calls in
// sharedPagesFragment.
func TestSharedPages_InlineActionsAccepted(t *testing.T) {
	router := newRouterWithPages(t, "", templ.Raw(sharedPagesFragment))

	rec, _ := postAction(t, router, nil, `{"action":"init"}`)
	cookies := rec.Result().Cookies()

	tests := []struct {
		name string
		body string
	}{
		{"vulture", `{"action":"show-vulture","team":"KC"}`},
		{"close vulture", `{"action":"close-vulture"}`},
		{"targets", `{"action":"show-targets","team":"DAL"}`},
		{"close targets", `{"action":"close-targets"}`},
		{"stats page", `{"action":"show-stats-page","page":"club-200"}`},
		{"week link without year", `{"action":"show-week","week":"2","year":""}`},
		{"team", `{"action":"show-team","team":"4"}`},
		{"team year", `{"action":"show-team-year","team":"4","year":"2025"}`},
		{"defense", `{"action":"show-defense-breakdown","defense":"SF"}`},
		{"close defense", `{"action":"close-defense-breakdown","defense":"SF"}`},
		{"panel", `{"action":"show-panel","panel":"total-year-stats"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := postAction(t, router, cookies, tt.body)
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSharedPages_ActivateKeysMatchButtons(t *testing.T) {
	router := newRouterWithPages(t, "", templ.Raw(sharedPagesFragment))

	tests := []struct {
		body   string
		group  string
		button string
	}{
		{`{"action":"show-team","team":"4"}`, "team-tab-button", `id="team-tab-4"`},
		{`{"action":"show-team-year","team":"4","year":"2024"}`, "year-tab-button", `id="team-4-year-2024-tab"`},
		{`{"action":"show-stats-page","page":"club-200"}`, "stats-tab-button", `onclick="showStatsPage('club-200')"`},
	}

	for _, tt := range tests {
		_, patch := postAction(t, router, nil, tt.body)

		var key string
		for _, op := range patch.Ops {
			if op.Op == ui.OpActivate && op.Group == tt.group {
				key = op.Key
			}
		}
		if key == "" {
			t.Errorf("%s: no activate op for %s", tt.body, tt.group)
			continue
		}
		// The button is found by id or by its handler argument.
		if !strings.Contains(tt.button, `id="`+key+`"`) && !strings.Contains(tt.button, `'`+key+`'`) {
			t.Errorf("%s: key %q does not identify %s", tt.body, key, tt.button)
		}
		if !strings.Contains(sharedPagesFragment, tt.button) {
			t.Errorf("fragment lacks %s", tt.button)
		}
	}
}
