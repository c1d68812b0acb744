// Package ui describes the page the viewer draws on. A Surface is a set of
// named mount points plus class-based active and visibility toggles; the
// browser side applies the recorded operations.
package ui

import (
	"errors"
	"fmt"

	"github.com/a-h/templ"
)

// Mount points rendered by the page shell.
const (
	MountYearButtons = "year-buttons"
	MountWeekNav     = "week-nav"
	MountMatchupNav  = "matchup-nav"
	MountContent     = "content"
)

var ErrNoMount = errors.New("mount point not found")

type Surface interface {
	// Replace swaps the markup inside a mount point.
	Replace(mount string, c templ.Component) error
	// Activate sets the "active" class on elements of group (a CSS class)
	// that match key and clears it on the rest. An element matches when its
	// data-key or id equals key, or when key is an argument of its inline
	// onclick handler. Scope, when not empty, is a selector the lookup is
	// restricted to.
	Activate(scope, group, key string) error
	// Display shows or hides every element matching selector.
	Display(selector string, visible bool) error
}

// Panel is one of the shared pages that live outside the matchup view.
type Panel string

const (
	PanelRBComparison    Panel = "rb-comparison"
	PanelWRComparison    Panel = "wr-comparison"
	PanelTotalYearStats  Panel = "total-year-stats"
	PanelTeamPages       Panel = "team-pages"
	PanelDefenseRankings Panel = "defense-rankings"
)

var Panels = []Panel{
	PanelRBComparison,
	PanelWRComparison,
	PanelTotalYearStats,
	PanelTeamPages,
	PanelDefenseRankings,
}

func ParsePanel(s string) (Panel, error) {
	for _, p := range Panels {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown panel %q", s)
}

func (p Panel) ID() string {
	return string(p) + "-content"
}

func (p Panel) Selector() string {
	return "#" + p.ID()
}

func ByID(id string) string {
	return "#" + id
}

func ByClass(class string) string {
	return "." + class
}
