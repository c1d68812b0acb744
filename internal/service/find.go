package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/matchview/internal/models"
	"github.com/omarshaarawi/matchview/internal/render"
	"github.com/omarshaarawi/matchview/internal/ui"
)

const teamMatchThreshold = 0.6

// matchupIndexForTeam finds the matchup in which a team resembling name
// plays. An exact name (ignoring case) wins outright. Next come names that
// contain the query's characters in order, closest first, and last the
// closest name by Levenshtein similarity above the threshold.
func matchupIndexForTeam(matchups []models.Matchup, name string) (int, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return 0, false
	}

	// Lowercased team names, two per matchup with away first.
	teams := make([]string, 0, 2*len(matchups))
	for _, m := range matchups {
		teams = append(teams, strings.ToLower(m.Away.Name), strings.ToLower(m.Home.Name))
	}

	for i, team := range teams {
		if strings.TrimSpace(team) == query {
			return i / 2, true
		}
	}

	if ranks := fuzzy.RankFindFold(query, teams); len(ranks) > 0 {
		sort.Stable(ranks)
		return ranks[0].OriginalIndex / 2, true
	}

	best := -1
	bestScore := 0.0
	for i, candidate := range teams {
		if candidate == "" {
			continue
		}
		distance := fuzzy.LevenshteinDistance(query, candidate)
		maxLen := float64(max(len(query), len(candidate)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > teamMatchThreshold && similarity > bestScore {
			bestScore = similarity
			best = i / 2
		}
	}

	return best, best >= 0
}

// FindMatchup shows the matchup of the week that the named team plays in.
func (v *Viewer) FindMatchup(week int, team string, year int) {
	doc, ok := v.cachedYear(year)
	if !ok {
		return
	}

	index, ok := matchupIndexForTeam(doc.Matchups(week), team)
	if !ok {
		v.replace(ui.MountContent, render.Notice(fmt.Sprintf("No team matching %q plays in Week %d.", team, week)))
		return
	}

	v.ShowMatchup(week, index, year)
}
