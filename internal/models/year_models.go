package models

import (
	"slices"
	"strconv"
)

// YearDocument is one season's pre-computed matchup data as published in
// data-<year>.json. Weeks is keyed by the week number as a JSON object key.
type YearDocument struct {
	Year        int                  `json:"year"`
	CurrentWeek int                  `json:"current_week"`
	Weeks       map[string][]Matchup `json:"weeks"`
}

type Matchup struct {
	Away TeamResult `json:"away"`
	Home TeamResult `json:"home"`
}

type TeamResult struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Owner     string       `json:"owner"`
	Score     float64      `json:"score"`
	Projected float64      `json:"projected"`
	Lineup    []PlayerLine `json:"lineup"`
}

type PlayerLine struct {
	Slot         string  `json:"slot"`
	Name         string  `json:"name"`
	ProTeam      string  `json:"proTeam"`
	Opp          string  `json:"opp"`
	Points       float64 `json:"points"`
	Proj         float64 `json:"proj"`
	GamePlayed   float64 `json:"gamePlayed"`
	Bye          bool    `json:"bye"`
	Bench        bool    `json:"bench"`
	InjuryStatus string  `json:"injuryStatus"`
	Injured      bool    `json:"injured"`
}

// WeekNumbers returns the numeric week keys in ascending order. Keys that
// are not integers are skipped.
func (d *YearDocument) WeekNumbers() []int {
	weeks := make([]int, 0, len(d.Weeks))
	for key := range d.Weeks {
		w, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		weeks = append(weeks, w)
	}
	slices.Sort(weeks)
	return weeks
}

func (d *YearDocument) HasWeek(week int) bool {
	_, ok := d.Weeks[strconv.Itoa(week)]
	return ok
}

func (d *YearDocument) Matchups(week int) []Matchup {
	return d.Weeks[strconv.Itoa(week)]
}

// Matchup returns the matchup at index in the given week.
func (d *YearDocument) Matchup(week, index int) (Matchup, bool) {
	matchups := d.Matchups(week)
	if index < 0 || index >= len(matchups) {
		return Matchup{}, false
	}
	return matchups[index], true
}

// InitialWeek is the week shown when the year is first opened: the declared
// current week when it exists in Weeks, otherwise the latest week.
func (d *YearDocument) InitialWeek() int {
	if d.CurrentWeek > 0 && d.HasWeek(d.CurrentWeek) {
		return d.CurrentWeek
	}
	weeks := d.WeekNumbers()
	if len(weeks) == 0 {
		return 0
	}
	return weeks[len(weeks)-1]
}
