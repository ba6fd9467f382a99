// Package filter implements the dependent filter cascade over the
// unified shot dataset: league, then team, then the five independent
// stages (player, match, situation, body part, result). Each stage's
// option list derives from the data surviving the stages before it, and
// every stage is a pure narrowing of its input.
package filter

import (
	"sort"

	"github.com/pitchlab/shotmap/internal/shots"
)

// DefaultLeagueName is selected on first load when present in the data.
const DefaultLeagueName = "ENG-Premier League"

// AllTeams is the synthetic team choice meaning "no team restriction".
// Its presence anywhere in a team selection defeats any specific picks.
const AllTeams = "All"

// Selections is one complete set of user filter choices. Empty slices
// mean "no restriction from that stage". The zero value selects
// nothing useful; call DefaultLeague to pick a starting league.
type Selections struct {
	League     string   `json:"league"`
	Teams      []string `json:"teams"`
	Players    []string `json:"players"`
	Games      []string `json:"games"`
	Situations []string `json:"situations"`
	BodyParts  []string `json:"body_parts"`
	Results    []string `json:"results"`
}

// Options holds the candidate choices for every stage, computed per the
// cascade's dependency rules: Leagues from the whole dataset, Teams
// from the league subset, and the remaining lists from the league+team
// subset only. Later stages never narrow each other's options.
type Options struct {
	Leagues    []string `json:"leagues"`
	Teams      []string `json:"teams"`
	Players    []string `json:"players"`
	Games      []string `json:"games"`
	Situations []string `json:"situations"`
	BodyParts  []string `json:"body_parts"`
	Results    []string `json:"results"`
}

// Leagues returns the distinct leagues present in the dataset, sorted.
func Leagues(recs []shots.Shot) []string {
	return distinct(recs, func(s shots.Shot) string { return s.League })
}

// DefaultLeague picks the canonical default league when available,
// otherwise the alphabetically first league. Returns "" for an empty
// list.
func DefaultLeague(leagues []string) string {
	if len(leagues) == 0 {
		return ""
	}
	for _, l := range leagues {
		if l == DefaultLeagueName {
			return l
		}
	}
	sorted := append([]string(nil), leagues...)
	sort.Strings(sorted)
	return sorted[0]
}

// OptionsFor computes every stage's candidate choices for the given
// selections. The Teams list always starts with the synthetic "All"
// choice.
func OptionsFor(recs []shots.Shot, sel Selections) Options {
	byLeague := filterLeague(recs, sel.League)
	byTeam := filterTeams(byLeague, sel.Teams)

	teams := distinct(byLeague, func(s shots.Shot) string { return s.Team })

	return Options{
		Leagues:    Leagues(recs),
		Teams:      append([]string{AllTeams}, teams...),
		Players:    distinct(byTeam, func(s shots.Shot) string { return s.Player }),
		Games:      distinct(byTeam, func(s shots.Shot) string { return s.Game }),
		Situations: distinct(byTeam, func(s shots.Shot) string { return s.Situation }),
		BodyParts:  distinct(byTeam, func(s shots.Shot) string { return s.BodyPart }),
		Results:    distinct(byTeam, func(s shots.Shot) string { return s.Result }),
	}
}

// Apply runs the full cascade in stage order and returns the surviving
// rows. The input is never mutated; applying the same selections twice
// yields the same rows.
func Apply(recs []shots.Shot, sel Selections) []shots.Shot {
	out := filterLeague(recs, sel.League)
	out = filterTeams(out, sel.Teams)
	out = filterBy(out, sel.Players, func(s shots.Shot) string { return s.Player })
	out = filterBy(out, sel.Games, func(s shots.Shot) string { return s.Game })
	out = filterBy(out, sel.Situations, func(s shots.Shot) string { return s.Situation })
	out = filterBy(out, sel.BodyParts, func(s shots.Shot) string { return s.BodyPart })
	out = filterBy(out, sel.Results, func(s shots.Shot) string { return s.Result })
	return out
}

// Plottable drops rows the renderer cannot place: missing coordinates,
// missing xG, or missing outcome. This runs unconditionally after the
// cascade, independent of user choices.
func Plottable(recs []shots.Shot) []shots.Shot {
	out := make([]shots.Shot, 0, len(recs))
	for _, s := range recs {
		if s.Plottable() {
			out = append(out, s)
		}
	}
	return out
}

// ApplyPlottable is the full pipeline the renderer consumes: cascade
// then plottability pass.
func ApplyPlottable(recs []shots.Shot, sel Selections) []shots.Shot {
	return Plottable(Apply(recs, sel))
}

func filterLeague(recs []shots.Shot, league string) []shots.Shot {
	if league == "" {
		return recs
	}
	out := make([]shots.Shot, 0, len(recs))
	for _, s := range recs {
		if s.League == league {
			out = append(out, s)
		}
	}
	return out
}

// filterTeams applies the team stage's "All wins" policy: an empty
// selection or any selection containing "All" leaves the input
// unrestricted, regardless of co-selected specific teams.
func filterTeams(recs []shots.Shot, teams []string) []shots.Shot {
	if len(teams) == 0 {
		return recs
	}
	for _, t := range teams {
		if t == AllTeams {
			return recs
		}
	}
	return filterBy(recs, teams, func(s shots.Shot) string { return s.Team })
}

// filterBy keeps rows whose key is a member of want. An empty want
// means no restriction.
func filterBy(recs []shots.Shot, want []string, key func(shots.Shot) string) []shots.Shot {
	if len(want) == 0 {
		return recs
	}
	set := make(map[string]struct{}, len(want))
	for _, w := range want {
		set[w] = struct{}{}
	}
	out := make([]shots.Shot, 0, len(recs))
	for _, s := range recs {
		if _, ok := set[key(s)]; ok {
			out = append(out, s)
		}
	}
	return out
}

// distinct returns the sorted unique non-empty keys of recs.
func distinct(recs []shots.Shot, key func(shots.Shot) string) []string {
	seen := make(map[string]struct{})
	for _, s := range recs {
		k := key(s)
		if k == "" {
			continue
		}
		seen[k] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
