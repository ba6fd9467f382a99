package pitch

import (
	"strings"

	"github.com/pitchlab/shotmap/internal/filter"
)

// Title assembles the plot title from the active filter stages, one
// clause per constrained stage in cascade order. Unconstrained stages
// (empty selection, or a team selection containing "All") contribute
// nothing.
func Title(sel filter.Selections) string {
	parts := []string{"Shot Map"}
	if sel.League != "" {
		parts = append(parts, "for "+sel.League)
	}
	if len(sel.Teams) > 0 && !containsAll(sel.Teams) {
		parts = append(parts, "("+strings.Join(sel.Teams, ", ")+")")
	}
	if len(sel.Players) > 0 {
		parts = append(parts, "by "+strings.Join(sel.Players, ", "))
	}
	if len(sel.Games) > 0 {
		parts = append(parts, "in "+strings.Join(sel.Games, ", "))
	}
	if len(sel.Situations) > 0 {
		parts = append(parts, "from "+strings.Join(sel.Situations, ", "))
	}
	if len(sel.BodyParts) > 0 {
		parts = append(parts, "with "+strings.Join(sel.BodyParts, ", "))
	}
	if len(sel.Results) > 0 {
		parts = append(parts, "("+strings.Join(sel.Results, ", ")+")")
	}
	return strings.Join(parts, " ")
}

func containsAll(teams []string) bool {
	for _, t := range teams {
		if t == filter.AllTeams {
			return true
		}
	}
	return false
}
