// Command shotmap-export renders a shot map PNG from the league CSV
// files without running the server. Multi-value filters take
// comma-separated lists.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/pitchlab/shotmap/internal/filter"
	"github.com/pitchlab/shotmap/internal/pitch"
	"github.com/pitchlab/shotmap/internal/shots"
)

func main() {
	dataDir := flag.String("data", ".", "directory holding the per-league shot CSV files")
	out := flag.String("o", "shotmap.png", "output path")
	league := flag.String("league", "", "league to render (default: canonical league, else first alphabetically)")
	teams := flag.String("teams", "", "comma-separated teams (or All)")
	players := flag.String("players", "", "comma-separated players")
	games := flag.String("games", "", "comma-separated matches")
	situations := flag.String("situations", "", "comma-separated situations")
	bodyParts := flag.String("body-parts", "", "comma-separated body parts")
	results := flag.String("results", "", "comma-separated results")
	flag.Parse()

	dataset, err := shots.LoadDataset(*dataDir, shots.DefaultLeagueFiles)
	if err != nil {
		log.Fatalf("failed to load shot data: %v", err)
	}

	sel := filter.Selections{
		League:     *league,
		Teams:      splitList(*teams),
		Players:    splitList(*players),
		Games:      splitList(*games),
		Situations: splitList(*situations),
		BodyParts:  splitList(*bodyParts),
		Results:    splitList(*results),
	}
	if sel.League == "" {
		sel.League = filter.DefaultLeague(filter.Leagues(dataset))
	}

	filtered := filter.ApplyPlottable(dataset, sel)
	if len(filtered) == 0 {
		log.Fatal("no shots match the selected filters")
	}

	if err := pitch.SavePNG(*out, filtered, pitch.Title(sel)); err != nil {
		log.Fatalf("failed to render shot map: %v", err)
	}
	log.Printf("✓ Rendered %d shots to %s", len(filtered), *out)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
