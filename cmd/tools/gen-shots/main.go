// Command gen-shots generates synthetic league CSV fixtures for local
// development. Roughly one row in twenty gets a missing categorical
// value and one in forty a missing coordinate, to exercise the
// normalization and plottability paths.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/pitchlab/shotmap/internal/shots"
)

var situations = []string{"Open Play", "Free Kick", "Corner", "Penalty", "Counter"}
var bodyParts = []string{"Right Foot", "Left Foot", "Head", "Other"}
var results = []string{"Goal", "Missed Shot", "Blocked Shot", "Saved Shot", "Shot On Post"}

func main() {
	outDir := flag.String("o", "testdata", "output directory")
	perLeague := flag.Int("n", 500, "shots per league")
	seed := flag.Int64("seed", 1, "rng seed")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}
	rng := rand.New(rand.NewSource(*seed))

	for league, file := range shots.DefaultLeagueFiles {
		path := filepath.Join(*outDir, file)
		if err := writeLeague(path, league, *perLeague, rng); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		log.Printf("✓ Created: %s (%d shots)", path, *perLeague)
	}
}

func writeLeague(path, league string, n int, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"team", "player", "game", "situation", "body_part", "result", "location_x", "location_y", "xg"}); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		home := rng.Intn(20)
		away := rng.Intn(20)
		team := fmt.Sprintf("%s Team %02d", shortName(league), home)
		row := []string{
			team,
			fmt.Sprintf("Player %02d-%02d", home, rng.Intn(25)),
			fmt.Sprintf("%s Team %02d vs %s Team %02d", shortName(league), home, shortName(league), away),
			situations[rng.Intn(len(situations))],
			bodyParts[rng.Intn(len(bodyParts))],
			results[rng.Intn(len(results))],
			fmt.Sprintf("%.4f", 0.6+0.4*rng.Float64()), // shots cluster in the attacking half
			fmt.Sprintf("%.4f", rng.Float64()),
			fmt.Sprintf("%.4f", 0.01+0.6*rng.Float64()*rng.Float64()),
		}

		if rng.Intn(20) == 0 {
			row[3+rng.Intn(3)] = "" // blank a categorical value
		}
		if rng.Intn(40) == 0 {
			row[6+rng.Intn(3)] = "" // blank a plotting value
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func shortName(league string) string {
	if len(league) >= 3 {
		return league[:3]
	}
	return league
}
