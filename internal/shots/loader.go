package shots

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pitchlab/shotmap/internal/monitoring"
)

// DefaultLeagueFiles maps each configured league to the CSV file that
// holds its shot data, relative to the data directory.
var DefaultLeagueFiles = map[string]string{
	"ENG-Premier League": "epl_shots.csv",
	"ESP-La Liga":        "laliga_shots.csv",
	"FRA-Ligue 1":        "fra_shots.csv",
	"GER-Bundesliga":     "ger_shots.csv",
	"ITA-Serie A":        "ita_shots.csv",
}

// MissingSourceError reports a league whose data file could not be
// found. Loading is all-or-nothing: a single missing source aborts the
// whole load so a league is never silently under-represented.
type MissingSourceError struct {
	League string
	Path   string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("shot data for %s not found: %q", e.League, e.Path)
}

// LoadAll loads every configured league from dir and returns the
// per-league tables keyed by league name. If any source file is absent
// it returns a *MissingSourceError and no data.
func LoadAll(dir string, files map[string]string) (map[string][]Shot, error) {
	byLeague := make(map[string][]Shot, len(files))

	// Sorted league order keeps error reporting deterministic when
	// several files are missing at once.
	leagues := make([]string, 0, len(files))
	for league := range files {
		leagues = append(leagues, league)
	}
	sort.Strings(leagues)

	for _, league := range leagues {
		path := filepath.Join(dir, files[league])
		recs, err := LoadLeague(path, league)
		if err != nil {
			return nil, err
		}
		monitoring.Logf("loaded %d shots for %s from %s", len(recs), league, path)
		byLeague[league] = recs
	}
	return byLeague, nil
}

// LoadLeague reads one league's CSV file and tags every row with the
// given league name.
func LoadLeague(path, league string) ([]Shot, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingSourceError{League: league, Path: path}
		}
		return nil, fmt.Errorf("open %s data: %w", league, err)
	}
	defer f.Close()

	recs, err := ReadCSV(f, league)
	if err != nil {
		return nil, fmt.Errorf("read %s data from %q: %w", league, path, err)
	}
	return recs, nil
}

// ReadCSV parses shot rows from r, tagging each with league. Columns
// are located by header name so source files may carry extra columns or
// order them freely; a column absent from the header yields absent
// values for every row, which Normalize later turns into the Unknown
// sentinel. Unparseable numeric cells become nil rather than failing
// the load.
func ReadCSV(r io.Reader, league string) ([]Shot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	hdr, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := func(name string) int {
		for i, h := range hdr {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	iTeam := idx("team")
	iPlayer := idx("player")
	iGame := idx("game")
	iSituation := idx("situation")
	iBodyPart := idx("body_part")
	iResult := idx("result")
	iLocX := idx("location_x")
	iLocY := idx("location_y")
	iXG := idx("xg")

	field := func(rec []string, i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	numField := func(rec []string, i int) *float64 {
		raw := field(rec, i)
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		return &v
	}

	var recs []Shot
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		recs = append(recs, Shot{
			League:    league,
			Team:      field(rec, iTeam),
			Player:    field(rec, iPlayer),
			Game:      field(rec, iGame),
			Situation: field(rec, iSituation),
			BodyPart:  field(rec, iBodyPart),
			Result:    field(rec, iResult),
			LocationX: numField(rec, iLocX),
			LocationY: numField(rec, iLocY),
			XG:        numField(rec, iXG),
		})
	}
	return recs, nil
}

// Merge concatenates per-league tables into the unified dataset,
// iterating leagues alphabetically so the row order is stable across
// runs. The row count always equals the sum of the inputs.
func Merge(byLeague map[string][]Shot) []Shot {
	leagues := make([]string, 0, len(byLeague))
	total := 0
	for league, recs := range byLeague {
		leagues = append(leagues, league)
		total += len(recs)
	}
	sort.Strings(leagues)

	merged := make([]Shot, 0, total)
	for _, league := range leagues {
		merged = append(merged, byLeague[league]...)
	}
	return merged
}

// LoadDataset is the full load pipeline: read every league, merge, and
// normalize. This is what main and the CLI tools call.
func LoadDataset(dir string, files map[string]string) ([]Shot, error) {
	byLeague, err := LoadAll(dir, files)
	if err != nil {
		return nil, err
	}
	return Normalize(Merge(byLeague)), nil
}
