// Package testutil provides shared test fixtures and assertion
// helpers: canned shot records, CSV fixture writers, and small HTTP
// assertions.
package testutil

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pitchlab/shotmap/internal/shots"
)

// ShotCSVHeader is the column order used by CSV fixtures.
var ShotCSVHeader = []string{"team", "player", "game", "situation", "body_part", "result", "location_x", "location_y", "xg"}

// F returns a pointer to v, for optional numeric shot fields.
func F(v float64) *float64 { return &v }

// Shot builds a plottable shot with sensible defaults, overridden by
// mutate.
func Shot(league, team, player, result string, mutate ...func(*shots.Shot)) shots.Shot {
	s := shots.Shot{
		League:    league,
		Team:      team,
		Player:    player,
		Game:      team + " vs Rivals",
		Situation: "Open Play",
		BodyPart:  "Right Foot",
		Result:    result,
		LocationX: F(0.85),
		LocationY: F(0.5),
		XG:        F(0.12),
	}
	for _, m := range mutate {
		m(&s)
	}
	return s
}

// WriteShotsCSV writes a CSV fixture with ShotCSVHeader and the given
// rows into dir and returns its path.
func WriteShotsCSV(t *testing.T, dir, name string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ShotCSVHeader); err != nil {
		t.Fatalf("write fixture header: %v", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("write fixture row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush fixture: %v", err)
	}
	return path
}

// AssertStatusCode checks that the response status code matches
// expected.
func AssertStatusCode(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status code = %d, want %d", got, want)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// NewTestRequest creates a test HTTP request.
func NewTestRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// NewTestRecorder creates a test response recorder.
func NewTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
