package shots_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pitchlab/shotmap/internal/shots"
	"github.com/pitchlab/shotmap/internal/testutil"
)

func TestNormalizeFillsSentinel(t *testing.T) {
	recs := []shots.Shot{
		{League: "ENG-Premier League"},
		{League: "ENG-Premier League", Team: "Arsenal", Player: "Saka", Game: "g", Situation: "Open Play", BodyPart: "Head", Result: "Goal"},
	}

	shots.Normalize(recs)

	want := shots.Shot{
		League:    "ENG-Premier League",
		Team:      shots.Unknown,
		Player:    shots.Unknown,
		Game:      shots.Unknown,
		Situation: shots.Unknown,
		BodyPart:  shots.Unknown,
		Result:    shots.Unknown,
	}
	if diff := cmp.Diff(want, recs[0]); diff != "" {
		t.Errorf("normalized empty record mismatch (-want +got):\n%s", diff)
	}
	if recs[1].Team != "Arsenal" || recs[1].Result != "Goal" {
		t.Errorf("populated record was altered: %+v", recs[1])
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	recs := []shots.Shot{{League: "ESP-La Liga"}}
	once := shots.Normalize(recs)
	snapshot := append([]shots.Shot(nil), once...)
	twice := shots.Normalize(once)

	if diff := cmp.Diff(snapshot, twice); diff != "" {
		t.Errorf("second normalization changed data (-once +twice):\n%s", diff)
	}
}

func TestPlottable(t *testing.T) {
	tests := []struct {
		name string
		shot shots.Shot
		want bool
	}{
		{"complete", testutil.Shot("L", "T", "P", "Goal"), true},
		{"missing x", testutil.Shot("L", "T", "P", "Goal", func(s *shots.Shot) { s.LocationX = nil }), false},
		{"missing y", testutil.Shot("L", "T", "P", "Goal", func(s *shots.Shot) { s.LocationY = nil }), false},
		{"missing xg", testutil.Shot("L", "T", "P", "Goal", func(s *shots.Shot) { s.XG = nil }), false},
		{"missing result", testutil.Shot("L", "T", "P", ""), false},
		{"unknown result still plottable", testutil.Shot("L", "T", "P", shots.Unknown), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shot.Plottable(); got != tt.want {
				t.Errorf("Plottable() = %v, want %v", got, tt.want)
			}
		})
	}
}
