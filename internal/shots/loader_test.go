package shots_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pitchlab/shotmap/internal/shots"
	"github.com/pitchlab/shotmap/internal/testutil"
)

func TestLoadLeagueMissingFile(t *testing.T) {
	_, err := shots.LoadLeague("/nonexistent/epl_shots.csv", "ENG-Premier League")
	testutil.AssertError(t, err)

	var missing *shots.MissingSourceError
	if !errors.As(err, &missing) {
		t.Fatalf("error type = %T, want *MissingSourceError", err)
	}
	if missing.League != "ENG-Premier League" {
		t.Errorf("missing league = %q, want ENG-Premier League", missing.League)
	}
	if !strings.Contains(err.Error(), "epl_shots.csv") {
		t.Errorf("error %q does not name the missing file", err)
	}
}

func TestLoadAllFailsFast(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteShotsCSV(t, dir, "epl_shots.csv", [][]string{
		{"Arsenal", "Saka", "Arsenal vs Spurs", "Open Play", "Right Foot", "Goal", "0.9", "0.5", "0.3"},
	})

	files := map[string]string{
		"ENG-Premier League": "epl_shots.csv",
		"ESP-La Liga":        "laliga_shots.csv", // not written
	}

	_, err := shots.LoadAll(dir, files)
	testutil.AssertError(t, err)

	var missing *shots.MissingSourceError
	if !errors.As(err, &missing) {
		t.Fatalf("error type = %T, want *MissingSourceError", err)
	}
	if missing.League != "ESP-La Liga" {
		t.Errorf("missing league = %q, want ESP-La Liga", missing.League)
	}
}

func TestLoadLeagueTagsRows(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteShotsCSV(t, dir, "ita_shots.csv", [][]string{
		{"Inter", "Martinez", "Inter vs Milan", "Counter", "Left Foot", "Saved Shot", "0.88", "0.44", "0.21"},
		{"Milan", "Leao", "Inter vs Milan", "Open Play", "Right Foot", "Missed Shot", "0.91", "0.6", "0.08"},
	})

	recs, err := shots.LoadLeague(path, "ITA-Serie A")
	testutil.AssertNoError(t, err)

	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}
	for i, rec := range recs {
		if rec.League != "ITA-Serie A" {
			t.Errorf("recs[%d].League = %q, want ITA-Serie A", i, rec.League)
		}
	}

	want := shots.Shot{
		League:    "ITA-Serie A",
		Team:      "Inter",
		Player:    "Martinez",
		Game:      "Inter vs Milan",
		Situation: "Counter",
		BodyPart:  "Left Foot",
		Result:    "Saved Shot",
		LocationX: testutil.F(0.88),
		LocationY: testutil.F(0.44),
		XG:        testutil.F(0.21),
	}
	if diff := cmp.Diff(want, recs[0]); diff != "" {
		t.Errorf("first record mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSVMissingColumnAndBadValues(t *testing.T) {
	// No xg column at all, one blank result, one unparseable x.
	csvData := "team,player,game,situation,body_part,result,location_x,location_y\n" +
		"Lyon,Lacazette,Lyon vs PSG,Open Play,Head,,0.8,0.4\n" +
		"PSG,Dembele,Lyon vs PSG,Corner,Right Foot,Goal,oops,0.3\n"

	recs, err := shots.ReadCSV(strings.NewReader(csvData), "FRA-Ligue 1")
	testutil.AssertNoError(t, err)

	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}
	if recs[0].XG != nil || recs[1].XG != nil {
		t.Error("missing xg column should yield nil XG for every row")
	}
	if recs[0].Result != "" {
		t.Errorf("blank result = %q, want empty before normalization", recs[0].Result)
	}
	if recs[1].LocationX != nil {
		t.Error("unparseable location_x should yield nil, not an error")
	}
	if recs[1].LocationY == nil || *recs[1].LocationY != 0.3 {
		t.Error("valid location_y should survive a bad sibling value")
	}
}

func TestReadCSVColumnOrderIndependent(t *testing.T) {
	csvData := "xg,result,team,location_y,location_x,player,game,situation,body_part\n" +
		"0.5,Goal,Bayern,0.45,0.92,Kane,Bayern vs BVB,Penalty,Right Foot\n"

	recs, err := shots.ReadCSV(strings.NewReader(csvData), "GER-Bundesliga")
	testutil.AssertNoError(t, err)

	if len(recs) != 1 {
		t.Fatalf("len(recs) = %d, want 1", len(recs))
	}
	rec := recs[0]
	if rec.Team != "Bayern" || rec.Player != "Kane" || *rec.XG != 0.5 || *rec.LocationX != 0.92 {
		t.Errorf("reordered columns parsed wrong: %+v", rec)
	}
}

func TestMergePreservesRowCountAndOrder(t *testing.T) {
	byLeague := map[string][]shots.Shot{
		"ITA-Serie A":        {testutil.Shot("ITA-Serie A", "Inter", "Martinez", "Goal")},
		"ENG-Premier League": {testutil.Shot("ENG-Premier League", "Arsenal", "Saka", "Goal"), testutil.Shot("ENG-Premier League", "Chelsea", "Palmer", "Saved Shot")},
	}

	merged := shots.Merge(byLeague)
	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	// Alphabetical league order keeps merges deterministic.
	if merged[0].League != "ENG-Premier League" || merged[2].League != "ITA-Serie A" {
		t.Errorf("merge order wrong: %q, %q, %q", merged[0].League, merged[1].League, merged[2].League)
	}
}

func TestLoadDatasetNormalizes(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteShotsCSV(t, dir, "epl_shots.csv", [][]string{
		{"", "Saka", "Arsenal vs Spurs", "", "Right Foot", "Goal", "0.9", "0.5", "0.3"},
	})

	dataset, err := shots.LoadDataset(dir, map[string]string{"ENG-Premier League": "epl_shots.csv"})
	testutil.AssertNoError(t, err)

	if len(dataset) != 1 {
		t.Fatalf("len(dataset) = %d, want 1", len(dataset))
	}
	if dataset[0].Team != shots.Unknown || dataset[0].Situation != shots.Unknown {
		t.Errorf("blank categoricals not normalized: %+v", dataset[0])
	}
}
