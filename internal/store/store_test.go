package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchlab/shotmap/internal/shots"
	"github.com/pitchlab/shotmap/internal/store"
	"github.com/pitchlab/shotmap/internal/testutil"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenRunsMigrations(t *testing.T) {
	s := openTestStore(t)

	version, dirty, err := s.MigrateVersion()
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(2), version)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReplaceAndLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)

	recs := []shots.Shot{
		testutil.Shot("ENG-Premier League", "Arsenal", "Saka", "Goal"),
		testutil.Shot("ESP-La Liga", "Barcelona", "Yamal", "Saved Shot", func(rec *shots.Shot) {
			rec.XG = nil // unplottable rows are stored too
		}),
	}
	require.NoError(t, s.Replace(recs))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, recs, got)
	assert.Nil(t, got[1].XG)
}

func TestReplaceSwapsSnapshot(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Replace([]shots.Shot{
		testutil.Shot("ENG-Premier League", "Arsenal", "Saka", "Goal"),
		testutil.Shot("ENG-Premier League", "Chelsea", "Palmer", "Goal"),
	}))
	require.NoError(t, s.Replace([]shots.Shot{
		testutil.Shot("ITA-Serie A", "Inter", "Martinez", "Missed Shot"),
	}))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	counts, err := s.CountByLeague()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ITA-Serie A": 1}, counts)
}

func TestCountByLeague(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Replace([]shots.Shot{
		testutil.Shot("ENG-Premier League", "Arsenal", "Saka", "Goal"),
		testutil.Shot("ENG-Premier League", "Chelsea", "Palmer", "Goal"),
		testutil.Shot("ESP-La Liga", "Barcelona", "Yamal", "Goal"),
	}))

	counts, err := s.CountByLeague()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"ENG-Premier League": 2,
		"ESP-La Liga":        1,
	}, counts)
}
