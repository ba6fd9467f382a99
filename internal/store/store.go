// Package store persists the merged shot dataset in a sqlite snapshot
// so a process can be restarted and serve the same data without the
// source CSV files, and to back the admin count endpoints.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pitchlab/shotmap/internal/shots"
)

// Store wraps the sqlite handle holding the shots snapshot.
type Store struct {
	*sql.DB
}

// Open opens (or creates) the snapshot database at path and runs any
// pending schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	// Single writer keeps the snapshot import transactional without
	// SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA foreign_keys=ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	s := &Store{db}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Replace swaps the stored snapshot for the given dataset in one
// transaction. The dataset is stored already-normalized; loading it
// back does not need another normalization pass (normalization is
// idempotent anyway).
func (s *Store) Replace(recs []shots.Shot) error {
	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM shots"); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO shots (
		league, team, player, game, situation, body_part, result,
		location_x, location_y, xg
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recs {
		_, err := stmt.Exec(
			rec.League, rec.Team, rec.Player, rec.Game,
			rec.Situation, rec.BodyPart, rec.Result,
			nullFloat(rec.LocationX), nullFloat(rec.LocationY), nullFloat(rec.XG),
		)
		if err != nil {
			return fmt.Errorf("insert shot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot import: %w", err)
	}
	return nil
}

// Load reads the full snapshot back in insertion order.
func (s *Store) Load() ([]shots.Shot, error) {
	rows, err := s.Query(`SELECT
		league, team, player, game, situation, body_part, result,
		location_x, location_y, xg
	FROM shots ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	var recs []shots.Shot
	for rows.Next() {
		var rec shots.Shot
		var x, y, xg sql.NullFloat64
		err := rows.Scan(
			&rec.League, &rec.Team, &rec.Player, &rec.Game,
			&rec.Situation, &rec.BodyPart, &rec.Result,
			&x, &y, &xg,
		)
		if err != nil {
			return nil, fmt.Errorf("scan shot: %w", err)
		}
		rec.LocationX = floatPtr(x)
		rec.LocationY = floatPtr(y)
		rec.XG = floatPtr(xg)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// CountByLeague returns the stored shot count per league.
func (s *Store) CountByLeague() (map[string]int, error) {
	rows, err := s.Query("SELECT league, COUNT(*) FROM shots GROUP BY league")
	if err != nil {
		return nil, fmt.Errorf("count by league: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var league string
		var n int
		if err := rows.Scan(&league, &n); err != nil {
			return nil, err
		}
		counts[league] = n
	}
	return counts, rows.Err()
}

// Count returns the total number of stored shots.
func (s *Store) Count() (int, error) {
	var n int
	err := s.QueryRow("SELECT COUNT(*) FROM shots").Scan(&n)
	return n, err
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
