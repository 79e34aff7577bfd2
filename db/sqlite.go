package db

import (
	"database/sql"
	"os"

	"github.com/jsphweid/fretdex/model"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const createChordsTable = `
	CREATE TABLE chords (
		position INTEGER NOT NULL,
		key TEXT PRIMARY KEY,
		base TEXT NOT NULL,
		value TEXT NOT NULL,
		min_fret INTEGER NOT NULL,
		max_fret INTEGER NOT NULL,
		normalized INTEGER NOT NULL
	);
`

// WriteSQLite replaces the file at path with a SQLite database holding one
// row per entry.
func WriteSQLite(path string, d *Database) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return errors.Wrap(err, "removing existing database")
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer conn.Close()

	if _, err := conn.Exec(createChordsTable); err != nil {
		return errors.Wrap(err, "creating chords table")
	}

	tx, err := conn.Begin()
	if err != nil {
		return errors.Wrap(err, "starting transaction")
	}
	stmt, err := tx.Prepare(`
		INSERT INTO chords (position, key, base, value, min_fret, max_fret, normalized)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "preparing chord statement")
	}
	defer stmt.Close()

	for i, e := range d.Entries() {
		_, err := stmt.Exec(i, e.Key, e.Base, e.Value, e.MinFret, e.MaxFret, e.Normalized)
		if err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "inserting chord %s", e.Key)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing transaction")
	}

	if _, err := conn.Exec(`CREATE INDEX idx_chords_base ON chords(base);`); err != nil {
		return errors.Wrap(err, "creating index on chords")
	}
	return nil
}

// ReadSQLite loads the entries written by WriteSQLite, in their original
// order.
func ReadSQLite(path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	defer conn.Close()

	rows, err := conn.Query(`
		SELECT key, base, value, min_fret, max_fret, normalized
		FROM chords ORDER BY position
	`)
	if err != nil {
		return nil, errors.Wrap(err, "querying chords")
	}
	defer rows.Close()

	var entries []model.ChordEntry
	for rows.Next() {
		var e model.ChordEntry
		if err := rows.Scan(&e.Key, &e.Base, &e.Value, &e.MinFret, &e.MaxFret, &e.Normalized); err != nil {
			return nil, errors.Wrap(err, "scanning chord row")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading chord rows")
	}
	return FromEntries(entries), nil
}
