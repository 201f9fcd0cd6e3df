// Package studydb owns the clinical study schema and the operations against
// it: schema setup, fixed seed data, the read queries, one update and one
// cascading delete. All access goes through a single *sql.DB for the run.
package studydb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// schema creates the three study tables. CHECK constraints mirror the study
// protocol; enforcement is the engine's, not the application's. Cascade
// deletes only fire when foreign_keys is ON (SQLite defaults it off), so
// New applies the PRAGMA before anything else.
const schema = `
	CREATE TABLE IF NOT EXISTS patients (
		patient_id        INTEGER PRIMARY KEY AUTOINCREMENT,
		full_name         TEXT NOT NULL,
		age               INTEGER CHECK(age >= 18 AND age <= 90),
		gender            TEXT CHECK(gender IN ('Male', 'Female', 'Other')),
		enrollment_date   TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS clinical_visits (
		visit_id          INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id        INTEGER NOT NULL,
		visit_date        TEXT NOT NULL,
		systolic_bp       INTEGER,
		diastolic_bp      INTEGER,
		blood_glucose_mmol_l REAL,
		notes             TEXT,
		FOREIGN KEY(patient_id) REFERENCES patients(patient_id) ON DELETE CASCADE
	);
	CREATE TABLE IF NOT EXISTS samples (
		sample_id         INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id        INTEGER NOT NULL,
		collection_date   TEXT NOT NULL,
		sample_type       TEXT CHECK(sample_type IN ('Blood', 'Serum', 'Plasma', 'Urine')),
		storage_location  TEXT,
		FOREIGN KEY(patient_id) REFERENCES patients(patient_id) ON DELETE CASCADE
	);
`

// pragmas applied to every connection-backing database before use.
var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA temp_store=MEMORY",
	"PRAGMA foreign_keys=ON",
}

// New opens (or creates) the database file at path, applies the essential
// PRAGMAs and ensures the study schema exists. Safe to call against an
// already-initialized file: CREATE TABLE IF NOT EXISTS leaves existing
// tables and their data alone.
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection for the whole run. PRAGMAs bind per connection, and the
	// workload is single-writer/single-reader anyway.
	db.SetMaxOpenConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return &DB{db}, nil
}

// Backup snapshots the live database into a new file at path using
// VACUUM INTO. The destination must not already exist.
func (db *DB) Backup(path string) error {
	if _, err := db.Exec("VACUUM INTO ?", path); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	return nil
}

// PatientCount returns the number of patient rows.
func (db *DB) PatientCount() (int, error) {
	return db.count("patients")
}

// VisitCount returns the number of clinical visit rows.
func (db *DB) VisitCount() (int, error) {
	return db.count("clinical_visits")
}

// SampleCount returns the number of sample rows.
func (db *DB) SampleCount() (int, error) {
	return db.count("samples")
}

func (db *DB) count(table string) (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
