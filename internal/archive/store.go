// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists fetch runs and their report rows in a local
// SQLite database so past reports can be listed, re-read, and exported
// without re-querying the API.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperscout/pkg/types"
)

const defaultDBPath = "archive/paperscout.db"

// Store manages the run archive SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the archive database at cfg.Path, creating
// the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultDBPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			term TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS report_rows (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			pubmed_id TEXT NOT NULL,
			title TEXT,
			pub_date TEXT,
			authors TEXT,
			affiliations TEXT,
			email TEXT,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_report_rows_pubmed_id ON report_rows(pubmed_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun stores one fetch run and its rows transactionally and returns
// the assigned run ID. Recording an empty run is allowed; it archives the
// fact that the query matched nothing.
func (s *Store) RecordRun(ctx context.Context, term string, rows []types.ReportRow) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (term, created_at) VALUES (?, ?)`,
		term, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO report_rows (run_id, position, pubmed_id, title, pub_date, authors, affiliations, email)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		_, err := stmt.ExecContext(ctx,
			runID, i, row.PubmedID, row.Title, row.PubDate,
			row.CorporateAuthor, row.CompanyAffil, row.Email,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting row for %s: %w", row.PubmedID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns all archived runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]types.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.term, r.created_at, count(rr.run_id)
		 FROM runs r LEFT JOIN report_rows rr ON rr.run_id = r.id
		 GROUP BY r.id ORDER BY r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var run types.Run
		var created string
		if err := rows.Scan(&run.ID, &run.Term, &created, &run.RowCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			run.Timestamp = t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one archived run by ID.
func (s *Store) GetRun(ctx context.Context, runID int64) (types.Run, error) {
	var run types.Run
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT r.id, r.term, r.created_at, count(rr.run_id)
		 FROM runs r LEFT JOIN report_rows rr ON rr.run_id = r.id
		 WHERE r.id = ? GROUP BY r.id`, runID,
	).Scan(&run.ID, &run.Term, &created, &run.RowCount)
	if err == sql.ErrNoRows {
		return types.Run{}, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return types.Run{}, fmt.Errorf("querying run %d: %w", runID, err)
	}
	if t, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
		run.Timestamp = t
	}
	return run, nil
}

// RunRows returns the report rows of one archived run in original order.
func (s *Store) RunRows(ctx context.Context, runID int64) ([]types.ReportRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pubmed_id, title, pub_date, authors, affiliations, email
		 FROM report_rows WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying rows for run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []types.ReportRow
	for rows.Next() {
		var r types.ReportRow
		if err := rows.Scan(&r.PubmedID, &r.Title, &r.PubDate, &r.CorporateAuthor, &r.CompanyAffil, &r.Email); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
