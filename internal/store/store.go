// Package store persists finished reports in SQLite: one row per analysis,
// one row per finding. It is populated from the Report shape by the CLI;
// the analysis core never reads or writes it.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mlefebvre/contraudit/internal/schema"
)

// Store wraps the analyses database.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) initSchema() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS analyses (
		id         TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		model      TEXT NOT NULL,
		score      INTEGER NOT NULL,
		partial    INTEGER NOT NULL,
		summary    TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS findings (
		id             TEXT PRIMARY KEY,
		analysis_id    TEXT NOT NULL REFERENCES analyses(id) ON DELETE CASCADE,
		requirement_id TEXT NOT NULL,
		name           TEXT NOT NULL,
		reference      TEXT,
		section        TEXT,
		criticality    TEXT,
		status         TEXT NOT NULL,
		comment        TEXT,
		found_clause   TEXT,
		recommendation TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_findings_analysis ON findings(analysis_id);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// Save inserts a report and its findings in one transaction and returns
// the generated analysis id.
func (s *Store) Save(rep *schema.Report) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	analysisID := uuid.NewString()
	partial := 0
	if rep.Partial {
		partial = 1
	}

	if _, err := tx.Exec(
		`INSERT INTO analyses (id, created_at, model, score, partial, summary) VALUES (?, ?, ?, ?, ?, ?)`,
		analysisID, rep.CreatedAt.UTC(), rep.Model, rep.OverallScore, partial, rep.Summary,
	); err != nil {
		return "", fmt.Errorf("inserting analysis: %w", err)
	}

	insertFinding, err := tx.Prepare(
		`INSERT INTO findings
		 (id, analysis_id, requirement_id, name, reference, section, criticality, status, comment, found_clause, recommendation)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing finding insert: %w", err)
	}
	defer insertFinding.Close()

	for _, f := range rep.Findings {
		if _, err := insertFinding.Exec(
			uuid.NewString(), analysisID, f.RequirementID, f.Name, f.Reference,
			f.Section, f.Criticality, string(f.Status), f.Comment, f.FoundClause, f.Recommendation,
		); err != nil {
			return "", fmt.Errorf("inserting finding %s: %w", f.RequirementID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return analysisID, nil
}

// AnalysisRow is one line of the analyses listing.
type AnalysisRow struct {
	ID        string
	CreatedAt time.Time
	Model     string
	Score     int
	Partial   bool
}

// ListAnalyses returns the most recent analyses, newest first.
func (s *Store) ListAnalyses(limit int) ([]AnalysisRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, model, score, partial FROM analyses ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	var out []AnalysisRow
	for rows.Next() {
		var r AnalysisRow
		var partial int
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Model, &r.Score, &partial); err != nil {
			return nil, fmt.Errorf("scanning analysis row: %w", err)
		}
		r.Partial = partial != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetAnalysis reconstructs a stored report, findings included.
func (s *Store) GetAnalysis(id string) (*schema.Report, error) {
	rep := &schema.Report{Tool: "contraudit"}
	var partial int
	err := s.db.QueryRow(
		`SELECT created_at, model, score, partial, summary FROM analyses WHERE id = ?`, id,
	).Scan(&rep.CreatedAt, &rep.Model, &rep.OverallScore, &partial, &rep.Summary)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying analysis: %w", err)
	}
	rep.Partial = partial != 0

	rows, err := s.db.Query(
		`SELECT requirement_id, name, reference, section, criticality, status, comment, found_clause, recommendation
		 FROM findings WHERE analysis_id = ? ORDER BY rowid`, id)
	if err != nil {
		return nil, fmt.Errorf("querying findings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f schema.Finding
		var status string
		if err := rows.Scan(&f.RequirementID, &f.Name, &f.Reference, &f.Section,
			&f.Criticality, &status, &f.Comment, &f.FoundClause, &f.Recommendation); err != nil {
			return nil, fmt.Errorf("scanning finding row: %w", err)
		}
		f.Status = schema.FindingStatus(status)
		rep.Findings = append(rep.Findings, f)
	}
	return rep, rows.Err()
}
