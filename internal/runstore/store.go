// Package runstore persists balance-run results to SQLite so regressions
// across balance changes can be compared over time.
package runstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"fromagerie/internal/sim"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	played_at TEXT NOT NULL,
	playstyle TEXT NOT NULL,
	seed INTEGER NOT NULL,
	months_played INTEGER NOT NULL,
	outcome TEXT NOT NULL,
	final_bank INTEGER NOT NULL,
	bank_at_deadline INTEGER NOT NULL,
	owns_building INTEGER NOT NULL,
	burnout_count INTEGER NOT NULL,
	firings TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_playstyle ON runs(playstyle, played_at);
`

// Run is one persisted playthrough result.
type Run struct {
	ID             int64         `json:"id"`
	PlayedAt       time.Time     `json:"played_at"`
	Playstyle      sim.Playstyle `json:"playstyle"`
	Seed           int64         `json:"seed"`
	MonthsPlayed   int           `json:"months_played"`
	Outcome        sim.Outcome   `json:"outcome"`
	FinalBank      int           `json:"final_bank"`
	BankAtDeadline int           `json:"bank_at_deadline"`
	OwnsBuilding   bool          `json:"owns_building"`
	BurnoutCount   int           `json:"burnout_count"`
	FiringsJSON    string        `json:"firings_json"`
}

type Store struct {
	db *sql.DB
}

// Open creates the database file (and its directory) if needed and
// applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create runstore directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open runstore: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply runstore schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveRun records one playthrough.
func (s *Store) SaveRun(ctx context.Context, style sim.Playstyle, seed int64, report sim.RunReport) (int64, error) {
	firings, err := json.Marshal(report.Firings)
	if err != nil {
		return 0, fmt.Errorf("marshal firings: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (played_at, playstyle, seed, months_played, outcome,
			final_bank, bank_at_deadline, owns_building, burnout_count, firings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		string(style),
		seed,
		report.MonthsPlayed,
		string(report.Outcome),
		report.Final.Bank,
		report.BankAtDeadline,
		boolInt(report.Final.OwnsBuilding),
		report.Final.BurnoutCount,
		string(firings),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// ListRuns returns the most recent runs for a playstyle, newest first.
// An empty playstyle lists across all of them.
func (s *Store) ListRuns(ctx context.Context, style sim.Playstyle, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, played_at, playstyle, seed, months_played, outcome,
		final_bank, bank_at_deadline, owns_building, burnout_count, firings
		FROM runs`
	args := []any{}
	if style != "" {
		query += ` WHERE playstyle = ?`
		args = append(args, string(style))
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var playedAt, style, outcome string
		var owns int
		if err := rows.Scan(&r.ID, &playedAt, &style, &r.Seed, &r.MonthsPlayed, &outcome,
			&r.FinalBank, &r.BankAtDeadline, &owns, &r.BurnoutCount, &r.FiringsJSON); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.PlayedAt, _ = time.Parse(time.RFC3339, playedAt)
		r.Playstyle = sim.Playstyle(style)
		r.Outcome = sim.Outcome(outcome)
		r.OwnsBuilding = owns != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
