package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read
	// while the scheduler writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id              TEXT PRIMARY KEY,
			timestamp       INTEGER NOT NULL,
			scanned_count   INTEGER,
			candidate_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_runs_ts ON scan_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS scan_results (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id          TEXT NOT NULL,
			symbol          TEXT NOT NULL,
			price           REAL,
			change_pct      REAL,
			rsi             REAL,
			atr             REAL,
			atr_pct         REAL,
			z_score         REAL,
			gap_pct         REAL,
			rvol            REAL,
			dollar_volume_m REAL,
			inside_bar      INTEGER,
			nr7             INTEGER,
			trend           TEXT,
			score           REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_results_run ON scan_results(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_results_symbol ON scan_results(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordScan(run *ScanRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO scan_runs (id, timestamp, scanned_count, candidate_count)
		VALUES (?,?,?,?)`,
		run.ID, run.Timestamp.Unix(), run.ScannedCount, len(run.Candidates),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, rec := range run.Candidates {
		if _, err := tx.Exec(`INSERT INTO scan_results
			(run_id, symbol, price, change_pct, rsi, atr, atr_pct, z_score, gap_pct,
			 rvol, dollar_volume_m, inside_bar, nr7, trend, score)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			run.ID, rec.Symbol, rec.Price, rec.ChangePct,
			rec.RSI, rec.ATR, rec.ATRPct, rec.ZScore, rec.GapPct,
			rec.RVOL, rec.DollarVolM, rec.InsideBar, rec.NR7, rec.Trend, rec.Score,
		); err != nil {
			return fmt.Errorf("insert result %s: %w", rec.Symbol, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
