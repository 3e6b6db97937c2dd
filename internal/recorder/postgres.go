package recorder

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// PostgresRecorder persists scan history to Postgres. Suited to multi-host
// deployments where SQLite's single-file store does not fit.
type PostgresRecorder struct {
	db *sqlx.DB
}

// NewPostgresRecorder connects to Postgres and runs migrations.
func NewPostgresRecorder(dsn string) (*PostgresRecorder, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	r := &PostgresRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Msg("postgres recorder connected")
	return r, nil
}

func (r *PostgresRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id              TEXT PRIMARY KEY,
			ts              TIMESTAMPTZ NOT NULL,
			scanned_count   INTEGER,
			candidate_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_runs_ts ON scan_runs(ts)`,

		`CREATE TABLE IF NOT EXISTS scan_results (
			id              BIGSERIAL PRIMARY KEY,
			run_id          TEXT NOT NULL REFERENCES scan_runs(id),
			symbol          TEXT NOT NULL,
			price           DOUBLE PRECISION,
			change_pct      DOUBLE PRECISION,
			rsi             DOUBLE PRECISION,
			atr             DOUBLE PRECISION,
			atr_pct         DOUBLE PRECISION,
			z_score         DOUBLE PRECISION,
			gap_pct         DOUBLE PRECISION,
			rvol            DOUBLE PRECISION,
			dollar_volume_m DOUBLE PRECISION,
			inside_bar      BOOLEAN,
			nr7             BOOLEAN,
			trend           TEXT,
			score           DOUBLE PRECISION
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

func (r *PostgresRecorder) RecordScan(run *ScanRun) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO scan_runs (id, ts, scanned_count, candidate_count)
		VALUES ($1,$2,$3,$4)`,
		run.ID, run.Timestamp, run.ScannedCount, len(run.Candidates),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, rec := range run.Candidates {
		if _, err := tx.Exec(`INSERT INTO scan_results
			(run_id, symbol, price, change_pct, rsi, atr, atr_pct, z_score, gap_pct,
			 rvol, dollar_volume_m, inside_bar, nr7, trend, score)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
			run.ID, rec.Symbol, rec.Price, rec.ChangePct,
			rec.RSI, rec.ATR, rec.ATRPct, rec.ZScore, rec.GapPct,
			rec.RVOL, rec.DollarVolM, rec.InsideBar, rec.NR7, rec.Trend, rec.Score,
		); err != nil {
			return fmt.Errorf("insert result %s: %w", rec.Symbol, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRecorder) Close() error {
	log.Info().Msg("closing postgres recorder")
	return r.db.Close()
}
