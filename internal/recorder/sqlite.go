package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"StockScout/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the scanner writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			total_budget    REAL,
			take_profit_pct REAL,
			stop_loss_pct   REAL,
			requested_n     INTEGER,
			picks_count     INTEGER,
			dropped_count   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scans(timestamp)`,

		`CREATE TABLE IF NOT EXISTS scan_picks (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id           INTEGER NOT NULL,
			rank              INTEGER,
			symbol            TEXT,
			score             REAL,
			rsi               REAL,
			last_price        REAL,
			allocated_budget  REAL,
			share_count       REAL,
			take_profit_price REAL,
			stop_loss_price   REAL,
			FOREIGN KEY(scan_id) REFERENCES scans(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_picks_scan ON scan_picks(scan_id)`,

		`CREATE TABLE IF NOT EXISTS scan_drops (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id INTEGER NOT NULL,
			symbol  TEXT,
			reason  TEXT,
			FOREIGN KEY(scan_id) REFERENCES scans(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_drops_scan ON scan_drops(scan_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan writes one scan with its picks and dropped symbols.
func (r *SQLiteRecorder) RecordScan(res *model.ScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin scan tx: %w", err)
	}
	defer tx.Rollback()

	var budget, tpPct, slPct float64
	var picks []model.Pick
	if res.Plan != nil {
		budget = res.Plan.TotalBudget
		tpPct = res.Plan.TakeProfitPct
		slPct = res.Plan.StopLossPct
		picks = res.Plan.Picks
	}

	scannedAt := res.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = time.Now()
	}

	result, err := tx.Exec(`INSERT INTO scans
		(timestamp, total_budget, take_profit_pct, stop_loss_pct, requested_n, picks_count, dropped_count)
		VALUES (?,?,?,?,?,?,?)`,
		scannedAt.Unix(), budget, tpPct, slPct,
		res.RequestedN, len(picks), len(res.Dropped),
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	scanID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("scan id: %w", err)
	}

	for i, p := range picks {
		if _, err := tx.Exec(`INSERT INTO scan_picks
			(scan_id, rank, symbol, score, rsi, last_price, allocated_budget, share_count, take_profit_price, stop_loss_price)
			VALUES (?,?,?,?,?,?,?,?,?,?)`,
			scanID, i+1, p.Symbol, p.Score, p.RSI14, p.LastPrice,
			p.AllocatedBudget, p.ShareCount, p.TakeProfitPrice, p.StopLossPrice,
		); err != nil {
			return fmt.Errorf("insert pick %s: %w", p.Symbol, err)
		}
	}

	for _, d := range res.Dropped {
		if _, err := tx.Exec(`INSERT INTO scan_drops (scan_id, symbol, reason) VALUES (?,?,?)`,
			scanID, d.Symbol, d.Reason,
		); err != nil {
			return fmt.Errorf("insert drop %s: %w", d.Symbol, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
