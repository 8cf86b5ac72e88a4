package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockSeer/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
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

	// WAL mode so history can be read while a batch is writing.
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
		`CREATE TABLE IF NOT EXISTS forecast_runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			engine          TEXT NOT NULL,
			window_length   INTEGER,
			test_proportion REAL,
			hidden_units    INTEGER,
			epochs          INTEGER,
			batch_size      INTEGER,
			row_count       INTEGER,
			samples         INTEGER,
			train_size      INTEGER,
			test_size       INTEGER,
			mse             REAL,
			r2              REAL,
			duration_ms     INTEGER,
			chart_path      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON forecast_runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_symbol ON forecast_runs(symbol)`,

		`CREATE TABLE IF NOT EXISTS forecast_points (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    INTEGER NOT NULL,
			idx       INTEGER NOT NULL,
			date      TEXT,
			actual    REAL,
			predicted REAL,
			FOREIGN KEY(run_id) REFERENCES forecast_runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_points_run ON forecast_points(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(run *RunRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`INSERT INTO forecast_runs
		(timestamp, symbol, engine, window_length, test_proportion,
		 hidden_units, epochs, batch_size,
		 row_count, samples, train_size, test_size,
		 mse, r2, duration_ms, chart_path)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), run.Symbol, run.Engine,
		run.WindowLength, run.TestProportion,
		run.HiddenUnits, run.Epochs, run.BatchSize,
		run.Rows, run.Samples, run.TrainSize, run.TestSize,
		run.MSE, run.R2, run.Duration.Milliseconds(), run.ChartPath,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRecorder) RecordPoints(runID int64, res *model.ForecastResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO forecast_points (run_id, idx, date, actual, predicted) VALUES (?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i := range res.Actual {
		if _, err := stmt.Exec(runID, i, res.Dates[i].Format("2006-01-02"), res.Actual[i], res.Predicted[i]); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
