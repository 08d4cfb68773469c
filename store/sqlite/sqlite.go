/*
Package sqlite persists simulation results to a SQLite file.

PURPOSE:
  An alternative output sink to the Excel workbook: each run's three
  tables land in a queryable database, keyed by run ID. The tables are
  append-only output artifacts; the simulator itself never reads them
  back (runs share no state).

KEY TABLES:
  runs:            One row per run (model, window, created_at)
  monthly_records: The monthly table, FK to runs
  weekly_records:  The weekly table, FK to runs
  daily_records:   The daily table, FK to runs

VALUES:
  Decimal quantities are stored as TEXT (exact string form) so nothing
  is lost to float conversion; dates as YYYY-MM-DD.

WAL MODE:
  Opened with WAL journaling, same as a long-lived store would be.

USAGE:
  db, err := sqlite.New("./results.db")
  if err != nil { ... }
  defer db.Close()
  err = db.SaveRun(ctx, result)
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rakewell/cashrake/sim"
)

const dateLayout = "2006-01-02"

// Store writes simulation results to SQLite.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the results database at dbPath.
// Use ":memory:" for tests.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		growth_model TEXT NOT NULL,
		start_date TEXT NOT NULL,
		months INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS monthly_records (
		run_id TEXT NOT NULL REFERENCES runs(id),
		month_index INTEGER NOT NULL,
		month_start TEXT NOT NULL,
		growth_param TEXT NOT NULL,
		retained_players TEXT NOT NULL,
		new_players TEXT NOT NULL,
		total_players TEXT NOT NULL,
		deposits TEXT NOT NULL,
		lifetime_deposits TEXT NOT NULL,
		lifetime_cap TEXT NOT NULL,
		remaining_cap_before TEXT NOT NULL,
		expected_cashback TEXT NOT NULL,
		expected_rakeback TEXT NOT NULL,
		expected_total_cashrake TEXT NOT NULL,
		actual_cashrake_paid TEXT NOT NULL,
		lifetime_cap_used TEXT NOT NULL,
		remaining_cap_after TEXT NOT NULL,
		total_wagering TEXT NOT NULL,
		gross_revenue TEXT NOT NULL,
		acquisition_cost TEXT NOT NULL,
		net_profit TEXT NOT NULL,
		PRIMARY KEY (run_id, month_index)
	);

	CREATE TABLE IF NOT EXISTS weekly_records (
		run_id TEXT NOT NULL REFERENCES runs(id),
		week_start TEXT NOT NULL,
		days INTEGER NOT NULL,
		players TEXT NOT NULL,
		deposits TEXT NOT NULL,
		total_wagering TEXT NOT NULL,
		gross_revenue TEXT NOT NULL,
		expected_cashback TEXT NOT NULL,
		expected_rakeback TEXT NOT NULL,
		expected_total_cashrake TEXT NOT NULL,
		actual_cashrake_paid TEXT NOT NULL,
		acquisition_cost TEXT NOT NULL,
		net_profit TEXT NOT NULL,
		PRIMARY KEY (run_id, week_start)
	);

	CREATE TABLE IF NOT EXISTS daily_records (
		run_id TEXT NOT NULL REFERENCES runs(id),
		date TEXT NOT NULL,
		month_index INTEGER NOT NULL,
		players TEXT NOT NULL,
		deposits TEXT NOT NULL,
		total_wagering TEXT NOT NULL,
		gross_revenue TEXT NOT NULL,
		expected_cashback TEXT NOT NULL,
		expected_rakeback TEXT NOT NULL,
		expected_total_cashrake TEXT NOT NULL,
		actual_cashrake_paid TEXT NOT NULL,
		acquisition_cost TEXT NOT NULL,
		net_profit TEXT NOT NULL,
		PRIMARY KEY (run_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_daily_run_month ON daily_records(run_id, month_index);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RUN PERSISTENCE
// =============================================================================

// SaveRun writes all three tables of a result atomically.
func (s *Store) SaveRun(ctx context.Context, res *sim.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, growth_model, start_date, months, created_at) VALUES (?, ?, ?, ?, ?)`,
		res.RunID, string(res.Model), res.Config.StartDate.Format(dateLayout),
		res.Config.Months, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, m := range res.Monthly {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO monthly_records (
				run_id, month_index, month_start, growth_param,
				retained_players, new_players, total_players,
				deposits, lifetime_deposits, lifetime_cap, remaining_cap_before,
				expected_cashback, expected_rakeback, expected_total_cashrake,
				actual_cashrake_paid, lifetime_cap_used, remaining_cap_after,
				total_wagering, gross_revenue, acquisition_cost, net_profit
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			res.RunID, m.MonthIndex, m.MonthStart.Format(dateLayout), m.GrowthParam.String(),
			m.RetainedPlayers.String(), m.NewPlayers.String(), m.TotalPlayers.String(),
			m.Deposits.String(), m.LifetimeDeposits.String(), m.LifetimeCap.String(), m.RemainingCapBefore.String(),
			m.ExpectedCashback.String(), m.ExpectedRakeback.String(), m.ExpectedTotalCashrake.String(),
			m.ActualCashrakePaid.String(), m.LifetimeCapUsed.String(), m.RemainingCapAfter.String(),
			m.TotalWagering.String(), m.GrossRevenue.String(), m.AcquisitionCost.String(), m.NetProfit.String())
		if err != nil {
			return fmt.Errorf("insert monthly record %d: %w", m.MonthIndex, err)
		}
	}

	for _, w := range res.Weekly {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO weekly_records (
				run_id, week_start, days,
				players, deposits, total_wagering, gross_revenue,
				expected_cashback, expected_rakeback, expected_total_cashrake,
				actual_cashrake_paid, acquisition_cost, net_profit
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			res.RunID, w.WeekStart.Format(dateLayout), w.Days,
			w.Players.String(), w.Deposits.String(), w.TotalWagering.String(), w.GrossRevenue.String(),
			w.ExpectedCashback.String(), w.ExpectedRakeback.String(), w.ExpectedTotalCashrake.String(),
			w.ActualCashrakePaid.String(), w.AcquisitionCost.String(), w.NetProfit.String())
		if err != nil {
			return fmt.Errorf("insert weekly record %s: %w", w.WeekStart.Format(dateLayout), err)
		}
	}

	for _, d := range res.Daily {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO daily_records (
				run_id, date, month_index,
				players, deposits, total_wagering, gross_revenue,
				expected_cashback, expected_rakeback, expected_total_cashrake,
				actual_cashrake_paid, acquisition_cost, net_profit
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			res.RunID, d.Date.Format(dateLayout), d.MonthIndex,
			d.Players.String(), d.Deposits.String(), d.TotalWagering.String(), d.GrossRevenue.String(),
			d.ExpectedCashback.String(), d.ExpectedRakeback.String(), d.ExpectedTotalCashrake.String(),
			d.ActualCashrakePaid.String(), d.AcquisitionCost.String(), d.NetProfit.String())
		if err != nil {
			return fmt.Errorf("insert daily record %s: %w", d.Date.Format(dateLayout), err)
		}
	}

	return tx.Commit()
}

// =============================================================================
// QUERIES
// =============================================================================

// RunSummary identifies a persisted run.
type RunSummary struct {
	ID          string
	GrowthModel string
	StartDate   string
	Months      int
	CreatedAt   string
}

// ListRuns returns persisted runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, growth_model, start_date, months, created_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.GrowthModel, &r.StartDate, &r.Months, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// CountRecords returns the row counts of one run's three tables.
func (s *Store) CountRecords(ctx context.Context, runID string) (monthly, weekly, daily int, err error) {
	count := func(table string) (int, error) {
		var n int
		err := s.db.QueryRowContext(ctx,
			fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE run_id = ?`, table), runID).Scan(&n)
		return n, err
	}
	if monthly, err = count("monthly_records"); err != nil {
		return
	}
	if weekly, err = count("weekly_records"); err != nil {
		return
	}
	daily, err = count("daily_records")
	return
}
