// Package sqlite provides a single-file ledger and run history for hosts
// without PostgreSQL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Ledger implements port.LedgerStore on SQLite. Money values are stored as
// decimal text.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Ledger, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}
	// One writer at a time; the engine writes sequentially anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(ledgerSchemaSQL + historySchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// ClearAndRecreate drops the ledger table and creates it again, which also
// restarts row references at 1.
func (l *Ledger) ClearAndRecreate(ctx context.Context, _ uuid.UUID) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS ledger_rows"); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, ledgerSchemaSQL); err != nil {
		return err
	}
	return tx.Commit()
}

// AppendRow inserts a snapshot row and returns its reference.
func (l *Ledger) AppendRow(ctx context.Context, row domain.LedgerRow) (domain.RowRef, error) {
	res, err := l.db.ExecContext(ctx, `INSERT INTO ledger_rows
		(run_id, level, account_id, unit_id, parent_campaign_id, kind, display_name,
		 current_budget, spend, conversion_value, roas, profit, tier, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.RunID.String(), string(row.Level), row.AccountID, row.UnitID, row.ParentCampaignID,
		string(row.Kind), row.DisplayName,
		row.CurrentBudget.String(), row.Spend.String(), row.ConversionValue.String(),
		row.ROAS.String(), row.Profit.String(), string(row.Tier), row.Details,
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return domain.RowRef(id), nil
}

// WriteNewBudget stores the computed budget of a row.
func (l *Ledger) WriteNewBudget(ctx context.Context, ref domain.RowRef, value decimal.Decimal) error {
	res, err := l.db.ExecContext(ctx, "UPDATE ledger_rows SET new_budget = ? WHERE ref = ?", value.String(), int64(ref))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("ledger row %d not found", ref)
	}
	return nil
}

// ReadRows returns the current snapshot in append order.
func (l *Ledger) ReadRows(ctx context.Context) ([]domain.LedgerRow, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT ref, run_id, level, account_id, unit_id,
		parent_campaign_id, kind, display_name, current_budget, spend, conversion_value,
		roas, profit, tier, details, new_budget, created_at
		FROM ledger_rows ORDER BY ref`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.LedgerRow
	for rows.Next() {
		var (
			r                                  domain.LedgerRow
			runID, level, kind, tier, created  string
			budget, spend, value, roas, profit string
			newBudget                          sql.NullString
		)
		if err := rows.Scan(&r.Ref, &runID, &level, &r.AccountID, &r.UnitID,
			&r.ParentCampaignID, &kind, &r.DisplayName, &budget, &spend, &value,
			&roas, &profit, &tier, &r.Details, &newBudget, &created); err != nil {
			return nil, err
		}
		if r.RunID, err = uuid.Parse(runID); err != nil {
			return nil, fmt.Errorf("ledger row %d: run id: %w", r.Ref, err)
		}
		r.Level = domain.RowLevel(level)
		r.Kind = domain.UnitKind(kind)
		r.Tier = domain.Tier(tier)
		r.CreatedAt, _ = time.Parse(timeLayout, created)

		for _, f := range []struct {
			raw string
			dst *decimal.Decimal
		}{
			{budget, &r.CurrentBudget},
			{spend, &r.Spend},
			{value, &r.ConversionValue},
			{roas, &r.ROAS},
			{profit, &r.Profit},
		} {
			if *f.dst, err = decimal.NewFromString(f.raw); err != nil {
				return nil, fmt.Errorf("ledger row %d: %w", r.Ref, err)
			}
		}
		if newBudget.Valid {
			nb, err := decimal.NewFromString(newBudget.String)
			if err != nil {
				return nil, fmt.Errorf("ledger row %d: new budget: %w", r.Ref, err)
			}
			r.NewBudget = &nb
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveRun inserts or replaces a run history record.
func (l *Ledger) SaveRun(ctx context.Context, rec domain.RunRecord) error {
	dryRun := 0
	if rec.DryRun {
		dryRun = 1
	}
	_, err := l.db.ExecContext(ctx, `INSERT OR REPLACE INTO runs
		(id, policy, state, dry_run, started_at, finished_at, units_evaluated,
		 changes_applied, changes_failed, amount_moved, total_budget, summary, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), string(rec.Policy), string(rec.State), dryRun,
		rec.StartedAt.UTC().Format(timeLayout), rec.FinishedAt.UTC().Format(timeLayout),
		rec.UnitsEvaluated, rec.ChangesApplied, rec.ChangesFailed,
		rec.AmountMoved.String(), rec.TotalBudget.String(), rec.Summary, rec.Error,
	)
	return err
}

// ListRuns returns the latest run records, newest first.
func (l *Ledger) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	rows, err := l.db.QueryContext(ctx, `SELECT id, policy, state, dry_run, started_at,
		finished_at, units_evaluated, changes_applied, changes_failed, amount_moved,
		total_budget, summary, error
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.RunRecord
	for rows.Next() {
		var (
			rec               domain.RunRecord
			id, policy, state string
			started, finished string
			dryRun            int
			moved, total      string
		)
		if err := rows.Scan(&id, &policy, &state, &dryRun, &started, &finished,
			&rec.UnitsEvaluated, &rec.ChangesApplied, &rec.ChangesFailed,
			&moved, &total, &rec.Summary, &rec.Error); err != nil {
			return nil, err
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("run %s: %w", id, err)
		}
		rec.Policy = domain.Policy(policy)
		rec.State = domain.RunState(state)
		rec.DryRun = dryRun == 1
		rec.StartedAt, _ = time.Parse(timeLayout, started)
		rec.FinishedAt, _ = time.Parse(timeLayout, finished)
		if rec.AmountMoved, err = decimal.NewFromString(moved); err != nil {
			return nil, fmt.Errorf("run %s: amount moved: %w", id, err)
		}
		if rec.TotalBudget, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("run %s: total budget: %w", id, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
