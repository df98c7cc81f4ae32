package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
)

// LedgerRepository implements port.LedgerStore on PostgreSQL. Money columns
// are NUMERIC and travel as text so no precision is lost on the way.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// ClearAndRecreate empties the ledger and resets the row sequence, so row
// references start at 1 for every run.
func (r *LedgerRepository) ClearAndRecreate(ctx context.Context, _ uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `TRUNCATE ledger_rows RESTART IDENTITY`)
	return err
}

// AppendRow inserts a snapshot row and returns its reference.
func (r *LedgerRepository) AppendRow(ctx context.Context, row domain.LedgerRow) (domain.RowRef, error) {
	var ref int64
	err := r.pool.QueryRow(ctx, `
        INSERT INTO ledger_rows (
            run_id, level, account_id, unit_id, parent_campaign_id, kind, display_name,
            current_budget, spend, conversion_value, roas, profit, tier, details
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8::numeric,$9::numeric,$10::numeric,$11::numeric,$12::numeric,$13,$14)
        RETURNING ref`,
		row.RunID,
		string(row.Level),
		row.AccountID,
		row.UnitID,
		row.ParentCampaignID,
		string(row.Kind),
		row.DisplayName,
		row.CurrentBudget.StringFixed(2),
		row.Spend.StringFixed(2),
		row.ConversionValue.StringFixed(2),
		row.ROAS.StringFixed(2),
		row.Profit.StringFixed(2),
		string(row.Tier),
		row.Details,
	).Scan(&ref)
	if err != nil {
		return 0, err
	}
	return domain.RowRef(ref), nil
}

// WriteNewBudget stores the computed budget of a row.
func (r *LedgerRepository) WriteNewBudget(ctx context.Context, ref domain.RowRef, value decimal.Decimal) error {
	tag, err := r.pool.Exec(ctx, `UPDATE ledger_rows SET new_budget = $1::numeric WHERE ref = $2`, value.StringFixed(2), int64(ref))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger row %d not found", ref)
	}
	return nil
}

// ReadRows returns the current snapshot in append order.
func (r *LedgerRepository) ReadRows(ctx context.Context) ([]domain.LedgerRow, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT
            ref,
            run_id,
            level,
            account_id,
            unit_id,
            parent_campaign_id,
            kind,
            display_name,
            current_budget::text,
            spend::text,
            conversion_value::text,
            roas::text,
            profit::text,
            tier,
            details,
            new_budget::text,
            created_at
        FROM ledger_rows
        ORDER BY ref`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerRow, error) {
		var (
			lr                                 domain.LedgerRow
			ref                                int64
			level, kind, tier                  string
			budget, spend, value, roas, profit string
			newBudget                          *string
		)
		err := row.Scan(
			&ref,
			&lr.RunID,
			&level,
			&lr.AccountID,
			&lr.UnitID,
			&lr.ParentCampaignID,
			&kind,
			&lr.DisplayName,
			&budget,
			&spend,
			&value,
			&roas,
			&profit,
			&tier,
			&lr.Details,
			&newBudget,
			&lr.CreatedAt,
		)
		if err != nil {
			return lr, err
		}
		lr.Ref = domain.RowRef(ref)
		lr.Level = domain.RowLevel(level)
		lr.Kind = domain.UnitKind(kind)
		lr.Tier = domain.Tier(tier)
		if err = parseDecimals(
			decimalField{budget, &lr.CurrentBudget},
			decimalField{spend, &lr.Spend},
			decimalField{value, &lr.ConversionValue},
			decimalField{roas, &lr.ROAS},
			decimalField{profit, &lr.Profit},
		); err != nil {
			return lr, fmt.Errorf("ledger row %d: %w", ref, err)
		}
		if newBudget != nil {
			nb, err := decimal.NewFromString(*newBudget)
			if err != nil {
				return lr, fmt.Errorf("ledger row %d: new_budget: %w", ref, err)
			}
			lr.NewBudget = &nb
		}
		return lr, nil
	})
}

// SaveRun upserts a run history record.
func (r *LedgerRepository) SaveRun(ctx context.Context, rec domain.RunRecord) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO runs (
            id, policy, state, dry_run, started_at, finished_at, units_evaluated,
            changes_applied, changes_failed, amount_moved, total_budget, summary, error
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10::numeric,$11::numeric,$12,$13)
        ON CONFLICT (id) DO UPDATE SET
            state = EXCLUDED.state,
            finished_at = EXCLUDED.finished_at,
            units_evaluated = EXCLUDED.units_evaluated,
            changes_applied = EXCLUDED.changes_applied,
            changes_failed = EXCLUDED.changes_failed,
            amount_moved = EXCLUDED.amount_moved,
            total_budget = EXCLUDED.total_budget,
            summary = EXCLUDED.summary,
            error = EXCLUDED.error`,
		rec.ID,
		string(rec.Policy),
		string(rec.State),
		rec.DryRun,
		rec.StartedAt,
		rec.FinishedAt,
		rec.UnitsEvaluated,
		rec.ChangesApplied,
		rec.ChangesFailed,
		rec.AmountMoved.StringFixed(2),
		rec.TotalBudget.StringFixed(2),
		rec.Summary,
		rec.Error,
	)
	return err
}

// ListRuns returns the latest run records, newest first.
func (r *LedgerRepository) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	rows, err := r.pool.Query(ctx, `
        SELECT id, policy, state, dry_run, started_at, finished_at, units_evaluated,
               changes_applied, changes_failed, amount_moved::text, total_budget::text, summary, error
        FROM runs
        ORDER BY started_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RunRecord, error) {
		var (
			rec           domain.RunRecord
			policy, state string
			moved, total  string
		)
		err := row.Scan(
			&rec.ID,
			&policy,
			&state,
			&rec.DryRun,
			&rec.StartedAt,
			&rec.FinishedAt,
			&rec.UnitsEvaluated,
			&rec.ChangesApplied,
			&rec.ChangesFailed,
			&moved,
			&total,
			&rec.Summary,
			&rec.Error,
		)
		if err != nil {
			return rec, err
		}
		rec.Policy = domain.Policy(policy)
		rec.State = domain.RunState(state)
		err = parseDecimals(decimalField{moved, &rec.AmountMoved}, decimalField{total, &rec.TotalBudget})
		return rec, err
	})
}

type decimalField struct {
	raw string
	dst *decimal.Decimal
}

func parseDecimals(fields ...decimalField) error {
	for _, f := range fields {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return err
		}
		*f.dst = d
	}
	return nil
}
