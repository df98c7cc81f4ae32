package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
)

// Ledger is the durable record of unit snapshots and computed budgets. It is
// rewritten wholesale at the start of every run.
type Ledger interface {
	// ClearAndRecreate drops the previous run's rows.
	ClearAndRecreate(ctx context.Context, runID uuid.UUID) error
	// AppendRow stores a snapshot row and returns its reference.
	AppendRow(ctx context.Context, row domain.LedgerRow) (domain.RowRef, error)
	// WriteNewBudget records the budget computed for a row.
	WriteNewBudget(ctx context.Context, ref domain.RowRef, value decimal.Decimal) error
	// ReadRows returns the rows of the current snapshot in append order.
	ReadRows(ctx context.Context) ([]domain.LedgerRow, error)
}

// RunHistory keeps one record per run. Unlike the ledger it is never
// cleared.
type RunHistory interface {
	SaveRun(ctx context.Context, rec domain.RunRecord) error
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)
}

// LedgerStore is what the storage adapters provide.
type LedgerStore interface {
	Ledger
	RunHistory
}
