package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary holds the figures of a finished run that end up in the report.
type Summary struct {
	RunID  uuid.UUID
	Policy Policy
	State  RunState
	DryRun bool
	Reason string
	// Error is set when the run was aborted by a failure.
	Error          string
	UnitsEvaluated int

	// Increased and Decreased sum the applied positive and negative deltas.
	Increased decimal.Decimal
	Decreased decimal.Decimal
	// Moved is the amount the policy shifted: the increases for scale-up and
	// reallocation, the decreases for reduce.
	Moved decimal.Decimal

	// Pool and Unspent are only meaningful for reallocation.
	Pool    decimal.Decimal
	Unspent decimal.Decimal

	ChangedByKind   map[UnitKind]int
	IncreasedByKind map[UnitKind]int
	DecreasedByKind map[UnitKind]int
	Failed          int
	Skipped         int

	// Applied lists the applied changes ordered by magnitude, largest first.
	Applied     []AllocationResult
	Rollups     []Rollup
	TotalBudget decimal.Decimal
}

// Changed returns the number of applied changes.
func (s Summary) Changed() int {
	return len(s.Applied)
}
