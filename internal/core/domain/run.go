package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RunState is the lifecycle state of a run.
type RunState string

const (
	StateCollecting RunState = "COLLECTING"
	StateClassified RunState = "CLASSIFIED"
	StateAllocating RunState = "ALLOCATING"
	StateApplied    RunState = "APPLIED"
	StateReported   RunState = "REPORTED"
	StateAborted    RunState = "ABORTED"
)

// Terminal reports whether no further transition follows.
func (s RunState) Terminal() bool {
	return s == StateReported || s == StateAborted
}

// RunRecord is the history entry kept for every run.
type RunRecord struct {
	ID             uuid.UUID
	Policy         Policy
	State          RunState
	DryRun         bool
	StartedAt      time.Time
	FinishedAt     time.Time
	UnitsEvaluated int
	ChangesApplied int
	ChangesFailed  int
	AmountMoved    decimal.Decimal
	TotalBudget    decimal.Decimal
	Summary        string
	Error          string
}
