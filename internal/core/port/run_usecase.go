package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-budget/internal/core/domain"
)

// RunUseCase defines the operations exposed by the budget service. It is the
// primary port used by the HTTP adapter and the CLI. Mock implementations are
// generated from this interface for testing.
type RunUseCase interface {
	// Run executes a run synchronously and returns its report. Nothing-to-do
	// outcomes are not errors; ledger failures are.
	Run(ctx context.Context, req RunRequest) (*RunReport, error)

	// Start launches a run in the background and returns its id. It fails
	// with ErrRunInProgress when a run has not finished yet.
	Start(ctx context.Context, req RunRequest) (uuid.UUID, error)

	// Current returns the state and log of the latest run.
	Current() RunStatus

	// History returns the most recent run records, newest first.
	History(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Accounts describes the configured ad accounts.
	Accounts() AccountsStatus
}

// RunRequest carries caller-supplied run parameters. Unset values fall back
// to the configured defaults.
type RunRequest struct {
	Policy      domain.Policy             `json:"policy"`
	Granularity domain.Granularity        `json:"granularity,omitempty"`
	DateRange   string                    `json:"date_range,omitempty"`
	StartDate   string                    `json:"start_date,omitempty"`
	EndDate     string                    `json:"end_date,omitempty"`
	DryRun      bool                      `json:"dry_run,omitempty"`
	Thresholds  domain.ThresholdOverrides `json:"thresholds"`
}

// RunReport is the outcome of a finished run.
type RunReport struct {
	RunID   uuid.UUID
	Policy  domain.Policy
	State   domain.RunState
	Summary domain.Summary
	Text    string
	// Reason is ErrNoEligibleUnits or ErrInsufficientUnits when the run had
	// nothing to do.
	Reason error
	// NotifyErr is set when the report could not be delivered.
	NotifyErr error
}

// RunStatus is a snapshot of the current or last run.
type RunStatus struct {
	RunID   uuid.UUID       `json:"run_id"`
	Policy  domain.Policy   `json:"policy,omitempty"`
	State   domain.RunState `json:"state,omitempty"`
	Running bool            `json:"running"`
	Logs    []string        `json:"logs"`
}

// AccountsStatus splits the configured accounts by budget kind.
type AccountsStatus struct {
	Total          int      `json:"total_accounts"`
	CampaignBudget int      `json:"cbo_accounts"`
	AdSetBudget    int      `json:"abo_accounts"`
	Accounts       []string `json:"accounts"`
	AdSetAccounts  []string `json:"abo_list"`
}
