package domain

import "github.com/shopspring/decimal"

// Side tells whether a change raised or lowered a budget.
type Side string

const (
	SideIncrease Side = "increase"
	SideDecrease Side = "decrease"
)

// AllocationResult is the outcome of one attempted budget change.
type AllocationResult struct {
	UnitID           string
	ParentCampaignID string
	Kind             UnitKind
	DisplayName      string
	Side             Side
	OldBudget        decimal.Decimal
	NewBudget        decimal.Decimal
	// Delta is NewBudget - OldBudget.
	Delta   decimal.Decimal
	Applied bool
	// Err is the platform error of an update that was not applied.
	Err error
}

// Rollup is the campaign-level budget total written to the ledger after the
// ad-sets of an ad-set-budgeted campaign were changed.
type Rollup struct {
	CampaignID     string
	DisplayName    string
	OriginalBudget decimal.Decimal
	NetChange      decimal.Decimal
	LedgerRow      RowRef
}

// NewBudget is the original budget plus the net applied change.
func (r Rollup) NewBudget() decimal.Decimal {
	return r.OriginalBudget.Add(r.NetChange)
}
