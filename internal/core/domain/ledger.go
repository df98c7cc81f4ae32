package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RowRef identifies a ledger row. Zero means the row was never appended.
type RowRef int64

// RowLevel distinguishes unit snapshots from campaign roll-up rows.
type RowLevel string

const (
	RowLevelUnit     RowLevel = "unit"
	RowLevelCampaign RowLevel = "campaign"
)

// LedgerRow is one row of the run ledger. NewBudget stays nil until a change
// is written for the row.
type LedgerRow struct {
	Ref              RowRef
	RunID            uuid.UUID
	Level            RowLevel
	AccountID        string
	UnitID           string
	ParentCampaignID string
	Kind             UnitKind
	DisplayName      string
	CurrentBudget    decimal.Decimal
	Spend            decimal.Decimal
	ConversionValue  decimal.Decimal
	ROAS             decimal.Decimal
	Profit           decimal.Decimal
	Tier             Tier
	Details          string
	NewBudget        *decimal.Decimal
	CreatedAt        time.Time
}

// UnitRow builds the snapshot row of a unit.
func UnitRow(runID uuid.UUID, u Unit) LedgerRow {
	return LedgerRow{
		RunID:            runID,
		Level:            RowLevelUnit,
		AccountID:        u.AccountID,
		UnitID:           u.ID,
		ParentCampaignID: u.ParentCampaignID,
		Kind:             u.Kind,
		DisplayName:      u.DisplayName,
		CurrentBudget:    u.CurrentBudget,
		Spend:            u.Spend,
		ConversionValue:  u.ConversionValue,
		ROAS:             u.ROAS(),
		Profit:           u.Profit(),
		Tier:             u.Tier,
		Details:          "N/A",
	}
}

// AggregateRow builds the roll-up row of an ad-set-budgeted campaign.
func AggregateRow(runID uuid.UUID, a CampaignAggregate, details string) LedgerRow {
	return LedgerRow{
		RunID:           runID,
		Level:           RowLevelCampaign,
		AccountID:       a.AccountID,
		UnitID:          a.CampaignID,
		Kind:            KindAdSetBudget,
		DisplayName:     a.DisplayName,
		CurrentBudget:   a.CurrentBudget(),
		Spend:           a.Spend(),
		ConversionValue: a.ConversionValue(),
		ROAS:            a.ROAS(),
		Profit:          a.Profit(),
		Tier:            a.Tier,
		Details:         details,
	}
}

// Unit rebuilds the unit a snapshot row was taken from.
func (r LedgerRow) Unit() Unit {
	return Unit{
		ID:               r.UnitID,
		ParentCampaignID: r.ParentCampaignID,
		AccountID:        r.AccountID,
		Kind:             r.Kind,
		DisplayName:      r.DisplayName,
		CurrentBudget:    r.CurrentBudget,
		Spend:            r.Spend,
		ConversionValue:  r.ConversionValue,
		Tier:             r.Tier,
		LedgerRow:        r.Ref,
	}
}

// EffectiveBudget is the written new budget, or the snapshot budget when no
// change was recorded.
func (r LedgerRow) EffectiveBudget() decimal.Decimal {
	if r.NewBudget != nil {
		return *r.NewBudget
	}
	return r.CurrentBudget
}
