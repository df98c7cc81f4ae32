package domain

import "github.com/shopspring/decimal"

// UnitKind determines which platform call applies a budget change to a unit.
type UnitKind string

const (
	// KindCampaignBudget units carry the daily budget on the campaign itself.
	KindCampaignBudget UnitKind = "CAMPAIGN_BUDGET"
	// KindAdSetBudget units are ad-sets of a campaign whose budget is set
	// per ad-set.
	KindAdSetBudget UnitKind = "ADSET_BUDGET"
)

// Short returns the label used in reports (CBO for campaign budgets, ABO for
// ad-set budgets).
func (k UnitKind) Short() string {
	if k == KindAdSetBudget {
		return "ABO"
	}
	return "CBO"
}

// Unit is one allocatable entity: a whole campaign, or one ad-set of an
// ad-set-budgeted campaign. Money values are in currency units, not cents.
type Unit struct {
	ID               string
	ParentCampaignID string // empty unless Kind is KindAdSetBudget
	AccountID        string
	Kind             UnitKind
	DisplayName      string
	CurrentBudget    decimal.Decimal
	Spend            decimal.Decimal
	ConversionValue  decimal.Decimal

	// Tier is the classification label attached for the current run.
	Tier Tier
	// LedgerRow references the ledger row holding this unit's snapshot.
	LedgerRow RowRef
}

// Profit is conversion value minus spend. It may be negative.
func (u Unit) Profit() decimal.Decimal {
	return u.ConversionValue.Sub(u.Spend)
}

// ROAS is conversion value over spend rounded to two decimals, or zero when
// nothing was spent.
func (u Unit) ROAS() decimal.Decimal {
	return roas(u.ConversionValue, u.Spend)
}

// CampaignAggregate groups the active ad-sets of an ad-set-budgeted campaign.
// Its totals are sums over Units; it is rebuilt on every run.
type CampaignAggregate struct {
	CampaignID  string
	AccountID   string
	DisplayName string
	Units       []Unit

	Tier      Tier
	LedgerRow RowRef
}

// CurrentBudget returns the sum of the ad-set budgets.
func (a CampaignAggregate) CurrentBudget() decimal.Decimal {
	return a.sum(func(u Unit) decimal.Decimal { return u.CurrentBudget })
}

// Spend returns the sum of the ad-set spend.
func (a CampaignAggregate) Spend() decimal.Decimal {
	return a.sum(func(u Unit) decimal.Decimal { return u.Spend })
}

// ConversionValue returns the sum of the ad-set conversion values.
func (a CampaignAggregate) ConversionValue() decimal.Decimal {
	return a.sum(func(u Unit) decimal.Decimal { return u.ConversionValue })
}

// Profit returns conversion value minus spend over all ad-sets.
func (a CampaignAggregate) Profit() decimal.Decimal {
	return a.ConversionValue().Sub(a.Spend())
}

// ROAS returns the aggregate return on ad spend.
func (a CampaignAggregate) ROAS() decimal.Decimal {
	return roas(a.ConversionValue(), a.Spend())
}

func (a CampaignAggregate) sum(f func(Unit) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, u := range a.Units {
		total = total.Add(f(u))
	}
	return total
}

// UnitSet is the output of the unit model for one run: the flat list of
// allocatable units and the aggregates of ad-set-budgeted campaigns.
type UnitSet struct {
	Units      []Unit
	Aggregates []CampaignAggregate
}

// Aggregate returns the aggregate for a campaign id.
func (s UnitSet) Aggregate(campaignID string) (CampaignAggregate, bool) {
	for _, a := range s.Aggregates {
		if a.CampaignID == campaignID {
			return a, true
		}
	}
	return CampaignAggregate{}, false
}

// CampaignUnits returns the units that are budgeted at campaign level.
func (s UnitSet) CampaignUnits() []Unit {
	out := make([]Unit, 0, len(s.Units))
	for _, u := range s.Units {
		if u.Kind == KindCampaignBudget {
			out = append(out, u)
		}
	}
	return out
}

// TotalBudget sums the current budget of every unit.
func (s UnitSet) TotalBudget() decimal.Decimal {
	total := decimal.Zero
	for _, u := range s.Units {
		total = total.Add(u.CurrentBudget)
	}
	return total
}

var hundred = decimal.NewFromInt(100)

func roas(value, spend decimal.Decimal) decimal.Decimal {
	if !spend.IsPositive() {
		return decimal.Zero
	}
	return value.DivRound(spend, 2)
}
