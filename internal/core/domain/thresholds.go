package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidThresholds is returned when run parameters are inconsistent.
var ErrInvalidThresholds = errors.New("invalid run thresholds")

// Policy selects the allocation algorithm for a run.
type Policy string

const (
	PolicyScaleUp    Policy = "scale_up"
	PolicyReduce     Policy = "reduce"
	PolicyReallocate Policy = "reallocate"
)

// ParsePolicy accepts the canonical names and their dashed spellings.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "scale_up", "scale-up", "scale":
		return PolicyScaleUp, nil
	case "reduce":
		return PolicyReduce, nil
	case "reallocate", "realloc":
		return PolicyReallocate, nil
	}
	return "", fmt.Errorf("unknown policy %q", s)
}

// Granularity selects the allocation targets. At GranularityUnit every unit
// is a participant; at GranularityCampaign an ad-set-budgeted campaign takes
// part as a whole through its aggregate.
type Granularity string

const (
	GranularityUnit     Granularity = "unit"
	GranularityCampaign Granularity = "campaign"
)

// RunThresholds is the immutable parameter set of one run.
type RunThresholds struct {
	MinProfit      decimal.Decimal // scale-up eligibility
	ScaleTotal     decimal.Decimal
	ProfitCeiling  decimal.Decimal // reduce selection
	ReductionPct   decimal.Decimal
	LowThreshold   decimal.Decimal // reallocation tiers
	HighThreshold  decimal.Decimal
	ReallocPct     decimal.Decimal
	MinBudget      decimal.Decimal
	AdSetMinBudget decimal.Decimal
	MaxBudget      decimal.Decimal
}

// FloorFor returns the budget floor for a unit kind. Ad-set floors are lower
// than campaign floors.
func (t RunThresholds) FloorFor(kind UnitKind) decimal.Decimal {
	if kind == KindAdSetBudget {
		return t.AdSetMinBudget
	}
	return t.MinBudget
}

// ThresholdOverrides carries caller-supplied parameters. Nil fields keep the
// configured default.
type ThresholdOverrides struct {
	MinProfit      *decimal.Decimal `json:"min_profit,omitempty"`
	ScaleTotal     *decimal.Decimal `json:"scale_total,omitempty"`
	ProfitCeiling  *decimal.Decimal `json:"profit_ceiling,omitempty"`
	ReductionPct   *decimal.Decimal `json:"reduction_pct,omitempty"`
	LowThreshold   *decimal.Decimal `json:"low_threshold,omitempty"`
	HighThreshold  *decimal.Decimal `json:"high_threshold,omitempty"`
	ReallocPct     *decimal.Decimal `json:"realloc_pct,omitempty"`
	MinBudget      *decimal.Decimal `json:"min_budget,omitempty"`
	AdSetMinBudget *decimal.Decimal `json:"adset_min_budget,omitempty"`
	MaxBudget      *decimal.Decimal `json:"max_budget,omitempty"`
}

// Merge returns a copy of t with every non-nil override applied. Percentages
// above 1 are read as whole percents.
func (t RunThresholds) Merge(o ThresholdOverrides) RunThresholds {
	pick := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	out := t
	pick(&out.MinProfit, o.MinProfit)
	pick(&out.ScaleTotal, o.ScaleTotal)
	pick(&out.ProfitCeiling, o.ProfitCeiling)
	pick(&out.ReductionPct, o.ReductionPct)
	pick(&out.LowThreshold, o.LowThreshold)
	pick(&out.HighThreshold, o.HighThreshold)
	pick(&out.ReallocPct, o.ReallocPct)
	pick(&out.MinBudget, o.MinBudget)
	pick(&out.AdSetMinBudget, o.AdSetMinBudget)
	pick(&out.MaxBudget, o.MaxBudget)
	out.ReductionPct = NormalizePct(out.ReductionPct)
	out.ReallocPct = NormalizePct(out.ReallocPct)
	return out
}

// NormalizePct turns 30 into 0.30 and leaves fractions untouched.
func NormalizePct(p decimal.Decimal) decimal.Decimal {
	if p.GreaterThan(decimal.NewFromInt(1)) {
		return p.Div(hundred)
	}
	return p
}

// Validate checks the invariants the allocator relies on.
func (t RunThresholds) Validate() error {
	one := decimal.NewFromInt(1)
	switch {
	case t.ReductionPct.IsNegative() || t.ReductionPct.GreaterThan(one):
		return fmt.Errorf("%w: reduction_pct %s outside [0,1]", ErrInvalidThresholds, t.ReductionPct)
	case t.ReallocPct.IsNegative() || t.ReallocPct.GreaterThan(one):
		return fmt.Errorf("%w: realloc_pct %s outside [0,1]", ErrInvalidThresholds, t.ReallocPct)
	case t.ScaleTotal.IsNegative():
		return fmt.Errorf("%w: scale_total must not be negative", ErrInvalidThresholds)
	case t.MinBudget.IsNegative() || t.AdSetMinBudget.IsNegative():
		return fmt.Errorf("%w: budget floors must not be negative", ErrInvalidThresholds)
	case t.MinBudget.GreaterThan(t.MaxBudget):
		return fmt.Errorf("%w: min_budget %s above max_budget %s", ErrInvalidThresholds, t.MinBudget, t.MaxBudget)
	case t.AdSetMinBudget.GreaterThan(t.MaxBudget):
		return fmt.Errorf("%w: adset_min_budget %s above max_budget %s", ErrInvalidThresholds, t.AdSetMinBudget, t.MaxBudget)
	case t.LowThreshold.GreaterThan(t.HighThreshold):
		return fmt.Errorf("%w: low_threshold %s above high_threshold %s", ErrInvalidThresholds, t.LowThreshold, t.HighThreshold)
	}
	return nil
}

// RunContext threads the parameters of one run through every component.
type RunContext struct {
	RunID       uuid.UUID
	Policy      Policy
	Granularity Granularity
	Accounts    []string
	// AdSetAccounts lists accounts whose campaigns are always treated as
	// ad-set-budgeted, regardless of the campaign budget field.
	AdSetAccounts []string
	Window        Window
	Thresholds    RunThresholds
	DryRun        bool
	TopN          int
}

// IsAdSetAccount reports whether the account is configured as ad-set-budgeted.
func (rc RunContext) IsAdSetAccount(account string) bool {
	return slices.Contains(rc.AdSetAccounts, account)
}
