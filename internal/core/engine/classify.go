package engine

import (
	"slices"

	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
)

// EligibilityTier labels a profit for scale-up: ELIGIBLE from minProfit up.
func EligibilityTier(profit, minProfit decimal.Decimal) domain.Tier {
	if profit.GreaterThanOrEqual(minProfit) {
		return domain.TierEligible
	}
	return domain.TierIneligible
}

// ReductionTier labels a profit for reduce: ELIGIBLE strictly below the
// ceiling, with no lower bound.
func ReductionTier(profit, ceiling decimal.Decimal) domain.Tier {
	if profit.LessThan(ceiling) {
		return domain.TierEligible
	}
	return domain.TierIneligible
}

// ReallocationTier labels a profit with the half-open intervals
// (-inf, low) LOW, [low, high) MEDIUM and [high, +inf) HIGH.
func ReallocationTier(profit, low, high decimal.Decimal) domain.Tier {
	switch {
	case profit.LessThan(low):
		return domain.TierLow
	case profit.GreaterThanOrEqual(high):
		return domain.TierHigh
	default:
		return domain.TierMedium
	}
}

// TierFor labels a profit under the run's policy.
func TierFor(rc domain.RunContext, profit decimal.Decimal) domain.Tier {
	th := rc.Thresholds
	switch rc.Policy {
	case domain.PolicyScaleUp:
		return EligibilityTier(profit, th.MinProfit)
	case domain.PolicyReduce:
		return ReductionTier(profit, th.ProfitCeiling)
	case domain.PolicyReallocate:
		return ReallocationTier(profit, th.LowThreshold, th.HighThreshold)
	}
	return domain.TierNone
}

// Classify returns a copy of the set with a tier attached to every unit and
// every aggregate. No other field changes.
func Classify(rc domain.RunContext, set domain.UnitSet) domain.UnitSet {
	out := domain.UnitSet{
		Units:      slices.Clone(set.Units),
		Aggregates: make([]domain.CampaignAggregate, len(set.Aggregates)),
	}
	for i := range out.Units {
		out.Units[i].Tier = TierFor(rc, out.Units[i].Profit())
	}
	for i, a := range set.Aggregates {
		a.Units = slices.Clone(a.Units)
		for j := range a.Units {
			a.Units[j].Tier = TierFor(rc, a.Units[j].Profit())
		}
		a.Tier = TierFor(rc, a.Profit())
		out.Aggregates[i] = a
	}
	return out
}

// SortByProfit orders items from most to least profitable. Ties keep their
// input order.
func SortByProfit[T any](items []T, profit func(T) decimal.Decimal) {
	slices.SortStableFunc(items, func(a, b T) int {
		return profit(b).Cmp(profit(a))
	})
}
