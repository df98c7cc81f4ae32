package engine

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
)

// reduce lowers the budget of every participant below the profit ceiling by
// ReductionPct, never below MinBudget. Units are independent of each other.
func (r *allocation) reduce(ctx context.Context) error {
	th := r.rc.Thresholds
	selected := withTier(r.participants(), domain.TierEligible)
	if len(selected) == 0 {
		r.out.Reason = port.ErrNoEligibleUnits
		r.logger.Info("no units to reduce", slog.String("profit_ceiling", th.ProfitCeiling.StringFixed(2)))
		return nil
	}

	keep := decimal.NewFromInt(1).Sub(th.ReductionPct)
	for _, p := range selected {
		for _, u := range p.members() {
			cur := u.CurrentBudget
			newBudget := decimal.Max(cents(cur.Mul(keep)), th.MinBudget)
			if !newBudget.LessThan(cur) {
				r.skip(u, "budget at or below floor")
				continue
			}
			if _, err := r.apply(ctx, u, newBudget, domain.SideDecrease); err != nil {
				return err
			}
		}
	}
	return nil
}
