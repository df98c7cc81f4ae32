package engine

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
)

// scaleUp distributes ScaleTotal over the ELIGIBLE participants in
// proportion to their profit, most profitable first. New budgets are clamped
// to [MinBudget, MaxBudget] and the realized increment is taken after the
// clamp.
func (r *allocation) scaleUp(ctx context.Context) error {
	th := r.rc.Thresholds
	eligible := withTier(r.participants(), domain.TierEligible)
	if len(eligible) == 0 {
		r.out.Reason = port.ErrNoEligibleUnits
		r.logger.Info("no units to scale", slog.String("min_profit", th.MinProfit.StringFixed(2)))
		return nil
	}
	SortByProfit(eligible, participant.profit)

	profitSum := decimal.Zero
	for _, p := range eligible {
		profitSum = profitSum.Add(p.profit())
	}
	r.logger.Info("scaling units",
		slog.Int("eligible", len(eligible)),
		slog.String("profit_sum", profitSum.StringFixed(2)),
		slog.String("scale_total", th.ScaleTotal.StringFixed(2)))

	for _, p := range eligible {
		increment := share(th.ScaleTotal, p.profit(), profitSum, len(eligible))
		if increment.LessThan(MinIncrement) {
			for _, u := range p.members() {
				r.skip(u, "increment below minimum")
			}
			continue
		}
		for _, a := range p.allot(increment) {
			cur := a.unit.CurrentBudget
			newBudget := clamp(cents(cur.Add(a.amount)), th.MinBudget, th.MaxBudget)
			if newBudget.Equal(cur) {
				r.skip(a.unit, "budget already at bound")
				continue
			}
			side := domain.SideIncrease
			if newBudget.LessThan(cur) {
				side = domain.SideDecrease
			}
			if _, err := r.apply(ctx, a.unit, newBudget, side); err != nil {
				return err
			}
		}
	}
	return nil
}
