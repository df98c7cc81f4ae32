package engine

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
)

// reallocate moves budget from LOW participants to HIGH ones. The reduction
// phase realizes a pool; the distribution phase hands out shares of that
// pool only, so the total increase never exceeds the total reduction.
// Whatever the ceiling keeps a HIGH unit from taking stays unspent.
func (r *allocation) reallocate(ctx context.Context) error {
	th := r.rc.Thresholds
	parts := r.participants()
	low := withTier(parts, domain.TierLow)
	high := withTier(parts, domain.TierHigh)
	r.logger.Info("reallocation tiers", slog.Int("low", len(low)), slog.Int("high", len(high)))
	if len(low) == 0 || len(high) == 0 {
		r.out.Reason = port.ErrInsufficientUnits
		return nil
	}

	keep := decimal.NewFromInt(1).Sub(th.ReallocPct)
	pool := decimal.Zero
	for _, p := range low {
		for _, u := range p.members() {
			cur := u.CurrentBudget
			// Ad-sets get their own lower floor: a 50 ad-set budget under a 100
			// campaign floor must still give up its share.
			newBudget := decimal.Max(cents(cur.Mul(keep)), th.FloorFor(u.Kind))
			if !newBudget.LessThan(cur) {
				r.skip(u, "budget at or below floor")
				continue
			}
			res, err := r.apply(ctx, u, newBudget, domain.SideDecrease)
			if err != nil {
				r.out.Pool = pool
				return err
			}
			if res.Applied {
				pool = pool.Add(res.Delta.Neg())
			}
		}
	}
	r.out.Pool = pool
	r.logger.Info("reduction phase done", slog.String("pool", pool.StringFixed(2)))
	if !pool.IsPositive() {
		return nil
	}

	profitSum := decimal.Zero
	for _, p := range high {
		profitSum = profitSum.Add(p.profit())
	}
	for _, p := range high {
		increment := share(pool, p.profit(), profitSum, len(high))
		for _, a := range p.allot(increment) {
			cur := a.unit.CurrentBudget
			target := clamp(cents(cur.Add(a.amount)), th.FloorFor(a.unit.Kind), th.MaxBudget)
			actual := decimal.Min(decimal.Max(target.Sub(cur), decimal.Zero), cents(a.amount))
			if !actual.IsPositive() {
				r.skip(a.unit, "no room below ceiling")
				continue
			}
			if _, err := r.apply(ctx, a.unit, cur.Add(actual), domain.SideIncrease); err != nil {
				return err
			}
		}
	}
	return nil
}
