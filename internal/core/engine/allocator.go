package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
)

// MinIncrement is the smallest scale-up increment worth applying.
var MinIncrement = decimal.NewFromInt(10)

// Allocator computes new budgets under a policy and applies them one unit at
// a time. Every applied change is written to the ledger before the next unit
// is processed. An Allocator holds no per-run state and may be reused.
type Allocator struct {
	platform port.BudgetUpdater
	ledger   port.Ledger
	metrics  port.Metrics
	logger   *slog.Logger
}

// NewAllocator wires an allocator. A nil metrics sink discards observations.
func NewAllocator(platform port.BudgetUpdater, ledger port.Ledger, metrics port.Metrics, logger *slog.Logger) *Allocator {
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	return &Allocator{platform: platform, ledger: ledger, metrics: metrics, logger: logger}
}

// Outcome is what an allocation produced.
type Outcome struct {
	Policy  domain.Policy
	Results []domain.AllocationResult
	Rollups []domain.Rollup
	// Skipped counts allocation targets left untouched: increments below
	// MinIncrement and computed budgets equal to the current one.
	Skipped int
	// Pool is the reduction realized by a reallocation.
	Pool decimal.Decimal
	// Reason is ErrNoEligibleUnits or ErrInsufficientUnits when there was
	// nothing to do.
	Reason error
}

// Applied returns the results the platform accepted.
func (o *Outcome) Applied() []domain.AllocationResult {
	var out []domain.AllocationResult
	for _, r := range o.Results {
		if r.Applied {
			out = append(out, r)
		}
	}
	return out
}

// Allocate runs the policy of rc over a classified unit set. The returned
// error is non-nil only when the ledger failed; changes applied before the
// failure stay applied and are part of the returned outcome.
func (a *Allocator) Allocate(ctx context.Context, rc domain.RunContext, set domain.UnitSet) (*Outcome, error) {
	run := &allocation{
		Allocator: a,
		rc:        rc,
		set:       set,
		out:       &Outcome{Policy: rc.Policy, Pool: decimal.Zero},
		rollups:   make(map[string]*domain.Rollup),
	}

	var err error
	switch rc.Policy {
	case domain.PolicyScaleUp:
		err = run.scaleUp(ctx)
	case domain.PolicyReduce:
		err = run.reduce(ctx)
	case domain.PolicyReallocate:
		err = run.reallocate(ctx)
	default:
		return nil, fmt.Errorf("unknown policy %q", rc.Policy)
	}
	if err != nil {
		return run.out, err
	}
	if err = run.writeRollups(ctx); err != nil {
		return run.out, err
	}
	return run.out, nil
}

// allocation is the state of one Allocate call.
type allocation struct {
	*Allocator
	rc  domain.RunContext
	set domain.UnitSet
	out *Outcome

	rollups     map[string]*domain.Rollup
	rollupOrder []string
}

// apply pushes a new budget for u to the platform. A rejected update is
// recorded and the run continues; a ledger failure after an accepted update
// is returned.
func (r *allocation) apply(ctx context.Context, u domain.Unit, newBudget decimal.Decimal, side domain.Side) (domain.AllocationResult, error) {
	res := domain.AllocationResult{
		UnitID:           u.ID,
		ParentCampaignID: u.ParentCampaignID,
		Kind:             u.Kind,
		DisplayName:      u.DisplayName,
		Side:             side,
		OldBudget:        u.CurrentBudget,
		NewBudget:        newBudget,
		Delta:            newBudget.Sub(u.CurrentBudget),
	}

	if err := r.platform.UpdateBudget(ctx, u.ID, u.Kind, newBudget); err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", port.ErrPlatformUpdateFailed, u.ID, err)
		r.logger.Error("budget update failed",
			slog.String("unit_id", u.ID),
			slog.String("kind", string(u.Kind)),
			slog.String("budget", newBudget.StringFixed(2)),
			slog.Any("error", err))
		r.record(res)
		return res, nil
	}

	res.Applied = true
	r.logger.Info("budget updated",
		slog.String("unit_id", u.ID),
		slog.String("name", u.DisplayName),
		slog.String("kind", string(u.Kind)),
		slog.String("old", u.CurrentBudget.StringFixed(2)),
		slog.String("new", newBudget.StringFixed(2)),
		slog.String("delta", res.Delta.StringFixed(2)))
	r.record(res)

	if u.ParentCampaignID != "" {
		r.trackRollup(u.ParentCampaignID, res.Delta)
	}
	if u.LedgerRow != 0 {
		if err := r.ledger.WriteNewBudget(ctx, u.LedgerRow, newBudget); err != nil {
			return res, fmt.Errorf("%w: write new budget for %s: %v", port.ErrLedgerUnavailable, u.ID, err)
		}
	}
	return res, nil
}

func (r *allocation) record(res domain.AllocationResult) {
	r.out.Results = append(r.out.Results, res)
	r.metrics.ObserveChange(r.rc.Policy, res)
}

func (r *allocation) skip(u domain.Unit, reason string) {
	r.out.Skipped++
	r.logger.Debug("unit skipped", slog.String("unit_id", u.ID), slog.String("reason", reason))
}

// trackRollup accumulates applied ad-set deltas per campaign. The roll-up is
// the campaign's original budget plus these deltas, never a re-sum of ad-set
// budgets.
func (r *allocation) trackRollup(campaignID string, delta decimal.Decimal) {
	ru, ok := r.rollups[campaignID]
	if !ok {
		agg, _ := r.set.Aggregate(campaignID)
		ru = &domain.Rollup{
			CampaignID:     campaignID,
			DisplayName:    agg.DisplayName,
			OriginalBudget: agg.CurrentBudget(),
			NetChange:      decimal.Zero,
			LedgerRow:      agg.LedgerRow,
		}
		r.rollups[campaignID] = ru
		r.rollupOrder = append(r.rollupOrder, campaignID)
	}
	ru.NetChange = ru.NetChange.Add(delta)
}

func (r *allocation) writeRollups(ctx context.Context) error {
	for _, id := range r.rollupOrder {
		ru := r.rollups[id]
		r.out.Rollups = append(r.out.Rollups, *ru)
		r.logger.Info("campaign roll-up",
			slog.String("campaign_id", id),
			slog.String("name", ru.DisplayName),
			slog.String("budget", ru.NewBudget().StringFixed(2)))
		if ru.LedgerRow == 0 {
			continue
		}
		if err := r.ledger.WriteNewBudget(ctx, ru.LedgerRow, ru.NewBudget()); err != nil {
			return fmt.Errorf("%w: write roll-up for %s: %v", port.ErrLedgerUnavailable, id, err)
		}
	}
	return nil
}

// participant is an allocation target: a unit, or a whole ad-set-budgeted
// campaign at campaign granularity.
type participant struct {
	unit *domain.Unit
	agg  *domain.CampaignAggregate
}

func (p participant) profit() decimal.Decimal {
	if p.unit != nil {
		return p.unit.Profit()
	}
	return p.agg.Profit()
}

func (p participant) tier() domain.Tier {
	if p.unit != nil {
		return p.unit.Tier
	}
	return p.agg.Tier
}

// members returns the units a change to the participant is applied to.
func (p participant) members() []domain.Unit {
	if p.unit != nil {
		return []domain.Unit{*p.unit}
	}
	return p.agg.Units
}

type allotment struct {
	unit   domain.Unit
	amount decimal.Decimal
}

// allot splits an increase over the participant's units. An aggregate gives
// its profitable ad-sets a profit-proportional share, or every ad-set an equal
// share when none is profitable.
func (p participant) allot(increment decimal.Decimal) []allotment {
	if p.unit != nil {
		return []allotment{{unit: *p.unit, amount: increment}}
	}
	var profitable []domain.Unit
	sum := decimal.Zero
	for _, u := range p.agg.Units {
		if u.Profit().IsPositive() {
			profitable = append(profitable, u)
			sum = sum.Add(u.Profit())
		}
	}
	var out []allotment
	if len(profitable) > 0 {
		for _, u := range profitable {
			out = append(out, allotment{unit: u, amount: increment.Mul(u.Profit()).Div(sum)})
		}
		return out
	}
	if len(p.agg.Units) == 0 {
		return nil
	}
	each := increment.Div(decimal.NewFromInt(int64(len(p.agg.Units))))
	for _, u := range p.agg.Units {
		out = append(out, allotment{unit: u, amount: each})
	}
	return out
}

// participants lists the allocation targets in input order.
func (r *allocation) participants() []participant {
	var out []participant
	seen := make(map[string]bool)
	for i := range r.set.Units {
		u := &r.set.Units[i]
		if r.rc.Granularity != domain.GranularityCampaign || u.ParentCampaignID == "" {
			out = append(out, participant{unit: u})
			continue
		}
		if seen[u.ParentCampaignID] {
			continue
		}
		seen[u.ParentCampaignID] = true
		for j := range r.set.Aggregates {
			if r.set.Aggregates[j].CampaignID == u.ParentCampaignID {
				out = append(out, participant{agg: &r.set.Aggregates[j]})
				break
			}
		}
	}
	return out
}

func withTier(parts []participant, tier domain.Tier) []participant {
	var out []participant
	for _, p := range parts {
		if p.tier() == tier {
			out = append(out, p)
		}
	}
	return out
}

// share returns total * profit / sum, or an equal split when the profits do
// not sum to a positive amount.
func share(total, profit, sum decimal.Decimal, count int) decimal.Decimal {
	if sum.IsPositive() {
		return total.Mul(profit).Div(sum)
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

// cents truncates an amount to whole cents, the precision the platform keeps.
func cents(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(2)
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, lo), hi)
}
