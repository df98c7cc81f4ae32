package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
)

// TestReallocateAdSets moves budget between two ad-sets of one campaign; the
// campaign roll-up stays at the original total plus the net change.
func TestReallocateAdSets(t *testing.T) {
	th := defaultThresholds()
	th.LowThreshold = dec("0")
	th.HighThreshold = dec("20")
	rc := runContext(domain.PolicyReallocate, th)
	ledger := newMemLedger()
	set := Classify(rc, withAggregates(
		aboUnit("a1", "c1", "50", "30"),
		aboUnit("a2", "c1", "50", "-10"),
	))
	set = ledger.snapshot(rc.RunID, set)

	platform := &fakePlatform{}
	out, err := NewAllocator(platform, ledger, nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}

	if b, _ := platform.budgetOf("a2"); !b.Equal(dec("35")) {
		t.Fatalf("expected a2 reduced to 35, got %s", b)
	}
	if !out.Pool.Equal(dec("15")) {
		t.Fatalf("expected pool 15, got %s", out.Pool)
	}
	if b, _ := platform.budgetOf("a1"); !b.Equal(dec("65")) {
		t.Fatalf("expected a1 raised to 65, got %s", b)
	}

	if len(out.Rollups) != 1 {
		t.Fatalf("expected one roll-up, got %d", len(out.Rollups))
	}
	ru := out.Rollups[0]
	if !ru.NewBudget().Equal(dec("100").Add(ru.NetChange)) || !ru.NetChange.IsZero() {
		t.Fatalf("unexpected roll-up %+v", ru)
	}
	if v := ledger.written[set.Aggregates[0].LedgerRow]; !v.Equal(dec("100")) {
		t.Fatalf("expected roll-up 100 in the ledger, got %s", v)
	}
}

func TestReallocateInsufficientUnits(t *testing.T) {
	rc := runContext(domain.PolicyReallocate, defaultThresholds())
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{
		cboUnit("c1", "500", "-200"),
		cboUnit("c2", "500", "2000"),
	}})

	platform := &fakePlatform{}
	out, err := NewAllocator(platform, newMemLedger(), nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if !errors.Is(out.Reason, port.ErrInsufficientUnits) {
		t.Fatalf("expected ErrInsufficientUnits, got %v", out.Reason)
	}
	if len(platform.updates) != 0 {
		t.Fatalf("expected no updates, got %d", len(platform.updates))
	}
}

// TestReallocateCeilingLeavesPoolUnspent caps the HIGH unit at max_budget.
func TestReallocateCeilingLeavesPoolUnspent(t *testing.T) {
	th := defaultThresholds()
	th.MaxBudget = dec("1050")
	rc := runContext(domain.PolicyReallocate, th)
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{
		cboUnit("c1", "1000", "-300"),
		cboUnit("c2", "1000", "6000"),
	}})

	platform := &fakePlatform{}
	out, err := NewAllocator(platform, newMemLedger(), nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if !out.Pool.Equal(dec("300")) {
		t.Fatalf("expected pool 300, got %s", out.Pool)
	}
	if b, _ := platform.budgetOf("c2"); !b.Equal(dec("1050")) {
		t.Fatalf("expected c2 capped at 1050, got %s", b)
	}
	s := Summarize(rc, set, out)
	if !s.Unspent.Equal(dec("250")) {
		t.Fatalf("expected 250 unspent, got %s", s.Unspent)
	}
}

// TestReallocateFailedReductionFeedsNothing only counts applied reductions.
func TestReallocateFailedReductionFeedsNothing(t *testing.T) {
	rc := runContext(domain.PolicyReallocate, defaultThresholds())
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{
		cboUnit("c1", "1000", "-300"),
		cboUnit("c2", "1000", "6000"),
	}})

	platform := &fakePlatform{fail: map[string]bool{"c1": true}}
	out, err := NewAllocator(platform, newMemLedger(), nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if !out.Pool.IsZero() {
		t.Fatalf("expected empty pool, got %s", out.Pool)
	}
	if len(platform.updates) != 0 {
		t.Fatalf("expected no accepted updates, got %d", len(platform.updates))
	}
}

func TestReallocateCampaignGranularity(t *testing.T) {
	th := defaultThresholds()
	th.LowThreshold = dec("0")
	th.HighThreshold = dec("100")
	rc := runContext(domain.PolicyReallocate, th)
	rc.Granularity = domain.GranularityCampaign
	set := Classify(rc, withAggregates(
		cboUnit("c1", "1000", "-50"),
		aboUnit("a1", "c2", "100", "150"),
		aboUnit("a2", "c2", "100", "-20"),
	))

	platform := &fakePlatform{}
	out, err := NewAllocator(platform, newMemLedger(), nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	// c2 takes part as a whole: profit 130 is HIGH, so its LOW ad-set a2 is
	// not reduced and the pool goes to the profitable a1 only.
	if _, ok := platform.budgetOf("a2"); ok {
		t.Fatalf("a2 must not change at campaign granularity")
	}
	if b, _ := platform.budgetOf("c1"); !b.Equal(dec("700")) {
		t.Fatalf("expected c1 at 700, got %s", b)
	}
	if b, _ := platform.budgetOf("a1"); !b.Equal(dec("400")) {
		t.Fatalf("expected a1 at 400, got %s", b)
	}
	if len(out.Rollups) != 1 || !out.Rollups[0].NewBudget().Equal(dec("500")) {
		t.Fatalf("unexpected roll-up %+v", out.Rollups)
	}
}

func TestReallocateConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		th := defaultThresholds()
		th.LowThreshold = decimal.Zero
		th.HighThreshold = decimal.NewFromInt(rapid.Int64Range(0, 500).Draw(t, "high"))
		th.ReallocPct = decimal.NewFromInt(rapid.Int64Range(0, 100).Draw(t, "pct")).Div(decimal.NewFromInt(100))
		th.MaxBudget = decimal.NewFromInt(rapid.Int64Range(100, 5_000).Draw(t, "max"))
		rc := runContext(domain.PolicyReallocate, th)

		n := rapid.IntRange(2, 10).Draw(t, "units")
		var units []domain.Unit
		for i := range n {
			budget := rapid.Int64Range(1, 5_000).Draw(t, "budget")
			cents := rapid.Int64Range(0, 99).Draw(t, "cents")
			profit := rapid.Int64Range(-1_000, 1_000).Draw(t, "profit")
			b := decimal.New(budget*100+cents, -2)
			units = append(units, cboUnit(string(rune('a'+i)), b.String(), decimal.NewFromInt(profit).String()))
		}
		set := Classify(rc, domain.UnitSet{Units: units})

		platform := &fakePlatform{fail: map[string]bool{"b": rapid.Bool().Draw(t, "fail_b")}}
		out, err := NewAllocator(platform, newMemLedger(), nil, discardLogger()).Allocate(context.Background(), rc, set)
		if err != nil {
			t.Fatalf("Allocate error: %v", err)
		}

		increased, reduced := decimal.Zero, decimal.Zero
		for _, res := range out.Applied() {
			if res.Delta.IsPositive() {
				increased = increased.Add(res.Delta)
			} else {
				reduced = reduced.Add(res.Delta.Neg())
			}
		}
		if !reduced.Equal(out.Pool) {
			t.Fatalf("pool %s differs from applied reductions %s", out.Pool, reduced)
		}
		if increased.GreaterThan(reduced) {
			t.Fatalf("distributed %s exceeds the pool %s", increased, reduced)
		}
	})
}
