package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"pgregory.net/rapid"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
	"mesa-budget/internal/core/port/mocks"
)

// TestScaleUpSingleEligible gives the whole scale total to the only unit that
// meets min_profit.
func TestScaleUpSingleEligible(t *testing.T) {
	th := defaultThresholds()
	th.ScaleTotal = dec("100")
	rc := runContext(domain.PolicyScaleUp, th)
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{
		cboUnit("c1", "100", "10"),
		cboUnit("c2", "200", "0"),
		cboUnit("c3", "300", "-5"),
	}})

	platform := &fakePlatform{}
	alloc := NewAllocator(platform, newMemLedger(), nil, discardLogger())
	out, err := alloc.Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if out.Reason != nil {
		t.Fatalf("unexpected reason %v", out.Reason)
	}
	if len(platform.updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(platform.updates))
	}
	if b, _ := platform.budgetOf("c1"); !b.Equal(dec("200")) {
		t.Fatalf("expected c1 at 200, got %s", b)
	}
	res := out.Results[0]
	if !res.Applied || res.Side != domain.SideIncrease || !res.Delta.Equal(dec("100")) {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestScaleUpEqualSplit(t *testing.T) {
	th := defaultThresholds()
	th.MinProfit = dec("0")
	th.ScaleTotal = dec("90")
	rc := runContext(domain.PolicyScaleUp, th)
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{
		cboUnit("c1", "100", "0"),
		cboUnit("c2", "200", "0"),
		cboUnit("c3", "300", "0"),
	}})

	platform := &fakePlatform{}
	out, err := NewAllocator(platform, newMemLedger(), nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if len(out.Applied()) != 3 {
		t.Fatalf("expected 3 applied changes, got %d", len(out.Applied()))
	}
	for _, res := range out.Results {
		if !res.Delta.Equal(dec("30")) {
			t.Fatalf("%s: expected +30, got %s", res.UnitID, res.Delta)
		}
	}
}

func TestScaleUpZeroTotalChangesNothing(t *testing.T) {
	th := defaultThresholds()
	th.ScaleTotal = decimal.Zero
	rc := runContext(domain.PolicyScaleUp, th)
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{
		cboUnit("c1", "100", "10"),
		cboUnit("c2", "250", "40"),
	}})

	platform := &fakePlatform{}
	alloc := NewAllocator(platform, newMemLedger(), nil, discardLogger())
	for range 2 {
		out, err := alloc.Allocate(t.Context(), rc, set)
		if err != nil {
			t.Fatalf("Allocate error: %v", err)
		}
		if out.Skipped != 2 {
			t.Fatalf("expected both units skipped, got %d", out.Skipped)
		}
	}
	if len(platform.updates) != 0 {
		t.Fatalf("expected no platform calls, got %d", len(platform.updates))
	}
}

func TestScaleUpSkipsSmallIncrements(t *testing.T) {
	th := defaultThresholds()
	th.ScaleTotal = dec("100")
	rc := runContext(domain.PolicyScaleUp, th)
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{
		cboUnit("c1", "100", "95"),
		cboUnit("c2", "100", "5"),
	}})

	platform := &fakePlatform{}
	out, err := NewAllocator(platform, newMemLedger(), nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if out.Skipped != 1 || len(platform.updates) != 1 || platform.updates[0].unitID != "c1" {
		t.Fatalf("expected only c1 updated, got %+v (skipped %d)", platform.updates, out.Skipped)
	}
}

func TestScaleUpClampsToMaxBudget(t *testing.T) {
	th := defaultThresholds()
	th.ScaleTotal = dec("1000")
	th.MaxBudget = dec("500")
	rc := runContext(domain.PolicyScaleUp, th)
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{cboUnit("c1", "450", "10")}})

	platform := &fakePlatform{}
	out, err := NewAllocator(platform, newMemLedger(), nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if !out.Results[0].NewBudget.Equal(dec("500")) || !out.Results[0].Delta.Equal(dec("50")) {
		t.Fatalf("expected clamp to 500 with delta 50, got %+v", out.Results[0])
	}
}

func TestScaleUpNoEligibleUnits(t *testing.T) {
	rc := runContext(domain.PolicyScaleUp, defaultThresholds())
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{cboUnit("c1", "100", "-20")}})

	// No platform or ledger expectations: nothing may be called.
	out, err := NewAllocator(mocks.NewMockBudgetUpdater(t), mocks.NewMockLedger(t), nil, discardLogger()).
		Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if !errors.Is(out.Reason, port.ErrNoEligibleUnits) {
		t.Fatalf("expected ErrNoEligibleUnits, got %v", out.Reason)
	}
}

// TestScaleUpPlatformFailure keeps going after a rejected update and does
// not record it in the ledger.
func TestScaleUpPlatformFailure(t *testing.T) {
	th := defaultThresholds()
	th.ScaleTotal = dec("200")
	rc := runContext(domain.PolicyScaleUp, th)
	c1, c2 := cboUnit("c1", "100", "50"), cboUnit("c2", "100", "50")
	c1.LedgerRow, c2.LedgerRow = 1, 2
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{c1, c2}})

	platform := mocks.NewMockBudgetUpdater(t)
	ledger := mocks.NewMockLedger(t)

	platform.EXPECT().
		UpdateBudget(mock.Anything, "c1", domain.KindCampaignBudget, mock.Anything).
		Return(errors.New("http 400"))
	platform.EXPECT().
		UpdateBudget(mock.Anything, "c2", domain.KindCampaignBudget, mock.Anything).
		Return(nil)
	ledger.EXPECT().
		WriteNewBudget(mock.Anything, domain.RowRef(2), mock.MatchedBy(func(v decimal.Decimal) bool {
			return v.Equal(dec("200"))
		})).
		Return(nil)

	out, err := NewAllocator(platform, ledger, nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out.Results))
	}
	failed := out.Results[0]
	if failed.Applied || !errors.Is(failed.Err, port.ErrPlatformUpdateFailed) {
		t.Fatalf("expected c1 to fail, got %+v", failed)
	}
	if len(out.Applied()) != 1 || out.Applied()[0].UnitID != "c2" {
		t.Fatalf("expected only c2 applied")
	}
}

func TestScaleUpLedgerFailureAborts(t *testing.T) {
	th := defaultThresholds()
	th.ScaleTotal = dec("200")
	rc := runContext(domain.PolicyScaleUp, th)
	c1, c2 := cboUnit("c1", "100", "60"), cboUnit("c2", "100", "40")
	c1.LedgerRow, c2.LedgerRow = 1, 2
	set := Classify(rc, domain.UnitSet{Units: []domain.Unit{c1, c2}})

	platform := mocks.NewMockBudgetUpdater(t)
	ledger := mocks.NewMockLedger(t)
	platform.EXPECT().
		UpdateBudget(mock.Anything, "c1", domain.KindCampaignBudget, mock.Anything).
		Return(nil).Once()
	ledger.EXPECT().
		WriteNewBudget(mock.Anything, domain.RowRef(1), mock.Anything).
		Return(errors.New("connection reset"))

	out, err := NewAllocator(platform, ledger, nil, discardLogger()).Allocate(t.Context(), rc, set)
	if !errors.Is(err, port.ErrLedgerUnavailable) {
		t.Fatalf("expected ErrLedgerUnavailable, got %v", err)
	}
	if len(out.Results) != 1 {
		t.Fatalf("allocation should stop after the ledger failure, got %d results", len(out.Results))
	}
}

// TestScaleUpAggregate splits a campaign-level increment over the profitable
// ad-sets and rolls the change up to the campaign row.
func TestScaleUpAggregate(t *testing.T) {
	th := defaultThresholds()
	th.ScaleTotal = dec("120")
	th.MinBudget = dec("20")
	rc := runContext(domain.PolicyScaleUp, th)
	rc.Granularity = domain.GranularityCampaign
	ledger := newMemLedger()
	set := Classify(rc, withAggregates(
		aboUnit("a1", "c1", "50", "30"),
		aboUnit("a2", "c1", "50", "10"),
		aboUnit("a3", "c1", "50", "-5"),
	))
	set = ledger.snapshot(rc.RunID, set)

	platform := &fakePlatform{}
	out, err := NewAllocator(platform, ledger, nil, discardLogger()).Allocate(t.Context(), rc, set)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if b, _ := platform.budgetOf("a1"); !b.Equal(dec("140")) {
		t.Fatalf("expected a1 at 140, got %s", b)
	}
	if b, _ := platform.budgetOf("a2"); !b.Equal(dec("80")) {
		t.Fatalf("expected a2 at 80, got %s", b)
	}
	if _, ok := platform.budgetOf("a3"); ok {
		t.Fatalf("unprofitable ad-set should not be increased")
	}
	if len(out.Rollups) != 1 || !out.Rollups[0].NewBudget().Equal(dec("270")) {
		t.Fatalf("unexpected roll-up %+v", out.Rollups)
	}
	if v := ledger.written[set.Aggregates[0].LedgerRow]; !v.Equal(dec("270")) {
		t.Fatalf("roll-up not written to the ledger, got %s", v)
	}
}

func TestScaleUpConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		th := defaultThresholds()
		th.MinProfit = decimal.Zero
		th.ScaleTotal = decimal.NewFromInt(rapid.Int64Range(0, 20_000).Draw(t, "scale_total"))
		th.MinBudget = decimal.NewFromInt(rapid.Int64Range(1, 500).Draw(t, "min_budget"))
		th.MaxBudget = th.MinBudget.Add(decimal.NewFromInt(rapid.Int64Range(0, 5_000).Draw(t, "room")))
		rc := runContext(domain.PolicyScaleUp, th)

		n := rapid.IntRange(1, 8).Draw(t, "units")
		var units []domain.Unit
		for i := range n {
			budget := rapid.Int64Range(1, 8_000).Draw(t, "budget")
			profit := rapid.Int64Range(-500, 3_000).Draw(t, "profit")
			units = append(units, cboUnit(string(rune('a'+i)), decimal.NewFromInt(budget).String(), decimal.NewFromInt(profit).String()))
		}
		set := Classify(rc, domain.UnitSet{Units: units})

		platform := &fakePlatform{}
		alloc := NewAllocator(platform, newMemLedger(), nil, discardLogger())
		out, err := alloc.Allocate(context.Background(), rc, set)
		if err != nil {
			t.Fatalf("Allocate error: %v", err)
		}

		deltas, oldSum, newSum := decimal.Zero, decimal.Zero, decimal.Zero
		for _, res := range out.Applied() {
			deltas = deltas.Add(res.Delta)
			oldSum = oldSum.Add(res.OldBudget)
			newSum = newSum.Add(res.NewBudget)
			if res.NewBudget.LessThan(th.MinBudget) || res.NewBudget.GreaterThan(th.MaxBudget) {
				t.Fatalf("%s: budget %s outside [%s, %s]", res.UnitID, res.NewBudget, th.MinBudget, th.MaxBudget)
			}
		}
		if !deltas.Equal(newSum.Sub(oldSum)) {
			t.Fatalf("increments %s do not match budget change %s", deltas, newSum.Sub(oldSum))
		}
	})
}
