package engine

import (
	"testing"

	"github.com/google/uuid"

	"mesa-budget/internal/core/domain"
)

func sampleAccount() AccountData {
	return AccountData{
		AccountID: "act_1",
		Campaigns: []domain.CampaignRecord{
			{ID: "c1", Name: "Spring", DailyBudget: dec("300"), Status: "ACTIVE"},
			{ID: "c2", Name: "Summer", DailyBudget: dec("0"), Status: "active"},
			{ID: "c3", Name: "Paused", DailyBudget: dec("500"), Status: "PAUSED"},
		},
		CampaignInsights: []domain.InsightRecord{
			{UnitID: "c1", Spend: dec("120"), ConversionValue: dec("400")},
			{UnitID: "c1", Spend: dec("999"), ConversionValue: dec("0")},
		},
		AdSets: map[string][]domain.AdSetRecord{
			"c2": {
				{ID: "a1", CampaignID: "c2", Name: "Broad", DailyBudget: dec("50"), Status: "ACTIVE"},
				{ID: "a2", CampaignID: "c2", Name: "Lookalike", DailyBudget: dec("70"), Status: "ACTIVE"},
				{ID: "a3", CampaignID: "c2", Name: "Old", DailyBudget: dec("90"), Status: "PAUSED"},
			},
		},
		AdSetInsights: map[string][]domain.InsightRecord{
			"c2": {{UnitID: "a1", CampaignID: "c2", Spend: dec("40"), ConversionValue: dec("100")}},
		},
	}
}

func TestBuildUnits(t *testing.T) {
	rc := runContext(domain.PolicyScaleUp, defaultThresholds())
	set := BuildUnits(rc, []AccountData{sampleAccount()})

	if len(set.Units) != 3 {
		t.Fatalf("expected 3 units, got %d", len(set.Units))
	}

	c1 := set.Units[0]
	if c1.ID != "c1" || c1.Kind != domain.KindCampaignBudget {
		t.Fatalf("unexpected first unit %+v", c1)
	}
	if !c1.Profit().Equal(dec("280")) {
		t.Fatalf("first insight record should win, profit %s", c1.Profit())
	}
	if c1.AccountID != "act_1" {
		t.Fatalf("account id not filled: %q", c1.AccountID)
	}

	a1, a2 := set.Units[1], set.Units[2]
	if a1.Kind != domain.KindAdSetBudget || a1.ParentCampaignID != "c2" {
		t.Fatalf("unexpected ad-set unit %+v", a1)
	}
	if a1.DisplayName != "Summer - Broad" {
		t.Fatalf("unexpected display name %q", a1.DisplayName)
	}
	if !a2.Spend.IsZero() || !a2.ConversionValue.IsZero() {
		t.Fatalf("ad-set without insights should read zero, got %s/%s", a2.Spend, a2.ConversionValue)
	}

	agg, ok := set.Aggregate("c2")
	if !ok {
		t.Fatalf("aggregate for c2 missing")
	}
	if len(agg.Units) != 2 || !agg.CurrentBudget().Equal(dec("120")) {
		t.Fatalf("unexpected aggregate %+v", agg)
	}
	if got := AggregateDetails(agg); got != "2 active ad-sets" {
		t.Fatalf("unexpected details %q", got)
	}
	if !set.TotalBudget().Equal(dec("420")) {
		t.Fatalf("unexpected total budget %s", set.TotalBudget())
	}
}

func TestBuildUnitsAccountOverride(t *testing.T) {
	rc := runContext(domain.PolicyScaleUp, defaultThresholds())
	rc.AdSetAccounts = []string{"act_1"}
	acc := AccountData{
		AccountID: "act_1",
		Campaigns: []domain.CampaignRecord{
			{ID: "c1", Name: "Spring", DailyBudget: dec("300"), Status: "ACTIVE"},
		},
		AdSets: map[string][]domain.AdSetRecord{
			"c1": {{ID: "a1", CampaignID: "c1", Name: "Broad", DailyBudget: dec("60"), Status: "ACTIVE"}},
		},
	}

	set := BuildUnits(rc, []AccountData{acc})
	if len(set.Units) != 1 || set.Units[0].Kind != domain.KindAdSetBudget {
		t.Fatalf("override account should yield ad-set units, got %+v", set.Units)
	}
	if len(set.CampaignUnits()) != 0 {
		t.Fatalf("expected no campaign-budgeted units")
	}
}

func TestBuildUnitsEmptyAdSetCampaign(t *testing.T) {
	rc := runContext(domain.PolicyScaleUp, defaultThresholds())
	acc := AccountData{
		AccountID: "act_1",
		Campaigns: []domain.CampaignRecord{{ID: "c1", Name: "Empty", Status: "ACTIVE"}},
	}

	set := BuildUnits(rc, []AccountData{acc})
	if len(set.Units) != 0 {
		t.Fatalf("expected no units, got %d", len(set.Units))
	}
	if len(set.Aggregates) != 1 || !set.Aggregates[0].CurrentBudget().IsZero() {
		t.Fatalf("expected one empty aggregate, got %+v", set.Aggregates)
	}
}

func TestUnitSetFromRows(t *testing.T) {
	rc := runContext(domain.PolicyReallocate, defaultThresholds())
	ledger := newMemLedger()
	set := Classify(rc, BuildUnits(rc, []AccountData{sampleAccount()}))
	ledger.snapshot(rc.RunID, set)

	rows, err := ledger.ReadRows(t.Context())
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	got := UnitSetFromRows(rows)

	if len(got.Units) != len(set.Units) {
		t.Fatalf("expected %d units, got %d", len(set.Units), len(got.Units))
	}
	for i, u := range got.Units {
		want := set.Units[i]
		if u.ID != want.ID || !u.CurrentBudget.Equal(want.CurrentBudget) || !u.Profit().Equal(want.Profit()) || u.Tier != want.Tier {
			t.Fatalf("unit %d: got %+v, want %+v", i, u, want)
		}
		if u.LedgerRow == 0 {
			t.Fatalf("unit %s lost its row reference", u.ID)
		}
	}
	agg, ok := got.Aggregate("c2")
	if !ok || len(agg.Units) != 2 || agg.LedgerRow == 0 {
		t.Fatalf("unexpected aggregate %+v", agg)
	}
}

func TestLedgerRowsOfUnits(t *testing.T) {
	runID := uuid.New()
	u := cboUnit("c1", "200", "50")
	row := domain.UnitRow(runID, u)

	if row.Details != "N/A" || row.Level != domain.RowLevelUnit {
		t.Fatalf("unexpected row %+v", row)
	}
	if !row.ROAS.Equal(dec("1.5")) {
		t.Fatalf("unexpected roas %s", row.ROAS)
	}
	if !row.EffectiveBudget().Equal(dec("200")) {
		t.Fatalf("unwritten row should report its snapshot budget")
	}
	nb := dec("250")
	row.NewBudget = &nb
	if !row.EffectiveBudget().Equal(nb) {
		t.Fatalf("written row should report its new budget")
	}
}
