package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
)

var errRejected = errors.New("rejected by platform")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// cboUnit builds a campaign-budgeted unit whose profit is value - spend with
// spend fixed at 100.
func cboUnit(id, budget, profit string) domain.Unit {
	return domain.Unit{
		ID:              id,
		AccountID:       "act_1",
		Kind:            domain.KindCampaignBudget,
		DisplayName:     "Campaign " + id,
		CurrentBudget:   dec(budget),
		Spend:           dec("100"),
		ConversionValue: dec("100").Add(dec(profit)),
	}
}

func aboUnit(id, campaignID, budget, profit string) domain.Unit {
	u := cboUnit(id, budget, profit)
	u.Kind = domain.KindAdSetBudget
	u.ParentCampaignID = campaignID
	u.DisplayName = "Campaign " + campaignID + " - " + id
	return u
}

func defaultThresholds() domain.RunThresholds {
	return domain.RunThresholds{
		MinProfit:      dec("1"),
		ScaleTotal:     dec("5000"),
		ProfitCeiling:  dec("1000"),
		ReductionPct:   dec("0.10"),
		LowThreshold:   dec("1000"),
		HighThreshold:  dec("5000"),
		ReallocPct:     dec("0.30"),
		MinBudget:      dec("100"),
		AdSetMinBudget: dec("20"),
		MaxBudget:      dec("10000"),
	}
}

func runContext(policy domain.Policy, th domain.RunThresholds) domain.RunContext {
	return domain.RunContext{
		RunID:       uuid.New(),
		Policy:      policy,
		Granularity: domain.GranularityUnit,
		Thresholds:  th,
	}
}

// withAggregates builds the aggregates of the ad-set units in units.
func withAggregates(units ...domain.Unit) domain.UnitSet {
	set := domain.UnitSet{Units: units}
	for _, u := range units {
		if u.ParentCampaignID == "" {
			continue
		}
		found := false
		for i := range set.Aggregates {
			if set.Aggregates[i].CampaignID == u.ParentCampaignID {
				set.Aggregates[i].Units = append(set.Aggregates[i].Units, u)
				found = true
			}
		}
		if !found {
			set.Aggregates = append(set.Aggregates, domain.CampaignAggregate{
				CampaignID:  u.ParentCampaignID,
				AccountID:   u.AccountID,
				DisplayName: "Campaign " + u.ParentCampaignID,
				Units:       []domain.Unit{u},
			})
		}
	}
	return set
}

type budgetUpdate struct {
	unitID string
	kind   domain.UnitKind
	budget decimal.Decimal
}

// fakePlatform records accepted updates and rejects the ids in fail.
type fakePlatform struct {
	mu      sync.Mutex
	fail    map[string]bool
	updates []budgetUpdate
}

func (f *fakePlatform) UpdateBudget(_ context.Context, unitID string, kind domain.UnitKind, budget decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[unitID] {
		return errRejected
	}
	f.updates = append(f.updates, budgetUpdate{unitID: unitID, kind: kind, budget: budget})
	return nil
}

func (f *fakePlatform) budgetOf(unitID string) (decimal.Decimal, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.updates) - 1; i >= 0; i-- {
		if f.updates[i].unitID == unitID {
			return f.updates[i].budget, true
		}
	}
	return decimal.Zero, false
}

// memLedger keeps rows in memory.
type memLedger struct {
	mu      sync.Mutex
	rows    []domain.LedgerRow
	written map[domain.RowRef]decimal.Decimal
}

func newMemLedger() *memLedger {
	return &memLedger{written: make(map[domain.RowRef]decimal.Decimal)}
}

func (l *memLedger) ClearAndRecreate(context.Context, uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = nil
	l.written = make(map[domain.RowRef]decimal.Decimal)
	return nil
}

func (l *memLedger) AppendRow(_ context.Context, row domain.LedgerRow) (domain.RowRef, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	row.Ref = domain.RowRef(len(l.rows) + 1)
	l.rows = append(l.rows, row)
	return row.Ref, nil
}

func (l *memLedger) WriteNewBudget(_ context.Context, ref domain.RowRef, value decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.written[ref] = value
	return nil
}

func (l *memLedger) ReadRows(context.Context) ([]domain.LedgerRow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.LedgerRow, len(l.rows))
	copy(out, l.rows)
	for i := range out {
		if v, ok := l.written[out[i].Ref]; ok {
			out[i].NewBudget = &v
		}
	}
	return out, nil
}

// snapshot appends every unit and aggregate of set and returns the set with
// row references attached.
func (l *memLedger) snapshot(runID uuid.UUID, set domain.UnitSet) domain.UnitSet {
	refs := make(map[string]domain.RowRef)
	for i := range set.Units {
		ref, _ := l.AppendRow(context.Background(), domain.UnitRow(runID, set.Units[i]))
		set.Units[i].LedgerRow = ref
		refs[set.Units[i].ID] = ref
	}
	for i := range set.Aggregates {
		a := &set.Aggregates[i]
		for j := range a.Units {
			a.Units[j].LedgerRow = refs[a.Units[j].ID]
		}
		ref, _ := l.AppendRow(context.Background(), domain.AggregateRow(runID, *a, AggregateDetails(*a)))
		a.LedgerRow = ref
	}
	return set
}
