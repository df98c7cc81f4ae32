package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-budget/internal/core/domain"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "ledger", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestLedgerRoundTrip(t *testing.T) {
	l := openTestLedger(t)
	ctx := t.Context()
	runID := uuid.New()

	require.NoError(t, l.ClearAndRecreate(ctx, runID))

	unit := domain.Unit{
		ID:               "a1",
		ParentCampaignID: "c1",
		AccountID:        "act_1",
		Kind:             domain.KindAdSetBudget,
		DisplayName:      "Spring - Broad",
		CurrentBudget:    decimal.RequireFromString("50.25"),
		Spend:            decimal.RequireFromString("40"),
		ConversionValue:  decimal.RequireFromString("100"),
		Tier:             domain.TierHigh,
	}
	ref1, err := l.AppendRow(ctx, domain.UnitRow(runID, unit))
	require.NoError(t, err)
	agg := domain.CampaignAggregate{CampaignID: "c1", AccountID: "act_1", DisplayName: "Spring", Units: []domain.Unit{unit}}
	ref2, err := l.AppendRow(ctx, domain.AggregateRow(runID, agg, "1 active ad-sets"))
	require.NoError(t, err)
	assert.Equal(t, domain.RowRef(1), ref1)
	assert.Equal(t, domain.RowRef(2), ref2)

	require.NoError(t, l.WriteNewBudget(ctx, ref1, decimal.RequireFromString("65.5")))

	rows, err := l.ReadRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	got := rows[0]
	assert.Equal(t, runID, got.RunID)
	assert.Equal(t, domain.RowLevelUnit, got.Level)
	assert.Equal(t, "c1", got.ParentCampaignID)
	assert.Equal(t, domain.TierHigh, got.Tier)
	assert.True(t, got.CurrentBudget.Equal(decimal.RequireFromString("50.25")))
	assert.True(t, got.Profit.Equal(decimal.RequireFromString("60")))
	assert.True(t, got.ROAS.Equal(decimal.RequireFromString("2.5")))
	require.NotNil(t, got.NewBudget)
	assert.True(t, got.NewBudget.Equal(decimal.RequireFromString("65.5")))

	assert.Equal(t, domain.RowLevelCampaign, rows[1].Level)
	assert.Equal(t, "1 active ad-sets", rows[1].Details)
	assert.Nil(t, rows[1].NewBudget)
}

func TestLedgerClearRestartsRefs(t *testing.T) {
	l := openTestLedger(t)
	ctx := t.Context()
	row := domain.UnitRow(uuid.New(), domain.Unit{ID: "c1", Kind: domain.KindCampaignBudget})

	_, err := l.AppendRow(ctx, row)
	require.NoError(t, err)
	_, err = l.AppendRow(ctx, row)
	require.NoError(t, err)

	require.NoError(t, l.ClearAndRecreate(ctx, uuid.New()))
	rows, err := l.ReadRows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	ref, err := l.AppendRow(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, domain.RowRef(1), ref)
}

func TestLedgerWriteUnknownRow(t *testing.T) {
	l := openTestLedger(t)
	err := l.WriteNewBudget(t.Context(), 42, decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestRunHistory(t *testing.T) {
	l := openTestLedger(t)
	ctx := t.Context()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := range 3 {
		rec := domain.RunRecord{
			ID:             uuid.New(),
			Policy:         domain.PolicyScaleUp,
			State:          domain.StateReported,
			StartedAt:      base.Add(time.Duration(i) * time.Hour),
			FinishedAt:     base.Add(time.Duration(i)*time.Hour + time.Minute),
			UnitsEvaluated: 10 + i,
			ChangesApplied: i,
			AmountMoved:    decimal.NewFromInt(int64(100 * i)),
			TotalBudget:    decimal.RequireFromString("1234.56"),
			Summary:        "report",
		}
		require.NoError(t, l.SaveRun(ctx, rec))
	}

	runs, err := l.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 12, runs[0].UnitsEvaluated)
	assert.Equal(t, 11, runs[1].UnitsEvaluated)
	assert.True(t, runs[0].AmountMoved.Equal(decimal.NewFromInt(200)))
	assert.True(t, base.Add(2*time.Hour).Equal(runs[0].StartedAt))

	runs[0].State = domain.StateAborted
	require.NoError(t, l.SaveRun(ctx, runs[0]))
	runs, err = l.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, domain.StateAborted, runs[0].State)

	_, err = l.ListRuns(ctx, 0)
	assert.Error(t, err)
}
