// Package engine implements the budget allocation engine: the unit model,
// the classifier, the three allocation policies and the run summary.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
)

// AccountData is everything the platform returned for one ad account over
// the evaluation window. Ad-set data is keyed by campaign id and only present
// for ad-set-budgeted campaigns.
type AccountData struct {
	AccountID        string
	Campaigns        []domain.CampaignRecord
	CampaignInsights []domain.InsightRecord
	AdSets           map[string][]domain.AdSetRecord
	AdSetInsights    map[string][]domain.InsightRecord
}

// IsAdSetBudgeted reports whether a campaign distributes its budget per
// ad-set. The per-account override wins; a zero or absent campaign budget is
// only a fallback signal.
func IsAdSetBudgeted(rc domain.RunContext, c domain.CampaignRecord) bool {
	if rc.IsAdSetAccount(c.AccountID) {
		return true
	}
	return !c.DailyBudget.IsPositive()
}

// BuildUnits flattens the platform records into allocatable units. Inactive
// campaigns and ad-sets are dropped. Campaign-budgeted campaigns yield one
// unit each; ad-set-budgeted campaigns yield one unit per active ad-set plus
// an aggregate used for roll-up bookkeeping.
func BuildUnits(rc domain.RunContext, accounts []AccountData) domain.UnitSet {
	var set domain.UnitSet
	for _, acc := range accounts {
		campaignPerf := indexInsights(acc.CampaignInsights)
		for _, c := range acc.Campaigns {
			if !c.IsActive() {
				continue
			}
			if c.AccountID == "" {
				c.AccountID = acc.AccountID
			}
			if !IsAdSetBudgeted(rc, c) {
				perf := campaignPerf[c.ID]
				set.Units = append(set.Units, domain.Unit{
					ID:              c.ID,
					AccountID:       c.AccountID,
					Kind:            domain.KindCampaignBudget,
					DisplayName:     c.Name,
					CurrentBudget:   c.DailyBudget,
					Spend:           perf.Spend,
					ConversionValue: perf.ConversionValue,
				})
				continue
			}

			agg := domain.CampaignAggregate{
				CampaignID:  c.ID,
				AccountID:   c.AccountID,
				DisplayName: c.Name,
			}
			adsetPerf := indexInsights(acc.AdSetInsights[c.ID])
			for _, as := range acc.AdSets[c.ID] {
				if !as.IsActive() {
					continue
				}
				perf := adsetPerf[as.ID]
				agg.Units = append(agg.Units, domain.Unit{
					ID:               as.ID,
					ParentCampaignID: c.ID,
					AccountID:        c.AccountID,
					Kind:             domain.KindAdSetBudget,
					DisplayName:      fmt.Sprintf("%s - %s", c.Name, as.Name),
					CurrentBudget:    as.DailyBudget,
					Spend:            perf.Spend,
					ConversionValue:  perf.ConversionValue,
				})
			}
			set.Units = append(set.Units, agg.Units...)
			set.Aggregates = append(set.Aggregates, agg)
		}
	}
	return set
}

// AggregateDetails describes an aggregate for its ledger row.
func AggregateDetails(a domain.CampaignAggregate) string {
	return fmt.Sprintf("%d active ad-sets", len(a.Units))
}

// UnitSetFromRows rebuilds a unit set from a ledger snapshot. Unit rows become
// units carrying their row reference; campaign rows become aggregates owning
// the unit rows whose parent is that campaign.
func UnitSetFromRows(rows []domain.LedgerRow) domain.UnitSet {
	var set domain.UnitSet
	byCampaign := make(map[string][]domain.Unit)
	for _, r := range rows {
		if r.Level != domain.RowLevelUnit {
			continue
		}
		u := r.Unit()
		set.Units = append(set.Units, u)
		if u.ParentCampaignID != "" {
			byCampaign[u.ParentCampaignID] = append(byCampaign[u.ParentCampaignID], u)
		}
	}
	for _, r := range rows {
		if r.Level != domain.RowLevelCampaign {
			continue
		}
		set.Aggregates = append(set.Aggregates, domain.CampaignAggregate{
			CampaignID:  r.UnitID,
			AccountID:   r.AccountID,
			DisplayName: r.DisplayName,
			Units:       byCampaign[r.UnitID],
			Tier:        r.Tier,
			LedgerRow:   r.Ref,
		})
	}
	return set
}

type performance struct {
	Spend           decimal.Decimal
	ConversionValue decimal.Decimal
}

// indexInsights maps unit ids to performance. The first record of a unit
// wins; units without a record read as zero.
func indexInsights(records []domain.InsightRecord) map[string]performance {
	idx := make(map[string]performance, len(records))
	for _, r := range records {
		if _, ok := idx[r.UnitID]; ok {
			continue
		}
		idx[r.UnitID] = performance{Spend: r.Spend, ConversionValue: r.ConversionValue}
	}
	return idx
}
