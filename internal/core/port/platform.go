package port

import (
	"context"

	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
)

// Platform is the outbound port to the advertising platform. Implementations
// own pagination, retries and per-call timeouts.
type Platform interface {
	// ListActiveCampaigns returns the campaigns of an ad account.
	ListActiveCampaigns(ctx context.Context, accountID string) ([]domain.CampaignRecord, error)
	// ListActiveAdSets returns the ad-sets of a campaign.
	ListActiveAdSets(ctx context.Context, campaignID string) ([]domain.AdSetRecord, error)
	// GetInsights returns spend and conversion value per campaign or ad-set
	// for the query window.
	GetInsights(ctx context.Context, q domain.InsightsQuery) ([]domain.InsightRecord, error)
	BudgetUpdater
}

// BudgetUpdater applies a new daily budget to a campaign or an ad-set. A nil
// error means the platform accepted the change.
type BudgetUpdater interface {
	UpdateBudget(ctx context.Context, unitID string, kind domain.UnitKind, budget decimal.Decimal) error
}
