package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/engine"
)

// collect fetches the data of every account of the run, at most
// opts.Concurrency accounts at a time. The result keeps the account order. The
// first failure cancels the remaining fetches.
func (s *RunService) collect(ctx context.Context, rc domain.RunContext, logger *slog.Logger) ([]engine.AccountData, error) {
	out := make([]engine.AccountData, len(rc.Accounts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, accountID := range rc.Accounts {
		g.Go(func() error {
			data, err := s.collectAccount(gctx, rc, accountID)
			if err != nil {
				return fmt.Errorf("account %s: %w", accountID, err)
			}
			out[i] = data
			logger.Info("account collected",
				slog.String("account_id", accountID),
				slog.Int("campaigns", len(data.Campaigns)),
				slog.Int("adset_campaigns", len(data.AdSets)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// collectAccount reads campaigns and campaign insights, plus ad-sets and
// ad-set insights for every active ad-set-budgeted campaign.
func (s *RunService) collectAccount(ctx context.Context, rc domain.RunContext, accountID string) (engine.AccountData, error) {
	data := engine.AccountData{
		AccountID:     accountID,
		AdSets:        make(map[string][]domain.AdSetRecord),
		AdSetInsights: make(map[string][]domain.InsightRecord),
	}

	campaigns, err := s.platform.ListActiveCampaigns(ctx, accountID)
	if err != nil {
		return data, err
	}
	data.Campaigns = campaigns

	data.CampaignInsights, err = s.platform.GetInsights(ctx, domain.InsightsQuery{
		AccountID: accountID,
		Level:     domain.LevelCampaign,
		Window:    rc.Window,
	})
	if err != nil {
		return data, err
	}

	for _, c := range campaigns {
		if c.AccountID == "" {
			c.AccountID = accountID
		}
		if !c.IsActive() || !engine.IsAdSetBudgeted(rc, c) {
			continue
		}
		adsets, err := s.platform.ListActiveAdSets(ctx, c.ID)
		if err != nil {
			return data, err
		}
		insights, err := s.platform.GetInsights(ctx, domain.InsightsQuery{
			AccountID:  accountID,
			CampaignID: c.ID,
			Level:      domain.LevelAdSet,
			Window:     rc.Window,
		})
		if err != nil {
			return data, err
		}
		data.AdSets[c.ID] = adsets
		data.AdSetInsights[c.ID] = insights
	}
	return data, nil
}
