// Package graph implements the platform port on top of the Facebook Graph
// Marketing API.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"mesa-budget/internal/config/configs"
	"mesa-budget/internal/core/domain"
)

// purchaseActions are the action types counted as conversion value.
var purchaseActions = map[string]bool{
	"offsite_conversion.purchase":          true,
	"offsite_conversion.fb_pixel_purchase": true,
}

// Client talks to the Graph API. Every request waits on a shared token
// bucket; list endpoints follow paging.next until the last page.
type Client struct {
	baseURL  string
	token    string
	pageSize int
	http     *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewClient builds a client from the platform configuration.
func NewClient(cfg configs.Platform, logger *slog.Logger) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL.String(), "/"),
		token:    cfg.AccessToken,
		pageSize: cfg.PageSize,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(limit, burst),
		logger:   logger,
	}
}

type campaignDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DailyBudget string `json:"daily_budget"`
	Status      string `json:"status"`
}

type adSetDTO struct {
	ID          string `json:"id"`
	CampaignID  string `json:"campaign_id"`
	Name        string `json:"name"`
	DailyBudget string `json:"daily_budget"`
	Status      string `json:"status"`
}

type insightDTO struct {
	CampaignID   string `json:"campaign_id"`
	AdSetID      string `json:"adset_id"`
	Spend        string `json:"spend"`
	ActionValues []struct {
		ActionType string `json:"action_type"`
		Value      string `json:"value"`
	} `json:"action_values"`
}

type page[T any] struct {
	Data   []T `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// ListActiveCampaigns returns every campaign of the account with its status;
// filtering on ACTIVE is left to the unit model.
func (c *Client) ListActiveCampaigns(ctx context.Context, accountID string) ([]domain.CampaignRecord, error) {
	q := url.Values{"fields": {"id,name,daily_budget,status"}}
	items, err := fetchAll[campaignDTO](ctx, c, c.endpoint(accountID+"/campaigns", q))
	if err != nil {
		return nil, fmt.Errorf("list campaigns of %s: %w", accountID, err)
	}
	out := make([]domain.CampaignRecord, 0, len(items))
	for _, it := range items {
		budget, err := parseCents(it.DailyBudget)
		if err != nil {
			return nil, fmt.Errorf("campaign %s: %w", it.ID, err)
		}
		out = append(out, domain.CampaignRecord{
			ID:          it.ID,
			AccountID:   accountID,
			Name:        it.Name,
			DailyBudget: budget,
			Status:      it.Status,
		})
	}
	return out, nil
}

// ListActiveAdSets returns the ad-sets of a campaign.
func (c *Client) ListActiveAdSets(ctx context.Context, campaignID string) ([]domain.AdSetRecord, error) {
	q := url.Values{"fields": {"id,name,daily_budget,status,campaign_id"}}
	items, err := fetchAll[adSetDTO](ctx, c, c.endpoint(campaignID+"/adsets", q))
	if err != nil {
		return nil, fmt.Errorf("list ad-sets of %s: %w", campaignID, err)
	}
	out := make([]domain.AdSetRecord, 0, len(items))
	for _, it := range items {
		budget, err := parseCents(it.DailyBudget)
		if err != nil {
			return nil, fmt.Errorf("ad-set %s: %w", it.ID, err)
		}
		if it.CampaignID == "" {
			it.CampaignID = campaignID
		}
		out = append(out, domain.AdSetRecord{
			ID:          it.ID,
			CampaignID:  it.CampaignID,
			Name:        it.Name,
			DailyBudget: budget,
			Status:      it.Status,
		})
	}
	return out, nil
}

// GetInsights returns spend and purchase value per campaign or per ad-set.
func (c *Client) GetInsights(ctx context.Context, iq domain.InsightsQuery) ([]domain.InsightRecord, error) {
	level := iq.Level
	if level == "" {
		level = domain.LevelCampaign
	}
	q := url.Values{
		"fields": {"campaign_id,adset_id,spend,action_values"},
		"level":  {string(level)},
	}
	if iq.Window.Custom() {
		q.Set("time_range[since]", iq.Window.Since)
		q.Set("time_range[until]", iq.Window.Until)
	} else {
		preset := iq.Window.Preset
		if preset == "" {
			preset = "today"
		}
		q.Set("date_preset", preset)
	}
	if iq.CampaignID != "" {
		q.Set("filtering", fmt.Sprintf(`[{"field":"campaign.id","operator":"EQUAL","value":%q}]`, iq.CampaignID))
	}

	items, err := fetchAll[insightDTO](ctx, c, c.endpoint(iq.AccountID+"/insights", q))
	if err != nil {
		return nil, fmt.Errorf("insights of %s: %w", iq.AccountID, err)
	}
	out := make([]domain.InsightRecord, 0, len(items))
	for _, it := range items {
		rec := domain.InsightRecord{UnitID: it.CampaignID, CampaignID: it.CampaignID, ConversionValue: decimal.Zero}
		if level == domain.LevelAdSet {
			rec.UnitID = it.AdSetID
		}
		if rec.Spend, err = parseAmount(it.Spend); err != nil {
			return nil, fmt.Errorf("insight %s: spend: %w", rec.UnitID, err)
		}
		for _, av := range it.ActionValues {
			if !purchaseActions[av.ActionType] {
				continue
			}
			v, err := parseAmount(av.Value)
			if err != nil {
				return nil, fmt.Errorf("insight %s: %s: %w", rec.UnitID, av.ActionType, err)
			}
			rec.ConversionValue = rec.ConversionValue.Add(v)
		}
		out = append(out, rec)
	}
	return out, nil
}

// UpdateBudget sets the daily budget of a campaign or an ad-set. Both live
// on the object's own node; the budget is sent as integer cents.
func (c *Client) UpdateBudget(ctx context.Context, unitID string, kind domain.UnitKind, budget decimal.Decimal) error {
	form := url.Values{
		"daily_budget": {strconv.FormatInt(domain.ToCents(budget), 10)},
		"access_token": {c.token},
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/"+unitID, strings.NewReader(form.Encode()), &resp); err != nil {
		return fmt.Errorf("update %s %s: %w", kind.Short(), unitID, err)
	}
	if !resp.Success {
		return fmt.Errorf("update %s %s: %w", kind.Short(), unitID, ErrUnexpectedResponse)
	}
	c.logger.Debug("graph budget updated", slog.String("unit_id", unitID), slog.String("budget", budget.StringFixed(2)))
	return nil
}

func (c *Client) endpoint(path string, q url.Values) string {
	q.Set("access_token", c.token)
	if c.pageSize > 0 {
		q.Set("limit", strconv.Itoa(c.pageSize))
	}
	return c.baseURL + "/" + path + "?" + q.Encode()
}

func fetchAll[T any](ctx context.Context, c *Client, next string) ([]T, error) {
	var out []T
	for next != "" {
		var p page[T]
		if err := c.do(ctx, http.MethodGet, next, nil, &p); err != nil {
			return nil, err
		}
		out = append(out, p.Data...)
		next = p.Paging.Next
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, target string, body io.Reader, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		apiErr := eb.apiError(resp.StatusCode)
		if IsRateLimited(apiErr) {
			c.logger.Warn("graph api throttled", slog.Int("code", apiErr.Code), slog.String("trace_id", apiErr.TraceID))
		}
		return apiErr
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseCents reads an integer cents amount; an empty value is zero.
func parseCents(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("daily budget %q: %w", s, err)
	}
	return domain.FromCents(n), nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
