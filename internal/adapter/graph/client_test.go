package graph

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-budget/internal/config/configs"
	"mesa-budget/internal/core/domain"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	base, err := url.Parse(srv.URL + "/v17.0")
	require.NoError(t, err)
	return NewClient(configs.Platform{
		AccessToken: "secret",
		BaseURL:     *base,
		Timeout:     5 * time.Second,
		PageSize:    2,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListActiveCampaignsFollowsPaging(t *testing.T) {
	var calls atomic.Int32
	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/v17.0/act_1/campaigns", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "secret", r.URL.Query().Get("access_token"))
		if r.URL.Query().Get("after") == "" {
			_, _ = io.WriteString(w, `{"data":[
				{"id":"c1","name":"Spring","daily_budget":"15050","status":"ACTIVE"},
				{"id":"c2","name":"Summer","status":"ACTIVE"}],
				"paging":{"next":"`+srvURL+`/v17.0/act_1/campaigns?after=x&access_token=secret"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":[{"id":"c3","name":"Old","daily_budget":"1000","status":"PAUSED"}]}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	srvURL = srv.URL
	base, _ := url.Parse(srv.URL + "/v17.0")
	c := NewClient(configs.Platform{AccessToken: "secret", BaseURL: *base, Timeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := c.ListActiveCampaigns(t.Context(), "act_1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int32(2), calls.Load())
	assert.True(t, got[0].DailyBudget.Equal(decimal.RequireFromString("150.50")))
	assert.True(t, got[1].DailyBudget.IsZero())
	assert.Equal(t, "act_1", got[2].AccountID)
	assert.False(t, got[2].IsActive())
}

func TestGetInsightsSumsPurchaseValues(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v17.0/act_1/insights", r.URL.Path)
		assert.Equal(t, "adset", q.Get("level"))
		assert.Equal(t, "2026-01-01", q.Get("time_range[since]"))
		assert.Equal(t, "2026-01-07", q.Get("time_range[until]"))
		assert.Equal(t, `[{"field":"campaign.id","operator":"EQUAL","value":"c9"}]`, q.Get("filtering"))
		_, _ = io.WriteString(w, `{"data":[{
			"campaign_id":"c9","adset_id":"a1","spend":"40.10",
			"action_values":[
				{"action_type":"offsite_conversion.purchase","value":"70"},
				{"action_type":"offsite_conversion.fb_pixel_purchase","value":"30.5"},
				{"action_type":"link_click","value":"999"}]}]}`)
	}))

	got, err := c.GetInsights(t.Context(), domain.InsightsQuery{
		AccountID:  "act_1",
		CampaignID: "c9",
		Level:      domain.LevelAdSet,
		Window:     domain.NewWindow("custom", "2026-01-01", "2026-01-07"),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].UnitID)
	assert.Equal(t, "c9", got[0].CampaignID)
	assert.True(t, got[0].Spend.Equal(decimal.RequireFromString("40.10")))
	assert.True(t, got[0].ConversionValue.Equal(decimal.RequireFromString("100.5")))
}

func TestGetInsightsPreset(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "last_7d", r.URL.Query().Get("date_preset"))
		assert.Equal(t, "campaign", r.URL.Query().Get("level"))
		_, _ = io.WriteString(w, `{"data":[{"campaign_id":"c1","spend":"10"}]}`)
	}))

	got, err := c.GetInsights(t.Context(), domain.InsightsQuery{AccountID: "act_1", Window: domain.NewWindow("last7", "", "")})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].UnitID)
	assert.True(t, got[0].ConversionValue.IsZero())
}

func TestUpdateBudgetSendsCents(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v17.0/a1", r.URL.Path)
		assert.Equal(t, "6550", r.PostForm.Get("daily_budget"))
		assert.Equal(t, "secret", r.PostForm.Get("access_token"))
		_, _ = io.WriteString(w, `{"success":true}`)
	}))

	err := c.UpdateBudget(t.Context(), "a1", domain.KindAdSetBudget, decimal.RequireFromString("65.509"))
	require.NoError(t, err)
}

func TestUpdateBudgetNotAcknowledged(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false}`)
	}))

	err := c.UpdateBudget(t.Context(), "c1", domain.KindCampaignBudget, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"User request limit reached","type":"OAuthException","code":17,"error_subcode":2446079,"fbtrace_id":"AbC"}}`)
	}))

	_, err := c.ListActiveAdSets(t.Context(), "c1")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, 17, apiErr.Code)
	assert.Equal(t, "AbC", apiErr.TraceID)
	assert.True(t, IsRateLimited(err))
	assert.Contains(t, err.Error(), "User request limit reached")
}

func TestRateLimiterRejectsOverBurst(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[]}`)
	}))
	c.limiter.SetLimit(0)
	c.limiter.SetBurst(0)

	_, err := c.ListActiveAdSets(t.Context(), "c1")
	assert.Error(t, err)
}
