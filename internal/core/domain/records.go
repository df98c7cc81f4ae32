package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StatusActive is the platform status of records that take part in a run.
const StatusActive = "ACTIVE"

// CampaignRecord is a campaign as returned by the advertising platform.
// DailyBudget is zero when the campaign has no campaign-level budget.
type CampaignRecord struct {
	ID          string
	AccountID   string
	Name        string
	DailyBudget decimal.Decimal
	Status      string
}

// IsActive reports whether the campaign status is ACTIVE.
func (c CampaignRecord) IsActive() bool { return isActive(c.Status) }

// AdSetRecord is an ad-set as returned by the advertising platform.
type AdSetRecord struct {
	ID          string
	CampaignID  string
	Name        string
	DailyBudget decimal.Decimal
	Status      string
}

// IsActive reports whether the ad-set status is ACTIVE.
func (a AdSetRecord) IsActive() bool { return isActive(a.Status) }

// InsightRecord is the performance of one campaign or ad-set over the
// evaluation window. UnitID is the campaign id or the ad-set id depending on
// the level the insights were requested at.
type InsightRecord struct {
	UnitID          string
	CampaignID      string
	Spend           decimal.Decimal
	ConversionValue decimal.Decimal
}

// InsightLevel selects the granularity of an insights request.
type InsightLevel string

const (
	LevelCampaign InsightLevel = "campaign"
	LevelAdSet    InsightLevel = "adset"
)

// InsightsQuery describes an insights request. CampaignID restricts ad-set
// level requests to a single campaign.
type InsightsQuery struct {
	AccountID  string
	CampaignID string
	Level      InsightLevel
	Window     Window
}

// Window is the evaluation period. Either Preset or the Since/Until pair
// (YYYY-MM-DD) is set.
type Window struct {
	Preset string
	Since  string
	Until  string
}

// Custom reports whether the window is an explicit date range.
func (w Window) Custom() bool { return w.Preset == "" && w.Since != "" && w.Until != "" }

// NewWindow converts a date range name into a Window. "custom" requires both
// dates; otherwise the range falls back to today.
func NewWindow(dateRange, since, until string) Window {
	if dateRange == "custom" && since != "" && until != "" {
		return Window{Since: since, Until: until}
	}
	presets := map[string]string{"today": "today", "yesterday": "yesterday", "last7": "last_7d"}
	if p, ok := presets[dateRange]; ok {
		return Window{Preset: p}
	}
	return Window{Preset: "today"}
}

// FromCents converts an integer amount of cents into currency units.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

// ToCents converts currency units into integer cents, truncating fractions
// of a cent.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).IntPart()
}

func isActive(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), StatusActive)
}
