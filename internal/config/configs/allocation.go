package configs

import (
	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
)

// Allocation holds the default run parameters. Every threshold can be
// overridden per run by the caller. Percentages accept both fractions
// (0.30) and whole percents (30).
type Allocation struct {
	ScaleTotal     decimal.Decimal `env:"SCALE_TOTAL" envDefault:"5000"`
	MinProfit      decimal.Decimal `env:"MIN_PROFIT" envDefault:"1"`
	ProfitCeiling  decimal.Decimal `env:"PROFIT_CEILING" envDefault:"1000"`
	ReductionPct   decimal.Decimal `env:"REDUCTION_PCT" envDefault:"0.10"`
	LowThreshold   decimal.Decimal `env:"LOW_THRESHOLD" envDefault:"1000"`
	HighThreshold  decimal.Decimal `env:"HIGH_THRESHOLD" envDefault:"5000"`
	ReallocPct     decimal.Decimal `env:"REALLOC_PCT" envDefault:"0.30"`
	MinBudget      decimal.Decimal `env:"MIN_BUDGET" envDefault:"100"`
	AdSetMinBudget decimal.Decimal `env:"ADSET_MIN_BUDGET" envDefault:"20"`
	MaxBudget      decimal.Decimal `env:"MAX_BUDGET" envDefault:"10000"`

	// DateRange is one of today, yesterday or last7.
	DateRange   string `env:"DATE_RANGE" envDefault:"today"`
	Granularity string `env:"GRANULARITY" envDefault:"unit"`
	// TopN is the number of changes listed per kind in the report.
	TopN     int    `env:"TOP_N" envDefault:"5"`
	Currency string `env:"CURRENCY" envDefault:"R$"`
}

// Thresholds builds the default threshold set.
func (c Allocation) Thresholds() domain.RunThresholds {
	return domain.RunThresholds{
		MinProfit:      c.MinProfit,
		ScaleTotal:     c.ScaleTotal,
		ProfitCeiling:  c.ProfitCeiling,
		ReductionPct:   domain.NormalizePct(c.ReductionPct),
		LowThreshold:   c.LowThreshold,
		HighThreshold:  c.HighThreshold,
		ReallocPct:     domain.NormalizePct(c.ReallocPct),
		MinBudget:      c.MinBudget,
		AdSetMinBudget: c.AdSetMinBudget,
		MaxBudget:      c.MaxBudget,
	}
}
