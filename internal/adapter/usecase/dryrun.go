package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
)

// dryRunUpdater accepts every update without calling the platform.
type dryRunUpdater struct {
	logger *slog.Logger
}

func (d dryRunUpdater) UpdateBudget(_ context.Context, unitID string, kind domain.UnitKind, budget decimal.Decimal) error {
	d.logger.Info("dry run, platform not called",
		slog.String("unit_id", unitID),
		slog.String("kind", string(kind)),
		slog.String("budget", budget.StringFixed(2)))
	return nil
}
