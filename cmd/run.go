package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
)

// thresholdFlags maps the override flags to the request fields they set.
var thresholdFlags = []struct {
	name  string
	usage string
	field func(*domain.ThresholdOverrides) **decimal.Decimal
}{
	{"min-profit", "minimum profit for scale-up", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.MinProfit }},
	{"scale-total", "amount distributed by scale-up", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.ScaleTotal }},
	{"profit-ceiling", "profit below which reduce cuts a budget", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.ProfitCeiling }},
	{"reduction-pct", "reduce cut, as 0.10 or 10", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.ReductionPct }},
	{"low-threshold", "profit below which a unit is LOW", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.LowThreshold }},
	{"high-threshold", "profit from which a unit is HIGH", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.HighThreshold }},
	{"realloc-pct", "share taken from LOW units, as 0.30 or 30", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.ReallocPct }},
	{"min-budget", "campaign budget floor", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.MinBudget }},
	{"adset-min-budget", "ad-set budget floor", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.AdSetMinBudget }},
	{"max-budget", "budget ceiling", func(o *domain.ThresholdOverrides) **decimal.Decimal { return &o.MaxBudget }},
}

func newRunCommand() *cobra.Command {
	var (
		policy string
		req    port.RunRequest
		values = make([]string, len(thresholdFlags))
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one allocation run and print its report",
		Example: "  mesa-budget run --policy scale_up --scale-total 3000\n" +
			"  mesa-budget run --policy reallocate --dry-run --date-range last7",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Policy = domain.Policy(policy)
			for i, f := range thresholdFlags {
				if !cmd.Flags().Changed(f.name) {
					continue
				}
				d, err := decimal.NewFromString(values[i])
				if err != nil {
					return fmt.Errorf("--%s: %w", f.name, err)
				}
				*f.field(&req.Thresholds) = &d
			}
			return runOnce(cmd, req)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&policy, "policy", "", "scale_up, reduce or reallocate")
	fl.BoolVar(&req.DryRun, "dry-run", false, "compute and record budgets without updating the platform")
	fl.StringVar((*string)(&req.Granularity), "granularity", "", "unit or campaign")
	fl.StringVar(&req.DateRange, "date-range", "", "today, yesterday, last7 or custom")
	fl.StringVar(&req.StartDate, "since", "", "start date of a custom range (YYYY-MM-DD)")
	fl.StringVar(&req.EndDate, "until", "", "end date of a custom range (YYYY-MM-DD)")
	for i, f := range thresholdFlags {
		fl.StringVar(&values[i], f.name, "", f.usage)
	}
	_ = cmd.MarkFlagRequired("policy")
	return cmd
}

// runOnce executes a run in the foreground. The report goes to stdout; a
// failed run exits with status 1 and a nothing-to-do run with status 0.
func runOnce(cmd *cobra.Command, req port.RunRequest) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup error", slog.Any("error", err))
		return exitCode(1)
	}
	defer a.close()

	rep, err := a.svc.Run(ctx, req)
	if rep != nil {
		fmt.Fprint(os.Stdout, rep.Text)
	}
	switch {
	case errors.Is(err, port.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidThresholds):
		return err
	case err != nil:
		logger.Error("run failed", slog.Any("error", err))
		return exitCode(1)
	}
	if rep.NotifyErr != nil {
		logger.Warn("report not delivered", slog.Any("error", rep.NotifyErr))
	}
	return nil
}
