package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-budget/internal/adapter/graph"
	"mesa-budget/internal/adapter/notify"
	"mesa-budget/internal/adapter/postgres"
	"mesa-budget/internal/adapter/sqlite"
	"mesa-budget/internal/adapter/usecase"
	"mesa-budget/internal/config"
	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
	"mesa-budget/internal/db"
	"mesa-budget/internal/metrics"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	svc      *usecase.RunService
	registry *prometheus.Registry
	metrics  *metrics.Collector
	closers  []func()
}

// newApp opens the ledger, builds the platform client and the notifier and
// wires the run service. The caller must call close.
func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger, registry: prometheus.NewRegistry()}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.NewCollector("mesa_budget", a.registry)

	store, err := a.openLedger(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	var notifier port.Notifier = notify.NewLog(logger)
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhook(cfg.Notify.WebhookURL, cfg.Notify.Channel, cfg.Notify.Timeout)
	}

	if len(cfg.Accounts.IDs) == 0 {
		logger.Warn("no ad accounts configured")
	}
	a.svc = usecase.NewRunService(
		graph.NewClient(cfg.Platform, logger),
		store,
		notifier,
		a.metrics,
		logger,
		usecase.Options{
			Accounts:      cfg.Accounts.IDs,
			AdSetAccounts: cfg.Accounts.AdSetBudget,
			Thresholds:    cfg.Alloc.Thresholds(),
			Granularity:   domain.Granularity(cfg.Alloc.Granularity),
			DateRange:     cfg.Alloc.DateRange,
			TopN:          cfg.Alloc.TopN,
			Currency:      cfg.Alloc.Currency,
			Concurrency:   cfg.Platform.Concurrency,
		},
	)
	return a, nil
}

func (a *app) openLedger(ctx context.Context) (port.LedgerStore, error) {
	switch a.cfg.Ledger.Driver {
	case "postgres":
		// Optionally run migrations if configured. We use the Psql sub‑config.
		if a.cfg.Psql.RunMigrations {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		return postgres.NewLedgerRepository(pool), nil
	case "sqlite":
		l, err := sqlite.Open(a.cfg.Ledger.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite ledger: %w", err)
		}
		a.closers = append(a.closers, func() {
			if err := l.Close(); err != nil {
				a.logger.Warn("close sqlite ledger", slog.Any("error", err))
			}
		})
		return l, nil
	}
	return nil, fmt.Errorf("unknown ledger driver %q", a.cfg.Ledger.Driver)
}

func (a *app) metricsHandler() http.Handler {
	return promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry})
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
