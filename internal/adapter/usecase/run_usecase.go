package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/engine"
	"mesa-budget/internal/core/port"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Options carries the configured defaults of the service.
type Options struct {
	Accounts      []string
	AdSetAccounts []string
	Thresholds    domain.RunThresholds
	Granularity   domain.Granularity
	DateRange     string
	TopN          int
	Currency      string
	// Concurrency bounds the number of accounts collected at once.
	Concurrency int
}

// RunService implements port.RunUseCase. It collects platform data, builds
// and classifies units, snapshots them into the ledger, allocates and
// reports. At most one run executes at a time.
type RunService struct {
	platform port.Platform
	store    port.LedgerStore
	notifier port.Notifier
	metrics  port.Metrics
	logger   *slog.Logger
	opts     Options
	now      func() time.Time

	running atomic.Bool
	tracker tracker
}

// NewRunService wires the use case. A nil metrics sink discards
// observations.
func NewRunService(platform port.Platform, store port.LedgerStore, notifier port.Notifier, metrics port.Metrics, logger *slog.Logger, opts Options) *RunService {
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.Granularity == "" {
		opts.Granularity = domain.GranularityUnit
	}
	if opts.TopN <= 0 {
		opts.TopN = engine.DefaultTopN
	}
	return &RunService{
		platform: platform,
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
	}
}

// Run executes a run and waits for it to finish. Cancelling ctx does not
// stop a run once it has started.
func (s *RunService) Run(ctx context.Context, req port.RunRequest) (*port.RunReport, error) {
	rc, err := s.runContext(req)
	if err != nil {
		return nil, err
	}
	if !s.running.CompareAndSwap(false, true) {
		return nil, port.ErrRunInProgress
	}
	defer s.running.Store(false)

	s.tracker.begin(rc)
	return s.execute(context.WithoutCancel(ctx), rc)
}

// Start launches a run in the background. The run outlives ctx.
func (s *RunService) Start(ctx context.Context, req port.RunRequest) (uuid.UUID, error) {
	rc, err := s.runContext(req)
	if err != nil {
		return uuid.Nil, err
	}
	if !s.running.CompareAndSwap(false, true) {
		return uuid.Nil, port.ErrRunInProgress
	}

	s.tracker.begin(rc)
	go func() {
		defer s.running.Store(false)
		if _, err := s.execute(context.WithoutCancel(ctx), rc); err != nil {
			s.logger.Error("run failed", slog.String("run_id", rc.RunID.String()), slog.Any("error", err))
		}
	}()
	return rc.RunID, nil
}

// Current returns the state and log of the latest run.
func (s *RunService) Current() port.RunStatus {
	return s.tracker.status()
}

// History returns the latest run records. limit is clamped to [1, 100] and
// defaults to 20.
func (s *RunService) History(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	return s.store.ListRuns(ctx, limit)
}

// Accounts describes the configured accounts.
func (s *RunService) Accounts() port.AccountsStatus {
	st := port.AccountsStatus{
		Total:         len(s.opts.Accounts),
		Accounts:      slices.Clone(s.opts.Accounts),
		AdSetAccounts: slices.Clone(s.opts.AdSetAccounts),
	}
	for _, id := range s.opts.Accounts {
		if slices.Contains(s.opts.AdSetAccounts, id) {
			st.AdSetBudget++
		} else {
			st.CampaignBudget++
		}
	}
	return st
}

// runContext validates a request and merges it with the defaults.
func (s *RunService) runContext(req port.RunRequest) (domain.RunContext, error) {
	policy, err := domain.ParsePolicy(string(req.Policy))
	if err != nil {
		return domain.RunContext{}, fmt.Errorf("%w: %v", port.ErrInvalidRequest, err)
	}

	granularity := req.Granularity
	if granularity == "" {
		granularity = s.opts.Granularity
	}
	if granularity != domain.GranularityUnit && granularity != domain.GranularityCampaign {
		return domain.RunContext{}, fmt.Errorf("%w: unknown granularity %q", port.ErrInvalidRequest, granularity)
	}

	dateRange := req.DateRange
	if dateRange == "" {
		dateRange = s.opts.DateRange
	}
	if dateRange == "custom" {
		for _, d := range []string{req.StartDate, req.EndDate} {
			if _, err := time.Parse(time.DateOnly, d); err != nil {
				return domain.RunContext{}, fmt.Errorf("%w: custom range needs start and end dates as YYYY-MM-DD", port.ErrInvalidRequest)
			}
		}
		if req.StartDate > req.EndDate {
			return domain.RunContext{}, fmt.Errorf("%w: start date after end date", port.ErrInvalidRequest)
		}
	}

	th := s.opts.Thresholds.Merge(req.Thresholds)
	if err := th.Validate(); err != nil {
		return domain.RunContext{}, err
	}

	return domain.RunContext{
		RunID:         uuid.New(),
		Policy:        policy,
		Granularity:   granularity,
		Accounts:      slices.Clone(s.opts.Accounts),
		AdSetAccounts: slices.Clone(s.opts.AdSetAccounts),
		Window:        domain.NewWindow(dateRange, req.StartDate, req.EndDate),
		Thresholds:    th,
		DryRun:        req.DryRun,
		TopN:          s.opts.TopN,
	}, nil
}

// execution is the state of one run.
type execution struct {
	rc      domain.RunContext
	logger  *slog.Logger
	started time.Time
	set     domain.UnitSet
	report  *port.RunReport
}

func (s *RunService) execute(ctx context.Context, rc domain.RunContext) (*port.RunReport, error) {
	ex := &execution{
		rc: rc,
		logger: slog.New(teeHandler{Handler: s.logger.Handler(), t: &s.tracker}).
			With(slog.String("run_id", rc.RunID.String())),
		started: s.now(),
		report:  &port.RunReport{RunID: rc.RunID, Policy: rc.Policy},
	}
	ex.logger.Info("run started",
		slog.String("policy", string(rc.Policy)),
		slog.String("granularity", string(rc.Granularity)),
		slog.Int("accounts", len(rc.Accounts)),
		slog.Bool("dry_run", rc.DryRun))
	s.transition(ex, domain.StateCollecting)

	// The ledger is cleared before any platform call: a run that cannot
	// record its changes must not make any.
	if err := s.store.ClearAndRecreate(ctx, rc.RunID); err != nil {
		return s.abort(ctx, ex, nil, fmt.Errorf("%w: clear: %v", port.ErrLedgerUnavailable, err))
	}

	accounts, err := s.collect(ctx, rc, ex.logger)
	if err != nil {
		return s.abort(ctx, ex, nil, fmt.Errorf("collect: %w", err))
	}

	ex.set = engine.Classify(rc, engine.BuildUnits(rc, accounts))
	ex.logger.Info("units classified",
		slog.Int("units", len(ex.set.Units)),
		slog.Int("aggregates", len(ex.set.Aggregates)))
	s.transition(ex, domain.StateClassified)

	if err = s.snapshot(ctx, ex); err != nil {
		return s.abort(ctx, ex, nil, err)
	}
	if rc.Policy == domain.PolicyReallocate {
		rows, err := s.store.ReadRows(ctx)
		if err != nil {
			return s.abort(ctx, ex, nil, fmt.Errorf("%w: read rows: %v", port.ErrLedgerUnavailable, err))
		}
		ex.set = engine.UnitSetFromRows(rows)
	}

	s.transition(ex, domain.StateAllocating)
	var updater port.BudgetUpdater = s.platform
	if rc.DryRun {
		updater = dryRunUpdater{logger: ex.logger}
	}
	out, err := engine.NewAllocator(updater, s.store, s.metrics, ex.logger).Allocate(ctx, rc, ex.set)
	if err != nil {
		return s.abort(ctx, ex, out, err)
	}

	if out.Reason != nil {
		ex.report.Reason = out.Reason
		ex.logger.Info("nothing to do", slog.String("reason", out.Reason.Error()))
		s.transition(ex, domain.StateAborted)
	} else {
		s.transition(ex, domain.StateApplied)
	}
	s.report(ctx, ex, out, "")
	if ex.report.State == domain.StateApplied {
		s.transition(ex, domain.StateReported)
	}
	s.finish(ctx, ex, "")
	return ex.report, nil
}

// snapshot appends one ledger row per unit and per aggregate and attaches
// the row references to the set.
func (s *RunService) snapshot(ctx context.Context, ex *execution) error {
	refs := make(map[string]domain.RowRef, len(ex.set.Units))
	for i := range ex.set.Units {
		u := &ex.set.Units[i]
		ref, err := s.store.AppendRow(ctx, domain.UnitRow(ex.rc.RunID, *u))
		if err != nil {
			return fmt.Errorf("%w: append %s: %v", port.ErrLedgerUnavailable, u.ID, err)
		}
		u.LedgerRow = ref
		refs[u.ID] = ref
	}
	for i := range ex.set.Aggregates {
		a := &ex.set.Aggregates[i]
		for j := range a.Units {
			a.Units[j].LedgerRow = refs[a.Units[j].ID]
		}
		ref, err := s.store.AppendRow(ctx, domain.AggregateRow(ex.rc.RunID, *a, engine.AggregateDetails(*a)))
		if err != nil {
			return fmt.Errorf("%w: append campaign %s: %v", port.ErrLedgerUnavailable, a.CampaignID, err)
		}
		a.LedgerRow = ref
	}
	return nil
}

// abort ends a failed run. The failure is reported like any other outcome
// and returned to the caller.
func (s *RunService) abort(ctx context.Context, ex *execution, out *engine.Outcome, cause error) (*port.RunReport, error) {
	ex.logger.Error("run aborted", slog.Any("error", cause))
	s.transition(ex, domain.StateAborted)
	s.report(ctx, ex, out, cause.Error())
	s.finish(ctx, ex, cause.Error())
	return ex.report, cause
}

// report renders the summary and hands it to the notifier. Delivery
// failures are logged and kept on the report.
func (s *RunService) report(ctx context.Context, ex *execution, out *engine.Outcome, failure string) {
	summary := engine.Summarize(ex.rc, ex.set, out)
	summary.State = ex.report.State
	summary.Error = failure
	ex.report.Summary = summary
	ex.report.Text = engine.Render(summary, s.opts.Currency, ex.rc.TopN)

	if err := s.notifier.Send(ctx, ex.report.Text); err != nil {
		ex.report.NotifyErr = fmt.Errorf("%w: %v", port.ErrNotificationFailed, err)
		ex.logger.Warn("report not delivered", slog.Any("error", err))
		return
	}
	ex.logger.Info("report delivered")
}

// finish stores the history record and closes the run.
func (s *RunService) finish(ctx context.Context, ex *execution, failure string) {
	finished := s.now()
	sum := ex.report.Summary
	rec := domain.RunRecord{
		ID:             ex.rc.RunID,
		Policy:         ex.rc.Policy,
		State:          ex.report.State,
		DryRun:         ex.rc.DryRun,
		StartedAt:      ex.started,
		FinishedAt:     finished,
		UnitsEvaluated: sum.UnitsEvaluated,
		ChangesApplied: sum.Changed(),
		ChangesFailed:  sum.Failed,
		AmountMoved:    sum.Moved,
		TotalBudget:    sum.TotalBudget,
		Summary:        ex.report.Text,
		Error:          failure,
	}
	if err := s.store.SaveRun(ctx, rec); err != nil {
		ex.logger.Warn("run history not saved", slog.Any("error", err))
	}
	s.metrics.ObserveRun(ex.rc.Policy, ex.report.State, finished.Sub(ex.started))
	ex.logger.Info("run finished",
		slog.String("state", string(ex.report.State)),
		slog.Int("changed", sum.Changed()),
		slog.Int("failed", sum.Failed),
		slog.String("moved", sum.Moved.StringFixed(2)))
	s.tracker.finish()
}

func (s *RunService) transition(ex *execution, state domain.RunState) {
	ex.report.State = state
	s.tracker.setState(state)
	ex.logger.Info("run state", slog.String("state", string(state)))
}
