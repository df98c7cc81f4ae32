// Package metrics exposes run and budget-change metrics to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"mesa-budget/internal/core/domain"
)

// Collector implements port.Metrics and records HTTP traffic.
type Collector struct {
	runsTotal     *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
	changesTotal  *prometheus.CounterVec
	budgetMoved   *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// NewCollector registers the metrics on reg.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		runsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Finished allocation runs by final state",
			},
			[]string{"policy", "state"},
		),
		runDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Allocation run duration in seconds",
				Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
			[]string{"policy"},
		),
		changesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "budget_changes_total",
				Help:      "Attempted budget changes",
			},
			[]string{"policy", "kind", "side", "result"},
		),
		budgetMoved: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "budget_moved_total",
				Help:      "Absolute budget amount changed by applied updates",
			},
			[]string{"policy", "side"},
		),
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDurations: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveChange counts one attempted budget change.
func (c *Collector) ObserveChange(policy domain.Policy, res domain.AllocationResult) {
	result := "applied"
	if !res.Applied {
		result = "failed"
	}
	c.changesTotal.WithLabelValues(string(policy), res.Kind.Short(), string(res.Side), result).Inc()
	if res.Applied {
		c.budgetMoved.WithLabelValues(string(policy), string(res.Side)).Add(res.Delta.Abs().InexactFloat64())
	}
}

// ObserveRun records a finished run.
func (c *Collector) ObserveRun(policy domain.Policy, state domain.RunState, duration time.Duration) {
	c.runsTotal.WithLabelValues(string(policy), string(state)).Inc()
	c.runDuration.WithLabelValues(string(policy)).Observe(duration.Seconds())
}

// ObserveHTTP records one served request.
func (c *Collector) ObserveHTTP(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDurations.WithLabelValues(method, route).Observe(duration.Seconds())
}
