package port

import (
	"time"

	"mesa-budget/internal/core/domain"
)

// Metrics receives run and budget-change observations.
type Metrics interface {
	ObserveChange(policy domain.Policy, res domain.AllocationResult)
	ObserveRun(policy domain.Policy, state domain.RunState, duration time.Duration)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) ObserveChange(domain.Policy, domain.AllocationResult)     {}
func (NopMetrics) ObserveRun(domain.Policy, domain.RunState, time.Duration) {}
