package engine

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
)

// DefaultTopN is the number of changes listed per kind in a report.
const DefaultTopN = 5

// Summarize computes the report figures of an allocation. out may be nil
// when the run ended before allocating.
func Summarize(rc domain.RunContext, set domain.UnitSet, out *Outcome) domain.Summary {
	s := domain.Summary{
		RunID:           rc.RunID,
		Policy:          rc.Policy,
		DryRun:          rc.DryRun,
		UnitsEvaluated:  len(set.Units),
		Increased:       decimal.Zero,
		Decreased:       decimal.Zero,
		Moved:           decimal.Zero,
		Pool:            decimal.Zero,
		Unspent:         decimal.Zero,
		ChangedByKind:   make(map[domain.UnitKind]int),
		IncreasedByKind: make(map[domain.UnitKind]int),
		DecreasedByKind: make(map[domain.UnitKind]int),
		TotalBudget:     set.TotalBudget(),
	}
	if out == nil {
		return s
	}
	s.Reason = ReasonText(out.Reason)
	s.Skipped = out.Skipped
	s.Rollups = out.Rollups

	for _, res := range out.Results {
		if !res.Applied {
			s.Failed++
			continue
		}
		s.Applied = append(s.Applied, res)
		s.ChangedByKind[res.Kind]++
		s.TotalBudget = s.TotalBudget.Add(res.Delta)
		if res.Delta.IsPositive() {
			s.Increased = s.Increased.Add(res.Delta)
			s.IncreasedByKind[res.Kind]++
		} else {
			s.Decreased = s.Decreased.Add(res.Delta.Neg())
			s.DecreasedByKind[res.Kind]++
		}
	}
	slices.SortStableFunc(s.Applied, func(a, b domain.AllocationResult) int {
		return b.Delta.Abs().Cmp(a.Delta.Abs())
	})

	switch rc.Policy {
	case domain.PolicyReduce:
		s.Moved = s.Decreased
	case domain.PolicyReallocate:
		s.Moved = s.Increased
		s.Pool = out.Pool
		s.Unspent = out.Pool.Sub(s.Increased)
	default:
		s.Moved = s.Increased
	}
	return s
}

// Render formats a summary as the multi-line plain-text report sent to the
// notifier.
func Render(s domain.Summary, currency string, topN int) string {
	if topN <= 0 {
		topN = DefaultTopN
	}
	money := func(d decimal.Decimal) string {
		return currency + " " + d.StringFixed(2)
	}

	var b strings.Builder
	title := map[domain.Policy]string{
		domain.PolicyScaleUp:    "Scale-up",
		domain.PolicyReduce:     "Reduction",
		domain.PolicyReallocate: "Reallocation",
	}[s.Policy]
	if s.DryRun {
		title += " (dry run)"
	}
	fmt.Fprintf(&b, "%s %s\n", title, outcomeLabel(s))
	fmt.Fprintf(&b, "Run %s, %d units evaluated\n\n", s.RunID, s.UnitsEvaluated)

	if s.Error != "" {
		fmt.Fprintf(&b, "Aborted: %s\n", s.Error)
	}
	if s.Reason != "" {
		fmt.Fprintf(&b, "Nothing to do: %s.\n", s.Reason)
		fmt.Fprintf(&b, "Total budget: %s\n", money(s.TotalBudget))
		return b.String()
	}

	switch s.Policy {
	case domain.PolicyReallocate:
		fmt.Fprintf(&b, "Reduced: %d units (%s)\n", countAll(s.DecreasedByKind), kindCounts(s.DecreasedByKind))
		fmt.Fprintf(&b, "- Pool freed: %s\n", money(s.Pool))
		fmt.Fprintf(&b, "Increased: %d units (%s)\n", countAll(s.IncreasedByKind), kindCounts(s.IncreasedByKind))
		fmt.Fprintf(&b, "- Distributed: %s\n", money(s.Increased))
		if s.Unspent.IsPositive() {
			fmt.Fprintf(&b, "- Unspent (ceiling reached): %s\n", money(s.Unspent))
		}
	case domain.PolicyReduce:
		fmt.Fprintf(&b, "Total reduced: %s\n", money(s.Moved))
	default:
		fmt.Fprintf(&b, "Total distributed: %s\n", money(s.Moved))
		if n := countAll(s.DecreasedByKind); n > 0 {
			fmt.Fprintf(&b, "Lowered to max budget: %d units (%s)\n", n, money(s.Decreased))
		}
	}
	fmt.Fprintf(&b, "Units changed: %d (%s)\n", s.Changed(), kindCounts(s.ChangedByKind))
	if s.Failed > 0 {
		fmt.Fprintf(&b, "Failed updates: %d\n", s.Failed)
	}
	fmt.Fprintf(&b, "Total budget: %s\n", money(s.TotalBudget))

	for _, kind := range []domain.UnitKind{domain.KindCampaignBudget, domain.KindAdSetBudget} {
		var listed []domain.AllocationResult
		for _, res := range s.Applied {
			if res.Kind == kind {
				listed = append(listed, res)
			}
		}
		if len(listed) == 0 {
			continue
		}
		label := "Campaigns"
		if kind == domain.KindAdSetBudget {
			label = "Ad-sets"
		}
		fmt.Fprintf(&b, "\n%s %s (%d):\n", label, kind.Short(), len(listed))
		for i, res := range listed {
			if i == topN {
				fmt.Fprintf(&b, "... and %d more\n", len(listed)-topN)
				break
			}
			fmt.Fprintf(&b, "%d. %s %s%s (%s -> %s)\n", i+1, res.DisplayName,
				sign(res.Delta), money(res.Delta.Abs()), res.OldBudget.StringFixed(2), res.NewBudget.StringFixed(2))
		}
	}
	return b.String()
}

// ReasonText maps the nothing-to-do sentinels to report wording.
func ReasonText(err error) string {
	switch {
	case errors.Is(err, port.ErrNoEligibleUnits):
		return "no unit met the selection rule"
	case errors.Is(err, port.ErrInsufficientUnits):
		return "the LOW or HIGH tier is empty"
	case err != nil:
		return err.Error()
	}
	return ""
}

func outcomeLabel(s domain.Summary) string {
	switch {
	case s.Error != "":
		return "aborted"
	case s.Reason != "":
		return "finished without changes"
	case s.Failed > 0:
		return "finished with failures"
	}
	return "finished"
}

func kindCounts(m map[domain.UnitKind]int) string {
	return fmt.Sprintf("%d CBO, %d ABO", m[domain.KindCampaignBudget], m[domain.KindAdSetBudget])
}

func countAll(m map[domain.UnitKind]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

func sign(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}
