package analytics

import "github.com/caravela/fluxo/internal/model"

// RevenueSplit partitions receivable revenue into recurring and one-off
// project buckets.
type RevenueSplit struct {
	Recurring    float64
	Project      float64
	RecurringPct float64
}

// ComputeRevenueSplit partitions revenue by the receivable's recurrence
// flag. RecurringPct is 0 when there is no revenue at all.
func ComputeRevenueSplit(receivables []model.Receivable) RevenueSplit {
	var split RevenueSplit
	for _, r := range receivables {
		if r.Status.IsCancelled() {
			continue
		}
		if r.Recurring {
			split.Recurring += r.Amount
		} else {
			split.Project += r.Amount
		}
	}
	split.RecurringPct = pctOf(split.Recurring, split.Recurring+split.Project)
	return split
}
