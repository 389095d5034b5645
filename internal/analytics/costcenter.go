package analytics

import (
	"sort"

	"github.com/caravela/fluxo/internal/model"
)

// CostCenterSummary pairs revenue and expenses for one cost center.
type CostCenterSummary struct {
	CostCenterID string
	Name         string
	Revenue      float64
	Expenses     float64
	Result       float64
}

// ComputeCostCenters groups payables and receivables by cost center.
// Output is sorted descending by expenses with stable encounter order,
// matching the DRE ordering convention.
func ComputeCostCenters(payables []model.Payable, receivables []model.Receivable, centers model.Lookup) []CostCenterSummary {
	index := make(map[string]int)
	var summaries []CostCenterSummary

	at := func(id string) int {
		idx, ok := index[id]
		if !ok {
			idx = len(summaries)
			index[id] = idx
			summaries = append(summaries, CostCenterSummary{
				CostCenterID: id,
				Name:         centers.Name(id),
			})
		}
		return idx
	}

	for _, r := range receivables {
		if r.Status.IsCancelled() {
			continue
		}
		summaries[at(r.CostCenterID)].Revenue += r.Amount
	}
	for _, p := range payables {
		if p.Status.IsCancelled() {
			continue
		}
		summaries[at(p.CostCenterID)].Expenses += p.Amount
	}

	for i := range summaries {
		summaries[i].Result = summaries[i].Revenue - summaries[i].Expenses
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Expenses > summaries[j].Expenses
	})

	return summaries
}
