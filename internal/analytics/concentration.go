package analytics

import (
	"sort"

	"github.com/caravela/fluxo/internal/model"
)

// ParetoThresholdPct is the reference line used to flag the clients that
// together account for the bulk of revenue.
const ParetoThresholdPct = 80.0

// ClientConcentration is one row of the revenue-concentration (Pareto)
// ranking. CumulativePct runs from the largest client's share to 100.
type ClientConcentration struct {
	ClientID      string
	Name          string
	Revenue       float64
	Pct           float64
	CumulativePct float64
}

// ComputeConcentration ranks clients by billed revenue and computes each
// client's share and cumulative share of the total. With zero total revenue
// every percentage is 0.
func ComputeConcentration(receivables []model.Receivable, clients model.Lookup) []ClientConcentration {
	index := make(map[string]int)
	var rows []ClientConcentration
	var total float64

	for _, r := range receivables {
		if r.Status.IsCancelled() {
			continue
		}
		idx, ok := index[r.ClientID]
		if !ok {
			idx = len(rows)
			index[r.ClientID] = idx
			rows = append(rows, ClientConcentration{
				ClientID: r.ClientID,
				Name:     clients.Name(r.ClientID),
			})
		}
		rows[idx].Revenue += r.Amount
		total += r.Amount
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})

	var running float64
	for i := range rows {
		running += rows[i].Revenue
		rows[i].Pct = pctOf(rows[i].Revenue, total)
		rows[i].CumulativePct = pctOf(running, total)
	}

	return rows
}
