package analytics

import (
	"sort"
	"time"

	"github.com/caravela/fluxo/internal/model"
)

// ClientProfile summarizes billing behavior for one client.
// AvgTicket divides by receivable line items, so repeated installments of
// the same invoice count individually.
type ClientProfile struct {
	ClientID     string
	Name         string
	TotalBilled  float64
	TotalPaid    float64
	TotalOverdue float64
	AvgTicket    float64
	AvgDSODays   float64
	Items        int
}

// ComputeClientProfiles builds per-client billing profiles as of the given
// moment. DSO for an unpaid item is measured against asOf and clamped to
// zero; paid items keep their actual (possibly negative, paid-early) value.
// Output is sorted descending by total billed with stable encounter order.
func ComputeClientProfiles(receivables []model.Receivable, clients model.Lookup, asOf time.Time) []ClientProfile {
	index := make(map[string]int)
	var profiles []ClientProfile
	dsoSums := make(map[string]float64)

	for _, r := range receivables {
		if r.Status.IsCancelled() {
			continue
		}
		idx, ok := index[r.ClientID]
		if !ok {
			idx = len(profiles)
			index[r.ClientID] = idx
			profiles = append(profiles, ClientProfile{
				ClientID: r.ClientID,
				Name:     clients.Name(r.ClientID),
			})
		}

		p := &profiles[idx]
		p.TotalBilled += r.Amount
		p.TotalPaid += r.AmountPaid
		p.Items++
		if r.Overdue(asOf) {
			p.TotalOverdue += r.Amount - r.AmountPaid
		}
		dsoSums[r.ClientID] += dsoDays(r, asOf)
	}

	for i := range profiles {
		p := &profiles[i]
		if p.Items > 0 {
			p.AvgTicket = p.TotalBilled / float64(p.Items)
			p.AvgDSODays = dsoSums[p.ClientID] / float64(p.Items)
		}
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].TotalBilled > profiles[j].TotalBilled
	})

	return profiles
}

func dsoDays(r model.Receivable, asOf time.Time) float64 {
	if r.PaidDate != nil {
		return r.PaidDate.Sub(r.DueDate).Hours() / 24
	}
	days := asOf.Sub(r.DueDate).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}
