// Package analytics implements the aggregation engine: DRE statements,
// cost-center analysis, client concentration and profiles, and the
// recurring-vs-project revenue split. All functions are pure: they take
// already-fetched slices plus id→name lookups and return plain data.
package analytics

import (
	"sort"

	"github.com/caravela/fluxo/internal/model"
)

// Labels for the synthetic DRE lines.
const (
	LabelGrossRevenue = "Receita Bruta"
	LabelNetResult    = "Resultado Líquido"
)

// DRELine is one line of a simplified income statement.
type DRELine struct {
	Label      string
	CategoryID string
	Revenue    float64
	Expenses   float64
	Margin     float64
	MarginPct  float64
}

// DREStatement is the full income statement: a gross-revenue line, one
// expense line per category sorted descending by total, and a closing
// net-result line. The summary fields repeat the totals for callers that
// only need the headline numbers.
type DREStatement struct {
	Lines        []DRELine
	Revenue      float64
	Expenses     float64
	NetMargin    float64
	NetMarginPct float64
}

// ComputeDRE builds the income statement from raw payables and receivables.
// Cancelled records are excluded. Categories with equal expense totals keep
// their encounter order.
func ComputeDRE(payables []model.Payable, receivables []model.Receivable, categories model.Lookup) DREStatement {
	var revenue float64
	for _, r := range receivables {
		if r.Status.IsCancelled() {
			continue
		}
		revenue += r.Amount
	}

	type bucket struct {
		categoryID string
		expenses   float64
	}
	totals := make(map[string]int)
	var buckets []bucket
	for _, p := range payables {
		if p.Status.IsCancelled() {
			continue
		}
		idx, seen := totals[p.CategoryID]
		if !seen {
			idx = len(buckets)
			totals[p.CategoryID] = idx
			buckets = append(buckets, bucket{categoryID: p.CategoryID})
		}
		buckets[idx].expenses += p.Amount
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].expenses > buckets[j].expenses
	})

	lines := make([]DRELine, 0, len(buckets)+2)
	lines = append(lines, DRELine{
		Label:     LabelGrossRevenue,
		Revenue:   revenue,
		Margin:    revenue,
		MarginPct: pctOf(revenue, revenue),
	})

	var expenses float64
	for _, b := range buckets {
		expenses += b.expenses
		lines = append(lines, DRELine{
			Label:      categories.Name(b.categoryID),
			CategoryID: b.categoryID,
			Expenses:   b.expenses,
			Margin:     -b.expenses,
		})
	}

	netMargin := revenue - expenses
	netMarginPct := pctOf(netMargin, revenue)
	lines = append(lines, DRELine{
		Label:     LabelNetResult,
		Revenue:   revenue,
		Expenses:  expenses,
		Margin:    netMargin,
		MarginPct: netMarginPct,
	})

	return DREStatement{
		Lines:        lines,
		Revenue:      revenue,
		Expenses:     expenses,
		NetMargin:    netMargin,
		NetMarginPct: netMarginPct,
	}
}

// pctOf guards the percentage-of-total division: a zero denominator yields
// 0, never NaN or Inf.
func pctOf(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}
