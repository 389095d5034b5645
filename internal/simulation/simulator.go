// Package simulation runs what-if scenarios over a monthly cash projection:
// delayed receivables, expense cuts, and revenue growth applied to the
// scheduled ledger over a six-month horizon.
package simulation

import (
	"time"

	"github.com/caravela/fluxo/internal/ledger"
	"github.com/caravela/fluxo/internal/model"
	"github.com/caravela/fluxo/internal/money"
)

// HorizonMonths is the projection length of a scenario run.
const HorizonMonths = 6

// Compute projects HorizonMonths calendar months forward from asOf,
// perturbing each month's ledger totals with the scenario params.
//
// The receivables delay shifts a fraction of each month's (post-growth)
// revenue into the following month, compounding across the horizon; the
// fraction delayed out of the final month leaves the projection entirely,
// so a pure delay strictly reduces projected cash.
//
// Runway is nil when the average monthly burn is zero or negative: with no
// burn there is no month the balance runs out, so runway is unbounded
// rather than capped at a finite sentinel.
func Compute(payables []model.Payable, receivables []model.Receivable, initialBalance float64, params model.SimulationParams, asOf time.Time) model.SimulationResult {
	months := horizonKeys(asOf)
	baseRevenue := make(map[string]float64, HorizonMonths)
	baseExpenses := make(map[string]float64, HorizonMonths)
	for _, key := range months {
		baseRevenue[key] = 0
		baseExpenses[key] = 0
	}

	for _, e := range ledger.Normalize(payables, receivables, ledger.ModeScheduled) {
		key := money.MonthKeyTime(e.Date)
		if _, ok := baseRevenue[key]; !ok {
			continue
		}
		if e.Amount >= 0 {
			baseRevenue[key] += e.Amount
		} else {
			baseExpenses[key] += -e.Amount
		}
	}

	growth := 1 + params.RevenueGrowthPct/100
	cut := 1 - params.ExpenseCutPct/100
	delay := params.ReceivablesDelayPct / 100

	projection := make([]model.MonthlyPoint, 0, HorizonMonths)
	balance := initialBalance
	var sumRevenue, sumExpenses, sumBurn float64
	var carried float64

	for _, key := range months {
		revenue := baseRevenue[key] * growth
		delayed := revenue * delay
		revenue = revenue - delayed + carried
		carried = delayed

		expenses := baseExpenses[key] * cut
		balance += revenue - expenses

		projection = append(projection, model.MonthlyPoint{
			Month:    key,
			Revenue:  revenue,
			Expenses: expenses,
			Balance:  balance,
		})

		sumRevenue += revenue
		sumExpenses += expenses
		if burn := expenses - revenue; burn > 0 {
			sumBurn += burn
		}
	}

	var runway *float64
	if avgBurn := sumBurn / HorizonMonths; avgBurn > 0 {
		months := initialBalance / avgBurn
		runway = &months
	}

	var marginPct float64
	if sumRevenue > 0 {
		marginPct = (sumRevenue - sumExpenses) / sumRevenue * 100
	}

	return model.SimulationResult{
		MonthlyProjection: projection,
		ProjectedCash:     balance,
		Runway:            runway,
		ProjectedMargin:   marginPct,
	}
}

func horizonKeys(asOf time.Time) []string {
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	keys := make([]string, 0, HorizonMonths)
	for i := 0; i < HorizonMonths; i++ {
		keys = append(keys, money.MonthKeyTime(first.AddDate(0, i, 0)))
	}
	return keys
}
