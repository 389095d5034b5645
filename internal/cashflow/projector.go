// Package cashflow projects daily balances from scheduled payables and
// receivables. The series it produces is dense: one point per day in the
// horizon, movement or not, so charts stay continuous and alert detection
// sees flat stretches.
package cashflow

import (
	"fmt"
	"time"

	"github.com/caravela/fluxo/internal/ledger"
	"github.com/caravela/fluxo/internal/model"
	"github.com/caravela/fluxo/internal/money"
)

// Options tunes alert detection.
type Options struct {
	// LowBalanceMultiple sets the warning threshold as a multiple of the
	// average daily outflow over the horizon.
	LowBalanceMultiple float64
}

// DefaultOptions returns the standard alert thresholds.
func DefaultOptions() Options {
	return Options{LowBalanceMultiple: 3}
}

// Compute projects the next horizonDays days starting at asOf with a zero
// starting balance. One CashFlowDay per day, always, even with no movement.
func Compute(payables []model.Payable, receivables []model.Receivable, horizonDays int, asOf time.Time) []model.CashFlowDay {
	return walk(ledger.Normalize(payables, receivables, ledger.ModeScheduled), 0, horizonDays, asOf)
}

// ComputeIntelligent projects from an initial balance and flags threshold
// crossings: a danger alert on the first projected negative balance, and a
// warning on the first day the balance drops below the low-balance
// threshold while still non-negative.
func ComputeIntelligent(payables []model.Payable, receivables []model.Receivable, initialBalance float64, horizonDays int, asOf time.Time, opts Options) model.CashFlowProjection {
	days := walk(ledger.Normalize(payables, receivables, ledger.ModeScheduled), initialBalance, horizonDays, asOf)
	return model.CashFlowProjection{
		Days:   days,
		Alerts: detectAlerts(days, opts),
	}
}

func walk(entries []ledger.Entry, initialBalance float64, horizonDays int, asOf time.Time) []model.CashFlowDay {
	if horizonDays <= 0 {
		return []model.CashFlowDay{}
	}

	start := truncateDay(asOf)
	end := start.AddDate(0, 0, horizonDays)

	inflows := make(map[string]float64)
	outflows := make(map[string]float64)
	for _, e := range entries {
		day := truncateDay(e.Date)
		if day.Before(start) || !day.Before(end) {
			continue
		}
		key := day.Format("2006-01-02")
		if e.Amount >= 0 {
			inflows[key] += e.Amount
		} else {
			outflows[key] += -e.Amount
		}
	}

	days := make([]model.CashFlowDay, 0, horizonDays)
	balance := initialBalance
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		in := inflows[key]
		out := outflows[key]
		balance += in - out
		days = append(days, model.CashFlowDay{
			Date:     day,
			Inflows:  in,
			Outflows: out,
			Balance:  balance,
		})
	}

	return days
}

func detectAlerts(days []model.CashFlowDay, opts Options) []model.CashFlowAlert {
	var alerts []model.CashFlowAlert
	if len(days) == 0 {
		return alerts
	}

	var totalOutflows float64
	for _, d := range days {
		totalOutflows += d.Outflows
	}
	avgDailyOutflow := totalOutflows / float64(len(days))
	threshold := avgDailyOutflow * opts.LowBalanceMultiple

	dangerSeen := false
	warningSeen := false
	for _, d := range days {
		if !dangerSeen && d.Balance < 0 {
			dangerSeen = true
			alerts = append(alerts, model.CashFlowAlert{
				Type:     model.AlertDanger,
				Date:     d.Date,
				Severity: "high",
				Amount:   d.Balance,
				Message: fmt.Sprintf("Saldo projetado negativo (%s) em %s",
					money.FormatBRL(d.Balance), d.Date.Format("02/01/2006")),
			})
		}
		if !warningSeen && threshold > 0 && d.Balance >= 0 && d.Balance < threshold {
			warningSeen = true
			alerts = append(alerts, model.CashFlowAlert{
				Type:     model.AlertWarning,
				Date:     d.Date,
				Severity: "medium",
				Amount:   d.Balance,
				Message: fmt.Sprintf("Saldo abaixo da reserva mínima (%s) em %s",
					money.FormatBRL(d.Balance), d.Date.Format("02/01/2006")),
			})
		}
		if dangerSeen && warningSeen {
			break
		}
	}

	return alerts
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
