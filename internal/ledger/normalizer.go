// Package ledger normalizes heterogeneous payable/receivable records into
// signed cash-movement entries. Every aggregation and projection function in
// the engine consumes this shape, so normalization is the single translation
// boundary between persistence rows and computation entities.
package ledger

import (
	"time"

	"github.com/caravela/fluxo/internal/model"
)

// Mode selects which date keys a normalized entry.
type Mode int

const (
	// ModeScheduled keys entries by due date: the planning view.
	ModeScheduled Mode = iota
	// ModeRealized keys entries by paid date and skips unsettled records:
	// the cash view.
	ModeRealized
)

// Entry is one normalized cash movement. Amount is signed: positive for
// inflows (receivables), negative for outflows (payables).
type Entry struct {
	Date         time.Time
	SourceType   string
	SourceID     string
	CategoryID   string
	CostCenterID string
	ClientID     string
	VendorID     string
	Amount       float64
}

// Source types carried on normalized entries.
const (
	SourcePayable    = "payable"
	SourceReceivable = "receivable"
)

// Normalize converts payables and receivables into a flat entry list.
// Cancelled records are excluded unconditionally. The output preserves input
// order (receivables first, then payables) and never mutates its inputs, so
// repeated runs over the same slices yield identical results.
func Normalize(payables []model.Payable, receivables []model.Receivable, mode Mode) []Entry {
	entries := make([]Entry, 0, len(payables)+len(receivables))

	for _, r := range receivables {
		if r.Status.IsCancelled() {
			continue
		}
		date, ok := entryDate(r.DueDate, r.PaidDate, mode)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Date:         date,
			Amount:       r.Amount,
			SourceType:   SourceReceivable,
			SourceID:     r.ID,
			CategoryID:   r.CategoryID,
			CostCenterID: r.CostCenterID,
			ClientID:     r.ClientID,
		})
	}

	for _, p := range payables {
		if p.Status.IsCancelled() {
			continue
		}
		date, ok := entryDate(p.DueDate, p.PaidDate, mode)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Date:         date,
			Amount:       -p.Amount,
			SourceType:   SourcePayable,
			SourceID:     p.ID,
			CategoryID:   p.CategoryID,
			CostCenterID: p.CostCenterID,
			VendorID:     p.VendorID,
		})
	}

	return entries
}

func entryDate(due time.Time, paid *time.Time, mode Mode) (time.Time, bool) {
	if mode == ModeRealized {
		if paid == nil {
			return time.Time{}, false
		}
		return *paid, true
	}
	return due, true
}
