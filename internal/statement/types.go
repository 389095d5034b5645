// Package statement parses bank statement exports (OFX and CSV) into rows
// ready for persistence. Both parsers are total functions: no input text
// errors out, the worst case is an empty result.
package statement

import (
	"time"

	"github.com/caravela/fluxo/internal/money"
)

// ParsedTransaction is one statement line as extracted from a file.
// Date is an ISO yyyy-MM-dd string; Amount is signed (negative = outflow).
type ParsedTransaction struct {
	Date        string
	Description string
	FITID       string
	Memo        string
	Amount      float64
}

// Period returns the earliest and latest transaction dates in the batch.
// Zero times when the batch is empty or holds no valid dates.
func Period(txs []ParsedTransaction) (start, end time.Time) {
	for _, tx := range txs {
		t, ok := money.ParseISO(tx.Date)
		if !ok {
			continue
		}
		if start.IsZero() || t.Before(start) {
			start = t
		}
		if end.IsZero() || t.After(end) {
			end = t
		}
	}
	return start, end
}
