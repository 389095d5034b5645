package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/caravela/fluxo/internal/common"
)

// MatchStatus represents the reconciliation state of a bank transaction.
type MatchStatus string

// Reconciliation states.
const (
	MatchStatusMatched   MatchStatus = "matched"
	MatchStatusUnmatched MatchStatus = "unmatched"
	MatchStatusIgnored   MatchStatus = "ignored"
)

// BankTransaction is a single statement line imported from a bank export.
// Amount is signed: negative for outflows, positive for inflows.
type BankTransaction struct {
	Date        time.Time
	ID          string
	ImportID    string
	FITID       string
	Description string
	Memo        string
	CategoryID  string
	VendorID    string
	ClientID    string
	MatchStatus MatchStatus
	Amount      float64
}

// GenerateHash creates a stable hash for duplicate detection across imports.
// FITID alone is not enough: some banks reuse or omit it.
func (t *BankTransaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Description,
		t.FITID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// StatementFormat identifies the source format of a bank import.
type StatementFormat string

// Supported statement formats.
const (
	FormatOFX StatementFormat = "ofx"
	FormatCSV StatementFormat = "csv"
)

// ParseStatementFormat maps a user-supplied format name onto a
// StatementFormat. Unknown names return common.ErrUnknownFormat.
func ParseStatementFormat(s string) (StatementFormat, error) {
	switch strings.ToLower(s) {
	case "ofx", "qfx":
		return FormatOFX, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownFormat, s)
	}
}

// BankImport records the metadata of one statement parse run.
type BankImport struct {
	ImportedAt  time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	ID          string
	Filename    string
	Format      StatementFormat
	Total       int
	Imported    int
	Skipped     int
}

// BalanceSnapshot seeds cash-flow projections. The most recent snapshot by
// RecordedAt is authoritative.
type BalanceSnapshot struct {
	RecordedAt time.Time
	ID         string
	Balance    float64
}
