// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/caravela/fluxo/internal/model"
)

// Storage defines the contract for the persistence layer. The computation
// engine never sees this interface; the CLI fetches rows through it and
// hands plain slices to the engine.
type Storage interface {
	// Ledger rows.
	SavePayable(ctx context.Context, p *model.Payable) error
	ListPayables(ctx context.Context) ([]model.Payable, error)
	SaveReceivable(ctx context.Context, r *model.Receivable) error
	ListReceivables(ctx context.Context) ([]model.Receivable, error)

	// Bank imports and reconciliation.
	SaveBankImport(ctx context.Context, imp *model.BankImport, txs []model.BankTransaction) error
	ListBankImports(ctx context.Context) ([]model.BankImport, error)
	ListBankTransactions(ctx context.Context, status *model.MatchStatus) ([]model.BankTransaction, error)
	ApplyMatch(ctx context.Context, transactionID string, result model.MatchResult) error

	// Reconciliation rules.
	ListRules(ctx context.Context) ([]model.ReconciliationRule, error)
	SaveRule(ctx context.Context, rule *model.ReconciliationRule) error

	// Balance snapshots.
	SaveBalanceSnapshot(ctx context.Context, snap *model.BalanceSnapshot) error
	LatestBalanceSnapshot(ctx context.Context) (*model.BalanceSnapshot, error)

	// Lookup maps for the engine.
	CategoryLookup(ctx context.Context) (model.Lookup, error)
	CostCenterLookup(ctx context.Context) (model.Lookup, error)
	VendorLookup(ctx context.Context) (model.Lookup, error)
	ClientLookup(ctx context.Context) (model.Lookup, error)

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}
