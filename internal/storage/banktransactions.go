package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caravela/fluxo/internal/common"
	"github.com/caravela/fluxo/internal/model"
)

// SaveBankImport persists an import record and its transactions atomically.
// Transactions whose hash already exists are skipped, and the import's
// Imported/Skipped counters are adjusted to reflect what actually landed.
func (s *SQLiteStorage) SaveBankImport(ctx context.Context, imp *model.BankImport, txs []model.BankTransaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(imp.ID, "import ID"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	imported := 0
	for i := range txs {
		bt := &txs[i]
		res, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO bank_transactions
				(id, hash, import_id, fitid, date, amount, description, memo, match_status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			bt.ID, bt.GenerateHash(), imp.ID, nullString(bt.FITID), bt.Date, bt.Amount,
			bt.Description, bt.Memo, string(model.MatchStatusUnmatched))
		if err != nil {
			return fmt.Errorf("failed to save bank transaction: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			imported++
		}
	}

	imp.Imported = imported
	imp.Skipped = imp.Total - imported

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO bank_imports (id, filename, format, total, imported, skipped, period_start, period_end, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		imp.ID, imp.Filename, string(imp.Format), imp.Total, imp.Imported, imp.Skipped,
		imp.PeriodStart, imp.PeriodEnd, imp.ImportedAt); err != nil {
		return fmt.Errorf("failed to save bank import: %w", err)
	}

	return tx.Commit()
}

// ListBankImports returns all import runs, most recent first.
func (s *SQLiteStorage) ListBankImports(ctx context.Context) ([]model.BankImport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, format, total, imported, skipped, period_start, period_end, imported_at
		FROM bank_imports ORDER BY imported_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank imports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var imports []model.BankImport
	for rows.Next() {
		var imp model.BankImport
		var format string
		if err := rows.Scan(&imp.ID, &imp.Filename, &format, &imp.Total, &imp.Imported,
			&imp.Skipped, &imp.PeriodStart, &imp.PeriodEnd, &imp.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bank import: %w", err)
		}
		imp.Format = model.StatementFormat(format)
		imports = append(imports, imp)
	}

	return imports, rows.Err()
}

// ListBankTransactions returns bank transactions, optionally filtered by
// match status, ordered by date.
func (s *SQLiteStorage) ListBankTransactions(ctx context.Context, status *model.MatchStatus) ([]model.BankTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, import_id, fitid, date, amount, description, memo, match_status, category_id, vendor_id, client_id
		FROM bank_transactions`
	var args []any
	if status != nil {
		query += ` WHERE match_status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY date, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txs []model.BankTransaction
	for rows.Next() {
		var bt model.BankTransaction
		var importID, fitid, categoryID, vendorID, clientID sql.NullString
		var matchStatus string

		if err := rows.Scan(&bt.ID, &importID, &fitid, &bt.Date, &bt.Amount, &bt.Description,
			&bt.Memo, &matchStatus, &categoryID, &vendorID, &clientID); err != nil {
			return nil, fmt.Errorf("failed to scan bank transaction: %w", err)
		}

		bt.ImportID = importID.String
		bt.FITID = fitid.String
		bt.MatchStatus = model.MatchStatus(matchStatus)
		bt.CategoryID = categoryID.String
		bt.VendorID = vendorID.String
		bt.ClientID = clientID.String
		txs = append(txs, bt)
	}

	return txs, rows.Err()
}

// ApplyMatch records a reconciliation result on a bank transaction.
// Returns common.ErrNotFound when the transaction does not exist.
func (s *SQLiteStorage) ApplyMatch(ctx context.Context, transactionID string, result model.MatchResult) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(transactionID, "transaction ID"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE bank_transactions
		SET match_status = ?, category_id = ?, vendor_id = ?, client_id = ?
		WHERE id = ?`,
		string(result.Status), nullString(result.CategoryID), nullString(result.VendorID),
		nullString(result.ClientID), transactionID)
	if err != nil {
		return fmt.Errorf("failed to apply match: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
