package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/caravela/fluxo/internal/common"
	"github.com/caravela/fluxo/internal/model"
)

// SavePayable inserts or replaces a payable.
func (s *SQLiteStorage) SavePayable(ctx context.Context, p *model.Payable) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(p.ID, "payable ID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO payables
			(id, description, amount, amount_paid, due_date, paid_date, status, category_id, cost_center_id, vendor_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Description, p.Amount, p.AmountPaid, p.DueDate, nullTime(p.PaidDate),
		string(p.Status), nullString(p.CategoryID), nullString(p.CostCenterID), nullString(p.VendorID))
	if err != nil {
		return fmt.Errorf("failed to save payable: %w", err)
	}
	return nil
}

// ListPayables returns all payables ordered by due date.
func (s *SQLiteStorage) ListPayables(ctx context.Context) ([]model.Payable, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, amount, amount_paid, due_date, paid_date, status, category_id, cost_center_id, vendor_id
		FROM payables ORDER BY due_date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var payables []model.Payable
	for rows.Next() {
		var p model.Payable
		var paidDate sql.NullTime
		var status string
		var categoryID, costCenterID, vendorID sql.NullString

		if err := rows.Scan(&p.ID, &p.Description, &p.Amount, &p.AmountPaid, &p.DueDate,
			&paidDate, &status, &categoryID, &costCenterID, &vendorID); err != nil {
			return nil, fmt.Errorf("failed to scan payable: %w", err)
		}

		if paidDate.Valid {
			t := paidDate.Time
			p.PaidDate = &t
		}
		p.Status = model.Status(status)
		p.CategoryID = categoryID.String
		p.CostCenterID = costCenterID.String
		p.VendorID = vendorID.String
		payables = append(payables, p)
	}

	return payables, rows.Err()
}

// SaveReceivable inserts or replaces a receivable.
func (s *SQLiteStorage) SaveReceivable(ctx context.Context, r *model.Receivable) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(r.ID, "receivable ID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO receivables
			(id, description, amount, amount_paid, due_date, paid_date, status, category_id, cost_center_id,
			 client_id, installment_number, installment_total, recurring)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Description, r.Amount, r.AmountPaid, r.DueDate, nullTime(r.PaidDate),
		string(r.Status), nullString(r.CategoryID), nullString(r.CostCenterID), nullString(r.ClientID),
		r.InstallmentNumber, r.InstallmentTotal, r.Recurring)
	if err != nil {
		return fmt.Errorf("failed to save receivable: %w", err)
	}
	return nil
}

// ListReceivables returns all receivables ordered by due date.
func (s *SQLiteStorage) ListReceivables(ctx context.Context) ([]model.Receivable, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, amount, amount_paid, due_date, paid_date, status, category_id, cost_center_id,
		       client_id, installment_number, installment_total, recurring
		FROM receivables ORDER BY due_date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var receivables []model.Receivable
	for rows.Next() {
		var r model.Receivable
		var paidDate sql.NullTime
		var status string
		var categoryID, costCenterID, clientID sql.NullString

		if err := rows.Scan(&r.ID, &r.Description, &r.Amount, &r.AmountPaid, &r.DueDate,
			&paidDate, &status, &categoryID, &costCenterID, &clientID,
			&r.InstallmentNumber, &r.InstallmentTotal, &r.Recurring); err != nil {
			return nil, fmt.Errorf("failed to scan receivable: %w", err)
		}

		if paidDate.Valid {
			t := paidDate.Time
			r.PaidDate = &t
		}
		r.Status = model.Status(status)
		r.CategoryID = categoryID.String
		r.CostCenterID = costCenterID.String
		r.ClientID = clientID.String
		receivables = append(receivables, r)
	}

	return receivables, rows.Err()
}

// SaveBalanceSnapshot records a new balance snapshot.
func (s *SQLiteStorage) SaveBalanceSnapshot(ctx context.Context, snap *model.BalanceSnapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(snap.ID, "snapshot ID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO balance_snapshots (id, balance, recorded_at) VALUES (?, ?, ?)`,
		snap.ID, snap.Balance, snap.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to save balance snapshot: %w", err)
	}
	return nil
}

// LatestBalanceSnapshot returns the most recent snapshot by recording time,
// or common.ErrNoBalanceSnapshot when none has been recorded.
func (s *SQLiteStorage) LatestBalanceSnapshot(ctx context.Context) (*model.BalanceSnapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var snap model.BalanceSnapshot
	err := s.db.QueryRowContext(ctx, `
		SELECT id, balance, recorded_at FROM balance_snapshots
		ORDER BY recorded_at DESC LIMIT 1`).Scan(&snap.ID, &snap.Balance, &snap.RecordedAt)
	if err == sql.ErrNoRows {
		return nil, common.ErrNoBalanceSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query balance snapshot: %w", err)
	}
	return &snap, nil
}

// CategoryLookup returns the id→name map for categories.
func (s *SQLiteStorage) CategoryLookup(ctx context.Context) (model.Lookup, error) {
	return s.lookup(ctx, "categories")
}

// CostCenterLookup returns the id→name map for cost centers.
func (s *SQLiteStorage) CostCenterLookup(ctx context.Context) (model.Lookup, error) {
	return s.lookup(ctx, "cost_centers")
}

// VendorLookup returns the id→name map for vendors.
func (s *SQLiteStorage) VendorLookup(ctx context.Context) (model.Lookup, error) {
	return s.lookup(ctx, "vendors")
}

// ClientLookup returns the id→name map for clients.
func (s *SQLiteStorage) ClientLookup(ctx context.Context) (model.Lookup, error) {
	return s.lookup(ctx, "clients")
}

func (s *SQLiteStorage) lookup(ctx context.Context, table string) (model.Lookup, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT id, name FROM %s`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	lookup := make(model.Lookup)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		lookup[id] = name
	}

	return lookup, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
