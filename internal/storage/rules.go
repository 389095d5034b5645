package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/caravela/fluxo/internal/model"
)

// ListRules returns all reconciliation rules ordered by ascending priority.
func (s *SQLiteStorage) ListRules(ctx context.Context) ([]model.ReconciliationRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, pattern, match_field, priority, auto_match, is_active,
		       category_id, vendor_id, client_id, created_at, updated_at
		FROM reconciliation_rules ORDER BY priority, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.ReconciliationRule
	for rows.Next() {
		var rule model.ReconciliationRule
		var matchField string
		var categoryID, vendorID, clientID sql.NullString

		if err := rows.Scan(&rule.ID, &rule.Name, &rule.Pattern, &matchField, &rule.Priority,
			&rule.AutoMatch, &rule.IsActive, &categoryID, &vendorID, &clientID,
			&rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}

		rule.MatchField = model.MatchField(matchField)
		rule.CategoryID = categoryID.String
		rule.VendorID = vendorID.String
		rule.ClientID = clientID.String
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// SaveRule inserts a new rule (ID zero) or updates an existing one.
func (s *SQLiteStorage) SaveRule(ctx context.Context, rule *model.ReconciliationRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(rule.Pattern, "rule pattern"); err != nil {
		return err
	}

	now := time.Now()
	if rule.ID == 0 {
		res, err := s.db.ExecContext(ctx, `
			INSERT INTO reconciliation_rules
				(name, pattern, match_field, priority, auto_match, is_active, category_id, vendor_id, client_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rule.Name, rule.Pattern, string(rule.MatchField), rule.Priority, rule.AutoMatch,
			rule.IsActive, nullString(rule.CategoryID), nullString(rule.VendorID), nullString(rule.ClientID),
			now, now)
		if err != nil {
			return fmt.Errorf("failed to insert rule: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read rule id: %w", err)
		}
		rule.ID = int(id)
		rule.CreatedAt = now
		rule.UpdatedAt = now
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE reconciliation_rules
		SET name = ?, pattern = ?, match_field = ?, priority = ?, auto_match = ?, is_active = ?,
		    category_id = ?, vendor_id = ?, client_id = ?, updated_at = ?
		WHERE id = ?`,
		rule.Name, rule.Pattern, string(rule.MatchField), rule.Priority, rule.AutoMatch,
		rule.IsActive, nullString(rule.CategoryID), nullString(rule.VendorID), nullString(rule.ClientID),
		now, rule.ID)
	if err != nil {
		return fmt.Errorf("failed to update rule: %w", err)
	}
	rule.UpdatedAt = now
	return nil
}
