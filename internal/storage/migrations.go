package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS payables (
					id TEXT PRIMARY KEY,
					description TEXT,
					amount REAL NOT NULL,
					amount_paid REAL NOT NULL DEFAULT 0,
					due_date DATETIME NOT NULL,
					paid_date DATETIME,
					status TEXT NOT NULL DEFAULT 'aberto',
					category_id TEXT,
					cost_center_id TEXT,
					vendor_id TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_payables_due_date ON payables(due_date)`,
				`CREATE INDEX idx_payables_status ON payables(status)`,

				`CREATE TABLE IF NOT EXISTS receivables (
					id TEXT PRIMARY KEY,
					description TEXT,
					amount REAL NOT NULL,
					amount_paid REAL NOT NULL DEFAULT 0,
					due_date DATETIME NOT NULL,
					paid_date DATETIME,
					status TEXT NOT NULL DEFAULT 'aberto',
					category_id TEXT,
					cost_center_id TEXT,
					client_id TEXT,
					installment_number INTEGER DEFAULT 1,
					installment_total INTEGER DEFAULT 1,
					recurring INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_receivables_due_date ON receivables(due_date)`,
				`CREATE INDEX idx_receivables_client ON receivables(client_id)`,

				`CREATE TABLE IF NOT EXISTS bank_imports (
					id TEXT PRIMARY KEY,
					filename TEXT NOT NULL,
					format TEXT NOT NULL,
					total INTEGER NOT NULL,
					imported INTEGER NOT NULL,
					skipped INTEGER NOT NULL,
					period_start DATETIME,
					period_end DATETIME,
					imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS bank_transactions (
					id TEXT PRIMARY KEY,
					hash TEXT UNIQUE NOT NULL,
					import_id TEXT,
					fitid TEXT,
					date DATETIME NOT NULL,
					amount REAL NOT NULL,
					description TEXT,
					memo TEXT,
					match_status TEXT NOT NULL DEFAULT 'unmatched',
					category_id TEXT,
					vendor_id TEXT,
					client_id TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (import_id) REFERENCES bank_imports(id)
				)`,
				`CREATE INDEX idx_bank_transactions_date ON bank_transactions(date)`,
				`CREATE INDEX idx_bank_transactions_status ON bank_transactions(match_status)`,

				`CREATE TABLE IF NOT EXISTS reconciliation_rules (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					pattern TEXT NOT NULL,
					match_field TEXT NOT NULL DEFAULT 'description',
					priority INTEGER NOT NULL DEFAULT 100,
					auto_match INTEGER NOT NULL DEFAULT 0,
					is_active INTEGER NOT NULL DEFAULT 1,
					category_id TEXT,
					vendor_id TEXT,
					client_id TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_rules_priority ON reconciliation_rules(priority)`,

				`CREATE TABLE IF NOT EXISTS balance_snapshots (
					id TEXT PRIMARY KEY,
					balance REAL NOT NULL,
					recorded_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_snapshots_recorded_at ON balance_snapshots(recorded_at)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Lookup tables",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS categories (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS cost_centers (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS vendors (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS clients (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate runs all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_versions (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_versions (version) VALUES (?)`, migration.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
