package main

import (
	"context"
	"fmt"
	"time"

	"github.com/caravela/fluxo/internal/common"
	"github.com/caravela/fluxo/internal/config"
	"github.com/caravela/fluxo/internal/model"
	"github.com/caravela/fluxo/internal/service"
	"github.com/caravela/fluxo/internal/storage"
)

// openStorage opens the configured database and runs pending migrations.
// Callers own the returned storage and must Close it.
func openStorage(ctx context.Context) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// loadLedger fetches the payables and receivables the engine computes over.
func loadLedger(ctx context.Context, store service.Storage) ([]model.Payable, []model.Receivable, error) {
	payables, err := store.ListPayables(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load payables: %w", err)
	}
	receivables, err := store.ListReceivables(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load receivables: %w", err)
	}
	return payables, receivables, nil
}

// resolveBalance returns the explicitly passed balance, or the most recent
// snapshot when the flag was left at its zero default and a snapshot exists.
func resolveBalance(ctx context.Context, store service.Storage, flagValue float64, flagSet bool) (float64, error) {
	if flagSet {
		return flagValue, nil
	}
	snap, err := store.LatestBalanceSnapshot(ctx)
	if err != nil {
		return 0, common.NewUserError("no balance recorded; pass --balance or run 'fluxo balance set'", err)
	}
	return snap.Balance, nil
}

func formatRunway(runway *float64) string {
	if runway == nil {
		return "∞"
	}
	return fmt.Sprintf("%.1f meses", *runway)
}

func today() time.Time {
	return time.Now()
}
