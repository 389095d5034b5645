package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caravela/fluxo/internal/cli"
	"github.com/caravela/fluxo/internal/model"
	"github.com/caravela/fluxo/internal/reconcile"
)

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run reconciliation rules over unmatched bank transactions",
		Long: `Evaluate all active reconciliation rules against unmatched bank
transactions in priority order. The first matching rule assigns category,
vendor and client; rules with auto-match confirm the transaction
immediately, others leave it pending review.`,
		RunE: runReconcile,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview matches without saving")

	return cmd
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rules, err := store.ListRules(ctx)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}
	if len(rules) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No reconciliation rules configured."))
		return nil
	}

	unmatched := model.MatchStatusUnmatched
	txs, err := store.ListBankTransactions(ctx, &unmatched)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	matcher := reconcile.NewMatcher(rules)
	matched, assigned := 0, 0

	for _, tx := range txs {
		result := matcher.Match(tx)
		if result == nil {
			continue
		}

		if result.Status == model.MatchStatusMatched {
			matched++
		} else {
			assigned++
		}

		if dryRun {
			fmt.Printf("  rule %d → %s (%s)\n", result.RuleID, tx.Description, result.Status)
			continue
		}
		if err := store.ApplyMatch(ctx, tx.ID, *result); err != nil {
			return fmt.Errorf("failed to apply match: %w", err)
		}
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
		"✓ %d of %d transactions matched, %d assigned pending review",
		matched, len(txs), assigned)))
	return nil
}
