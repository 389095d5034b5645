package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caravela/fluxo/internal/cli"
	"github.com/caravela/fluxo/internal/common"
	"github.com/caravela/fluxo/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage reconciliation rules",
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reconciliation rules in priority order",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			rows := make([][]string, 0, len(rules))
			for _, r := range rules {
				active := "yes"
				if !r.IsActive {
					active = "no"
				}
				auto := "no"
				if r.AutoMatch {
					auto = "yes"
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", r.Priority),
					r.Name,
					r.Pattern,
					string(r.MatchField),
					auto,
					active,
				})
			}

			fmt.Println(cli.Title("Reconciliation rules"))
			fmt.Print(cli.RenderTable([]string{"Prio", "Name", "Pattern", "Field", "Auto", "Active"}, rows))
			return nil
		},
	}
}

func rulesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name] [pattern]",
		Short: "Add a reconciliation rule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			priority, _ := cmd.Flags().GetInt("priority")
			field, _ := cmd.Flags().GetString("field")
			autoMatch, _ := cmd.Flags().GetBool("auto")
			categoryID, _ := cmd.Flags().GetString("category")
			vendorID, _ := cmd.Flags().GetString("vendor")
			clientID, _ := cmd.Flags().GetString("client")

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rule := model.ReconciliationRule{
				Name:       args[0],
				Pattern:    args[1],
				MatchField: model.MatchField(field),
				Priority:   priority,
				AutoMatch:  autoMatch,
				IsActive:   true,
				CategoryID: categoryID,
				VendorID:   vendorID,
				ClientID:   clientID,
			}
			if _, err := common.CompilePattern(rule.Pattern); err != nil {
				fmt.Println(cli.WarningStyle.Render(
					"pattern is not a valid regex; substring matching will be used"))
			}

			if err := store.SaveRule(ctx, &rule); err != nil {
				return fmt.Errorf("failed to save rule: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ rule %d created", rule.ID)))
			return nil
		},
	}

	cmd.Flags().Int("priority", 100, "rule priority (lower wins)")
	cmd.Flags().String("field", "description", "field to match (description, amount, memo)")
	cmd.Flags().Bool("auto", false, "confirm matches automatically")
	cmd.Flags().String("category", "", "category to assign")
	cmd.Flags().String("vendor", "", "vendor to assign")
	cmd.Flags().String("client", "", "client to assign")

	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fmt.Println(cli.SuccessStyle.Render("✓ database is up to date"))
			return nil
		},
	}
}
