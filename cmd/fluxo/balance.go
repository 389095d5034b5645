package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/caravela/fluxo/internal/cli"
	"github.com/caravela/fluxo/internal/model"
	"github.com/caravela/fluxo/internal/money"
)

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Manage balance snapshots used to seed projections",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [amount]",
		Short: "Record the current bank balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			amount := money.ParseAmount(args[0])

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snap := model.BalanceSnapshot{
				ID:         uuid.NewString(),
				Balance:    amount,
				RecordedAt: time.Now(),
			}
			if err := store.SaveBalanceSnapshot(ctx, &snap); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ balance recorded: " + money.FormatBRL(amount)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the latest balance snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snap, err := store.LatestBalanceSnapshot(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s (registrado em %s)\n",
				cli.BoldStyle.Render(money.FormatBRL(snap.Balance)),
				snap.RecordedAt.Format("02/01/2006 15:04"))
			return nil
		},
	})

	return cmd
}
