package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caravela/fluxo/internal/cashflow"
	"github.com/caravela/fluxo/internal/cli"
	"github.com/caravela/fluxo/internal/export"
	"github.com/caravela/fluxo/internal/model"
	"github.com/caravela/fluxo/internal/money"
)

func cashflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Project daily cash flow from scheduled payables and receivables",
		RunE:  runCashflow,
	}

	cmd.Flags().Int("days", 90, "projection horizon in days")
	cmd.Flags().Float64("balance", 0, "starting balance (default: latest snapshot)")
	cmd.Flags().Float64("reserve-multiple", cashflow.DefaultOptions().LowBalanceMultiple,
		"warning threshold as a multiple of average daily outflow")
	cmd.Flags().String("xlsx", "", "export to an XLSX workbook instead of printing")

	return cmd
}

func runCashflow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	days, _ := cmd.Flags().GetInt("days")
	balance, _ := cmd.Flags().GetFloat64("balance")
	reserveMultiple, _ := cmd.Flags().GetFloat64("reserve-multiple")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	payables, receivables, err := loadLedger(ctx, store)
	if err != nil {
		return err
	}

	initialBalance, err := resolveBalance(ctx, store, balance, cmd.Flags().Changed("balance"))
	if err != nil {
		return err
	}

	projection := cashflow.ComputeIntelligent(payables, receivables, initialBalance, days, today(),
		cashflow.Options{LowBalanceMultiple: reserveMultiple})

	if xlsxPath != "" {
		if err := export.WriteCashFlow(projection.Days, xlsxPath); err != nil {
			return err
		}
		fmt.Println(cli.SuccessStyle.Render("✓ exported to " + xlsxPath))
		return nil
	}

	rows := [][]string{}
	for _, day := range projection.Days {
		if day.Inflows == 0 && day.Outflows == 0 {
			continue
		}
		rows = append(rows, []string{
			day.Date.Format("02/01/2006"),
			money.FormatBRL(day.Inflows),
			money.FormatBRL(day.Outflows),
			cli.Amount(money.FormatBRL(day.Balance), day.Balance),
		})
	}

	fmt.Println(cli.Title(fmt.Sprintf("Fluxo de caixa: %d dias", days)))
	fmt.Print(cli.RenderTable([]string{"Data", "Entradas", "Saídas", "Saldo"}, rows))

	for _, alert := range projection.Alerts {
		style := cli.WarningStyle
		if alert.Type == model.AlertDanger {
			style = cli.ErrorStyle
		}
		fmt.Println(style.Render("⚠ " + alert.Message))
	}

	if len(projection.Days) > 0 {
		last := projection.Days[len(projection.Days)-1]
		fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Saldo final projetado: %s", money.FormatBRL(last.Balance))))
	}

	return nil
}
