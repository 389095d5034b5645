package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caravela/fluxo/internal/cli"
	"github.com/caravela/fluxo/internal/model"
	"github.com/caravela/fluxo/internal/money"
	"github.com/caravela/fluxo/internal/simulation"
)

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a what-if scenario over the next six months",
		Long: `Project six months of cash applying scenario perturbations:
a percentage of receivables delayed into the following month, a percentage
cut on expenses, and revenue growth.

Examples:
  fluxo simulate --delay 30
  fluxo simulate --cut 15 --growth 10 --balance 50000`,
		RunE: runSimulate,
	}

	cmd.Flags().Float64("delay", 0, "percentage of receivables delayed by one month (0-100)")
	cmd.Flags().Float64("cut", 0, "percentage cut on expenses (0-100)")
	cmd.Flags().Float64("growth", 0, "revenue growth percentage")
	cmd.Flags().Float64("balance", 0, "starting balance (default: latest snapshot)")

	return cmd
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	delay, _ := cmd.Flags().GetFloat64("delay")
	cut, _ := cmd.Flags().GetFloat64("cut")
	growth, _ := cmd.Flags().GetFloat64("growth")
	balance, _ := cmd.Flags().GetFloat64("balance")

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

	params := model.SimulationParams{
		ReceivablesDelayPct: delay,
		ExpenseCutPct:       cut,
		RevenueGrowthPct:    growth,
	}
	result := simulation.Compute(payables, receivables, initialBalance, params, today())

	rows := [][]string{}
	for _, point := range result.MonthlyProjection {
		rows = append(rows, []string{
			point.Month,
			money.FormatBRL(point.Revenue),
			money.FormatBRL(point.Expenses),
			cli.Amount(money.FormatBRL(point.Balance), point.Balance),
		})
	}

	fmt.Println(cli.Title(fmt.Sprintf("Simulação: atraso %.0f%%, corte %.0f%%, crescimento %.0f%%",
		delay, cut, growth)))
	fmt.Print(cli.RenderTable([]string{"Mês", "Receita", "Despesas", "Saldo"}, rows))

	fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Caixa projetado:  %s", money.FormatBRL(result.ProjectedCash))))
	fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Runway:           %s", formatRunway(result.Runway))))
	fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Margem projetada: %.1f%%", result.ProjectedMargin)))

	return nil
}
