package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caravela/fluxo/internal/analytics"
	"github.com/caravela/fluxo/internal/cli"
	"github.com/caravela/fluxo/internal/export"
	"github.com/caravela/fluxo/internal/money"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports over the ledger",
	}

	cmd.AddCommand(reportDRECmd())
	cmd.AddCommand(reportCostCenterCmd())
	cmd.AddCommand(reportClientsCmd())
	cmd.AddCommand(reportParetoCmd())

	return cmd
}

func reportDRECmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dre",
		Short: "Income statement by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
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
			categories, err := store.CategoryLookup(ctx)
			if err != nil {
				return err
			}

			statement := analytics.ComputeDRE(payables, receivables, categories)

			if xlsxPath != "" {
				if err := export.WriteDRE(statement, xlsxPath); err != nil {
					return err
				}
				fmt.Println(cli.SuccessStyle.Render("✓ exported to " + xlsxPath))
				return nil
			}

			rows := make([][]string, 0, len(statement.Lines))
			for _, line := range statement.Lines {
				rows = append(rows, []string{
					line.Label,
					money.FormatBRL(line.Revenue),
					money.FormatBRL(line.Expenses),
					cli.Amount(money.FormatBRL(line.Margin), line.Margin),
					fmt.Sprintf("%.1f%%", line.MarginPct),
				})
			}

			fmt.Println(cli.Title("DRE"))
			fmt.Print(cli.RenderTable([]string{"Linha", "Receita", "Despesas", "Margem", "Margem %"}, rows))
			return nil
		},
	}

	cmd.Flags().String("xlsx", "", "export to an XLSX workbook instead of printing")

	return cmd
}

func reportCostCenterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "costcenter",
		Short: "Revenue and expenses by cost center",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			payables, receivables, err := loadLedger(ctx, store)
			if err != nil {
				return err
			}
			centers, err := store.CostCenterLookup(ctx)
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, s := range analytics.ComputeCostCenters(payables, receivables, centers) {
				rows = append(rows, []string{
					s.Name,
					money.FormatBRL(s.Revenue),
					money.FormatBRL(s.Expenses),
					cli.Amount(money.FormatBRL(s.Result), s.Result),
				})
			}

			fmt.Println(cli.Title("Centros de custo"))
			fmt.Print(cli.RenderTable([]string{"Centro", "Receita", "Despesas", "Resultado"}, rows))
			return nil
		},
	}
}

func reportClientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "Per-client billing profiles (DSO, overdue, average ticket)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, receivables, err := loadLedger(ctx, store)
			if err != nil {
				return err
			}
			clients, err := store.ClientLookup(ctx)
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, p := range analytics.ComputeClientProfiles(receivables, clients, today()) {
				rows = append(rows, []string{
					p.Name,
					money.FormatBRL(p.TotalBilled),
					money.FormatBRL(p.TotalPaid),
					cli.Amount(money.FormatBRL(p.TotalOverdue), -p.TotalOverdue),
					money.FormatBRL(p.AvgTicket),
					fmt.Sprintf("%.0f", p.AvgDSODays),
				})
			}

			fmt.Println(cli.Title("Clientes"))
			fmt.Print(cli.RenderTable([]string{"Cliente", "Faturado", "Recebido", "Em atraso", "Ticket médio", "DSO"}, rows))

			split := analytics.ComputeRevenueSplit(receivables)
			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf(
				"Receita recorrente: %s (%.0f%%)  |  Projetos: %s",
				money.FormatBRL(split.Recurring), split.RecurringPct, money.FormatBRL(split.Project))))
			return nil
		},
	}
}

func reportParetoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pareto",
		Short: "Revenue concentration by client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, receivables, err := loadLedger(ctx, store)
			if err != nil {
				return err
			}
			clients, err := store.ClientLookup(ctx)
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, c := range analytics.ComputeConcentration(receivables, clients) {
				marker := ""
				if c.CumulativePct <= analytics.ParetoThresholdPct {
					marker = "●"
				}
				rows = append(rows, []string{
					c.Name,
					money.FormatBRL(c.Revenue),
					fmt.Sprintf("%.1f%%", c.Pct),
					fmt.Sprintf("%.1f%%", c.CumulativePct),
					marker,
				})
			}

			fmt.Println(cli.Title("Concentração de receita"))
			fmt.Print(cli.RenderTable([]string{"Cliente", "Receita", "%", "% acum.", "80%"}, rows))
			return nil
		},
	}
}
