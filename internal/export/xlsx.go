// Package export writes engine output to XLSX workbooks for handing on to
// accountants and spreadsheets-first stakeholders.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/caravela/fluxo/internal/analytics"
	"github.com/caravela/fluxo/internal/model"
)

// WriteDRE writes an income statement to path, one sheet named "DRE".
func WriteDRE(statement analytics.DREStatement, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "DRE"
	if err := renameDefaultSheet(f, sheet); err != nil {
		return err
	}

	headers := []any{"Linha", "Receita", "Despesas", "Margem", "Margem %"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, line := range statement.Lines {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{line.Label, line.Revenue, line.Expenses, line.Margin, line.MarginPct}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write DRE row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// WriteCashFlow writes a daily projection to path, one sheet named "Fluxo".
func WriteCashFlow(days []model.CashFlowDay, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Fluxo"
	if err := renameDefaultSheet(f, sheet); err != nil {
		return err
	}

	headers := []any{"Data", "Entradas", "Saídas", "Saldo"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, day := range days {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{day.Date.Format("2006-01-02"), day.Inflows, day.Outflows, day.Balance}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write cash-flow row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func renameDefaultSheet(f *excelize.File, name string) error {
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	return nil
}
