package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/caravela/fluxo/internal/cli"
	"github.com/caravela/fluxo/internal/common"
	"github.com/caravela/fluxo/internal/model"
	"github.com/caravela/fluxo/internal/money"
	"github.com/caravela/fluxo/internal/statement"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import bank statements from OFX or CSV files",
		Long: `Import bank statement transactions from OFX/QFX or CSV exports.

The format is detected from the file extension unless --format is given.
CSV delimiters (, or ;) and columns are detected automatically.

Examples:
  fluxo import ~/Downloads/extrato_jan.ofx
  fluxo import --format csv ~/Downloads/extrato_*.csv
  fluxo import --dry-run ~/Downloads/extrato.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("format", "auto", "statement format (ofx, csv, auto)")
	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	var forced model.StatementFormat
	if !strings.EqualFold(format, "auto") {
		f, err := model.ParseStatementFormat(format)
		if err != nil {
			return err
		}
		forced = f
	}

	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.Default(int64(len(allFiles)), "importing")
	totalImported := 0

	for _, filePath := range allFiles {
		_ = bar.Add(1)

		content, err := os.ReadFile(filePath)
		if err != nil {
			common.LogError(err, "Failed to read file", common.Fields{"file": filePath})
			continue
		}

		fileFormat := forced
		if fileFormat == "" {
			fileFormat = detectFormat(filePath)
		}
		parsed := parseStatement(fileFormat, string(content))
		if len(parsed) == 0 {
			common.LogError(common.ErrNoTransactions, "Skipping file",
				common.Fields{"file": filepath.Base(filePath)})
			continue
		}

		txs := toBankTransactions(parsed)
		start, end := statement.Period(parsed)
		imp := model.BankImport{
			ID:          uuid.NewString(),
			Filename:    filepath.Base(filePath),
			Format:      fileFormat,
			Total:       len(txs),
			PeriodStart: start,
			PeriodEnd:   end,
			ImportedAt:  time.Now(),
		}

		if dryRun {
			fmt.Println(cli.Title(fmt.Sprintf("%s (%s, dry-run)", imp.Filename, fileFormat)))
			for _, tx := range txs {
				fmt.Printf("  %s  %12s  %s\n",
					tx.Date.Format("02/01/2006"),
					cli.Amount(money.FormatBRL(tx.Amount), tx.Amount),
					tx.Description)
			}
			continue
		}

		if err := store.SaveBankImport(ctx, &imp, txs); err != nil {
			common.LogError(err, "Failed to save import", common.Fields{"file": filePath})
			continue
		}

		totalImported += imp.Imported
		common.LogInfo("Imported statement", common.Fields{
			"file":         imp.Filename,
			"transactions": imp.Total,
			"imported":     imp.Imported,
			"duplicates":   imp.Skipped,
		})
	}

	if !dryRun {
		fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %d transactions imported", totalImported)))
	}
	return nil
}

func detectFormat(path string) model.StatementFormat {
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".ofx" || ext == ".qfx" {
		return model.FormatOFX
	}
	return model.FormatCSV
}

func parseStatement(format model.StatementFormat, content string) []statement.ParsedTransaction {
	if format == model.FormatOFX {
		return statement.ParseOFX(content)
	}
	return statement.ParseCSV(content, nil)
}

func toBankTransactions(parsed []statement.ParsedTransaction) []model.BankTransaction {
	txs := make([]model.BankTransaction, 0, len(parsed))
	for _, p := range parsed {
		date, ok := money.ParseISO(p.Date)
		if !ok {
			continue
		}
		txs = append(txs, model.BankTransaction{
			ID:          uuid.NewString(),
			Date:        date,
			Amount:      p.Amount,
			Description: p.Description,
			Memo:        p.Memo,
			FITID:       p.FITID,
			MatchStatus: model.MatchStatusUnmatched,
		})
	}
	return txs
}
