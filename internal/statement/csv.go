package statement

import (
	"encoding/csv"
	"regexp"
	"strings"

	"github.com/caravela/fluxo/internal/money"
)

// ColumnMapping maps semantic fields to column indexes. A -1 index means
// the column is absent.
type ColumnMapping struct {
	Date        int
	Amount      int
	Description int
}

var (
	dateHeaderRegex   = regexp.MustCompile(`(?i)^(data|date|dt\b|dia)`)
	amountHeaderRegex = regexp.MustCompile(`(?i)(valor|amount|value|montante|quantia)`)
	descHeaderRegex   = regexp.MustCompile(`(?i)(descri|hist[oó]rico|description|memo|narra|lan[cç]amento|observa)`)
)

// DetectDelimiter sniffs the CSV delimiter from the header line by
// comparing counts of ';' and ','. Comma wins ties.
func DetectDelimiter(header string) rune {
	if strings.Count(header, ";") > strings.Count(header, ",") {
		return ';'
	}
	return ','
}

// AutoMapColumns matches header names against Portuguese and English
// synonyms for date, amount and description.
func AutoMapColumns(headers []string) ColumnMapping {
	mapping := ColumnMapping{Date: -1, Amount: -1, Description: -1}
	for i, h := range headers {
		h = strings.TrimSpace(h)
		switch {
		case mapping.Date == -1 && dateHeaderRegex.MatchString(h):
			mapping.Date = i
		case mapping.Amount == -1 && amountHeaderRegex.MatchString(h):
			mapping.Amount = i
		case mapping.Description == -1 && descHeaderRegex.MatchString(h):
			mapping.Description = i
		}
	}
	return mapping
}

// ParseCSV extracts transactions from CSV statement text. The delimiter is
// sniffed from the header line and columns are auto-mapped unless the
// caller supplies a mapping. Rows with an unparseable date or a zero amount
// are dropped silently: the tolerant-ingestion policy for messy exports.
// Fewer than two lines (header plus one row) yields an empty result.
func ParseCSV(content string, override *ColumnMapping) []ParsedTransaction {
	lines := splitLines(content)
	if len(lines) < 2 {
		return []ParsedTransaction{}
	}

	delimiter := DetectDelimiter(lines[0])
	rows := readRows(content, delimiter)
	if len(rows) < 2 {
		return []ParsedTransaction{}
	}

	mapping := AutoMapColumns(rows[0])
	if override != nil {
		mapping = *override
	}
	if mapping.Date < 0 || mapping.Amount < 0 {
		return []ParsedTransaction{}
	}

	txs := []ParsedTransaction{}
	for _, row := range rows[1:] {
		if mapping.Date >= len(row) || mapping.Amount >= len(row) {
			continue
		}

		date := money.ParseDateFlexible(cell(row, mapping.Date))
		if _, ok := money.ParseISO(date); !ok {
			continue
		}

		amount := money.ParseAmount(cell(row, mapping.Amount))
		if amount == 0 {
			continue
		}

		txs = append(txs, ParsedTransaction{
			Date:        date,
			Amount:      amount,
			Description: cell(row, mapping.Description),
		})
	}

	return txs
}

// readRows parses with encoding/csv. Lazy quoting and unchecked field
// counts make ReadAll total over arbitrary text, so a parse error only
// means there is nothing usable in the file.
func readRows(content string, delimiter rune) [][]string {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil
	}
	return rows
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return trimQuotes(strings.TrimSpace(row[idx]))
}

func trimQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
