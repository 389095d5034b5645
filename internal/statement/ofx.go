package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"

	"github.com/caravela/fluxo/internal/common"
	"github.com/caravela/fluxo/internal/money"
)

var (
	stmtTrnRegex  = regexp.MustCompile(`(?is)<STMTTRN>(.*?)(</STMTTRN>|$)`)
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	dtPostedRegex = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})`)
)

// ParseOFX extracts transactions from OFX/QFX text. It first attempts a
// strict parse; when the file is not well-formed enough for that (common in
// bank exports) it falls back to scanning <STMTTRN> blocks directly. Blocks
// whose DTPOSTED does not start with an 8-digit date are skipped.
func ParseOFX(content string) []ParsedTransaction {
	if txs, ok := parseStrict(content); ok {
		return txs
	}
	return scanBlocks(content)
}

// parseStrict runs the real OFX parser over a lightly preprocessed copy of
// the file. It reports ok=false when the document cannot be parsed at all,
// handing over to the tolerant scanner.
func parseStrict(content string) ([]ParsedTransaction, bool) {
	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(content)))
	if err != nil {
		common.LogDebug("strict OFX parse failed, falling back to tag scan",
			common.Fields{"error": err.Error()})
		return nil, false
	}

	txs := []ParsedTransaction{}
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txs = append(txs, convertOFX(ofxTx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txs = append(txs, convertOFX(ofxTx))
			}
		}
	}

	return txs, true
}

func convertOFX(tx ofxgo.Transaction) ParsedTransaction {
	amount, _ := tx.TrnAmt.Float64()

	description := string(tx.Name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		description = string(tx.Payee.Name)
	}
	if description == "" {
		description = string(tx.Memo)
	}

	return ParsedTransaction{
		Date:        tx.DtPosted.Time.Format("2006-01-02"),
		Amount:      amount,
		Description: strings.TrimSpace(description),
		FITID:       string(tx.FiTID),
		Memo:        string(tx.Memo),
	}
}

// preprocessOFX fixes common formatting issues in OFX files.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML-style exports sometimes drop the closing angle bracket on a tag
	// that ends a line.
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// scanBlocks is the tolerant path: it treats the file as flat text and pulls
// DTPOSTED, TRNAMT, FITID, MEMO and NAME out of each <STMTTRN> block.
func scanBlocks(content string) []ParsedTransaction {
	txs := []ParsedTransaction{}

	for _, match := range stmtTrnRegex.FindAllStringSubmatch(content, -1) {
		block := match[1]

		date, ok := parseDtPosted(tagValue(block, "DTPOSTED"))
		if !ok {
			continue
		}

		name := tagValue(block, "NAME")
		memo := tagValue(block, "MEMO")
		description := name
		if description == "" {
			description = memo
		}

		txs = append(txs, ParsedTransaction{
			Date:        date,
			Amount:      money.ParseAmount(tagValue(block, "TRNAMT")),
			Description: description,
			FITID:       tagValue(block, "FITID"),
			Memo:        memo,
		})
	}

	return txs
}

// tagValue extracts the text following <TAG> up to the next tag or line end.
func tagValue(block, tag string) string {
	re := regexp.MustCompile(`(?i)<` + tag + `>([^<\r\n]*)`)
	m := re.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func parseDtPosted(raw string) (string, bool) {
	m := dtPostedRegex.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	iso := m[1] + "-" + m[2] + "-" + m[3]
	if _, err := time.Parse("2006-01-02", iso); err != nil {
		return "", false
	}
	return iso, true
}
