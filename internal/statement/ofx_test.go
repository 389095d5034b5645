package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOFX_TagScan(t *testing.T) {
	// SGML-style export with comma decimals: too malformed for a strict
	// parser, handled by the tag scanner.
	content := `OFXHEADER:100
DATA:OFXSGML
<OFX>
<BANKMSGSRSV1>
<STMTTRNRS>
<BANKTRANLIST>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115
<TRNAMT>-250,00
<FITID>ABC123
<NAME>Fornecedor X
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120
<TRNAMT>1500.00
<FITID>ABC124
<MEMO>Recebimento cliente
</STMTTRN>
</BANKTRANLIST>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

	txs := ParseOFX(content)
	require.Len(t, txs, 2)

	assert.Equal(t, "2024-01-15", txs[0].Date)
	assert.InDelta(t, -250, txs[0].Amount, 1e-9)
	assert.Equal(t, "Fornecedor X", txs[0].Description)
	assert.Equal(t, "ABC123", txs[0].FITID)

	assert.Equal(t, "2024-01-20", txs[1].Date)
	assert.InDelta(t, 1500, txs[1].Amount, 1e-9)
	// No NAME tag: MEMO is the description.
	assert.Equal(t, "Recebimento cliente", txs[1].Description)
	assert.Equal(t, "Recebimento cliente", txs[1].Memo)
}

func TestParseOFX_NamePreferredOverMemo(t *testing.T) {
	content := `<STMTTRN>
<DTPOSTED>20240301120000
<TRNAMT>-42.50
<NAME>Padaria
<MEMO>Compra no débito
</STMTTRN>`

	txs := ParseOFX(content)
	require.Len(t, txs, 1)
	assert.Equal(t, "2024-03-01", txs[0].Date)
	assert.Equal(t, "Padaria", txs[0].Description)
}

func TestParseOFX_SkipsBadDates(t *testing.T) {
	content := `<STMTTRN>
<DTPOSTED>notadate
<TRNAMT>-10.00
</STMTTRN>
<STMTTRN>
<DTPOSTED>20241399
<TRNAMT>-10.00
</STMTTRN>
<STMTTRN>
<DTPOSTED>20240610
<TRNAMT>-10.00
</STMTTRN>`

	txs := ParseOFX(content)
	require.Len(t, txs, 1)
	assert.Equal(t, "2024-06-10", txs[0].Date)
}

func TestParseOFX_TotalOnGarbage(t *testing.T) {
	assert.Empty(t, ParseOFX(""))
	assert.Empty(t, ParseOFX("not ofx at all"))
	assert.Empty(t, ParseOFX("<OFX><BANKMSGSRSV1></BANKMSGSRSV1></OFX>"))
}

func TestPeriod(t *testing.T) {
	txs := []ParsedTransaction{
		{Date: "2024-02-10"},
		{Date: "2024-01-05"},
		{Date: "2024-03-01"},
		{Date: "not-a-date"},
	}

	start, end := Period(txs)
	assert.Equal(t, "2024-01-05", start.Format("2006-01-02"))
	assert.Equal(t, "2024-03-01", end.Format("2006-01-02"))

	start, end = Period(nil)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}
