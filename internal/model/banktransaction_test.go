package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caravela/fluxo/internal/common"
)

func TestParseStatementFormat(t *testing.T) {
	tests := []struct {
		in   string
		want StatementFormat
	}{
		{in: "ofx", want: FormatOFX},
		{in: "OFX", want: FormatOFX},
		{in: "qfx", want: FormatOFX},
		{in: "csv", want: FormatCSV},
		{in: "CSV", want: FormatCSV},
	}

	for _, tt := range tests {
		got, err := ParseStatementFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseStatementFormat("xlsx")
	assert.ErrorIs(t, err, common.ErrUnknownFormat)
	_, err = ParseStatementFormat("")
	assert.ErrorIs(t, err, common.ErrUnknownFormat)
}

func TestGenerateHash(t *testing.T) {
	a := BankTransaction{
		Date:        date(2024, 1, 15),
		Amount:      -250,
		Description: "Fornecedor X",
		FITID:       "F1",
	}
	b := a
	assert.Equal(t, a.GenerateHash(), b.GenerateHash())

	b.Amount = -250.01
	assert.NotEqual(t, a.GenerateHash(), b.GenerateHash())

	// Same FITID but different content still counts as distinct: some banks
	// reuse FITIDs.
	c := a
	c.Description = "Fornecedor Y"
	assert.NotEqual(t, a.GenerateHash(), c.GenerateHash())
}
