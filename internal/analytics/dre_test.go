package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caravela/fluxo/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestComputeDRE(t *testing.T) {
	categories := model.Lookup{
		"cat-infra": "Infraestrutura",
		"cat-pess":  "Pessoal",
	}
	payables := []model.Payable{
		{ID: "p1", Amount: 2000, CategoryID: "cat-pess", Status: model.StatusAberto},
		{ID: "p2", Amount: 500, CategoryID: "cat-infra", Status: model.StatusAberto},
		{ID: "p3", Amount: 300, CategoryID: "cat-infra", Status: model.StatusAberto},
		{ID: "p4", Amount: 9999, CategoryID: "cat-infra", Status: model.StatusCancelado},
	}
	receivables := []model.Receivable{
		{ID: "r1", Amount: 10000, Status: model.StatusAberto},
		{ID: "r2", Amount: 5000, Status: model.StatusRecebido},
		{ID: "r3", Amount: 7777, Status: model.StatusCancelado},
	}

	statement := ComputeDRE(payables, receivables, categories)

	assert.Equal(t, 15000.0, statement.Revenue)
	assert.Equal(t, 2800.0, statement.Expenses)
	assert.Equal(t, 12200.0, statement.NetMargin)

	require.Len(t, statement.Lines, 4)
	assert.Equal(t, LabelGrossRevenue, statement.Lines[0].Label)
	assert.Equal(t, 15000.0, statement.Lines[0].Revenue)

	// Expense lines sorted descending by total.
	assert.Equal(t, "Pessoal", statement.Lines[1].Label)
	assert.Equal(t, 2000.0, statement.Lines[1].Expenses)
	assert.Equal(t, "Infraestrutura", statement.Lines[2].Label)
	assert.Equal(t, 800.0, statement.Lines[2].Expenses)

	assert.Equal(t, LabelNetResult, statement.Lines[3].Label)
}

func TestComputeDRE_BalanceInvariant(t *testing.T) {
	payables := []model.Payable{
		{ID: "p1", Amount: 123.45, CategoryID: "a", Status: model.StatusAberto},
		{ID: "p2", Amount: 678.90, CategoryID: "b", Status: model.StatusAberto},
		{ID: "p3", Amount: 678.90, CategoryID: "c", Status: model.StatusAberto},
	}
	receivables := []model.Receivable{
		{ID: "r1", Amount: 1111.11, Status: model.StatusAberto},
	}

	statement := ComputeDRE(payables, receivables, nil)

	var revenue, expenses float64
	for _, line := range statement.Lines[:len(statement.Lines)-1] {
		revenue += line.Revenue
		expenses += line.Expenses
	}
	net := statement.Lines[len(statement.Lines)-1]
	assert.InDelta(t, revenue-expenses, net.Margin, 1e-6)
	assert.InDelta(t, net.Margin/revenue*100, net.MarginPct, 1e-6)
}

func TestComputeDRE_StableTieBreak(t *testing.T) {
	// Equal expense totals keep encounter order.
	payables := []model.Payable{
		{ID: "p1", Amount: 100, CategoryID: "first", Status: model.StatusAberto},
		{ID: "p2", Amount: 100, CategoryID: "second", Status: model.StatusAberto},
	}

	statement := ComputeDRE(payables, nil, nil)
	require.Len(t, statement.Lines, 4)
	assert.Equal(t, "first", statement.Lines[1].CategoryID)
	assert.Equal(t, "second", statement.Lines[2].CategoryID)
}

func TestComputeDRE_Empty(t *testing.T) {
	statement := ComputeDRE(nil, nil, nil)

	require.Len(t, statement.Lines, 2)
	assert.Equal(t, 0.0, statement.Revenue)
	assert.Equal(t, 0.0, statement.NetMargin)
	// No revenue means every percentage collapses to zero, never NaN.
	assert.Equal(t, 0.0, statement.NetMarginPct)
}

func TestComputeCostCenters(t *testing.T) {
	centers := model.Lookup{"cc1": "Operações", "cc2": "Comercial"}
	payables := []model.Payable{
		{ID: "p1", Amount: 400, CostCenterID: "cc1", Status: model.StatusAberto},
		{ID: "p2", Amount: 900, CostCenterID: "cc2", Status: model.StatusAberto},
	}
	receivables := []model.Receivable{
		{ID: "r1", Amount: 1500, CostCenterID: "cc1", Status: model.StatusAberto},
	}

	summaries := ComputeCostCenters(payables, receivables, centers)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Comercial", summaries[0].Name)
	assert.Equal(t, 900.0, summaries[0].Expenses)
	assert.Equal(t, -900.0, summaries[0].Result)

	assert.Equal(t, "Operações", summaries[1].Name)
	assert.Equal(t, 1500.0, summaries[1].Revenue)
	assert.Equal(t, 1100.0, summaries[1].Result)
}
