package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caravela/fluxo/internal/model"
)

func TestComputeConcentration(t *testing.T) {
	clients := model.Lookup{"c1": "Acme", "c2": "Beta", "c3": "Gama"}
	receivables := []model.Receivable{
		{ID: "r1", Amount: 6000, ClientID: "c1", Status: model.StatusAberto},
		{ID: "r2", Amount: 3000, ClientID: "c2", Status: model.StatusAberto},
		{ID: "r3", Amount: 1000, ClientID: "c3", Status: model.StatusAberto},
		{ID: "r4", Amount: 500, ClientID: "c3", Status: model.StatusCancelado},
	}

	rows := ComputeConcentration(receivables, clients)
	require.Len(t, rows, 3)

	assert.Equal(t, "Acme", rows[0].Name)
	assert.InDelta(t, 60, rows[0].Pct, 1e-6)
	assert.InDelta(t, 60, rows[0].CumulativePct, 1e-6)

	assert.InDelta(t, 90, rows[1].CumulativePct, 1e-6)

	// The last entry always accumulates to 100 when there is revenue.
	assert.InDelta(t, 100, rows[2].CumulativePct, 1e-6)
}

func TestComputeConcentration_ZeroRevenue(t *testing.T) {
	receivables := []model.Receivable{
		{ID: "r1", Amount: 0, ClientID: "c1", Status: model.StatusAberto},
	}

	rows := ComputeConcentration(receivables, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Pct)
	assert.Equal(t, 0.0, rows[0].CumulativePct)
}

func TestComputeConcentration_Empty(t *testing.T) {
	assert.Empty(t, ComputeConcentration(nil, nil))
}
