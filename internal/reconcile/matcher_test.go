package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caravela/fluxo/internal/model"
)

func TestMatcher_FirstMatchWins(t *testing.T) {
	rules := []model.ReconciliationRule{
		{ID: 1, Name: "generic", Pattern: "FORNECEDOR", MatchField: model.MatchFieldDescription,
			Priority: 20, CategoryID: "cat-generic", IsActive: true},
		{ID: 2, Name: "specific", Pattern: "FORNECEDOR X", MatchField: model.MatchFieldDescription,
			Priority: 10, CategoryID: "cat-specific", IsActive: true},
	}

	tx := model.BankTransaction{Description: "PAG FORNECEDOR X LTDA", Amount: -250}

	result := NewMatcher(rules).Match(tx)
	require.NotNil(t, result)
	// Lower priority number evaluated first; later rules never run.
	assert.Equal(t, 2, result.RuleID)
	assert.Equal(t, "cat-specific", result.CategoryID)
}

func TestMatcher_RegexPattern(t *testing.T) {
	rules := []model.ReconciliationRule{
		{ID: 1, Pattern: `(?i)^pix .*acme`, MatchField: model.MatchFieldDescription,
			Priority: 10, ClientID: "c-acme", IsActive: true},
	}

	matcher := NewMatcher(rules)

	result := matcher.Match(model.BankTransaction{Description: "PIX RECEBIDO ACME SA"})
	require.NotNil(t, result)
	assert.Equal(t, "c-acme", result.ClientID)

	assert.Nil(t, matcher.Match(model.BankTransaction{Description: "TED ACME SA"}))
}

func TestMatcher_InvalidRegexFallsBackToSubstring(t *testing.T) {
	rules := []model.ReconciliationRule{
		{ID: 1, Pattern: "energia (", MatchField: model.MatchFieldDescription,
			Priority: 10, CategoryID: "cat-energia", IsActive: true},
	}

	// "energia (" is not a valid regex; substring matching still applies,
	// case-insensitively.
	result := NewMatcher(rules).Match(model.BankTransaction{Description: "CONTA ENERGIA (MARÇO)"})
	require.NotNil(t, result)
	assert.Equal(t, "cat-energia", result.CategoryID)
}

func TestMatcher_AutoMatchControlsStatus(t *testing.T) {
	tx := model.BankTransaction{Description: "ALUGUEL ESCRITORIO"}

	auto := NewMatcher([]model.ReconciliationRule{
		{ID: 1, Pattern: "ALUGUEL", Priority: 10, AutoMatch: true, IsActive: true, CategoryID: "cat-aluguel"},
	}).Match(tx)
	require.NotNil(t, auto)
	assert.Equal(t, model.MatchStatusMatched, auto.Status)

	manual := NewMatcher([]model.ReconciliationRule{
		{ID: 1, Pattern: "ALUGUEL", Priority: 10, AutoMatch: false, IsActive: true, CategoryID: "cat-aluguel"},
	}).Match(tx)
	require.NotNil(t, manual)
	// Assignment happens, confirmation stays pending.
	assert.Equal(t, model.MatchStatusUnmatched, manual.Status)
	assert.Equal(t, "cat-aluguel", manual.CategoryID)
}

func TestMatcher_AmountField(t *testing.T) {
	rules := []model.ReconciliationRule{
		{ID: 1, Pattern: `^-250\.00$`, MatchField: model.MatchFieldAmount,
			Priority: 10, VendorID: "v1", IsActive: true},
	}

	matcher := NewMatcher(rules)

	result := matcher.Match(model.BankTransaction{Description: "whatever", Amount: -250})
	require.NotNil(t, result)
	assert.Equal(t, "v1", result.VendorID)

	assert.Nil(t, matcher.Match(model.BankTransaction{Description: "whatever", Amount: -250.01}))
}

func TestMatcher_SkipsInactiveAndEmpty(t *testing.T) {
	rules := []model.ReconciliationRule{
		{ID: 1, Pattern: "PIX", Priority: 1, IsActive: false},
		{ID: 2, Pattern: "", Priority: 2, IsActive: true},
	}

	assert.Nil(t, NewMatcher(rules).Match(model.BankTransaction{Description: "PIX ENVIADO"}))
}

func TestMatcher_DoesNotMutateInput(t *testing.T) {
	rules := []model.ReconciliationRule{
		{ID: 1, Pattern: "b", Priority: 2, IsActive: true},
		{ID: 2, Pattern: "a", Priority: 1, IsActive: true},
	}

	_ = NewMatcher(rules)
	// The caller's slice keeps its original order.
	assert.Equal(t, 1, rules[0].ID)
	assert.Equal(t, 2, rules[1].ID)
}
