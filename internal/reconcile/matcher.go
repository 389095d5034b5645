// Package reconcile evaluates ordered reconciliation rules against bank
// transactions to assign category, vendor and client.
package reconcile

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/caravela/fluxo/internal/common"
	"github.com/caravela/fluxo/internal/model"
)

// Matcher evaluates transactions against a fixed rule set. Rules are held
// sorted by ascending priority and regex patterns are compiled once; a rule
// whose pattern is not a valid regex falls back to case-insensitive
// substring matching instead of failing the pass.
type Matcher struct {
	compiledRegex map[int]*regexp.Regexp
	rules         []model.ReconciliationRule
}

// NewMatcher creates a matcher for the given rules.
func NewMatcher(rules []model.ReconciliationRule) *Matcher {
	m := &Matcher{
		rules:         make([]model.ReconciliationRule, len(rules)),
		compiledRegex: make(map[int]*regexp.Regexp),
	}
	copy(m.rules, rules)

	sort.SliceStable(m.rules, func(i, j int) bool {
		return m.rules[i].Priority < m.rules[j].Priority
	})

	for _, rule := range m.rules {
		if rule.Pattern == "" {
			continue
		}
		if re, err := common.CompilePattern(rule.Pattern); err == nil {
			m.compiledRegex[rule.ID] = re
		}
	}

	return m
}

// Match evaluates a transaction against the rules in priority order and
// returns the first match, or nil when no rule applies. AutoMatch on the
// winning rule decides whether the transaction is matched immediately or
// left unmatched pending confirmation.
func (m *Matcher) Match(tx model.BankTransaction) *model.MatchResult {
	for _, rule := range m.rules {
		if !rule.IsActive {
			continue
		}
		if !m.matches(tx, rule) {
			continue
		}

		status := model.MatchStatusUnmatched
		if rule.AutoMatch {
			status = model.MatchStatusMatched
		}
		return &model.MatchResult{
			RuleID:     rule.ID,
			CategoryID: rule.CategoryID,
			VendorID:   rule.VendorID,
			ClientID:   rule.ClientID,
			Status:     status,
		}
	}
	return nil
}

func (m *Matcher) matches(tx model.BankTransaction, rule model.ReconciliationRule) bool {
	if rule.Pattern == "" {
		return false
	}

	value := fieldValue(tx, rule.MatchField)

	if re, ok := m.compiledRegex[rule.ID]; ok {
		return re.MatchString(value)
	}

	return strings.Contains(strings.ToLower(value), strings.ToLower(rule.Pattern))
}

func fieldValue(tx model.BankTransaction, field model.MatchField) string {
	switch field {
	case model.MatchFieldAmount:
		return strconv.FormatFloat(tx.Amount, 'f', 2, 64)
	case model.MatchFieldMemo:
		return tx.Memo
	default:
		return tx.Description
	}
}
