package model

import "time"

// MatchField selects which transaction attribute a rule pattern is applied to.
type MatchField string

// Matchable fields.
const (
	MatchFieldDescription MatchField = "description"
	MatchFieldAmount      MatchField = "amount"
	MatchFieldMemo        MatchField = "memo"
)

// ReconciliationRule assigns category/vendor/client to bank transactions
// whose MatchField value matches Pattern. Rules are evaluated in ascending
// Priority order and the first match wins.
type ReconciliationRule struct {
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Name       string
	Pattern    string
	MatchField MatchField
	CategoryID string
	VendorID   string
	ClientID   string
	ID         int
	Priority   int
	AutoMatch  bool
	IsActive   bool
}

// MatchResult is the outcome of applying a rule to a bank transaction.
// Status is MatchStatusMatched only when the winning rule has AutoMatch set;
// otherwise the assignment is recorded but confirmation stays with a human.
type MatchResult struct {
	CategoryID string
	VendorID   string
	ClientID   string
	RuleID     int
	Status     MatchStatus
}
