package model

import "time"

// CashFlowDay is one point of a daily cash-flow projection. The series is
// dense: every day in the horizon gets an entry even with zero movement.
type CashFlowDay struct {
	Date     time.Time
	Inflows  float64
	Outflows float64
	Balance  float64
}

// AlertType classifies a cash-flow alert.
type AlertType string

// Alert types.
const (
	AlertDanger  AlertType = "danger"
	AlertWarning AlertType = "warning"
)

// CashFlowAlert flags a threshold crossing detected while walking the
// projected series.
type CashFlowAlert struct {
	Date     time.Time
	Type     AlertType
	Severity string
	Message  string
	Amount   float64
}

// CashFlowProjection bundles the daily series with the alerts detected on it.
type CashFlowProjection struct {
	Days   []CashFlowDay
	Alerts []CashFlowAlert
}
