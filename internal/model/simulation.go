package model

// SimulationParams are the what-if knobs applied to a projection.
// Percentages: ReceivablesDelayPct and ExpenseCutPct in [0,100],
// RevenueGrowthPct in [-100, +inf).
type SimulationParams struct {
	ReceivablesDelayPct float64
	ExpenseCutPct       float64
	RevenueGrowthPct    float64
}

// MonthlyPoint is one month of a simulated projection. Month is a "YYYY-MM"
// key; Revenue and Expenses are the perturbed values for that month.
type MonthlyPoint struct {
	Month    string
	Revenue  float64
	Expenses float64
	Balance  float64
}

// SimulationResult is the outcome of a scenario run.
// Runway is in months; nil means unbounded (burn rate is zero or negative).
type SimulationResult struct {
	MonthlyProjection []MonthlyPoint
	Runway            *float64
	ProjectedCash     float64
	ProjectedMargin   float64
}
