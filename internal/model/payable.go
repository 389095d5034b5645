package model

import "time"

// Payable represents an obligation to pay a vendor.
type Payable struct {
	DueDate      time.Time
	PaidDate     *time.Time
	ID           string
	Status       Status
	CategoryID   string
	CostCenterID string
	VendorID     string
	Description  string
	Amount       float64
	AmountPaid   float64
}

// Receivable represents money owed to the business by a client.
type Receivable struct {
	DueDate           time.Time
	PaidDate          *time.Time
	ID                string
	Status            Status
	CategoryID        string
	CostCenterID      string
	ClientID          string
	Description       string
	Amount            float64
	AmountPaid        float64
	InstallmentNumber int
	InstallmentTotal  int
	Recurring         bool
}

// Overdue reports whether the payable is past due and still unsettled.
func (p Payable) Overdue(asOf time.Time) bool {
	return IsOverdue(p.DueDate, p.Status, asOf)
}

// Overdue reports whether the receivable is past due and still unsettled.
func (r Receivable) Overdue(asOf time.Time) bool {
	return IsOverdue(r.DueDate, r.Status, asOf)
}
