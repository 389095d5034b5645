// Package model defines the core data structures for the fluxo application.
package model

import "time"

// Status represents the lifecycle state of a payable or receivable.
type Status string

// Lifecycle states. Receivables use StatusRecebido where payables use
// StatusPago; both count as settled.
const (
	StatusAberto    Status = "aberto"
	StatusAprovado  Status = "aprovado"
	StatusParcial   Status = "parcial"
	StatusAtrasado  Status = "atrasado"
	StatusPago      Status = "pago"
	StatusRecebido  Status = "recebido"
	StatusCancelado Status = "cancelado"
)

// IsCancelled reports whether the record is excluded from all aggregations.
func (s Status) IsCancelled() bool {
	return s == StatusCancelado
}

// IsSettled reports whether the record has been fully paid or received.
func (s Status) IsSettled() bool {
	return s == StatusPago || s == StatusRecebido
}

// IsOverdue recomputes the overdue state from the due date rather than
// trusting a persisted "atrasado" status, which may be stale.
func IsOverdue(dueDate time.Time, status Status, asOf time.Time) bool {
	if status.IsSettled() || status.IsCancelled() {
		return false
	}
	return dueDate.Before(truncateDay(asOf))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
