package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsOverdue(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		due    time.Time
		status Status
		want   bool
	}{
		{name: "past due open", due: date(2024, 3, 1), status: StatusAberto, want: true},
		{name: "due today is not overdue", due: date(2024, 3, 15), status: StatusAberto, want: false},
		{name: "future due", due: date(2024, 4, 1), status: StatusAberto, want: false},
		{name: "paid never overdue", due: date(2024, 1, 1), status: StatusPago, want: false},
		{name: "received never overdue", due: date(2024, 1, 1), status: StatusRecebido, want: false},
		{name: "cancelled never overdue", due: date(2024, 1, 1), status: StatusCancelado, want: false},
		// A stale persisted "atrasado" on a future due date is ignored.
		{name: "stale atrasado recomputed", due: date(2024, 4, 1), status: StatusAtrasado, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.due, tt.status, asOf))
		})
	}
}

func TestOverdueMethods(t *testing.T) {
	asOf := date(2024, 3, 15)

	p := Payable{DueDate: date(2024, 3, 1), Status: StatusAberto}
	assert.True(t, p.Overdue(asOf))
	p.Status = StatusPago
	assert.False(t, p.Overdue(asOf))

	r := Receivable{DueDate: date(2024, 3, 1), Status: StatusAtrasado}
	assert.True(t, r.Overdue(asOf))
	r.Status = StatusCancelado
	assert.False(t, r.Overdue(asOf))
}
