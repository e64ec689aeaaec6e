package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementStatus enum
type SettlementStatus string

const (
	StatusCalculated SettlementStatus = "calculated"
	StatusPaid       SettlementStatus = "paid"
)

// Settlement - the one immutable-once-created summary of an employee's
// period: every payment line reduced to accrued, deducted and net.
type Settlement struct {
	ID            string
	EmployeeID    string
	PeriodMonth   int
	PeriodYear    int
	TotalAccrued  decimal.Decimal
	TotalDeducted decimal.Decimal
	Net           decimal.Decimal
	Status        SettlementStatus
	CalculatedAt  time.Time
	PaidAt        *time.Time
	PaidBy        *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
}
