package payment

import (
	"time"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Payment - one atomic financial fact per (employee, period, payment type).
// Accruals carry positive amounts, deductions negative ones. The natural
// key blocks a pipeline stage from running twice for the same period.
type Payment struct {
	ID              string
	EmployeeID      string
	PeriodMonth     int
	PeriodYear      int
	PaymentTypeCode string
	Amount          decimal.Decimal
	Description     string
	CreatedAt       time.Time

	// Joined fields
	PaymentTypeName string
	Category        catalog.PaymentCategory
}

// Totals - accrual/deduction sums for a period, deductions as a
// non-negative magnitude.
type Totals struct {
	Accrued  decimal.Decimal
	Deducted decimal.Decimal
}

// Net returns accrued minus deducted.
func (t Totals) Net() decimal.Decimal {
	return t.Accrued.Sub(t.Deducted)
}
