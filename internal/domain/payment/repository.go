package payment

import (
	"context"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
)

type PaymentRepository interface {
	// Create inserts one payment; the unique key on
	// (employee_id, period_month, period_year, payment_type_code) turns a
	// concurrent duplicate into ErrPaymentExists.
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByEmployeePeriodType(ctx context.Context, employeeID string, month, year int, typeCode string) (Payment, error)
	ExistsByType(ctx context.Context, employeeID string, month, year int, typeCode string) (bool, error)
	// ExistsByCategory reports whether any payment of the category exists
	// for the employee and period, optionally ignoring one type code.
	ExistsByCategory(ctx context.Context, employeeID string, month, year int, category catalog.PaymentCategory, excludeTypeCode string) (bool, error)
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]Payment, error)
	// EmployeeTotals sums the employee's accruals and the magnitudes of
	// its deductions for the period.
	EmployeeTotals(ctx context.Context, employeeID string, month, year int) (Totals, error)
	DeleteByType(ctx context.Context, employeeID string, month, year int, typeCode string) error
	// PeriodTotals aggregates accruals and deductions over all employees
	// for the period.
	PeriodTotals(ctx context.Context, month, year int) (Totals, error)
}
